package photoframe

import "image"

// Basic adjustment subset used by film presets. The constants differ from the tone
// engine: presets were tuned against these curves.
var filterStages = []pixelStage[BasicTone]{
	{
		name:   "exposure",
		active: func(p *BasicTone) bool { return p.Exposure != 0 },
		apply:  func(c *rgbf, p *BasicTone) { c.scale(1 + p.Exposure) },
	},
	{
		name:   "brightness",
		active: func(p *BasicTone) bool { return p.Brightness != 0 },
		apply:  func(c *rgbf, p *BasicTone) { c.add(p.Brightness * 255) },
	},
	{
		name:   "contrast",
		active: func(p *BasicTone) bool { return p.Contrast != 1 },
		apply:  func(c *rgbf, p *BasicTone) { c.pivot(midGray, p.Contrast) },
	},
	{
		name:   "temperature",
		active: func(p *BasicTone) bool { return p.Temperature != 0 },
		apply: func(c *rgbf, p *BasicTone) {
			t := p.Temperature * filterColorShift
			c.r += t
			c.b -= t
		},
	},
	{
		name:   "tint",
		active: func(p *BasicTone) bool { return p.Tint != 0 },
		apply:  func(c *rgbf, p *BasicTone) { c.g -= p.Tint * filterColorShift },
	},
	{
		name:   "saturation",
		active: func(p *BasicTone) bool { return p.Saturation != 1 },
		apply:  func(c *rgbf, p *BasicTone) { c.towardLuma(p.Saturation) },
	},
	{
		name:   "highlights",
		active: func(p *BasicTone) bool { return p.Highlights != 0 },
		apply: func(c *rgbf, p *BasicTone) {
			if l := c.luma(); l > highlightThreshold {
				c.scale(1 + p.Highlights*(l/255))
			}
		},
	},
	{
		name:   "shadows",
		active: func(p *BasicTone) bool { return p.Shadows != 0 },
		apply: func(c *rgbf, p *BasicTone) {
			if l := c.luma(); l < shadowThreshold {
				c.scale(1 + p.Shadows*(1-l/shadowThreshold))
			}
		},
	},
}

// ApplyFilter applies a film preset: basic tone subset, fade, color overlay, then
// grain, vignette and dust layers. The "original" preset returns an unmodified copy.
//
// Grain is seeded from the clock and differs between calls; dust uses a fixed seed
// and is reproducible.
func ApplyFilter(src *image.NRGBA, preset FilterPreset) *image.NRGBA {
	dst := CloneBuffer(src)
	if preset.ID == originalPresetID {
		return dst
	}

	// Pixels are stored (and so clamped) after the basic pass, before fade and overlay.
	if stages := activeStages(filterStages, &preset.BasicTone); len(stages) > 0 {
		runPixelStages(dst, stages, &preset.BasicTone)
	}
	if preset.Fade > 0 {
		applyFade(dst, preset.Fade)
	}
	if preset.OverlayIntensity > 0 {
		applyColorOverlay(dst, preset.OverlayColor, preset.OverlayIntensity)
	}

	if preset.Grain > 0 {
		dst = applyGrain(dst, preset.Grain, newGrainRand())
	}
	if preset.Vignette > 0 {
		dst = applyVignette(dst, preset.Vignette)
	}
	if preset.Dust > 0 {
		dst = applyDust(dst, preset.Dust)
	}
	return dst
}

// applyFade lifts all channels by a constant, simulating raised film blacks.
func applyFade(buf *image.NRGBA, amount float32) {
	lift := int(amount * 40)
	for i := 0; i < len(buf.Pix); i += 4 {
		buf.Pix[i+0] = clampInt(int(buf.Pix[i+0]) + lift)
		buf.Pix[i+1] = clampInt(int(buf.Pix[i+1]) + lift)
		buf.Pix[i+2] = clampInt(int(buf.Pix[i+2]) + lift)
	}
}

// applyColorOverlay linearly blends every pixel toward c by intensity.
func applyColorOverlay(buf *image.NRGBA, c Color, intensity float32) {
	or, og, ob := float32(c.R), float32(c.G), float32(c.B)
	keep := 1 - intensity
	for i := 0; i < len(buf.Pix); i += 4 {
		buf.Pix[i+0] = clampChannel(keep*float32(buf.Pix[i+0]) + intensity*or)
		buf.Pix[i+1] = clampChannel(keep*float32(buf.Pix[i+1]) + intensity*og)
		buf.Pix[i+2] = clampChannel(keep*float32(buf.Pix[i+2]) + intensity*ob)
	}
}
