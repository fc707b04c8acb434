package photoframe

import (
	"image"
	"math"
)

// pixelStage is one named per-pixel correction.
// Stages run in slice order and each reads the previous stage's output.
type pixelStage[P any] struct {
	name   string
	active func(p *P) bool
	apply  func(c *rgbf, p *P)
}

// activeStages returns the subset of stages that are not a no-op for p.
func activeStages[P any](stages []pixelStage[P], p *P) []pixelStage[P] {
	out := make([]pixelStage[P], 0, len(stages))
	for _, s := range stages {
		if s.active(p) {
			out = append(out, s)
		}
	}
	return out
}

var toneStages = []pixelStage[ToneParams]{
	{
		name:   "exposure",
		active: func(p *ToneParams) bool { return p.Exposure != 0 },
		apply: func(c *rgbf, p *ToneParams) {
			c.scale(float32(math.Exp2(float64(p.Exposure))))
		},
	},
	{
		name:   "brightness",
		active: func(p *ToneParams) bool { return p.Brightness != 0 },
		apply:  func(c *rgbf, p *ToneParams) { c.add(p.Brightness * 255) },
	},
	{
		name:   "contrast",
		active: func(p *ToneParams) bool { return p.Contrast != 1 },
		apply:  func(c *rgbf, p *ToneParams) { c.pivot(midGray, p.Contrast) },
	},
	{
		name:   "temperature",
		active: func(p *ToneParams) bool { return p.Temperature != 0 },
		apply: func(c *rgbf, p *ToneParams) {
			t := p.Temperature * toneColorShift
			c.r += t
			c.b -= t
		},
	},
	{
		name:   "tint",
		active: func(p *ToneParams) bool { return p.Tint != 0 },
		apply:  func(c *rgbf, p *ToneParams) { c.g -= p.Tint * toneColorShift },
	},
	{
		name:   "saturation",
		active: func(p *ToneParams) bool { return p.Saturation != 1 },
		apply:  func(c *rgbf, p *ToneParams) { c.towardLuma(p.Saturation) },
	},
	{
		name:   "vibrance",
		active: func(p *ToneParams) bool { return p.Vibrance != 0 },
		apply: func(c *rgbf, p *ToneParams) {
			hi := max3(c.r, c.g, c.b)
			lo := min3(c.r, c.g, c.b)
			var sat float32
			if hi > 0 {
				sat = (hi - lo) / hi
			}
			c.towardLuma(1 + p.Vibrance*(1-sat))
		},
	},
	{
		name:   "highlights",
		active: func(p *ToneParams) bool { return p.Highlights != 0 },
		apply: func(c *rgbf, p *ToneParams) {
			l := c.luma()
			if l > highlightThreshold {
				w := clamp01((l - highlightThreshold) / (255 - highlightThreshold))
				c.scale(1 + p.Highlights*w*0.3)
			}
		},
	},
	{
		name:   "shadows",
		active: func(p *ToneParams) bool { return p.Shadows != 0 },
		apply: func(c *rgbf, p *ToneParams) {
			l := c.luma()
			if l < shadowThreshold {
				w := clamp01((shadowThreshold - l) / shadowThreshold)
				c.scale(1 + p.Shadows*w*0.5)
			}
		},
	},
	{
		name:   "whites",
		active: func(p *ToneParams) bool { return p.Whites != 0 },
		apply: func(c *rgbf, p *ToneParams) {
			if c.luma() > whitesThreshold {
				c.add(p.Whites * flatToneShift)
			}
		},
	},
	{
		name:   "blacks",
		active: func(p *ToneParams) bool { return p.Blacks != 0 },
		apply: func(c *rgbf, p *ToneParams) {
			if c.luma() < blacksThreshold {
				c.add(p.Blacks * flatToneShift)
			}
		},
	},
	{
		name:   "clarity",
		active: func(p *ToneParams) bool { return p.Clarity != 0 },
		apply:  func(c *rgbf, p *ToneParams) { c.pivot(midGray, 1+p.Clarity*0.3) },
	},
	{
		name:   "dehaze",
		active: func(p *ToneParams) bool { return p.Dehaze != 0 },
		apply: func(c *rgbf, p *ToneParams) {
			f := p.Dehaze * 0.3
			c.add(-min3(c.r, c.g, c.b) * f)
			c.pivot(midGray, 1+f*0.2)
		},
	},
	{
		name:   "hue bands",
		active: func(p *ToneParams) bool { return p.hasBands() },
		apply:  applyHueBands,
	},
}

// ApplyToneAdjustments applies global, luminance-banded and hue-selective corrections,
// followed by noise reduction and sharpening. Alpha is preserved.
// The source buffer is not modified.
func ApplyToneAdjustments(src *image.NRGBA, p ToneParams) *image.NRGBA {
	dst := CloneBuffer(src)
	if p.IsIdentity() {
		return dst
	}

	if stages := activeStages(toneStages, &p); len(stages) > 0 {
		runPixelStages(dst, stages, &p)
	}

	if p.NoiseReduction > 0 {
		dst = reduceNoise(dst, p.NoiseReduction)
	}
	if p.Sharpness > 0 {
		dst = sharpen(dst, p.Sharpness)
	}
	return dst
}

// ToneStages lists the per-pixel corrections p enables, in application order,
// followed by the post-passes.
func ToneStages(p ToneParams) []string {
	var names []string
	for _, s := range activeStages(toneStages, &p) {
		names = append(names, s.name)
	}
	if p.NoiseReduction > 0 {
		names = append(names, "noise reduction")
	}
	if p.Sharpness > 0 {
		names = append(names, "sharpness")
	}
	return names
}

// runPixelStages rewrites every pixel of buf in place, clamping once per pixel.
func runPixelStages[P any](buf *image.NRGBA, stages []pixelStage[P], p *P) {
	w, h := buf.Rect.Dx(), buf.Rect.Dy()
	for y := 0; y < h; y++ {
		row := buf.Pix[y*buf.Stride : y*buf.Stride+w*4]
		for x := 0; x < w; x++ {
			px := row[x*4 : x*4+4]
			c := loadRGB(px)
			for _, s := range stages {
				s.apply(&c, p)
			}
			storeRGB(px, c)
		}
	}
}
