package photoframe

import "math"

// hueWeight returns the band membership of hue: 1 at the band centre, falling linearly
// to 0 at both edges, 0 outside. Bands with start > end wrap past 0°.
func hueWeight(hue, start, end float32) float32 {
	span := wrapHue(end - start)
	if span == 0 {
		return 0
	}
	half := span / 2
	center := wrapHue(start + half)
	d := hueDistance(hue, center)
	if d >= half {
		return 0
	}
	return 1 - d/half
}

// hueDistance is the circular distance between two hues in degrees, in [0, 180].
func hueDistance(a, b float32) float32 {
	d := float32(math.Abs(float64(wrapHue(a) - wrapHue(b))))
	if d > 180 {
		d = 360 - d
	}
	return d
}

func wrapHue(h float32) float32 {
	h = float32(math.Mod(float64(h), 360))
	if h < 0 {
		h += 360
	}
	return h
}

// BandWeight reports how strongly a pixel with the given hue belongs to band.
func BandWeight(band HueBand, hue float32) float32 {
	start, end := band.Range()
	return hueWeight(hue, start, end)
}

// applyHueBands applies every configured band adjustment in band order.
// Weights come from the pixel's hue before any band shift; a pixel outside all
// configured bands keeps its RGB values as-is. Achromatic pixels have no hue and
// belong to no band.
func applyHueBands(c *rgbf, p *ToneParams) {
	h, s, l := rgbToHSL(c.r, c.g, c.b)
	if s == 0 {
		return
	}

	touched := false
	hue := h
	for band := HueRed; band < hueBandCount; band++ {
		adj, ok := p.Bands[band]
		if !ok || adj.isZero() {
			continue
		}
		w := BandWeight(band, hue)
		if w <= 0 {
			continue
		}
		touched = true
		h += adj.HueShift * w
		s *= 1 + adj.Saturation*w
		l *= 1 + adj.Luminance*w
	}
	if !touched {
		return
	}

	c.r, c.g, c.b = hslToRGB(wrapHue(h), clamp01(s), clamp01(l))
}

// rgbToHSL converts 0..255 channels to hue in degrees and saturation/lightness in 0..1.
func rgbToHSL(r, g, b float32) (h, s, l float32) {
	r, g, b = r/255, g/255, b/255
	hi := max3(r, g, b)
	lo := min3(r, g, b)
	delta := hi - lo

	l = (hi + lo) / 2
	if delta == 0 {
		return 0, 0, l
	}

	if d := 1 - float32(math.Abs(float64(2*l-1))); d > 0 {
		s = delta / d
	}

	switch hi {
	case r:
		h = 60 * float32(math.Mod(float64((g-b)/delta), 6))
	case g:
		h = 60 * ((b-r)/delta + 2)
	default:
		h = 60 * ((r-g)/delta + 4)
	}
	if h < 0 {
		h += 360
	}
	return h, s, l
}

// hslToRGB converts hue in degrees and saturation/lightness in 0..1 to 0..255 channels.
func hslToRGB(h, s, l float32) (r, g, b float32) {
	c := (1 - float32(math.Abs(float64(2*l-1)))) * s
	x := c * (1 - float32(math.Abs(math.Mod(float64(h/60), 2)-1)))
	m := l - c/2

	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return (r + m) * 255, (g + m) * 255, (b + m) * 255
}
