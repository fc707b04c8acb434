package photoframe

import (
	"image"
	"image/draw"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// NewBuffer allocates a transparent w×h buffer.
func NewBuffer(w, h int) *image.NRGBA {
	return image.NewNRGBA(image.Rect(0, 0, w, h))
}

// CloneBuffer copies img into a new zero-origin NRGBA buffer.
func CloneBuffer(img image.Image) *image.NRGBA {
	if img == nil {
		return NewBuffer(0, 0)
	}
	return imaging.Clone(img)
}

type rgbf struct {
	r, g, b float32
}

func (c rgbf) luma() float32 {
	return lumaR*c.r + lumaG*c.g + lumaB*c.b
}

func (c *rgbf) add(v float32) {
	c.r += v
	c.g += v
	c.b += v
}

func (c *rgbf) scale(f float32) {
	c.r *= f
	c.g *= f
	c.b *= f
}

// pivot scales the distance of every channel from p by f.
func (c *rgbf) pivot(p, f float32) {
	c.r = (c.r-p)*f + p
	c.g = (c.g-p)*f + p
	c.b = (c.b-p)*f + p
}

// towardLuma blends every channel from the pixel luma by f (0 = gray, 1 = unchanged).
func (c *rgbf) towardLuma(f float32) {
	gray := c.luma()
	c.pivot(gray, f)
}

func loadRGB(pix []uint8) rgbf {
	return rgbf{r: float32(pix[0]), g: float32(pix[1]), b: float32(pix[2])}
}

func storeRGB(pix []uint8, c rgbf) {
	pix[0] = clampChannel(c.r)
	pix[1] = clampChannel(c.g)
	pix[2] = clampChannel(c.b)
}

// clampChannel truncates toward zero and clamps to [0, 255].
func clampChannel(v float32) uint8 {
	if !(v > 0) { // also catches NaN
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

func clampInt(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func max3(a, b, c float32) float32 {
	if a >= b && a >= c {
		return a
	}
	if b >= a && b >= c {
		return b
	}
	return c
}

func min3(a, b, c float32) float32 {
	if a <= b && a <= c {
		return a
	}
	if b <= a && b <= c {
		return b
	}
	return c
}

// drawLayer runs fn on a premultiplied copy of buf and returns the result as NRGBA.
// Fully opaque pixels round-trip unchanged. Translucent pixels keep their alpha but
// their colour is requantised, even where fn draws nothing, and fully transparent
// pixels come back as transparent black.
func drawLayer(buf *image.NRGBA, fn func(dc *gg.Context)) *image.NRGBA {
	b := buf.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), buf, b.Min, draw.Src)
	dc := gg.NewContextForRGBA(rgba)
	fn(dc)
	return imaging.Clone(rgba)
}
