package photoframe

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := NewBuffer(w, h)
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
	}
	return img
}

func gray(w, h int, v uint8) *image.NRGBA {
	return solid(w, h, color.NRGBA{R: v, G: v, B: v, A: 255})
}

// gradient fills a w×h buffer with a colourful, position-dependent pattern.
func gradient(w, h int) *image.NRGBA {
	img := NewBuffer(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 255 / max(w-1, 1)),
				G: uint8(y * 255 / max(h-1, 1)),
				B: uint8((x + y) * 127 / max(w+h-2, 1)),
				A: 255,
			})
		}
	}
	return img
}

func requireSamePixels(t *testing.T, want, got *image.NRGBA) {
	t.Helper()
	require.Equal(t, want.Rect.Size(), got.Rect.Size())
	require.Equal(t, want.Pix, got.Pix)
}
