package photoframe

import (
	"image"

	"github.com/disintegration/imaging"
)

// sharpen pushes every interior pixel away from the mean of its 4 neighbours.
// Border rows and columns are copied unchanged.
func sharpen(src *image.NRGBA, amount float32) *image.NRGBA {
	w, h := src.Rect.Dx(), src.Rect.Dy()
	dst := CloneBuffer(src)
	if w < 3 || h < 3 {
		return dst
	}
	strength := amount * 0.5

	at := func(x, y int) []uint8 {
		o := y*src.Stride + x*4
		return src.Pix[o : o+4]
	}

	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			center := at(x, y)
			top, bottom := at(x, y-1), at(x, y+1)
			left, right := at(x-1, y), at(x+1, y)

			o := y*dst.Stride + x*4
			for ch := 0; ch < 3; ch++ {
				avg := (float32(top[ch]) + float32(bottom[ch]) + float32(left[ch]) + float32(right[ch])) / 4
				v := float32(center[ch])
				dst.Pix[o+ch] = clampChannel(v + (v-avg)*strength)
			}
		}
	}
	return dst
}

// reduceNoise blends the image toward a Gaussian-blurred copy by amount.
func reduceNoise(src *image.NRGBA, amount float32) *image.NRGBA {
	a := clamp01(amount)
	blurred := imaging.Blur(src, 0.5+1.5*float64(a))
	dst := CloneBuffer(src)
	for i := 0; i < len(dst.Pix); i += 4 {
		for ch := 0; ch < 3; ch++ {
			v := float32(dst.Pix[i+ch])
			bv := float32(blurred.Pix[i+ch])
			dst.Pix[i+ch] = clampChannel(v + (bv-v)*a + 0.5)
		}
	}
	return dst
}
