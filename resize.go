package photoframe

import (
	"image"

	"github.com/nfnt/resize"
)

// Interpolation selects the resampling kernel.
type Interpolation int

const (
	// InterpolationNearest is nearest-neighbor sampling.
	InterpolationNearest Interpolation = iota
	// InterpolationBilinear is linear sampling.
	InterpolationBilinear
	// InterpolationBicubic is cubic sampling.
	InterpolationBicubic
	// InterpolationMitchellNetravali is Mitchell-Netravali sampling.
	InterpolationMitchellNetravali
	// InterpolationLanczos2 is Lanczos sampling with a=2.
	InterpolationLanczos2
	// InterpolationLanczos3 is Lanczos sampling with a=3.
	InterpolationLanczos3
)

var interpolationNames = []string{"nearest", "bilinear", "bicubic", "mitchell", "lanczos2", "lanczos3"}

func (i Interpolation) String() string { return enumName(interpolationNames, int(i)) }

// MarshalText implements encoding.TextMarshaler.
func (i Interpolation) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *Interpolation) UnmarshalText(text []byte) error {
	return parseEnum("interpolation", interpolationNames, text, (*int)(i))
}

func (i Interpolation) kernel() resize.InterpolationFunction {
	switch i {
	case InterpolationBilinear:
		return resize.Bilinear
	case InterpolationBicubic:
		return resize.Bicubic
	case InterpolationMitchellNetravali:
		return resize.MitchellNetravali
	case InterpolationLanczos2:
		return resize.Lanczos2
	case InterpolationLanczos3:
		return resize.Lanczos3
	default:
		return resize.NearestNeighbor
	}
}

// Resize scales img to exactly w×h. A zero dimension keeps the aspect ratio.
func Resize(img image.Image, w, h uint, interp Interpolation) *image.NRGBA {
	if img == nil || img.Bounds().Empty() || (w == 0 && h == 0) {
		return CloneBuffer(img)
	}
	return CloneBuffer(resize.Resize(w, h, img, interp.kernel()))
}

// Thumbnail downscales img so that neither side exceeds maxDim, keeping the aspect
// ratio. Images that already fit, and maxDim <= 0, return an unmodified copy.
func Thumbnail(img image.Image, maxDim int) *image.NRGBA {
	if img == nil || maxDim <= 0 {
		return CloneBuffer(img)
	}
	b := img.Bounds()
	if b.Dx() <= maxDim && b.Dy() <= maxDim {
		return CloneBuffer(img)
	}
	return CloneBuffer(resize.Thumbnail(uint(maxDim), uint(maxDim), img, resize.Lanczos3))
}

// nfntResizer adapts nfnt/resize to the smartcrop resizer interface.
type nfntResizer struct {
	interp Interpolation
}

func (r nfntResizer) Resize(img image.Image, width, height uint) image.Image {
	return resize.Resize(width, height, img, r.interp.kernel())
}
