package photoframe

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
	"github.com/muesli/smartcrop"
)

// CropMode selects how CropToAspect chooses the kept region.
type CropMode int

// Crop modes.
const (
	CropCenter CropMode = iota
	CropSmart
)

var cropModeNames = []string{"center", "smart"}

func (m CropMode) String() string { return enumName(cropModeNames, int(m)) }

// MarshalText implements encoding.TextMarshaler.
func (m CropMode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *CropMode) UnmarshalText(text []byte) error {
	return parseEnum("crop mode", cropModeNames, text, (*int)(m))
}

// CenterCropRect returns the largest centred w×h sub-rectangle with the given
// width/height ratio.
func CenterCropRect(w, h int, ratio float64) image.Rectangle {
	if w <= 0 || h <= 0 || !(ratio > 0) || math.IsInf(ratio, 0) {
		return image.Rect(0, 0, max(w, 0), max(h, 0))
	}

	if float64(w)/float64(h) > ratio {
		nw := max(int(float64(h)*ratio), 1)
		left := (w - nw) / 2
		return image.Rect(left, 0, left+nw, h)
	}

	nh := max(int(float64(w)/ratio), 1)
	top := (h - nh) / 2
	return image.Rect(0, top, w, top+nh)
}

// CropToAspect crops img to a width/height ratio. CropSmart picks the region with
// content-aware analysis and falls back to a centred crop if analysis fails.
// A non-positive ratio returns an unmodified copy.
func CropToAspect(img image.Image, ratio float64, mode CropMode) *image.NRGBA {
	src := CloneBuffer(img)
	w, h := src.Rect.Dx(), src.Rect.Dy()
	rect := CenterCropRect(w, h, ratio)
	if rect.Dx() == w && rect.Dy() == h {
		return src
	}

	if mode == CropSmart {
		analyzer := smartcrop.NewAnalyzer(nfntResizer{interp: InterpolationBilinear})
		if best, err := analyzer.FindBestCrop(src, rect.Dx(), rect.Dy()); err == nil && !best.Empty() {
			rect = best
		}
	}
	return imaging.Crop(src, rect)
}
