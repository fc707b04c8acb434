package photoframe

import (
	"context"
	"errors"
	"fmt"
	"image"

	"golang.org/x/sync/errgroup"
)

var (
	// ErrUnknownFilter is returned for a filter id missing from the catalog.
	ErrUnknownFilter = errors.New("unknown filter preset")
	// ErrUnknownFrame is returned for a frame id missing from the catalog.
	ErrUnknownFrame = errors.New("unknown frame style")
)

// CropSpec describes an optional aspect-ratio crop.
type CropSpec struct {
	Aspect AspectRatio `yaml:"aspect"`
	Mode   CropMode    `yaml:"mode"`
}

// Recipe is a complete edit: geometry, tone, filter and frame.
type Recipe struct {
	Crop   *CropSpec  `yaml:"crop"`
	MaxDim int        `yaml:"max_dim"` // preview bound, 0 keeps full size
	Tone   ToneParams `yaml:"tone"`
	Filter string     `yaml:"filter"`
	Frame  string     `yaml:"frame"`

	Watermark *WatermarkConfig `yaml:"watermark"`
	DateStamp *DateStampStyle  `yaml:"date_stamp"`
	Exif      *ExifData        `yaml:"exif"`
}

// DefaultRecipe returns a recipe that leaves the image unchanged.
func DefaultRecipe() Recipe {
	return Recipe{
		Tone:   DefaultToneParams(),
		Filter: originalPresetID,
		Frame:  noneFrameID,
	}
}

// FilterPreset resolves the recipe's filter id. An empty id means "original".
func (r Recipe) FilterPreset() (FilterPreset, error) {
	if r.Filter == "" {
		return OriginalPreset(), nil
	}
	p, ok := FilterPresetByID(r.Filter)
	if !ok {
		return FilterPreset{}, fmt.Errorf("%w: %q", ErrUnknownFilter, r.Filter)
	}
	return p, nil
}

// FrameStyle resolves the recipe's frame id. An empty id means "none".
func (r Recipe) FrameStyle() (FrameStyle, error) {
	if r.Frame == "" {
		return NoFrame(), nil
	}
	f, ok := FrameStyleByID(r.Frame)
	if !ok {
		return FrameStyle{}, fmt.Errorf("%w: %q", ErrUnknownFrame, r.Frame)
	}
	return f, nil
}

// Validate checks that the filter and frame ids are known.
func (r Recipe) Validate() error {
	if _, err := r.FilterPreset(); err != nil {
		return err
	}
	_, err := r.FrameStyle()
	return err
}

// Process runs crop, preview bound, tone, filter and frame on a copy of img.
func Process(img image.Image, r Recipe) (*image.NRGBA, error) {
	preset, err := r.FilterPreset()
	if err != nil {
		return nil, err
	}
	frame, err := r.FrameStyle()
	if err != nil {
		return nil, err
	}

	buf := CloneBuffer(img)
	if r.Crop != nil {
		buf = CropToAspect(buf, float64(r.Crop.Aspect), r.Crop.Mode)
	}
	if r.MaxDim > 0 {
		buf = Thumbnail(buf, r.MaxDim)
	}

	buf = ApplyToneAdjustments(buf, r.Tone)
	buf = ApplyFilter(buf, preset)
	buf = ApplyFrame(buf, frame, r.Exif, r.Watermark, r.DateStamp)
	return buf, nil
}

// ProcessAll applies r to every image with at most limit concurrent workers
// (limit <= 0 means unbounded). Results keep the input order.
func ProcessAll(ctx context.Context, imgs []image.Image, r Recipe, limit int) ([]*image.NRGBA, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	out := make([]*image.NRGBA, len(imgs))
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, img := range imgs {
		i, img := i, img
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := Process(img, r)
			if err != nil {
				return fmt.Errorf("image %d: %w", i, err)
			}
			out[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
