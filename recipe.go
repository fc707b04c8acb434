package photoframe

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// AspectRatio is a width/height ratio, written as "3:2" or "1.5".
type AspectRatio float64

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *AspectRatio) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	w, h, ok := strings.Cut(s, ":")
	if !ok {
		h = "1"
	}

	fw, err := strconv.ParseFloat(strings.TrimSpace(w), 64)
	if err != nil {
		return fmt.Errorf("aspect ratio %q: %w", s, err)
	}
	fh, err := strconv.ParseFloat(strings.TrimSpace(h), 64)
	if err != nil {
		return fmt.Errorf("aspect ratio %q: %w", s, err)
	}

	v := fw / fh
	if !(v > 0) || math.IsInf(v, 0) {
		return fmt.Errorf("aspect ratio %q: must be positive", s)
	}
	*a = AspectRatio(v)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (a AspectRatio) MarshalText() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(a), 'f', -1, 64)), nil
}

// recipeFile is the on-disk layout; overlay sections are decoded onto defaults.
type recipeFile struct {
	Crop      *CropSpec  `yaml:"crop"`
	MaxDim    int        `yaml:"max_dim"`
	Tone      ToneParams `yaml:"tone"`
	Filter    string     `yaml:"filter"`
	Frame     string     `yaml:"frame"`
	Watermark yaml.Node  `yaml:"watermark"`
	DateStamp yaml.Node  `yaml:"date_stamp"`
	Exif      *ExifData  `yaml:"exif"`
}

// ParseRecipe decodes a YAML recipe. Omitted fields keep DefaultRecipe values,
// omitted overlay fields keep DefaultWatermarkConfig and DefaultDateStampStyle values.
func ParseRecipe(data []byte) (Recipe, error) {
	def := DefaultRecipe()
	f := recipeFile{Tone: def.Tone, Filter: def.Filter, Frame: def.Frame}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Recipe{}, fmt.Errorf("decode recipe: %w", err)
	}

	r := Recipe{
		Crop:   f.Crop,
		MaxDim: f.MaxDim,
		Tone:   f.Tone,
		Filter: f.Filter,
		Frame:  f.Frame,
		Exif:   f.Exif,
	}

	if f.Watermark.Kind != 0 {
		wm := DefaultWatermarkConfig()
		if err := f.Watermark.Decode(&wm); err != nil {
			return Recipe{}, fmt.Errorf("decode watermark: %w", err)
		}
		r.Watermark = &wm
	}
	if f.DateStamp.Kind != 0 {
		ds := DefaultDateStampStyle()
		if err := f.DateStamp.Decode(&ds); err != nil {
			return Recipe{}, fmt.Errorf("decode date stamp: %w", err)
		}
		r.DateStamp = &ds
	}

	if err := r.Validate(); err != nil {
		return Recipe{}, err
	}
	return r, nil
}

// LoadRecipe reads and parses a YAML recipe file.
func LoadRecipe(path string) (Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Recipe{}, fmt.Errorf("read recipe: %w", err)
	}
	r, err := ParseRecipe(data)
	if err != nil {
		return Recipe{}, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}
