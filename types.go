package photoframe

import (
	"fmt"
	"image/color"
	"strings"
)

// BasicTone is the global tone parameter set shared by ToneParams and FilterPreset.
// The zero value is not an identity: use DefaultBasicTone.
type BasicTone struct {
	Exposure    float32 `yaml:"exposure"`    // -2..2 (tone), -1..1 (filter)
	Brightness  float32 `yaml:"brightness"`  // -1..1
	Contrast    float32 `yaml:"contrast"`    // 0..2, 1 is neutral
	Temperature float32 `yaml:"temperature"` // -1 (cool) .. 1 (warm)
	Tint        float32 `yaml:"tint"`        // -1 (green) .. 1 (magenta)
	Saturation  float32 `yaml:"saturation"`  // 0..2, 1 is neutral
	Highlights  float32 `yaml:"highlights"`  // -1..1
	Shadows     float32 `yaml:"shadows"`     // -1..1
}

// DefaultBasicTone returns the neutral basic tone set.
func DefaultBasicTone() BasicTone {
	return BasicTone{Contrast: 1, Saturation: 1}
}

// IsIdentity reports whether every field is neutral.
func (t BasicTone) IsIdentity() bool {
	return t == DefaultBasicTone()
}

// ToneParams controls ApplyToneAdjustments.
type ToneParams struct {
	BasicTone `yaml:",inline"`

	Vibrance       float32 `yaml:"vibrance"`        // -1..1
	Whites         float32 `yaml:"whites"`          // -1..1
	Blacks         float32 `yaml:"blacks"`          // -1..1
	Clarity        float32 `yaml:"clarity"`         // -1..1
	Dehaze         float32 `yaml:"dehaze"`          // -1..1
	Sharpness      float32 `yaml:"sharpness"`       // 0..1
	NoiseReduction float32 `yaml:"noise_reduction"` // 0..1

	Bands map[HueBand]HueBandAdjustment `yaml:"bands"`
}

// DefaultToneParams returns parameters that leave the image unchanged.
func DefaultToneParams() ToneParams {
	return ToneParams{BasicTone: DefaultBasicTone()}
}

// IsIdentity reports whether applying p is a no-op.
func (p ToneParams) IsIdentity() bool {
	return p.BasicTone.IsIdentity() &&
		p.Vibrance == 0 && p.Whites == 0 && p.Blacks == 0 &&
		p.Clarity == 0 && p.Dehaze == 0 &&
		p.Sharpness <= 0 && p.NoiseReduction <= 0 &&
		!p.hasBands()
}

func (p ToneParams) hasBands() bool {
	for _, a := range p.Bands {
		if !a.isZero() {
			return true
		}
	}
	return false
}

// WithBand returns a copy of p with the adjustment for band replaced.
func (p ToneParams) WithBand(band HueBand, adj HueBandAdjustment) ToneParams {
	bands := make(map[HueBand]HueBandAdjustment, len(p.Bands)+1)
	for k, v := range p.Bands {
		bands[k] = v
	}
	bands[band] = adj
	p.Bands = bands
	return p
}

// HueBand is one of the fixed hue ranges used by selective HSL adjustment.
type HueBand int

// Hue bands in application order.
const (
	HueRed HueBand = iota
	HueOrange
	HueYellow
	HueGreen
	HueCyan
	HueBlue
	HuePurple
	HueMagenta
	hueBandCount
)

var hueBandNames = []string{"red", "orange", "yellow", "green", "cyan", "blue", "purple", "magenta"}

// hueBandRanges holds [start, end] in degrees; start > end means the band wraps past 0.
var hueBandRanges = [hueBandCount][2]float32{
	HueRed:     {330, 30},
	HueOrange:  {15, 45},
	HueYellow:  {45, 75},
	HueGreen:   {75, 165},
	HueCyan:    {165, 195},
	HueBlue:    {195, 255},
	HuePurple:  {255, 285},
	HueMagenta: {285, 330},
}

// HueBands returns all bands in application order.
func HueBands() []HueBand {
	out := make([]HueBand, 0, hueBandCount)
	for b := HueRed; b < hueBandCount; b++ {
		out = append(out, b)
	}
	return out
}

// Range returns the band start and end hue in degrees.
func (b HueBand) Range() (start, end float32) {
	if b < 0 || b >= hueBandCount {
		return 0, 0
	}
	r := hueBandRanges[b]
	return r[0], r[1]
}

func (b HueBand) String() string { return enumName(hueBandNames, int(b)) }

// MarshalText implements encoding.TextMarshaler.
func (b HueBand) MarshalText() ([]byte, error) { return []byte(b.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *HueBand) UnmarshalText(text []byte) error {
	return parseEnum("hue band", hueBandNames, text, (*int)(b))
}

// HueBandAdjustment shifts hue and scales saturation/luminance of one band.
type HueBandAdjustment struct {
	HueShift   float32 `yaml:"hue"`        // degrees, -30..30
	Saturation float32 `yaml:"saturation"` // -1..1, relative
	Luminance  float32 `yaml:"luminance"`  // -1..1, relative
}

func (a HueBandAdjustment) isZero() bool {
	return a == HueBandAdjustment{}
}

// FilterCategory groups film presets.
type FilterCategory int

// Filter categories.
const (
	FilterNone FilterCategory = iota
	FilterFilm
	FilterVintage
	FilterModern
	FilterBW
	FilterCinematic
	FilterInstant
)

var filterCategoryNames = []string{"none", "film", "vintage", "modern", "bw", "cinematic", "instant"}

func (c FilterCategory) String() string { return enumName(filterCategoryNames, int(c)) }

// MarshalText implements encoding.TextMarshaler.
func (c FilterCategory) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *FilterCategory) UnmarshalText(text []byte) error {
	return parseEnum("filter category", filterCategoryNames, text, (*int)(c))
}

// FilterPreset is a named bundle of tone and film-emulation parameters.
type FilterPreset struct {
	ID          string
	Name        string
	DisplayName string
	Category    FilterCategory

	BasicTone

	Grain    float32 // 0..1
	Vignette float32 // 0..1
	Fade     float32 // 0..1, lifts blacks
	Dust     float32 // 0..1

	// OverlayColor is blended in when OverlayIntensity > 0.
	OverlayColor     Color
	OverlayIntensity float32
}

// FrameCategory groups frame styles.
type FrameCategory int

// Frame categories.
const (
	FrameNone FrameCategory = iota
	FrameSimple
	FrameInstant
	FrameFilm
	FrameModern
)

var frameCategoryNames = []string{"none", "simple", "instant", "film", "modern"}

func (c FrameCategory) String() string { return enumName(frameCategoryNames, int(c)) }

// MarshalText implements encoding.TextMarshaler.
func (c FrameCategory) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *FrameCategory) UnmarshalText(text []byte) error {
	return parseEnum("frame category", frameCategoryNames, text, (*int)(c))
}

// FrameStyle describes the border, mat and shadows drawn around a photo.
type FrameStyle struct {
	ID          string
	Name        string
	DisplayName string
	Category    FrameCategory

	Color            Color
	BorderWidthRatio float64 // fraction of source width
	BottomExtraRatio float64 // fraction of source height, added below the photo
	CornerRadius     float64 // pixels
	InnerShadow      bool
	OuterShadow      bool

	// Hints for UI layers, not used by ApplyFrame.
	ShowExifInfo        bool
	ShowDateStamp       bool
	ShowShotOnWatermark bool
}

// WatermarkMode selects how watermark text is built.
type WatermarkMode int

// Watermark modes.
const (
	// WatermarkShotOn renders "Shot on <make model>".
	WatermarkShotOn WatermarkMode = iota
	// WatermarkExifFrame renders make, model, lens and settings on separate lines.
	WatermarkExifFrame
	// WatermarkDateStamp renders the configured text or the raw EXIF date.
	WatermarkDateStamp
	// WatermarkCustom renders the configured text.
	WatermarkCustom
)

var watermarkModeNames = []string{"shot-on", "exif-frame", "date-stamp", "custom"}

func (m WatermarkMode) String() string { return enumName(watermarkModeNames, int(m)) }

// MarshalText implements encoding.TextMarshaler.
func (m WatermarkMode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *WatermarkMode) UnmarshalText(text []byte) error {
	return parseEnum("watermark mode", watermarkModeNames, text, (*int)(m))
}

// Position is a text anchor on the canvas.
type Position int

// Anchor positions.
const (
	TopLeft Position = iota
	TopCenter
	TopRight
	BottomLeft
	BottomCenter
	BottomRight
)

var positionNames = []string{"top-left", "top-center", "top-right", "bottom-left", "bottom-center", "bottom-right"}

func (p Position) String() string { return enumName(positionNames, int(p)) }

// MarshalText implements encoding.TextMarshaler.
func (p Position) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Position) UnmarshalText(text []byte) error {
	return parseEnum("position", positionNames, text, (*int)(p))
}

// WatermarkConfig controls the watermark overlay.
type WatermarkConfig struct {
	Enabled    bool          `yaml:"enabled"`
	Mode       WatermarkMode `yaml:"mode"`
	CustomText string        `yaml:"text"`
	Position   Position      `yaml:"position"`
	TextColor  Color         `yaml:"color"`
	FontSize   float64       `yaml:"font_size"` // pixels per 400 px of canvas width
	Opacity    float64       `yaml:"opacity"`   // 0..1

	ShowMake     bool `yaml:"show_make"`
	ShowModel    bool `yaml:"show_model"`
	ShowLensInfo bool `yaml:"show_lens"`
	ShowSettings bool `yaml:"show_settings"`
}

// DefaultWatermarkConfig returns a disabled shot-on watermark with default styling.
func DefaultWatermarkConfig() WatermarkConfig {
	return WatermarkConfig{
		Mode:      WatermarkShotOn,
		Position:  BottomRight,
		TextColor: Color{R: 255, G: 255, B: 255, A: 255},
		FontSize:  12,
		Opacity:   0.8,
		ShowMake:  true,
		ShowModel: true,
	}
}

// DateFormat is an output pattern for date stamps.
type DateFormat int

// Date formats.
const (
	DateFilm     DateFormat = iota // 'yy MM dd
	DateStandard                   // yyyy/MM/dd
	DateUS                         // MM/dd/yyyy
	DateEU                         // dd.MM.yyyy
	DateLong                       // yyyy年M月d日
)

var dateFormatNames = []string{"film", "standard", "us", "eu", "long"}

var dateFormatLayouts = []string{"'06 01 02", "2006/01/02", "01/02/2006", "02.01.2006", "2006年1月2日"}

// Layout returns the time layout for f.
func (f DateFormat) Layout() string {
	if f < 0 || int(f) >= len(dateFormatLayouts) {
		return dateFormatLayouts[DateFilm]
	}
	return dateFormatLayouts[f]
}

func (f DateFormat) String() string { return enumName(dateFormatNames, int(f)) }

// MarshalText implements encoding.TextMarshaler.
func (f DateFormat) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *DateFormat) UnmarshalText(text []byte) error {
	return parseEnum("date format", dateFormatNames, text, (*int)(f))
}

// DateStampStyle controls the film-camera style date imprint.
type DateStampStyle struct {
	Enabled  bool       `yaml:"enabled"`
	Format   DateFormat `yaml:"format"`
	Color    Color      `yaml:"color"`
	Position Position   `yaml:"position"`
	FontSize float64    `yaml:"font_size"` // pixels per 400 px of canvas width
}

// DefaultDateStampStyle returns a disabled orange film-style date stamp.
func DefaultDateStampStyle() DateStampStyle {
	return DateStampStyle{
		Format:   DateFilm,
		Color:    Color{R: 0xFF, G: 0x6B, B: 0x00, A: 0xFF},
		Position: BottomRight,
		FontSize: 14,
	}
}

// ExifData is camera metadata supplied by an external reader.
// Empty fields are treated as absent.
type ExifData struct {
	Make         string `yaml:"make"`
	Model        string `yaml:"model"`
	LensModel    string `yaml:"lens"`
	FocalLength  string `yaml:"focal_length"`
	FNumber      string `yaml:"f_number"`
	ExposureTime string `yaml:"exposure_time"`
	ISO          string `yaml:"iso"`
	DateTime     string `yaml:"date_time"` // 2006:01:02 15:04:05
}

// Color is a non-premultiplied 8-bit color with a hex text form (#rrggbb or #rrggbbaa).
type Color color.NRGBA

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA(c).RGBA()
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	if c.A == 0xFF {
		return []byte(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)), nil
	}
	return []byte(fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	s := strings.TrimPrefix(strings.TrimSpace(string(text)), "#")
	var v Color
	switch len(s) {
	case 6:
		v.A = 0xFF
		if _, err := fmt.Sscanf(s, "%02x%02x%02x", &v.R, &v.G, &v.B); err != nil {
			return fmt.Errorf("invalid color %q: %w", text, err)
		}
	case 8:
		if _, err := fmt.Sscanf(s, "%02x%02x%02x%02x", &v.R, &v.G, &v.B, &v.A); err != nil {
			return fmt.Errorf("invalid color %q: %w", text, err)
		}
	default:
		return fmt.Errorf("invalid color %q", text)
	}
	*c = v
	return nil
}

func enumName(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return fmt.Sprintf("unknown(%d)", i)
	}
	return names[i]
}

func parseEnum(kind string, names []string, text []byte, dst *int) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	for i, n := range names {
		if n == s {
			*dst = i
			return nil
		}
	}
	return fmt.Errorf("unknown %s %q", kind, text)
}
