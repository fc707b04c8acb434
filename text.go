package photoframe

import (
	"image/color"
	"strings"
	"sync"
	"time"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

const (
	exifDateLayout   = "2006:01:02 15:04:05"
	watermarkPadding = 0.03
	dateStampPadding = 0.04
)

// timeNow is the clock used when a date stamp has no usable EXIF date.
var timeNow = time.Now

var (
	regularFont  = sync.OnceValues(func() (*opentype.Font, error) { return opentype.Parse(goregular.TTF) })
	monoBoldFont = sync.OnceValues(func() (*opentype.Font, error) { return opentype.Parse(gomonobold.TTF) })
)

// newFace returns a face of the given pixel size, or the built-in bitmap face
// if the font can not be rasterised at that size.
func newFace(load func() (*opentype.Font, error), size float64) font.Face {
	f, err := load()
	if err != nil || !(size > 0) {
		return basicfont.Face7x13
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return basicfont.Face7x13
	}
	return face
}

// WatermarkText builds the watermark string for cfg.Mode.
// An empty result means nothing is drawn.
func WatermarkText(cfg WatermarkConfig, exif *ExifData) string {
	var e ExifData
	if exif != nil {
		e = *exif
	}

	switch cfg.Mode {
	case WatermarkShotOn:
		return shotOnText(cfg, e)
	case WatermarkExifFrame:
		return exifFrameText(cfg, e)
	case WatermarkDateStamp:
		if strings.TrimSpace(cfg.CustomText) != "" {
			return cfg.CustomText
		}
		return e.DateTime
	default:
		return cfg.CustomText
	}
}

func shotOnText(cfg WatermarkConfig, e ExifData) string {
	mk := strings.TrimSpace(e.Make)
	md := strings.TrimSpace(e.Model)
	if !cfg.ShowMake {
		mk = ""
	}
	if !cfg.ShowModel {
		md = ""
	}

	var camera string
	switch {
	case mk == "" && md == "":
		return ""
	case mk == "":
		camera = md
	case md == "":
		camera = mk
	case containsFold(md, mk):
		camera = md
	case containsFold(mk, md):
		camera = mk
	default:
		camera = mk + " " + md
	}
	return "Shot on " + camera
}

func exifFrameText(cfg WatermarkConfig, e ExifData) string {
	var lines []string
	add := func(s string) {
		if s = strings.TrimSpace(s); s != "" {
			lines = append(lines, s)
		}
	}

	add(e.Make)
	add(e.Model)
	if cfg.ShowLensInfo {
		add(e.LensModel)
	}
	if cfg.ShowSettings {
		add(SettingsLine(&e))
	}
	return strings.Join(lines, "\n")
}

// SettingsLine formats the exposure settings as "{focal}mm f/{f} {exposure} ISO {iso}",
// skipping absent fields.
func SettingsLine(e *ExifData) string {
	if e == nil {
		return ""
	}

	var parts []string
	if e.FocalLength != "" {
		parts = append(parts, e.FocalLength+"mm")
	}
	if e.FNumber != "" {
		parts = append(parts, "f/"+e.FNumber)
	}
	if e.ExposureTime != "" {
		parts = append(parts, e.ExposureTime)
	}
	if e.ISO != "" {
		parts = append(parts, "ISO "+e.ISO)
	}
	return strings.Join(parts, " ")
}

// DateStampText formats dateTime (EXIF "2006:01:02 15:04:05") with the style's layout.
// Missing or malformed input falls back to now.
func DateStampText(style DateStampStyle, dateTime string, now time.Time) string {
	t, err := time.Parse(exifDateLayout, strings.TrimSpace(dateTime))
	if err != nil {
		t = now
	}
	return t.Format(style.Format.Layout())
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// textBlock is a measured stack of lines, drawn upward from the baseline of the last one.
type textBlock struct {
	lines      []string
	w, h, line float64
}

func measureText(dc *gg.Context, text string) textBlock {
	b := textBlock{lines: strings.Split(text, "\n"), line: dc.FontHeight()}
	for _, l := range b.lines {
		if w, _ := dc.MeasureString(l); w > b.w {
			b.w = w
		}
	}
	b.h = b.line * float64(len(b.lines))
	return b
}

func (b textBlock) draw(dc *gg.Context, x, y float64) {
	n := len(b.lines)
	for i, l := range b.lines {
		dc.DrawString(l, x, y-float64(n-1-i)*b.line)
	}
}

// anchor returns the left x and the baseline y of a tw×th block placed at pos.
func anchor(pos Position, cw, ch, tw, th, pad float64) (x, y float64) {
	switch pos {
	case TopLeft, BottomLeft:
		x = pad
	case TopCenter, BottomCenter:
		x = (cw - tw) / 2
	default:
		x = cw - tw - pad
	}

	switch pos {
	case TopLeft, TopCenter, TopRight:
		y = pad + th
	default:
		y = ch - pad
	}
	return x, y
}

func drawWatermark(dc *gg.Context, cfg WatermarkConfig, exif *ExifData) {
	text := WatermarkText(cfg, exif)
	if strings.TrimSpace(text) == "" {
		return
	}

	cw, ch := float64(dc.Width()), float64(dc.Height())
	face := newFace(regularFont, cfg.FontSize*cw/textReferenceWidth)
	defer face.Close()
	dc.SetFontFace(face)

	b := measureText(dc, text)
	x, y := anchor(cfg.Position, cw, ch, b.w, b.h, cw*watermarkPadding)

	dc.SetRGBA255(0, 0, 0, 60)
	dc.DrawRoundedRectangle(x-8, y-b.h-4, b.w+16, b.h+12, 4)
	dc.Fill()

	c := color.NRGBA(cfg.TextColor)
	c.A = uint8(clamp01(float32(cfg.Opacity)) * 255)
	dc.SetColor(c)
	b.draw(dc, x, y)
}

func drawDateStamp(dc *gg.Context, style DateStampStyle, exif *ExifData) {
	var dateTime string
	if exif != nil {
		dateTime = exif.DateTime
	}
	text := DateStampText(style, dateTime, timeNow())

	cw, ch := float64(dc.Width()), float64(dc.Height())
	face := newFace(monoBoldFont, style.FontSize*cw/textReferenceWidth)
	defer face.Close()
	dc.SetFontFace(face)

	b := measureText(dc, text)
	x, y := anchor(style.Position, cw, ch, b.w, b.h, cw*dateStampPadding)

	dc.SetColor(color.NRGBA(style.Color))
	b.draw(dc, x, y)
}
