package photoframe

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Tag names accepted by ExifFromTags, as reported by common EXIF readers.
const (
	TagMake         = "Make"
	TagModel        = "Model"
	TagLensModel    = "LensModel"
	TagFocalLength  = "FocalLength"
	TagFNumber      = "FNumber"
	TagExposureTime = "ExposureTime"
	TagISO          = "ISOSpeedRatings"
	TagDateTime     = "DateTime"
)

// Alternative spellings, checked when the primary tag is missing.
var tagAliases = map[string][]string{
	TagISO:      {"PhotographicSensitivity", "ISO"},
	TagDateTime: {"DateTimeOriginal"},
}

// ExifFromTags builds display-ready EXIF data from raw tag strings.
// Malformed numeric values are dropped. It returns nil if no field survives.
func ExifFromTags(tags map[string]string) *ExifData {
	get := func(name string) string {
		if v := strings.TrimSpace(tags[name]); v != "" {
			return v
		}
		for _, alt := range tagAliases[name] {
			if v := strings.TrimSpace(tags[alt]); v != "" {
				return v
			}
		}
		return ""
	}

	e := &ExifData{
		Make:      get(TagMake),
		Model:     get(TagModel),
		LensModel: get(TagLensModel),
		DateTime:  get(TagDateTime),
	}

	if v, ok := parseRational(get(TagFocalLength)); ok {
		e.FocalLength = fmt.Sprintf("%.0f", v)
	}
	if v, ok := parseRational(get(TagFNumber)); ok {
		e.FNumber = fmt.Sprintf("%.1f", v)
	}
	if v, ok := parseRational(get(TagExposureTime)); ok && v > 0 {
		e.ExposureTime = formatExposure(v)
	}
	if iso, err := strconv.Atoi(get(TagISO)); err == nil && iso > 0 {
		e.ISO = strconv.Itoa(iso)
	}

	if *e == (ExifData{}) {
		return nil
	}
	return e
}

// formatExposure renders sub-second times as "1/N" and longer ones in seconds.
func formatExposure(v float64) string {
	if v < 1 {
		return "1/" + strconv.Itoa(int(math.Round(1/v)))
	}
	return strconv.FormatFloat(v, 'f', -1, 64) + "s"
}

// parseRational parses "n/d" or a plain decimal.
func parseRational(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}

	num, den, ok := strings.Cut(s, "/")
	if !ok {
		v, err := strconv.ParseFloat(s, 64)
		return v, err == nil && !math.IsNaN(v) && !math.IsInf(v, 0)
	}

	n, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil {
		return 0, false
	}
	d, err := strconv.ParseFloat(strings.TrimSpace(den), 64)
	if err != nil || d == 0 {
		return 0, false
	}
	return n / d, true
}
