package photoframe

import (
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // Decode-only input format.
)

// DefaultQuality is the JPEG quality used when none is given.
const DefaultQuality = 95

// DecodeFile reads a JPEG, PNG, GIF, TIFF, BMP or WebP image from disk, applying its
// EXIF orientation.
func DecodeFile(path string) (*image.NRGBA, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return CloneBuffer(img), nil
}

// Decode reads an image from r, applying its EXIF orientation.
func Decode(r io.Reader) (*image.NRGBA, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return CloneBuffer(img), nil
}

// EncodeFile writes img to path in the format implied by its extension.
// quality applies to JPEG output; values outside 1..100 use DefaultQuality.
func EncodeFile(path string, img image.Image, quality int) error {
	if err := imaging.Save(img, path, imaging.JPEGQuality(normQuality(quality))); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

// Encode writes img to w in the named format ("jpeg", "png", "gif", "tiff", "bmp").
func Encode(w io.Writer, img image.Image, format string, quality int) error {
	f, err := imaging.FormatFromExtension(format)
	if err != nil {
		return fmt.Errorf("format %q: %w", format, err)
	}
	if err := imaging.Encode(w, img, f, imaging.JPEGQuality(normQuality(quality))); err != nil {
		return fmt.Errorf("encode %s: %w", format, err)
	}
	return nil
}

func normQuality(q int) int {
	if q < 1 || q > 100 {
		return DefaultQuality
	}
	return q
}
