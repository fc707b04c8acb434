package photoframe_test

import (
	"fmt"
	"image"
	"time"

	"github.com/vearutop/photoframe"
)

func ExampleProcess() {
	img := image.NewNRGBA(image.Rect(0, 0, 300, 200))

	r := photoframe.DefaultRecipe()
	r.Tone.Exposure = 0.3
	r.Filter = "kodak_portra"
	r.Frame = "polaroid"

	out, err := photoframe.Process(img, r)
	if err != nil {
		return
	}
	fmt.Println(out.Bounds().Dx(), out.Bounds().Dy())

	// Output:
	// 324 248
}

func ExampleParseRecipe() {
	r, err := photoframe.ParseRecipe([]byte(`
filter: fuji_velvia
frame: thin_white
watermark:
  enabled: true
  position: top-left
`))
	if err != nil {
		return
	}
	fmt.Println(r.Filter, r.Frame, r.Watermark.Mode, r.Watermark.Position)

	// Output:
	// fuji_velvia thin_white shot-on top-left
}

func ExampleWatermarkText() {
	cfg := photoframe.DefaultWatermarkConfig()
	exif := &photoframe.ExifData{Make: "Canon", Model: "Canon EOS R5"}

	fmt.Println(photoframe.WatermarkText(cfg, exif))

	// Output:
	// Shot on Canon EOS R5
}

func ExampleDateStampText() {
	style := photoframe.DefaultDateStampStyle()
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	fmt.Println(photoframe.DateStampText(style, "2023:07:15 14:30:00", now))
	style.Format = photoframe.DateStandard
	fmt.Println(photoframe.DateStampText(style, "", now))

	// Output:
	// '23 07 15
	// 2024/05/01
}

func ExampleExifFromTags() {
	e := photoframe.ExifFromTags(map[string]string{
		photoframe.TagFocalLength:  "35/1",
		photoframe.TagFNumber:      "14/10",
		photoframe.TagExposureTime: "0.008",
		photoframe.TagISO:          "200",
	})
	fmt.Println(photoframe.SettingsLine(e))

	// Output:
	// 35mm f/1.4 1/125 ISO 200
}

func ExampleFrameStyle_Geometry() {
	style, _ := photoframe.FrameStyleByID("instax_mini")
	g := style.Geometry(400, 600)
	fmt.Println(g.Canvas.Dx(), g.Canvas.Dy(), g.Photo.Min)

	// Output:
	// 428 676 (14,14)
}
