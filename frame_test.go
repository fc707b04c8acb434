package photoframe

import (
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	white = color.NRGBA{255, 255, 255, 255}
	red   = color.NRGBA{255, 0, 0, 255}
)

func plainFrame(ratio float64) FrameStyle {
	return FrameStyle{ID: "test", Color: frameWhite, BorderWidthRatio: ratio}
}

func TestApplyFrame_identity(t *testing.T) {
	src := gradient(40, 30)
	requireSamePixels(t, src, ApplyFrame(src, NoFrame(), nil, nil, nil))

	wm := DefaultWatermarkConfig()
	ds := DefaultDateStampStyle()
	requireSamePixels(t, src, ApplyFrame(src, NoFrame(), &ExifData{Make: "Canon"}, &wm, &ds))
}

func TestApplyFrame_geometry(t *testing.T) {
	src := gradient(100, 200)
	got := ApplyFrame(src, plainFrame(0.1), nil, nil, nil)

	require.Equal(t, image.Pt(120, 220), got.Rect.Size())
	assert.Equal(t, white, got.NRGBAAt(0, 0))
	assert.Equal(t, white, got.NRGBAAt(119, 219))
	assert.Equal(t, white, got.NRGBAAt(9, 100))

	for y := 0; y < 200; y++ {
		for x := 0; x < 100; x++ {
			require.Equal(t, src.NRGBAAt(x, y), got.NRGBAAt(x+10, y+10), "photo pixel %d,%d", x, y)
		}
	}
}

func TestFrameStyle_Geometry(t *testing.T) {
	polaroid, _ := FrameStyleByID("polaroid")
	g := polaroid.Geometry(100, 200)
	assert.Equal(t, 4, g.Border)
	assert.Equal(t, 24, g.Bottom)
	assert.Equal(t, image.Rect(0, 0, 108, 232), g.Canvas)
	assert.Equal(t, image.Rect(4, 4, 104, 204), g.Photo)

	g = NoFrame().Geometry(10, 20)
	assert.Equal(t, g.Canvas, g.Photo)
}

func TestApplyFrame_outerShadow(t *testing.T) {
	style := plainFrame(0.1)
	style.OuterShadow = true
	got := ApplyFrame(gray(100, 100, 255), style, nil, nil, nil)

	edge := got.NRGBAAt(9, 50)
	assert.Less(t, edge.R, uint8(250))
	assert.Equal(t, edge.R, edge.B)
	assert.Equal(t, white, got.NRGBAAt(50, 50), "the photo covers the shadow")
}

func TestApplyFrame_innerShadow(t *testing.T) {
	box, _ := FrameStyleByID("shadow_box")
	got := ApplyFrame(gray(100, 100, 255), box, nil, nil, nil)

	assert.Less(t, got.NRGBAAt(50, 5).R, uint8(240))
	assert.Equal(t, white, got.NRGBAAt(50, 60))
}

func TestApplyFrame_roundedCorners(t *testing.T) {
	style, _ := FrameStyleByID("rounded")
	style.OuterShadow = false
	got := ApplyFrame(solid(100, 100, red), style, nil, nil, nil)

	require.Equal(t, image.Pt(106, 106), got.Rect.Size())
	assert.Zero(t, got.NRGBAAt(0, 0).A, "canvas corner is cut")
	assert.Equal(t, white, got.NRGBAAt(1, 53))
	assert.Equal(t, red, got.NRGBAAt(53, 53))
	assert.NotEqual(t, red, got.NRGBAAt(3, 3), "photo corner is clipped")
}

func TestApplyFrame_watermark(t *testing.T) {
	src := gray(400, 300, 0)
	wm := DefaultWatermarkConfig()
	wm.Enabled = true
	exif := &ExifData{Make: "Canon", Model: "Canon EOS R5"}

	got := ApplyFrame(src, NoFrame(), exif, &wm, nil)
	require.Equal(t, src.Rect, got.Rect)
	assert.True(t, anyLit(got, image.Rect(200, 250, 400, 300)), "text in the bottom right")
	assert.False(t, anyLit(got, image.Rect(0, 0, 200, 150)))

	wm.Position = TopLeft
	got = ApplyFrame(src, NoFrame(), exif, &wm, nil)
	assert.True(t, anyLit(got, image.Rect(0, 0, 200, 50)))
	assert.False(t, anyLit(got, image.Rect(200, 150, 400, 300)))
}

func TestApplyFrame_blankWatermarkDrawsNothing(t *testing.T) {
	src := gradient(60, 40)
	wm := DefaultWatermarkConfig()
	wm.Enabled = true

	requireSamePixels(t, src, ApplyFrame(src, NoFrame(), nil, &wm, nil))
}

func TestApplyFrame_dateStamp(t *testing.T) {
	defer func(f func() time.Time) { timeNow = f }(timeNow)
	timeNow = func() time.Time { return time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC) }

	src := gray(400, 300, 0)
	ds := DefaultDateStampStyle()
	ds.Enabled = true

	got := ApplyFrame(src, NoFrame(), nil, nil, &ds)
	assert.True(t, anyLit(got, image.Rect(200, 250, 400, 300)))
	assert.False(t, anyLit(got, image.Rect(0, 0, 400, 200)))

	c := got.NRGBAAt(0, 0)
	assert.Equal(t, color.NRGBA{0, 0, 0, 255}, c)
}

func TestApplyFrame_doesNotMutateSource(t *testing.T) {
	src := gradient(50, 50)
	before := append([]uint8(nil), src.Pix...)
	wm := DefaultWatermarkConfig()
	wm.Enabled = true

	for _, f := range FrameStyleList() {
		_ = ApplyFrame(src, f, &ExifData{Make: "Fujifilm"}, &wm, nil)
	}
	assert.Equal(t, before, src.Pix)
}

// anyLit reports whether any pixel within r has a non-zero colour channel.
func anyLit(img *image.NRGBA, r image.Rectangle) bool {
	r = r.Intersect(img.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := img.NRGBAAt(x, y)
			if c.R|c.G|c.B != 0 {
				return true
			}
		}
	}
	return false
}

func BenchmarkApplyFrame(b *testing.B) {
	src := gradient(640, 480)
	style, _ := FrameStyleByID("instax_mini")
	wm := DefaultWatermarkConfig()
	wm.Enabled = true
	exif := &ExifData{Make: "FUJIFILM", Model: "X100V"}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = ApplyFrame(src, style, exif, &wm, nil)
	}
}
