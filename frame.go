package photoframe

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// FrameGeometry is the layout of a framed photo.
type FrameGeometry struct {
	Border int
	Bottom int
	Canvas image.Rectangle
	Photo  image.Rectangle
}

// Geometry computes the canvas and inset photo rectangle for a w×h source.
func (s FrameStyle) Geometry(w, h int) FrameGeometry {
	b := int(float64(w) * s.BorderWidthRatio)
	bottom := int(float64(h) * s.BottomExtraRatio)
	return FrameGeometry{
		Border: b,
		Bottom: bottom,
		Canvas: image.Rect(0, 0, w+2*b, h+2*b+bottom),
		Photo:  image.Rect(b, b, b+w, b+h),
	}
}

// ApplyFrame places src on a frame canvas and draws the optional watermark and
// date stamp. The "none" style with both overlays disabled (or nil) returns an
// unmodified copy.
func ApplyFrame(src *image.NRGBA, style FrameStyle, exif *ExifData, wm *WatermarkConfig, ds *DateStampStyle) *image.NRGBA {
	photo := CloneBuffer(src)
	showWatermark := wm != nil && wm.Enabled
	showDate := ds != nil && ds.Enabled
	if style.ID == noneFrameID && !showWatermark && !showDate {
		return photo
	}

	g := style.Geometry(photo.Rect.Dx(), photo.Rect.Dy())
	canvas := image.NewRGBA(g.Canvas)
	dc := gg.NewContextForRGBA(canvas)

	fillFrame(dc, style, g)
	if style.OuterShadow {
		drawOuterShadow(canvas, g)
	}
	drawPhoto(dc, canvas, photo, g, style.CornerRadius)
	if style.InnerShadow {
		drawInnerShadow(dc, g)
	}

	if showWatermark {
		drawWatermark(dc, *wm, exif)
	}
	if showDate {
		drawDateStamp(dc, *ds, exif)
	}
	return imaging.Clone(canvas)
}

func fillFrame(dc *gg.Context, style FrameStyle, g FrameGeometry) {
	w, h := float64(g.Canvas.Dx()), float64(g.Canvas.Dy())
	dc.SetColor(style.Color)
	if style.CornerRadius > 0 {
		dc.DrawRoundedRectangle(0, 0, w, h, style.CornerRadius)
	} else {
		dc.DrawRectangle(0, 0, w, h)
	}
	dc.Fill()
}

// drawOuterShadow composites a soft dark halo around the photo area.
func drawOuterShadow(canvas *image.RGBA, g FrameGeometry) {
	layer := image.NewRGBA(g.Canvas)
	sc := gg.NewContextForRGBA(layer)
	r := g.Photo
	sc.SetRGBA255(0, 0, 0, 30)
	sc.DrawRectangle(
		float64(r.Min.X)-outerShadowSpread, float64(r.Min.Y)-outerShadowSpread,
		float64(r.Dx())+2*outerShadowSpread, float64(r.Dy())+2*outerShadowSpread,
	)
	sc.Fill()

	blurred := imaging.Blur(layer, outerShadowSigma)
	draw.Draw(canvas, canvas.Bounds(), blurred, image.Point{}, draw.Over)
}

func drawPhoto(dc *gg.Context, canvas *image.RGBA, photo *image.NRGBA, g FrameGeometry, radius float64) {
	if radius <= 0 {
		draw.Draw(canvas, g.Photo, photo, image.Point{}, draw.Over)
		return
	}

	r := g.Photo
	dc.Push()
	dc.DrawRoundedRectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()), radius)
	dc.Clip()
	dc.DrawImage(photo, r.Min.X, r.Min.Y)
	dc.Pop()
}

func drawInnerShadow(dc *gg.Context, g FrameGeometry) {
	r := g.Photo
	x, y := float64(r.Min.X), float64(r.Min.Y)
	grad := gg.NewLinearGradient(x, y, x, y+innerShadowHeight)
	grad.AddColorStop(0, color.NRGBA{A: 40})
	grad.AddColorStop(1, color.Transparent)

	dc.SetFillStyle(grad)
	dc.DrawRectangle(x, y, float64(r.Dx()), innerShadowHeight)
	dc.Fill()
}
