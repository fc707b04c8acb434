package photoframe

import (
	"image"
	"image/color"
	"math"
	"math/rand"
	"time"

	"github.com/fogleman/gg"
)

func newGrainRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // visual noise
}

// applyGrain scatters single-pixel-radius black or white dots at low alpha.
func applyGrain(buf *image.NRGBA, amount float32, rng *rand.Rand) *image.NRGBA {
	w, h := buf.Rect.Dx(), buf.Rect.Dy()
	dots := int(float32(w*h) * amount * 0.05)
	if dots <= 0 {
		return buf
	}
	spread := int(amount * 50)
	alpha := clampInt(int(amount * 80))

	return drawLayer(buf, func(dc *gg.Context) {
		for i := 0; i < dots; i++ {
			x := rng.Float64() * float64(w)
			y := rng.Float64() * float64(h)
			shade := rng.Intn(2*spread+1) - spread
			if shade > 0 {
				dc.SetColor(color.NRGBA{R: 255, G: 255, B: 255, A: alpha})
			} else {
				dc.SetColor(color.NRGBA{A: alpha})
			}
			dc.DrawCircle(x, y, 1)
			dc.Fill()
		}
	})
}

// applyVignette darkens toward the edges with a radial gradient that is transparent
// over the inner half of its radius. Larger amounts shrink the radius.
func applyVignette(buf *image.NRGBA, amount float32) *image.NRGBA {
	w, h := float64(buf.Rect.Dx()), float64(buf.Rect.Dy())
	cx, cy := w/2, h/2
	radius := math.Max(w, h) * (0.7 - float64(amount)*0.3)
	if radius <= 0 {
		radius = 1
	}
	edge := color.NRGBA{A: clampInt(int(amount * 200))}

	return drawLayer(buf, func(dc *gg.Context) {
		g := gg.NewRadialGradient(cx, cy, 0, cx, cy, radius)
		g.AddColorStop(0, color.Transparent)
		g.AddColorStop(0.5, color.Transparent)
		g.AddColorStop(1, edge)
		dc.SetFillStyle(g)
		dc.DrawRectangle(0, 0, w, h)
		dc.Fill()
	})
}

// applyDust scatters warm translucent specks from a fixed seed and, for heavy dust,
// washes a light leak over the left edge.
func applyDust(buf *image.NRGBA, amount float32) *image.NRGBA {
	w, h := float64(buf.Rect.Dx()), float64(buf.Rect.Dy())
	rng := rand.New(rand.NewSource(dustSeed)) //nolint:gosec // reproducible pattern
	specks := int(amount * 20)

	return drawLayer(buf, func(dc *gg.Context) {
		for i := 0; i < specks; i++ {
			x := rng.Float64() * w
			y := rng.Float64() * h
			size := rng.Float64()*3 + 1
			a := clampInt(int(rng.Float64() * 60 * float64(amount)))
			dc.SetColor(color.NRGBA{R: 240, G: 230, B: 200, A: a})
			dc.DrawCircle(x, y, size)
			dc.Fill()
		}

		if amount > 0.5 {
			leak := gg.NewLinearGradient(0, 0, w*0.3, h)
			leak.AddColorStop(0, color.NRGBA{R: 255, G: 200, B: 100, A: clampInt(int((amount - 0.5) * 40))})
			leak.AddColorStop(1, color.Transparent)
			dc.SetFillStyle(leak)
			dc.DrawRectangle(0, 0, w*0.3, h)
			dc.Fill()
		}
	})
}
