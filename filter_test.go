package photoframe

import (
	"image/color"
	"math/rand"
	"testing"

	"github.com/fogleman/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func basicPreset(fn func(p *FilterPreset)) FilterPreset {
	p := FilterPreset{ID: "test", BasicTone: DefaultBasicTone()}
	fn(&p)
	return p
}

func TestApplyFilter_original(t *testing.T) {
	src := gradient(31, 17)
	before := append([]uint8(nil), src.Pix...)

	got := ApplyFilter(src, OriginalPreset())
	requireSamePixels(t, src, got)
	assert.Equal(t, before, src.Pix)
}

func TestApplyFilter_neutralPresetIsIdentity(t *testing.T) {
	src := gradient(12, 12)
	requireSamePixels(t, src, ApplyFilter(src, basicPreset(func(*FilterPreset) {})))
}

func TestApplyFilter_basic(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   color.NRGBA
		set  func(p *FilterPreset)
		want color.NRGBA
	}{
		{"exposure", color.NRGBA{100, 50, 20, 255}, func(p *FilterPreset) { p.Exposure = 0.5 }, color.NRGBA{150, 75, 30, 255}},
		{"temperature", color.NRGBA{100, 100, 100, 255}, func(p *FilterPreset) { p.Temperature = 1 }, color.NRGBA{130, 100, 70, 255}},
		{"tint", color.NRGBA{100, 100, 100, 255}, func(p *FilterPreset) { p.Tint = -1 }, color.NRGBA{100, 130, 100, 255}},
		{"fade", color.NRGBA{0, 10, 250, 255}, func(p *FilterPreset) { p.Fade = 0.25 }, color.NRGBA{10, 20, 255, 255}},
		{"overlay", color.NRGBA{0, 0, 0, 255}, func(p *FilterPreset) {
			p.OverlayColor = Color{0, 170, 255, 255}
			p.OverlayIntensity = 0.5
		}, color.NRGBA{0, 85, 127, 255}},
		{"overlay needs intensity", color.NRGBA{9, 9, 9, 255}, func(p *FilterPreset) {
			p.OverlayColor = Color{255, 0, 0, 255}
		}, color.NRGBA{9, 9, 9, 255}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := ApplyFilter(solid(4, 4, tc.in), basicPreset(tc.set))
			assert.Equal(t, tc.want, got.NRGBAAt(2, 2))
		})
	}
}

func TestApplyFilter_clampsBeforeFade(t *testing.T) {
	p := basicPreset(func(p *FilterPreset) {
		p.Brightness = -1
		p.Fade = 0.5
	})
	got := ApplyFilter(gray(2, 2, 200), p)
	assert.Equal(t, uint8(20), got.Pix[0], "fade lifts from the clamped value")
}

func TestApplyFilter_bwPresetsStayGray(t *testing.T) {
	for _, id := range []string{"bw_classic", "bw_high_contrast", "bw_film_noir"} {
		t.Run(id, func(t *testing.T) {
			p, ok := FilterPresetByID(id)
			require.True(t, ok)

			got := ApplyFilter(gradient(40, 30), p)
			for i := 0; i < len(got.Pix); i += 4 {
				require.Equal(t, got.Pix[i], got.Pix[i+1])
				require.Equal(t, got.Pix[i], got.Pix[i+2])
			}
		})
	}
}

func TestApplyFilter_dustIsDeterministic(t *testing.T) {
	p := basicPreset(func(p *FilterPreset) { p.Dust = 0.8 })
	src := gray(64, 48, 60)

	a := ApplyFilter(src, p)
	b := ApplyFilter(src, p)
	requireSamePixels(t, a, b)
	assert.NotEqual(t, src.Pix, a.Pix)

	// Above 0.5 a warm light leak covers the top-left corner.
	assert.Greater(t, a.NRGBAAt(0, 0).R, uint8(60))
	assert.Greater(t, a.NRGBAAt(0, 0).R, a.NRGBAAt(0, 0).B)
}

func TestApplyFilter_grainVaries(t *testing.T) {
	p := basicPreset(func(p *FilterPreset) { p.Grain = 0.5 })
	src := gray(64, 64, 128)

	a := ApplyFilter(src, p)
	b := ApplyFilter(src, p)
	assert.NotEqual(t, src.Pix, a.Pix)
	assert.NotEqual(t, a.Pix, b.Pix)
}

func TestApplyGrain_seeded(t *testing.T) {
	src := gray(32, 32, 128)
	a := applyGrain(CloneBuffer(src), 0.4, rand.New(rand.NewSource(7)))
	b := applyGrain(CloneBuffer(src), 0.4, rand.New(rand.NewSource(7)))
	requireSamePixels(t, a, b)

	tiny := gray(2, 2, 128)
	requireSamePixels(t, tiny, applyGrain(tiny, 0.1, rand.New(rand.NewSource(1))))
}

func TestApplyFilter_vignette(t *testing.T) {
	p := basicPreset(func(p *FilterPreset) { p.Vignette = 0.5 })
	got := ApplyFilter(gray(64, 64, 200), p)

	assert.Equal(t, uint8(200), got.NRGBAAt(32, 32).R, "centre is untouched")
	assert.Less(t, got.NRGBAAt(0, 0).R, uint8(150))
	assert.Less(t, got.NRGBAAt(0, 0).R, got.NRGBAAt(10, 32).R)
}

func TestApplyFilter_presetsKeepSize(t *testing.T) {
	src := gradient(50, 30)
	for _, p := range FilterPresetList() {
		got := ApplyFilter(src, p)
		assert.Equal(t, src.Rect.Size(), got.Rect.Size(), p.ID)
	}
}

func BenchmarkApplyFilter(b *testing.B) {
	src := gradient(640, 480)
	for _, id := range []string{"kodak_portra", "faded_memory", "cinestill_800t"} {
		p, _ := FilterPresetByID(id)
		b.Run(id, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = ApplyFilter(src, p)
			}
		})
	}
}

func TestDrawLayer_roundTrip(t *testing.T) {
	src := gradient(8, 8)
	requireSamePixels(t, src, drawLayer(src, func(*gg.Context) {}))

	src = solid(2, 2, color.NRGBA{123, 57, 201, 77})
	got := drawLayer(src, func(*gg.Context) {}).NRGBAAt(1, 1)
	assert.Equal(t, uint8(77), got.A)
	assert.InDelta(t, 123, got.R, 3)
	assert.InDelta(t, 57, got.G, 3)
	assert.InDelta(t, 201, got.B, 3)

	got = drawLayer(solid(1, 1, color.NRGBA{200, 10, 10, 0}), func(*gg.Context) {}).NRGBAAt(0, 0)
	assert.Equal(t, color.NRGBA{}, got)
}
