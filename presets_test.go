package photoframe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterPresetCatalog(t *testing.T) {
	list := FilterPresetList()
	require.Len(t, list, 16)
	assert.Equal(t, originalPresetID, list[0].ID)

	seen := map[string]bool{}
	for _, p := range list {
		assert.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true

		got, ok := FilterPresetByID(p.ID)
		require.True(t, ok, p.ID)
		assert.Equal(t, p, got)
	}

	_, ok := FilterPresetByID("kodachrome")
	assert.False(t, ok)

	portra, _ := FilterPresetByID("kodak_portra")
	assert.Equal(t, FilterFilm, portra.Category)
	assert.InDelta(t, 0.15, portra.Grain, 1e-6)

	cine, _ := FilterPresetByID("cinestill_800t")
	assert.Equal(t, Color{R: 0, G: 0xAA, B: 0xFF, A: 0xFF}, cine.OverlayColor)
	assert.Greater(t, cine.OverlayIntensity, float32(0))
}

func TestFilterPresetsByCategory(t *testing.T) {
	counts := map[FilterCategory]int{
		FilterNone: 1, FilterFilm: 4, FilterCinematic: 1, FilterVintage: 3,
		FilterModern: 2, FilterBW: 3, FilterInstant: 2,
	}
	total := 0
	for c, n := range counts {
		got := FilterPresetsByCategory(c)
		assert.Len(t, got, n, c.String())
		for _, p := range got {
			assert.Equal(t, c, p.Category)
		}
		total += n
	}
	assert.Equal(t, 16, total)

	for _, p := range FilterPresetsByCategory(FilterBW) {
		assert.Zero(t, p.Saturation, p.ID)
	}
}

func TestFilterPresetList_isACopy(t *testing.T) {
	list := FilterPresetList()
	list[1].Grain = 99

	p, _ := FilterPresetByID(list[1].ID)
	assert.NotEqual(t, float32(99), p.Grain)
}

func TestFrameStyleCatalog(t *testing.T) {
	list := FrameStyleList()
	require.Len(t, list, 12)
	assert.Equal(t, noneFrameID, list[0].ID)
	assert.Zero(t, list[0].BorderWidthRatio)
	assert.False(t, list[0].OuterShadow)

	seen := map[string]bool{}
	for _, f := range list {
		assert.False(t, seen[f.ID], "duplicate id %s", f.ID)
		seen[f.ID] = true

		got, ok := FrameStyleByID(f.ID)
		require.True(t, ok, f.ID)
		assert.Equal(t, f, got)
	}

	polaroid, _ := FrameStyleByID("polaroid")
	assert.Equal(t, FrameInstant, polaroid.Category)
	assert.InDelta(t, 0.12, polaroid.BottomExtraRatio, 1e-9)

	strip, _ := FrameStyleByID("film_strip")
	assert.True(t, strip.ShowExifInfo)
	assert.Equal(t, frameBlack, strip.Color)

	_, ok := FrameStyleByID("gold_leaf")
	assert.False(t, ok)
}

func TestFrameStylesByCategory(t *testing.T) {
	assert.Len(t, FrameStylesByCategory(FrameNone), 1)
	assert.Len(t, FrameStylesByCategory(FrameSimple), 4)
	assert.Len(t, FrameStylesByCategory(FrameInstant), 3)
	assert.Len(t, FrameStylesByCategory(FrameFilm), 2)
	assert.Len(t, FrameStylesByCategory(FrameModern), 2)
}

func TestCategory_text(t *testing.T) {
	var fc FilterCategory
	require.NoError(t, fc.UnmarshalText([]byte("Cinematic")))
	assert.Equal(t, FilterCinematic, fc)
	assert.Error(t, fc.UnmarshalText([]byte("retro")))

	var frc FrameCategory
	require.NoError(t, frc.UnmarshalText([]byte("instant")))
	assert.Equal(t, FrameInstant, frc)
	assert.Equal(t, "modern", FrameModern.String())
}
