package photoframe

// tone builds a BasicTone starting from neutral values.
func tone(fn func(t *BasicTone)) BasicTone {
	t := DefaultBasicTone()
	fn(&t)
	return t
}

var filterPresets = []FilterPreset{
	{ID: originalPresetID, Name: "Original", DisplayName: "オリジナル", Category: FilterNone, BasicTone: DefaultBasicTone()},

	{
		ID: "kodak_portra", Name: "Portra 400", DisplayName: "Portra 400", Category: FilterFilm,
		BasicTone: tone(func(t *BasicTone) {
			t.Temperature, t.Saturation, t.Contrast = 0.08, 0.92, 1.05
			t.Highlights, t.Shadows = -0.1, 0.15
		}),
		Grain: 0.15, Fade: 0.05,
	},
	{
		ID: "kodak_gold", Name: "Gold 200", DisplayName: "Gold 200", Category: FilterFilm,
		BasicTone: tone(func(t *BasicTone) {
			t.Temperature, t.Saturation, t.Contrast, t.Brightness = 0.15, 1.1, 1.1, 0.05
		}),
		Grain: 0.12,
	},
	{
		ID: "fuji_superia", Name: "Superia", DisplayName: "Superia", Category: FilterFilm,
		BasicTone: tone(func(t *BasicTone) {
			t.Temperature, t.Tint, t.Saturation, t.Contrast = -0.05, 0.03, 1.05, 1.08
		}),
		Grain: 0.1,
	},
	{
		ID: "fuji_velvia", Name: "Velvia", DisplayName: "Velvia", Category: FilterFilm,
		BasicTone: tone(func(t *BasicTone) {
			t.Saturation, t.Contrast, t.Brightness = 1.35, 1.15, 0.02
		}),
		Grain: 0.08,
	},
	{
		ID: "cinestill_800t", Name: "CineStill 800T", DisplayName: "800T", Category: FilterCinematic,
		BasicTone: tone(func(t *BasicTone) {
			t.Temperature, t.Tint, t.Saturation, t.Contrast, t.Highlights = -0.15, 0.05, 0.9, 1.12, 0.1
		}),
		Grain:        0.2,
		OverlayColor: Color{R: 0x00, G: 0xAA, B: 0xFF, A: 0xFF}, OverlayIntensity: 0.08,
	},

	{
		ID: "vintage_warm", Name: "Warm Vintage", DisplayName: "ウォームヴィンテージ", Category: FilterVintage,
		BasicTone: tone(func(t *BasicTone) {
			t.Temperature, t.Saturation, t.Contrast = 0.2, 0.85, 1.08
		}),
		Fade: 0.12, Vignette: 0.25, Grain: 0.18,
	},
	{
		ID: "vintage_cool", Name: "Cool Vintage", DisplayName: "クールヴィンテージ", Category: FilterVintage,
		BasicTone: tone(func(t *BasicTone) {
			t.Temperature, t.Saturation, t.Contrast = -0.12, 0.8, 1.05
		}),
		Fade: 0.15, Vignette: 0.2, Grain: 0.15,
	},
	{
		ID: "faded_memory", Name: "Faded Memory", DisplayName: "フェードメモリー", Category: FilterVintage,
		BasicTone: tone(func(t *BasicTone) {
			t.Saturation, t.Contrast = 0.7, 0.92
		}),
		Fade: 0.25, Vignette: 0.3, Grain: 0.2, Dust: 0.1,
	},

	{
		ID: "clean", Name: "Clean", DisplayName: "クリーン", Category: FilterModern,
		BasicTone: tone(func(t *BasicTone) {
			t.Contrast, t.Saturation, t.Highlights, t.Shadows = 1.05, 1.02, -0.05, 0.05
		}),
	},
	{
		ID: "moody", Name: "Moody", DisplayName: "ムーディー", Category: FilterModern,
		BasicTone: tone(func(t *BasicTone) {
			t.Contrast, t.Saturation, t.Shadows, t.Highlights = 1.2, 0.88, -0.1, -0.15
		}),
		Vignette: 0.15,
	},

	{
		ID: "bw_classic", Name: "B&W Classic", DisplayName: "クラシックB&W", Category: FilterBW,
		BasicTone: tone(func(t *BasicTone) {
			t.Saturation, t.Contrast = 0, 1.15
		}),
		Grain: 0.1,
	},
	{
		ID: "bw_high_contrast", Name: "B&W High", DisplayName: "ハイコントラスト", Category: FilterBW,
		BasicTone: tone(func(t *BasicTone) {
			t.Saturation, t.Contrast, t.Shadows, t.Highlights = 0, 1.4, -0.1, 0.1
		}),
	},
	{
		ID: "bw_film_noir", Name: "Film Noir", DisplayName: "フィルムノワール", Category: FilterBW,
		BasicTone: tone(func(t *BasicTone) {
			t.Saturation, t.Contrast = 0, 1.25
		}),
		Vignette: 0.35, Grain: 0.15,
	},

	{
		ID: "polaroid", Name: "Polaroid", DisplayName: "ポラロイド", Category: FilterInstant,
		BasicTone: tone(func(t *BasicTone) {
			t.Temperature, t.Saturation, t.Contrast = 0.08, 0.9, 1.05
		}),
		Fade: 0.08, Vignette: 0.1,
	},
	{
		ID: "instax", Name: "Instax", DisplayName: "チェキ風", Category: FilterInstant,
		BasicTone: tone(func(t *BasicTone) {
			t.Brightness, t.Saturation, t.Contrast, t.Temperature = 0.05, 0.95, 1.02, 0.03
		}),
	},
}

var filterPresetIndex = indexByID(filterPresets, func(p FilterPreset) string { return p.ID })

// OriginalPreset returns the identity preset.
func OriginalPreset() FilterPreset {
	return filterPresets[0]
}

// FilterPresetByID looks up a preset in the built-in catalog.
func FilterPresetByID(id string) (FilterPreset, bool) {
	i, ok := filterPresetIndex[id]
	if !ok {
		return FilterPreset{}, false
	}
	return filterPresets[i], true
}

// FilterPresetList returns all built-in presets in display order.
func FilterPresetList() []FilterPreset {
	return append([]FilterPreset(nil), filterPresets...)
}

// FilterPresetsByCategory returns the presets of one category in display order.
func FilterPresetsByCategory(c FilterCategory) []FilterPreset {
	var out []FilterPreset
	for _, p := range filterPresets {
		if p.Category == c {
			out = append(out, p)
		}
	}
	return out
}

func indexByID[T any](items []T, id func(T) string) map[string]int {
	idx := make(map[string]int, len(items))
	for i, it := range items {
		idx[id(it)] = i
	}
	return idx
}
