package photoframe

var (
	frameWhite = Color{R: 255, G: 255, B: 255, A: 255}
	frameBlack = Color{A: 255}
)

var frameStyles = []FrameStyle{
	{ID: noneFrameID, Name: "None", DisplayName: "フレームなし", Category: FrameNone, Color: frameWhite},

	{ID: "simple_white", Name: "Simple White", DisplayName: "シンプル白", Category: FrameSimple,
		Color: frameWhite, BorderWidthRatio: 0.03, OuterShadow: true},
	{ID: "simple_black", Name: "Simple Black", DisplayName: "シンプル黒", Category: FrameSimple,
		Color: frameBlack, BorderWidthRatio: 0.03, OuterShadow: true},
	{ID: "thin_white", Name: "Thin White", DisplayName: "細枠白", Category: FrameSimple,
		Color: frameWhite, BorderWidthRatio: 0.015, OuterShadow: true},
	{ID: "thick_white", Name: "Thick White", DisplayName: "太枠白", Category: FrameSimple,
		Color: frameWhite, BorderWidthRatio: 0.06, OuterShadow: true},

	{ID: "polaroid", Name: "Polaroid", DisplayName: "ポラロイド", Category: FrameInstant,
		Color: frameWhite, BorderWidthRatio: 0.04, BottomExtraRatio: 0.12, OuterShadow: true},
	{ID: "instax_mini", Name: "Instax Mini", DisplayName: "チェキ風", Category: FrameInstant,
		Color: frameWhite, BorderWidthRatio: 0.035, BottomExtraRatio: 0.08, CornerRadius: 4, OuterShadow: true},
	{ID: "instax_square", Name: "Instax Square", DisplayName: "チェキスクエア", Category: FrameInstant,
		Color: frameWhite, BorderWidthRatio: 0.04, BottomExtraRatio: 0.06, CornerRadius: 4, OuterShadow: true},

	{ID: "film_strip", Name: "Film Strip", DisplayName: "フィルムストリップ", Category: FrameFilm,
		Color: frameBlack, BorderWidthRatio: 0.025, OuterShadow: true, ShowExifInfo: true},
	{ID: "slide_mount", Name: "Slide Mount", DisplayName: "スライドマウント", Category: FrameFilm,
		Color: frameWhite, BorderWidthRatio: 0.05, CornerRadius: 2, OuterShadow: true},

	{ID: "rounded", Name: "Rounded", DisplayName: "角丸", Category: FrameModern,
		Color: frameWhite, BorderWidthRatio: 0.03, CornerRadius: 16, OuterShadow: true},
	{ID: "shadow_box", Name: "Shadow Box", DisplayName: "シャドウボックス", Category: FrameModern,
		Color: frameWhite, BorderWidthRatio: 0.05, InnerShadow: true, OuterShadow: true},
}

var frameStyleIndex = indexByID(frameStyles, func(f FrameStyle) string { return f.ID })

// NoFrame returns the "none" style: no border, text overlays only.
func NoFrame() FrameStyle {
	return frameStyles[0]
}

// FrameStyleByID looks up a frame style in the built-in catalog.
func FrameStyleByID(id string) (FrameStyle, bool) {
	i, ok := frameStyleIndex[id]
	if !ok {
		return FrameStyle{}, false
	}
	return frameStyles[i], true
}

// FrameStyleList returns all built-in frame styles in display order.
func FrameStyleList() []FrameStyle {
	return append([]FrameStyle(nil), frameStyles...)
}

// FrameStylesByCategory returns the frame styles of one category in display order.
func FrameStylesByCategory(c FrameCategory) []FrameStyle {
	var out []FrameStyle
	for _, f := range frameStyles {
		if f.Category == c {
			out = append(out, f)
		}
	}
	return out
}
