package photoframe

// Luma weights (BT.601).
const (
	lumaR = 0.299
	lumaG = 0.587
	lumaB = 0.114
)

const (
	midGray = 128.0

	highlightThreshold = 180.0
	shadowThreshold    = 75.0
	whitesThreshold    = 220.0
	blacksThreshold    = 35.0

	toneColorShift   = 40.0 // temperature/tint scale of the tone engine
	filterColorShift = 30.0 // temperature/tint scale of the filter engine
	flatToneShift    = 30.0 // whites/blacks
)

const (
	originalPresetID = "original"
	noneFrameID      = "none"
)

const (
	dustSeed = 42

	// Text sizes are expressed per this many pixels of canvas width.
	textReferenceWidth = 400.0
	innerShadowHeight  = 30.0
	outerShadowSpread  = 4.0
	outerShadowSigma   = 4.0
)
