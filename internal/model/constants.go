package model

// Constants mirror the wire semantics named in the reference source
// (Source/Lib/Common/Codec/EbRateControlModel.c and its header). Names are
// translated to Go style but values and meaning are unchanged.
const (
	// MaxQPValue is the highest valid quantizer index; tables carry one cell
	// per QP in [0, MaxQPValue].
	MaxQPValue = 63

	// MaxComplexity is both the sentinel scope_end terminating every segment
	// list and the open upper bound of the last real segment's extrapolation.
	MaxComplexity = 999999

	// MaxReported caps DeviationBracket.Reported; once reached, further
	// updates still revise Deviation but never grow Reported further.
	MaxReported = 5

	// RCDeviationPrecision is the fixed-point fractional shift used for all
	// deviation-bracket arithmetic. 64-bit integers throughout avoid the
	// precision loss floating point would introduce at this shift.
	RCDeviationPrecision = 16

	// PitchOnMaxComplexityForIntraFrames/ForInterFrames replace the
	// computed pitch when a segment's scope_end equals MaxComplexity,
	// extrapolating the final segment with a fixed slope instead of a
	// div-by-zero or unsized pitch.
	PitchOnMaxComplexityForIntraFrames = 57
	PitchOnMaxComplexityForInterFrames = 17

	// DampingFactor divides the accumulated shortfall before folding it into
	// a GOP's desired size.
	DampingFactor = 2

	// DampingFactorExtended is substituted for DampingFactor once a GOP's
	// picture index exceeds dampingExtendedThreshold, per the authoritative
	// source's record_new_gop.
	DampingFactorExtended    = 2 * DampingFactor
	dampingExtendedThreshold = 180

	// MaxDownsizeFactor bounds how far a single GOP's desired size can be
	// cut in response to a large overshoot, so correction is spread across
	// subsequent GOPs instead of collapsing one GOP to near zero.
	MaxDownsizeFactor = 15

	// AmountOfReportedFramesToTriggerOnTheFlyQP is the number of reported
	// pictures a GOP must exceed before a mid-GOP QP adjustment is
	// considered.
	AmountOfReportedFramesToTriggerOnTheFlyQP = 2

	// MaxInterLevelForOnTheFlyQP bounds which temporal layers are eligible
	// for mid-GOP adjustment; deeper layers are left alone.
	MaxInterLevelForOnTheFlyQP = 4

	// MaxDeltaQPWithinGOP is the outer clamp on any mid-GOP QP delta.
	MaxDeltaQPWithinGOP = 12

	// IntraDeviationBracketNumber and InterDeviationBracketNumber size the
	// two deviation-bracket tables, per the authoritative variant.
	IntraDeviationBracketNumber = 10
	InterDeviationBracketNumber = 8

	// ModelDefaultPixelArea is the reference resolution (1920x1080) that
	// every table entry is normalized against.
	ModelDefaultPixelAreaWidth  = 1920
	ModelDefaultPixelAreaHeight = 1080
	ModelDefaultPixelArea       = ModelDefaultPixelAreaWidth * ModelDefaultPixelAreaHeight

	// MaxTemporalLayers bounds the inter complexity table's layer index.
	MaxTemporalLayers = 5
)

// DeltaLevels maps a temporal layer index to the QP offset applied relative
// to the base layer when selecting a quantizer.
var DeltaLevels = [7]int{3, 5, 7, 8, 9, 10, 11}
