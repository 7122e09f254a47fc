package colour

import "math"

// DefaultMatchThreshold is the redmean distance below which two colours are
// treated as the same perceived colour family. Tuned for garment filtering:
// strict enough that "navy" and "black" differ, loose enough that two photos
// of the same shirt match.
const DefaultMatchThreshold = 80

// Distance computes the perceptual distance between two colours using the
// redmean approximation: a weighted Euclidean distance whose channel weights
// depend on the mean red intensity. It weights green most heavily and
// red/blue asymmetrically, which tracks human luminance sensitivity closely
// enough for filtering and classification without a full Lab conversion.
//
// The result is symmetric, non-negative, and zero only for identical colours.
func Distance(a, b RGB) float64 {
	rMean := (float64(a.R) + float64(b.R)) / 2
	dR := float64(a.R) - float64(b.R)
	dG := float64(a.G) - float64(b.G)
	dB := float64(a.B) - float64(b.B)

	return math.Sqrt((2+rMean/256)*dR*dR + 4*dG*dG + (2+(255-rMean)/256)*dB*dB)
}

// Matches reports whether two colours are the same perceived colour within
// the given redmean distance threshold.
func Matches(a, b RGB, threshold float64) bool {
	return Distance(a, b) <= threshold
}

// MatchesDefault is Matches with DefaultMatchThreshold.
func MatchesDefault(a, b RGB) bool {
	return Matches(a, b, DefaultMatchThreshold)
}

// MatchesPtr is the optional-input form of Matches used by filter fields: a
// missing colour on either side is "no match", not an error, so that an
// unset swatch filter simply excludes nothing-in-common items.
func MatchesPtr(a, b *RGB, threshold float64) bool {
	if a == nil || b == nil {
		return false
	}
	return Matches(*a, *b, threshold)
}
