package edmpath

import "math"

// MaxCoordinate is the largest program coordinate magnitude the parser
// accepts. Wire-EDM tables are well under a meter of travel; anything
// beyond this is a corrupt or misread value, not a real target.
const MaxCoordinate = 1e6

// coordEps is the movement threshold: a commanded target closer than
// this to the current position on both axes is treated as "no motion".
const coordEps = 1e-9

// RoundTo rounds v to the given number of decimal places.
func RoundTo(v float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(v*pow) / pow
}

// nearlyEqual reports whether a and b differ by at most eps.
func nearlyEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// ValidCoordinate reports whether v is a finite coordinate within the
// accepted machine range.
func ValidCoordinate(v float64) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	return math.Abs(v) <= MaxCoordinate
}
