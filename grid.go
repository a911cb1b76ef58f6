package edmpath

import "math"

// Default pixel targets for grid line and grid label spacing.
const (
	DefaultGridTargetPx  = 10
	DefaultLabelTargetPx = 60
)

// GridSpacing is the selected tick spacing in world units.
type GridSpacing struct {
	// Minor is the spacing between grid lines.
	Minor float64
	// Label is the spacing between labeled lines. It is always an
	// integer multiple of Minor.
	Label float64
}

// NiceStep125 returns the smallest value of the form {1, 2, 5} * 10^k
// that is >= v. Values <= 0 return 1.
func NiceStep125(v float64) float64 {
	if v <= 0 {
		return 1
	}
	base := math.Pow(10, math.Floor(math.Log10(v)))
	for _, m := range [...]float64{1, 2, 5, 10} {
		if step := m * base; step >= v || nearlyEqual(step, v, v*1e-12) {
			return step
		}
	}
	return 10 * base
}

// SelectGridSpacing picks visually stable grid spacing for the given
// zoom from the 1-2-5 progression: the minor spacing is the smallest
// nice value whose on-screen size meets targetPx, and the label
// spacing is the minor spacing times the smallest nice multiplier
// meeting labelTargetPx. Label lines therefore always land on grid
// lines.
//
// Pass 0 for either target to use the defaults.
func SelectGridSpacing(zoom, targetPx, labelTargetPx float64) GridSpacing {
	if targetPx <= 0 {
		targetPx = DefaultGridTargetPx
	}
	if labelTargetPx <= 0 {
		labelTargetPx = DefaultLabelTargetPx
	}
	if zoom <= 0 {
		zoom = 1
	}

	minor := NiceStep125(targetPx / zoom)
	mult := NiceStep125(labelTargetPx / zoom / minor)
	if mult < 1 {
		mult = 1
	}
	return GridSpacing{Minor: minor, Label: minor * mult}
}
