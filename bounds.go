package edmpath

import "math"

// Bounds is a running min/max rectangle over world-space points.
//
// The zero-content value is [EmptyBounds], with the min components at
// +Inf and the max components at -Inf. Folding any valid point via
// [Bounds.Update] establishes MinX <= MaxX and MinY <= MaxY. Consumers
// must check [Bounds.IsValid] before using the rectangle; an empty
// result means the program contained no valid motion.
type Bounds struct {
	MinX, MaxX, MinY, MaxY float64
}

// EmptyBounds returns the canonical empty rectangle.
func EmptyBounds() Bounds {
	return Bounds{
		MinX: math.Inf(1), MaxX: math.Inf(-1),
		MinY: math.Inf(1), MaxY: math.Inf(-1),
	}
}

// Update returns b grown to include (x, y). It is a pure fold and
// never shrinks the rectangle.
func (b Bounds) Update(x, y float64) Bounds {
	return Bounds{
		MinX: math.Min(b.MinX, x),
		MaxX: math.Max(b.MaxX, x),
		MinY: math.Min(b.MinY, y),
		MaxY: math.Max(b.MaxY, y),
	}
}

// UpdatePoint returns b grown to include p.
func (b Bounds) UpdatePoint(p Point) Bounds {
	return b.Update(p.X, p.Y)
}

// IsValid reports whether any point has been folded in. It is false
// while any component remains infinite.
func (b Bounds) IsValid() bool {
	return !math.IsInf(b.MinX, 0) && !math.IsInf(b.MaxX, 0) &&
		!math.IsInf(b.MinY, 0) && !math.IsInf(b.MaxY, 0)
}

// Expand returns b padded by margin on all four sides. Expanding the
// empty bounds yields the empty bounds.
func (b Bounds) Expand(margin float64) Bounds {
	if !b.IsValid() {
		return b
	}
	return Bounds{
		MinX: b.MinX - margin, MaxX: b.MaxX + margin,
		MinY: b.MinY - margin, MaxY: b.MaxY + margin,
	}
}

// Width returns the X extent, or 0 for empty bounds.
func (b Bounds) Width() float64 {
	if !b.IsValid() {
		return 0
	}
	return b.MaxX - b.MinX
}

// Height returns the Y extent, or 0 for empty bounds.
func (b Bounds) Height() float64 {
	if !b.IsValid() {
		return 0
	}
	return b.MaxY - b.MinY
}

// Center returns the midpoint of the rectangle, or the origin for
// empty bounds.
func (b Bounds) Center() Point {
	if !b.IsValid() {
		return Point{}
	}
	return Point{X: (b.MinX + b.MaxX) / 2, Y: (b.MinY + b.MaxY) / 2}
}
