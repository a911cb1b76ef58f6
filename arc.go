package edmpath

import "math"

const twoPi = 2 * math.Pi

// Radius returns the distance from the start point to the center.
// The endpoint is not consulted; controllers guarantee both endpoints
// lie on the circle and the start is authoritative when they disagree
// slightly.
func (a Arc) Radius() float64 {
	return a.Start.Distance(a.Center)
}

// StartAngle returns the angle of the start point around the center.
func (a Arc) StartAngle() float64 {
	return a.Start.Sub(a.Center).Angle()
}

// EndAngle returns the angle of the end point around the center.
func (a Arc) EndAngle() float64 {
	return a.End.Sub(a.Center).Angle()
}

// Span returns the signed angular span of the sweep: negative for
// clockwise arcs, positive for counter-clockwise, in (-2π, 0) or
// (0, 2π]. Coincident endpoints resolve to a full turn, matching the
// controller convention for full-circle blocks.
//
// Span is the single source of truth for "which way" an arc sweeps;
// length estimation and flattening derive from it rather than
// recomputing direction independently.
func (a Arc) Span() float64 {
	span := a.EndAngle() - a.StartAngle()
	if a.Clockwise {
		if span >= 0 {
			span -= twoPi
		}
	} else {
		if span <= 0 {
			span += twoPi
		}
	}
	return span
}

// Length returns the arc length derived from Span and Radius.
func (a Arc) Length() float64 {
	return math.Abs(a.Span()) * a.Radius()
}

// PointAt returns the point on the circle at angle theta.
func (a Arc) PointAt(theta float64) Point {
	r := a.Radius()
	return Point{
		X: a.Center.X + r*math.Cos(theta),
		Y: a.Center.Y + r*math.Sin(theta),
	}
}

// ContainsAngle reports whether the ray at angle theta lies within the
// swept span, endpoints included. The test is direction-aware: it
// measures the angular distance from the start in the sweep direction
// and compares against Span, so it works for sweeps that cross the
// ±π atan2 seam.
func (a Arc) ContainsAngle(theta float64) bool {
	span := a.Span()
	d := theta - a.StartAngle()
	if span >= 0 {
		for d < 0 {
			d += twoPi
		}
		for d >= twoPi {
			d -= twoPi
		}
		return d <= span
	}
	for d > 0 {
		d -= twoPi
	}
	for d <= -twoPi {
		d += twoPi
	}
	return d >= span
}

// cardinalAngles are the four axis-aligned extremal directions. An
// arc's true extent exceeds its endpoints whenever the sweep crosses
// one of these.
var cardinalAngles = [4]float64{0, math.Pi / 2, math.Pi, 3 * math.Pi / 2}

// FoldBounds folds the arc's full extent into b: both endpoints plus
// the point on the circle at every cardinal angle the sweep crosses.
func (a Arc) FoldBounds(b Bounds) Bounds {
	b = b.UpdatePoint(a.Start)
	b = b.UpdatePoint(a.End)
	for _, theta := range cardinalAngles {
		if a.ContainsAngle(theta) {
			b = b.UpdatePoint(a.PointAt(theta))
		}
	}
	return b
}

// Flatten samples the sweep into a polyline with at most maxStep
// radians between samples. The returned slice starts at Start and ends
// exactly at End. maxStep values <= 0 fall back to 5 degrees.
func (a Arc) Flatten(maxStep float64) []Point {
	if maxStep <= 0 {
		maxStep = 5 * math.Pi / 180
	}
	span := a.Span()
	n := int(math.Ceil(math.Abs(span) / maxStep))
	if n < 1 {
		n = 1
	}
	pts := make([]Point, 0, n+1)
	pts = append(pts, a.Start)
	start := a.StartAngle()
	for i := 1; i < n; i++ {
		theta := start + span*float64(i)/float64(n)
		pts = append(pts, a.PointAt(theta))
	}
	pts = append(pts, a.End)
	return pts
}
