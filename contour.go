package edmpath

import (
	"github.com/wirecut/edmpath/internal/scan"
)

// DefaultContourTolerance is the closure tolerance in program units.
// It matches sub-micron machine precision: any cut that returns this
// close to its start is a closed contour as far as the wire is
// concerned.
const DefaultContourTolerance = 1e-4

// arcChordFactor estimates arc length as a multiple of the chord.
// Empirical: close enough for contour length reporting, which is
// informational rather than metrological.
const arcChordFactor = 1.2

// ContourDirection is the majority sweep direction of a contour's
// arc commands.
type ContourDirection int

const (
	DirectionUnknown ContourDirection = iota
	DirectionClockwise
	DirectionCounterClockwise
)

// String returns the lowercase name of the direction.
func (d ContourDirection) String() string {
	switch d {
	case DirectionClockwise:
		return "clockwise"
	case DirectionCounterClockwise:
		return "counterclockwise"
	default:
		return "unknown"
	}
}

// Contour is a detected closed cutting sub-path.
type Contour struct {
	// StartIndex and EndIndex are the 1-based program line numbers of
	// the first and last cutting move of the contour.
	StartIndex int
	EndIndex   int
	// StartCoord is the coordinate the contour departs from and
	// returns to; EndCoord is the actual closing position, within
	// tolerance of StartCoord.
	StartCoord Point
	EndCoord   Point
	// Length approximates the cut length: exact for linear moves,
	// chord length times a fixed factor for arcs.
	Length float64
	// Direction is the majority vote of clockwise vs counter-clockwise
	// arc commands within the span; ties and arc-free contours are
	// DirectionUnknown.
	Direction ContourDirection
}

type contourConfig struct {
	tolerance float64
}

// ContourOption configures a [DetectContours] call.
type ContourOption func(*contourConfig)

// WithTolerance overrides the closure tolerance (program units).
func WithTolerance(tol float64) ContourOption {
	return func(c *contourConfig) {
		if tol > 0 {
			c.tolerance = tol
		}
	}
}

// DetectContours re-walks a motion program and reports every cutting
// sub-sequence that returns to its own start coordinate within
// tolerance. It is a second pass over the same normalized line stream
// the parser sees, with its own position tracker; it never mutates
// parser state and may be called independently of [Parse].
//
// A contour opens at the first cutting motion. Rapid moves never open
// or extend a contour; a rapid encountered mid-contour abandons it
// without recording. Closure requires at least two cutting motions, so
// a degenerate single in-place arc is not reported.
func DetectContours(text string, opts ...ContourOption) []Contour {
	cfg := contourConfig{tolerance: DefaultContourTolerance}
	for _, opt := range opts {
		opt(&cfg)
	}

	var contours []Contour
	var cur *Contour
	var cwVotes, ccwVotes, moves int

	st := modalState{absolute: true}
	for _, ln := range scan.Program(text) {
		if ln.IsEmpty() || ln.IsMarker() || ln.Err != nil {
			continue
		}
		mv, ok := nextMove(&st, ln)
		if !ok {
			continue
		}
		if mv.rapid {
			// Abandoned, not closed: a rapid means the wire left the
			// contour before returning to its start.
			cur = nil
			continue
		}
		if cur == nil {
			cur = &Contour{StartIndex: ln.Num, StartCoord: mv.from}
			cwVotes, ccwVotes, moves = 0, 0, 0
		}
		moves++
		if mv.arc {
			cur.Length += mv.from.Distance(mv.to) * arcChordFactor
			if mv.clockwise {
				cwVotes++
			} else {
				ccwVotes++
			}
		} else {
			cur.Length += mv.from.Distance(mv.to)
		}
		if moves >= 2 && mv.to.NearlyEqual(cur.StartCoord, cfg.tolerance) {
			cur.EndIndex = ln.Num
			cur.EndCoord = mv.to
			switch {
			case cwVotes > ccwVotes:
				cur.Direction = DirectionClockwise
			case ccwVotes > cwVotes:
				cur.Direction = DirectionCounterClockwise
			default:
				cur.Direction = DirectionUnknown
			}
			contours = append(contours, *cur)
			cur = nil
		}
	}
	return contours
}

// move is one resolved motion event in the detector's pass.
type move struct {
	from, to  Point
	rapid     bool
	arc       bool
	clockwise bool
}

// nextMove applies one line to the tracker state and reports the
// motion it commands, if any. It mirrors the parser's modal rules but
// drops diagnostics: malformed lines simply produce no move.
func nextMove(st *modalState, ln scan.Line) (move, bool) {
	var lw lineWords
	for _, w := range ln.Words {
		if !w.HasValue {
			continue
		}
		switch w.Letter {
		case 'G':
			lw.gcodes = append(lw.gcodes, w.Value)
		case 'X':
			lw.x, lw.hasX = w.Value, true
		case 'Y':
			lw.y, lw.hasY = w.Value, true
		case 'I':
			lw.i, lw.hasI = w.Value, true
		case 'J':
			lw.j, lw.hasJ = w.Value, true
		}
	}

	originReset := false
	for _, g := range lw.gcodes {
		switch {
		case g == 92:
			originReset = true
		case g == 90.1:
			st.ijAbsolute = true
		case g == 91.1:
			st.ijAbsolute = false
		case g == 90:
			st.absolute = true
		case g == 91:
			st.absolute = false
		case g == 0:
			st.mode = motionRapid
		case g == 1:
			st.mode = motionCut
		case g == 2:
			st.mode = motionCW
		case g == 3:
			st.mode = motionCCW
		}
	}
	if originReset {
		if lw.hasX {
			st.origin.X = st.pos.X - lw.x
		}
		if lw.hasY {
			st.origin.Y = st.pos.Y - lw.y
		}
		return move{}, false
	}
	if st.mode == motionNone || (!lw.hasX && !lw.hasY && !lw.hasI && !lw.hasJ) {
		return move{}, false
	}
	for _, v := range []struct {
		val float64
		has bool
	}{{lw.x, lw.hasX}, {lw.y, lw.hasY}, {lw.i, lw.hasI}, {lw.j, lw.hasJ}} {
		if v.has && !ValidCoordinate(v.val) {
			return move{}, false
		}
	}

	target := st.pos
	if st.absolute {
		if lw.hasX {
			target.X = lw.x + st.origin.X
		}
		if lw.hasY {
			target.Y = lw.y + st.origin.Y
		}
	} else {
		if lw.hasX {
			target.X = st.pos.X + lw.x
		}
		if lw.hasY {
			target.Y = st.pos.Y + lw.y
		}
	}

	mv := move{from: st.pos, to: target}
	switch st.mode {
	case motionRapid, motionCut:
		if target.NearlyEqual(st.pos, coordEps) {
			return move{}, false
		}
		mv.rapid = st.mode == motionRapid
	case motionCW, motionCCW:
		if !lw.hasI || !lw.hasJ {
			st.pos = target
			return move{}, false
		}
		mv.arc = true
		mv.clockwise = st.mode == motionCW
	}
	st.pos = target
	return mv, true
}
