package edmpath

import (
	"fmt"

	"github.com/wirecut/edmpath/internal/scan"
)

// LineError is a per-line diagnostic. Line 0 refers to the program as
// a whole rather than a specific line.
type LineError struct {
	Line    int
	Message string
}

// Error implements the error interface.
func (e LineError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// Stats summarizes a parse run.
type Stats struct {
	TotalLines     int
	ProcessedLines int
	LinearMoves    int
	ArcMoves       int
	Comments       int
	Errors         int
}

// Result is the complete output of [Parse]. Errors and Warnings carry
// line numbers for presentation by the host UI; the engine itself
// never performs user-facing I/O.
type Result struct {
	Path     []Segment
	Bounds   Bounds
	Stats    Stats
	Errors   []LineError
	Warnings []LineError
}

// motionMode is the modal motion group state.
type motionMode int

const (
	motionNone motionMode = iota
	motionRapid
	motionCut
	motionCW
	motionCCW
)

// modalState carries the parser's running state across lines. A fresh
// value is constructed for every Parse call and discarded at the end,
// so parses are independent and idempotent for identical input.
type modalState struct {
	pos        Point
	mode       motionMode
	absolute   bool  // G90/G91: absolute vs incremental targets
	ijAbsolute bool  // G90.1/G91.1: absolute vs relative arc centers
	origin     Point // G92 offset, added to absolute coordinates
	originSet  bool
}

type parseConfig struct {
	strict bool
}

// ParseOption configures a [Parse] call.
type ParseOption func(*parseConfig)

// WithStrictMode makes Parse return on the first coordinate error
// instead of skipping the offending line and continuing. The default
// is lenient: errors are collected in [Result].Errors.
func WithStrictMode() ParseOption {
	return func(c *parseConfig) { c.strict = true }
}

// Parse runs the modal-state parser over a motion program and returns
// the resolved path, its bounds, and per-line diagnostics.
//
// In the default lenient mode the returned error is always nil; lines
// with invalid coordinates are recorded in Result.Errors and skipped.
// With [WithStrictMode] the first such error is returned and parsing
// stops, with the partial result intact.
func Parse(text string, opts ...ParseOption) (Result, error) {
	var cfg parseConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	st := modalState{absolute: true}
	res := Result{Bounds: EmptyBounds()}
	lines := scan.Program(text)
	res.Stats.TotalLines = len(lines)

	for _, ln := range lines {
		if ln.Comment {
			res.Stats.Comments++
		}
		if ln.IsEmpty() || ln.IsMarker() {
			continue
		}
		if ln.Err != nil {
			res.addError(ln.Num, ln.Err.Error())
			if cfg.strict {
				return res, LineError{Line: ln.Num, Message: ln.Err.Error()}
			}
			continue
		}
		if err := parseLine(&st, ln, &res); err != nil {
			res.addError(ln.Num, err.Error())
			if cfg.strict {
				return res, LineError{Line: ln.Num, Message: err.Error()}
			}
		}
	}

	if !res.Bounds.IsValid() {
		res.addWarning(0, "program contains no valid motion; bounds are empty")
		res.Bounds = EmptyBounds()
	}
	Logger().Debug("parse complete",
		"lines", res.Stats.TotalLines,
		"linear", res.Stats.LinearMoves,
		"arcs", res.Stats.ArcMoves,
		"errors", res.Stats.Errors)
	return res, nil
}

func (r *Result) addError(line int, msg string) {
	r.Errors = append(r.Errors, LineError{Line: line, Message: msg})
	r.Stats.Errors++
}

func (r *Result) addWarning(line int, msg string) {
	r.Warnings = append(r.Warnings, LineError{Line: line, Message: msg})
}

// lineWords is the per-line word digest built in a single pass over
// the scanned words.
type lineWords struct {
	gcodes     []float64
	x, y, i, j float64
	hasX, hasY bool
	hasI, hasJ bool
	recognized bool
}

// collectWords digests the line's words, emitting warnings for
// unrecognized letters. N (block number), F/S/T/D/H (technology words)
// and M (program control) are recognized no-ops for path purposes.
func collectWords(ln scan.Line, res *Result) lineWords {
	var lw lineWords
	for _, w := range ln.Words {
		switch w.Letter {
		case 'G':
			if !w.HasValue {
				res.addWarning(ln.Num, "G word without a number")
				continue
			}
			lw.gcodes = append(lw.gcodes, w.Value)
			lw.recognized = true
		case 'X':
			lw.x, lw.hasX = w.Value, w.HasValue
			lw.recognized = lw.recognized || w.HasValue
		case 'Y':
			lw.y, lw.hasY = w.Value, w.HasValue
			lw.recognized = lw.recognized || w.HasValue
		case 'I':
			lw.i, lw.hasI = w.Value, w.HasValue
			lw.recognized = lw.recognized || w.HasValue
		case 'J':
			lw.j, lw.hasJ = w.Value, w.HasValue
			lw.recognized = lw.recognized || w.HasValue
		case 'N', 'F', 'S', 'T', 'D', 'H', 'M':
			lw.recognized = true
		default:
			res.addWarning(ln.Num, fmt.Sprintf("unrecognized word %c", w.Letter))
		}
	}
	return lw
}

// parseLine applies one normalized line to the modal state, emitting
// at most one path segment. Returned errors are coordinate errors
// (collected or re-thrown by the caller per the strict setting);
// everything softer is a warning on res.
func parseLine(st *modalState, ln scan.Line, res *Result) error {
	lw := collectWords(ln, res)
	if !lw.recognized {
		res.addWarning(ln.Num, "no recognizable motion or modal command")
		return nil
	}
	res.Stats.ProcessedLines++

	for _, v := range []struct {
		val  float64
		has  bool
		axis byte
	}{{lw.x, lw.hasX, 'X'}, {lw.y, lw.hasY, 'Y'}, {lw.i, lw.hasI, 'I'}, {lw.j, lw.hasJ, 'J'}} {
		if v.has && !ValidCoordinate(v.val) {
			return fmt.Errorf("invalid %c coordinate %v", v.axis, v.val)
		}
	}

	// Modal words, in spec precedence: origin reset first, then
	// arc-center mode, then coordinate mode, then motion mode.
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
		default:
			res.addWarning(ln.Num, fmt.Sprintf("unsupported G%v ignored", g))
		}
	}

	if originReset {
		applyOriginReset(st, lw, ln.Num, res)
		// G92 consumes the line's coordinates and never emits a
		// segment, even when a motion word shares the line.
		return nil
	}

	if !lw.hasX && !lw.hasY && !lw.hasI && !lw.hasJ {
		return nil // purely modal line
	}
	if st.mode == motionNone {
		res.addWarning(ln.Num, "coordinates before any motion command")
		return nil
	}

	// Target resolution with per-axis modal carry-over: an absent axis
	// keeps the current position's value, never zero.
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

	switch st.mode {
	case motionRapid, motionCut:
		if target.NearlyEqual(st.pos, coordEps) {
			return nil
		}
		kind := Rapid
		if st.mode == motionCut {
			kind = Cut
		}
		seg := Linear{Kind: kind, X: target.X, Y: target.Y}
		res.Path = append(res.Path, seg)
		res.Bounds = res.Bounds.UpdatePoint(st.pos)
		res.Bounds = res.Bounds.UpdatePoint(target)
		res.Stats.LinearMoves++
		st.pos = target

	case motionCW, motionCCW:
		if !lw.hasI || !lw.hasJ {
			res.addWarning(ln.Num, "arc without both center parameters; position advanced without a segment")
			Logger().Warn("arc center missing", "line", ln.Num)
			st.pos = target
			return nil
		}
		var center Point
		if st.ijAbsolute {
			center = Point{X: lw.i + st.origin.X, Y: lw.j + st.origin.Y}
		} else {
			center = Point{X: st.pos.X + lw.i, Y: st.pos.Y + lw.j}
		}
		arc := Arc{
			Start:     st.pos,
			End:       target,
			Center:    center,
			Clockwise: st.mode == motionCW,
		}
		res.Path = append(res.Path, arc)
		res.Bounds = arc.FoldBounds(res.Bounds)
		res.Stats.ArcMoves++
		st.pos = target
	}
	return nil
}

// applyOriginReset handles G92. With explicit coordinates the offset
// is chosen so the current position reads as the given values on all
// following absolute coordinates; without them the state is untouched.
// The guarantee is header-only: a reset after motion has been emitted
// leaves already-emitted segments alone, so it is flagged.
func applyOriginReset(st *modalState, lw lineWords, lineNum int, res *Result) {
	if res.Stats.LinearMoves+res.Stats.ArcMoves > 0 {
		res.addWarning(lineNum, "origin reset after motion; previously emitted segments keep their coordinates")
	}
	if !lw.hasX && !lw.hasY {
		return
	}
	if lw.hasX {
		st.origin.X = st.pos.X - lw.x
	}
	if lw.hasY {
		st.origin.Y = st.pos.Y - lw.y
	}
	st.originSet = true
	Logger().Debug("origin reset", "line", lineNum, "offsetX", st.origin.X, "offsetY", st.origin.Y)
}
