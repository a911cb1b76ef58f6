// Package edmpath parses text-based motion programs for wire-EDM
// machine tools and produces a geometric path model usable for
// rendering, measurement, and editing.
//
// # Overview
//
// The engine has three independent entry points:
//
//   - [Parse] runs the modal-state motion parser over a program and
//     returns the resolved path segments, their bounds, per-line
//     diagnostics, and summary statistics.
//   - [DetectContours] re-walks the same program text and reports
//     closed cutting contours.
//   - [Viewport] owns the bidirectional screen/world coordinate
//     transform used for display and click-to-measure interaction.
//
// # Quick Start
//
//	res, err := edmpath.Parse(programText)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	vp := edmpath.NewViewport(800, 600)
//	vp.FitToBounds(res.Bounds, 20)
//	for _, seg := range res.Path {
//	    switch s := seg.(type) {
//	    case edmpath.Linear:
//	        // s.X, s.Y is the absolute endpoint
//	    case edmpath.Arc:
//	        // s.Center and s.Clockwise fully describe the sweep
//	    }
//	}
//
// # Dialect
//
// The parser understands the line-oriented ISO dialect used by wire-EDM
// controllers: G0/G1/G2/G3 motion words (modal), X/Y target
// coordinates with per-axis carry-over, I/J arc-center parameters in
// either absolute (G90.1) or relative (G91.1) mode, G90/G91
// absolute/incremental targets, a G92 origin reset, N block numbers,
// `%` program markers, and comments in `(...)`, `[...]`, or trailing
// `;` form.
//
// # Coordinate System
//
// World space is Y-up in program units (commonly millimeters).
// [Viewport] flips Y for screen-space (Y-down) consumers and keeps the
// forward and inverse transforms exact mutual inverses up to a fixed
// rounding precision.
//
// # Concurrency
//
// Parsing is synchronous and carries no state across calls: every
// [Parse] constructs a fresh modal state, so identical input always
// yields identical output. A [Viewport] must be confined to one
// logical thread of control (the host UI event loop).
package edmpath

// Version is the current version of the library.
const Version = "0.4.0"
