package check

import (
	"fmt"
	"regexp"
	"strings"
)

var reSpaceRun = regexp.MustCompile(`\s+`)

// NormalizeOptions controls [Normalize].
type NormalizeOptions struct {
	// StartN and Step control block renumbering for lines that carry
	// no N word yet. Lines that already have one keep it.
	StartN int
	Step   int
	// AddPercent ensures a single leading "%" marker.
	AddPercent bool
	// EnsureM02 strips every M02/M2 and appends one clean numbered
	// M02 block at the end.
	EnsureM02 bool
	// CRLF selects CRLF line endings; false selects LF.
	CRLF bool
	// StripSemicolons removes trailing ";" comments.
	StripSemicolons bool
}

// DefaultNormalizeOptions are the settings older wire-EDM controllers
// expect: CRLF, `%` header, renumbered blocks from N10 by 10, one M02
// at the end, no semicolon comments.
func DefaultNormalizeOptions() NormalizeOptions {
	return NormalizeOptions{
		StartN:          10,
		Step:            10,
		AddPercent:      true,
		EnsureM02:       true,
		CRLF:            true,
		StripSemicolons: true,
	}
}

// Normalize rewrites raw program bytes into the strict ISO shape
// described by opts and returns latin-1 controller bytes. It is
// idempotent: normalizing its own output is a no-op apart from block
// renumbering of lines that had no numbers.
func Normalize(data []byte, opts NormalizeOptions) []byte {
	src := splitLines(Decode(data))
	var out []string

	if opts.AddPercent {
		out = append(out, "%")
		if len(src) > 0 && strings.TrimSpace(src[0]) == "%" {
			src = src[1:]
		}
	}

	n := opts.StartN
	for _, ln := range src {
		s := strings.TrimSpace(ln)
		if s == "" {
			continue
		}
		if opts.StripSemicolons {
			if idx := strings.IndexByte(s, ';'); idx >= 0 {
				s = strings.TrimRight(s[:idx], " \t")
				if s == "" {
					continue
				}
			}
		}
		if reBlockNum.MatchString(s) {
			out = append(out, s)
		} else {
			s = reSpaceRun.ReplaceAllString(s, " ")
			out = append(out, fmt.Sprintf("N%d %s", n, s))
			n += opts.Step
		}
	}

	if opts.EnsureM02 {
		kept := out[:0]
		for _, ln := range out {
			if reM02.MatchString(ln) {
				continue
			}
			kept = append(kept, ln)
		}
		out = append(kept, fmt.Sprintf("N%d M02", n))
	}

	eol := "\n"
	if opts.CRLF {
		eol = "\r\n"
	}
	return Encode(strings.Join(out, eol) + eol)
}
