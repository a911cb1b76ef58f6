package check

import "strings"

// CompareOptions controls which framing lines [Compare] ignores.
type CompareOptions struct {
	// SkipHeaderPercent drops a leading "%" marker from both sides.
	SkipHeaderPercent bool
	// SkipTrailingM02 drops a trailing M02/M2 block from both sides.
	SkipTrailingM02 bool
}

// DefaultCompareOptions ignore the `%` header and M02 trailer, so two
// programs differing only in framing compare equal.
func DefaultCompareOptions() CompareOptions {
	return CompareOptions{SkipHeaderPercent: true, SkipTrailingM02: true}
}

// Diff reports the first content difference between two programs.
// FirstDiffLine is 0 when the programs match.
type Diff struct {
	FirstDiffLine int    `json:"first_diff_line"`
	ALine         string `json:"a_line"`
	BLine         string `json:"b_line"`
}

// Compare walks two program files line by line, ignoring whitespace
// runs and (per opts) the `%`/M02 framing, and returns the first
// differing line.
func Compare(a, b []byte, opts CompareOptions) Diff {
	la := trimFraming(splitLines(Decode(a)), opts)
	lb := trimFraming(splitLines(Decode(b)), opts)

	max := len(la)
	if len(lb) > max {
		max = len(lb)
	}
	for i := 0; i < max; i++ {
		aLn, bLn := "<EOF>", "<EOF>"
		if i < len(la) {
			aLn = strings.TrimSpace(la[i])
		}
		if i < len(lb) {
			bLn = strings.TrimSpace(lb[i])
		}
		if reSpaceRun.ReplaceAllString(aLn, " ") != reSpaceRun.ReplaceAllString(bLn, " ") {
			return Diff{FirstDiffLine: i + 1, ALine: aLn, BLine: bLn}
		}
	}
	return Diff{}
}

func trimFraming(lines []string, opts CompareOptions) []string {
	if opts.SkipHeaderPercent && len(lines) > 0 && strings.TrimSpace(lines[0]) == "%" {
		lines = lines[1:]
	}
	if opts.SkipTrailingM02 && len(lines) > 0 && reM02.MatchString(lines[len(lines)-1]) {
		lines = lines[:len(lines)-1]
	}
	return lines
}
