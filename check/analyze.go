package check

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reM02       = regexp.MustCompile(`\bM0?2\b`)
	reBlockNum  = regexp.MustCompile(`^\s*N(\d+)`)
	reDecimals  = regexp.MustCompile(`[XYZIJF][-+]?\d+\.(\d+)`)
	rePercent   = regexp.MustCompile(`%.*\S`)
	stopCodes   = []string{"M0", "M00", "M1", "M01", "M2", "M02", "M30"}
	reStopCodes = func() map[string]*regexp.Regexp {
		m := make(map[string]*regexp.Regexp, len(stopCodes))
		for _, c := range stopCodes {
			m[c] = regexp.MustCompile(`\b` + c + `\b`)
		}
		return m
	}()
)

// maxLineLength is the longest line older controllers accept.
const maxLineLength = 120

// SuspectLine flags one questionable program line.
type SuspectLine struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// TextReport is the line-level portion of a [Report].
type TextReport struct {
	TotalLines            int              `json:"total_lines"`
	StartsWithPercent     bool             `json:"starts_with_percent"`
	EndsWithM02           bool             `json:"ends_with_M02"`
	HasBlockNumbers       bool             `json:"has_block_numbers"`
	BlockNumbersMonotonic bool             `json:"block_numbers_monotonic"`
	MaxLineLength         int              `json:"max_line_length"`
	HasSemicolonComments  bool             `json:"has_semicolon_comments"`
	StrayPercentPositions []int            `json:"stray_percent_positions"`
	StopCodes             map[string][]int `json:"stop_codes"`
	PrecisionMaxPlaces    int              `json:"precision_max_places"`
	PrecisionOver4Count   int              `json:"precision_over_4_count"`
	SuspectLines          []SuspectLine    `json:"suspect_lines"`
}

// Report is the full analysis of one program file.
type Report struct {
	File           string     `json:"file"`
	Bytes          int        `json:"bytes"`
	EOL            EOLStats   `json:"eol"`
	NonASCIICount  int        `json:"non_ascii_count"`
	NonASCIISample []int      `json:"non_ascii_sample"`
	Text           TextReport `json:"text_report"`
}

// Analyze inspects raw program bytes and reports everything a transfer
// to an older controller could trip over. It never fails: a damaged
// file just yields a report full of findings.
func Analyze(data []byte) Report {
	rep := Report{
		Bytes: len(data),
		EOL:   eolStats(data),
	}
	for i, b := range data {
		if b > 127 {
			rep.NonASCIICount++
			if len(rep.NonASCIISample) < 10 {
				rep.NonASCIISample = append(rep.NonASCIISample, i)
			}
		}
	}
	rep.Text = analyzeLines(splitLines(Decode(data)))
	return rep
}

// splitLines mirrors the normalization split: any of CRLF, LF, CR.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	lines := strings.Split(text, "\n")
	// A trailing terminator produces one empty phantom line; drop it
	// so line counts match what an editor shows.
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}

func analyzeLines(lines []string) TextReport {
	rep := TextReport{
		TotalLines:            len(lines),
		BlockNumbersMonotonic: true,
		StopCodes:             map[string][]int{},
	}
	if len(lines) > 0 {
		rep.StartsWithPercent = strings.TrimSpace(lines[0]) == "%"
		rep.EndsWithM02 = reM02.MatchString(lines[len(lines)-1])
	}

	lastBlock := -1
	for i, ln := range lines {
		num := i + 1
		if len(ln) > rep.MaxLineLength {
			rep.MaxLineLength = len(ln)
		}
		if strings.Contains(ln, ";") {
			rep.HasSemicolonComments = true
		}
		if num > 1 && num < len(lines) && strings.TrimSpace(ln) == "%" {
			rep.StrayPercentPositions = append(rep.StrayPercentPositions, num)
		}
		for _, code := range stopCodes {
			if reStopCodes[code].MatchString(ln) {
				rep.StopCodes[code] = append(rep.StopCodes[code], num)
			}
		}
		if m := reBlockNum.FindStringSubmatch(ln); m != nil {
			rep.HasBlockNumbers = true
			n, err := strconv.Atoi(m[1])
			if err == nil && rep.BlockNumbersMonotonic {
				if n <= lastBlock {
					rep.BlockNumbersMonotonic = false
				}
				lastBlock = n
			}
		}

		if len(ln) > maxLineLength {
			rep.addSuspect(num, "line too long")
		}
		if strings.Contains(ln, "\t") {
			rep.addSuspect(num, "tab character")
		}
		if rePercent.MatchString(ln) && strings.TrimSpace(ln) != "%" {
			rep.addSuspect(num, "content after %")
		}
		if reM02.MatchString(ln) && num != len(lines) {
			rep.addSuspect(num, "M02 not at end")
		}
	}

	for _, m := range reDecimals.FindAllStringSubmatch(strings.Join(lines, "\n"), -1) {
		places := len(m[1])
		if places > rep.PrecisionMaxPlaces {
			rep.PrecisionMaxPlaces = places
		}
		if places > 4 {
			rep.PrecisionOver4Count++
		}
	}
	return rep
}

func (r *TextReport) addSuspect(line int, reason string) {
	r.SuspectLines = append(r.SuspectLines, SuspectLine{Line: line, Reason: reason})
}
