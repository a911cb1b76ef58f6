// Package check validates and normalizes wire-EDM program files at the
// byte level: line-ending conventions, `%` program markers, N block
// numbering, stop codes, and decimal precision. It complements the
// geometric parser in the parent package: check cares about what a
// controller will accept over its serial link, not about the path the
// program cuts.
//
// Controller files are latin-1; [Decode] and [Encode] convert via
// golang.org/x/text so analysis works on real files, not just ASCII.
package check

import (
	"bytes"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// Decode converts raw controller bytes (latin-1) to a Go string.
// Every byte maps, so Decode cannot fail.
func Decode(data []byte) string {
	out, _ := charmap.ISO8859_1.NewDecoder().Bytes(data)
	return string(out)
}

// Encode converts program text back to latin-1 controller bytes.
// Unmappable runes are replaced rather than dropped.
func Encode(text string) []byte {
	enc := encoding.ReplaceUnsupported(charmap.ISO8859_1.NewEncoder())
	out, _ := enc.Bytes([]byte(text))
	return out
}

// EOLStats counts the line-ending conventions present in a file.
type EOLStats struct {
	Label string `json:"label"`
	CRLF  int    `json:"crlf"`
	LF    int    `json:"lf"`
	CR    int    `json:"cr"`
}

// eolStats counts terminators on the raw bytes. LF and CR exclude the
// pairs already counted as CRLF.
func eolStats(data []byte) EOLStats {
	crlf := bytes.Count(data, []byte("\r\n"))
	lf := bytes.Count(data, []byte("\n")) - crlf
	cr := bytes.Count(data, []byte("\r")) - crlf
	return EOLStats{Label: eolLabel(crlf, lf, cr), CRLF: crlf, LF: lf, CR: cr}
}

func eolLabel(crlf, lf, cr int) string {
	switch {
	case crlf > 0 && lf == 0 && cr == 0:
		return "CRLF"
	case lf > 0 && crlf == 0 && cr == 0:
		return "LF"
	case cr > 0 && crlf == 0 && lf == 0:
		return "CR"
	case crlf > 0 || lf > 0 || cr > 0:
		return "MIXED"
	default:
		return "NONE"
	}
}
