// Package scan normalizes and tokenizes motion-program lines.
//
// It is shared by the modal parser and the contour detector so both
// passes see exactly the same line stream: comments stripped, text
// uppercased, and each line reduced to letter-address words in a
// single scan.
package scan

import (
	"fmt"
	"strconv"
	"strings"
)

// Word is one letter-address word from a program line, such as X12.5
// or G1. HasValue is false for a bare letter with no numeric field.
type Word struct {
	Letter   byte
	Value    float64
	HasValue bool
}

// Line is a normalized program line ready for modal interpretation.
type Line struct {
	// Num is the 1-based line number in the original text.
	Num int
	// Text is the normalized content: comments stripped, uppercased,
	// surrounding whitespace trimmed. May be empty.
	Text string
	// Words are the letter-address words found on the line.
	Words []Word
	// Comment is true when the raw line carried a comment in any of
	// the recognized forms.
	Comment bool
	// Err is the tokenization error for the line, if any. The words
	// preceding the offending field are still populated.
	Err error
}

// SplitLines splits program text on any of the three controller line
// ending conventions (CRLF, LF, bare CR).
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}

// Normalize strips comments from a raw line and uppercases the rest.
// Recognized comment forms: parenthesized "(...)", bracketed "[...]",
// and a trailing ";" marker running to end of line. An unterminated
// bracket comment runs to end of line.
func Normalize(raw string) (clean string, hadComment bool) {
	var b strings.Builder
	depth := 0
	var open byte
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case depth > 0:
			if (open == '(' && c == ')') || (open == '[' && c == ']') {
				depth--
			}
		case c == '(' || c == '[':
			depth++
			open = c
			hadComment = true
		case c == ';':
			return strings.ToUpper(strings.TrimSpace(b.String())), true
		default:
			b.WriteByte(c)
		}
	}
	return strings.ToUpper(strings.TrimSpace(b.String())), hadComment
}

// Fields tokenizes a normalized line into letter-address words in a
// single left-to-right scan. Whitespace between words is ignored; a
// malformed numeric field stops the scan and returns the words seen so
// far along with the error.
func Fields(clean string) ([]Word, error) {
	var words []Word
	i := 0
	for i < len(clean) {
		c := clean[i]
		if c == ' ' || c == '\t' {
			i++
			continue
		}
		if c < 'A' || c > 'Z' {
			return words, fmt.Errorf("unexpected character %q at column %d", c, i+1)
		}
		w := Word{Letter: c}
		i++
		start := i
		for i < len(clean) {
			d := clean[i]
			if d == '+' || d == '-' {
				if i != start {
					break
				}
			} else if (d < '0' || d > '9') && d != '.' {
				break
			}
			i++
		}
		if i > start {
			v, err := strconv.ParseFloat(clean[start:i], 64)
			if err != nil {
				return words, fmt.Errorf("invalid number %q for word %c", clean[start:i], c)
			}
			w.Value = v
			w.HasValue = true
		}
		words = append(words, w)
	}
	return words, nil
}

// Program normalizes and tokenizes every line of a program. Lines are
// returned in order with their original 1-based numbers; tokenization
// errors are recorded per line rather than aborting the scan.
func Program(text string) []Line {
	raw := SplitLines(text)
	lines := make([]Line, 0, len(raw))
	for i, r := range raw {
		clean, comment := Normalize(r)
		ln := Line{Num: i + 1, Text: clean, Comment: comment}
		if clean != "" && clean != "%" {
			ln.Words, ln.Err = Fields(clean)
		}
		lines = append(lines, ln)
	}
	return lines
}

// Word lookup helpers used by both passes.

// Find returns the first word with the given letter.
func (l Line) Find(letter byte) (Word, bool) {
	for _, w := range l.Words {
		if w.Letter == letter {
			return w, true
		}
	}
	return Word{}, false
}

// IsMarker reports whether the line is a bare "%" program marker.
func (l Line) IsMarker() bool { return l.Text == "%" }

// IsEmpty reports whether the line has no content after normalization.
func (l Line) IsEmpty() bool { return l.Text == "" }
