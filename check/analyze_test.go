package check

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeCleanProgram(t *testing.T) {
	data := []byte("%\r\nN10 G0 X0 Y0\r\nN20 G1 X10.5 Y0\r\nN30 M02\r\n")
	rep := Analyze(data)

	assert.Equal(t, "CRLF", rep.EOL.Label)
	assert.Equal(t, 4, rep.EOL.CRLF)
	assert.Zero(t, rep.EOL.LF)
	assert.Zero(t, rep.NonASCIICount)

	tr := rep.Text
	assert.Equal(t, 4, tr.TotalLines)
	assert.True(t, tr.StartsWithPercent)
	assert.True(t, tr.EndsWithM02)
	assert.True(t, tr.HasBlockNumbers)
	assert.True(t, tr.BlockNumbersMonotonic)
	assert.Equal(t, 1, tr.PrecisionMaxPlaces)
	assert.Zero(t, tr.PrecisionOver4Count)
	assert.Empty(t, tr.SuspectLines)
	assert.Equal(t, []int{4}, tr.StopCodes["M02"])
}

func TestAnalyzeFindsProblems(t *testing.T) {
	lines := []string{
		"%",
		"N20 G1 X1.123456 Y0", // over 4 decimal places
		"N10 G1\tX2 Y0",       // tab + non-monotonic block number
		"M02",                 // stop code not at end
		"%",
		"G1 X3 Y0 " + strings.Repeat("(pad)", 30), // over length
	}
	rep := Analyze([]byte(strings.Join(lines, "\n")))

	tr := rep.Text
	assert.False(t, tr.BlockNumbersMonotonic)
	assert.Equal(t, 6, tr.PrecisionMaxPlaces)
	assert.Equal(t, 1, tr.PrecisionOver4Count)
	assert.Equal(t, []int{5}, tr.StrayPercentPositions)
	assert.False(t, tr.EndsWithM02)

	reasons := map[string]int{}
	for _, s := range tr.SuspectLines {
		reasons[s.Reason]++
	}
	assert.Equal(t, 1, reasons["tab character"])
	assert.Equal(t, 1, reasons["M02 not at end"])
	assert.Equal(t, 1, reasons["line too long"])
}

func TestAnalyzeNonASCII(t *testing.T) {
	data := []byte("N10 G0 X0 Y0\n")
	data = append(data, 0xB5) // micro sign in latin-1
	data = append(data, '\n')
	rep := Analyze(data)
	assert.Equal(t, 1, rep.NonASCIICount)
	require.Len(t, rep.NonASCIISample, 1)
	assert.Equal(t, 13, rep.NonASCIISample[0])
}

func TestAnalyzeEOLLabels(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"lf only", "a\nb\n", "LF"},
		{"crlf only", "a\r\nb\r\n", "CRLF"},
		{"cr only", "a\rb\r", "CR"},
		{"mixed", "a\r\nb\n", "MIXED"},
		{"none", "a", "NONE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Analyze([]byte(tt.data)).EOL.Label)
		})
	}
}

func TestDecodeEncodeLatin1(t *testing.T) {
	raw := []byte{'X', '1', 0xE9} // é in latin-1
	s := Decode(raw)
	assert.Equal(t, "X1é", s)
	assert.Equal(t, raw, Encode(s))
}
