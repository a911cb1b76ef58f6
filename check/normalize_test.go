package check

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDefaults(t *testing.T) {
	in := []byte("G0 X0 Y0\nG1   X10 Y0 ; lead-in\nM02\nG1 X10 Y10\n")
	out := string(Normalize(in, DefaultNormalizeOptions()))

	lines := strings.Split(strings.TrimSuffix(out, "\r\n"), "\r\n")
	// The original M02 line consumed N30 before being stripped, so the
	// trailing block numbers skip a step.
	require.Equal(t, []string{
		"%",
		"N10 G0 X0 Y0",
		"N20 G1 X10 Y0",
		"N40 G1 X10 Y10",
		"N50 M02",
	}, lines)
	assert.True(t, strings.HasSuffix(out, "\r\n"))
}

func TestNormalizeKeepsExistingBlockNumbers(t *testing.T) {
	in := []byte("N100 G0 X0 Y0\nG1 X5 Y5\n")
	out := string(Normalize(in, DefaultNormalizeOptions()))
	assert.Contains(t, out, "N100 G0 X0 Y0")
	assert.Contains(t, out, "N10 G1 X5 Y5")
}

func TestNormalizeExistingPercentNotDoubled(t *testing.T) {
	in := []byte("%\nG1 X1 Y1\n")
	out := string(Normalize(in, DefaultNormalizeOptions()))
	assert.Equal(t, 1, strings.Count(out, "%"))
}

func TestNormalizeOptions(t *testing.T) {
	in := []byte("G1 X1 Y1 ; keep me\n")
	opts := NormalizeOptions{
		StartN:          5,
		Step:            5,
		AddPercent:      false,
		EnsureM02:       false,
		CRLF:            false,
		StripSemicolons: false,
	}
	out := string(Normalize(in, opts))
	assert.Equal(t, "N5 G1 X1 Y1 ; keep me\n", out)
}

func TestNormalizeAnalyzeRoundTrip(t *testing.T) {
	// A normalized program passes analysis clean: CRLF, % header, M02
	// trailer, monotonic block numbers.
	in := []byte("G0 X0 Y0\nG1 X10 Y0\nG1 X10 Y10\nM2\n")
	rep := Analyze(Normalize(in, DefaultNormalizeOptions())).Text
	assert.True(t, rep.StartsWithPercent)
	assert.True(t, rep.EndsWithM02)
	assert.True(t, rep.HasBlockNumbers)
	assert.True(t, rep.BlockNumbersMonotonic)
	assert.Empty(t, rep.SuspectLines)
	assert.False(t, rep.HasSemicolonComments)
}
