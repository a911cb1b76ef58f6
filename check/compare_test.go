package check

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareIgnoresFraming(t *testing.T) {
	a := []byte("%\r\nN10 G1 X1 Y1\r\nN20 M02\r\n")
	b := []byte("N10  G1  X1  Y1\n")
	diff := Compare(a, b, DefaultCompareOptions())
	assert.Zero(t, diff.FirstDiffLine, "framing and whitespace runs must not count as differences")
}

func TestCompareFindsFirstDifference(t *testing.T) {
	a := []byte("G1 X1 Y1\nG1 X2 Y2\nG1 X3 Y3\n")
	b := []byte("G1 X1 Y1\nG1 X2 Y9\nG1 X3 Y3\n")
	diff := Compare(a, b, DefaultCompareOptions())
	assert.Equal(t, 2, diff.FirstDiffLine)
	assert.Equal(t, "G1 X2 Y2", diff.ALine)
	assert.Equal(t, "G1 X2 Y9", diff.BLine)
}

func TestCompareLengthMismatch(t *testing.T) {
	a := []byte("G1 X1 Y1\nG1 X2 Y2\n")
	b := []byte("G1 X1 Y1\n")
	diff := Compare(a, b, DefaultCompareOptions())
	assert.Equal(t, 2, diff.FirstDiffLine)
	assert.Equal(t, "<EOF>", diff.BLine)
}

func TestCompareKeepFraming(t *testing.T) {
	a := []byte("%\nG1 X1 Y1\n")
	b := []byte("G1 X1 Y1\n")
	diff := Compare(a, b, CompareOptions{})
	assert.Equal(t, 1, diff.FirstDiffLine)
}
