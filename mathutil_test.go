package edmpath

import (
	"math"
	"testing"
)

func TestRoundTo(t *testing.T) {
	tests := []struct {
		v        float64
		decimals int
		want     float64
	}{
		{1.23456789, 6, 1.234568},
		{1.2345644, 6, 1.234564},
		{-0.0000005, 6, -0.000001},
		{100, 6, 100},
		{3.14159, 2, 3.14},
	}
	for _, tt := range tests {
		if got := RoundTo(tt.v, tt.decimals); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("RoundTo(%v, %d) = %v, want %v", tt.v, tt.decimals, got, tt.want)
		}
	}
}

func TestValidCoordinate(t *testing.T) {
	tests := []struct {
		v    float64
		want bool
	}{
		{0, true},
		{123.456, true},
		{-MaxCoordinate, true},
		{MaxCoordinate + 1, false},
		{math.Inf(1), false},
		{math.Inf(-1), false},
		{math.NaN(), false},
	}
	for _, tt := range tests {
		if got := ValidCoordinate(tt.v); got != tt.want {
			t.Errorf("ValidCoordinate(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestPointHelpers(t *testing.T) {
	p := Pt(3, 4)
	if got := p.Length(); got != 5 {
		t.Errorf("Length() = %v, want 5", got)
	}
	if got := p.Distance(Pt(3, 0)); got != 4 {
		t.Errorf("Distance = %v, want 4", got)
	}
	if got := Pt(0, 1).Angle(); math.Abs(got-math.Pi/2) > 1e-12 {
		t.Errorf("Angle() = %v, want pi/2", got)
	}
	if !p.NearlyEqual(Pt(3+1e-10, 4-1e-10), 1e-9) {
		t.Error("NearlyEqual rejected a point within eps")
	}
	if p.NearlyEqual(Pt(3.1, 4), 1e-9) {
		t.Error("NearlyEqual accepted a distant point")
	}
	if Pt(math.NaN(), 0).IsFinite() || Pt(0, math.Inf(1)).IsFinite() {
		t.Error("IsFinite accepted a non-finite point")
	}
}
