package main

import (
	"math"
	"testing"
)

func TestParsePhaseExpr(t *testing.T) {
	tests := []struct {
		input string
		want  float64
		ok    bool
	}{
		// Plain decimals
		{"0.625", 0.625, true},
		{"0", 0, true},
		{"0.5", 0.5, true},

		// Fractions
		{"5/8", 5.0 / 8, true},
		{"1/2", 0.5, true},
		{"3/16", 3.0 / 16, true},

		// Whitespace
		{" 5 / 8 ", 5.0 / 8, true},
		{" 0.25 ", 0.25, true},

		// Invalid
		{"", 0, false},
		{"abc", 0, false},
		{"5/0", 0, false},
		{"5/x", 0, false},
	}

	for _, tt := range tests {
		got, ok := parsePhaseExpr(tt.input)
		if ok != tt.ok {
			t.Errorf("parsePhaseExpr(%q): ok=%v, want ok=%v", tt.input, ok, tt.ok)
			continue
		}
		if ok && math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("parsePhaseExpr(%q) = %g, want %g", tt.input, got, tt.want)
		}
	}
}

func TestFormatPhase(t *testing.T) {
	tests := []struct {
		t    float64
		d    int
		want string
	}{
		{0.625, 3, "5/8"},
		{0.5, 3, "4/8"},
		{0, 3, "0/8"},
		{1.0 / 3, 3, "0.3333333333333333"},
	}

	for _, tt := range tests {
		got := formatPhase(tt.t, tt.d)
		if got != tt.want {
			t.Errorf("formatPhase(%g, %d) = %q, want %q", tt.t, tt.d, got, tt.want)
		}
	}
}
