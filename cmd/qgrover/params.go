package main

import (
	"fmt"
	"strconv"
	"strings"
)

// parsePhaseExpr parses a target phase given as a decimal ("0.625") or a
// fraction ("5/8"). Returns the value and true on success.
func parsePhaseExpr(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	if num, den, found := strings.Cut(s, "/"); found {
		p, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
		if err != nil {
			return 0, false
		}
		q, err := strconv.ParseFloat(strings.TrimSpace(den), 64)
		if err != nil || q == 0 {
			return 0, false
		}
		return p / q, true
	}

	val, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return val, true
}

// formatPhase renders a phase as the fraction k/2^d when it is exactly
// representable, falling back to decimal notation.
func formatPhase(t float64, d int) string {
	scaled := t * float64(int(1)<<d)
	if scaled == float64(int(scaled)) {
		return fmt.Sprintf("%d/%d", int(scaled), 1<<d)
	}
	return strconv.FormatFloat(t, 'g', -1, 64)
}
