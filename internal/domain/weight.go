package domain

import (
	"math"
	"time"
)

// RoundWeight rounds a weight to two fractional digits. Applied at write
// time so that stored values are already canonical.
func RoundWeight(w float64) float64 {
	return math.Round(w*100) / 100
}

// ValidDate reports whether s is a calendar date in DateLayout form.
// The parse-and-reformat round trip must be exact, so zero-padded months
// and days are required ("2024/01/01", not "2024/1/1").
func ValidDate(s string) bool {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return false
	}
	return t.Format(DateLayout) == s
}
