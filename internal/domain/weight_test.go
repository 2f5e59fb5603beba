package domain

import "testing"

func TestRoundWeight(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{60.255, 60.26},
		{60.254, 60.25},
		{62.5, 62.5},
		{0, 0},
		{100, 100},
		{0.005, 0.01},
		{79.999, 80},
	}
	for _, tc := range cases {
		if got := RoundWeight(tc.in); got != tc.want {
			t.Errorf("RoundWeight(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestValidDate(t *testing.T) {
	valid := []string{"2024/01/01", "2024/12/31", "2000/02/29"}
	for _, s := range valid {
		if !ValidDate(s) {
			t.Errorf("ValidDate(%q) = false, want true", s)
		}
	}

	invalid := []string{
		"",
		"2024-01-01", // wrong separator
		"2024/1/1",   // not zero-padded
		"01/01/2024", // wrong field order
		"2024/13/01", // no thirteenth month
		"2024/02/30", // not a calendar date
		"2023/02/29", // not a leap year
		"2024/01/01 ",
		"garbage",
	}
	for _, s := range invalid {
		if ValidDate(s) {
			t.Errorf("ValidDate(%q) = true, want false", s)
		}
	}
}
