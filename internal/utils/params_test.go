package utils

import "testing"

func TestParseUint(t *testing.T) {
	cases := []struct {
		in   string
		want uint
		ok   bool
	}{
		{"1", 1, true},
		{"42", 42, true},
		{" 7 ", 7, true},
		{"0", 0, false},
		{"-1", 0, false},
		{"", 0, false},
		{"abc", 0, false},
		{"1.5", 0, false},
		{"99999999999999999999", 0, false},
	}
	for _, tc := range cases {
		got, ok := ParseUint(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParseUint(%q) = (%d, %v), want (%d, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestParseUintList(t *testing.T) {
	ids, ok := ParseUintList("101,102, 103")
	if !ok || len(ids) != 3 || ids[0] != 101 || ids[2] != 103 {
		t.Fatalf("ParseUintList = (%v, %v)", ids, ok)
	}

	for _, in := range []string{"", "1,,3", "1,abc", "1,0", "-1", ","} {
		if _, ok := ParseUintList(in); ok {
			t.Errorf("ParseUintList(%q) accepted, want rejection", in)
		}
	}

	single, ok := ParseUintList("5")
	if !ok || len(single) != 1 || single[0] != 5 {
		t.Fatalf("ParseUintList(\"5\") = (%v, %v)", single, ok)
	}
}

func TestAtoiDefault(t *testing.T) {
	if got := AtoiDefault("", 100); got != 100 {
		t.Errorf("empty: got %d", got)
	}
	if got := AtoiDefault("abc", 100); got != 100 {
		t.Errorf("non-numeric: got %d", got)
	}
	if got := AtoiDefault("25", 100); got != 25 {
		t.Errorf("numeric: got %d", got)
	}
	if got := AtoiDefault("-3", 100); got != -3 {
		t.Errorf("negative passes through: got %d", got)
	}
}
