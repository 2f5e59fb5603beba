// Package utils provides small, generic helper functions used across
// different layers of the application. These utilities are independent
// of domain or business logic.
package utils

import (
	"strconv"
	"strings"
)

// ParseUint converts a decimal string into a uint id. It returns (0, false)
// for empty, non-numeric, zero, or negative input.
func ParseUint(s string) (uint, bool) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}

// ParseUintList parses a comma-separated list of ids ("1,2,3"). Whitespace
// around elements is tolerated; empty elements, zeros, and non-numeric
// entries make the whole list invalid.
func ParseUintList(s string) ([]uint, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, false
	}
	parts := strings.Split(s, ",")
	out := make([]uint, 0, len(parts))
	for _, p := range parts {
		id, ok := ParseUint(p)
		if !ok {
			return nil, false
		}
		out = append(out, id)
	}
	return out, true
}

// AtoiDefault converts a string to an int using strconv.Atoi.
// If the string is empty or cannot be parsed as an integer,
// it returns the provided default value instead.
func AtoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return def
}
