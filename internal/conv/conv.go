// Package conv provides conversion helpers that avoid copying path input.
//
// Parsers operate on strings, but some search backends only accept byte
// slices. StringBytes exposes the bytes of a string without an allocation.
// The returned slice aliases immutable memory: it must never be written to.
package conv

import "unsafe"

// StringBytes returns a read-only byte view of s.
// Returns nil for the empty string.
//
//go:inline
func StringBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// MinInt returns the smaller of a and b.
//
//go:inline
func MinInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
