package simd

import "math/bits"

const (
	lo8 = 0x0101010101010101
	hi8 = 0x8080808080808080
)

// indexByteGeneric implements pure Go byte search using the SWAR technique.
//
// Algorithm:
//  1. Broadcast needle to every byte of a uint64 mask
//  2. Load 8 bytes of haystack as a little-endian uint64
//  3. XOR with the mask (matching bytes become 0x00)
//  4. Detect the first zero byte with (v - lo8) & ^v & hi8
//  5. Convert the trailing zero bit count into a byte offset
func indexByteGeneric(haystack string, needle byte) int {
	n := len(haystack)

	// For small inputs, byte-by-byte is faster (no setup overhead)
	if n < 8 {
		for i := 0; i < n; i++ {
			if haystack[i] == needle {
				return i
			}
		}
		return -1
	}

	needleMask := uint64(needle) * lo8

	i := 0
	for i+8 <= n {
		xor := load64(haystack, i) ^ needleMask
		if hasZero := (xor - lo8) & ^xor & hi8; hasZero != 0 {
			return i + bits.TrailingZeros64(hasZero)/8
		}
		i += 8
	}

	for ; i < n; i++ {
		if haystack[i] == needle {
			return i
		}
	}

	return -1
}

// load64 reads 8 bytes of s starting at i as a little-endian uint64.
// The compiler merges the byte loads into a single load.
func load64(s string, i int) uint64 {
	_ = s[i+7] // bounds check hint
	return uint64(s[i]) | uint64(s[i+1])<<8 | uint64(s[i+2])<<16 | uint64(s[i+3])<<24 |
		uint64(s[i+4])<<32 | uint64(s[i+5])<<40 | uint64(s[i+6])<<48 | uint64(s[i+7])<<56
}
