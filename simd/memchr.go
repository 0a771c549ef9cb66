// Package simd provides accelerated byte searching over strings for the
// segment boundary rule. The implementation is selected once at package
// initialization based on available CPU features: on CPUs with vector units
// (AVX2/SSE4.2 on x86-64, ASIMD on arm64) the search goes through the Go
// runtime's vectorized IndexByte, everywhere else through a pure Go SWAR
// (SIMD Within A Register) loop that processes 8 bytes at a time.
//
// All functions operate on strings so that callers can search path input
// without converting it to a byte slice.
package simd

import (
	"strings"

	"golang.org/x/sys/cpu"
)

// CPU feature detection flags set at package initialization.
var (
	// hasVector indicates whether the CPU has a vector unit the runtime's
	// IndexByte assembly takes advantage of.
	hasVector = cpu.X86.HasAVX2 || cpu.X86.HasSSE42 || cpu.ARM64.HasASIMD
)

// vectorThreshold is the input length below which the SWAR loop beats the
// call into the runtime. Path segments are usually shorter than this.
const vectorThreshold = 32

// IndexByte returns the index of the first instance of needle in haystack,
// or -1 if needle is not present in haystack.
//
// It is equivalent to strings.IndexByte. Short inputs (< 32 bytes) are always
// scanned with the SWAR loop since the setup cost of vector search outweighs
// its benefit there.
//
// Example:
//
//	pos := simd.IndexByte("jdegoes/posts/123", '/')
//	// pos == 7
func IndexByte(haystack string, needle byte) int {
	if len(haystack) == 0 {
		return -1
	}

	if hasVector && len(haystack) >= vectorThreshold {
		return strings.IndexByte(haystack, needle)
	}

	return indexByteGeneric(haystack, needle)
}

// HasVector reports whether IndexByte dispatches long inputs to the vectorized
// runtime search.
func HasVector() bool {
	return hasVector
}
