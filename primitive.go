package pathcomb

import (
	"strconv"
	"strings"

	"github.com/coregx/pathcomb/simd"
)

// Path separators and segments for '/'-delimited paths.
const (
	Slash     Separator     = '/'
	StringVar StringSegment = '/'
	IntVar    IntSegment    = '/'
)

// Literal matches its text exactly at the start of the input.
type Literal string

// Parse consumes len(l) bytes when path starts with l.
func (l Literal) Parse(path string) (Unit, string, bool) {
	if strings.HasPrefix(path, string(l)) {
		return Unit{}, path[len(l):], true
	}
	return Unit{}, "", false
}

// Separator matches a single separator byte.
type Separator byte

// Parse consumes one byte when it equals the separator.
func (s Separator) Parse(path string) (Unit, string, bool) {
	if len(path) > 0 && path[0] == byte(s) {
		return Unit{}, path[1:], true
	}
	return Unit{}, "", false
}

// StringSegment consumes everything up to, but not including, the next
// occurrence of its separator byte, or the whole input when there is none.
// It never fails and may produce an empty segment.
type StringSegment byte

// Parse returns the segment as a substring of path.
func (s StringSegment) Parse(path string) (string, string, bool) {
	seg, rest := segment(path, byte(s))
	return seg, rest, true
}

// IntSegment bounds a segment like StringSegment and parses it as a base-10
// signed integer. It fails when the segment is not a valid integer, including
// the empty segment.
type IntSegment byte

// Parse returns the integer value of the segment.
func (s IntSegment) Parse(path string) (int, string, bool) {
	seg, rest := segment(path, byte(s))
	if !isDecimal(seg) {
		return 0, "", false
	}
	n, err := strconv.Atoi(seg)
	if err != nil {
		// overflow
		return 0, "", false
	}
	return n, rest, true
}

// segment applies the boundary rule: split before the first sep.
func segment(path string, sep byte) (string, string) {
	i := simd.IndexByte(path, sep)
	if i < 0 {
		return path, ""
	}
	return path[:i], path[i:]
}

// isDecimal reports whether s is an optional sign followed by one or more
// ASCII digits. Checking up front keeps strconv off its allocating error path
// for the common non-numeric case.
func isDecimal(s string) bool {
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
