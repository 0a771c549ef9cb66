// Package literal provides anchored matching against a fixed set of literal
// strings.
//
// A Set answers one question: which of its literals is the longest prefix of
// the input? Small sets are verified by a linear scan. Larger sets first run
// an Aho-Corasick automaton over a window of the input as a prefilter, which
// rejects inputs that contain none of the literals in a single pass before
// any per-literal comparison is done.
package literal

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/coregx/ahocorasick"

	"github.com/coregx/pathcomb/internal/conv"
)

// Common set construction errors
var (
	// ErrNoLiterals indicates a set was built from zero literals
	ErrNoLiterals = errors.New("literal set is empty")

	// ErrEmptyLiteral indicates one of the literals is the empty string.
	// An empty literal would match every input and hide all others.
	ErrEmptyLiteral = errors.New("empty literal")
)

// BuildError wraps set construction errors with the offending literal index.
type BuildError struct {
	Index int // -1 when the error is not tied to a single literal
	Err   error
}

// Error implements the error interface
func (e *BuildError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("literal set: literal %d: %v", e.Index, e.Err)
	}
	return fmt.Sprintf("literal set: %v", e.Err)
}

// Unwrap returns the underlying error
func (e *BuildError) Unwrap() error {
	return e.Err
}

// PrefilterThreshold is the minimum number of literals for which a Set builds
// an Aho-Corasick prefilter. Below it the linear scan is faster.
const PrefilterThreshold = 8

// Set is an immutable set of literals matched against the start of an input.
//
// A Set is safe to use concurrently from multiple goroutines.
type Set struct {
	// words in declaration order
	words []string

	// byLength holds the same literals ordered longest first; ties keep
	// declaration order. Scanning it yields leftmost-longest semantics.
	byLength []string

	maxLen int

	// automaton is nil for sets smaller than PrefilterThreshold.
	automaton *ahocorasick.Automaton
}

// NewSet builds a Set from words.
//
// Example:
//
//	set, err := literal.NewSet("users", "user", "posts")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	w, ok := set.MatchPrefix("users/42") // "users", true
func NewSet(words ...string) (*Set, error) {
	if len(words) == 0 {
		return nil, &BuildError{Index: -1, Err: ErrNoLiterals}
	}

	s := &Set{
		words:    append([]string(nil), words...),
		byLength: append([]string(nil), words...),
	}
	for i, w := range words {
		if w == "" {
			return nil, &BuildError{Index: i, Err: ErrEmptyLiteral}
		}
		if len(w) > s.maxLen {
			s.maxLen = len(w)
		}
	}
	sort.SliceStable(s.byLength, func(i, j int) bool {
		return len(s.byLength[i]) > len(s.byLength[j])
	})

	if len(words) >= PrefilterThreshold {
		builder := ahocorasick.NewBuilder()
		for _, w := range words {
			builder.AddPattern([]byte(w))
		}
		automaton, err := builder.Build()
		if err != nil {
			return nil, &BuildError{Index: -1, Err: err}
		}
		s.automaton = automaton
	}

	return s, nil
}

// MatchPrefix returns the longest literal of the set that input starts with.
// The returned string is a view into input.
func (s *Set) MatchPrefix(input string) (string, bool) {
	if s.automaton != nil {
		// Every literal fits in the window, so no occurrence in the window
		// means no literal can be a prefix.
		window := input[:conv.MinInt(len(input), s.maxLen)]
		if !s.automaton.IsMatch(conv.StringBytes(window)) {
			return "", false
		}
	}

	for _, w := range s.byLength {
		if strings.HasPrefix(input, w) {
			return input[:len(w)], true
		}
	}
	return "", false
}

// Len returns the number of literals in the set.
func (s *Set) Len() int {
	return len(s.words)
}

// Words returns a copy of the literals in declaration order.
func (s *Set) Words() []string {
	return append([]string(nil), s.words...)
}

// MaxLen returns the length of the longest literal.
func (s *Set) MaxLen() int {
	return s.maxLen
}

// HasPrefilter reports whether the set runs the Aho-Corasick prefilter.
func (s *Set) HasPrefilter() bool {
	return s.automaton != nil
}

// String returns a debug representation: "literal.Set{a|b|c}".
func (s *Set) String() string {
	return "literal.Set{" + strings.Join(s.words, "|") + "}"
}
