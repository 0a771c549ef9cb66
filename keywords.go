package pathcomb

import (
	"strings"

	"github.com/coregx/pathcomb/literal"
)

// Keywords matches the longest of a fixed set of literals at the start of the
// input and produces the matched literal.
//
// Keywords is a single primitive: it compares literals against the same
// input and never re-runs another parser, so it adds no backtracking to a
// grammar. Sets with literal.PrefilterThreshold or more literals reject
// non-matching input with an Aho-Corasick prefilter.
type Keywords struct {
	set *literal.Set
}

// NewKeywords builds a Keywords parser.
//
// Returns a *KeywordError if words is empty or contains an empty string.
//
// Example:
//
//	kind, err := pathcomb.NewKeywords("users", "orgs", "teams")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	v, rest, ok := kind.Parse("orgs/42") // "orgs", "/42", true
func NewKeywords(words ...string) (Keywords, error) {
	set, err := literal.NewSet(words...)
	if err != nil {
		return Keywords{}, &KeywordError{Words: words, Err: err}
	}
	return Keywords{set: set}, nil
}

// MustKeywords is like NewKeywords but panics on error.
//
// This is useful for keyword sets known to be valid at compile time.
//
// Example:
//
//	var kind = pathcomb.MustKeywords("users", "orgs", "teams")
func MustKeywords(words ...string) Keywords {
	k, err := NewKeywords(words...)
	if err != nil {
		panic("pathcomb: MustKeywords(" + strings.Join(words, ", ") + "): " + err.Error())
	}
	return k
}

// Parse consumes the longest keyword path starts with.
// The zero Keywords matches nothing.
func (k Keywords) Parse(path string) (string, string, bool) {
	if k.set == nil {
		return "", "", false
	}
	w, ok := k.set.MatchPrefix(path)
	if !ok {
		return "", "", false
	}
	return w, path[len(w):], true
}

// Words returns the keywords in declaration order.
func (k Keywords) Words() []string {
	if k.set == nil {
		return nil
	}
	return k.set.Words()
}
