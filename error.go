package pathcomb

import (
	"fmt"

	"github.com/coregx/pathcomb/literal"
)

// Keyword construction errors, matchable with errors.Is.
var (
	// ErrNoKeywords indicates NewKeywords was called without words
	ErrNoKeywords = literal.ErrNoLiterals

	// ErrEmptyKeyword indicates one of the words is the empty string
	ErrEmptyKeyword = literal.ErrEmptyLiteral
)

// KeywordError wraps keyword set construction errors with the words involved.
//
// Parse failures are never reported as errors; they are the false result of
// Parse. Errors only arise while constructing parsers.
type KeywordError struct {
	Words []string
	Err   error
}

// Error implements the error interface
func (e *KeywordError) Error() string {
	return fmt.Sprintf("invalid keywords %q: %v", e.Words, e.Err)
}

// Unwrap returns the underlying error
func (e *KeywordError) Unwrap() error {
	return e.Err
}
