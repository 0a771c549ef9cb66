// Package pathcomb provides statically typed parser combinators for
// structured path strings such as URL routes.
//
// A grammar is described by nesting small primitive parsers inside two
// structural combinators: Map transforms a parser's result, CombineWith runs
// two parsers in sequence and merges their results. Pair, KeepLeft and
// KeepRight are built from CombineWith.
//
// Basic usage:
//
//	// /users/<name>/posts/<id>
//	p := pathcomb.Pair(
//	    pathcomb.KeepLeft(
//	        pathcomb.KeepLeft(
//	            pathcomb.KeepLeft(
//	                pathcomb.KeepRight(
//	                    pathcomb.KeepRight(
//	                        pathcomb.KeepRight(pathcomb.Slash, pathcomb.Literal("users")),
//	                        pathcomb.Slash),
//	                    pathcomb.StringVar),
//	                pathcomb.Slash),
//	            pathcomb.Literal("posts")),
//	        pathcomb.Slash),
//	    pathcomb.IntVar)
//
//	v, rest, ok := p.Parse("/users/jdegoes/posts/123")
//	// v == Tuple[string, int]{"jdegoes", 123}, rest == "", ok == true
//
// Performance characteristics:
//   - Combinators are generic structs typed by the values they produce; each
//     binds its sub-parsers' Parse methods once at construction, so a parse
//     is a chain of function-value calls with no interface boxing
//   - Parsing does not allocate: segments are substrings of the input
//   - Separator search uses SIMD-accelerated IndexByte (see package simd)
//
// Semantics:
//   - Parsing is strictly left to right with no backtracking
//   - Failure carries no diagnostics; every layer reports it as ok == false
//   - Parser values are immutable and safe for concurrent use
package pathcomb

// Parser is the contract every parser satisfies.
//
// Parse consumes a prefix of path. On success it returns the produced value,
// the unconsumed suffix of path and true. On failure it returns the zero
// value, "" and false. Parse must not have side effects: calling it twice on
// the same input yields the same outcome.
type Parser[A any] interface {
	Parse(path string) (A, string, bool)
}

// Func adapts an ordinary function into a Parser.
//
// Example:
//
//	dot := pathcomb.Func[pathcomb.Unit](func(path string) (pathcomb.Unit, string, bool) {
//	    if strings.HasPrefix(path, ".") {
//	        return pathcomb.Unit{}, path[1:], true
//	    }
//	    return pathcomb.Unit{}, "", false
//	})
type Func[A any] func(path string) (A, string, bool)

// Parse calls f(path).
func (f Func[A]) Parse(path string) (A, string, bool) {
	return f(path)
}

// Unit is the value produced by parsers that only consume syntax.
type Unit struct{}

// Tuple holds the results of two parsers run in sequence.
type Tuple[A, B any] struct {
	First  A
	Second B
}
