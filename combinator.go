package pathcomb

// parseFunc is the bound Parse method of a sub-parser. Combinators capture it
// once at construction so that parsing makes plain function calls and never
// converts a sub-parser to an interface.
type parseFunc[A any] func(path string) (A, string, bool)

// MapParser is the parser built by Map.
type MapParser[A, B any] struct {
	parser parseFunc[A]
	f      func(A) B
}

// Map returns a parser that runs p and passes its value through f.
// The remaining input is left exactly as p returned it, and f is not called
// when p fails.
//
// f must be total: a conversion that can fail belongs in a primitive parser
// (as IntSegment does), not in Map.
//
// Example:
//
//	upper := pathcomb.Map(pathcomb.StringVar, strings.ToUpper)
//	v, rest, _ := upper.Parse("abc/def") // "ABC", "/def"
func Map[P Parser[A], A, B any](p P, f func(A) B) MapParser[A, B] {
	return MapParser[A, B]{parser: p.Parse, f: f}
}

// Parse implements Parser.
func (m MapParser[A, B]) Parse(path string) (B, string, bool) {
	a, rest, ok := m.parser(path)
	if !ok {
		var zero B
		return zero, "", false
	}
	return m.f(a), rest, true
}

// CombineParser is the parser built by CombineWith.
type CombineParser[A, B, C any] struct {
	left  parseFunc[A]
	right parseFunc[B]
	f     func(A, B) C
}

// CombineWith returns a parser that runs left, then right on what left did
// not consume, and merges both values with f.
//
// Evaluation is strictly left to right. If left fails, right is never run.
// If right fails, the value left produced is discarded. Either way the
// combined parser fails. f is called exactly once per successful parse.
//
// Every multi-step grammar is a tree of CombineWith nodes; Pair, KeepLeft and
// KeepRight are CombineWith with fixed functions.
func CombineWith[L Parser[A], R Parser[B], A, B, C any](left L, right R, f func(A, B) C) CombineParser[A, B, C] {
	return CombineParser[A, B, C]{left: left.Parse, right: right.Parse, f: f}
}

// Parse implements Parser.
func (c CombineParser[A, B, C]) Parse(path string) (C, string, bool) {
	var zero C

	a, rest, ok := c.left(path)
	if !ok {
		return zero, "", false
	}

	b, rest, ok := c.right(rest)
	if !ok {
		return zero, "", false
	}

	return c.f(a, b), rest, true
}

// Pair sequences left and right and keeps both values.
func Pair[L Parser[A], R Parser[B], A, B any](left L, right R) CombineParser[A, B, Tuple[A, B]] {
	return CombineWith[L, R, A, B, Tuple[A, B]](left, right, tuple[A, B])
}

// KeepLeft sequences left and right and keeps only the left value.
// It is typically used to consume trailing syntax.
func KeepLeft[L Parser[A], R Parser[B], A, B any](left L, right R) CombineParser[A, B, A] {
	return CombineWith[L, R, A, B, A](left, right, first[A, B])
}

// KeepRight sequences left and right and keeps only the right value.
// It is typically used to consume leading syntax.
func KeepRight[L Parser[A], R Parser[B], A, B any](left L, right R) CombineParser[A, B, B] {
	return CombineWith[L, R, A, B, B](left, right, second[A, B])
}

func tuple[A, B any](a A, b B) Tuple[A, B] {
	return Tuple[A, B]{First: a, Second: b}
}

func first[A, B any](a A, _ B) A {
	return a
}

func second[A, B any](_ A, b B) B {
	return b
}
