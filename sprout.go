// Package sprout parses text with composable parsers.  Primitives
// match literals, character classes, numbers and names; combinators
// sequence them, choose between them and map their results.  When a
// parse fails, Run reports every dead end it hit with a 1-based row
// and column and a description of what it was looking for.
//
// This package is the everyday facade: problems come from a built-in
// set and are picked automatically.  The advanced package underneath
// exposes the same engine with caller-defined problem and context
// types for richer error reports.
package sprout

import "github.com/JohnMcGuinness/sprout-parser/advanced"

// Parser reads text and produces a T, reporting failures with the
// built-in Problem set.
type Parser[T any] = advanced.Parser[struct{}, Problem, T]

// Unit is the value produced by parsers that only consume input.
type Unit = advanced.Unit

// Position is a 1-based row/column pair.
type Position = advanced.Position

// LoopStep tells Loop whether to keep going; build one with Continue
// or Done.
type LoopStep[S, T any] = advanced.LoopStep[S, T]

// Run applies p to source.  On failure the returned error is a
// DeadEnds value with every dead end in recording order.
func Run[T any](p Parser[T], source string) (T, error) {
	value, err := advanced.Run(p, source)
	if err == nil {
		return value, nil
	}
	inner, ok := err.(advanced.DeadEnds[struct{}, Problem])
	if !ok {
		return value, err
	}
	out := make(DeadEnds, len(inner))
	for i, d := range inner {
		out[i] = DeadEnd{Row: d.Row, Col: d.Col, Problem: d.Problem}
	}
	return value, out
}

// Succeed consumes nothing and produces value.
func Succeed[T any](value T) Parser[T] {
	return advanced.Succeed[struct{}, Problem](value)
}

// Fail consumes nothing and fails with problem.
func Fail[T any](problem Problem) Parser[T] {
	return advanced.Problem[struct{}, Problem, T](problem)
}

// Token matches the literal exactly, reporting Expecting(literal) on
// a mismatch.
func Token(literal string) Parser[Unit] {
	return advanced.Literal[struct{}](advanced.Token[Problem]{
		Value:   literal,
		Problem: Expecting(literal),
	})
}

// Symbol matches operators, brackets and other punctuation, reporting
// ExpectingSymbol on a mismatch.
func Symbol(symbol string) Parser[Unit] {
	return advanced.Symbol[struct{}](advanced.Token[Problem]{
		Value:   symbol,
		Problem: ExpectingSymbol(symbol),
	})
}

// Keyword matches the keyword and requires the next code point not to
// be a letter, digit or underscore, so "let" never matches inside
// "letter".
func Keyword(keyword string) Parser[Unit] {
	return advanced.Keyword[struct{}](advanced.Token[Problem]{
		Value:   keyword,
		Problem: ExpectingKeyword(keyword),
	})
}

// End succeeds only when the whole input has been consumed.
func End() Parser[Unit] {
	return advanced.End[struct{}](ExpectingEnd)
}

// ChompIf consumes exactly one code point satisfying pred.
func ChompIf(pred func(rune) bool) Parser[Unit] {
	return advanced.ChompIf[struct{}](pred, UnexpectedCharacter)
}

// ChompWhile consumes zero or more code points satisfying pred.  It
// never fails.
func ChompWhile(pred func(rune) bool) Parser[Unit] {
	return advanced.ChompWhile[struct{}, Problem](pred)
}

// ChompUntil consumes everything up to, but not including, the next
// occurrence of sub, failing at end of input when sub never occurs.
func ChompUntil(sub string) Parser[Unit] {
	return advanced.ChompUntil[struct{}](advanced.Token[Problem]{
		Value:   sub,
		Problem: Expecting(sub),
	})
}

// ChompUntilEndOr consumes everything up to, but not including, the
// next occurrence of sub, or the rest of the input.  It never fails.
func ChompUntilEndOr(sub string) Parser[Unit] {
	return advanced.ChompUntilEndOr[struct{}, Problem](sub)
}

// Spaces chomps zero or more spaces, newlines and carriage returns.
func Spaces() Parser[Unit] {
	return advanced.Spaces[struct{}, Problem]()
}

// LineComment matches the open marker and then everything up to, but
// not including, the next newline.
func LineComment(open string) Parser[Unit] {
	return advanced.LineComment[struct{}](advanced.Token[Problem]{
		Value:   open,
		Problem: Expecting(open),
	})
}

// GetChompedString runs p and produces the slice of source it
// consumed.
func GetChompedString[A any](p Parser[A]) Parser[string] {
	return advanced.GetChompedString(p)
}

// MapChompedString runs p and hands f both the slice of source p
// consumed and the value p produced.
func MapChompedString[A, B any](f func(string, A) B, p Parser[A]) Parser[B] {
	return advanced.MapChompedString(f, p)
}

// Map transforms the value a successful parse produces.
func Map[A, B any](f func(A) B, p Parser[A]) Parser[B] {
	return advanced.Map(f, p)
}

// Map2 runs pa then pb and combines their values with f.
func Map2[A, B, V any](f func(A, B) V, pa Parser[A], pb Parser[B]) Parser[V] {
	return advanced.Map2(f, pa, pb)
}

// Skip runs keep then ignore, producing keep's value.
func Skip[A, B any](keep Parser[A], ignore Parser[B]) Parser[A] {
	return advanced.Skip(keep, ignore)
}

// Keep runs pf then pa and applies the function pf produced to the
// value pa produced.
func Keep[A, B any](pf Parser[func(A) B], pa Parser[A]) Parser[B] {
	return advanced.Keep(pf, pa)
}

// AndThen runs p and feeds its value to f to decide how parsing
// continues.
func AndThen[A, B any](f func(A) Parser[B], p Parser[A]) Parser[B] {
	return advanced.AndThen(f, p)
}

// OneOf tries each alternative in order.  An alternative that fails
// after consuming input commits the choice; see Backtrackable.
func OneOf[T any](parsers ...Parser[T]) Parser[T] {
	return advanced.OneOf(parsers...)
}

// Backtrackable lets an enclosing OneOf try further alternatives even
// when p failed after consuming input.
func Backtrackable[T any](p Parser[T]) Parser[T] {
	return advanced.Backtrackable(p)
}

// Lazy defers building the parser until it runs, enabling recursive
// grammars.
func Lazy[T any](thunk func() Parser[T]) Parser[T] {
	return advanced.Lazy(thunk)
}

// Loop threads an accumulator through repeated runs of the parser
// callback builds, until a round reports Done.
func Loop[S, T any](initial S, callback func(S) Parser[LoopStep[S, T]]) Parser[T] {
	return advanced.Loop[struct{}, Problem](initial, callback)
}

// Continue asks Loop for another round, carrying the accumulator.
func Continue[S, T any](s S) LoopStep[S, T] {
	return advanced.Continue[S, T](s)
}

// Done finishes a Loop with its result.
func Done[S, T any](value T) LoopStep[S, T] {
	return advanced.Done[S, T](value)
}

// GetPosition succeeds with the current row and column, consuming
// nothing.
func GetPosition() Parser[Position] {
	return advanced.GetPosition[struct{}, Problem]()
}

// GetRow succeeds with the current 1-based row.
func GetRow() Parser[int] {
	return advanced.GetRow[struct{}, Problem]()
}

// GetCol succeeds with the current 1-based column.
func GetCol() Parser[int] {
	return advanced.GetCol[struct{}, Problem]()
}

// GetOffset succeeds with the current byte offset into the source.
func GetOffset() Parser[int] {
	return advanced.GetOffset[struct{}, Problem]()
}

// GetSource succeeds with the full source text.
func GetSource() Parser[string] {
	return advanced.GetSource[struct{}, Problem]()
}

// GetIndent succeeds with the current indent.
func GetIndent() Parser[int] {
	return advanced.GetIndent[struct{}, Problem]()
}

// WithIndent runs p with the indent set to indent.
func WithIndent[T any](indent int, p Parser[T]) Parser[T] {
	return advanced.WithIndent(indent, p)
}

// VariableOptions configures Variable: one predicate for the first
// code point, one for the rest, and the reserved names that must not
// parse as variables.
type VariableOptions struct {
	Start    func(rune) bool
	Inner    func(rune) bool
	Reserved map[string]struct{}
}

// Variable matches one Start code point followed by any number of
// Inner code points, rejecting reserved names without committing.
func Variable(opts VariableOptions) Parser[string] {
	return advanced.Variable[struct{}](advanced.VariableOptions[Problem]{
		Start:     opts.Start,
		Inner:     opts.Inner,
		Reserved:  opts.Reserved,
		Expecting: ExpectingVariable,
	})
}

// Int recognizes base-10 integers.
func Int() Parser[int] {
	return advanced.Int[struct{}](ExpectingInt, ExpectingInt)
}

// Float recognizes base-10 integers and floats, producing a float64
// either way.
func Float() Parser[float64] {
	return advanced.Float[struct{}](ExpectingFloat, ExpectingFloat)
}

// NumberOptions configures Number.  A nil conversion forbids that
// base; recognizing a forbidden base reports its problem.
type NumberOptions[T any] struct {
	Int    func(int) T
	Hex    func(int) T
	Octal  func(int) T
	Binary func(int) T
	Float  func(float64) T
}

// Number recognizes integer literals in the four usual bases and
// floats with an optional exponent, converting with the matching
// NumberOptions slot.
func Number[T any](opts NumberOptions[T]) Parser[T] {
	return advanced.Number[struct{}](advanced.NumberOptions[Problem, T]{
		Int:       intSlot(opts.Int, ExpectingInt),
		Hex:       intSlot(opts.Hex, ExpectingHex),
		Octal:     intSlot(opts.Octal, ExpectingOctal),
		Binary:    intSlot(opts.Binary, ExpectingBinary),
		Float:     floatSlot(opts.Float, ExpectingFloat),
		Invalid:   ExpectingNumber,
		Expecting: ExpectingNumber,
	})
}

func intSlot[T any](f func(int) T, missing Problem) advanced.Result[func(int) T, Problem] {
	if f == nil {
		return advanced.Err[func(int) T](missing)
	}
	return advanced.Ok[func(int) T, Problem](f)
}

func floatSlot[T any](f func(float64) T, missing Problem) advanced.Result[func(float64) T, Problem] {
	if f == nil {
		return advanced.Err[func(float64) T](missing)
	}
	return advanced.Ok[func(float64) T, Problem](f)
}
