// Package advanced implements the parsing engine: parsers as
// composable values, threaded position state, and dead-end error
// reports that carry a row, a column, a caller-defined problem, and
// the stack of syntactic constructs that were open when parsing got
// stuck.
//
// The engine follows a commit discipline driven by a single progress
// flag on every result.  A parser that consumed input and then failed
// has committed: OneOf will not try the remaining alternatives, which
// keeps parsing linear and error positions precise.  Backtrackable is
// the one escape hatch.
//
// C is the caller's context type, X the caller's problem type.  The
// root package fixes both for the common case.
package advanced

// Parser consumes input from a state snapshot and either produces a
// value of type T together with the advanced snapshot, or fails with
// a bag of dead ends.
//
// Parsers are plain immutable values: build them once, run them as
// often as you like, from as many goroutines as you like.
type Parser[C, X, T any] struct {
	run func(state[C]) step[C, X, T]
}

// step is the outcome of running a parser: success with a value and
// the state after it, or failure with a bag of dead ends.  progress
// records whether any input was consumed; it is the signal Map2,
// AndThen and OneOf use to decide whether a failure commits.
type step[C, X, T any] struct {
	good     bool
	progress bool
	value    T
	state    state[C]
	bag      *bag[C, X]
}

func good[C, X, T any](progress bool, value T, s state[C]) step[C, X, T] {
	return step[C, X, T]{good: true, progress: progress, value: value, state: s}
}

func bad[C, X, T any](progress bool, b *bag[C, X]) step[C, X, T] {
	return step[C, X, T]{progress: progress, bag: b}
}

// Run applies p to source.  On failure the returned error is a
// DeadEnds value holding every dead end in the order it was recorded.
func Run[C, X, T any](p Parser[C, X, T], source string) (T, error) {
	st := p.run(state[C]{src: source, indent: 1, row: 1, col: 1})
	if st.good {
		return st.value, nil
	}
	var zero T
	return zero, DeadEnds[C, X](st.bag.flatten(nil))
}

// Succeed consumes nothing and produces value.
func Succeed[C, X, T any](value T) Parser[C, X, T] {
	return Parser[C, X, T]{run: func(s state[C]) step[C, X, T] {
		return good[C, X](false, value, s)
	}}
}

// Problem consumes nothing and fails with x.
func Problem[C, X, T any](x X) Parser[C, X, T] {
	return Parser[C, X, T]{run: func(s state[C]) step[C, X, T] {
		return bad[C, X, T](false, fromState(s, x))
	}}
}

// End succeeds only when the whole input has been consumed.
func End[C, X any](x X) Parser[C, X, Unit] {
	return Parser[C, X, Unit]{run: func(s state[C]) step[C, X, Unit] {
		if s.offset == len(s.src) {
			return good[C, X](false, Unit{}, s)
		}
		return bad[C, X, Unit](false, fromState(s, x))
	}}
}

// GetPosition succeeds with the current row and column, consuming
// nothing.
func GetPosition[C, X any]() Parser[C, X, Position] {
	return Parser[C, X, Position]{run: func(s state[C]) step[C, X, Position] {
		return good[C, X](false, Position{Row: s.row, Col: s.col}, s)
	}}
}

// GetRow succeeds with the current 1-based row.
func GetRow[C, X any]() Parser[C, X, int] {
	return Parser[C, X, int]{run: func(s state[C]) step[C, X, int] {
		return good[C, X](false, s.row, s)
	}}
}

// GetCol succeeds with the current 1-based column.
func GetCol[C, X any]() Parser[C, X, int] {
	return Parser[C, X, int]{run: func(s state[C]) step[C, X, int] {
		return good[C, X](false, s.col, s)
	}}
}

// GetOffset succeeds with the current byte offset into the source.
func GetOffset[C, X any]() Parser[C, X, int] {
	return Parser[C, X, int]{run: func(s state[C]) step[C, X, int] {
		return good[C, X](false, s.offset, s)
	}}
}

// GetSource succeeds with the full source text.
func GetSource[C, X any]() Parser[C, X, string] {
	return Parser[C, X, string]{run: func(s state[C]) step[C, X, string] {
		return good[C, X](false, s.src, s)
	}}
}

// GetIndent succeeds with the current indent.  The engine never
// interprets the indent; WithIndent sets it and grammars compare it
// against GetCol to express layout rules.
func GetIndent[C, X any]() Parser[C, X, int] {
	return Parser[C, X, int]{run: func(s state[C]) step[C, X, int] {
		return good[C, X](false, s.indent, s)
	}}
}
