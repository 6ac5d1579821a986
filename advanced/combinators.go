package advanced

// Map transforms the value a successful parse produces.
func Map[C, X, A, B any](f func(A) B, p Parser[C, X, A]) Parser[C, X, B] {
	return Parser[C, X, B]{run: func(s state[C]) step[C, X, B] {
		st := p.run(s)
		if !st.good {
			return bad[C, X, B](st.progress, st.bag)
		}
		return good[C, X](st.progress, f(st.value), st.state)
	}}
}

// Map2 runs pa then pb and combines their values with f.  The
// composite's progress is the OR of both halves, so a failure in pb
// after pa consumed input is a committed failure.
func Map2[C, X, A, B, V any](f func(A, B) V, pa Parser[C, X, A], pb Parser[C, X, B]) Parser[C, X, V] {
	return Parser[C, X, V]{run: func(s state[C]) step[C, X, V] {
		sa := pa.run(s)
		if !sa.good {
			return bad[C, X, V](sa.progress, sa.bag)
		}
		sb := pb.run(sa.state)
		if !sb.good {
			return bad[C, X, V](sa.progress || sb.progress, sb.bag)
		}
		return good[C, X](sa.progress || sb.progress, f(sa.value, sb.value), sb.state)
	}}
}

// Skip runs keep then ignore, producing keep's value and ignore's end
// state.
func Skip[C, X, A, B any](keep Parser[C, X, A], ignore Parser[C, X, B]) Parser[C, X, A] {
	return Map2(func(a A, _ B) A { return a }, keep, ignore)
}

// Keep runs pf then pa and applies the function pf produced to the
// value pa produced.  Together with Skip it gives the pipeline style:
// start from Succeed(build), Keep the pieces you want, Skip the
// punctuation.
func Keep[C, X, A, B any](pf Parser[C, X, func(A) B], pa Parser[C, X, A]) Parser[C, X, B] {
	return Map2(func(f func(A) B, a A) B { return f(a) }, pf, pa)
}

// AndThen runs p and feeds its value to f to decide how parsing
// continues.  Progress propagates exactly as in Map2.
func AndThen[C, X, A, B any](f func(A) Parser[C, X, B], p Parser[C, X, A]) Parser[C, X, B] {
	return Parser[C, X, B]{run: func(s state[C]) step[C, X, B] {
		sa := p.run(s)
		if !sa.good {
			return bad[C, X, B](sa.progress, sa.bag)
		}
		sb := f(sa.value).run(sa.state)
		if !sb.good {
			return bad[C, X, B](sa.progress || sb.progress, sb.bag)
		}
		return good[C, X](sa.progress || sb.progress, sb.value, sb.state)
	}}
}

// OneOf tries each alternative in order against the same entry state.
// The first success wins.  A failure that consumed input also wins:
// the choice has committed and the remaining alternatives are never
// tried.  Only failures that consumed nothing fall through, and their
// dead ends accumulate so the caller sees every alternative that was
// genuinely explored.
func OneOf[C, X, T any](parsers ...Parser[C, X, T]) Parser[C, X, T] {
	return Parser[C, X, T]{run: func(s state[C]) step[C, X, T] {
		var acc *bag[C, X]
		for _, p := range parsers {
			st := p.run(s)
			if st.good || st.progress {
				return st
			}
			acc = appendBags(acc, st.bag)
		}
		return bad[C, X, T](false, acc)
	}}
}

// Backtrackable runs p and forces progress to false on whatever comes
// back.  It is the only way to let an enclosing OneOf try further
// alternatives after p failed mid-token.  It does not rewind a
// successful parse; the state p reached is kept.
func Backtrackable[C, X, T any](p Parser[C, X, T]) Parser[C, X, T] {
	return Parser[C, X, T]{run: func(s state[C]) step[C, X, T] {
		st := p.run(s)
		st.progress = false
		return st
	}}
}

// Lazy defers building the parser until it runs, breaking the
// definition-order cycle of recursive grammars.  A nil thunk panics.
func Lazy[C, X, T any](thunk func() Parser[C, X, T]) Parser[C, X, T] {
	if thunk == nil {
		panic("sprout: nil Lazy thunk")
	}
	return Parser[C, X, T]{run: func(s state[C]) step[C, X, T] {
		return thunk().run(s)
	}}
}

// InContext runs p with c pushed on the context stack, tagged with
// the position where it was opened.  Dead ends recorded inside p
// carry the frame; a successful parse leaves with the caller's stack
// restored.
func InContext[C, X, T any](c C, p Parser[C, X, T]) Parser[C, X, T] {
	return Parser[C, X, T]{run: func(s state[C]) step[C, X, T] {
		inner := s
		inner.context = &contextFrame[C]{
			located: Located[C]{Row: s.row, Col: s.col, Context: c},
			next:    s.context,
		}
		st := p.run(inner)
		if st.good {
			st.state.context = s.context
		}
		return st
	}}
}

// WithIndent runs p with the indent set to indent, restoring the
// caller's indent afterwards.
func WithIndent[C, X, T any](indent int, p Parser[C, X, T]) Parser[C, X, T] {
	return Parser[C, X, T]{run: func(s state[C]) step[C, X, T] {
		inner := s
		inner.indent = indent
		st := p.run(inner)
		if st.good {
			st.state.indent = s.indent
		}
		return st
	}}
}

// LoopStep tells Loop whether to run another round with a new
// accumulator or to finish with a result.
type LoopStep[S, T any] struct {
	done  bool
	state S
	value T
}

// Continue asks Loop for another round, carrying the accumulator.
func Continue[S, T any](s S) LoopStep[S, T] {
	return LoopStep[S, T]{state: s}
}

// Done finishes the loop with its result.
func Done[S, T any](value T) LoopStep[S, T] {
	return LoopStep[S, T]{done: true, value: value}
}

// Loop threads an accumulator through repeated runs of the parser
// callback builds, until a round reports Done.  The callback must
// consume input on every Continue round, otherwise the loop never
// terminates.
func Loop[C, X, S, T any](initial S, callback func(S) Parser[C, X, LoopStep[S, T]]) Parser[C, X, T] {
	return Parser[C, X, T]{run: func(s state[C]) step[C, X, T] {
		progress := false
		acc := initial
		for {
			st := callback(acc).run(s)
			if !st.good {
				return bad[C, X, T](progress || st.progress, st.bag)
			}
			progress = progress || st.progress
			s = st.state
			if st.value.done {
				return good[C, X](progress, st.value.value, s)
			}
			acc = st.value.state
		}
	}}
}
