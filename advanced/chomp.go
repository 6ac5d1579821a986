package advanced

// ChompIf consumes exactly one code point satisfying pred, failing
// with x otherwise.
func ChompIf[C, X any](pred func(rune) bool, x X) Parser[C, X, Unit] {
	return Parser[C, X, Unit]{run: func(s state[C]) step[C, X, Unit] {
		switch next := isSubChar(pred, s.offset, s.src); next {
		case -1:
			return bad[C, X, Unit](false, fromState(s, x))
		case -2:
			s.offset++
			s.row++
			s.col = 1
			return good[C, X](true, Unit{}, s)
		default:
			s.offset = next
			s.col++
			return good[C, X](true, Unit{}, s)
		}
	}}
}

// ChompWhile consumes zero or more code points satisfying pred.  It
// never fails; progress reflects whether anything was consumed.
func ChompWhile[C, X any](pred func(rune) bool) Parser[C, X, Unit] {
	return Parser[C, X, Unit]{run: func(s state[C]) step[C, X, Unit] {
		offset, row, col := chompWhileHelp(pred, s.offset, s.row, s.col, s.src)
		progress := s.offset < offset
		s.offset, s.row, s.col = offset, row, col
		return good[C, X](progress, Unit{}, s)
	}}
}

func chompWhileHelp(pred func(rune) bool, offset, row, col int, src string) (int, int, int) {
	for {
		switch next := isSubChar(pred, offset, src); next {
		case -1:
			return offset, row, col
		case -2:
			offset++
			row++
			col = 1
		default:
			offset = next
			col++
		}
	}
}

// ChompUntil consumes everything up to, but not including, the next
// occurrence of the token's literal.  When the literal never occurs
// it fails with the token's problem positioned at the end of input.
func ChompUntil[C, X any](t Token[X]) Parser[C, X, Unit] {
	return Parser[C, X, Unit]{run: func(s state[C]) step[C, X, Unit] {
		found, newRow, newCol := findSubString(t.Value, s.offset, s.row, s.col, s.src)
		if found == -1 {
			return bad[C, X, Unit](false, fromInfo(newRow, newCol, t.Problem, s))
		}
		progress := s.offset < found
		s.offset, s.row, s.col = found, newRow, newCol
		return good[C, X](progress, Unit{}, s)
	}}
}

// ChompUntilEndOr consumes everything up to, but not including, the
// next occurrence of sub, or the rest of the input when sub never
// occurs.  It never fails.
func ChompUntilEndOr[C, X any](sub string) Parser[C, X, Unit] {
	return Parser[C, X, Unit]{run: func(s state[C]) step[C, X, Unit] {
		found, newRow, newCol := findSubString(sub, s.offset, s.row, s.col, s.src)
		target := found
		if found == -1 {
			target = len(s.src)
		}
		progress := s.offset < target
		s.offset, s.row, s.col = target, newRow, newCol
		return good[C, X](progress, Unit{}, s)
	}}
}

// Spaces chomps zero or more spaces, newlines and carriage returns.
// Tabs are not included; grammars that treat tabs as whitespace
// compose their own ChompWhile.
func Spaces[C, X any]() Parser[C, X, Unit] {
	return ChompWhile[C, X](func(r rune) bool {
		return r == ' ' || r == '\n' || r == '\r'
	})
}

// LineComment matches the open marker and then everything up to, but
// not including, the next newline.
func LineComment[C, X any](open Token[X]) Parser[C, X, Unit] {
	return Skip(Literal[C, X](open), ChompUntilEndOr[C, X]("\n"))
}

// MapChompedString runs p and hands f both the exact slice of source
// p consumed and the value p produced.  Useful when the text itself
// is the interesting part, as with identifiers and literals.
func MapChompedString[C, X, A, B any](f func(string, A) B, p Parser[C, X, A]) Parser[C, X, B] {
	return Parser[C, X, B]{run: func(s state[C]) step[C, X, B] {
		st := p.run(s)
		if !st.good {
			return bad[C, X, B](st.progress, st.bag)
		}
		chomped := s.src[s.offset:st.state.offset]
		return good[C, X](st.progress, f(chomped, st.value), st.state)
	}}
}

// GetChompedString runs p and produces the slice of source it
// consumed, discarding p's own value.
func GetChompedString[C, X, A any](p Parser[C, X, A]) Parser[C, X, string] {
	return MapChompedString(func(chomped string, _ A) string { return chomped }, p)
}
