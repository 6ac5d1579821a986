package advanced

import "unicode"

// Literal matches the token's literal at the current offset.  On a
// match it advances past it, counting any newlines the literal
// contains; on a mismatch it fails with the token's problem without
// consuming anything.
//
// An empty literal is a programming error and panics.
func Literal[C, X any](t Token[X]) Parser[C, X, Unit] {
	if t.Value == "" {
		panic("sprout: empty token literal")
	}
	return Parser[C, X, Unit]{run: func(s state[C]) step[C, X, Unit] {
		newOffset, newRow, newCol := isSubString(t.Value, s.offset, s.row, s.col, s.src)
		if newOffset == -1 {
			return bad[C, X, Unit](false, fromState(s, t.Problem))
		}
		progress := s.offset < newOffset
		s.offset, s.row, s.col = newOffset, newRow, newCol
		return good[C, X](progress, Unit{}, s)
	}}
}

// Symbol matches operators, brackets and other punctuation.  It is
// Literal under the name grammars usually mean by it.
func Symbol[C, X any](t Token[X]) Parser[C, X, Unit] {
	return Literal[C, X](t)
}

// Keyword matches like Literal but additionally requires the next
// code point not to be a letter, digit or underscore, so that a
// keyword never matches a prefix of a longer identifier: "let" does
// not match inside "letter".
func Keyword[C, X any](t Token[X]) Parser[C, X, Unit] {
	if t.Value == "" {
		panic("sprout: empty keyword literal")
	}
	return Parser[C, X, Unit]{run: func(s state[C]) step[C, X, Unit] {
		newOffset, newRow, newCol := isSubString(t.Value, s.offset, s.row, s.col, s.src)
		if newOffset == -1 || isSubChar(isWordChar, newOffset, s.src) != -1 {
			return bad[C, X, Unit](false, fromState(s, t.Problem))
		}
		progress := s.offset < newOffset
		s.offset, s.row, s.col = newOffset, newRow, newCol
		return good[C, X](progress, Unit{}, s)
	}}
}

func isWordChar(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
