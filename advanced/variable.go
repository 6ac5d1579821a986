package advanced

// VariableOptions configures Variable: one predicate for the first
// code point, one for the rest, the reserved names that must not
// parse as variables, and the problem to report.
type VariableOptions[X any] struct {
	Start     func(rune) bool
	Inner     func(rune) bool
	Reserved  map[string]struct{}
	Expecting X
}

// Variable matches one Start code point followed by any number of
// Inner code points and produces the matched name.  A reserved name
// is rejected without committing, so an enclosing OneOf can still try
// a keyword alternative on the same input.
func Variable[C, X any](opts VariableOptions[X]) Parser[C, X, string] {
	return Parser[C, X, string]{run: func(s state[C]) step[C, X, string] {
		offset, row, col := s.offset, s.row, s.col
		switch first := isSubChar(opts.Start, offset, s.src); first {
		case -1:
			return bad[C, X, string](false, fromState(s, opts.Expecting))
		case -2:
			offset++
			row++
			col = 1
		default:
			offset = first
			col++
		}
		offset, row, col = chompWhileHelp(opts.Inner, offset, row, col, s.src)

		name := s.src[s.offset:offset]
		if _, reserved := opts.Reserved[name]; reserved {
			return bad[C, X, string](false, fromState(s, opts.Expecting))
		}
		s.offset, s.row, s.col = offset, row, col
		return good[C, X](true, name, s)
	}}
}
