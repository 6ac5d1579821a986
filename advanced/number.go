package advanced

import "strconv"

// NumberOptions configures Number.  Each base slot is Ok with the
// conversion applied to a recognized literal of that base, or Err
// with the problem reported when one shows up anyway.  Invalid
// reports a literal that starts like a permitted number but does not
// finish as one; Expecting reports input that does not look like a
// number at all.
type NumberOptions[X, T any] struct {
	Int    Result[func(int) T, X]
	Hex    Result[func(int) T, X]
	Octal  Result[func(int) T, X]
	Binary Result[func(int) T, X]
	Float  Result[func(float64) T, X]

	Invalid   X
	Expecting X
}

// Number recognizes integer literals in decimal, hex (0x), octal (0o)
// and binary (0b), and floats with an optional fraction and e/E
// exponent.  Integer accumulation uses int and wraps silently on
// overflow; the float value comes from strconv.ParseFloat over the
// full literal.
func Number[C, X, T any](opts NumberOptions[X, T]) Parser[C, X, T] {
	return Parser[C, X, T]{run: func(s state[C]) step[C, X, T] {
		if isAsciiCode('0', s.offset, s.src) {
			zeroOffset := s.offset + 1
			baseOffset := zeroOffset + 1
			switch {
			case isAsciiCode('x', zeroOffset, s.src):
				endOffset, n := consumeBase16(baseOffset, s.src)
				return finalizeInt(opts.Invalid, opts.Hex, baseOffset, endOffset, n, s)
			case isAsciiCode('o', zeroOffset, s.src):
				endOffset, n := consumeBase(8, baseOffset, s.src)
				return finalizeInt(opts.Invalid, opts.Octal, baseOffset, endOffset, n, s)
			case isAsciiCode('b', zeroOffset, s.src):
				endOffset, n := consumeBase(2, baseOffset, s.src)
				return finalizeInt(opts.Invalid, opts.Binary, baseOffset, endOffset, n, s)
			default:
				// A lone leading zero is the integer part; carry on
				// into the float path.
				return finalizeFloat(opts, zeroOffset, 0, s)
			}
		}
		endOffset, n := consumeBase(10, s.offset, s.src)
		return finalizeFloat(opts, endOffset, n, s)
	}}
}

// Int recognizes base-10 integers only: expecting when no numeric
// text is consumed at all, invalid for every other numeric shape.  A
// leading '.', 'e' or 'E' counts as numeric text (the start of a
// fraction or exponent), so such input reports invalid.
func Int[C, X any](expecting, invalid X) Parser[C, X, int] {
	return Number[C](NumberOptions[X, int]{
		Int:       Ok[func(int) int, X](func(n int) int { return n }),
		Hex:       Err[func(int) int](invalid),
		Octal:     Err[func(int) int](invalid),
		Binary:    Err[func(int) int](invalid),
		Float:     Err[func(float64) int](invalid),
		Invalid:   invalid,
		Expecting: expecting,
	})
}

// Float recognizes base-10 integers and floats, producing a float64
// either way.
func Float[C, X any](expecting, invalid X) Parser[C, X, float64] {
	return Number[C](NumberOptions[X, float64]{
		Int:       Ok[func(int) float64, X](func(n int) float64 { return float64(n) }),
		Hex:       Err[func(int) float64](invalid),
		Octal:     Err[func(int) float64](invalid),
		Binary:    Err[func(int) float64](invalid),
		Float:     Ok[func(float64) float64, X](func(f float64) float64 { return f }),
		Invalid:   invalid,
		Expecting: expecting,
	})
}

func finalizeInt[C, X, T any](invalid X, slot Result[func(int) T, X], startOffset, endOffset, n int, s state[C]) step[C, X, T] {
	if !slot.ok {
		return bad[C, X, T](true, fromState(s, slot.err))
	}
	if startOffset == endOffset {
		return bad[C, X, T](s.offset < startOffset, fromState(s, invalid))
	}
	return good[C, X](true, slot.value(n), bumpOffset(endOffset, s))
}

func finalizeFloat[C, X, T any](opts NumberOptions[X, T], intOffset, n int, s state[C]) step[C, X, T] {
	floatOffset := consumeDotAndExp(intOffset, s.src)
	if floatOffset < 0 {
		// The exponent marker was there but its digits were not;
		// -floatOffset is where they should have started.
		return bad[C, X, T](true, fromInfo(s.row, s.col-(floatOffset+s.offset), opts.Invalid, s))
	}
	if s.offset == floatOffset {
		return bad[C, X, T](false, fromState(s, opts.Expecting))
	}
	if intOffset == floatOffset {
		return finalizeInt(opts.Invalid, opts.Int, s.offset, intOffset, n, s)
	}
	if !opts.Float.ok {
		return bad[C, X, T](true, fromState(s, opts.Float.err))
	}
	f, err := strconv.ParseFloat(s.src[s.offset:floatOffset], 64)
	if err != nil {
		return bad[C, X, T](true, fromState(s, opts.Invalid))
	}
	return good[C, X](true, opts.Float.value(f), bumpOffset(floatOffset, s))
}

// bumpOffset advances the state to newOffset.  Numeric literals never
// contain newlines, so the column moves by the same distance.
func bumpOffset[C any](newOffset int, s state[C]) state[C] {
	s.col += newOffset - s.offset
	s.offset = newOffset
	return s
}

func isAsciiCode(code byte, offset int, s string) bool {
	return offset < len(s) && s[offset] == code
}

// consumeBase accumulates digits below base starting at offset and
// returns the offset past the run with the accumulated value.
func consumeBase(base, offset int, s string) (int, int) {
	total := 0
	for ; offset < len(s); offset++ {
		d := int(s[offset]) - '0'
		if d < 0 || d >= base {
			break
		}
		total = base*total + d
	}
	return offset, total
}

func consumeBase16(offset int, s string) (int, int) {
	total := 0
	for ; offset < len(s); offset++ {
		switch c := s[offset]; {
		case c >= '0' && c <= '9':
			total = 16*total + int(c-'0')
		case c >= 'A' && c <= 'F':
			total = 16*total + 10 + int(c-'A')
		case c >= 'a' && c <= 'f':
			total = 16*total + 10 + int(c-'a')
		default:
			return offset, total
		}
	}
	return offset, total
}

func chompBase10(offset int, s string) int {
	for ; offset < len(s); offset++ {
		if s[offset] < '0' || s[offset] > '9' {
			break
		}
	}
	return offset
}

// consumeDotAndExp consumes an optional fraction and exponent.  A
// negative return encodes the offset at which exponent digits were
// required but missing.
func consumeDotAndExp(offset int, s string) int {
	if isAsciiCode('.', offset, s) {
		return consumeExp(chompBase10(offset+1, s), s)
	}
	return consumeExp(offset, s)
}

func consumeExp(offset int, s string) int {
	if !isAsciiCode('e', offset, s) && !isAsciiCode('E', offset, s) {
		return offset
	}
	eOffset := offset + 1
	expOffset := eOffset
	if isAsciiCode('+', eOffset, s) || isAsciiCode('-', eOffset, s) {
		expOffset = eOffset + 1
	}
	newOffset := chompBase10(expOffset, s)
	if expOffset == newOffset {
		return -newOffset
	}
	return newOffset
}
