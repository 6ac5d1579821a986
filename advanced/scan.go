package advanced

import (
	"strings"
	"unicode/utf8"
)

// The three probes below are the only code that touches the source
// text directly.  Offsets are byte offsets and always advance by the
// width of the decoded code point; rows and columns count code
// points, with column 1 being the first code point on a line.

// isSubString reports whether small occurs in big at offset.  On a
// match it returns the offset just past the match together with the
// row and column advanced through it; on a mismatch the returned
// offset is -1 and row/col are unchanged.
func isSubString(small string, offset, row, col int, big string) (int, int, int) {
	if !strings.HasPrefix(big[offset:], small) {
		return -1, row, col
	}
	for _, r := range small {
		if r == '\n' {
			row++
			col = 1
		} else {
			col++
		}
	}
	return offset + len(small), row, col
}

// isSubChar probes the code point at offset.  It returns -1 when the
// predicate rejects it or the offset is at the end of the input, -2
// when the predicate accepts a newline, and the offset just past the
// code point otherwise.  The -2 sentinel exists because a newline is
// the one accepted character that resets the column instead of
// advancing it.
func isSubChar(pred func(rune) bool, offset int, s string) int {
	if offset >= len(s) {
		return -1
	}
	r, w := utf8.DecodeRuneInString(s[offset:])
	if !pred(r) {
		return -1
	}
	if r == '\n' {
		return -2
	}
	return offset + w
}

// findSubString scans for small starting at offset.  It returns the
// offset where small begins, or -1 when it is absent, together with
// the row and column of that position (the end of input when absent).
func findSubString(small string, offset, row, col int, big string) (int, int, int) {
	idx := strings.Index(big[offset:], small)
	found := -1
	target := len(big)
	if idx >= 0 {
		found = offset + idx
		target = found
	}
	for offset < target {
		r, w := utf8.DecodeRuneInString(big[offset:])
		offset += w
		if r == '\n' {
			row++
			col = 1
		} else {
			col++
		}
	}
	return found, row, col
}
