package advanced

import (
	"fmt"
	"strings"
)

// DeadEnd is one failure record: where the parser got stuck, the
// caller's problem tag, and the context frames that were open at the
// time, most recent first.
type DeadEnd[C, X any] struct {
	Row          int
	Col          int
	Problem      X
	ContextStack []Located[C]
}

// DeadEnds is the flattened failure list returned by Run, in the
// order the dead ends were recorded.
type DeadEnds[C, X any] []DeadEnd[C, X]

func (ds DeadEnds[C, X]) Error() string {
	if len(ds) == 0 {
		return "parse error"
	}
	var b strings.Builder
	for i, d := range ds {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(&b, "%d:%d: %v", d.Row, d.Col, d.Problem)
	}
	return b.String()
}

// bag accumulates dead ends as a persistent binary tree so that OneOf
// can append another branch's failures in O(1).  A nil *bag is the
// empty bag.  A node without a right child carries its own dead end,
// ordered after everything under left; a node with both children is a
// pure append and carries no dead end of its own.
type bag[C, X any] struct {
	left  *bag[C, X]
	right *bag[C, X]
	dead  DeadEnd[C, X]
}

func addRight[C, X any](b *bag[C, X], d DeadEnd[C, X]) *bag[C, X] {
	return &bag[C, X]{left: b, dead: d}
}

func appendBags[C, X any](l, r *bag[C, X]) *bag[C, X] {
	if l == nil {
		return r
	}
	if r == nil {
		return l
	}
	return &bag[C, X]{left: l, right: r}
}

func fromState[C, X any](s state[C], x X) *bag[C, X] {
	return addRight[C, X](nil, DeadEnd[C, X]{
		Row:          s.row,
		Col:          s.col,
		Problem:      x,
		ContextStack: s.contextStack(),
	})
}

// fromInfo records a dead end at an explicit position, keeping the
// context frames of s.  ChompUntil and the number recognizer use it
// when the failure position is not the entry position.
func fromInfo[C, X any](row, col int, x X, s state[C]) *bag[C, X] {
	return addRight[C, X](nil, DeadEnd[C, X]{
		Row:          row,
		Col:          col,
		Problem:      x,
		ContextStack: s.contextStack(),
	})
}

// flatten appends the bag's dead ends to out by in-order traversal,
// which recovers recording order.
func (b *bag[C, X]) flatten(out []DeadEnd[C, X]) []DeadEnd[C, X] {
	if b == nil {
		return out
	}
	out = b.left.flatten(out)
	if b.right == nil {
		return append(out, b.dead)
	}
	return b.right.flatten(out)
}
