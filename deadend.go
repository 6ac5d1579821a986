package sprout

import (
	"fmt"
	"strings"
)

// DeadEnd records where a parse got stuck and what the parser was
// looking for there.  Row and Col are 1-based.
type DeadEnd struct {
	Row     int
	Col     int
	Problem Problem
}

// DeadEnds is the failure list returned by Run, in the order the dead
// ends were recorded.  It implements error.
type DeadEnds []DeadEnd

func (ds DeadEnds) Error() string {
	return DeadEndsToString(ds)
}

// DeadEndsToString renders dead ends one per position, separated by
// semicolons.
func DeadEndsToString(ds []DeadEnd) string {
	if len(ds) == 0 {
		return "parse error"
	}
	var b strings.Builder
	for i, d := range ds {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(&b, "%d:%d: %s", d.Row, d.Col, d.Problem)
	}
	return b.String()
}
