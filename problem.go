package sprout

import "fmt"

// ProblemKind enumerates the built-in problems the basic facade
// reports.  Parsers built with the advanced package define their own
// problem type instead.
type ProblemKind uint8

const (
	ProblemExpecting ProblemKind = iota
	ProblemExpectingInt
	ProblemExpectingHex
	ProblemExpectingOctal
	ProblemExpectingBinary
	ProblemExpectingFloat
	ProblemExpectingNumber
	ProblemExpectingVariable
	ProblemExpectingSymbol
	ProblemExpectingKeyword
	ProblemExpectingEnd
	ProblemUnexpectedCharacter
)

// Problem says what a parser was looking for when it got stuck.  Text
// carries the literal for the Expecting, ExpectingSymbol and
// ExpectingKeyword kinds and is empty otherwise.
type Problem struct {
	Kind ProblemKind
	Text string
}

// Expecting reports a missing literal.
func Expecting(literal string) Problem {
	return Problem{Kind: ProblemExpecting, Text: literal}
}

// ExpectingSymbol reports a missing symbol.
func ExpectingSymbol(symbol string) Problem {
	return Problem{Kind: ProblemExpectingSymbol, Text: symbol}
}

// ExpectingKeyword reports a missing keyword.
func ExpectingKeyword(keyword string) Problem {
	return Problem{Kind: ProblemExpectingKeyword, Text: keyword}
}

var (
	ExpectingInt        = Problem{Kind: ProblemExpectingInt}
	ExpectingHex        = Problem{Kind: ProblemExpectingHex}
	ExpectingOctal      = Problem{Kind: ProblemExpectingOctal}
	ExpectingBinary     = Problem{Kind: ProblemExpectingBinary}
	ExpectingFloat      = Problem{Kind: ProblemExpectingFloat}
	ExpectingNumber     = Problem{Kind: ProblemExpectingNumber}
	ExpectingVariable   = Problem{Kind: ProblemExpectingVariable}
	ExpectingEnd        = Problem{Kind: ProblemExpectingEnd}
	UnexpectedCharacter = Problem{Kind: ProblemUnexpectedCharacter}
)

func (p Problem) String() string {
	switch p.Kind {
	case ProblemExpecting:
		return fmt.Sprintf("expecting %q", p.Text)
	case ProblemExpectingInt:
		return "expecting an integer"
	case ProblemExpectingHex:
		return "expecting a hexadecimal number"
	case ProblemExpectingOctal:
		return "expecting an octal number"
	case ProblemExpectingBinary:
		return "expecting a binary number"
	case ProblemExpectingFloat:
		return "expecting a floating point number"
	case ProblemExpectingNumber:
		return "expecting a number"
	case ProblemExpectingVariable:
		return "expecting a variable name"
	case ProblemExpectingSymbol:
		return fmt.Sprintf("expecting symbol %q", p.Text)
	case ProblemExpectingKeyword:
		return fmt.Sprintf("expecting keyword %q", p.Text)
	case ProblemExpectingEnd:
		return "expecting end of input"
	case ProblemUnexpectedCharacter:
		return "unexpected character"
	}
	return "unknown problem"
}
