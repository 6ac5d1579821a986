package sprout

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func deadEnds(t *testing.T, err error) DeadEnds {
	t.Helper()
	require.Error(t, err)
	ds, ok := err.(DeadEnds)
	require.True(t, ok, "error is %T, not DeadEnds", err)
	require.NotEmpty(t, ds)
	return ds
}

func TestRun(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		v, err := Run(Succeed("hello"), "whatever")
		require.NoError(t, err)
		assert.Equal(t, "hello", v)
	})

	t.Run("failure reports context-less dead ends", func(t *testing.T) {
		_, err := Run(Keyword("let"), "letter")
		ds := deadEnds(t, err)
		assert.Equal(t, DeadEnds{{Row: 1, Col: 1, Problem: ExpectingKeyword("let")}}, ds)
	})
}

func TestProblemDerivation(t *testing.T) {
	tests := []struct {
		name   string
		parser Parser[Unit]
		want   Problem
	}{
		{"token", Token("->"), Expecting("->")},
		{"symbol", Symbol("("), ExpectingSymbol("(")},
		{"keyword", Keyword("while"), ExpectingKeyword("while")},
		{"chompIf", ChompIf(func(r rune) bool { return r == 'z' }), UnexpectedCharacter},
		{"chompUntil", ChompUntil("*/"), Expecting("*/")},
		{"lineComment", LineComment("//"), Expecting("//")},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Run(test.parser, "???")
			ds := deadEnds(t, err)
			assert.Equal(t, test.want, ds[0].Problem)
		})
	}

	t.Run("end", func(t *testing.T) {
		_, err := Run(End(), "leftover")
		ds := deadEnds(t, err)
		assert.Equal(t, ExpectingEnd, ds[0].Problem)
	})

	t.Run("fail", func(t *testing.T) {
		_, err := Run(Fail[int](Expecting("anything")), "")
		ds := deadEnds(t, err)
		assert.Equal(t, Expecting("anything"), ds[0].Problem)
	})
}

func TestPipelineStyle(t *testing.T) {
	// A classic point parser: ( 3, 4 )
	type point struct {
		X int
		Y int
	}
	build := func(x int) func(int) point {
		return func(y int) point { return point{X: x, Y: y} }
	}
	open := Skip(Symbol("("), Spaces())
	comma := Skip(Symbol(","), Spaces())
	pointParser :=
		Skip(
			Keep(
				Skip(
					Keep(
						Skip(Succeed(build), open),
						Skip(Int(), Spaces())),
					comma),
				Skip(Int(), Spaces())),
			Symbol(")"))

	p, err := Run(pointParser, "( 3, 4 )")
	require.NoError(t, err)
	assert.Equal(t, point{X: 3, Y: 4}, p)

	_, err = Run(pointParser, "( 3, 4 ]")
	ds := deadEnds(t, err)
	assert.Equal(t, DeadEnd{Row: 1, Col: 8, Problem: ExpectingSymbol(")")}, ds[0])
}

func TestOneOfFacade(t *testing.T) {
	boolean := OneOf(
		Map(func(_ Unit) bool { return true }, Keyword("true")),
		Map(func(_ Unit) bool { return false }, Keyword("false")),
	)

	v, err := Run(boolean, "false")
	require.NoError(t, err)
	assert.False(t, v)

	_, err = Run(boolean, "maybe")
	ds := deadEnds(t, err)
	require.Len(t, ds, 2)
	assert.Equal(t, ExpectingKeyword("true"), ds[0].Problem)
	assert.Equal(t, ExpectingKeyword("false"), ds[1].Problem)
}

func TestBacktrackableFacade(t *testing.T) {
	p := OneOf(
		Backtrackable(Skip(Token("ab"), Token("cd"))),
		Map(func(s string) Unit { return Unit{} }, GetChompedString(Token("abef"))),
	)
	_, err := Run(p, "abef")
	require.NoError(t, err)
}

func TestVariableFacade(t *testing.T) {
	ident := Variable(VariableOptions{
		Start: unicode.IsLetter,
		Inner: func(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) },
		Reserved: map[string]struct{}{
			"if":   {},
			"else": {},
		},
	})

	name, err := Run(ident, "velocity2")
	require.NoError(t, err)
	assert.Equal(t, "velocity2", name)

	_, err = Run(ident, "else")
	ds := deadEnds(t, err)
	assert.Equal(t, DeadEnd{Row: 1, Col: 1, Problem: ExpectingVariable}, ds[0])
}

func TestLazyFacade(t *testing.T) {
	// nested = "x" | "(" nested ")"
	var nested func() Parser[string]
	nested = func() Parser[string] {
		return OneOf(
			GetChompedString(Token("x")),
			Map2(func(_ Unit, inner string) string { return "(" + inner + ")" },
				Symbol("("),
				Skip(Lazy(nested), Symbol(")"))),
		)
	}
	v, err := Run(nested(), "((x))")
	require.NoError(t, err)
	assert.Equal(t, "((x))", v)
}

func TestLoopFacade(t *testing.T) {
	words := Loop(0, func(n int) Parser[LoopStep[int, int]] {
		return OneOf(
			Map(func(_ Unit) LoopStep[int, int] { return Continue[int, int](n + 1) },
				Skip(Keyword("word"), Spaces())),
			Succeed(Done[int, int](n)),
		)
	})
	n, err := Run(words, "word word word")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestPositionFacade(t *testing.T) {
	p := Map2(func(_ Unit, pos Position) Position { return pos },
		ChompWhile(func(r rune) bool { return r != '!' }),
		GetPosition())
	pos, err := Run(p, "line one\nline two!")
	require.NoError(t, err)
	assert.Equal(t, Position{Row: 2, Col: 9}, pos)
}

func TestWithIndentFacade(t *testing.T) {
	v, err := Run(WithIndent(3, GetIndent()), "")
	require.NoError(t, err)
	assert.Equal(t, 3, v)
}

func TestProblemStrings(t *testing.T) {
	tests := map[string]Problem{
		`expecting "->"`:                    Expecting("->"),
		"expecting an integer":              ExpectingInt,
		"expecting a hexadecimal number":    ExpectingHex,
		"expecting an octal number":         ExpectingOctal,
		"expecting a binary number":         ExpectingBinary,
		"expecting a floating point number": ExpectingFloat,
		"expecting a number":                ExpectingNumber,
		"expecting a variable name":         ExpectingVariable,
		`expecting symbol "("`:              ExpectingSymbol("("),
		`expecting keyword "let"`:           ExpectingKeyword("let"),
		"expecting end of input":            ExpectingEnd,
		"unexpected character":              UnexpectedCharacter,
	}
	for want, problem := range tests {
		assert.Equal(t, want, problem.String())
	}
}

func TestDeadEndsToString(t *testing.T) {
	ds := DeadEnds{
		{Row: 1, Col: 4, Problem: ExpectingSymbol(")")},
		{Row: 1, Col: 4, Problem: ExpectingInt},
	}
	assert.Equal(t, `1:4: expecting symbol ")"; 1:4: expecting an integer`, DeadEndsToString(ds))
	assert.Equal(t, ds.Error(), DeadEndsToString(ds))
}
