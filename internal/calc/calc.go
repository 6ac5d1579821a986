// Package calc parses and evaluates a small arithmetic expression
// language: numbers in the four usual bases, floats, the four binary
// operators, unary minus, parentheses, `let name = e in e` bindings
// and `#` line comments.  It is built on the advanced facade with its
// own context and problem types, so dead ends say which construct was
// being parsed.
package calc

import (
	"fmt"
	"unicode"

	"github.com/JohnMcGuinness/sprout-parser/advanced"
)

// Context names the constructs that show up in dead-end reports.
type Context string

const (
	InExpression Context = "expression"
	InParens     Context = "parenthesized expression"
	InLet        Context = "let binding"
)

// Problem is a plain description of what the parser was looking for.
type Problem string

func expecting(what string) Problem {
	return Problem("expecting " + what)
}

// DeadEnd and DeadEnds are the failure records Parse reports.
type (
	DeadEnd  = advanced.DeadEnd[Context, Problem]
	DeadEnds = advanced.DeadEnds[Context, Problem]

	// Frame is one entry of a dead end's context stack.
	Frame = advanced.Located[Context]
)

type parser[T any] = advanced.Parser[Context, Problem, T]

// Expr is a parsed expression tree.
type Expr interface{ isExpr() }

// Number is a numeric literal.  All bases collapse to float64.
type Number struct {
	Value float64
}

// Var references a let-bound name.
type Var struct {
	Name string
}

// Unary is a prefix operator application.
type Unary struct {
	Op      rune
	Operand Expr
}

// Binary is an infix operator application.
type Binary struct {
	Op    rune
	Left  Expr
	Right Expr
}

// Let binds Name to Value while evaluating Body.
type Let struct {
	Name  string
	Value Expr
	Body  Expr
}

func (Number) isExpr() {}
func (Var) isExpr()    {}
func (Unary) isExpr()  {}
func (Binary) isExpr() {}
func (Let) isExpr()    {}

// Parse reads a single expression spanning the whole input.  The
// error, when non-nil, is a DeadEnds value.
func Parse(source string) (Expr, error) {
	full := advanced.Map2(
		func(_ advanced.Unit, e Expr) Expr { return e },
		ws(),
		advanced.Skip(expression(), advanced.End[Context](expecting("end of expression"))),
	)
	return advanced.Run(full, source)
}

func expression() parser[Expr] {
	return advanced.InContext(InExpression, binop(term, '+', '-'))
}

func term() parser[Expr] {
	return binop(factor, '*', '/')
}

func factor() parser[Expr] {
	return advanced.OneOf(
		number(),
		letExpr(),
		variable(),
		parens(),
		negation(),
	)
}

// binop parses a left-associative chain of the two operators over
// operand.
func binop(operand func() parser[Expr], opA, opB rune) parser[Expr] {
	return advanced.AndThen(func(first Expr) parser[Expr] {
		return advanced.Loop[Context, Problem](first, func(acc Expr) parser[advanced.LoopStep[Expr, Expr]] {
			return advanced.OneOf(
				advanced.Map2(func(op rune, rhs Expr) advanced.LoopStep[Expr, Expr] {
					return advanced.Continue[Expr, Expr](Binary{Op: op, Left: acc, Right: rhs})
				}, operator(opA, opB), operand()),
				advanced.Succeed[Context, Problem](advanced.Done[Expr, Expr](acc)),
			)
		})
	}, operand())
}

func operator(opA, opB rune) parser[rune] {
	return advanced.OneOf(
		advanced.Map(func(_ advanced.Unit) rune { return opA }, symbol(string(opA))),
		advanced.Map(func(_ advanced.Unit) rune { return opB }, symbol(string(opB))),
	)
}

func number() parser[Expr] {
	num := func(n int) Expr { return Number{Value: float64(n)} }
	return lexeme(advanced.Number[Context](advanced.NumberOptions[Problem, Expr]{
		Int:       advanced.Ok[func(int) Expr, Problem](num),
		Hex:       advanced.Ok[func(int) Expr, Problem](num),
		Octal:     advanced.Ok[func(int) Expr, Problem](num),
		Binary:    advanced.Ok[func(int) Expr, Problem](num),
		Float:     advanced.Ok[func(float64) Expr, Problem](func(f float64) Expr { return Number{Value: f} }),
		Invalid:   Problem("invalid number"),
		Expecting: expecting("a number"),
	}))
}

func variable() parser[Expr] {
	return advanced.Map(func(name string) Expr { return Var{Name: name} }, identifier())
}

func identifier() parser[string] {
	return lexeme(advanced.Variable[Context](advanced.VariableOptions[Problem]{
		Start: unicode.IsLetter,
		Inner: func(r rune) bool {
			return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
		},
		Reserved:  map[string]struct{}{"let": {}, "in": {}},
		Expecting: expecting("a variable name"),
	}))
}

func parens() parser[Expr] {
	return advanced.InContext(InParens,
		advanced.Skip(
			advanced.Map2(func(_ advanced.Unit, e Expr) Expr { return e },
				symbol("("),
				advanced.Lazy(expression)),
			symbol(")")))
}

func letExpr() parser[Expr] {
	name := advanced.Map2(func(_ advanced.Unit, n string) string { return n },
		keyword("let"), identifier())
	bound := advanced.Map2(func(_ advanced.Unit, v Expr) Expr { return v },
		symbol("="), advanced.Lazy(expression))
	body := advanced.Map2(func(_ advanced.Unit, b Expr) Expr { return b },
		keyword("in"), advanced.Lazy(expression))
	return advanced.InContext(InLet,
		advanced.AndThen(func(n string) parser[Expr] {
			return advanced.Map2(func(v, b Expr) Expr {
				return Let{Name: n, Value: v, Body: b}
			}, bound, body)
		}, name))
}

func negation() parser[Expr] {
	return advanced.Map2(func(_ advanced.Unit, e Expr) Expr {
		return Unary{Op: '-', Operand: e}
	}, symbol("-"), advanced.Lazy(factor))
}

func symbol(s string) parser[advanced.Unit] {
	return lexeme(advanced.Symbol[Context](advanced.Token[Problem]{
		Value:   s,
		Problem: expecting("\"" + s + "\""),
	}))
}

func keyword(s string) parser[advanced.Unit] {
	return lexeme(advanced.Keyword[Context](advanced.Token[Problem]{
		Value:   s,
		Problem: expecting("keyword \"" + s + "\""),
	}))
}

// lexeme consumes the whitespace and comments after p.
func lexeme[T any](p parser[T]) parser[T] {
	return advanced.Skip(p, ws())
}

// ws chomps runs of whitespace and line comments.  The loop finishes
// at the first round that ends at the same offset as the round before
// it; the first round compares against offset 0.
func ws() parser[advanced.Unit] {
	return advanced.Loop[Context, Problem](0, func(offset int) parser[advanced.LoopStep[int, advanced.Unit]] {
		return advanced.Map2(
			func(_ advanced.Unit, newOffset int) advanced.LoopStep[int, advanced.Unit] {
				if newOffset == offset {
					return advanced.Done[int, advanced.Unit](advanced.Unit{})
				}
				return advanced.Continue[int, advanced.Unit](newOffset)
			},
			advanced.OneOf(
				advanced.LineComment[Context](advanced.Token[Problem]{
					Value:   "#",
					Problem: expecting("a comment"),
				}),
				advanced.Spaces[Context, Problem](),
			),
			advanced.GetOffset[Context, Problem](),
		)
	})
}

// Eval evaluates a parsed expression with no free variables.
func Eval(e Expr) (float64, error) {
	return eval(e, nil)
}

func eval(e Expr, env map[string]float64) (float64, error) {
	switch n := e.(type) {
	case Number:
		return n.Value, nil
	case Var:
		v, ok := env[n.Name]
		if !ok {
			return 0, fmt.Errorf("undefined variable %q", n.Name)
		}
		return v, nil
	case Unary:
		v, err := eval(n.Operand, env)
		if err != nil {
			return 0, err
		}
		return -v, nil
	case Binary:
		l, err := eval(n.Left, env)
		if err != nil {
			return 0, err
		}
		r, err := eval(n.Right, env)
		if err != nil {
			return 0, err
		}
		switch n.Op {
		case '+':
			return l + r, nil
		case '-':
			return l - r, nil
		case '*':
			return l * r, nil
		case '/':
			if r == 0 {
				return 0, fmt.Errorf("division by zero")
			}
			return l / r, nil
		}
		return 0, fmt.Errorf("unknown operator %q", n.Op)
	case Let:
		v, err := eval(n.Value, env)
		if err != nil {
			return 0, err
		}
		child := make(map[string]float64, len(env)+1)
		for k, val := range env {
			child[k] = val
		}
		child[n.Name] = v
		return eval(n.Body, child)
	}
	return 0, fmt.Errorf("unknown expression node %T", e)
}
