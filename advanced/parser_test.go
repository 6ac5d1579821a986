package advanced

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Engine tests use string problems and an empty context unless a test
// is specifically about context stacks.

func tok(s string) Parser[struct{}, string, Unit] {
	return Literal[struct{}](Token[string]{Value: s, Problem: "expecting " + s})
}

func kw(s string) Parser[struct{}, string, Unit] {
	return Keyword[struct{}](Token[string]{Value: s, Problem: "expecting keyword " + s})
}

func ends(t *testing.T, err error) DeadEnds[struct{}, string] {
	t.Helper()
	require.Error(t, err)
	ds, ok := err.(DeadEnds[struct{}, string])
	require.True(t, ok, "error is %T, not DeadEnds", err)
	require.NotEmpty(t, ds)
	return ds
}

// counting wraps p so each invocation bumps calls.
func counting[T any](p Parser[struct{}, string, T], calls *int) Parser[struct{}, string, T] {
	return Parser[struct{}, string, T]{run: func(s state[struct{}]) step[struct{}, string, T] {
		*calls++
		return p.run(s)
	}}
}

// position runs p and reports where it ended up.
func position[T any](p Parser[struct{}, string, T]) Parser[struct{}, string, Position] {
	return Map2(func(_ T, pos Position) Position { return pos }, p, GetPosition[struct{}, string]())
}

func TestSucceed(t *testing.T) {
	for _, src := range []string{"", "anything", "line\nline"} {
		v, err := Run(Succeed[struct{}, string](42), src)
		require.NoError(t, err)
		assert.Equal(t, 42, v)
	}
}

func TestProblem(t *testing.T) {
	_, err := Run(Problem[struct{}, string, int]("boom"), "input")
	ds := ends(t, err)
	require.Len(t, ds, 1)
	assert.Equal(t, DeadEnd[struct{}, string]{Row: 1, Col: 1, Problem: "boom"}, ds[0])
}

func TestEnd(t *testing.T) {
	t.Run("succeeds at end of input", func(t *testing.T) {
		_, err := Run(End[struct{}]("expecting end"), "")
		require.NoError(t, err)

		_, err = Run(Skip(tok("ab"), End[struct{}]("expecting end")), "ab")
		require.NoError(t, err)
	})

	t.Run("fails with input remaining", func(t *testing.T) {
		_, err := Run(Skip(tok("ab"), End[struct{}]("expecting end")), "abc")
		ds := ends(t, err)
		assert.Equal(t, "expecting end", ds[0].Problem)
		assert.Equal(t, 1, ds[0].Row)
		assert.Equal(t, 3, ds[0].Col)
	})
}

func TestObservers(t *testing.T) {
	t.Run("initial state", func(t *testing.T) {
		pos, err := Run(GetPosition[struct{}, string](), "abc")
		require.NoError(t, err)
		assert.Equal(t, Position{Row: 1, Col: 1}, pos)

		offset, err := Run(GetOffset[struct{}, string](), "abc")
		require.NoError(t, err)
		assert.Equal(t, 0, offset)

		src, err := Run(GetSource[struct{}, string](), "abc")
		require.NoError(t, err)
		assert.Equal(t, "abc", src)

		indent, err := Run(GetIndent[struct{}, string](), "abc")
		require.NoError(t, err)
		assert.Equal(t, 1, indent)
	})

	t.Run("after consuming input", func(t *testing.T) {
		p := Map2(func(_ Unit, pair [2]int) [2]int { return pair },
			tok("one\ntwo"),
			Map2(func(row, col int) [2]int { return [2]int{row, col} },
				GetRow[struct{}, string](),
				GetCol[struct{}, string]()))
		rowCol, err := Run(p, "one\ntwo rest")
		require.NoError(t, err)
		assert.Equal(t, [2]int{2, 4}, rowCol)
	})
}

func TestAndThenLeftIdentity(t *testing.T) {
	// andThen(f, succeed(v)) behaves exactly like f(v).
	f := func(n int) Parser[struct{}, string, string] {
		if n > 0 {
			return Succeed[struct{}, string]("positive")
		}
		return Problem[struct{}, string, string]("not positive")
	}

	for _, n := range []int{-1, 0, 1, 99} {
		direct, directErr := Run(f(n), "src")
		chained, chainedErr := Run(AndThen(f, Succeed[struct{}, string](n)), "src")
		assert.Equal(t, direct, chained)
		assert.Equal(t, directErr, chainedErr)
	}
}

func TestLoop(t *testing.T) {
	t.Run("accumulates until done", func(t *testing.T) {
		// Count 'a's, stop at anything else.
		p := Loop[struct{}, string](0, func(n int) Parser[struct{}, string, LoopStep[int, int]] {
			return OneOf(
				Map(func(_ Unit) LoopStep[int, int] { return Continue[int, int](n + 1) }, tok("a")),
				Succeed[struct{}, string](Done[int, int](n)),
			)
		})
		n, err := Run(p, "aaab")
		require.NoError(t, err)
		assert.Equal(t, 3, n)
	})

	t.Run("failure inside a round carries progress", func(t *testing.T) {
		p := Loop[struct{}, string](0, func(n int) Parser[struct{}, string, LoopStep[int, int]] {
			return Map(func(_ Unit) LoopStep[int, int] { return Continue[int, int](n + 1) }, tok("ab"))
		})
		calls := 0
		_, err := Run(OneOf(counting(p, &calls), Map(func(_ Unit) int { return -1 }, tok("ab"))), "abac")
		// The loop matched one "ab" and then failed on "ac"; the
		// choice is committed, so the fallback never runs.
		ds := ends(t, err)
		assert.Equal(t, 1, calls)
		assert.Equal(t, "expecting ab", ds[0].Problem)
	})
}

func TestRunIsReusable(t *testing.T) {
	p := Skip(tok("ok"), End[struct{}]("expecting end"))
	for i := 0; i < 3; i++ {
		_, err := Run(p, "ok")
		require.NoError(t, err)
		_, err = Run(p, "nope")
		require.Error(t, err)
	}
}
