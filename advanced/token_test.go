package advanced

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiteral(t *testing.T) {
	t.Run("match advances past the literal", func(t *testing.T) {
		pos, err := Run(position(tok("abc")), "abcdef")
		require.NoError(t, err)
		assert.Equal(t, Position{Row: 1, Col: 4}, pos)
	})

	t.Run("mismatch reports the entry position", func(t *testing.T) {
		_, err := Run(tok("abc"), "abx")
		ds := ends(t, err)
		assert.Equal(t, DeadEnd[struct{}, string]{Row: 1, Col: 1, Problem: "expecting abc"}, ds[0])
	})

	t.Run("mismatch does not commit", func(t *testing.T) {
		_, err := Run(OneOf(tok("abc"), tok("abx")), "abx")
		require.NoError(t, err)
	})

	t.Run("newlines in the literal reset the column", func(t *testing.T) {
		pos, err := Run(position(tok("one\ntwo\nth")), "one\ntwo\nthree")
		require.NoError(t, err)
		assert.Equal(t, Position{Row: 3, Col: 3}, pos)
	})

	t.Run("empty literal panics", func(t *testing.T) {
		assert.Panics(t, func() {
			Literal[struct{}](Token[string]{Value: "", Problem: "nope"})
		})
	})
}

func TestKeyword(t *testing.T) {
	tests := []struct {
		input string
		ok    bool
	}{
		{"let", true},
		{"let ", true},
		{"let+1", true},
		{"let\nx", true},
		{"letter", false},
		{"let_", false},
		{"let1", false},
		{"lex", false},
		{"", false},
	}
	for _, test := range tests {
		t.Run("input "+test.input, func(t *testing.T) {
			_, err := Run(kw("let"), test.input)
			if test.ok {
				assert.NoError(t, err)
			} else {
				ds := ends(t, err)
				assert.Equal(t, DeadEnd[struct{}, string]{Row: 1, Col: 1, Problem: "expecting keyword let"}, ds[0])
			}
		})
	}

	t.Run("boundary rejection does not commit", func(t *testing.T) {
		name, err := Run(OneOf(
			Map(func(_ Unit) string { return "kw" }, kw("let")),
			GetChompedString(tok("letter")),
		), "letter")
		require.NoError(t, err)
		assert.Equal(t, "letter", name)
	})

	t.Run("empty keyword panics", func(t *testing.T) {
		assert.Panics(t, func() {
			Keyword[struct{}](Token[string]{Value: "", Problem: "nope"})
		})
	})
}

func TestSymbolIsLiteral(t *testing.T) {
	p := Symbol[struct{}](Token[string]{Value: "(", Problem: "expecting ("})
	pos, err := Run(position(p), "(x")
	require.NoError(t, err)
	assert.Equal(t, Position{Row: 1, Col: 2}, pos)

	_, err = Run(p, "[x")
	ds := ends(t, err)
	assert.Equal(t, "expecting (", ds[0].Problem)
}
