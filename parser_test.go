package hatch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SimonDaKappa/go-hatch/token"
)

func TestDefault(t *testing.T) {
	t.Run("Parse", func(t *testing.T) {
		c := newTestCursor(token.Ident("x"), semi)
		got, err := Parse[tok, ident](c)
		require.NoError(t, err)
		assert.Equal(t, ident("x"), got)
		assert.Equal(t, 1, c.Pos())
	})

	t.Run("Parse_FailureRewinds", func(t *testing.T) {
		c := newTestCursor(semi)
		_, err := Parse[tok, ident](c)
		assert.ErrorIs(t, err, ErrRejected)
		assert.Equal(t, 0, c.Pos())
		assert.Equal(t, 0, c.Depth())
	})

	t.Run("Ref_ResolvesLazily", func(t *testing.T) {
		p := Ref[tok, nest]()
		got, err := ParseAll([]tok{lParen, rParen}, p, CursorOpts{})
		require.NoError(t, err)
		assert.Equal(t, 1, got.depth())
	})
}

func TestLazy(t *testing.T) {
	t.Run("BuildsOnce", func(t *testing.T) {
		builds := 0
		p := Lazy(func() Parser[tok, ident] {
			builds++
			return Default[tok, ident]()
		})
		assert.Equal(t, 0, builds)

		for range 3 {
			_, err := Run(newTestCursor(token.Ident("x")), p)
			require.NoError(t, err)
		}
		assert.Equal(t, 1, builds)
	})

	t.Run("NilBuilder_Panics", func(t *testing.T) {
		assert.Panics(t, func() { Lazy[tok, ident](nil) })
	})

	t.Run("BuilderPanic_Repeats", func(t *testing.T) {
		builds := 0
		p := Lazy(func() Parser[tok, ident] {
			builds++
			panic("bad grammar")
		})

		for range 2 {
			assert.PanicsWithValue(t, "bad grammar", func() {
				_, _ = p.Parse(newTestCursor(token.Ident("x")))
			})
		}
		assert.Equal(t, 1, builds)
	})

	t.Run("BuiltNil_Panics", func(t *testing.T) {
		p := Lazy(func() Parser[tok, ident] { return nil })

		for range 2 {
			assert.Panics(t, func() {
				_, _ = p.Parse(newTestCursor(token.Ident("x")))
			})
		}
	})
}

func TestMap(t *testing.T) {
	t.Run("Projects", func(t *testing.T) {
		length := Map(Default[tok, ident](), func(i ident) int { return len(i) })
		got, err := Run(newTestCursor(token.Ident("abc")), length)
		require.NoError(t, err)
		assert.Equal(t, 3, got)
	})

	t.Run("FailureSkipsProjection", func(t *testing.T) {
		called := false
		p := Map(Default[tok, ident](), func(i ident) int {
			called = true
			return 0
		})
		_, err := Run(newTestCursor(semi), p)
		assert.Error(t, err)
		assert.False(t, called)
	})
}

func TestNamed(t *testing.T) {
	t.Run("WrapsFailure", func(t *testing.T) {
		c := newTestCursor(kInt, semi)
		p := Named("Assignment", Seq2(Literal(kInt), Literal(assign)))

		_, err := Run(c, p)
		require.Error(t, err)
		assert.Equal(t, 0, c.Pos())

		pe, _ := AsParseError(err)
		assert.Equal(t, KindSequence, pe.Kind)
		assert.Equal(t, "Assignment", pe.Name)
		assert.Equal(t, 1, pe.Pos)
		assert.True(t, strings.HasPrefix(pe.Error(), "Failed: Assignment:\n\tFailed: Tuple2["))
	})

	t.Run("CoercesForeignFailure", func(t *testing.T) {
		_, err := Run(newTestCursor(kInt), Named("Thing", failWith[int](errBoom)))

		pe, _ := AsParseError(err)
		require.Len(t, pe.Causes, 1)
		assert.Equal(t, "Rejected at position 0: boom", pe.Causes[0].Render(0))
	})

	t.Run("PassesSuccess", func(t *testing.T) {
		got, err := Run(newTestCursor(token.Ident("x")), Named("Name", Default[tok, ident]()))
		require.NoError(t, err)
		assert.Equal(t, ident("x"), got)
	})
}

func TestErase(t *testing.T) {
	p := Erase(Default[tok, ident]())

	got, err := Run(newTestCursor(token.Ident("x")), p)
	require.NoError(t, err)
	assert.Equal(t, ident("x"), got)

	got, err = Run(newTestCursor(semi), p)
	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestParserFunc(t *testing.T) {
	var p Parser[tok, int] = ParserFunc[tok, int](func(c *Cursor[tok]) (int, error) {
		return c.Remaining(), nil
	})

	got, err := p.Parse(newTestCursor(kInt, semi))
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

func TestTypeName(t *testing.T) {
	assert.Equal(t, "int", TypeName[int]())
	assert.Equal(t, "hatch.ident", TypeName[ident]())
	assert.Equal(t, "*hatch.nest", TypeName[*nest]())
	assert.Equal(t, "[]token.Token", TypeName[[]tok]())
}
