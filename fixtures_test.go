package hatch

import (
	"github.com/SimonDaKappa/go-hatch/token"
)

type tok = token.Token

var (
	kInt   = token.Of(token.KInt)
	assign = token.Of(token.Assign)
	semi   = token.Of(token.SemiColon)
	comma  = token.Of(token.Comma)
	lParen = token.Of(token.LParen)
	rParen = token.Of(token.RParen)
)

func kindIs(k token.Kind) Pattern[tok] {
	return Match(k.String(), func(t tok) bool { return t.Kind == k })
}

func newTestCursor(tokens ...tok) *Cursor[tok] {
	return NewCursor(tokens, CursorOpts{})
}

// ident is a minimal grammar node with a default strategy.
type ident string

func (ident) Parser() Parser[tok, ident] {
	return Map(Expect(kindIs(token.Identifier)), func(t tok) ident {
		return ident(t.Text)
	})
}

// nest is "(" [nest] ")", a node that refers to itself.
type nest struct {
	inner *nest
}

func (nest) Parser() Parser[tok, nest] {
	return Map(
		Seq3(Literal(lParen), Optional(Indirect(Ref[tok, nest]())), Literal(rParen)),
		func(t Tuple3[tok, Option[*nest], tok]) nest {
			inner, _ := t.Second.Get()
			return nest{inner: inner}
		},
	)
}

func (n nest) depth() int {
	if n.inner == nil {
		return 1
	}
	return 1 + n.inner.depth()
}

// counting wraps p and counts how often it runs.
func counting[V any](p Parser[tok, V], calls *int) Parser[tok, V] {
	return ParserFunc[tok, V](func(c *Cursor[tok]) (V, error) {
		*calls++
		return p.Parse(c)
	})
}

func failWith[V any](err error) Parser[tok, V] {
	return ParserFunc[tok, V](func(*Cursor[tok]) (V, error) {
		var zero V
		return zero, err
	})
}

// consumeThenFail eats n tokens and then fails, to prove rewinds.
func consumeThenFail[V any](n int, err error) Parser[tok, V] {
	return ParserFunc[tok, V](func(c *Cursor[tok]) (V, error) {
		for range n {
			c.Consume()
		}
		var zero V
		return zero, err
	})
}
