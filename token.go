package hatch

// Token is the capability set a token type must have: it is copied by
// value, compared with ==, and rendered for traces with fmt's %v.
type Token interface {
	comparable
}

///////////////////////////////////////////////////////////////////////////////
// Single token strategies
///////////////////////////////////////////////////////////////////////////////

// TokenParser consumes exactly one token and accepts it if it satisfies
// its pattern.
type TokenParser[T Token] struct {
	pattern Pattern[T]
}

// AnyToken accepts whatever token comes next.
func AnyToken[T Token]() TokenParser[T] {
	return TokenParser[T]{}
}

// Expect accepts the next token if it satisfies m.
func Expect[T Token](m Pattern[T]) TokenParser[T] {
	return TokenParser[T]{pattern: m}
}

// Literal accepts the next token if it equals tok.
func Literal[T Token](tok T) TokenParser[T] {
	return Expect(Equal(tok))
}

// WithPattern returns a copy of p that accepts tokens satisfying m.
func (p TokenParser[T]) WithPattern(m Pattern[T]) TokenParser[T] {
	p.pattern = m
	return p
}

// Pattern returns the pattern p accepts.
func (p TokenParser[T]) Pattern() Pattern[T] { return p.pattern }

func (p TokenParser[T]) Parse(c *Cursor[T]) (T, error) {
	return Scoped(c, func(c *Cursor[T]) (T, error) {
		start := c.Pos()
		tok, ok := c.Consume()
		if !ok {
			return tok, exhaustedExpecting(start, p.pattern.String())
		}
		if !p.pattern.Matches(tok) {
			var zero T
			return zero, Rejected(start, tok, p.pattern.String())
		}
		return tok, nil
	})
}
