package hatch

// IndirectParser parses one element and boxes it behind a pointer. It is
// how a grammar node holds itself, or a node that holds it, as a child.
type IndirectParser[T Token, V any] struct {
	elem    Parser[T, V]
	pattern Pattern[V]
}

// Indirect boxes the result of elem. For recursive nodes pass Ref or Lazy
// so the element strategy is resolved at parse time.
func Indirect[T Token, V any](elem Parser[T, V]) IndirectParser[T, V] {
	mustNotBeNil("indirect element", elem)
	return IndirectParser[T, V]{elem: elem}
}

// WithPattern returns a copy of p that rejects elements not satisfying m.
func (p IndirectParser[T, V]) WithPattern(m Pattern[V]) IndirectParser[T, V] {
	p.pattern = m
	return p
}

// Parse propagates the element failure, or reports Rejected when the
// element parsed but the pattern refused it.
func (p IndirectParser[T, V]) Parse(c *Cursor[T]) (*V, error) {
	return Scoped(c, func(c *Cursor[T]) (*V, error) {
		start := c.Pos()
		v, err := p.elem.Parse(c)
		if err != nil {
			return nil, Coerce(start, err)
		}
		if !p.pattern.Matches(v) {
			return nil, Rejected(start, v, p.pattern.String())
		}
		return &v, nil
	})
}
