package hatch

// SequenceParser repeats an element greedily.
//
// Every element attempt runs in its own scope. Repetition stops at the first
// attempt that fails or whose result the pattern rejects; only that final
// attempt is rewound, and no other way of splitting the input is tried.
type SequenceParser[T Token, V any] struct {
	elem    Parser[T, V]
	pattern Pattern[V]
}

// Many repeats elem zero or more times.
func Many[T Token, V any](elem Parser[T, V]) SequenceParser[T, V] {
	mustNotBeNil("repeated element", elem)
	return SequenceParser[T, V]{elem: elem}
}

// WithPattern returns a copy of p that stops repeating at the first element
// not satisfying m.
func (p SequenceParser[T, V]) WithPattern(m Pattern[V]) SequenceParser[T, V] {
	p.pattern = m
	return p
}

// Parse always returns a nil error. An empty slice means no element matched.
// Elements that succeed without consuming a token end the repetition and
// are not included.
func (p SequenceParser[T, V]) Parse(c *Cursor[T]) ([]V, error) {
	result := []V{}

	for {
		before := c.Pos()
		v, err := Scoped(c, p.attempt)
		if err != nil {
			c.noteStop(before, err)
			break
		}
		// an element that consumes nothing would match forever
		if c.Pos() == before {
			break
		}
		result = append(result, v)
	}

	return result, nil
}

func (p SequenceParser[T, V]) attempt(c *Cursor[T]) (V, error) {
	start := c.Pos()
	v, err := p.elem.Parse(c)
	if err != nil {
		return v, err
	}
	if !p.pattern.Matches(v) {
		var zero V
		return zero, Rejected(start, v, p.pattern.String())
	}
	return v, nil
}
