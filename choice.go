package hatch

// ChoiceParser tries alternatives in order and returns the first one that
// parses and satisfies the pattern. Each alternative runs in its own scope,
// so a failed alternative consumes nothing before the next is tried.
type ChoiceParser[T Token, V any] struct {
	name    string
	alts    []Parser[T, V]
	pattern Pattern[V]
}

// Choice builds an ordered choice named name. A choice without
// alternatives is a malformed grammar and panics.
func Choice[T Token, V any](name string, alts ...Parser[T, V]) ChoiceParser[T, V] {
	if len(alts) == 0 {
		panic("hatch: choice " + name + " needs at least one alternative")
	}
	for _, a := range alts {
		mustNotBeNil("alternative of "+name, a)
	}
	if name == "" {
		name = TypeName[V]()
	}
	return ChoiceParser[T, V]{name: name, alts: append([]Parser[T, V](nil), alts...)}
}

// Or returns a copy of p with more alternatives appended.
func (p ChoiceParser[T, V]) Or(alts ...Parser[T, V]) ChoiceParser[T, V] {
	for _, a := range alts {
		mustNotBeNil("alternative of "+p.name, a)
	}
	merged := make([]Parser[T, V], 0, len(p.alts)+len(alts))
	merged = append(merged, p.alts...)
	p.alts = append(merged, alts...)
	return p
}

// WithPattern returns a copy of p whose alternatives must also satisfy m.
// A rejected result counts as that alternative's failure.
func (p ChoiceParser[T, V]) WithPattern(m Pattern[V]) ChoiceParser[T, V] {
	p.pattern = m
	return p
}

// Name is the construct identity used in failure traces.
func (p ChoiceParser[T, V]) Name() string { return p.name }

// Parse fails with an alternative failure holding one cause per
// alternative, in the order they were tried.
func (p ChoiceParser[T, V]) Parse(c *Cursor[T]) (V, error) {
	start := c.Pos()
	failures := make([]*ParseError, 0, len(p.alts))

	for _, alt := range p.alts {
		v, err := Scoped(c, func(c *Cursor[T]) (V, error) {
			v, err := alt.Parse(c)
			if err != nil {
				return v, Coerce(start, err)
			}
			if !p.pattern.Matches(v) {
				var zero V
				return zero, Rejected(start, v, p.pattern.String())
			}
			return v, nil
		})
		if err == nil {
			return v, nil
		}
		failures = append(failures, Coerce(start, err))
	}

	var zero V
	return zero, FromAlternativeFailures(p.name, start, failures)
}
