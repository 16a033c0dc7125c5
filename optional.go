package hatch

import "fmt"

// Option is the result of an optional grammar part.
type Option[V any] struct {
	value   V
	present bool
}

// Some holds a parsed value.
func Some[V any](v V) Option[V] { return Option[V]{value: v, present: true} }

// None is the absent value.
func None[V any]() Option[V] { return Option[V]{} }

// Get returns the value and whether it is present.
func (o Option[V]) Get() (V, bool) { return o.value, o.present }

// IsSome reports whether a value is present.
func (o Option[V]) IsSome() bool { return o.present }

// IsNone reports whether the value is absent.
func (o Option[V]) IsNone() bool { return !o.present }

// OrElse returns the value, or def when absent.
func (o Option[V]) OrElse(def V) V {
	if o.present {
		return o.value
	}
	return def
}

func (o Option[V]) String() string {
	if !o.present {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// OptionalParser attempts one element and never fails. Absence covers both
// an element that did not parse and one that parsed but was rejected by the
// pattern; in either case nothing is consumed.
type OptionalParser[T Token, V any] struct {
	elem    Parser[T, V]
	pattern Pattern[V]
}

// Optional makes elem optional.
func Optional[T Token, V any](elem Parser[T, V]) OptionalParser[T, V] {
	mustNotBeNil("optional element", elem)
	return OptionalParser[T, V]{elem: elem}
}

// WithPattern returns a copy of p that only accepts elements satisfying m.
func (p OptionalParser[T, V]) WithPattern(m Pattern[V]) OptionalParser[T, V] {
	p.pattern = m
	return p
}

// Parse always returns a nil error.
func (p OptionalParser[T, V]) Parse(c *Cursor[T]) (Option[V], error) {
	start := c.Pos()
	v, err := Scoped(c, func(c *Cursor[T]) (V, error) {
		v, err := p.elem.Parse(c)
		if err != nil {
			return v, err
		}
		if !p.pattern.Matches(v) {
			var zero V
			return zero, Rejected(start, v, p.pattern.String())
		}
		return v, nil
	})
	if err != nil {
		c.noteStop(start, err)
		return None[V](), nil
	}
	return Some(v), nil
}
