package hatch

import "fmt"

///////////////////////////////////////////////////////////////////////////////
// Tuple values
///////////////////////////////////////////////////////////////////////////////

// Tuple2 holds two parts parsed in order.
type Tuple2[A, B any] struct {
	First  A
	Second B
}

// Tuple3 holds three parts parsed in order.
type Tuple3[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Tuple4 holds four parts parsed in order.
type Tuple4[A, B, C, D any] struct {
	First  A
	Second B
	Third  C
	Fourth D
}

///////////////////////////////////////////////////////////////////////////////
// Shared slot handling
///////////////////////////////////////////////////////////////////////////////

// slot parses one part of a tuple in its own scope and checks it against the
// part's own pattern. Successful parts are recorded in done for the trace.
func slot[T Token, V any](c *Cursor[T], p Parser[T, V], m Pattern[V], done *[]string) (V, *ParseError) {
	start := c.Pos()
	v, err := Scoped(c, func(c *Cursor[T]) (V, error) {
		v, err := p.Parse(c)
		if err != nil {
			return v, err
		}
		if !m.Matches(v) {
			var zero V
			return zero, Rejected(start, v, m.String())
		}
		return v, nil
	})
	if err != nil {
		return v, Coerce(start, err)
	}
	*done = append(*done, fmt.Sprintf("%v", v))
	return v, nil
}

// whole applies the tuple-wide pattern once every part has parsed.
func whole[V any](name string, start int, v V, m Pattern[V], done []string) (V, error) {
	if !m.Matches(v) {
		var zero V
		return zero, FromSequenceFailure(name, Rejected(start, v, m.String()), done...)
	}
	return v, nil
}

func tupleName(arity string, parts ...string) string {
	name := arity + "["
	for i, p := range parts {
		if i > 0 {
			name += ", "
		}
		name += p
	}
	return name + "]"
}

///////////////////////////////////////////////////////////////////////////////
// Tuple2
///////////////////////////////////////////////////////////////////////////////

// Tuple2Parser parses two parts left to right as one atomic attempt: if any
// part fails or is rejected nothing is consumed.
type Tuple2Parser[T Token, A, B any] struct {
	p1      Parser[T, A]
	p2      Parser[T, B]
	m1      Pattern[A]
	m2      Pattern[B]
	pattern Pattern[Tuple2[A, B]]
}

// Seq2 sequences two strategies.
func Seq2[T Token, A, B any](p1 Parser[T, A], p2 Parser[T, B]) Tuple2Parser[T, A, B] {
	mustNotBeNil("first part", p1)
	mustNotBeNil("second part", p2)
	return Tuple2Parser[T, A, B]{p1: p1, p2: p2}
}

// WithPatterns returns a copy of p with one pattern per part.
func (p Tuple2Parser[T, A, B]) WithPatterns(m1 Pattern[A], m2 Pattern[B]) Tuple2Parser[T, A, B] {
	p.m1, p.m2 = m1, m2
	return p
}

// WithPattern returns a copy of p that also checks the complete tuple.
func (p Tuple2Parser[T, A, B]) WithPattern(m Pattern[Tuple2[A, B]]) Tuple2Parser[T, A, B] {
	p.pattern = m
	return p
}

// Name is the construct identity used in failure traces.
func (p Tuple2Parser[T, A, B]) Name() string {
	return tupleName("Tuple2", TypeName[A](), TypeName[B]())
}

func (p Tuple2Parser[T, A, B]) Parse(c *Cursor[T]) (Tuple2[A, B], error) {
	return Scoped(c, func(c *Cursor[T]) (Tuple2[A, B], error) {
		var (
			t     Tuple2[A, B]
			done  []string
			err   *ParseError
			start = c.Pos()
		)
		if t.First, err = slot(c, p.p1, p.m1, &done); err != nil {
			return Tuple2[A, B]{}, FromSequenceFailure(p.Name(), err, done...)
		}
		if t.Second, err = slot(c, p.p2, p.m2, &done); err != nil {
			return Tuple2[A, B]{}, FromSequenceFailure(p.Name(), err, done...)
		}
		return whole(p.Name(), start, t, p.pattern, done)
	})
}

///////////////////////////////////////////////////////////////////////////////
// Tuple3
///////////////////////////////////////////////////////////////////////////////

// Tuple3Parser parses three parts left to right as one atomic attempt.
type Tuple3Parser[T Token, A, B, C any] struct {
	p1      Parser[T, A]
	p2      Parser[T, B]
	p3      Parser[T, C]
	m1      Pattern[A]
	m2      Pattern[B]
	m3      Pattern[C]
	pattern Pattern[Tuple3[A, B, C]]
}

// Seq3 sequences three strategies.
func Seq3[T Token, A, B, C any](p1 Parser[T, A], p2 Parser[T, B], p3 Parser[T, C]) Tuple3Parser[T, A, B, C] {
	mustNotBeNil("first part", p1)
	mustNotBeNil("second part", p2)
	mustNotBeNil("third part", p3)
	return Tuple3Parser[T, A, B, C]{p1: p1, p2: p2, p3: p3}
}

// WithPatterns returns a copy of p with one pattern per part.
func (p Tuple3Parser[T, A, B, C]) WithPatterns(m1 Pattern[A], m2 Pattern[B], m3 Pattern[C]) Tuple3Parser[T, A, B, C] {
	p.m1, p.m2, p.m3 = m1, m2, m3
	return p
}

// WithPattern returns a copy of p that also checks the complete tuple.
func (p Tuple3Parser[T, A, B, C]) WithPattern(m Pattern[Tuple3[A, B, C]]) Tuple3Parser[T, A, B, C] {
	p.pattern = m
	return p
}

// Name is the construct identity used in failure traces.
func (p Tuple3Parser[T, A, B, C]) Name() string {
	return tupleName("Tuple3", TypeName[A](), TypeName[B](), TypeName[C]())
}

func (p Tuple3Parser[T, A, B, C]) Parse(c *Cursor[T]) (Tuple3[A, B, C], error) {
	return Scoped(c, func(c *Cursor[T]) (Tuple3[A, B, C], error) {
		var (
			t     Tuple3[A, B, C]
			done  []string
			err   *ParseError
			start = c.Pos()
		)
		if t.First, err = slot(c, p.p1, p.m1, &done); err != nil {
			return Tuple3[A, B, C]{}, FromSequenceFailure(p.Name(), err, done...)
		}
		if t.Second, err = slot(c, p.p2, p.m2, &done); err != nil {
			return Tuple3[A, B, C]{}, FromSequenceFailure(p.Name(), err, done...)
		}
		if t.Third, err = slot(c, p.p3, p.m3, &done); err != nil {
			return Tuple3[A, B, C]{}, FromSequenceFailure(p.Name(), err, done...)
		}
		return whole(p.Name(), start, t, p.pattern, done)
	})
}

///////////////////////////////////////////////////////////////////////////////
// Tuple4
///////////////////////////////////////////////////////////////////////////////

// Tuple4Parser parses four parts left to right as one atomic attempt.
type Tuple4Parser[T Token, A, B, C, D any] struct {
	p1      Parser[T, A]
	p2      Parser[T, B]
	p3      Parser[T, C]
	p4      Parser[T, D]
	m1      Pattern[A]
	m2      Pattern[B]
	m3      Pattern[C]
	m4      Pattern[D]
	pattern Pattern[Tuple4[A, B, C, D]]
}

// Seq4 sequences four strategies.
func Seq4[T Token, A, B, C, D any](p1 Parser[T, A], p2 Parser[T, B], p3 Parser[T, C], p4 Parser[T, D]) Tuple4Parser[T, A, B, C, D] {
	mustNotBeNil("first part", p1)
	mustNotBeNil("second part", p2)
	mustNotBeNil("third part", p3)
	mustNotBeNil("fourth part", p4)
	return Tuple4Parser[T, A, B, C, D]{p1: p1, p2: p2, p3: p3, p4: p4}
}

// WithPatterns returns a copy of p with one pattern per part.
func (p Tuple4Parser[T, A, B, C, D]) WithPatterns(m1 Pattern[A], m2 Pattern[B], m3 Pattern[C], m4 Pattern[D]) Tuple4Parser[T, A, B, C, D] {
	p.m1, p.m2, p.m3, p.m4 = m1, m2, m3, m4
	return p
}

// WithPattern returns a copy of p that also checks the complete tuple.
func (p Tuple4Parser[T, A, B, C, D]) WithPattern(m Pattern[Tuple4[A, B, C, D]]) Tuple4Parser[T, A, B, C, D] {
	p.pattern = m
	return p
}

// Name is the construct identity used in failure traces.
func (p Tuple4Parser[T, A, B, C, D]) Name() string {
	return tupleName("Tuple4", TypeName[A](), TypeName[B](), TypeName[C](), TypeName[D]())
}

func (p Tuple4Parser[T, A, B, C, D]) Parse(c *Cursor[T]) (Tuple4[A, B, C, D], error) {
	return Scoped(c, func(c *Cursor[T]) (Tuple4[A, B, C, D], error) {
		var (
			t     Tuple4[A, B, C, D]
			done  []string
			err   *ParseError
			start = c.Pos()
		)
		if t.First, err = slot(c, p.p1, p.m1, &done); err != nil {
			return Tuple4[A, B, C, D]{}, FromSequenceFailure(p.Name(), err, done...)
		}
		if t.Second, err = slot(c, p.p2, p.m2, &done); err != nil {
			return Tuple4[A, B, C, D]{}, FromSequenceFailure(p.Name(), err, done...)
		}
		if t.Third, err = slot(c, p.p3, p.m3, &done); err != nil {
			return Tuple4[A, B, C, D]{}, FromSequenceFailure(p.Name(), err, done...)
		}
		if t.Fourth, err = slot(c, p.p4, p.m4, &done); err != nil {
			return Tuple4[A, B, C, D]{}, FromSequenceFailure(p.Name(), err, done...)
		}
		return whole(p.Name(), start, t, p.pattern, done)
	})
}
