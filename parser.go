package hatch

import "sync"

///////////////////////////////////////////////////////////////////////////////
// Parser Interface
///////////////////////////////////////////////////////////////////////////////

// Parser is a parsing strategy producing values of type V from tokens of
// type T.
//
// Parse may consume tokens from c. Callers that need the consumption undone
// on failure run it through Scoped (or Run), which every combinator in this
// package does for its parts.
type Parser[T Token, V any] interface {
	Parse(c *Cursor[T]) (V, error)
}

// ParserFunc adapts an ordinary function to the Parser interface.
type ParserFunc[T Token, V any] func(c *Cursor[T]) (V, error)

func (f ParserFunc[T, V]) Parse(c *Cursor[T]) (V, error) {
	return f(c)
}

///////////////////////////////////////////////////////////////////////////////
// Parsable
///////////////////////////////////////////////////////////////////////////////

// Parsable is implemented by grammar node types that know their default
// strategy. Parser is called on the zero value of V, so it must not read
// the receiver.
//
// A grammar node is usually declared as
//
//	type Assignment struct {
//	    Name  string
//	    Value int
//	}
//
//	func (Assignment) Parser() hatch.Parser[Token, Assignment] {
//	    return assignmentParser{}
//	}
//
// and then parsed with hatch.Parse[Token, Assignment](cursor) or composed
// through hatch.Default / hatch.Ref.
type Parsable[T Token, V any] interface {
	Parser() Parser[T, V]
}

// Default returns the default strategy of V.
func Default[T Token, V Parsable[T, V]]() Parser[T, V] {
	var zero V
	p := zero.Parser()
	mustNotBeNil("default parser of "+TypeName[V](), p)
	return p
}

// Ref returns a strategy that looks up the default strategy of V each time
// it parses. Use it where V refers to itself, directly or through other
// nodes, so building the strategy does not recurse forever.
func Ref[T Token, V Parsable[T, V]]() Parser[T, V] {
	return ParserFunc[T, V](func(c *Cursor[T]) (V, error) {
		return Default[T, V]().Parse(c)
	})
}

// Lazy defers building a strategy until it is first used. If build panics
// the panic is raised again on every later use.
func Lazy[T Token, V any](build func() Parser[T, V]) Parser[T, V] {
	if build == nil {
		panic("hatch: lazy parser needs a builder")
	}
	get := sync.OnceValue(func() Parser[T, V] {
		p := build()
		mustNotBeNil("lazily built parser", p)
		return p
	})
	return ParserFunc[T, V](func(c *Cursor[T]) (V, error) {
		return get().Parse(c)
	})
}

///////////////////////////////////////////////////////////////////////////////
// Adapters
///////////////////////////////////////////////////////////////////////////////

// Map parses with p and converts the result with f.
func Map[T Token, A, B any](p Parser[T, A], f func(A) B) Parser[T, B] {
	mustNotBeNil("mapped parser", p)
	return ParserFunc[T, B](func(c *Cursor[T]) (B, error) {
		a, err := Run(c, p)
		if err != nil {
			var zero B
			return zero, err
		}
		return f(a), nil
	})
}

// Named parses with p and wraps any failure in a sequence failure carrying
// name, the identity of the construct p builds.
func Named[T Token, V any](name string, p Parser[T, V]) Parser[T, V] {
	mustNotBeNil("named parser "+name, p)
	return ParserFunc[T, V](func(c *Cursor[T]) (V, error) {
		start := c.Pos()
		v, err := Run(c, p)
		if err != nil {
			return v, FromSequenceFailure(name, Coerce(start, err))
		}
		return v, nil
	})
}

// Erase hides the value type of p. Used to store heterogeneous strategies
// side by side, as the rule Registry does.
func Erase[T Token, V any](p Parser[T, V]) Parser[T, any] {
	mustNotBeNil("erased parser", p)
	return ParserFunc[T, any](func(c *Cursor[T]) (any, error) {
		v, err := p.Parse(c)
		if err != nil {
			return nil, err
		}
		return v, nil
	})
}
