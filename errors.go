package hatch

import (
	"errors"
	"fmt"
	"strings"
)

///////////////////////////////////////////////////////////////////////////////
// Error Kinds
///////////////////////////////////////////////////////////////////////////////

// ErrorKind tags the variant held by a ParseError.
type ErrorKind int

const (
	// KindExhausted: no tokens remained where one was required.
	KindExhausted ErrorKind = iota
	// KindRejected: a value was produced but failed a pattern.
	KindRejected
	// KindSequence: a multi-part construct failed at one of its parts.
	KindSequence
	// KindAlternative: every option of a choice failed.
	KindAlternative
)

func (k ErrorKind) String() string {
	switch k {
	case KindExhausted:
		return "exhausted"
	case KindRejected:
		return "rejected"
	case KindSequence:
		return "sequence"
	case KindAlternative:
		return "alternative"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindExhausted:
		return ErrExhausted
	case KindRejected:
		return ErrRejected
	case KindSequence:
		return ErrSequence
	case KindAlternative:
		return ErrAlternative
	default:
		return nil
	}
}

///////////////////////////////////////////////////////////////////////////////
// ParseError
///////////////////////////////////////////////////////////////////////////////

// ParseError is one node of a failure tree. Nodes are built by the
// constructors below and are never modified once returned.
//
// Pos is always measured in the token positions of the Cursor that
// produced the failure, so nodes from sibling attempts can be ranked
// against each other (see Furthest).
type ParseError struct {
	Kind      ErrorKind
	Name      string        // construct identity, or the type of a rejected value
	Pos       int           // position the failure occurred at
	Value     any           // KindRejected: the offending value
	Expected  string        // description of what was required
	Completed []string      // KindSequence: parts parsed before the failure
	Causes    []*ParseError // KindSequence: one cause. KindAlternative: one per alternative
}

// Exhausted reports that input ran out at pos.
func Exhausted(pos int) *ParseError {
	return &ParseError{Kind: KindExhausted, Pos: pos}
}

// Rejected reports that value, which started at pos, did not satisfy the
// pattern described by expected.
func Rejected(pos int, value any, expected string) *ParseError {
	return &ParseError{
		Kind:     KindRejected,
		Name:     fmt.Sprintf("%T", value),
		Pos:      pos,
		Value:    value,
		Expected: expected,
	}
}

// FromSequenceFailure wraps the failure of one part of the construct name.
// completed lists the parts that succeeded before inner occurred.
func FromSequenceFailure(name string, inner *ParseError, completed ...string) *ParseError {
	if inner == nil {
		panic("hatch: sequence failure of " + name + " requires an inner error")
	}
	return &ParseError{
		Kind:      KindSequence,
		Name:      name,
		Pos:       inner.Pos,
		Completed: completed,
		Causes:    []*ParseError{inner},
	}
}

// FromAlternativeFailures wraps the failures of every alternative tried by
// the construct name, in attempt order. An empty list is a malformed
// grammar and panics.
func FromAlternativeFailures(name string, pos int, inner []*ParseError) *ParseError {
	if len(inner) == 0 {
		panic("hatch: " + name + " cannot fail with zero alternatives")
	}
	causes := make([]*ParseError, len(inner))
	copy(causes, inner)
	return &ParseError{
		Kind:   KindAlternative,
		Name:   name,
		Pos:    pos,
		Causes: causes,
	}
}

func exhaustedExpecting(pos int, expected string) *ParseError {
	e := Exhausted(pos)
	e.Expected = expected
	return e
}

// Coerce turns any error returned by a strategy into a ParseError. Errors
// that are not ParseErrors become a Rejected node at pos carrying the
// error text, so every failure tree holds a single taxonomy.
func Coerce(pos int, err error) *ParseError {
	if err == nil {
		return nil
	}
	if pe, ok := AsParseError(err); ok {
		return pe
	}
	return &ParseError{Kind: KindRejected, Pos: pos, Expected: err.Error()}
}

// AsParseError reports whether err holds a *ParseError and returns it.
func AsParseError(err error) (*ParseError, bool) {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// Error implements the error interface with the full trace.
func (e *ParseError) Error() string {
	return e.Render(0)
}

// Is matches the sentinel of e's Kind.
func (e *ParseError) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}

// Unwrap exposes the causes to errors.Is and errors.As.
func (e *ParseError) Unwrap() []error {
	if len(e.Causes) == 0 {
		return nil
	}
	errs := make([]error, len(e.Causes))
	for i, c := range e.Causes {
		errs[i] = c
	}
	return errs
}

// Furthest returns the leaf failure (Exhausted or Rejected) that occurred
// at the greatest position. Ties keep the first leaf in attempt order.
func (e *ParseError) Furthest() *ParseError {
	if len(e.Causes) == 0 {
		return e
	}
	var best *ParseError
	for _, c := range e.Causes {
		leaf := c.Furthest()
		if best == nil || leaf.Pos > best.Pos {
			best = leaf
		}
	}
	return best
}

// Render produces a multi-line trace of e. Each nesting level is indented
// by one more tab, and alternative failures list every branch.
func (e *ParseError) Render(indent int) string {
	var b strings.Builder
	e.render(&b, indent)
	return strings.TrimSuffix(b.String(), "\n")
}

func (e *ParseError) render(b *strings.Builder, indent int) {
	tabs := strings.Repeat(RenderIndent, indent)

	switch e.Kind {
	case KindExhausted:
		fmt.Fprintf(b, "%sRan out of tokens at position %d", tabs, e.Pos)
		if e.Expected != "" {
			fmt.Fprintf(b, ", expected '%s'", e.Expected)
		}
		b.WriteString("\n")

	case KindRejected:
		if e.Value == nil {
			fmt.Fprintf(b, "%sRejected at position %d: %s\n", tabs, e.Pos, e.Expected)
			return
		}
		fmt.Fprintf(b, "%sParsed %v: %s at position %d, but it did not match pattern '%s'\n",
			tabs, e.Value, e.Name, e.Pos, e.Expected)

	case KindSequence:
		fmt.Fprintf(b, "%sFailed: %s:\n", tabs, e.Name)
		for _, s := range e.Completed {
			fmt.Fprintf(b, "%s%s%s%s\n", tabs, RenderIndent, RenderSuccessPrefix, s)
		}
		for _, c := range e.Causes {
			c.render(b, indent+1)
		}

	case KindAlternative:
		fmt.Fprintf(b, "%sFailed: %s: no alternative matched at position %d:\n", tabs, e.Name, e.Pos)
		for _, c := range e.Causes {
			c.render(b, indent+1)
		}
	}
}
