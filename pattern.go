package hatch

import (
	"fmt"

	"github.com/tidwall/match"
)

// Pattern is a named predicate over a parsed value. It is configuration,
// not state: a Pattern is never modified, only replaced.
//
// The zero value accepts everything and renders as "*".
type Pattern[V any] struct {
	name string
	fn   func(V) bool
}

// Match builds a Pattern from a predicate. name is what failure traces
// show as the expectation, so it should read like the accepted input.
func Match[V any](name string, fn func(V) bool) Pattern[V] {
	if fn == nil {
		panic("hatch: pattern " + name + " needs a predicate")
	}
	return Pattern[V]{name: name, fn: fn}
}

// AnyPattern accepts every value.
func AnyPattern[V any]() Pattern[V] {
	return Pattern[V]{}
}

// Equal accepts values equal to want.
func Equal[V comparable](want V) Pattern[V] {
	return Match(fmt.Sprintf("%v", want), func(v V) bool { return v == want })
}

// Glob accepts values whose %v rendering matches a glob pattern, where
// '*' matches any run of characters and '?' matches one.
func Glob[V any](pattern string) Pattern[V] {
	return Match(pattern, func(v V) bool {
		return match.Match(fmt.Sprintf("%v", v), pattern)
	})
}

// Not accepts what p rejects.
func Not[V any](p Pattern[V]) Pattern[V] {
	return Match("!("+p.String()+")", func(v V) bool { return !p.Matches(v) })
}

// And accepts values accepted by both p and q.
func (p Pattern[V]) And(q Pattern[V]) Pattern[V] {
	return Match("("+p.String()+" && "+q.String()+")", func(v V) bool {
		return p.Matches(v) && q.Matches(v)
	})
}

// Or accepts values accepted by p or q.
func (p Pattern[V]) Or(q Pattern[V]) Pattern[V] {
	return Match("("+p.String()+" || "+q.String()+")", func(v V) bool {
		return p.Matches(v) || q.Matches(v)
	})
}

// Named returns p under a different name.
func (p Pattern[V]) Named(name string) Pattern[V] {
	p.name = name
	return p
}

// Matches reports whether v is accepted.
func (p Pattern[V]) Matches(v V) bool {
	if p.fn == nil {
		return true
	}
	return p.fn(v)
}

// IsAny reports whether p is the accept-everything default.
func (p Pattern[V]) IsAny() bool {
	return p.fn == nil
}

func (p Pattern[V]) String() string {
	if p.name == "" {
		return AnyPatternName
	}
	return p.name
}
