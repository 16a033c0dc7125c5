package hatch

import (
	"errors"
	"fmt"
	"reflect"
)

// constants used when rendering failure traces
const (
	RenderIndent        = "\t"
	RenderSuccessPrefix = "Success: "
	AnyPatternName      = "*"
	EndOfInputName      = "end of input"
)

// Log field names shared by every component that logs.
const (
	LogFieldSession = "session"
	LogFieldPos     = "pos"
	LogFieldFrom    = "from"
	LogFieldDepth   = "depth"
	LogFieldRule    = "rule"
)

// Sentinel errors. A *ParseError reports errors.Is == true against the
// sentinel matching its Kind.
var (
	ErrExhausted   = errors.New("ran out of tokens")
	ErrRejected    = errors.New("parsed value rejected by pattern")
	ErrSequence    = errors.New("sequence failed")
	ErrAlternative = errors.New("no alternative matched")
)

// Non-parse errors.
var (
	ErrRuleAlreadyRegistered = errors.New("a rule with this name is already registered")
	ErrRuleNotFound          = errors.New("no rule registered with this name")
	ErrNoRuleName            = errors.New("rule name cannot be empty")
)

// TypeName returns the identity used for V in failure traces.
func TypeName[V any]() string {
	return reflect.TypeFor[V]().String()
}

func mustNotBeNil(what string, v any) {
	if v == nil {
		panic(fmt.Sprintf("hatch: %s cannot be nil", what))
	}
}
