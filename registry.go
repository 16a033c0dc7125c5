package hatch

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/sirupsen/logrus"
)

// Rule is a named entry point into a grammar.
type Rule[T Token] struct {
	Name        string
	Description string
	Parser      Parser[T, any]
}

// Registry holds the named entry rules of a grammar, so tooling can pick a
// start rule from a string (a command line flag, a config file).
//
// Rules are looked up by name only; composing strategies inside a grammar
// goes through Go generics and never touches a Registry.
//
// A Registry is safe for concurrent use.
type Registry[T Token] struct {
	mu    sync.RWMutex
	rules map[string]Rule[T]
	opts  RegistryOpts
}

// RegistryOpts configures a Registry.
type RegistryOpts struct {
	// Logger is handed to every cursor created by Parse. Each Parse call
	// gets its own session id.
	Logger *logrus.Logger
	// AllowOverride lets Register replace an existing rule instead of
	// failing with ErrRuleAlreadyRegistered.
	AllowOverride bool
}

// NewRegistry creates an empty Registry.
func NewRegistry[T Token](opts RegistryOpts) *Registry[T] {
	return &Registry[T]{
		rules: make(map[string]Rule[T]),
		opts:  opts,
	}
}

// Register adds a rule.
func (reg *Registry[T]) Register(rule Rule[T]) error {
	if rule.Name == "" {
		return ErrNoRuleName
	}
	mustNotBeNil("parser of rule "+rule.Name, rule.Parser)

	reg.mu.Lock()
	defer reg.mu.Unlock()

	if _, exists := reg.rules[rule.Name]; exists && !reg.opts.AllowOverride {
		return fmt.Errorf("%w: %s", ErrRuleAlreadyRegistered, rule.Name)
	}

	reg.rules[rule.Name] = rule
	return nil
}

// RegisterParser erases the value type of p and registers it under name.
func RegisterParser[T Token, V any](reg *Registry[T], name, description string, p Parser[T, V]) error {
	mustNotBeNil("parser of rule "+name, p)
	return reg.Register(Rule[T]{
		Name:        name,
		Description: description,
		Parser:      Erase(p),
	})
}

// Lookup returns the rule registered under name.
func (reg *Registry[T]) Lookup(name string) (Rule[T], error) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	rule, found := reg.rules[name]
	if !found {
		return Rule[T]{}, fmt.Errorf("%w: %s", ErrRuleNotFound, name)
	}
	return rule, nil
}

// Names lists the registered rule names in sorted order.
func (reg *Registry[T]) Names() []string {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return slices.Sorted(maps.Keys(reg.rules))
}

// Rules lists the registered rules sorted by name.
func (reg *Registry[T]) Rules() []Rule[T] {
	names := reg.Names()

	reg.mu.RLock()
	defer reg.mu.RUnlock()

	rules := make([]Rule[T], 0, len(names))
	for _, name := range names {
		if rule, ok := reg.rules[name]; ok {
			rules = append(rules, rule)
		}
	}
	return rules
}

// Parse runs the rule name over tokens and requires all of them to be
// consumed. Parse failures are returned as *ParseError; lookup failures
// wrap ErrRuleNotFound.
func (reg *Registry[T]) Parse(name string, tokens []T) (any, error) {
	rule, err := reg.Lookup(name)
	if err != nil {
		return nil, err
	}

	logger := reg.opts.Logger
	if logger == nil {
		logger = DefaultLogger()
	}
	logger.WithFields(logrus.Fields{
		LogFieldRule: name,
		"tokens":     len(tokens),
	}).Debug("parsing with rule")

	return ParseAll(tokens, rule.Parser, CursorOpts{Logger: logger})
}
