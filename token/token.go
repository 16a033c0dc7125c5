// Package token defines a small token set for exercising hatch grammars.
//
// It is not a lexer: token streams come from code, or from JSON/YAML files
// (see FromJSON and FromYAML) produced by some external scanner.
package token

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrUnknownTokenKind   = errors.New("unknown token kind")
	ErrInvalidTokenStream = errors.New("invalid token stream")
)

// Kind is the lexical category of a token.
type Kind int

const (
	Invalid Kind = iota

	// operators
	Assign
	Plus
	Minus
	Mult
	Div

	// keywords
	KInt
	KFloat
	KReturn

	// literals
	LiteralString
	LiteralInt

	Identifier

	// delimiters
	LCurly
	RCurly
	LBracket
	RBracket
	LParen
	RParen
	Comma

	SemiColon
)

var kindNames = [...]string{
	Invalid:       "Invalid",
	Assign:        "Assign",
	Plus:          "Plus",
	Minus:         "Minus",
	Mult:          "Mult",
	Div:           "Div",
	KInt:          "KInt",
	KFloat:        "KFloat",
	KReturn:       "KReturn",
	LiteralString: "LiteralString",
	LiteralInt:    "LiteralInt",
	Identifier:    "Identifier",
	LCurly:        "LCurly",
	RCurly:        "RCurly",
	LBracket:      "LBracket",
	RBracket:      "RBracket",
	LParen:        "LParen",
	RParen:        "RParen",
	Comma:         "Comma",
	SemiColon:     "SemiColon",
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, name := range kindNames {
		m[name] = Kind(k)
	}
	return m
}()

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// ParseKind returns the Kind named s.
func ParseKind(s string) (Kind, error) {
	k, ok := kindsByName[s]
	if !ok || k == Invalid {
		return Invalid, fmt.Errorf("%w: %q", ErrUnknownTokenKind, s)
	}
	return k, nil
}

// Token is one lexical unit. Text is set for identifiers and string
// literals, Num for integer literals.
type Token struct {
	Kind Kind
	Text string
	Num  uint32
}

// Of returns a token of a kind that carries no payload.
func Of(k Kind) Token { return Token{Kind: k} }

// Ident returns an identifier token.
func Ident(name string) Token { return Token{Kind: Identifier, Text: name} }

// Number returns an integer literal token.
func Number(n uint32) Token { return Token{Kind: LiteralInt, Num: n} }

// Str returns a string literal token.
func Str(s string) Token { return Token{Kind: LiteralString, Text: s} }

// SameKind compares kinds only, ignoring payloads.
func (t Token) SameKind(other Token) bool {
	return t.Kind == other.Kind
}

func (t Token) String() string {
	switch t.Kind {
	case Identifier, LiteralString:
		return fmt.Sprintf("%s(%q)", t.Kind, t.Text)
	case LiteralInt:
		return fmt.Sprintf("%s(%d)", t.Kind, t.Num)
	default:
		return t.Kind.String()
	}
}
