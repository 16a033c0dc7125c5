package decl

import (
	"strconv"
	"strings"

	"github.com/SimonDaKappa/go-hatch"
	"github.com/SimonDaKappa/go-hatch/token"
)

// Ident is an identifier name.
type Ident string

// Type is a declared type.
type Type string

const (
	TypeInt   Type = "int"
	TypeFloat Type = "float"
)

// Term is exactly one of a number, a name or a parenthesized expression.
type Term struct {
	Number uint32
	Name   Ident
	Group  *Expr
}

func (t Term) String() string {
	switch {
	case t.Group != nil:
		return "(" + t.Group.String() + ")"
	case t.Name != "":
		return string(t.Name)
	default:
		return strconv.FormatUint(uint64(t.Number), 10)
	}
}

// Operation is one binary step of an expression.
type Operation struct {
	Op      token.Kind
	Operand Term
}

func (o Operation) String() string {
	sym := "?"
	switch o.Op {
	case token.Plus:
		sym = "+"
	case token.Minus:
		sym = "-"
	}
	return sym + " " + o.Operand.String()
}

// Expr is a left associative chain of additions and subtractions.
type Expr struct {
	First Term
	Rest  []Operation
}

func (e Expr) String() string {
	var b strings.Builder
	b.WriteString(e.First.String())
	for _, op := range e.Rest {
		b.WriteString(" ")
		b.WriteString(op.String())
	}
	return b.String()
}

// Declaration introduces a variable with an optional initializer.
type Declaration struct {
	Type  Type
	Name  Ident
	Value hatch.Option[Expr]
}

func (d Declaration) String() string {
	s := string(d.Type) + " " + string(d.Name)
	if v, ok := d.Value.Get(); ok {
		s += " = " + v.String()
	}
	return s + ";"
}

type Return struct {
	Value Expr
}

func (r Return) String() string {
	return "return " + r.Value.String() + ";"
}

type Block struct {
	Body []Stmt
}

func (b Block) String() string {
	if len(b.Body) == 0 {
		return "{}"
	}
	parts := make([]string, len(b.Body))
	for i, s := range b.Body {
		parts[i] = s.String()
	}
	return "{ " + strings.Join(parts, " ") + " }"
}

// Stmt holds exactly one statement kind.
type Stmt struct {
	Declaration *Declaration
	Return      *Return
	Block       *Block
}

func (s Stmt) String() string {
	switch {
	case s.Declaration != nil:
		return s.Declaration.String()
	case s.Return != nil:
		return s.Return.String()
	case s.Block != nil:
		return s.Block.String()
	default:
		return ""
	}
}

// Program is a whole token stream worth of statements.
type Program struct {
	Statements []Stmt
}

func (p Program) String() string {
	lines := make([]string, len(p.Statements))
	for i, s := range p.Statements {
		lines[i] = s.String()
	}
	return strings.Join(lines, "\n")
}
