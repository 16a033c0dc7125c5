// Package decl is a small declaration grammar over the token package. It
// backs the hatch command and the end to end tests of the combinators.
//
//	program     = { statement }
//	statement   = declaration | return | block
//	declaration = type identifier [ "=" expression ] ";"
//	return      = "return" expression ";"
//	block       = "{" { statement } "}"
//	expression  = term { ("+" | "-") term }
//	term        = integer | identifier | "(" expression ")"
//	type        = "int" | "float"
package decl

import (
	"github.com/SimonDaKappa/go-hatch"
	"github.com/SimonDaKappa/go-hatch/token"
)

// Tok is the token type every rule of this grammar reads.
type Tok = token.Token

// Is accepts tokens of kind k whatever their payload.
func Is(k token.Kind) hatch.Pattern[Tok] {
	return hatch.Match(k.String(), func(t Tok) bool { return t.Kind == k })
}

// Text accepts identifier and string tokens carrying exactly s.
func Text(s string) hatch.Pattern[Tok] {
	return hatch.Match(s, func(t Tok) bool { return t.Text == s })
}

func expect(k token.Kind) hatch.Parser[Tok, Tok] {
	return hatch.Expect(Is(k))
}

///////////////////////////////////////////////////////////////////////////////
// Leaves
///////////////////////////////////////////////////////////////////////////////

func (Ident) Parser() hatch.Parser[Tok, Ident] {
	return hatch.Map(expect(token.Identifier), func(t Tok) Ident {
		return Ident(t.Text)
	})
}

func (Type) Parser() hatch.Parser[Tok, Type] {
	return hatch.Choice("Type",
		keyword(token.KInt, TypeInt),
		keyword(token.KFloat, TypeFloat),
	)
}

func keyword(k token.Kind, t Type) hatch.Parser[Tok, Type] {
	return hatch.Map(expect(k), func(Tok) Type { return t })
}

///////////////////////////////////////////////////////////////////////////////
// Expressions
///////////////////////////////////////////////////////////////////////////////

func (Term) Parser() hatch.Parser[Tok, Term] {
	number := hatch.Map(expect(token.LiteralInt), func(t Tok) Term {
		return Term{Number: t.Num}
	})
	name := hatch.Map(hatch.Default[Tok, Ident](), func(n Ident) Term {
		return Term{Name: n}
	})
	group := hatch.Map(
		hatch.Seq3(
			expect(token.LParen),
			hatch.Indirect(hatch.Ref[Tok, Expr]()),
			expect(token.RParen),
		),
		func(t hatch.Tuple3[Tok, *Expr, Tok]) Term {
			return Term{Group: t.Second}
		},
	)
	return hatch.Choice("Term", number, name, group)
}

func (Operation) Parser() hatch.Parser[Tok, Operation] {
	op := hatch.Expect(Is(token.Plus).Or(Is(token.Minus)).Named("+ or -"))
	return hatch.Map(
		hatch.Seq2(op, hatch.Ref[Tok, Term]()),
		func(t hatch.Tuple2[Tok, Term]) Operation {
			return Operation{Op: t.First.Kind, Operand: t.Second}
		},
	)
}

func (Expr) Parser() hatch.Parser[Tok, Expr] {
	return hatch.Named("Expression", hatch.Map(
		hatch.Seq2(hatch.Ref[Tok, Term](), hatch.Many(hatch.Default[Tok, Operation]())),
		func(t hatch.Tuple2[Term, []Operation]) Expr {
			return Expr{First: t.First, Rest: t.Second}
		},
	))
}

///////////////////////////////////////////////////////////////////////////////
// Statements
///////////////////////////////////////////////////////////////////////////////

// declarationEnd reads what follows the declared name: either the closing
// semicolon or an initializer and then the semicolon. The two forms are
// alternatives so a malformed initializer is reported instead of a
// missing semicolon.
func declarationEnd() hatch.Parser[Tok, hatch.Option[Expr]] {
	bare := hatch.Map(expect(token.SemiColon), func(Tok) hatch.Option[Expr] {
		return hatch.None[Expr]()
	})
	initialized := hatch.Map(
		hatch.Seq3(expect(token.Assign), hatch.Ref[Tok, Expr](), expect(token.SemiColon)),
		func(t hatch.Tuple3[Tok, Expr, Tok]) hatch.Option[Expr] {
			return hatch.Some(t.Second)
		},
	)
	return hatch.Choice("Initializer", bare, initialized)
}

func (Declaration) Parser() hatch.Parser[Tok, Declaration] {
	return hatch.Named("Declaration", hatch.Map(
		hatch.Seq3(
			hatch.Default[Tok, Type](),
			hatch.Default[Tok, Ident](),
			declarationEnd(),
		),
		func(t hatch.Tuple3[Type, Ident, hatch.Option[Expr]]) Declaration {
			return Declaration{Type: t.First, Name: t.Second, Value: t.Third}
		},
	))
}

func (Return) Parser() hatch.Parser[Tok, Return] {
	return hatch.Named("Return", hatch.Map(
		hatch.Seq3(expect(token.KReturn), hatch.Ref[Tok, Expr](), expect(token.SemiColon)),
		func(t hatch.Tuple3[Tok, Expr, Tok]) Return {
			return Return{Value: t.Second}
		},
	))
}

func (Block) Parser() hatch.Parser[Tok, Block] {
	return hatch.Named("Block", hatch.Map(
		hatch.Seq3(expect(token.LCurly), hatch.Many(hatch.Ref[Tok, Stmt]()), expect(token.RCurly)),
		func(t hatch.Tuple3[Tok, []Stmt, Tok]) Block {
			return Block{Body: t.Second}
		},
	))
}

func (Stmt) Parser() hatch.Parser[Tok, Stmt] {
	return hatch.Choice("Statement",
		hatch.Map(hatch.Indirect(hatch.Default[Tok, Declaration]()), func(d *Declaration) Stmt {
			return Stmt{Declaration: d}
		}),
		hatch.Map(hatch.Indirect(hatch.Default[Tok, Return]()), func(r *Return) Stmt {
			return Stmt{Return: r}
		}),
		hatch.Map(hatch.Indirect(hatch.Ref[Tok, Block]()), func(b *Block) Stmt {
			return Stmt{Block: b}
		}),
	)
}

func (Program) Parser() hatch.Parser[Tok, Program] {
	return hatch.Map(hatch.Many(hatch.Default[Tok, Stmt]()), func(s []Stmt) Program {
		return Program{Statements: s}
	})
}
