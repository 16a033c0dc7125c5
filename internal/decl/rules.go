package decl

import (
	"github.com/SimonDaKappa/go-hatch"
)

// DefaultRule is the rule used when a caller does not name one.
const DefaultRule = "program"

// Register adds every entry rule of the grammar to reg.
func Register(reg *hatch.Registry[Tok]) error {
	rules := []struct {
		name, description string
		register          func(name, description string) error
	}{
		{"program", "any number of statements", bind[Program](reg)},
		{"statement", "a declaration, return or block", bind[Stmt](reg)},
		{"declaration", "type identifier [= expression];", bind[Declaration](reg)},
		{"return", "return expression;", bind[Return](reg)},
		{"block", "{ statements }", bind[Block](reg)},
		{"expression", "terms joined by + and -", bind[Expr](reg)},
		{"term", "integer, identifier or (expression)", bind[Term](reg)},
		{"identifier", "a single identifier", bind[Ident](reg)},
		{"type", "int or float", bind[Type](reg)},
	}

	for _, r := range rules {
		if err := r.register(r.name, r.description); err != nil {
			return err
		}
	}
	return nil
}

// NewRegistry returns a registry holding the grammar's entry rules.
func NewRegistry(opts hatch.RegistryOpts) (*hatch.Registry[Tok], error) {
	reg := hatch.NewRegistry[Tok](opts)
	if err := Register(reg); err != nil {
		return nil, err
	}
	return reg, nil
}

func bind[V hatch.Parsable[Tok, V]](reg *hatch.Registry[Tok]) func(string, string) error {
	return func(name, description string) error {
		return hatch.RegisterParser(reg, name, description, hatch.Default[Tok, V]())
	}
}
