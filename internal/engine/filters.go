package engine

import (
	"lexmod.dev/pkg/lexmod/internal/ast"
	"lexmod.dev/pkg/lexmod/internal/query"
)

// RequiresModule returns a declarator filter matching declarators whose
// initializer is exactly require("name"). The comparison is structural over
// the initializer subtree; either quote style matches.
func RequiresModule(name string) func(*query.Path) bool {
	want := func(quote string) ast.Expr {
		return &ast.CallExpression{
			Callee: &ast.Identifier{Name: "require"},
			Args:   []ast.Expr{&ast.Literal{Raw: quote + name + quote}},
		}
	}

	doubleQuoted := want(`"`)
	singleQuoted := want(`'`)

	return func(p *query.Path) bool {
		decl, ok := p.Node.(*ast.VariableDeclarator)
		if !ok || decl.Init == nil {
			return false
		}

		return query.ExprEqual(decl.Init, doubleQuoted) || query.ExprEqual(decl.Init, singleQuoted)
	}
}

// DeclaredName returns the plain-identifier name a declarator binds, or
// "" for destructuring patterns.
func DeclaredName(p *query.Path) string {
	decl, ok := p.Node.(*ast.VariableDeclarator)
	if !ok {
		return ""
	}

	ident, ok := decl.ID.(*ast.Identifier)
	if !ok {
		return ""
	}

	return ident.Name
}
