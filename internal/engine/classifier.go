// Package engine answers two questions about identifiers: is this token a
// variable reference, as opposed to a property key, method name, or
// type-member name with the same spelling, and does this reference resolve,
// through lexical scoping and shadowing, to this declarator. On top of those
// it builds scope-correct rename and unreferenced-declarator elimination.
// Name equality alone is unsound for both; the engine combines
// syntactic-position classification with scope-chain walking.
package engine

import (
	"lexmod.dev/pkg/lexmod/internal/ast"
	"lexmod.dev/pkg/lexmod/internal/query"
)

// IsVariableReference reports whether the identifier at p occupies a
// variable-reference position. It returns false for the name-only positions:
// the property of a non-computed member access, a non-computed object
// property key, a non-computed method name, and a type-member key. Every
// other position is a reference, including computed member access obj[name]
// and the binding identifier of a declarator. Purely structural; no scope
// lookup happens here.
func IsVariableReference(p *query.Path) bool {
	ident, ok := p.Node.(*ast.Identifier)
	if !ok || p.Parent == nil {
		return false
	}

	switch parent := p.Parent.Node.(type) {
	case *ast.MemberExpression:
		if !parent.Computed && parent.Property == ast.Expr(ident) {
			return false
		}
	case *ast.Property:
		if !parent.Computed && parent.Key == ast.Expr(ident) {
			return false
		}
	case *ast.MethodDefinition:
		if !parent.Computed && parent.Key == ast.Expr(ident) {
			return false
		}
	case *ast.ObjectTypeProperty:
		if parent.Key == ident {
			return false
		}
	}

	return true
}

// IsBindingIdentifier reports whether p is the binding occurrence of a
// declaration: the id of a variable declarator, or the name of a function,
// class, or type alias declaration. Reference counting excludes these so a
// declaration site never counts as a use of itself.
func IsBindingIdentifier(p *query.Path) bool {
	ident, ok := p.Node.(*ast.Identifier)
	if !ok || p.Parent == nil {
		return false
	}

	switch parent := p.Parent.Node.(type) {
	case *ast.VariableDeclarator:
		return parent.ID == ast.Pattern(ident)
	case *ast.FunctionDeclaration:
		return parent.Name == ident
	case *ast.ClassDeclaration:
		return parent.Name == ident
	case *ast.TypeAliasDeclaration:
		return parent.Name == ident
	}

	return false
}
