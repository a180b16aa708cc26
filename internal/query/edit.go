package query

import (
	"fmt"

	"lexmod.dev/pkg/lexmod/internal/ast"
)

// RemoveDeclarator splices the declarator at p out of its enclosing
// declaration statement in place. Other declarators in the same statement are
// preserved; when the last one goes, the whole statement is removed from its
// enclosing statement list.
func RemoveDeclarator(p *Path) error {
	decl, ok := p.Node.(*ast.VariableDeclarator)
	if !ok {
		return fmt.Errorf("not a variable declarator path")
	}

	if p.Parent == nil {
		return fmt.Errorf("declarator path has no parent")
	}

	stmt, ok := p.Parent.Node.(*ast.VariableDeclaration)
	if !ok {
		return fmt.Errorf("declarator parent is not a variable declaration")
	}

	kept := stmt.Decls[:0]

	for _, d := range stmt.Decls {
		if d != decl {
			kept = append(kept, d)
		}
	}

	stmt.Decls = kept

	if len(stmt.Decls) > 0 {
		return nil
	}

	return removeStmt(p.Parent)
}

func removeStmt(p *Path) error {
	stmt, ok := p.Node.(ast.Stmt)
	if !ok || p.Parent == nil {
		return fmt.Errorf("cannot remove statement without an enclosing list")
	}

	switch owner := p.Parent.Node.(type) {
	case *ast.Program:
		owner.Body = spliceStmt(owner.Body, stmt)
	case *ast.BlockStatement:
		owner.Body = spliceStmt(owner.Body, stmt)
	default:
		return fmt.Errorf("statement owner has no statement list")
	}

	return nil
}

func spliceStmt(body []ast.Stmt, target ast.Stmt) []ast.Stmt {
	kept := body[:0]

	for _, s := range body {
		if s != target {
			kept = append(kept, s)
		}
	}

	return kept
}
