package engine

import (
	"lexmod.dev/pkg/lexmod/internal/ast"
	"lexmod.dev/pkg/lexmod/internal/query"
	"lexmod.dev/pkg/lexmod/internal/scope"
)

// Rename rewrites the declarator at declPath and every identifier resolving
// to it to newName, in place. The declarator's own binding identifier is an
// ordinary match, which is what makes the rename atomic across declaration
// and uses. Same-spelled tokens that are property keys, method names,
// type-member keys, or references to a shadowing declaration are untouched.
//
// The search is restricted to the subtree anchored at the declaring scope:
// identifiers in sibling scopes are never visited, let alone renamed. Scope
// resolution for the declarator happens before any mutation, so a failed
// rename leaves the tree unchanged. Returns the number of identifiers
// rewritten.
func Rename(tree *scope.Tree, declPath *query.Path, newName string) (int, error) {
	m, err := NewMatcher(declPath)
	if err != nil {
		return 0, err
	}

	root, err := anchorPath(declPath, m.DeclScope.Anchor())
	if err != nil {
		return 0, err
	}

	count := 0

	query.FindIdentifiers(tree, root, m.Name).ForEach(func(p *query.Path) {
		if m.Match(p) {
			p.Node.(*ast.Identifier).Name = newName
			count++
		}
	})

	return count, nil
}
