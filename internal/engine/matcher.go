package engine

import (
	"fmt"

	"lexmod.dev/pkg/lexmod/internal/ast"
	"lexmod.dev/pkg/lexmod/internal/query"
	"lexmod.dev/pkg/lexmod/internal/scope"
)

// Matcher decides whether an identifier is a variable reference of one
// specific declarator. It closes over the declarator's name and its resolved
// declaring scope; two identifiers with equal names but different declaring
// scopes (shadowing) never match.
type Matcher struct {
	Name string
	// DeclScope is the declarator's declaring scope, found by walking up
	// from its syntactic scope. The two can differ; the walk reconciles them.
	DeclScope *scope.Scope
}

// NewMatcher resolves declPath's declaring scope and returns the matcher.
// It fails when the declarator binds a destructuring pattern (no single name
// to match) or when scope resolution fails; resolution happens here, before
// any caller mutates anything.
func NewMatcher(declPath *query.Path) (*Matcher, error) {
	decl, ok := declPath.Node.(*ast.VariableDeclarator)
	if !ok {
		return nil, fmt.Errorf("not a variable declarator path")
	}

	ident, ok := decl.ID.(*ast.Identifier)
	if !ok {
		return nil, fmt.Errorf("declarator binds a destructuring pattern, not a plain identifier")
	}

	declScope, err := scope.Resolve(ident.Name, declPath.Scope)
	if err != nil {
		return nil, err
	}

	return &Matcher{Name: ident.Name, DeclScope: declScope}, nil
}

// Match reports whether the identifier at p is a variable reference resolving
// to the matcher's declaring scope.
func (m *Matcher) Match(p *query.Path) bool {
	ident, ok := p.Node.(*ast.Identifier)
	if !ok || ident.Name != m.Name {
		return false
	}

	if !IsVariableReference(p) {
		return false
	}

	// A candidate inside the declaring scope's subtree always has that scope
	// on its chain, so this resolution cannot exhaust the chain.
	candScope, err := scope.Resolve(m.Name, p.Scope)
	if err != nil {
		return false
	}

	return candScope == m.DeclScope
}

// anchorPath walks up from p to the path of the given scope anchor. The
// anchor is always an ancestor of any path inside its scope's subtree.
func anchorPath(p *query.Path, anchor ast.Node) (*query.Path, error) {
	for q := p; q != nil; q = q.Parent {
		if q.Node == anchor {
			return q, nil
		}
	}

	return nil, fmt.Errorf("declaring scope anchor not on the parent chain")
}
