package engine

import (
	"lexmod.dev/pkg/lexmod/internal/ast"
	"lexmod.dev/pkg/lexmod/internal/query"
)

// RemoveUnreferenced deletes every declarator in decls whose declared name is
// never used as a variable reference, and returns the collection of
// survivors. Declarators binding destructuring patterns are retained
// unconditionally: the engine does not count references through pattern
// bindings.
//
// A declarator is unreferenced when, within its declaring scope's subtree, no
// identifier outside the binding occurrences matches it. Homonymous tokens
// (property keys, method names, member-access properties, or a same-named
// variable in a shadowing or sibling scope) never keep a declarator alive,
// because matching partitions references by declaring scope, not by name.
// All declarators are evaluated first and removed after, so one removal in a
// multi-declarator statement cannot disturb the evaluation of the next.
func RemoveUnreferenced(decls *query.Collection) (*query.Collection, error) {
	var (
		survivors []*query.Path
		dead      []*query.Path
	)

	for _, declPath := range decls.Paths() {
		decl, ok := declPath.Node.(*ast.VariableDeclarator)
		if !ok {
			survivors = append(survivors, declPath)
			continue
		}

		if _, isPlain := decl.ID.(*ast.Identifier); !isPlain {
			survivors = append(survivors, declPath)
			continue
		}

		referenced, err := hasReferences(decls, declPath)
		if err != nil {
			return nil, err
		}

		if referenced {
			survivors = append(survivors, declPath)
		} else {
			dead = append(dead, declPath)
		}
	}

	for _, declPath := range dead {
		if err := query.RemoveDeclarator(declPath); err != nil {
			return nil, err
		}
	}

	return query.NewCollection(decls.Tree(), survivors), nil
}

func hasReferences(decls *query.Collection, declPath *query.Path) (bool, error) {
	n, err := CountReferences(decls, declPath)
	return n > 0, err
}

// CountReferences counts the variable references of the declarator at
// declPath within its declaring scope's subtree, excluding binding
// occurrences.
func CountReferences(decls *query.Collection, declPath *query.Path) (int, error) {
	m, err := NewMatcher(declPath)
	if err != nil {
		return 0, err
	}

	root, err := anchorPath(declPath, m.DeclScope.Anchor())
	if err != nil {
		return 0, err
	}

	refs := query.FindIdentifiers(decls.Tree(), root, m.Name).Filter(func(p *query.Path) bool {
		return !IsBindingIdentifier(p) && m.Match(p)
	})

	return refs.Size(), nil
}
