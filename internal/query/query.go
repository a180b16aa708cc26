// Package query provides generic traversal over a parsed program: paths with
// parent links and scope references, and collections of matched nodes that
// can be filtered, iterated, and structurally edited. The resolution engine
// is layered on top of these primitives.
package query

import (
	"lexmod.dev/pkg/lexmod/internal/ast"
	"lexmod.dev/pkg/lexmod/internal/scope"
)

// Path is a handle to a node plus its parent chain up to the root and the
// innermost scope enclosing the node. Paths are the unit of identity for
// traversal and mutation; they are rebuilt on every search, never cached
// across edits.
type Path struct {
	Node   ast.Node
	Parent *Path
	Scope  *scope.Scope
}

// NewRoot wraps a program and its scope tree as the traversal root.
func NewRoot(prog *ast.Program, tree *scope.Tree) *Path {
	return &Path{Node: prog, Scope: tree.Root()}
}

// Collection is an ordered set of matched paths, in document order unless a
// filter reordered it.
type Collection struct {
	paths []*Path
	tree  *scope.Tree
}

// NewCollection builds a collection from explicit paths.
func NewCollection(tree *scope.Tree, paths []*Path) *Collection {
	return &Collection{paths: paths, tree: tree}
}

// Paths returns the underlying paths in order.
func (c *Collection) Paths() []*Path { return c.paths }

// Size returns the number of matched paths.
func (c *Collection) Size() int { return len(c.paths) }

// Tree returns the scope tree the collection was matched against.
func (c *Collection) Tree() *scope.Tree { return c.tree }

// Filter returns a new collection holding only paths satisfying pred.
func (c *Collection) Filter(pred func(*Path) bool) *Collection {
	kept := make([]*Path, 0, len(c.paths))

	for _, p := range c.paths {
		if pred(p) {
			kept = append(kept, p)
		}
	}

	return &Collection{paths: kept, tree: c.tree}
}

// ForEach visits every path in order.
func (c *Collection) ForEach(fn func(*Path)) {
	for _, p := range c.paths {
		fn(p)
	}
}

// walk visits root's subtree in document order, maintaining parent links and
// the current scope. Entering a scope-anchoring node (program or function)
// switches the scope for that node's children; the anchor node itself still
// reports the enclosing scope, so a function expression's own name and
// parameters are visited inside the function's scope via the anchor switch.
func walk(tree *scope.Tree, p *Path, visit func(*Path)) {
	visit(p)

	childScope := p.Scope
	if s, ok := tree.At(p.Node); ok {
		childScope = s
	}

	for _, child := range ast.Children(p.Node) {
		walk(tree, &Path{Node: child, Parent: p, Scope: childScope}, visit)
	}
}

// Find collects every path in root's subtree satisfying pred.
func Find(tree *scope.Tree, root *Path, pred func(*Path) bool) *Collection {
	var paths []*Path

	walk(tree, root, func(p *Path) {
		if pred(p) {
			paths = append(paths, p)
		}
	})

	return &Collection{paths: paths, tree: tree}
}

// FindDeclarators collects all variable declarators under root.
func FindDeclarators(tree *scope.Tree, root *Path) *Collection {
	return Find(tree, root, func(p *Path) bool {
		_, ok := p.Node.(*ast.VariableDeclarator)
		return ok
	})
}

// FindIdentifiers collects identifiers under root; name restricts the match
// unless empty.
func FindIdentifiers(tree *scope.Tree, root *Path, name string) *Collection {
	return Find(tree, root, func(p *Path) bool {
		ident, ok := p.Node.(*ast.Identifier)
		return ok && (name == "" || ident.Name == name)
	})
}

// FindNode returns the path of target within root's subtree, located by node
// identity, or nil when target is not in the subtree.
func FindNode(tree *scope.Tree, root *Path, target ast.Node) *Path {
	var found *Path

	walk(tree, root, func(p *Path) {
		if found == nil && p.Node == target {
			found = p
		}
	})

	return found
}
