package scope

import (
	"lexmod.dev/pkg/lexmod/internal/ast"
)

// Tree is the scope tree for one program. It is rebuilt from the current
// syntax tree for every engine call; nothing is cached across structural
// edits.
type Tree struct {
	root     *Scope
	byAnchor map[ast.Node]*Scope
}

// Root returns the program scope.
func (t *Tree) Root() *Scope { return t.root }

// At returns the scope anchored at the given function or program node.
func (t *Tree) At(anchor ast.Node) (*Scope, bool) {
	s, ok := t.byAnchor[anchor]
	return s, ok
}

// Build constructs the scope tree for prog. Declarator names (including
// destructured ones), parameters, and function/class/type alias names are
// bound in the scope that owns them; var, let and const inside nested blocks
// hoist to the nearest enclosing function or program scope.
func Build(prog *ast.Program) *Tree {
	t := &Tree{byAnchor: make(map[ast.Node]*Scope)}

	t.root = t.newScope(nil, KindProgram, prog)
	t.collect(prog.Body, t.root)

	return t
}

func (t *Tree) newScope(parent *Scope, kind Kind, anchor ast.Node) *Scope {
	s := &Scope{parent: parent, kind: kind, anchor: anchor, names: make(map[string]struct{})}
	t.byAnchor[anchor] = s

	return s
}

// collect walks statements, binding names into current and descending into
// nested functions with fresh scopes. Blocks and if branches stay in the
// current scope.
func (t *Tree) collect(body []ast.Stmt, current *Scope) {
	for _, stmt := range body {
		t.collectStmt(stmt, current)
	}
}

func (t *Tree) collectStmt(stmt ast.Stmt, current *Scope) {
	switch v := stmt.(type) {
	case *ast.VariableDeclaration:
		for _, d := range v.Decls {
			bindPattern(current, d.ID)

			if d.Init != nil {
				t.collectExpr(d.Init, current)
			}
		}
	case *ast.FunctionDeclaration:
		current.bind(v.Name.Name)
		t.enterFunction(v, v.Params, v.Body, nil, current)
	case *ast.ClassDeclaration:
		current.bind(v.Name.Name)

		for _, method := range v.Body.Methods {
			if method.Computed {
				t.collectExpr(method.Key, current)
			}

			t.enterFunction(method.Value, method.Value.Params, method.Value.Body, nil, current)
		}
	case *ast.TypeAliasDeclaration:
		current.bind(v.Name.Name)
	case *ast.BlockStatement:
		t.collect(v.Body, current)
	case *ast.IfStatement:
		t.collectExpr(v.Test, current)
		t.collect(v.Cons.Body, current)

		if v.Alt != nil {
			t.collectStmt(v.Alt, current)
		}
	case *ast.ReturnStatement:
		if v.Arg != nil {
			t.collectExpr(v.Arg, current)
		}
	case *ast.ExpressionStatement:
		t.collectExpr(v.Expr, current)
	}
}

func (t *Tree) collectExpr(expr ast.Expr, current *Scope) {
	if fn, ok := expr.(*ast.FunctionExpression); ok {
		// A named function expression binds its own name inside itself.
		t.enterFunction(fn, fn.Params, fn.Body, fn.Name, current)
		return
	}

	for _, child := range ast.Children(expr) {
		switch c := child.(type) {
		case ast.Expr:
			t.collectExpr(c, current)
		case *ast.Property:
			if c.Computed {
				t.collectExpr(c.Key, current)
			}

			t.collectExpr(c.Value, current)
		}
	}
}

func (t *Tree) enterFunction(anchor ast.Node, params []*ast.Identifier, body *ast.BlockStatement, selfName *ast.Identifier, parent *Scope) {
	fnScope := t.newScope(parent, KindFunction, anchor)

	if selfName != nil {
		fnScope.bind(selfName.Name)
	}

	for _, param := range params {
		fnScope.bind(param.Name)
	}

	t.collect(body.Body, fnScope)
}

func bindPattern(s *Scope, pat ast.Pattern) {
	switch v := pat.(type) {
	case *ast.Identifier:
		s.bind(v.Name)
	case *ast.ObjectPattern:
		for _, name := range v.Names {
			s.bind(name.Name)
		}
	case *ast.ArrayPattern:
		for _, name := range v.Names {
			s.bind(name.Name)
		}
	}
}
