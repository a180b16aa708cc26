package scope

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexmod.dev/pkg/lexmod/internal/ast"
	"lexmod.dev/pkg/lexmod/internal/parser"
)

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()

	prog, err := parser.Parse(src)
	require.NoError(t, err)

	return prog
}

// firstFunction returns the first function declaration named name.
func firstFunction(t *testing.T, prog *ast.Program, name string) *ast.FunctionDeclaration {
	t.Helper()

	for _, stmt := range prog.Body {
		if fn, ok := stmt.(*ast.FunctionDeclaration); ok && fn.Name.Name == name {
			return fn
		}
	}

	t.Fatalf("no function declaration named %q", name)

	return nil
}

func TestBuild_BindsProgramDeclarations(t *testing.T) {
	prog := mustParse(t, `
var a = 1;
let b;
const c = 2;
var {d, e} = pair();
function f() {}
class C {}
type T = number;
`)

	tree := Build(prog)
	root := tree.Root()

	assert.Equal(t, KindProgram, root.Kind())
	assert.Nil(t, root.Parent())

	for _, name := range []string{"a", "b", "c", "d", "e", "f", "C", "T"} {
		assert.True(t, root.Declares(name), "expected root to declare %s", name)
	}

	assert.False(t, root.Declares("pair"))
}

func TestBuild_FunctionScopeHoldsParamsAndLocals(t *testing.T) {
	prog := mustParse(t, `
function f(x, y) {
  var local = x + y;
  return local;
}
`)

	tree := Build(prog)
	fn := firstFunction(t, prog, "f")

	fnScope, ok := tree.At(fn)
	require.True(t, ok)

	assert.Equal(t, KindFunction, fnScope.Kind())
	assert.Same(t, tree.Root(), fnScope.Parent())
	assert.Equal(t, ast.Node(fn), fnScope.Anchor())

	assert.True(t, fnScope.Declares("x"))
	assert.True(t, fnScope.Declares("y"))
	assert.True(t, fnScope.Declares("local"))
	// The function's own name lives in the enclosing scope.
	assert.False(t, fnScope.Declares("f"))
	assert.True(t, tree.Root().Declares("f"))
}

func TestResolve_WalksUpward(t *testing.T) {
	prog := mustParse(t, `
var shared = 1;
function outer() {
  function inner() {
    return shared;
  }
  return inner;
}
`)

	tree := Build(prog)
	outer := firstFunction(t, prog, "outer")
	inner := outer.Body.Body[0].(*ast.FunctionDeclaration)

	innerScope, ok := tree.At(inner)
	require.True(t, ok)

	declScope, err := Resolve("shared", innerScope)
	require.NoError(t, err)
	assert.Same(t, tree.Root(), declScope)
}

func TestResolve_ShadowingStopsAtNearestBinding(t *testing.T) {
	prog := mustParse(t, `
var name = "outer";
function f() {
  var name = "inner";
  return name;
}
`)

	tree := Build(prog)
	fn := firstFunction(t, prog, "f")
	fnScope, ok := tree.At(fn)
	require.True(t, ok)

	declScope, err := Resolve("name", fnScope)
	require.NoError(t, err)
	assert.Same(t, fnScope, declScope)

	fromRoot, err := Resolve("name", tree.Root())
	require.NoError(t, err)
	assert.Same(t, tree.Root(), fromRoot)
}

func TestResolve_UnknownNameFails(t *testing.T) {
	prog := mustParse(t, "var a = 1;\n")
	tree := Build(prog)

	_, err := Resolve("missing", tree.Root())
	require.Error(t, err)

	var resErr *ResolutionError
	require.True(t, errors.As(err, &resErr))
	assert.Equal(t, "missing", resErr.Name)
	assert.Contains(t, err.Error(), "missing")
}

func TestBuild_NamedFunctionExpressionBindsSelfNameInside(t *testing.T) {
	prog := mustParse(t, `
var run = function walk(n) {
  return walk(n);
};
`)

	tree := Build(prog)

	fn := prog.Body[0].(*ast.VariableDeclaration).Decls[0].Init.(*ast.FunctionExpression)
	fnScope, ok := tree.At(fn)
	require.True(t, ok)

	assert.True(t, fnScope.Declares("walk"))
	assert.False(t, tree.Root().Declares("walk"))
	assert.True(t, tree.Root().Declares("run"))
}

func TestBuild_ClassMethodsAnchorFunctionScopes(t *testing.T) {
	prog := mustParse(t, `
class Runner {
  run(task) {
    var attempt = 0;
    return task(attempt);
  }
}
`)

	tree := Build(prog)

	class := prog.Body[0].(*ast.ClassDeclaration)
	method := class.Body.Methods[0].Value

	methodScope, ok := tree.At(method)
	require.True(t, ok)

	assert.Equal(t, KindFunction, methodScope.Kind())
	assert.True(t, methodScope.Declares("task"))
	assert.True(t, methodScope.Declares("attempt"))
	assert.True(t, tree.Root().Declares("Runner"))
}

// Scoping is function-granular: let and const inside branches hoist to the
// nearest function, so sibling block declarations share one binding.
func TestBlockScopedDeclarationsShareFunctionScope(t *testing.T) {
	prog := mustParse(t, `
function pick(flag) {
  if (flag) {
    let result = 1;
  } else {
    let result = 2;
  }
}
`)

	tree := Build(prog)
	fn := firstFunction(t, prog, "pick")
	fnScope, ok := tree.At(fn)
	require.True(t, ok)

	assert.True(t, fnScope.Declares("result"))
	assert.False(t, tree.Root().Declares("result"))

	declScope, err := Resolve("result", fnScope)
	require.NoError(t, err)
	assert.Same(t, fnScope, declScope)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "program", KindProgram.String())
	assert.Equal(t, "function", KindFunction.String())
}
