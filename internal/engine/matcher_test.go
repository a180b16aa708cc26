package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexmod.dev/pkg/lexmod/internal/query"
)

// declaratorNamed returns the path of the first declarator binding name.
func declaratorNamed(t *testing.T, decls *query.Collection, name string) *query.Path {
	t.Helper()

	matches := decls.Filter(func(p *query.Path) bool {
		return DeclaredName(p) == name
	})
	require.GreaterOrEqual(t, matches.Size(), 1, "no declarator named %q", name)

	return matches.Paths()[0]
}

func TestNewMatcher_ResolvesDeclaringScope(t *testing.T) {
	_, tree, root := parseRoot(t, `
var counter = 0;
function f() {
  var local = 1;
}
`)

	decls := query.FindDeclarators(tree, root)

	global, err := NewMatcher(declaratorNamed(t, decls, "counter"))
	require.NoError(t, err)
	assert.Equal(t, "counter", global.Name)
	assert.Same(t, tree.Root(), global.DeclScope)

	local, err := NewMatcher(declaratorNamed(t, decls, "local"))
	require.NoError(t, err)
	assert.NotSame(t, tree.Root(), local.DeclScope)
}

func TestNewMatcher_RejectsDestructuringPattern(t *testing.T) {
	_, tree, root := parseRoot(t, "var {a, b} = pair();\n")

	decls := query.FindDeclarators(tree, root)
	require.Equal(t, 1, decls.Size())

	_, err := NewMatcher(decls.Paths()[0])
	assert.Error(t, err)
}

func TestNewMatcher_RejectsNonDeclaratorPath(t *testing.T) {
	_, _, root := parseRoot(t, "var a = 1;\n")

	_, err := NewMatcher(root)
	assert.Error(t, err)
}

func TestMatch_PartitionsByDeclaringScope(t *testing.T) {
	_, tree, root := parseRoot(t, `
var counter = 0;
function tick() {
  counter = counter + 1;
}
function local() {
  var counter = 100;
  return counter;
}
`)

	decls := query.FindDeclarators(tree, root)
	globalDecl := declaratorNamed(t, decls, "counter")

	m, err := NewMatcher(globalDecl)
	require.NoError(t, err)

	idents := query.FindIdentifiers(tree, root, "counter").Paths()
	require.Len(t, idents, 5)

	// Document order: global binding, two in tick, inner binding, inner
	// return.
	assert.True(t, m.Match(idents[0]), "global binding identifier")
	assert.True(t, m.Match(idents[1]), "assignment target in tick")
	assert.True(t, m.Match(idents[2]), "assignment value in tick")
	assert.False(t, m.Match(idents[3]), "shadowing binding in local")
	assert.False(t, m.Match(idents[4]), "shadowed reference in local")
}

func TestMatch_IgnoresNameOnlyPositions(t *testing.T) {
	_, tree, root := parseRoot(t, `
var counter = 0;
var state = {counter: counter};
log(state.counter);
`)

	decls := query.FindDeclarators(tree, root)

	m, err := NewMatcher(declaratorNamed(t, decls, "counter"))
	require.NoError(t, err)

	idents := query.FindIdentifiers(tree, root, "counter").Paths()
	require.Len(t, idents, 4)

	assert.True(t, m.Match(idents[0]), "binding")
	assert.False(t, m.Match(idents[1]), "object key")
	assert.True(t, m.Match(idents[2]), "object value")
	assert.False(t, m.Match(idents[3]), "member property")
}

func TestMatch_RejectsDifferentName(t *testing.T) {
	_, tree, root := parseRoot(t, "var a = 1;\nvar b = a;\n")

	decls := query.FindDeclarators(tree, root)

	m, err := NewMatcher(declaratorNamed(t, decls, "a"))
	require.NoError(t, err)

	bPath := query.FindIdentifiers(tree, root, "b").Paths()[0]
	assert.False(t, m.Match(bPath))
}
