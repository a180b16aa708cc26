package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalScriptFileAdapter_ParsePrintRoundTrip(t *testing.T) {
	a := NewLocalScriptFileAdapter()

	src := []byte("var a = 1;\nfunction f(x) {\n  return x + a;\n}\n")

	prog, err := a.Parse("app.js", src)
	require.NoError(t, err)
	require.Len(t, prog.Body, 2)

	assert.Equal(t, string(src), string(a.Print(prog)))
}

func TestLocalScriptFileAdapter_ParseErrorNamesFile(t *testing.T) {
	a := NewLocalScriptFileAdapter()

	_, err := a.Parse("broken.js", []byte("var = 1;"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.js")
}

func TestLocalScriptFileAdapter_BuildScopes(t *testing.T) {
	a := NewLocalScriptFileAdapter()

	prog, err := a.Parse("app.js", []byte("var a = 1;\nfunction f() {}\n"))
	require.NoError(t, err)

	tree := a.BuildScopes(prog)
	require.NotNil(t, tree)
	assert.True(t, tree.Root().Declares("a"))
	assert.True(t, tree.Root().Declares("f"))
}
