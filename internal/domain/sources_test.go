package domain

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "lexmod.dev/pkg/lexmod/internal/model"
)

func sourceNames(sources []m.Source) []string {
	names := make([]string, 0, len(sources))
	for _, source := range sources {
		names = append(names, filepath.Base(string(source.Origin.FullPath)))
	}

	return names
}

func TestCollectSources_RecursivePattern(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "top.js"), "var a = 1;\n")
	writeFile(t, filepath.Join(root, "sub", "nested.js"), "var b = 2;\n")
	writeFile(t, filepath.Join(root, "readme.md"), "not a script\n")

	wf, _ := newTestWorkflow()

	sources, err := wf.(*workflow).collectSources([]m.Path{m.Path(root + string(filepath.Separator) + "...")}, nil)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"top.js", "nested.js"}, sourceNames(sources))
}

func TestCollectSources_DefaultsToRecursiveWorkingDirectory(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "top.js"), "var a = 1;\n")
	writeFile(t, filepath.Join(root, "sub", "nested.js"), "var b = 2;\n")

	originalWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(root))
	t.Cleanup(func() { require.NoError(t, os.Chdir(originalWD)) })

	wf, _ := newTestWorkflow()

	sources, err := wf.(*workflow).collectSources(nil, nil)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"top.js", "nested.js"}, sourceNames(sources))
}

func TestCollectSources_NonRecursiveDirectory(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "top.js"), "var a = 1;\n")
	writeFile(t, filepath.Join(root, "sub", "nested.js"), "var b = 2;\n")

	wf, _ := newTestWorkflow()

	sources, err := wf.(*workflow).collectSources([]m.Path{m.Path(root)}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"top.js"}, sourceNames(sources))
}

func TestCollectSources_SingleFileAndDeduplication(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "app.js")
	writeFile(t, path, "var a = 1;\n")

	wf, _ := newTestWorkflow()

	sources, err := wf.(*workflow).collectSources([]m.Path{m.Path(path), m.Path(path)}, nil)
	require.NoError(t, err)
	require.Len(t, sources, 1)

	source := sources[0]
	assert.Equal(t, m.Path(path), source.Origin.FullPath)
	assert.Equal(t, "var a = 1;\n", string(source.Code))
	assert.NotEmpty(t, source.Origin.Hash)
}

func TestCollectSources_ExcludePatterns(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "app.js"), "var a = 1;\n")
	writeFile(t, filepath.Join(root, "app.min.js"), "var b = 2;\n")

	wf, _ := newTestWorkflow()

	sources, err := wf.(*workflow).collectSources(
		[]m.Path{m.Path(root)},
		[]string{`\.min\.js$`},
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"app.js"}, sourceNames(sources))
}

func TestCollectSources_InvalidExcludePattern(t *testing.T) {
	wf, _ := newTestWorkflow()

	_, err := wf.(*workflow).collectSources([]m.Path{"."}, []string{"("})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid exclude pattern")
}

func TestCollectSources_MissingPath(t *testing.T) {
	wf, _ := newTestWorkflow()

	_, err := wf.(*workflow).collectSources([]m.Path{m.Path(filepath.Join(t.TempDir(), "nope.js"))}, nil)
	assert.Error(t, err)
}

func TestShortPath_RelativizesInsideWorkingDirectory(t *testing.T) {
	root := t.TempDir()

	originalWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(root))
	t.Cleanup(func() { require.NoError(t, os.Chdir(originalWD)) })

	wd, err := os.Getwd()
	require.NoError(t, err)
	path := filepath.Join(wd, "app.js")
	writeFile(t, path, "var a = 1;\n")

	wf, _ := newTestWorkflow()

	sources, err := wf.(*workflow).collectSources([]m.Path{m.Path(path)}, nil)
	require.NoError(t, err)
	require.Len(t, sources, 1)

	assert.Equal(t, m.Path(path), sources[0].Origin.FullPath)
	assert.Equal(t, m.Path("app.js"), sources[0].Origin.ShortPath)
}

func TestSplitPattern(t *testing.T) {
	tests := []struct {
		name          string
		path          m.Path
		wantRoot      m.Path
		wantRecursive bool
	}{
		{"plain file", "app.js", "app.js", false},
		{"plain directory", "./src", "./src", false},
		{"recursive current", "./...", ".", true},
		{"recursive subdir", "./src/...", "./src", true},
		{"bare dots", "...", ".", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, recursive := splitPattern(tt.path)
			assert.Equal(t, tt.wantRoot, root)
			assert.Equal(t, tt.wantRecursive, recursive)
		})
	}
}
