package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	m "lexmod.dev/pkg/lexmod/internal/model"
)

func TestReportStore_SaveWritesSummary(t *testing.T) {
	store := NewReportStore()
	dir := filepath.Join(t.TempDir(), "reports")

	changes := []m.Change{
		{
			Source:   m.Source{Origin: &m.File{ShortPath: "app.js"}},
			Kind:     m.TransformRename,
			Edits:    3,
			RenamedF: "counter",
			RenamedT: "total",
		},
		{
			// Untouched files stay out of the report.
			Source: m.Source{Origin: &m.File{ShortPath: "other.js"}},
			Kind:   m.TransformRename,
			Edits:  0,
		},
		{
			Source:  m.Source{Origin: &m.File{ShortPath: "lib.js"}},
			Kind:    m.TransformPrune,
			Edits:   1,
			Written: true,
		},
	}

	require.NoError(t, store.Save(m.Path(dir), changes))

	raw, err := os.ReadFile(filepath.Join(dir, "lexmod-report.yaml"))
	require.NoError(t, err)

	var report struct {
		GeneratedAt string `yaml:"generated_at"`
		Changes     []struct {
			File        string `yaml:"file"`
			Kind        string `yaml:"kind"`
			Edits       int    `yaml:"edits"`
			Written     bool   `yaml:"written"`
			RenamedFrom string `yaml:"renamed_from"`
			RenamedTo   string `yaml:"renamed_to"`
		} `yaml:"changes"`
	}
	require.NoError(t, yaml.Unmarshal(raw, &report))

	assert.NotEmpty(t, report.GeneratedAt)
	require.Len(t, report.Changes, 2)

	assert.Equal(t, "app.js", report.Changes[0].File)
	assert.Equal(t, "rename", report.Changes[0].Kind)
	assert.Equal(t, 3, report.Changes[0].Edits)
	assert.False(t, report.Changes[0].Written)
	assert.Equal(t, "counter", report.Changes[0].RenamedFrom)
	assert.Equal(t, "total", report.Changes[0].RenamedTo)

	assert.Equal(t, "lib.js", report.Changes[1].File)
	assert.Equal(t, "prune", report.Changes[1].Kind)
	assert.True(t, report.Changes[1].Written)
	assert.Empty(t, report.Changes[1].RenamedFrom)
}

func TestReportStore_SaveCreatesDirectory(t *testing.T) {
	store := NewReportStore()
	dir := filepath.Join(t.TempDir(), "deep", "reports")

	require.NoError(t, store.Save(m.Path(dir), nil))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
