package controller

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "lexmod.dev/pkg/lexmod/internal/model"
)

func newBufferedCmd() (*cobra.Command, *bytes.Buffer) {
	cmd := &cobra.Command{Use: "test"}
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})

	return cmd, out
}

func TestSimpleUI_DisplaySurvey(t *testing.T) {
	cmd, out := newBufferedCmd()
	ui := NewSimpleUI(cmd)

	stats := []m.DeclaratorStat{
		{File: "b.js", Name: "later", Line: 3, ScopeKind: "program", References: 2},
		{File: "a.js", Name: "dead", Line: 1, ScopeKind: "function", References: 0, Dead: true},
	}

	require.NoError(t, ui.DisplaySurvey(context.Background(), stats))

	rendered := out.String()
	assert.Contains(t, rendered, "dead")
	assert.Contains(t, rendered, "later")
	assert.Contains(t, rendered, "Total 2")
	assert.Contains(t, rendered, "1 dead")
	assert.NotContains(t, rendered, "TOTAL", "footer casing stays as written")

	// Rows sort by file then line.
	assert.Less(t, bytes.Index(out.Bytes(), []byte("a.js")), bytes.Index(out.Bytes(), []byte("b.js")))
}

func TestSimpleUI_DisplaySurvey_CancelledContext(t *testing.T) {
	cmd, out := newBufferedCmd()
	ui := NewSimpleUI(cmd)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := ui.DisplaySurvey(ctx, nil)
	require.Error(t, err)
	assert.Empty(t, out.String())
}

func TestSimpleUI_DisplayChange(t *testing.T) {
	t.Run("skips untouched files", func(t *testing.T) {
		cmd, out := newBufferedCmd()
		ui := NewSimpleUI(cmd)

		ui.DisplayChange(context.Background(), m.Change{
			Source: m.Source{Origin: &m.File{ShortPath: "app.js"}},
		})

		assert.Empty(t, out.String())
	})

	t.Run("prints diff in dry-run mode", func(t *testing.T) {
		cmd, out := newBufferedCmd()
		ui := NewSimpleUI(cmd)

		ui.DisplayChange(context.Background(), m.Change{
			Source: m.Source{Origin: &m.File{ShortPath: "app.js"}},
			Edits:  2,
			Diff:   "-var a = 1;\n+var b = 1;\n",
		})

		assert.Contains(t, out.String(), "would rewrite")
		assert.Contains(t, out.String(), "app.js")
		assert.Contains(t, out.String(), "+var b = 1;")
	})

	t.Run("confirms written files", func(t *testing.T) {
		cmd, out := newBufferedCmd()
		ui := NewSimpleUI(cmd)

		ui.DisplayChange(context.Background(), m.Change{
			Source:  m.Source{Origin: &m.File{ShortPath: "app.js"}},
			Edits:   2,
			Written: true,
		})

		assert.Contains(t, out.String(), "rewrote")
		assert.Contains(t, out.String(), "(2 edits)")
	})
}

func TestSimpleUI_DisplaySummary(t *testing.T) {
	cmd, out := newBufferedCmd()
	ui := NewSimpleUI(cmd)

	ui.DisplaySummary(context.Background(), []m.Change{
		{Edits: 3},
		{Edits: 0},
		{Edits: 1},
	})

	assert.Contains(t, out.String(), "2 of 3 file(s) changed, 4 edit(s)")
}

func TestNewUI(t *testing.T) {
	cmd, _ := newBufferedCmd()

	_, isTUI := NewUI(cmd, true).(*TUI)
	assert.True(t, isTUI)

	_, isSimple := NewUI(cmd, false).(*SimpleUI)
	assert.True(t, isSimple)
}
