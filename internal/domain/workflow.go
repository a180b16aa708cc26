// Package domain contains the core transform workflow: collecting script
// files, running the resolution engine over each, and routing results to the
// UI and report store.
package domain

import (
	"context"
	"fmt"

	"lexmod.dev/pkg/lexmod/internal/adapter"
	"lexmod.dev/pkg/lexmod/internal/controller"
	m "lexmod.dev/pkg/lexmod/internal/model"
)

// CommonArgs are shared by every transform command.
type CommonArgs struct {
	Paths   []m.Path
	Exclude []string
	Write   bool   // apply edits in place; otherwise print diffs
	Threads int    // parallel file workers
	Reports m.Path // when set, save a yaml run summary there
}

// RenameArgs drive the rename workflow.
type RenameArgs struct {
	CommonArgs
	OldName string
	NewName string
	// RequireModule restricts the rename to declarators initialized by
	// require("<RequireModule>").
	RequireModule string
}

// PruneArgs drive the unreferenced-declarator elimination workflow.
type PruneArgs struct {
	CommonArgs
}

// SurveyArgs drive the declarator listing workflow.
type SurveyArgs struct {
	Paths   []m.Path
	Exclude []string
	Threads int
}

// Workflow defines the operations behind the CLI commands.
type Workflow interface {
	Rename(ctx context.Context, args RenameArgs) error
	Prune(ctx context.Context, args PruneArgs) error
	Survey(ctx context.Context, args SurveyArgs) error
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.ScriptFileAdapter
	adapter.ReportStore
	controller.UI
}

// NewWorkflow creates a Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	scriptAdapter adapter.ScriptFileAdapter,
	reportStore adapter.ReportStore,
	ui controller.UI,
) Workflow {
	return &workflow{
		SourceFSAdapter:   fsAdapter,
		ScriptFileAdapter: scriptAdapter,
		ReportStore:       reportStore,
		UI:                ui,
	}
}

func (w *workflow) validate() error {
	if w.SourceFSAdapter == nil || w.ScriptFileAdapter == nil {
		return fmt.Errorf("missing adapters")
	}

	return nil
}
