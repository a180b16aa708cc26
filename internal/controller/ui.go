// Package controller provides output adapters for displaying transform results.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "lexmod.dev/pkg/lexmod/internal/model"
)

// UI defines the interface for displaying survey listings and transform
// results. Implementations can use different output methods (simple text,
// TUI, etc).
type UI interface {
	// DisplaySurvey renders the declarator listing produced by `lexmod list`.
	DisplaySurvey(ctx context.Context, stats []m.DeclaratorStat) error

	// DisplayChange renders the outcome for a single file: its unified diff
	// in dry-run mode, or a confirmation when written in place.
	DisplayChange(ctx context.Context, change m.Change)

	// DisplaySummary renders the run totals after all files are processed.
	DisplaySummary(ctx context.Context, changes []m.Change)
}

// IsTTY reports whether f is an interactive terminal.
func IsTTY(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// NewUI selects the TUI for interactive terminals and the plain writer
// otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}
