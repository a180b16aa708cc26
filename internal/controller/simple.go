package controller

import (
	"bytes"
	"context"
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "lexmod.dev/pkg/lexmod/internal/model"
)

var (
	writtenStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dryRunStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	deadStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplaySurvey prints the declarator listing as a table.
func (s *SimpleUI) DisplaySurvey(ctx context.Context, stats []m.DeclaratorStat) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderSurveyTable(stats))

	return nil
}

func renderSurveyTable(stats []m.DeclaratorStat) string {
	sorted := make([]m.DeclaratorStat, len(stats))
	copy(sorted, stats)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].File != sorted[j].File {
			return sorted[i].File < sorted[j].File
		}

		return sorted[i].Line < sorted[j].Line
	})

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	// Header and footer text renders as written, not auto-uppercased.
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"File", "Name", "Line", "Scope", "Refs"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT,
	})

	dead := 0

	for _, stat := range sorted {
		refs := fmt.Sprintf("%d", stat.References)
		if stat.Dead {
			refs = deadStyle.Render(refs)
			dead++
		}

		table.Append([]string{
			string(stat.File), stat.Name,
			fmt.Sprintf("%d", stat.Line), stat.ScopeKind, refs,
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total %d", len(sorted)), "", "", "",
		fmt.Sprintf("%d dead", dead),
	})

	table.Render()

	return tableBuffer.String()
}

// DisplayChange prints a file's diff, or a confirmation line when written.
func (s *SimpleUI) DisplayChange(ctx context.Context, change m.Change) {
	if err := ctx.Err(); err != nil {
		return
	}

	if !change.Changed() {
		return
	}

	path := ""
	if change.Source.Origin != nil {
		path = string(change.Source.Origin.ShortPath)
	}

	if change.Written {
		s.printf("%s %s (%d edits)\n", writtenStyle.Render("rewrote"), path, change.Edits)
		return
	}

	s.printf("%s %s (%d edits)\n", dryRunStyle.Render("would rewrite"), path, change.Edits)

	if change.Diff != "" {
		s.printf("%s\n", change.Diff)
	}
}

// DisplaySummary prints the run totals.
func (s *SimpleUI) DisplaySummary(ctx context.Context, changes []m.Change) {
	if err := ctx.Err(); err != nil {
		return
	}

	changed, edits := 0, 0

	for _, change := range changes {
		if change.Changed() {
			changed++
			edits += change.Edits
		}
	}

	s.printf("%d of %d file(s) changed, %d edit(s)\n", changed, len(changes), edits)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
