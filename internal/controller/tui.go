package controller

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "lexmod.dev/pkg/lexmod/internal/model"
)

// TUI implements UI using Bubble Tea for interactive terminals. Diffs and
// summaries print like SimpleUI; long survey listings get a scrollable pager.
type TUI struct {
	*SimpleUI
	cmd *cobra.Command
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{SimpleUI: NewSimpleUI(cmd), cmd: cmd}
}

// DisplaySurvey shows the declarator listing, paginated when it does not fit
// the terminal.
func (p *TUI) DisplaySurvey(ctx context.Context, stats []m.DeclaratorStat) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	sorted := make([]m.DeclaratorStat, len(stats))
	copy(sorted, stats)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].File != sorted[j].File {
			return sorted[i].File < sorted[j].File
		}

		return sorted[i].Line < sorted[j].Line
	})

	model := newSurveyModel(sorted)

	output := p.cmd.OutOrStdout()
	if f, ok := output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model.height = height
			model.width = width
		}
	}

	if !model.needsPagination() {
		_, err := fmt.Fprint(output, model.View())
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// surveyModel is the Bubble Tea model for scrolling through declarator rows.
type surveyModel struct {
	stats    []m.DeclaratorStat
	height   int
	width    int
	offset   int
	quitting bool
}

func newSurveyModel(stats []m.DeclaratorStat) surveyModel {
	return surveyModel{stats: stats}
}

func (sm surveyModel) Init() tea.Cmd {
	return nil
}

func (sm surveyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		sm.height = msg.Height
		sm.width = msg.Width

		return sm, nil
	case tea.KeyMsg:
		return sm.handleKeyPress(msg)
	}

	return sm, nil
}

func (sm surveyModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		sm.quitting = true
		return sm, tea.Quit
	default:
	}

	switch msg.String() {
	case "q":
		sm.quitting = true
		return sm, tea.Quit
	case "down", "j":
		sm.offset = min(sm.offset+1, sm.maxOffset())
	case "up", "k":
		sm.offset = max(sm.offset-1, 0)
	case "g", "home":
		sm.offset = 0
	case "G", "end":
		sm.offset = sm.maxOffset()
	case "d", "pgdown":
		sm.offset = min(sm.offset+sm.itemsPerPage(), sm.maxOffset())
	case "u", "pgup":
		sm.offset = max(sm.offset-sm.itemsPerPage(), 0)
	}

	return sm, nil
}

// itemsPerPage calculates how many rows fit on screen after the table header,
// footer and help line.
func (sm surveyModel) itemsPerPage() int {
	if sm.height == 0 {
		return 10
	}

	reserved := 8

	available := sm.height - reserved
	if available < 1 {
		return 1
	}

	return available
}

func (sm surveyModel) maxOffset() int {
	maxOffset := len(sm.stats) - sm.itemsPerPage()
	if maxOffset < 0 {
		return 0
	}

	return maxOffset
}

func (sm surveyModel) needsPagination() bool {
	return sm.height > 0 && len(sm.stats) > sm.itemsPerPage()
}

func (sm surveyModel) View() string {
	if sm.quitting {
		return ""
	}

	var b strings.Builder

	visible := sm.stats
	if sm.needsPagination() {
		end := min(sm.offset+sm.itemsPerPage(), len(sm.stats))
		visible = sm.stats[sm.offset:end]
	}

	b.WriteString(renderSurveyTable(visible))

	if sm.needsPagination() {
		fmt.Fprintf(&b, "\n  %d-%d of %d  •  j/k scroll  •  q quit\n",
			sm.offset+1, sm.offset+len(visible), len(sm.stats))
	}

	return b.String()
}
