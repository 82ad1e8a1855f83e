package dialogs

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/andareed/prepdrill/drill"
)

// --- Messages ---------------------------------------------------------------

type (
	ExportRequestedMsg struct{}
	ExportConfirmedMsg struct{ Path string }
	ExportCanceledMsg  struct{}
)

// --- Export dialog (modal) --------------------------------------------------

// Export asks for a path to write the graded results report to. It carries
// the summary it is about to export, so it only ever comes up from the
// results flow of a submitted drill.
type Export struct {
	input     textinput.Model
	visible   bool
	scoreline string
}

func (d Export) Init() tea.Cmd { return d.input.Focus() }

func NewExportDialog(defaultName string, summary drill.Summary) *Export {
	ti := textinput.New()
	ti.Placeholder = defaultName
	ti.Prompt = "Export results as: "
	ti.CharLimit = 256
	ti.Width = 50
	if defaultName != "" {
		ti.SetValue(defaultName)
	}
	return &Export{
		input:   ti,
		visible: true,
		scoreline: fmt.Sprintf("Score %.0f%% · %d/%d correct · %d skipped",
			summary.ScorePercentage, summary.Correct, summary.TotalQuestions, summary.Skipped),
	}
}

func (d *Export) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if !d.visible {
		return d, nil
	}
	switch m := msg.(type) {
	case tea.KeyMsg:
		switch m.String() {
		case "enter":
			log.Printf("ExportDialog: enter pressed, confirming path\n")
			val := d.input.Value()
			if val == "" {
				// fall back to placeholder if user left it blank
				val = d.input.Placeholder
			}
			if val == "" {
				return d, nil
			}
			// reports are always JSON; add the extension when it was left off
			if filepath.Ext(val) == "" {
				val += ".json"
			}
			return d, func() tea.Msg { return ExportConfirmedMsg{Path: val} }
		case "esc":
			log.Printf("ExportDialog: esc pressed, cancelling\n")
			return d, func() tea.Msg { return ExportCanceledMsg{} }
		}
	}
	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return d, cmd
}

func (d Export) View() string {
	if !d.visible {
		return ""
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("252")).
		BorderBackground(lipgloss.Color("236")). // match the overlay
		Padding(1, 2).
		Width(60)

	score := lipgloss.NewStyle().Bold(true).Render(d.scoreline)
	help := lipgloss.NewStyle().
		Faint(true).
		Render("enter to export • esc to cancel")

	content := fmt.Sprintf("%s\n\n%s\n\n%s", score, d.input.View(), help)
	return box.Render(content)
}

func (d *Export) Show() {
	d.visible = true
	d.input.Focus()
}

func (d *Export) Hide() {
	d.visible = false
	d.input.Blur()
}

func (d *Export) Focus() tea.Cmd { return d.input.Focus() }
func (d *Export) Blur()          { d.input.Blur() }
func (d Export) IsVisible() bool { return d.visible }
