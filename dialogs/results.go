package dialogs

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/andareed/prepdrill/drill"
)

type ResultsClosedMsg struct{}

// Results shows the graded outcome of a submitted drill.
type Results struct {
	visible bool
	summary drill.Summary
	elapsed int // seconds spent, from the timer
}

func NewResultsDialog(summary drill.Summary, elapsedSeconds int) *Results {
	return &Results{
		visible: true,
		summary: summary,
		elapsed: elapsedSeconds,
	}
}

func (d Results) Init() tea.Cmd { return nil }

func (d *Results) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	switch m := msg.(type) {
	case tea.KeyMsg:
		switch m.String() {
		case "enter", "esc", "q":
			d.visible = false
			return d, func() tea.Msg { return ResultsClosedMsg{} }
		case "e":
			d.visible = false
			return d, func() tea.Msg { return ExportRequestedMsg{} }
		}
	}
	return d, nil
}

func (d Results) View() string {
	if !d.visible {
		return ""
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("252")).
		BorderBackground(lipgloss.Color("236")).
		Padding(1, 2).
		Width(60)

	title := lipgloss.NewStyle().Bold(true).Render("Drill results")

	s := d.summary
	var lines []string
	lines = append(lines, fmt.Sprintf("Score      %.0f%%  (%d/%d)", s.ScorePercentage, s.Correct, s.TotalQuestions))
	lines = append(lines, fmt.Sprintf("Incorrect  %d", s.Incorrect))
	lines = append(lines, fmt.Sprintf("Skipped    %d", s.Skipped))
	lines = append(lines, fmt.Sprintf("Time       %02d:%02d", d.elapsed/60, d.elapsed%60))

	if len(s.Skills) > 0 {
		lines = append(lines, "", "By skill:")
		names := make([]string, 0, len(s.Skills))
		for name := range s.Skills {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			tally := s.Skills[name]
			lines = append(lines, fmt.Sprintf("  %-24s %d/%d", name, tally.Correct, tally.Total))
		}
	}

	hint := lipgloss.NewStyle().Faint(true).Render("e export report • enter/esc to close")
	content := fmt.Sprintf("%s\n\n%s\n\n%s", title, strings.Join(lines, "\n"), hint)
	return box.Render(content)
}

func (d *Results) Show()          { d.visible = true }
func (d *Results) Hide()          { d.visible = false }
func (d *Results) Focus() tea.Cmd { return nil }
func (d *Results) Blur()          {}
func (d Results) IsVisible() bool { return d.visible }
