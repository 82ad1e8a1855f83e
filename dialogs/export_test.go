package dialogs

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andareed/prepdrill/drill"
)

func testSummary() drill.Summary {
	return drill.Summary{
		TotalQuestions:  10,
		Correct:         5,
		Incorrect:       3,
		Skipped:         2,
		ScorePercentage: 50,
	}
}

func TestExportConfirmAppendsJSONExtension(t *testing.T) {
	d := NewExportDialog("session_report", testSummary())

	_, cmd := d.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	msg, ok := cmd().(ExportConfirmedMsg)
	require.True(t, ok)
	assert.Equal(t, "session_report.json", msg.Path)
}

func TestExportConfirmKeepsExplicitExtension(t *testing.T) {
	d := NewExportDialog("session_report.json", testSummary())

	_, cmd := d.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	msg, ok := cmd().(ExportConfirmedMsg)
	require.True(t, ok)
	assert.Equal(t, "session_report.json", msg.Path)
}

func TestExportEscCancels(t *testing.T) {
	d := NewExportDialog("r", testSummary())

	_, cmd := d.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	_, ok := cmd().(ExportCanceledMsg)
	assert.True(t, ok)
}

func TestExportShowsScoreline(t *testing.T) {
	d := NewExportDialog("r", testSummary())
	view := d.View()
	assert.Contains(t, view, "Score 50%")
	assert.Contains(t, view, "5/10 correct")
	assert.Contains(t, view, "2 skipped")
}
