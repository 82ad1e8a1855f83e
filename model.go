package main

import (
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/prepdrill/dialogs"
	"github.com/andareed/prepdrill/drill"
	"github.com/andareed/prepdrill/highlight"
	"github.com/andareed/prepdrill/logging"
	"github.com/andareed/prepdrill/timer"
)

type mode int

const (
	modeView mode = iota
	modeSelect
	modeCommand
	modeNote
)

type model struct {
	data dataState
	ui   uiState

	viewport  viewport.Model
	noteInput textarea.Model

	eng *timer.Engine

	activeDialog dialogs.Dialog

	ready          bool
	terminalWidth  int
	terminalHeight int

	// InitialPath is where progress snapshots go by default.
	InitialPath string
}

func newModel(d *drill.Drill, deckName, deckPath string) *model {
	m := &model{
		data: dataState{
			deckName:   deckName,
			deckPath:   deckPath,
			dr:         d,
			answers:    make(map[string]string),
			highlights: make(map[string]highlight.Set),
			notes:      make(map[string]string),
		},
	}
	return m
}

// InitialiseUI sets up the input widgets and the timer engine. Called once
// after the model data is in place (fresh deck or restored snapshot).
func (m *model) InitialiseUI() {
	na := textarea.New()
	na.Placeholder = "Note for this question..."
	na.CharLimit = 512
	m.noteInput = na

	m.resetTimer()
}

// resetTimer rebuilds the engine from the drill's start instant and bumps the
// tick sequence so any tick already scheduled against the old engine is
// dropped when it lands.
func (m *model) resetTimer() {
	m.ui.tickSeq++
	m.ui.timeUp = false
	m.eng = timer.New(m.data.dr.StartedAt, m.data.dr.TimeLimitSeconds, func() {
		m.ui.timeUp = true
	})
	if m.data.submitted {
		m.eng.Pause()
	}
}

func (m *model) Init() tea.Cmd {
	logging.Debug("prepdrill: model Init")
	return m.scheduleTick()
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// modal dialogs swallow key input first
	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		if handled, mm, cmd := m.updateDialog(msg); handled {
			return mm, cmd
		}
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.terminalWidth = msg.Width
		m.terminalHeight = msg.Height
		m.resizeViewport()
		m.ready = true
		m.refreshPassage()
		return m, nil

	case tickMsg:
		return m.handleTick(msg)

	case clearNoticeMsg:
		if msg.id == m.ui.noticeSeq {
			m.ui.noticeMsg = ""
			m.ui.noticeKind = noticeInfo
		}
		return m, nil

	case dialogs.SaveConfirmedMsg:
		m.activeDialog = nil
		if err := SaveProgress(m, msg.Path); err != nil {
			logging.Warnf("Save failed: %v", err)
			return m, m.startNotice("Save failed: "+err.Error(), noticeError)
		}
		m.InitialPath = msg.Path
		m.data.dirty = false
		return m, m.startNotice("Progress saved to "+msg.Path, noticeSuccess)

	case dialogs.SaveCanceledMsg:
		m.activeDialog = nil
		return m, nil

	case dialogs.ResultsClosedMsg:
		m.activeDialog = nil
		return m, nil

	case dialogs.ExportRequestedMsg:
		m.activeDialog = dialogs.NewExportDialog(defaultExportName(*m), m.data.summary)
		return m, m.activeDialog.Init()

	case dialogs.ExportConfirmedMsg:
		m.activeDialog = nil
		if err := ExportResults(m, msg.Path); err != nil {
			logging.Warnf("Export failed: %v", err)
			return m, m.startNotice("Export failed: "+err.Error(), noticeError)
		}
		return m, m.startNotice("Results exported to "+msg.Path, noticeSuccess)

	case dialogs.ExportCanceledMsg:
		m.activeDialog = nil
		return m, nil
	}

	return m, nil
}

// updateDialog routes messages to the active dialog. Dialog control messages
// (save confirmed etc.) fall through to the main switch.
func (m *model) updateDialog(msg tea.Msg) (bool, tea.Model, tea.Cmd) {
	switch msg.(type) {
	case tea.KeyMsg:
		d, cmd := m.activeDialog.Update(msg)
		m.activeDialog = d
		return true, m, cmd
	}
	return false, m, nil
}

func (m *model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.ui.mode {
	case modeView:
		return m.handleViewModeKey(msg)
	case modeSelect:
		return m.handleSelectModeKey(msg)
	case modeCommand:
		return m.handleCommandKey(msg)
	case modeNote:
		return m.handleNoteKey(msg)
	}

	return m, nil
}

func (m *model) handleViewModeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "a", "b", "c", "d", "e":
		return m, m.answerKey(msg.String())

	case "n", "right":
		m.gotoQuestion(m.data.current + 1)
	case "p", "left":
		m.gotoQuestion(m.data.current - 1)

	case "v":
		m.enterSelectMode()
		logging.Debug("Entering Mode: Select")

	case "y":
		return m, m.copyHighlights()

	case "#":
		m.enterNoteMode()
		logging.Debug("Entering Mode: Note")

	case ":", "/":
		m.ui.mode = modeCommand
		m.ui.command = CommandInput{cmd: CommandFromPrefix([]rune(msg.String())[0])}
		logging.Debugf("Entering Mode: Command (%s)", msg.String())

	case " ":
		return m, m.togglePause()

	case "S":
		return m, m.submitDrill()

	case "ctrl+s":
		m.openSaveDialog()
		return m, m.activeDialog.Init()

	case "?":
		m.activeDialog = dialogs.NewHelpDialog(Keys.Legend())

	case "down", "j":
		m.viewport.LineDown(1)
	case "up", "k":
		m.viewport.LineUp(1)
	case "pgdown", "f":
		m.viewport.HalfViewDown()
	case "pgup", "u":
		m.viewport.HalfViewUp()
	}

	if m.ready {
		m.refreshPassage()
	}
	return m, nil
}

func (m *model) handleNoteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg.String() {
	case "enter", "esc":
		if m.noteInput.Focused() {
			m.setNote(m.noteInput.Value())
			m.ui.mode = modeView
			m.ui.noteOpen = false
			m.noteInput.Blur()
		}
		return m, cmd
	default:
		m.noteInput, cmd = m.noteInput.Update(msg)
		return m, cmd
	}
}

func (m *model) enterNoteMode() {
	q, ok := m.data.currentQuestion()
	if !ok {
		return
	}
	m.ui.mode = modeNote
	m.ui.noteOpen = true
	m.noteInput.SetValue(m.data.notes[q.ID])
	m.noteInput.Focus()
}

func (m *model) setNote(note string) {
	q, ok := m.data.currentQuestion()
	if !ok {
		return
	}
	if note == "" {
		delete(m.data.notes, q.ID)
		logging.Infof("Cleared note on question %s", q.ID)
	} else {
		m.data.notes[q.ID] = note
		logging.Infof("Set note on question %s (%d chars)", q.ID, len(note))
	}
	m.data.dirty = true
}

func (m *model) answerKey(letter string) tea.Cmd {
	if m.data.submitted {
		return m.startNotice("Drill already submitted", noticeWarn)
	}
	if m.eng.Expired() {
		return m.startNotice("Time is up, answers are locked", noticeWarn)
	}
	m.data.answerCurrent(upperLetter(letter))
	m.refreshPassage()
	return nil
}

func (m *model) gotoQuestion(idx int) {
	if idx < 0 || idx >= len(m.data.dr.Questions) {
		return
	}
	m.data.current = idx
	m.ui.sel = selectionState{}
	m.ui.searchQuery = ""
	m.ui.searchMatches = nil
	m.viewport.GotoTop()
	m.resizeViewport()
	m.refreshPassage()
}

func (m *model) togglePause() tea.Cmd {
	if m.eng.Expired() || m.data.submitted {
		return nil
	}
	if m.eng.Running() {
		m.eng.Pause()
		logging.Infof("Timer paused at %d seconds", m.eng.Seconds())
		return m.startNotice("Timer paused", noticeInfo)
	}
	m.eng.Resume()
	logging.Infof("Timer resumed")
	return tea.Batch(
		m.startNotice("Timer resumed", noticeInfo),
		m.scheduleTick(),
	)
}

func (m *model) submitDrill() tea.Cmd {
	if m.data.submitted {
		m.activeDialog = dialogs.NewResultsDialog(m.data.summary, m.elapsedSeconds())
		return nil
	}
	m.data.summary = drill.Score(m.data.dr.Questions, m.data.answers)
	m.data.submitted = true
	m.data.dr.Complete(time.Now())
	m.eng.Pause()
	m.data.dirty = true
	logging.Infof("Drill %s submitted: %.0f%% (%d/%d)",
		m.data.dr.DrillID, m.data.summary.ScorePercentage,
		m.data.summary.Correct, m.data.summary.TotalQuestions)
	m.activeDialog = dialogs.NewResultsDialog(m.data.summary, m.elapsedSeconds())
	return nil
}

// elapsedSeconds is wall time spent on the drill, for the results screen.
func (m *model) elapsedSeconds() int {
	if m.eng.Mode() == timer.ModeCountdown {
		return m.eng.Limit() - m.eng.Seconds()
	}
	return m.eng.Seconds()
}

func (m *model) openSaveDialog() {
	m.activeDialog = dialogs.NewSaveDialog(defaultSaveName(*m), "")
}

func upperLetter(s string) string {
	if len(s) == 1 && s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0] - 'a' + 'A')
	}
	return s
}
