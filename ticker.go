package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/prepdrill/logging"
)

// tickMsg carries the sequence it was scheduled under. Re-initialising the
// timer bumps the sequence, so a tick from a torn-down session lands and is
// ignored instead of advancing the new one.
type tickMsg struct{ seq int }

func (m *model) scheduleTick() tea.Cmd {
	seq := m.ui.tickSeq
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return tickMsg{seq: seq} })
}

func (m *model) handleTick(msg tickMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.ui.tickSeq {
		logging.Debugf("Dropping stale tick (seq %d, want %d)", msg.seq, m.ui.tickSeq)
		return m, nil
	}

	m.eng.Tick()

	var cmds []tea.Cmd
	if m.ui.timeUp {
		// the engine's expiry callback fires exactly once per session
		m.ui.timeUp = false
		logging.Infof("Drill time limit reached, submitting")
		cmds = append(cmds, m.startNotice("Time is up", noticeTimeUp))
		cmds = append(cmds, m.submitDrill())
	}
	if m.eng.Running() {
		cmds = append(cmds, m.scheduleTick())
	}
	return m, tea.Batch(cmds...)
}
