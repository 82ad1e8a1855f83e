package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/prepdrill/logging"
)

// jumpToQuestion moves to the 1-based question number.
func (m *model) jumpToQuestion(n int) tea.Cmd {
	logging.Debugf("jumpToQuestion %d", n)
	if n <= 0 || n > len(m.data.dr.Questions) {
		return m.startNotice(fmt.Sprintf("Question %d out of bounds", n), noticeWarn)
	}
	m.gotoQuestion(n - 1)
	return nil
}
