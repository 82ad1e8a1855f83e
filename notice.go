package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type clearNoticeMsg struct{ id int }

// noticeKind classifies transient status messages. The kind decides the icon
// and how long the notice stays up: routine feedback clears fast, problems
// linger, and the time-up notice stays long enough to register while the
// results dialog comes up over it.
type noticeKind int

const (
	noticeInfo noticeKind = iota
	noticeSuccess
	noticeWarn
	noticeError
	noticeTimeUp
)

func (k noticeKind) icon() string {
	switch k {
	case noticeInfo:
		return "ℹ"
	case noticeSuccess:
		return "✓"
	case noticeWarn:
		return "!"
	case noticeError:
		return "×"
	case noticeTimeUp:
		return "⏰"
	default:
		return ""
	}
}

func (k noticeKind) lifetime() time.Duration {
	switch k {
	case noticeWarn, noticeError:
		return 4 * time.Second
	case noticeTimeUp:
		return 6 * time.Second
	default:
		return 2 * time.Second
	}
}

func noticeText(msg string, kind noticeKind) string {
	if msg == "" {
		return ""
	}
	icon := kind.icon()
	if icon == "" {
		return msg
	}
	return icon + " " + msg
}

func (m *model) startNotice(msg string, kind noticeKind) tea.Cmd {
	m.ui.noticeMsg = msg
	m.ui.noticeKind = kind

	// bump sequence to invalidate older timers
	m.ui.noticeSeq++
	id := m.ui.noticeSeq

	// schedule a clear for this specific notice id
	return tea.Tick(kind.lifetime(), func(time.Time) tea.Msg { return clearNoticeMsg{id: id} })
}
