package main

import "fmt"

type Command int

const (
	CmdNone Command = iota
	CmdJump
	CmdSearch
	CmdNote
	CmdSelect
)

type CommandInput struct {
	cmd Command
	buf string
}

func CommandFromPrefix(r rune) Command {
	switch r {
	case ':':
		return CmdJump
	case '/':
		return CmdSearch
	case '#':
		return CmdNote
	default:
		return CmdNone
	}
}

func (m *model) commandBadge(cmd Command) string {
	switch cmd {
	case CmdSearch:
		return "[SEARCH]"
	case CmdJump:
		return "[JUMP]"
	case CmdNote:
		return "[NOTE]"
	case CmdSelect:
		return "[SELECT]"
	default:
		return "[NORMAL]"
	}
}

func (m *model) commandPrompt(cmd Command) string {
	switch cmd {
	case CmdSearch:
		return "search: "
	case CmdJump:
		return "question: "
	case CmdNote:
		return "note: "
	default:
		return ""
	}
}

func (m *model) commandHintsLine(cmd Command) string {
	switch cmd {
	case CmdSelect:
		return "arrows: extend   enter: highlight   x: remove   esc: cancel"
	default:
		return "enter: apply   esc: cancel"
	}
}

func (m *model) idleCommandHintsLine() string {
	return "/ search   : jump   v highlight   # note   a-e answer"
}

// activeCommandLine returns the command prompt text for the footer status line.
func (m *model) activeCommandLine() string {
	badge := m.commandBadge(m.ui.command.cmd)
	prompt := m.commandPrompt(m.ui.command.cmd)
	return badge + " " + prompt + m.ui.command.buf
}

func (m *model) commandRightContext() string {
	return fmt.Sprintf("%d/%d",
		m.data.current+1,
		len(m.data.dr.Questions),
	)
}
