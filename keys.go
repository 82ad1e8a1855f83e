package main

import (
	"github.com/charmbracelet/bubbles/key"
)

type Keymap struct {
	Quit           key.Binding
	SelectMode     key.Binding
	RemoveAtCursor key.Binding
	CopyHighlights key.Binding
	Answer         key.Binding
	NextQuestion   key.Binding
	PrevQuestion   key.Binding
	JumpToQuestion key.Binding
	Search         key.Binding
	EditNote       key.Binding
	PauseResume    key.Binding
	Submit         key.Binding
	SaveProgress   key.Binding
	OpenHelp       key.Binding
	ScrollUp       key.Binding
	ScrollDown     key.Binding
}

var Keys = Keymap{
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	SelectMode: key.NewBinding(
		key.WithKeys("v"),
		key.WithHelp("v", "highlight mode"),
	),
	RemoveAtCursor: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "remove highlight under cursor"),
	),
	CopyHighlights: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy highlighted text"),
	),
	Answer: key.NewBinding(
		key.WithKeys("a", "b", "c", "d", "e"),
		key.WithHelp("a-e", "choose answer"),
	),
	NextQuestion: key.NewBinding(
		key.WithKeys("n", "right"),
		key.WithHelp("n/→", "next question"),
	),
	PrevQuestion: key.NewBinding(
		key.WithKeys("p", "left"),
		key.WithHelp("p/←", "previous question"),
	),
	JumpToQuestion: key.NewBinding(
		key.WithKeys(":"),
		key.WithHelp(":", "jump to question"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search passage"),
	),
	EditNote: key.NewBinding(
		key.WithKeys("#"),
		key.WithHelp("#", "edit note for question"),
	),
	PauseResume: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "pause/resume timer"),
	),
	Submit: key.NewBinding(
		key.WithKeys("S"),
		key.WithHelp("S", "submit drill"),
	),
	SaveProgress: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "save progress"),
	),
	OpenHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help / keys"),
	),
	ScrollUp: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "scroll passage up"),
	),
	ScrollDown: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "scroll passage down"),
	),
}

func (k Keymap) Legend() []key.Binding {
	return []key.Binding{
		k.Quit,
		k.SelectMode,
		k.RemoveAtCursor,
		k.CopyHighlights,
		k.Answer,
		k.NextQuestion,
		k.PrevQuestion,
		k.JumpToQuestion,
		k.Search,
		k.EditNote,
		k.PauseResume,
		k.Submit,
		k.SaveProgress,
	}
}
