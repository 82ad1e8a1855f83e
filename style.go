package main

import "github.com/charmbracelet/lipgloss"

const (
	passageTextFGColor   = "#c0c0c0"
	highlightBGColor     = "#f5c542"
	highlightFGColor     = "#000000"
	selectionBGColor     = "#3a6ea5"
	selectionFGColor     = "#ffffff"
	searchMatchBGColor   = "#5f5f00"
	timerWarningFGColor  = "#ffae42"
	timerCriticalFGColor = "#ff5555"
)

var (
	// Styles
	appstyle = lipgloss.NewStyle().Margin(1, 2)

	titleStyle = lipgloss.NewStyle().Bold(true)

	passageStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))

	passageTextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(passageTextFGColor))

	highlightStyle = lipgloss.NewStyle().
			Background(lipgloss.Color(highlightBGColor)).
			Foreground(lipgloss.Color(highlightFGColor))

	selectionStyle = lipgloss.NewStyle().
			Background(lipgloss.Color(selectionBGColor)).
			Foreground(lipgloss.Color(selectionFGColor))

	cursorStyle = lipgloss.NewStyle().Reverse(true)

	searchMatchStyle = lipgloss.NewStyle().Background(lipgloss.Color(searchMatchBGColor))

	questionStyle = lipgloss.NewStyle().PaddingTop(1)

	choiceStyle         = lipgloss.NewStyle().PaddingLeft(2)
	choiceSelectedStyle = lipgloss.NewStyle().PaddingLeft(2).Bold(true).
				Foreground(lipgloss.Color("#f5c542"))

	answeredMarker   = "✓"
	unansweredMarker = "·"

	noteArea = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("245")). // subtle gray
			Padding(0, 0).BorderLeft(true)
)
