package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/andareed/prepdrill/timer"
)

type FooterState struct {
	Mode      Command
	ModeInput string

	DeckName string

	TimerLabel  string
	TimerLevel  timer.Level
	TimerPaused bool

	Answered int
	Question int
	Total    int

	StatusMessage string
	Legend        string
}

type FooterStyles struct {
	BarBG      lipgloss.Color
	StatusBG   lipgloss.Color
	ModePillBG lipgloss.Color
	ModePillFG lipgloss.Color
	DeckNameFG lipgloss.Color
	TextFG     lipgloss.Color
	DimFG      lipgloss.Color
	StatusFG   lipgloss.Color
	LegendFG   lipgloss.Color
	WarnFG     lipgloss.Color
	CritFG     lipgloss.Color
}

func DefaultFooterStyles() FooterStyles {
	return FooterStyles{
		BarBG:      lipgloss.Color("#2b2b2b"),
		StatusBG:   lipgloss.Color("#000000"),
		ModePillBG: lipgloss.Color("#ff9f1c"),
		ModePillFG: lipgloss.Color("#000000"),
		DeckNameFG: lipgloss.Color("#e0e0e0"),
		TextFG:     lipgloss.Color("#cfcfcf"),
		DimFG:      lipgloss.Color("#a0a0a0"),
		StatusFG:   lipgloss.Color("#9a9a9a"),
		LegendFG:   lipgloss.Color("#b0b0b0"),
		WarnFG:     lipgloss.Color(timerWarningFGColor),
		CritFG:     lipgloss.Color(timerCriticalFGColor),
	}
}

func RenderFooter(width int, st FooterState, styles FooterStyles) string {
	if width <= 0 {
		return ""
	}
	if st.Legend == "" {
		st.Legend = "(? help · v highlight · a-e answer)"
	}
	if st.Question < 0 {
		st.Question = 0
	}
	if st.Total < 0 {
		st.Total = 0
	}

	line1 := renderControlBar(width, st, styles)
	line2 := renderStatusBar(width, st, styles)
	return line1 + "\n" + line2
}

func renderControlBar(width int, st FooterState, styles FooterStyles) string {
	gapW := 1
	timerValW := 9
	answeredW := 5
	statusFixedW := runeWidth(fmt.Sprintf("[TIME: %s] · [ANSWERED: %s]", strings.Repeat("X", timerValW), strings.Repeat("X", answeredW)))

	rightPlain := fmt.Sprintf(" Q %d/%d", st.Question, st.Total)
	rightPlain = truncatePlain(rightPlain, width)
	rightW := runeWidth(rightPlain)

	leftW := width - rightW
	if leftW < 0 {
		leftW = 0
	}

	modeColW := clamp(leftW/4, 20, 36)
	statusColW := statusFixedW
	deckColW := leftW - modeColW - statusColW - 2*gapW
	if deckColW < 0 {
		deficit := -deckColW
		if statusColW > 10 {
			shrink := min(deficit, statusColW-10)
			statusColW -= shrink
			deficit -= shrink
		}
		if deficit > 0 && modeColW > 10 {
			shrink := min(deficit, modeColW-10)
			modeColW -= shrink
			deficit -= shrink
		}
		deckColW = leftW - modeColW - statusColW - 2*gapW
		if deckColW < 0 {
			modeColW = max(0, modeColW+deckColW)
			deckColW = 0
		}
	}

	modeText := commandLabel(st.Mode)
	innerModeW := max(0, modeColW-2)
	modePillW := modeColW
	if runeWidth(modeText) <= innerModeW {
		modePillW = runeWidth(modeText) + 2
	}
	modeSlack := modeColW - modePillW
	if modeSlack > 0 {
		modeColW = modePillW
		deckColW += modeSlack
	}

	modeSeg := renderModeSegment(modeColW, st, styles)
	deckSeg := renderDeckSegment(deckColW, st, styles)
	statusSeg := renderTimerAnsweredSegment(statusColW, st, styles, timerValW, answeredW)

	left := modeSeg + strings.Repeat(" ", gapW) + deckSeg + strings.Repeat(" ", gapW) + statusSeg
	leftWActual := modeColW + deckColW + statusColW + 2*gapW
	if leftWActual < leftW {
		left += strings.Repeat(" ", leftW-leftWActual)
	}

	linePlain := left + rightPlain
	return applyBar(linePlain, styles.BarBG, styles.TextFG)
}

func renderStatusBar(width int, st FooterState, styles FooterStyles) string {
	legendPlain := truncatePlain(st.Legend, width)
	legendW := runeWidth(legendPlain)

	leftW := width - legendW
	if leftW < 0 {
		leftW = 0
	}

	msgPlain := truncatePlain(st.StatusMessage, leftW)
	msgPlain = padRightPlain(msgPlain, leftW)

	linePlain := applyFG(msgPlain, styles.StatusFG, styles.StatusFG) + applyFG(legendPlain, styles.LegendFG, styles.StatusFG)
	return applyBar(linePlain, styles.StatusBG, styles.StatusFG)
}

func renderModeSegment(colW int, st FooterState, styles FooterStyles) string {
	if colW <= 0 {
		return ""
	}
	content := commandLabel(st.Mode)
	innerW := max(0, colW-2)
	content = truncatePlain(content, innerW)
	pillPlain := " " + content + " "
	pillPlain = truncatePlain(pillPlain, colW)
	pad := strings.Repeat(" ", colW-runeWidth(pillPlain))

	pill := ansiBg(styles.ModePillBG) + ansiFg(styles.ModePillFG) + pillPlain
	pill += ansiBg(styles.BarBG) + ansiFg(styles.TextFG) + pad
	return pill
}

func renderDeckSegment(colW int, st FooterState, styles FooterStyles) string {
	if colW <= 0 {
		return ""
	}
	name := strings.TrimSpace(st.DeckName)
	if name == "" {
		name = "(no deck)"
	}
	innerW := max(0, colW-2)
	inner := truncatePlain(name, innerW)
	deckPlain := inner
	remaining := colW
	prefix := "▸ "
	mid := " ▸ "
	inputPlain := ""
	if remaining > 0 {
		deckPlain = truncatePlain(prefix+deckPlain, remaining)
		remaining -= runeWidth(deckPlain)
	}
	if remaining > 0 {
		input := strings.TrimSpace(st.ModeInput)
		if input != "" {
			inputPlain = mid + input
			inputPlain = truncatePlain(inputPlain, remaining)
			remaining -= runeWidth(inputPlain)
		}
	}
	if remaining < 0 {
		remaining = 0
	}

	pad := strings.Repeat(" ", remaining)
	return applyFG(deckPlain, styles.DeckNameFG, styles.TextFG) + inputPlain + pad
}

func renderTimerAnsweredSegment(colW int, st FooterState, styles FooterStyles, timerValW, answeredW int) string {
	if colW <= 0 {
		return ""
	}
	timerVal := truncatePlain(strings.TrimSpace(st.TimerLabel), timerValW)
	answered := truncatePlain(fmt.Sprintf("%d", st.Answered), answeredW)

	timerFG := styles.DimFG
	switch st.TimerLevel {
	case timer.LevelWarning:
		timerFG = styles.WarnFG
	case timer.LevelCritical:
		timerFG = styles.CritFG
	}

	prefix := "[TIME: "
	rest := fmt.Sprintf("] · [ANSWERED: %s]", answered)
	plain := prefix + timerVal + rest
	plain = truncatePlain(plain, colW)
	plain = padRightPlain(plain, colW)

	// recolor just the timer value when the whole segment survived truncation
	if runeWidth(prefix+timerVal+rest) <= colW {
		return applyFG(prefix, styles.DimFG, styles.TextFG) +
			applyFG(timerVal, timerFG, styles.TextFG) +
			applyFG(padRightPlain(rest, colW-runeWidth(prefix)-runeWidth(timerVal)), styles.DimFG, styles.TextFG)
	}
	return applyFG(plain, styles.DimFG, styles.TextFG)
}

func applyBar(s string, bg lipgloss.Color, baseFG lipgloss.Color) string {
	return ansiBg(bg) + ansiFg(baseFG) + s + termenv.CSI + "0m"
}

func commandLabel(cmd Command) string {
	switch cmd {
	case CmdJump:
		return "JUMP"
	case CmdSearch:
		return "SEARCH"
	case CmdNote:
		return "NOTE"
	case CmdSelect:
		return "SELECT"
	default:
		return "NORMAL"
	}
}

func applyFG(s string, fg lipgloss.Color, resetFG lipgloss.Color) string {
	return ansiFg(fg) + s + ansiFg(resetFG)
}

func ansiFg(c lipgloss.Color) string {
	return ansiColor(false, c)
}

func ansiBg(c lipgloss.Color) string {
	return ansiColor(true, c)
}

func ansiColor(isBg bool, c lipgloss.Color) string {
	value := string(c)
	if value == "" {
		if isBg {
			return termenv.CSI + "49m"
		}
		return termenv.CSI + "39m"
	}
	profile := lipgloss.ColorProfile()
	tc := profile.Color(value)
	if tc == nil {
		return ""
	}
	return termenv.CSI + tc.Sequence(isBg) + "m"
}

func padRightPlain(s string, w int) string {
	if w <= 0 {
		return ""
	}
	cur := runeWidth(s)
	if cur >= w {
		return s
	}
	return s + strings.Repeat(" ", w-cur)
}

func truncatePlain(s string, w int) string {
	if w <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= w {
		return s
	}
	return string(r[:w])
}

func runeWidth(s string) int {
	return len([]rune(s))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
