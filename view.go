package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/andareed/prepdrill/highlight"
	"github.com/andareed/prepdrill/logging"
	"github.com/andareed/prepdrill/timer"
)

// Screen rows/cols between the terminal origin and the first passage cell:
// app margin (1 row, 2 cols) + title line + viewport border. Mouse hits are
// translated back through these.
const (
	passageTopRows  = 3
	passageLeftCols = 3
)

// passageText is the text highlights attach to. Logical-reasoning questions
// without a separate passage get their stimulus highlighted instead.
func (m *model) passageText() string {
	q, ok := m.data.currentQuestion()
	if !ok {
		return ""
	}
	if q.PassageText != "" {
		return q.PassageText
	}
	return q.QuestionText
}

// wrapSpans word-wraps the passage to the given width, returning one span of
// rune offsets per display line. Newlines end a span; every other rune lands
// in exactly one span, which is what makes click-to-offset mapping exact.
func wrapSpans(runes []rune, width int) []lineSpan {
	if width < 1 {
		width = 1
	}
	var spans []lineSpan
	lineStart := 0
	lastSpace := -1
	i := 0
	for i < len(runes) {
		if runes[i] == '\n' {
			spans = append(spans, lineSpan{start: lineStart, end: i})
			i++
			lineStart = i
			lastSpace = -1
			continue
		}
		if i-lineStart == width {
			if lastSpace > lineStart {
				// break after the last space so words stay whole
				spans = append(spans, lineSpan{start: lineStart, end: lastSpace + 1})
				lineStart = lastSpace + 1
			} else {
				spans = append(spans, lineSpan{start: lineStart, end: i})
				lineStart = i
			}
			lastSpace = -1
			i = lineStart
			continue
		}
		if runes[i] == ' ' {
			lastSpace = i
		}
		i++
	}
	spans = append(spans, lineSpan{start: lineStart, end: len(runes)})
	return spans
}

type runeClass int

const (
	classPlain runeClass = iota
	classSearch
	classHighlight
	classSelection
	classCursor
)

func (m *model) classAt(off int, set highlight.Set) runeClass {
	if m.ui.mode == modeSelect {
		if off == m.ui.sel.cursor {
			return classCursor
		}
		if m.ui.sel.active {
			lo, hi := selBounds(m.ui.sel)
			if off >= lo && off <= hi {
				return classSelection
			}
		}
	}
	if _, ok := set.RangeAt(off); ok {
		return classHighlight
	}
	for _, r := range m.ui.searchMatches {
		if r.Contains(off) {
			return classSearch
		}
	}
	return classPlain
}

func styleFor(c runeClass) lipgloss.Style {
	switch c {
	case classCursor:
		return cursorStyle
	case classSelection:
		return selectionStyle
	case classHighlight:
		return highlightStyle
	case classSearch:
		return searchMatchStyle
	default:
		return passageTextStyle
	}
}

// renderPassageLine styles one wrapped line by grouping consecutive runes of
// the same class, the offset-driven version of splicing styled substrings.
func (m *model) renderPassageLine(runes []rune, span lineSpan, set highlight.Set) string {
	if span.start >= span.end {
		return ""
	}
	var b strings.Builder
	runStart := span.start
	runClass := m.classAt(span.start, set)
	flush := func(end int) {
		b.WriteString(styleFor(runClass).Render(string(runes[runStart:end])))
	}
	for off := span.start + 1; off < span.end; off++ {
		c := m.classAt(off, set)
		if c != runClass {
			flush(off)
			runStart = off
			runClass = c
		}
	}
	flush(span.end)
	return b.String()
}

// refreshPassage recomputes the wrapped layout and pushes the styled passage
// into the viewport.
func (m *model) refreshPassage() {
	if !m.ready {
		return
	}
	text := m.passageText()
	runes := []rune(text)
	m.ui.lineSpans = wrapSpans(runes, m.ui.passageWidth)

	set := m.data.currentHighlights()
	lines := make([]string, len(m.ui.lineSpans))
	for i, span := range m.ui.lineSpans {
		lines[i] = m.renderPassageLine(runes, span, set)
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))

	if m.ui.mode == modeSelect {
		m.ensureOffsetVisible(m.ui.sel.cursor)
	}
}

// ensureOffsetVisible scrolls the viewport so the line holding the offset is
// on screen.
func (m *model) ensureOffsetVisible(off int) {
	line := m.lineOf(off)
	if line < 0 {
		return
	}
	if line < m.viewport.YOffset {
		m.viewport.SetYOffset(line)
	} else if line >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(line - m.viewport.Height + 1)
	}
}

// lineOf returns the display line holding the offset, -1 if out of layout.
func (m *model) lineOf(off int) int {
	for i, span := range m.ui.lineSpans {
		if off >= span.start && (off < span.end || (span.start == span.end && off == span.start)) {
			return i
		}
	}
	return -1
}

// clickToOffset translates terminal mouse coordinates into a passage rune
// offset. ok=false when the click missed the rendered text.
func (m *model) clickToOffset(x, y int) (int, bool) {
	line := y - passageTopRows + m.viewport.YOffset
	col := x - passageLeftCols
	if line < 0 || line >= len(m.ui.lineSpans) || col < 0 {
		return 0, false
	}
	if line-m.viewport.YOffset >= m.viewport.Height {
		// below the passage box: question panel, footer
		return 0, false
	}
	span := m.ui.lineSpans[line]
	off := span.start + col
	if off >= span.end {
		// past the end of the rendered line
		return 0, false
	}
	return off, true
}

func (m *model) resizeViewport() {
	vpWidth := m.terminalWidth - 6
	if vpWidth < 10 {
		vpWidth = 10
	}
	m.ui.passageWidth = vpWidth

	qLines := lipgloss.Height(m.questionView())
	vpHeight := m.terminalHeight - qLines - 7
	if m.ui.noteOpen {
		vpHeight -= lipgloss.Height(noteArea.Render(m.noteInput.View()))
	}
	if vpHeight < 3 {
		vpHeight = 3
	}

	if m.viewport.Width == 0 {
		m.viewport = newViewport(vpWidth, vpHeight)
	} else {
		m.viewport.Width = vpWidth
		m.viewport.Height = vpHeight
	}
	logging.Debugf("resizeViewport term=%dx%d vp=%dx%d qLines=%d",
		m.terminalWidth, m.terminalHeight, vpWidth, vpHeight, qLines)
}

func newViewport(w, h int) viewport.Model {
	vp := viewport.New(w, h)
	vp.MouseWheelEnabled = false // wheel handled by the model, offsets must stay in sync
	return vp
}

func (m *model) titleView() string {
	q, ok := m.data.currentQuestion()
	if !ok {
		return titleStyle.Render(m.data.deckName)
	}
	marker := ""
	if m.data.notes[q.ID] != "" {
		marker = " [*]"
	}
	label := q.QuestionType
	if q.Difficulty != "" {
		label += " · " + q.Difficulty
	}
	return titleStyle.Render(fmt.Sprintf("%s — %s%s", m.data.deckName, label, marker))
}

func (m *model) questionView() string {
	q, ok := m.data.currentQuestion()
	if !ok {
		return ""
	}

	width := m.ui.passageWidth
	if width < 10 {
		width = 40
	}

	var parts []string
	if q.PassageText != "" {
		// passage shown above; repeat only the stem here
		parts = append(parts, wordwrap.String(q.QuestionText, width))
	}

	chosen := m.data.answers[q.ID]
	for i, choice := range q.AnswerChoices {
		letter := string(rune('A' + i))
		marker := unansweredMarker
		style := choiceStyle
		if chosen == letter {
			marker = answeredMarker
			style = choiceSelectedStyle
		}
		line := fmt.Sprintf("%s %s", marker, wordwrap.String(choice, width-4))
		if m.data.submitted && letter == q.CorrectAnswer {
			line += "  ← correct"
		}
		parts = append(parts, style.Render(line))
	}

	return questionStyle.Render(strings.Join(parts, "\n"))
}

// footerView renders the 2-line footer using local (function-scoped) styles/state.
// width is the rendered content width, so the bars line up with the passage box.
func (m *model) footerView(width int) string {
	logging.Debugf("footerView mode=%d cmd=%d", m.ui.mode, m.ui.command.cmd)
	styles := DefaultFooterStyles()

	footerMode := CmdNone
	modeInput := ""
	switch m.ui.mode {
	case modeView:
		footerMode = CmdNone
	case modeSelect:
		footerMode = CmdSelect
	case modeNote:
		footerMode = CmdNote
	case modeCommand:
		footerMode = m.ui.command.cmd
		modeInput = m.activeCommandLine()
	}

	st := FooterState{
		Mode:        footerMode,
		ModeInput:   modeInput,
		DeckName:    m.data.deckName,
		TimerLabel:  m.timerLabel(),
		TimerLevel:  m.eng.Level(),
		TimerPaused: !m.eng.Running() && !m.eng.Expired(),
		Answered:    m.data.answeredCount(),
		Question:    m.data.current + 1,
		Total:       len(m.data.dr.Questions),
		Legend:      "(? help · v highlight · / search · : jump · # note · S submit)",
	}
	if m.ui.noticeMsg != "" {
		st.StatusMessage = noticeText(m.ui.noticeMsg, m.ui.noticeKind)
	}
	if st.StatusMessage == "" && m.data.dirty {
		st.StatusMessage = "unsaved changes (ctrl+s to save)"
	}

	if logging.IsDebugMode() {
		debug := fmt.Sprintf(" dbg term=%dx%d vp=%dx%d yoff=%d spans=%d cur=%d",
			m.terminalWidth, m.terminalHeight, m.viewport.Width, m.viewport.Height,
			m.viewport.YOffset, len(m.ui.lineSpans), m.ui.sel.cursor,
		)
		st.Legend = st.Legend + " |" + debug
	}

	return RenderFooter(width, st, styles)
}

func (m *model) timerLabel() string {
	secs := m.eng.Seconds()
	label := fmt.Sprintf("%02d:%02d", secs/60, secs%60)
	if m.eng.Mode() == timer.ModeCountdown && m.eng.Expired() {
		return "00:00"
	}
	if !m.eng.Running() && !m.eng.Expired() && !m.eng.StartedAt().IsZero() {
		label += " ⏸"
	}
	return label
}

func (m *model) View() string {
	if !m.ready {
		return "loading..."
	}

	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		w, h := m.terminalWidth, m.terminalHeight
		return lipgloss.Place(
			w, h,
			lipgloss.Center, lipgloss.Center,
			m.activeDialog.View(),
			lipgloss.WithWhitespaceChars(" "),
			lipgloss.WithWhitespaceBackground(lipgloss.Color("236")),
		)
	}

	bordered := passageStyle.Render(m.viewport.View())
	contentW := lipgloss.Width(bordered)

	parts := []string{m.titleView(), bordered, m.questionView()}
	if m.ui.noteOpen {
		parts = append(parts, noteArea.Render(m.noteInput.View()))
	}
	parts = append(parts, m.footerView(contentW)) // always
	return appstyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
