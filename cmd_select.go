package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/prepdrill/clipboard"
	"github.com/andareed/prepdrill/highlight"
	"github.com/andareed/prepdrill/logging"
)

func selBounds(s selectionState) (int, int) {
	if s.anchor <= s.cursor {
		return s.anchor, s.cursor
	}
	return s.cursor, s.anchor
}

func (m *model) enterSelectMode() {
	m.ui.mode = modeSelect
	// start on the first visible line so the cursor is on screen
	start := 0
	if m.viewport.YOffset < len(m.ui.lineSpans) {
		start = m.ui.lineSpans[m.viewport.YOffset].start
	}
	m.ui.sel = selectionState{anchor: start, cursor: start}
	m.refreshPassage()
}

func (m *model) exitSelectMode() {
	m.ui.mode = modeView
	m.ui.sel = selectionState{}
	m.refreshPassage()
}

func (m *model) handleSelectModeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if m.ui.sel.active {
			// drop the anchor but stay in select mode
			m.ui.sel.active = false
			m.refreshPassage()
			return m, nil
		}
		m.exitSelectMode()
		return m, nil

	case "v":
		m.ui.sel.active = true
		m.ui.sel.anchor = m.ui.sel.cursor
		m.refreshPassage()
		return m, nil

	case "left", "h":
		m.moveSelCursor(-1)
	case "right", "l":
		m.moveSelCursor(+1)
	case "up", "k":
		m.moveSelCursorLine(-1)
	case "down", "j":
		m.moveSelCursorLine(+1)

	case "enter":
		return m, m.applySelection()

	case "x", "d":
		return m, m.removeHighlightAt(m.ui.sel.cursor)
	}

	return m, nil
}

func (m *model) moveSelCursor(delta int) {
	n := len([]rune(m.passageText()))
	if n == 0 {
		return
	}
	c := m.ui.sel.cursor + delta
	if c < 0 {
		c = 0
	}
	if c > n-1 {
		c = n - 1
	}
	m.ui.sel.cursor = c
	m.refreshPassage()
}

// moveSelCursorLine moves the cursor a display line up or down, keeping the
// column where possible.
func (m *model) moveSelCursorLine(delta int) {
	line := m.lineOf(m.ui.sel.cursor)
	if line < 0 {
		return
	}
	target := line + delta
	if target < 0 || target >= len(m.ui.lineSpans) {
		return
	}
	col := m.ui.sel.cursor - m.ui.lineSpans[line].start
	span := m.ui.lineSpans[target]
	c := span.start + col
	if c >= span.end {
		c = span.end - 1
	}
	if c < span.start {
		c = span.start
	}
	m.ui.sel.cursor = c
	m.refreshPassage()
}

// applySelection turns the anchored selection into a highlight, merging with
// anything it touches.
func (m *model) applySelection() tea.Cmd {
	if !m.ui.sel.active {
		return m.startNotice("Press v to anchor a selection first", noticeInfo)
	}
	text := m.passageText()
	lo, hi := selBounds(m.ui.sel)
	r, ok := highlight.FromSelection(text, lo, hi+1)
	if !ok {
		logging.Warnf("Selection [%d,%d] rejected", lo, hi+1)
		m.exitSelectMode()
		return nil
	}
	before := len(m.data.currentHighlights())
	m.data.setCurrentHighlights(m.data.currentHighlights().Add(r))
	after := len(m.data.currentHighlights())
	logging.Infof("Highlight [%d,%d) applied, %d -> %d ranges", r.Start, r.End, before, after)
	m.exitSelectMode()
	return m.startNotice("Highlighted", noticeSuccess)
}

// removeHighlightAt removes the highlight containing the offset, resolving
// the hit through the fragment midpoint the same way a click does.
func (m *model) removeHighlightAt(hit int) tea.Cmd {
	text := m.passageText()
	set := m.data.currentHighlights()

	off, ok := highlight.ClickOffset(text, set, hit)
	if !ok {
		m.exitSelectMode()
		return nil
	}
	if _, in := set.RangeAt(off); !in {
		m.exitSelectMode()
		return m.startNotice("No highlight there", noticeInfo)
	}
	m.data.setCurrentHighlights(set.RemoveAt(off))
	logging.Infof("Highlight removed at offset %d", off)
	m.exitSelectMode()
	return m.startNotice("Highlight removed", noticeSuccess)
}

func (m *model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.viewport.LineUp(3)
		m.refreshPassage()
		return m, nil
	case tea.MouseButtonWheelDown:
		m.viewport.LineDown(3)
		m.refreshPassage()
		return m, nil
	}

	if msg.Button != tea.MouseButtonLeft && msg.Action != tea.MouseActionRelease {
		return m, nil
	}

	off, onText := m.clickToOffset(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if !onText {
			return m, nil
		}
		m.ui.dragging = true
		m.ui.mode = modeSelect
		m.ui.sel = selectionState{active: true, anchor: off, cursor: off}
		m.refreshPassage()

	case tea.MouseActionMotion:
		if m.ui.dragging && onText {
			m.ui.sel.cursor = off
			m.refreshPassage()
		}

	case tea.MouseActionRelease:
		if !m.ui.dragging {
			return m, nil
		}
		m.ui.dragging = false
		if onText {
			m.ui.sel.cursor = off
		}
		if m.ui.sel.cursor == m.ui.sel.anchor {
			// no drag happened: treat as click-to-remove
			return m, m.removeHighlightAt(m.ui.sel.anchor)
		}
		return m, m.applySelection()
	}

	return m, nil
}

// copyHighlights sends the highlighted excerpts of the current passage to the
// clipboard, in passage order.
func (m *model) copyHighlights() tea.Cmd {
	set := m.data.currentHighlights()
	if len(set) == 0 {
		return m.startNotice("Nothing highlighted", noticeInfo)
	}

	var excerpts []string
	for seg := range highlight.Segments(m.passageText(), set) {
		if seg.Highlighted {
			excerpts = append(excerpts, seg.Text)
		}
	}
	text := joinExcerpts(excerpts)
	if err := clipboard.CopyBest(text); err != nil {
		return m.startNotice("Copy failed: "+err.Error(), noticeError)
	}
	return m.startNotice("Copied highlighted text", noticeSuccess)
}

func joinExcerpts(parts []string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += "\n"
		}
		out += p
	}
	return out
}
