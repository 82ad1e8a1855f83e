package main

import (
	"fmt"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/prepdrill/highlight"
	"github.com/andareed/prepdrill/logging"
)

// findMatches scans for case-insensitive occurrences of query, as rune-offset
// ranges. Rune-by-rune lowering keeps offsets aligned with the passage.
func findMatches(text, query string) []highlight.Range {
	t := []rune(text)
	q := []rune(query)
	if len(q) == 0 || len(q) > len(t) {
		return nil
	}
	var out []highlight.Range
	for i := 0; i+len(q) <= len(t); i++ {
		match := true
		for j := range q {
			if unicode.ToLower(t[i+j]) != unicode.ToLower(q[j]) {
				match = false
				break
			}
		}
		if match {
			out = append(out, highlight.Range{Start: i, End: i + len(q)})
			i += len(q) - 1
		}
	}
	return out
}

func (m *model) searchPassage(query string) tea.Cmd {
	if query == "" {
		m.ui.searchQuery = ""
		m.ui.searchMatches = nil
		m.refreshPassage()
		return nil
	}

	matches := findMatches(m.passageText(), query)
	m.ui.searchQuery = query
	m.ui.searchMatches = matches
	logging.Infof("Search %q: %d matches", query, len(matches))

	if len(matches) == 0 {
		m.refreshPassage()
		return m.startNotice("No matches for "+query, noticeWarn)
	}

	m.ensureOffsetVisible(matches[0].Start)
	m.refreshPassage()
	return m.startNotice(fmt.Sprintf("%d matches", len(matches)), noticeInfo)
}
