package main

import "github.com/andareed/prepdrill/highlight"

// lineSpan is one wrapped display line of the passage, as rune offsets into
// the passage text. Every passage rune belongs to exactly one span, so mouse
// hits map straight back to offsets.
type lineSpan struct {
	start int
	end   int
}

type selectionState struct {
	active bool
	anchor int
	cursor int
}

type uiState struct {
	mode          mode
	command       CommandInput
	sel           selectionState
	dragging      bool
	noticeMsg     string
	noticeKind    noticeKind
	noticeSeq     int
	tickSeq       int // invalidates scheduled timer ticks after re-init
	timeUp        bool
	noteOpen      bool
	searchQuery   string
	searchMatches []highlight.Range
	lineSpans     []lineSpan
	passageWidth  int
}
