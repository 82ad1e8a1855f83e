package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andareed/prepdrill/drill"
	"github.com/andareed/prepdrill/highlight"
)

func testDataState() *dataState {
	d := drill.New([]drill.Question{
		{ID: "q-1", QuestionText: "Q1?", AnswerChoices: []string{"A) x", "B) y"}, CorrectAnswer: "A"},
		{ID: "q-2", QuestionText: "Q2?", AnswerChoices: []string{"A) x", "B) y"}, CorrectAnswer: "B"},
	}, 100)
	d.Start(time.Now())
	return &dataState{
		deckName:   "deck",
		dr:         d,
		answers:    make(map[string]string),
		highlights: make(map[string]highlight.Set),
		notes:      make(map[string]string),
	}
}

func TestAnswerCurrentToggles(t *testing.T) {
	ds := testDataState()

	ds.answerCurrent("A")
	assert.Equal(t, "A", ds.answers["q-1"])
	assert.Equal(t, 1, ds.answeredCount())
	assert.True(t, ds.dirty)

	// a different letter replaces
	ds.answerCurrent("B")
	assert.Equal(t, "B", ds.answers["q-1"])

	// the same letter clears
	ds.answerCurrent("B")
	_, present := ds.answers["q-1"]
	assert.False(t, present)
	assert.Equal(t, 0, ds.answeredCount())
}

func TestCurrentHighlightsFollowQuestion(t *testing.T) {
	ds := testDataState()

	ds.setCurrentHighlights(highlight.Set{{Start: 0, End: 5}})
	require.Len(t, ds.highlights, 1)
	assert.Equal(t, highlight.Set{{Start: 0, End: 5}}, ds.currentHighlights())

	ds.current = 1
	assert.Nil(t, ds.currentHighlights())

	// clearing drops the map entry instead of keeping an empty set
	ds.current = 0
	ds.setCurrentHighlights(nil)
	assert.Empty(t, ds.highlights)
}

func TestCurrentQuestionBounds(t *testing.T) {
	ds := testDataState()
	ds.current = 5
	_, ok := ds.currentQuestion()
	assert.False(t, ok)
}

func TestUpperLetter(t *testing.T) {
	assert.Equal(t, "A", upperLetter("a"))
	assert.Equal(t, "E", upperLetter("e"))
	assert.Equal(t, "Q", upperLetter("Q"))
	assert.Equal(t, "ctrl+c", upperLetter("ctrl+c"))
}
