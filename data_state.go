package main

import (
	"github.com/andareed/prepdrill/drill"
	"github.com/andareed/prepdrill/highlight"
	"github.com/andareed/prepdrill/logging"
)

type dataState struct {
	deckName   string
	deckPath   string
	dr         *drill.Drill
	current    int                      // index into dr.Questions
	answers    map[string]string        // question id -> chosen letter
	highlights map[string]highlight.Set // question id -> passage highlights
	notes      map[string]string        // question id -> scratch note
	submitted  bool
	summary    drill.Summary
	dirty      bool // unsaved answers/highlights/notes
}

func (d *dataState) currentQuestion() (drill.Question, bool) {
	return d.dr.Question(d.current)
}

func (d *dataState) currentHighlights() highlight.Set {
	q, ok := d.currentQuestion()
	if !ok {
		return nil
	}
	return d.highlights[q.ID]
}

func (d *dataState) setCurrentHighlights(s highlight.Set) {
	q, ok := d.currentQuestion()
	if !ok {
		return
	}
	if len(s) == 0 {
		delete(d.highlights, q.ID)
	} else {
		d.highlights[q.ID] = s
	}
	d.dirty = true
}

func (d *dataState) answerCurrent(choice string) {
	q, ok := d.currentQuestion()
	if !ok {
		return
	}
	if d.answers[q.ID] == choice {
		// picking the same letter again clears the answer
		delete(d.answers, q.ID)
		logging.Infof("Question %s: answer %s cleared", q.ID, choice)
	} else {
		d.answers[q.ID] = choice
		logging.Infof("Question %s: answered %s", q.ID, choice)
	}
	d.dirty = true
}

func (d *dataState) answeredCount() int {
	n := 0
	for _, q := range d.dr.Questions {
		if d.answers[q.ID] != "" {
			n++
		}
	}
	return n
}
