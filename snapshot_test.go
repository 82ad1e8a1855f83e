package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andareed/prepdrill/drill"
	"github.com/andareed/prepdrill/highlight"
)

const testDeckJSON = `[
	{"id": "q-1", "question_type": "logical_reasoning", "passage_text": "All mammals are warm-blooded. Whales are mammals.", "question_text": "Which conclusion follows?", "answer_choices": ["A) Whales are warm-blooded", "B) Whales are fish"], "correct_answer": "A", "skills": ["deduction"]},
	{"id": "q-2", "question_type": "logical_reasoning", "question_text": "Identify the flaw.", "answer_choices": ["A) none", "B) ad hominem"], "correct_answer": "B"}
]`

func writeTestDeck(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deck.json")
	require.NoError(t, os.WriteFile(path, []byte(testDeckJSON), 0o600))
	return path
}

func testModel(t *testing.T, deckPath string) *model {
	t.Helper()
	questions, err := drill.LoadDeck(deckPath)
	require.NoError(t, err)
	d := drill.New(questions, 100)
	d.Start(time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC))
	m := newModel(d, "deck", deckPath)
	m.InitialiseUI()
	return m
}

func TestSaveLoadProgressRoundtrip(t *testing.T) {
	deckPath := writeTestDeck(t)
	m := testModel(t, deckPath)

	m.data.current = 1
	m.data.answers["q-1"] = "A"
	m.data.highlights["q-1"] = highlight.Set{{Start: 4, End: 11}, {Start: 20, End: 26}}
	m.data.notes["q-2"] = "revisit"
	m.data.dirty = true

	savePath := filepath.Join(t.TempDir(), "session.progress.json")
	require.NoError(t, SaveProgress(m, savePath))

	restored := newModel(nil, "", "")
	require.NoError(t, LoadProgress(restored, savePath))

	assert.Equal(t, m.data.dr.DrillID, restored.data.dr.DrillID)
	assert.Equal(t, deckPath, restored.data.deckPath)
	assert.Equal(t, "deck", restored.data.deckName)
	assert.Equal(t, drill.StatusInProgress, restored.data.dr.Status)
	assert.Equal(t, m.data.dr.TimeLimitSeconds, restored.data.dr.TimeLimitSeconds)
	assert.True(t, m.data.dr.StartedAt.Equal(restored.data.dr.StartedAt))
	assert.Equal(t, 1, restored.data.current)
	assert.Equal(t, "A", restored.data.answers["q-1"])
	assert.Equal(t, m.data.highlights["q-1"], restored.data.highlights["q-1"])
	assert.Equal(t, "revisit", restored.data.notes["q-2"])
	assert.False(t, restored.data.submitted)
	assert.False(t, restored.data.dirty)
	require.Len(t, restored.data.dr.Questions, 2)
}

func TestLoadProgressRebuildsSummaryWhenCompleted(t *testing.T) {
	deckPath := writeTestDeck(t)
	m := testModel(t, deckPath)

	m.data.answers["q-1"] = "A"
	m.data.answers["q-2"] = "A"
	m.data.summary = drill.Score(m.data.dr.Questions, m.data.answers)
	m.data.submitted = true
	m.data.dr.Complete(time.Date(2026, 8, 30, 9, 30, 0, 0, time.UTC))

	savePath := filepath.Join(t.TempDir(), "done.progress.json")
	require.NoError(t, SaveProgress(m, savePath))

	restored := newModel(nil, "", "")
	require.NoError(t, LoadProgress(restored, savePath))

	assert.True(t, restored.data.submitted)
	assert.Equal(t, 1, restored.data.summary.Correct)
	assert.Equal(t, 1, restored.data.summary.Incorrect)
	assert.Equal(t, 0, restored.data.summary.Skipped)
}

func TestLoadProgressRejectsUnknownVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.progress.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version": 99}`), 0o600))

	m := newModel(nil, "", "")
	err := LoadProgress(m, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "version")
}

func TestLoadProgressClampsCurrentIndex(t *testing.T) {
	deckPath := writeTestDeck(t)
	m := testModel(t, deckPath)
	m.data.current = 1

	savePath := filepath.Join(t.TempDir(), "session.progress.json")
	require.NoError(t, SaveProgress(m, savePath))

	// corrupt the index past the deck size
	raw, err := os.ReadFile(savePath)
	require.NoError(t, err)
	var dto map[string]any
	require.NoError(t, json.Unmarshal(raw, &dto))
	dto["current_question_index"] = 42
	raw, err = json.Marshal(dto)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(savePath, raw, 0o600))

	restored := newModel(nil, "", "")
	require.NoError(t, LoadProgress(restored, savePath))
	assert.Equal(t, 0, restored.data.current)
}

func TestExportResultsRequiresSubmission(t *testing.T) {
	deckPath := writeTestDeck(t)
	m := testModel(t, deckPath)

	err := ExportResults(m, filepath.Join(t.TempDir(), "out.json"))
	assert.Error(t, err)
}

func TestExportResultsWritesReport(t *testing.T) {
	deckPath := writeTestDeck(t)
	m := testModel(t, deckPath)

	m.data.answers["q-1"] = "A"
	m.data.summary = drill.Score(m.data.dr.Questions, m.data.answers)
	m.data.submitted = true
	m.data.dr.Complete(time.Date(2026, 8, 30, 9, 30, 0, 0, time.UTC))

	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, ExportResults(m, path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var report resultsDTO
	require.NoError(t, json.Unmarshal(raw, &report))
	assert.Equal(t, m.data.dr.DrillID, report.DrillID)
	assert.Equal(t, "deck", report.DeckName)
	assert.Equal(t, 1, report.Summary.Correct)
	assert.Equal(t, 1, report.Summary.Skipped)
	assert.Equal(t, "2026-08-30T09:30:00Z", report.CompletedAt)
}

func TestDefaultNames(t *testing.T) {
	m := newModel(nil, "LR mixed set", "")
	assert.Equal(t, "LR_mixed_set.progress.json", defaultSaveName(*m))
	assert.Equal(t, "LR_mixed_set.results.json", defaultExportName(*m))

	blank := newModel(nil, "  ", "")
	assert.Equal(t, "drill.progress.json", defaultSaveName(*blank))
}
