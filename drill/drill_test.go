package drill

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleQuestions() []Question {
	return []Question{
		{
			ID:            "q-1",
			QuestionType:  "logical_reasoning",
			PassageText:   "All mammals are warm-blooded. Whales are mammals.",
			QuestionText:  "Which conclusion follows?",
			AnswerChoices: []string{"A) Whales are warm-blooded", "B) Whales are fish"},
			CorrectAnswer: "A",
			Skills:        []string{"deduction"},
		},
		{
			ID:            "q-2",
			QuestionType:  "logical_reasoning",
			QuestionText:  "Identify the flaw.",
			AnswerChoices: []string{"A) none", "B) ad hominem"},
			CorrectAnswer: "B",
			Skills:        []string{"flaw_identification", "deduction"},
		},
		{
			ID:            "q-3",
			QuestionType:  "reading_comprehension",
			QuestionText:  "What is the main point?",
			AnswerChoices: []string{"A) x", "B) y"},
			CorrectAnswer: "A",
		},
	}
}

func TestTimeLimit(t *testing.T) {
	assert.Equal(t, 450, TimeLimit(5, 100))
	assert.Equal(t, 315, TimeLimit(5, 70))
	assert.Equal(t, 585, TimeLimit(5, 130))
	assert.Equal(t, 0, TimeLimit(5, 0), "untimed")
	assert.Equal(t, 0, TimeLimit(5, 85), "unknown percentage falls back to untimed")
}

func TestDrillLifecycle(t *testing.T) {
	d := New(sampleQuestions(), 100)
	require.NotEmpty(t, d.DrillID)
	assert.Equal(t, StatusGenerated, d.Status)
	assert.Equal(t, 270, d.TimeLimitSeconds)
	assert.True(t, d.StartedAt.IsZero())

	started := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	d.Start(started)
	assert.Equal(t, StatusInProgress, d.Status)
	assert.Equal(t, started, d.StartedAt)

	// starting again keeps the original timestamp
	d.Start(started.Add(time.Hour))
	assert.Equal(t, started, d.StartedAt)

	d.Complete(started.Add(5 * time.Minute))
	assert.Equal(t, StatusCompleted, d.Status)
	assert.False(t, d.CompletedAt.IsZero())
}

func TestQuestionBounds(t *testing.T) {
	d := New(sampleQuestions(), 100)
	q, ok := d.Question(0)
	require.True(t, ok)
	assert.Equal(t, "q-1", q.ID)
	_, ok = d.Question(-1)
	assert.False(t, ok)
	_, ok = d.Question(3)
	assert.False(t, ok)
}

func TestLoadDeckJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.json")
	payload := `[
		{"id": "q-1", "question_text": "Q?", "answer_choices": ["A) yes", "B) no"], "correct_answer": "A"},
		{"id": "q-2", "question_text": "Q2?", "answer_choices": ["A) yes", "B) no"], "correct_answer": "B", "skills": ["deduction"]}
	]`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o600))

	qs, err := LoadDeck(path)
	require.NoError(t, err)
	require.Len(t, qs, 2)
	assert.Equal(t, "q-1", qs[0].ID)
	assert.Equal(t, []string{"deduction"}, qs[1].Skills)
}

func TestLoadDeckYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.yaml")
	payload := `
- id: q-1
  question_text: "Which follows?"
  passage_text: "Some text."
  answer_choices:
    - "A) yes"
    - "B) no"
  correct_answer: A
`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o600))

	qs, err := LoadDeck(path)
	require.NoError(t, err)
	require.Len(t, qs, 1)
	assert.Equal(t, "Some text.", qs[0].PassageText)
}

func TestLoadDeckRejectsBadInput(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadDeck(filepath.Join(dir, "deck.txt"))
	assert.Error(t, err)

	empty := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(empty, []byte(`[]`), 0o600))
	_, err = LoadDeck(empty)
	assert.Error(t, err)

	noID := filepath.Join(dir, "noid.json")
	require.NoError(t, os.WriteFile(noID, []byte(`[{"question_text": "Q?"}]`), 0o600))
	_, err = LoadDeck(noID)
	assert.Error(t, err)
}

func TestScore(t *testing.T) {
	qs := sampleQuestions()
	got := Score(qs, map[string]string{
		"q-1": "A", // correct
		"q-2": "A", // wrong
		// q-3 skipped
	})

	assert.Equal(t, 3, got.TotalQuestions)
	assert.Equal(t, 1, got.Correct)
	assert.Equal(t, 1, got.Incorrect)
	assert.Equal(t, 1, got.Skipped)
	assert.InDelta(t, 33.33, got.ScorePercentage, 0.01)

	assert.Equal(t, SkillTally{Correct: 1, Total: 2}, got.Skills["deduction"])
	assert.Equal(t, SkillTally{Correct: 0, Total: 1}, got.Skills["flaw_identification"])
}

func TestScoreSkippedCountsInSkillTotals(t *testing.T) {
	qs := sampleQuestions()
	// only q-1 answered; q-2 (flaw_identification + deduction) skipped
	got := Score(qs, map[string]string{"q-1": "A"})

	assert.Equal(t, 1, got.Correct)
	assert.Equal(t, 2, got.Skipped)
	assert.Equal(t, SkillTally{Correct: 1, Total: 2}, got.Skills["deduction"])
	assert.Equal(t, SkillTally{Correct: 0, Total: 1}, got.Skills["flaw_identification"])
}

func TestDraw(t *testing.T) {
	qs := sampleQuestions()

	drawn := Draw(qs, 2)
	require.Len(t, drawn, 2)
	assert.Equal(t, "q-1", drawn[0].ID)
	assert.Equal(t, "q-2", drawn[1].ID)

	assert.Len(t, Draw(qs, 0), 3, "zero count keeps the whole deck")
	assert.Len(t, Draw(qs, -1), 3)
	assert.Len(t, Draw(qs, 10), 3, "oversized count keeps the whole deck")

	// the drawn count drives the time limit
	d := New(Draw(qs, 2), 100)
	assert.Equal(t, 180, d.TimeLimitSeconds)
}

func TestScoreEmpty(t *testing.T) {
	got := Score(nil, nil)
	assert.Equal(t, 0, got.TotalQuestions)
	assert.Equal(t, float64(0), got.ScorePercentage)
}
