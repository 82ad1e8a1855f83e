// Package drill holds the practice-session model: question decks, drill
// lifecycle, timing rules and scoring.
package drill

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Timing defaults. A standard LSAT section budgets roughly 90 seconds per
// question; the timing percentage scales that for accommodated or speed runs.
const SecondsPerQuestion = 90

var timingMultipliers = map[int]float64{
	70:  0.7,
	100: 1.0,
	130: 1.3,
}

// Drill status values.
const (
	StatusGenerated  = "generated"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// Question is one deck entry. Passage and question text share the structure
// the content service uses, so decks exported from it load directly.
type Question struct {
	ID            string   `json:"id" yaml:"id"`
	QuestionType  string   `json:"question_type" yaml:"question_type"`
	Difficulty    string   `json:"difficulty_level" yaml:"difficulty_level"`
	PassageText   string   `json:"passage_text" yaml:"passage_text"`
	QuestionText  string   `json:"question_text" yaml:"question_text"`
	AnswerChoices []string `json:"answer_choices" yaml:"answer_choices"`
	CorrectAnswer string   `json:"correct_answer" yaml:"correct_answer"`
	Skills        []string `json:"skills,omitempty" yaml:"skills,omitempty"`
}

// Drill is one practice session over a fixed question list.
type Drill struct {
	DrillID          string
	Questions        []Question
	TimeLimitSeconds int // 0 means untimed (stopwatch)
	Status           string
	CreatedAt        time.Time
	StartedAt        time.Time
	CompletedAt      time.Time
}

// TimeLimit computes the session limit in seconds. Unknown or non-positive
// percentages mean untimed and return 0.
func TimeLimit(questionCount, timePercentage int) int {
	mult, ok := timingMultipliers[timePercentage]
	if !ok {
		return 0
	}
	return int(float64(questionCount) * SecondsPerQuestion * mult)
}

// Draw limits a session to the first count questions of the deck, the way a
// generated drill draws question_count entries from the pool. Deck files are
// written in presentation order, so drawing takes a prefix rather than
// sampling. A non-positive count, or one at least the deck size, keeps the
// whole deck.
func Draw(questions []Question, count int) []Question {
	if count <= 0 || count >= len(questions) {
		return questions
	}
	return questions[:count:count]
}

// New builds a drill over the given questions. The ID is a fresh UUID so
// snapshots and exports reference the session unambiguously.
func New(questions []Question, timePercentage int) *Drill {
	return &Drill{
		DrillID:          uuid.NewString(),
		Questions:        questions,
		TimeLimitSeconds: TimeLimit(len(questions), timePercentage),
		Status:           StatusGenerated,
		CreatedAt:        time.Now().UTC(),
	}
}

// Start marks the drill in progress and stamps the start instant the timer
// derives from. Starting twice keeps the original timestamp.
func (d *Drill) Start(now time.Time) {
	if d.Status != StatusGenerated {
		return
	}
	d.Status = StatusInProgress
	d.StartedAt = now.UTC()
}

// Complete marks the drill finished.
func (d *Drill) Complete(now time.Time) {
	if d.Status == StatusCompleted {
		return
	}
	d.Status = StatusCompleted
	d.CompletedAt = now.UTC()
}

// Question returns the question at index i, ok=false when out of range.
func (d *Drill) Question(i int) (Question, bool) {
	if i < 0 || i >= len(d.Questions) {
		return Question{}, false
	}
	return d.Questions[i], true
}

// LoadDeck reads a question deck from a JSON or YAML file, picked by
// extension.
func LoadDeck(path string) ([]Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read deck: %w", err)
	}

	var questions []Question
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &questions); err != nil {
			return nil, fmt.Errorf("parse deck %q: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &questions); err != nil {
			return nil, fmt.Errorf("parse deck %q: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported deck extension %q (want .json or .yaml)", ext)
	}

	if len(questions) == 0 {
		return nil, fmt.Errorf("deck %q has no questions", path)
	}
	for i := range questions {
		if questions[i].ID == "" {
			return nil, fmt.Errorf("deck %q: question %d has no id", path, i)
		}
	}
	return questions, nil
}
