package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/andareed/prepdrill/drill"
	"github.com/andareed/prepdrill/highlight"
)

// --- Wire format ---

const progressVersion = 1

// progressDTO is the saved drill session. user_highlights carries the
// array-of-pairs shape per question id, the same payload the content service
// consumes.
type progressDTO struct {
	Version              int                 `json:"version"`
	DrillID              string              `json:"drill_id"`
	DeckPath             string              `json:"deck_path"`
	DeckName             string              `json:"deck_name"`
	Status               string              `json:"status"`
	TimeLimitSeconds     int                 `json:"time_limit_seconds"`
	StartedAt            string              `json:"started_at,omitempty"` // ISO-8601
	CurrentQuestionIndex int                 `json:"current_question_index"`
	UserAnswers          map[string]string   `json:"user_answers"`
	UserHighlights       map[string][][2]int `json:"user_highlights"`
	Notes                map[string]string   `json:"notes,omitempty"`
}

// --- Conversions ---

func highlightsToWire(in map[string]highlight.Set) map[string][][2]int {
	out := make(map[string][][2]int, len(in))
	for id, set := range in {
		out[id] = set.Pairs()
	}
	return out
}

func highlightsFromWire(in map[string][][2]int) map[string]highlight.Set {
	out := make(map[string]highlight.Set, len(in))
	for id, pairs := range in {
		set := highlight.FromPairs(pairs)
		if len(set) > 0 {
			out[id] = set
		}
	}
	return out
}

// --- Public API ---

// SaveProgress writes the whole session to a JSON file.
func SaveProgress(m *model, path string) error {
	dto := progressDTO{
		Version:              progressVersion,
		DrillID:              m.data.dr.DrillID,
		DeckPath:             m.data.deckPath,
		DeckName:             m.data.deckName,
		Status:               m.data.dr.Status,
		TimeLimitSeconds:     m.data.dr.TimeLimitSeconds,
		CurrentQuestionIndex: m.data.current,
		UserAnswers:          m.data.answers,
		UserHighlights:       highlightsToWire(m.data.highlights),
		Notes:                m.data.notes,
	}
	if !m.data.dr.StartedAt.IsZero() {
		dto.StartedAt = m.data.dr.StartedAt.Format(time.RFC3339)
	}

	data, err := json.MarshalIndent(dto, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// LoadProgress replaces the contents of m with the snapshot from path. The
// deck is reloaded from the recorded deck path; the timer is rebuilt by the
// caller from the restored start instant, so remaining time survives the
// restart without drift.
func LoadProgress(m *model, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var dto progressDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return err
	}
	if dto.Version != progressVersion {
		return fmt.Errorf("progress version %d not supported (want %d)", dto.Version, progressVersion)
	}

	questions, err := drill.LoadDeck(dto.DeckPath)
	if err != nil {
		return fmt.Errorf("reload deck: %w", err)
	}

	d := &drill.Drill{
		DrillID:          dto.DrillID,
		Questions:        questions,
		TimeLimitSeconds: dto.TimeLimitSeconds,
		Status:           dto.Status,
	}
	if dto.StartedAt != "" {
		startedAt, err := time.Parse(time.RFC3339, dto.StartedAt)
		if err != nil {
			return fmt.Errorf("invalid started_at %q: %w", dto.StartedAt, err)
		}
		d.StartedAt = startedAt
	}

	m.data.dr = d
	m.data.deckPath = dto.DeckPath
	m.data.deckName = dto.DeckName
	m.data.current = dto.CurrentQuestionIndex
	if m.data.current < 0 || m.data.current >= len(questions) {
		m.data.current = 0
	}
	m.data.answers = dto.UserAnswers
	if m.data.answers == nil {
		m.data.answers = make(map[string]string)
	}
	m.data.highlights = highlightsFromWire(dto.UserHighlights)
	m.data.notes = dto.Notes
	if m.data.notes == nil {
		m.data.notes = make(map[string]string)
	}
	m.data.submitted = dto.Status == drill.StatusCompleted
	if m.data.submitted {
		m.data.summary = drill.Score(questions, m.data.answers)
	}
	m.data.dirty = false

	return nil
}

// resultsDTO is the exported report for a graded drill.
type resultsDTO struct {
	DrillID        string        `json:"drill_id"`
	DeckName       string        `json:"deck_name"`
	CompletedAt    string        `json:"completed_at,omitempty"` // ISO-8601
	ElapsedSeconds int           `json:"elapsed_seconds"`
	Summary        drill.Summary `json:"summary"`
}

// ExportResults writes the graded summary to a JSON report. Only meaningful
// after the drill is submitted.
func ExportResults(m *model, path string) error {
	if !m.data.submitted {
		return fmt.Errorf("drill not submitted yet")
	}
	dto := resultsDTO{
		DrillID:        m.data.dr.DrillID,
		DeckName:       m.data.deckName,
		ElapsedSeconds: m.elapsedSeconds(),
		Summary:        m.data.summary,
	}
	if !m.data.dr.CompletedAt.IsZero() {
		dto.CompletedAt = m.data.dr.CompletedAt.Format(time.RFC3339)
	}
	data, err := json.MarshalIndent(dto, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// defaultExportName suggests a report filename based on the deck.
func defaultExportName(m model) string {
	base := strings.TrimSpace(m.data.deckName)
	if base == "" {
		base = "drill"
	}
	base = strings.ReplaceAll(base, " ", "_")
	return base + ".results.json"
}

// defaultSaveName suggests a progress filename based on the deck.
func defaultSaveName(m model) string {
	base := strings.TrimSpace(m.data.deckName)
	if base == "" {
		base = "drill"
	}
	base = strings.ReplaceAll(base, " ", "_")
	return base + ".progress.json"
}
