package drill

// SkillTally is per-skill performance within one drill.
type SkillTally struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// Summary is the outcome of a submitted drill.
type Summary struct {
	TotalQuestions  int                   `json:"total_questions"`
	Correct         int                   `json:"correct"`
	Incorrect       int                   `json:"incorrect"`
	Skipped         int                   `json:"skipped"`
	ScorePercentage float64               `json:"score_percentage"`
	Skills          map[string]SkillTally `json:"skills,omitempty"`
}

// Score grades the answers (question id -> chosen answer) against the deck.
// Unanswered questions count as skipped, not incorrect.
func Score(questions []Question, answers map[string]string) Summary {
	s := Summary{
		TotalQuestions: len(questions),
		Skills:         make(map[string]SkillTally),
	}

	for _, q := range questions {
		choice, answered := answers[q.ID]
		skipped := !answered || choice == ""
		correct := !skipped && choice == q.CorrectAnswer
		switch {
		case skipped:
			s.Skipped++
		case correct:
			s.Correct++
		default:
			s.Incorrect++
		}
		// skipped questions still count against every skill they exercise
		for _, skill := range q.Skills {
			tally := s.Skills[skill]
			tally.Total++
			if correct {
				tally.Correct++
			}
			s.Skills[skill] = tally
		}
	}

	if s.TotalQuestions > 0 {
		s.ScorePercentage = float64(s.Correct) / float64(s.TotalQuestions) * 100
	}
	return s
}
