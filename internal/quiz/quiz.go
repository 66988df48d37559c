package quiz

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// MinTimeLimit and MaxTimeLimit bound a quiz's time limit in whole minutes.
	MinTimeLimit = 1
	MaxTimeLimit = 120
)

// Option is one selectable answer for a question.
type Option struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Question is a single multiple-choice question within a quiz.
type Question struct {
	ID              string   `json:"id"`
	Text            string   `json:"text"`
	Options         []Option `json:"options"`
	CorrectOptionID string   `json:"correctOptionId"`
}

// Option returns the option with the given ID, or nil if absent.
func (q *Question) Option(optionID string) *Option {
	for i := range q.Options {
		if q.Options[i].ID == optionID {
			return &q.Options[i]
		}
	}
	return nil
}

// Quiz is an immutable quiz definition. It is authored elsewhere and
// read-only to the session engine.
type Quiz struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Subject     string     `json:"subject"`
	GradeLevel  string     `json:"gradeLevel"`
	Description string     `json:"description"`
	TimeLimit   int        `json:"timeLimit"` // whole minutes
	Questions   []Question `json:"questions"`
}

// Question returns the question with the given ID, or nil if absent.
func (z *Quiz) Question(questionID string) *Question {
	for i := range z.Questions {
		if z.Questions[i].ID == questionID {
			return &z.Questions[i]
		}
	}
	return nil
}

// Validate checks the structural invariants of a quiz definition:
// non-empty ordered questions, per-question unique option IDs, and a
// correct-option reference that resolves within its own question.
func (z *Quiz) Validate() error {
	if strings.TrimSpace(z.ID) == "" {
		return errors.New("quiz ID is empty")
	}
	if strings.TrimSpace(z.Title) == "" {
		return fmt.Errorf("quiz %s: title is empty", z.ID)
	}
	if z.TimeLimit < MinTimeLimit || z.TimeLimit > MaxTimeLimit {
		return fmt.Errorf("quiz %s: time limit %d outside [%d, %d] minutes", z.ID, z.TimeLimit, MinTimeLimit, MaxTimeLimit)
	}
	if len(z.Questions) == 0 {
		return fmt.Errorf("quiz %s: no questions", z.ID)
	}

	seenQ := make(map[string]bool, len(z.Questions))
	for i := range z.Questions {
		q := &z.Questions[i]
		if strings.TrimSpace(q.ID) == "" {
			return fmt.Errorf("quiz %s: question %d has empty ID", z.ID, i)
		}
		if seenQ[q.ID] {
			return fmt.Errorf("quiz %s: duplicate question ID %q", z.ID, q.ID)
		}
		seenQ[q.ID] = true

		if len(q.Options) == 0 {
			return fmt.Errorf("quiz %s: question %q has no options", z.ID, q.ID)
		}
		seenO := make(map[string]bool, len(q.Options))
		for _, o := range q.Options {
			if strings.TrimSpace(o.ID) == "" {
				return fmt.Errorf("quiz %s: question %q has an option with empty ID", z.ID, q.ID)
			}
			if seenO[o.ID] {
				return fmt.Errorf("quiz %s: question %q has duplicate option ID %q", z.ID, q.ID, o.ID)
			}
			seenO[o.ID] = true
		}
		if !seenO[q.CorrectOptionID] {
			return fmt.Errorf("quiz %s: question %q correct option %q does not resolve", z.ID, q.ID, q.CorrectOptionID)
		}
	}

	return nil
}

// Filter narrows a quiz listing. Zero values match everything.
type Filter struct {
	GradeLevel string
	Subject    string
}

// Matches reports whether the quiz satisfies the filter.
func (f Filter) Matches(z *Quiz) bool {
	if f.GradeLevel != "" && z.GradeLevel != f.GradeLevel {
		return false
	}
	if f.Subject != "" && z.Subject != f.Subject {
		return false
	}
	return true
}
