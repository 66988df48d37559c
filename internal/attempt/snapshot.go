package attempt

import (
	"fmt"

	"github.com/abhisek/studyhall/internal/quiz"
)

// Snapshot is a read-only view of an attempt at a point in time. The
// Quiz pointer is shared (the definition is immutable); the selection
// map is a copy. Progress and the formatted clock are derived on every
// read, never stored, so they cannot diverge from the source fields.
type Snapshot struct {
	AttemptID            string
	StudentID            string
	QuizID               string
	Quiz                 *quiz.Quiz // nil until loaded
	Status               Status
	CurrentQuestionIndex int
	SelectedOptions      map[string]string
	TimeRemainingSeconds int
	Result               *Result // non-nil only when Completed
	FailReason           string  // non-empty only when Failed
}

// TotalQuestions returns the question count, 0 while loading.
func (s Snapshot) TotalQuestions() int {
	if s.Quiz == nil {
		return 0
	}
	return len(s.Quiz.Questions)
}

// AnsweredCount returns how many questions have a recorded selection.
func (s Snapshot) AnsweredCount() int {
	return len(s.SelectedOptions)
}

// ProgressPercent returns answered/total as a rounded percentage.
func (s Snapshot) ProgressPercent() int {
	total := s.TotalQuestions()
	if total == 0 {
		return 0
	}
	return roundPercent(s.AnsweredCount(), total)
}

// CurrentQuestion returns the question at the current index, or nil
// while loading.
func (s Snapshot) CurrentQuestion() *quiz.Question {
	if s.Quiz == nil || s.CurrentQuestionIndex < 0 || s.CurrentQuestionIndex >= len(s.Quiz.Questions) {
		return nil
	}
	return &s.Quiz.Questions[s.CurrentQuestionIndex]
}

// SelectedFor returns the recorded option for a question, or "".
func (s Snapshot) SelectedFor(questionID string) string {
	return s.SelectedOptions[questionID]
}

// FormatRemaining renders the countdown as zero-padded MM:SS.
func (s Snapshot) FormatRemaining() string {
	secs := s.TimeRemainingSeconds
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
