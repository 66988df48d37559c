package attempt

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/studyhall/internal/quiz"
)

// Status is the lifecycle state of one quiz attempt.
type Status int

const (
	StatusLoading    Status = iota // quiz fetch in flight
	StatusActive                   // answerable, timer running
	StatusSubmitting               // scoring call in flight, no mutation accepted
	StatusCompleted                // terminal, result available
	StatusFailed                   // terminal, reason available
)

// String returns the lowercase status name.
func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusActive:
		return "active"
	case StatusSubmitting:
		return "submitting"
	case StatusCompleted:
		return "completed"
	case StatusFailed:
		return "failed"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// Terminal reports whether no further mutation is accepted.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// Direction is a navigation intent between questions.
type Direction int

const (
	Next Direction = iota
	Previous
)

// Boundary errors shared with the quiz repository.
var (
	// ErrNotFound means the quiz or result is absent. Terminal for the
	// session; retry is a fresh session.
	ErrNotFound = errors.New("not found")

	// ErrTransient is a network or timing failure. Retry is a fresh
	// call, never automatic.
	ErrTransient = errors.New("transient failure")
)

// Engine transition errors. These reject the call without mutating state.
var (
	// ErrNotLoading means Start was called on a session past loading.
	ErrNotLoading = errors.New("session already started")

	// ErrNotActive rejects mutation intents outside the Active state.
	ErrNotActive = errors.New("session is not active")

	// ErrUnknownQuestion flags a selectOption call for a question that
	// does not belong to the loaded quiz. A programming error in the
	// adapter, not a user-facing condition.
	ErrUnknownQuestion = errors.New("question does not belong to this quiz")

	// ErrUnknownOption flags a selection of an option the question does
	// not offer.
	ErrUnknownOption = errors.New("option does not belong to this question")

	// ErrSubmitInFlight informs the loser of the timer-vs-user race that
	// a submission is already underway. Not a failure.
	ErrSubmitInFlight = errors.New("submission already in progress")

	// ErrSubmitDone informs a caller that the session already completed.
	ErrSubmitDone = errors.New("submission already completed")

	// ErrAbandoned rejects operations on a disposed session; a resolved
	// repository call arriving after abandonment is discarded with it.
	ErrAbandoned = errors.New("session abandoned")
)

// Result is the immutable outcome of a scored attempt.
type Result struct {
	Score          int       `json:"score"` // percentage, 0-100, rounded
	CorrectAnswers int       `json:"correctAnswers"`
	TotalQuestions int       `json:"totalQuestions"`
	SubmittedAt    time.Time `json:"submittedAt"`
}

// Answer pairs a question with the option the student chose.
type Answer struct {
	QuestionID       string `json:"questionId"`
	SelectedOptionID string `json:"selectedOptionId"`
}

// Repository is the asynchronous boundary the engine consumes. Both
// calls honor context cancellation so an abandoned session can cut
// in-flight I/O loose. Errors are ErrNotFound, ErrTransient, or
// wrapped variants of either.
type Repository interface {
	LoadQuiz(ctx context.Context, quizID string) (*quiz.Quiz, error)
	SubmitAttempt(ctx context.Context, studentID, quizID string, answers []Answer) (Result, error)
}
