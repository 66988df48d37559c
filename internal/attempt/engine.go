package attempt

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/abhisek/studyhall/internal/quiz"
)

// Engine owns the lifecycle of one quiz attempt. Every mutation funnels
// through its methods under a single mutex, so a timer tick and a
// user-triggered submit cannot both pass the Active→Submitting guard:
// whichever completes the guard check first wins and the other is
// rejected with a named reason.
//
// An Engine is single-use. A retry after failure or completion is a new
// Engine.
type Engine struct {
	mu sync.Mutex

	repo      Repository
	attemptID string
	studentID string
	quizID    string

	status    Status
	quiz      *quiz.Quiz
	index     int
	selected  map[string]string
	remaining int // seconds
	result    *Result
	failure   error

	loading   bool
	abandoned bool
	epoch     int // bumped on Abandon; stale async completions are discarded
}

// NewEngine creates an engine for one attempt. The student ID is the
// explicit capability required to start a session; there is no ambient
// identity.
func NewEngine(repo Repository, studentID, quizID string) (*Engine, error) {
	if repo == nil {
		return nil, errors.New("attempt: nil repository")
	}
	if studentID == "" {
		return nil, errors.New("attempt: student ID is required")
	}
	if quizID == "" {
		return nil, errors.New("attempt: quiz ID is required")
	}
	return &Engine{
		repo:      repo,
		attemptID: uuid.New().String(),
		studentID: studentID,
		quizID:    quizID,
		status:    StatusLoading,
		selected:  make(map[string]string),
	}, nil
}

// AttemptID returns the unique ID of this attempt.
func (e *Engine) AttemptID() string {
	return e.attemptID
}

// Start fetches the quiz and transitions Loading→Active, or
// Loading→Failed on fetch error. It blocks on the repository call, so
// callers run it off the UI loop. Calling Start on a session past
// loading returns ErrNotLoading.
func (e *Engine) Start(ctx context.Context) (Snapshot, error) {
	e.mu.Lock()
	if e.abandoned {
		snap := e.snapshotLocked()
		e.mu.Unlock()
		return snap, ErrAbandoned
	}
	if e.status != StatusLoading || e.loading {
		snap := e.snapshotLocked()
		e.mu.Unlock()
		return snap, ErrNotLoading
	}
	e.loading = true
	epoch := e.epoch
	e.mu.Unlock()

	z, err := e.repo.LoadQuiz(ctx, e.quizID)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.loading = false

	// A resolved call arriving after abandonment must be discarded, not
	// applied to a disposed state.
	if e.abandoned || e.epoch != epoch {
		return e.snapshotLocked(), ErrAbandoned
	}

	if err == nil && len(z.Questions) == 0 {
		err = errors.New("quiz has no questions")
	}
	if err != nil {
		e.status = StatusFailed
		e.failure = err
		return e.snapshotLocked(), nil
	}

	e.quiz = z
	e.index = 0
	e.selected = make(map[string]string)
	e.remaining = z.TimeLimit * 60
	e.status = StatusActive
	return e.snapshotLocked(), nil
}

// SelectOption records the chosen option for a question. The question
// need not be the current one; re-selecting overwrites idempotently.
func (e *Engine) SelectOption(questionID, optionID string) (Snapshot, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.abandoned {
		return e.snapshotLocked(), ErrAbandoned
	}
	if e.status != StatusActive {
		return e.snapshotLocked(), e.rejectionLocked()
	}
	q := e.quiz.Question(questionID)
	if q == nil {
		return e.snapshotLocked(), ErrUnknownQuestion
	}
	if q.Option(optionID) == nil {
		return e.snapshotLocked(), ErrUnknownOption
	}

	e.selected[questionID] = optionID
	return e.snapshotLocked(), nil
}

// Navigate moves the current question index by one. Next at the last
// question and Previous at the first are no-ops. Navigation never
// alters selections or the timer.
func (e *Engine) Navigate(dir Direction) (Snapshot, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.abandoned {
		return e.snapshotLocked(), ErrAbandoned
	}
	if e.status != StatusActive {
		return e.snapshotLocked(), e.rejectionLocked()
	}

	switch dir {
	case Next:
		if e.index < len(e.quiz.Questions)-1 {
			e.index++
		}
	case Previous:
		if e.index > 0 {
			e.index--
		}
	}
	return e.snapshotLocked(), nil
}

// Tick consumes one elapsed second while Active, flooring the clock at
// zero. The second return value reports that the clock is at zero and a
// forced submission is due; the caller triggers Submit, which applies
// the same at-most-once guard as a user submission. Ticks in any other
// state are ignored.
func (e *Engine) Tick() (Snapshot, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.abandoned || e.status != StatusActive {
		return e.snapshotLocked(), false
	}
	if e.remaining > 0 {
		e.remaining--
	}
	return e.snapshotLocked(), e.remaining == 0
}

// Submit transitions Active→Submitting, scores the recorded answers via
// the repository, and lands in Completed or Failed. The guard executes
// at most once per session: a concurrent second caller gets
// ErrSubmitInFlight (or ErrSubmitDone after completion), never a
// duplicate result. Whatever is in the selection map at the instant the
// guard passes is final, including unanswered questions.
func (e *Engine) Submit(ctx context.Context) (Snapshot, error) {
	e.mu.Lock()
	if e.abandoned {
		snap := e.snapshotLocked()
		e.mu.Unlock()
		return snap, ErrAbandoned
	}
	switch e.status {
	case StatusActive:
		// Guard passed; fall through.
	case StatusSubmitting:
		snap := e.snapshotLocked()
		e.mu.Unlock()
		return snap, ErrSubmitInFlight
	case StatusCompleted:
		snap := e.snapshotLocked()
		e.mu.Unlock()
		return snap, ErrSubmitDone
	default:
		snap := e.snapshotLocked()
		e.mu.Unlock()
		return snap, ErrNotActive
	}

	e.status = StatusSubmitting
	answers := e.answersLocked()
	epoch := e.epoch
	e.mu.Unlock()

	result, err := e.repo.SubmitAttempt(ctx, e.studentID, e.quizID, answers)

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.abandoned || e.epoch != epoch {
		return e.snapshotLocked(), ErrAbandoned
	}

	if err != nil {
		e.status = StatusFailed
		e.failure = err
		return e.snapshotLocked(), nil
	}

	e.status = StatusCompleted
	e.result = &result
	return e.snapshotLocked(), nil
}

// Abandon disposes the session. Every later operation is rejected with
// ErrAbandoned, and any in-flight repository call that resolves after
// this point is discarded rather than applied.
func (e *Engine) Abandon() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.abandoned = true
	e.epoch++
}

// Snapshot returns a read-only copy of the current attempt state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

// rejectionLocked names the reason a mutation intent was refused in the
// current non-Active state.
func (e *Engine) rejectionLocked() error {
	switch e.status {
	case StatusSubmitting:
		return ErrSubmitInFlight
	case StatusCompleted:
		return ErrSubmitDone
	default:
		return ErrNotActive
	}
}

// answersLocked flattens the selection map into quiz question order so
// submissions are deterministic.
func (e *Engine) answersLocked() []Answer {
	answers := make([]Answer, 0, len(e.selected))
	for _, q := range e.quiz.Questions {
		if optionID, ok := e.selected[q.ID]; ok {
			answers = append(answers, Answer{QuestionID: q.ID, SelectedOptionID: optionID})
		}
	}
	return answers
}

func (e *Engine) snapshotLocked() Snapshot {
	selected := make(map[string]string, len(e.selected))
	for k, v := range e.selected {
		selected[k] = v
	}

	var failReason string
	if e.failure != nil {
		failReason = e.failure.Error()
	}

	return Snapshot{
		AttemptID:            e.attemptID,
		StudentID:            e.studentID,
		QuizID:               e.quizID,
		Quiz:                 e.quiz,
		Status:               e.status,
		CurrentQuestionIndex: e.index,
		SelectedOptions:      selected,
		TimeRemainingSeconds: e.remaining,
		Result:               e.result,
		FailReason:           failReason,
	}
}
