package attempt

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/studyhall/internal/quiz"
)

// stubRepo is an in-process Repository with injectable failures and an
// optional gate that holds SubmitAttempt open until released.
type stubRepo struct {
	quiz      *quiz.Quiz
	loadErr   error
	submitErr error

	submitEntered  chan struct{} // closed when SubmitAttempt is reached
	submitRelease  chan struct{} // SubmitAttempt blocks until this closes
	submitCalls    int
	lastSubmission []Answer
}

func (r *stubRepo) LoadQuiz(ctx context.Context, quizID string) (*quiz.Quiz, error) {
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	return r.quiz, nil
}

func (r *stubRepo) SubmitAttempt(ctx context.Context, studentID, quizID string, answers []Answer) (Result, error) {
	r.submitCalls++
	r.lastSubmission = answers
	if r.submitEntered != nil {
		close(r.submitEntered)
	}
	if r.submitRelease != nil {
		<-r.submitRelease
	}
	if r.submitErr != nil {
		return Result{}, r.submitErr
	}
	selected := make(map[string]string, len(answers))
	for _, a := range answers {
		selected[a.QuestionID] = a.SelectedOptionID
	}
	return Score(r.quiz, selected, time.Now()), nil
}

func startedEngine(t *testing.T) (*Engine, *stubRepo) {
	t.Helper()
	repo := &stubRepo{quiz: threeQuestionQuiz()}
	e, err := NewEngine(repo, "student1", "quiz1")
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	snap, err := e.Start(context.Background())
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if snap.Status != StatusActive {
		t.Fatalf("Status after Start = %v, want active", snap.Status)
	}
	return e, repo
}

func TestNewEngine_RequiresStudentID(t *testing.T) {
	if _, err := NewEngine(&stubRepo{}, "", "quiz1"); err == nil {
		t.Error("expected error for missing student ID")
	}
}

func TestStart_SeedsTimerAndIndex(t *testing.T) {
	e, _ := startedEngine(t)

	snap := e.Snapshot()
	if snap.TimeRemainingSeconds != 20*60 {
		t.Errorf("TimeRemainingSeconds = %d, want %d", snap.TimeRemainingSeconds, 20*60)
	}
	if snap.CurrentQuestionIndex != 0 {
		t.Errorf("CurrentQuestionIndex = %d, want 0", snap.CurrentQuestionIndex)
	}
	if snap.AnsweredCount() != 0 {
		t.Errorf("AnsweredCount = %d, want 0", snap.AnsweredCount())
	}
}

func TestStart_FetchErrorFails(t *testing.T) {
	repo := &stubRepo{loadErr: ErrNotFound}
	e, err := NewEngine(repo, "student1", "missing")
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	snap, err := e.Start(context.Background())
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if snap.Status != StatusFailed {
		t.Errorf("Status = %v, want failed", snap.Status)
	}
	if snap.FailReason == "" {
		t.Error("expected a failure reason for the adapter to surface")
	}
}

func TestStart_SecondCallRejected(t *testing.T) {
	e, _ := startedEngine(t)

	if _, err := e.Start(context.Background()); !errors.Is(err, ErrNotLoading) {
		t.Errorf("second Start error = %v, want ErrNotLoading", err)
	}
}

func TestNavigate_ClampedAtBounds(t *testing.T) {
	e, _ := startedEngine(t)
	n := e.Snapshot().TotalQuestions()

	// Previous at index 0 is a no-op.
	snap, err := e.Navigate(Previous)
	if err != nil {
		t.Fatalf("Navigate(Previous): %v", err)
	}
	if snap.CurrentQuestionIndex != 0 {
		t.Errorf("index = %d, want 0", snap.CurrentQuestionIndex)
	}

	// N nexts from index 0 never exceed N-1.
	for i := 0; i < n; i++ {
		snap, err = e.Navigate(Next)
		if err != nil {
			t.Fatalf("Navigate(Next): %v", err)
		}
	}
	if snap.CurrentQuestionIndex != n-1 {
		t.Errorf("index after %d nexts = %d, want %d", n, snap.CurrentQuestionIndex, n-1)
	}
}

func TestNavigate_DoesNotTouchSelectionsOrTimer(t *testing.T) {
	e, _ := startedEngine(t)
	if _, err := e.SelectOption("q1", "a"); err != nil {
		t.Fatalf("SelectOption: %v", err)
	}
	before := e.Snapshot()

	snap, err := e.Navigate(Next)
	if err != nil {
		t.Fatalf("Navigate: %v", err)
	}
	if snap.TimeRemainingSeconds != before.TimeRemainingSeconds {
		t.Error("navigation altered the timer")
	}
	if snap.SelectedFor("q1") != "a" {
		t.Error("navigation altered selections")
	}
}

func TestSelectOption_IdempotentOverwrite(t *testing.T) {
	e, _ := startedEngine(t)

	first, err := e.SelectOption("q1", "a")
	if err != nil {
		t.Fatalf("SelectOption: %v", err)
	}
	second, err := e.SelectOption("q1", "a")
	if err != nil {
		t.Fatalf("SelectOption repeat: %v", err)
	}
	if len(first.SelectedOptions) != 1 || len(second.SelectedOptions) != 1 {
		t.Error("repeated selection must not grow the selection map")
	}

	// A different option overwrites, never appends.
	third, err := e.SelectOption("q1", "c")
	if err != nil {
		t.Fatalf("SelectOption overwrite: %v", err)
	}
	if len(third.SelectedOptions) != 1 {
		t.Errorf("selections per question = %d, want 1", len(third.SelectedOptions))
	}
	if third.SelectedFor("q1") != "c" {
		t.Errorf("SelectedFor(q1) = %q, want c", third.SelectedFor("q1"))
	}
}

func TestSelectOption_NonCurrentQuestion(t *testing.T) {
	e, _ := startedEngine(t)

	// Answer q3 while q1 is current; supports answering then navigating.
	snap, err := e.SelectOption("q3", "b")
	if err != nil {
		t.Fatalf("SelectOption: %v", err)
	}
	if snap.CurrentQuestionIndex != 0 {
		t.Errorf("index = %d, want 0 (selection must not navigate)", snap.CurrentQuestionIndex)
	}
	if snap.SelectedFor("q3") != "b" {
		t.Error("selection for non-current question not recorded")
	}
}

func TestSelectOption_UnknownIDsRejectedWithoutMutation(t *testing.T) {
	e, _ := startedEngine(t)

	if _, err := e.SelectOption("q99", "a"); !errors.Is(err, ErrUnknownQuestion) {
		t.Errorf("error = %v, want ErrUnknownQuestion", err)
	}
	if _, err := e.SelectOption("q1", "zz"); !errors.Is(err, ErrUnknownOption) {
		t.Errorf("error = %v, want ErrUnknownOption", err)
	}
	if n := e.Snapshot().AnsweredCount(); n != 0 {
		t.Errorf("AnsweredCount = %d, want 0 after rejected calls", n)
	}
}

func TestTick_DecrementsAndFloorsAtZero(t *testing.T) {
	e, _ := startedEngine(t)
	start := e.Snapshot().TimeRemainingSeconds

	snap, forced := e.Tick()
	if snap.TimeRemainingSeconds != start-1 {
		t.Errorf("after one tick = %d, want %d", snap.TimeRemainingSeconds, start-1)
	}
	if forced {
		t.Error("forced submission reported with time remaining")
	}

	for i := 0; i < start+5; i++ {
		snap, forced = e.Tick()
	}
	if snap.TimeRemainingSeconds != 0 {
		t.Errorf("time = %d, want floor at 0", snap.TimeRemainingSeconds)
	}
	if !forced {
		t.Error("expected forced submission at zero")
	}
}

func TestSubmit_ScoresRecordedAnswers(t *testing.T) {
	e, repo := startedEngine(t)
	_, _ = e.SelectOption("q1", "a")
	_, _ = e.SelectOption("q2", "b")

	snap, err := e.Submit(context.Background())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if snap.Status != StatusCompleted {
		t.Fatalf("Status = %v, want completed", snap.Status)
	}
	if snap.Result == nil {
		t.Fatal("completed attempt must carry a result")
	}
	if snap.Result.CorrectAnswers != 2 || snap.Result.TotalQuestions != 3 || snap.Result.Score != 67 {
		t.Errorf("Result = %+v, want 2/3 at 67%%", *snap.Result)
	}
	if len(repo.lastSubmission) != 2 {
		t.Errorf("submitted %d answers, want 2 (unanswered questions omitted)", len(repo.lastSubmission))
	}
}

func TestSubmit_ErrorTransitionsToFailed(t *testing.T) {
	repo := &stubRepo{quiz: threeQuestionQuiz(), submitErr: ErrTransient}
	eng, err := NewEngine(repo, "student1", "quiz1")
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	if _, err := eng.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}

	snap, err := eng.Submit(context.Background())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if snap.Status != StatusFailed {
		t.Errorf("Status = %v, want failed", snap.Status)
	}
	if snap.FailReason == "" {
		t.Error("failed attempt must carry a reason")
	}
}

func TestSubmit_GuardFiresAtMostOnce(t *testing.T) {
	repo := &stubRepo{
		quiz:          threeQuestionQuiz(),
		submitEntered: make(chan struct{}),
		submitRelease: make(chan struct{}),
	}
	e, err := NewEngine(repo, "student1", "quiz1")
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	if _, err := e.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}

	done := make(chan Snapshot, 1)
	go func() {
		snap, _ := e.Submit(context.Background())
		done <- snap
	}()
	<-repo.submitEntered // first submission holds the guard

	// The racing caller is informed, not failed.
	if _, err := e.Submit(context.Background()); !errors.Is(err, ErrSubmitInFlight) {
		t.Errorf("racing Submit error = %v, want ErrSubmitInFlight", err)
	}

	// Mutations are rejected while Submitting, state unchanged.
	if _, err := e.Navigate(Next); !errors.Is(err, ErrSubmitInFlight) {
		t.Errorf("Navigate while submitting = %v, want ErrSubmitInFlight", err)
	}
	if idx := e.Snapshot().CurrentQuestionIndex; idx != 0 {
		t.Errorf("index mutated to %d during submission", idx)
	}
	if _, err := e.SelectOption("q1", "a"); !errors.Is(err, ErrSubmitInFlight) {
		t.Errorf("SelectOption while submitting = %v, want ErrSubmitInFlight", err)
	}

	close(repo.submitRelease)
	snap := <-done
	if snap.Status != StatusCompleted {
		t.Fatalf("Status = %v, want completed", snap.Status)
	}

	// After completion the rejection reason changes but no second
	// submission reaches the repository.
	if _, err := e.Submit(context.Background()); !errors.Is(err, ErrSubmitDone) {
		t.Errorf("post-completion Submit error = %v, want ErrSubmitDone", err)
	}
	if repo.submitCalls != 1 {
		t.Errorf("repository saw %d submissions, want exactly 1", repo.submitCalls)
	}
}

func TestTick_IgnoredOutsideActive(t *testing.T) {
	e, _ := startedEngine(t)
	if _, err := e.Submit(context.Background()); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	snap, forced := e.Tick()
	if forced {
		t.Error("tick after completion must not force a submission")
	}
	if snap.Status != StatusCompleted {
		t.Errorf("Status = %v, want completed", snap.Status)
	}
}

func TestAbandon_DiscardsLateCompletion(t *testing.T) {
	repo := &stubRepo{
		quiz:          threeQuestionQuiz(),
		submitEntered: make(chan struct{}),
		submitRelease: make(chan struct{}),
	}
	e, err := NewEngine(repo, "student1", "quiz1")
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	if _, err := e.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}

	errs := make(chan error, 1)
	go func() {
		_, err := e.Submit(context.Background())
		errs <- err
	}()
	<-repo.submitEntered

	e.Abandon()
	close(repo.submitRelease)

	if err := <-errs; !errors.Is(err, ErrAbandoned) {
		t.Errorf("late completion error = %v, want ErrAbandoned", err)
	}
	if snap := e.Snapshot(); snap.Result != nil {
		t.Error("result applied to a disposed session")
	}
}

func TestSnapshot_DerivedValues(t *testing.T) {
	e, _ := startedEngine(t)
	_, _ = e.SelectOption("q1", "a")

	snap := e.Snapshot()
	if snap.ProgressPercent() != 33 {
		t.Errorf("ProgressPercent = %d, want 33", snap.ProgressPercent())
	}
	if snap.FormatRemaining() != "20:00" {
		t.Errorf("FormatRemaining = %q, want 20:00", snap.FormatRemaining())
	}

	e.Tick()
	if got := e.Snapshot().FormatRemaining(); got != "19:59" {
		t.Errorf("FormatRemaining after tick = %q, want 19:59", got)
	}

	// Snapshot selections are copies; mutating one must not leak back.
	snap = e.Snapshot()
	snap.SelectedOptions["q2"] = "d"
	if e.Snapshot().AnsweredCount() != 1 {
		t.Error("snapshot mutation leaked into engine state")
	}
}
