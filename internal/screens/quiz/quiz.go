package quiz

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/studyhall/internal/attempt"
	"github.com/abhisek/studyhall/internal/router"
	"github.com/abhisek/studyhall/internal/screen"
	"github.com/abhisek/studyhall/internal/ui/components"
	"github.com/abhisek/studyhall/internal/ui/layout"
)

// QuizScreen drives one attempt through the engine: fetch, answer,
// navigate, countdown, submit, results. All attempt state lives in the
// engine; the screen only holds the latest snapshot and view chrome.
type QuizScreen struct {
	engine *attempt.Engine
	snap   attempt.Snapshot

	quizTitle string
	options   components.OptionList

	showingQuitConfirm   bool
	showingSubmitConfirm bool
	errMsg               string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen for one attempt.
func New(repo attempt.Repository, studentID, quizID, quizTitle string) *QuizScreen {
	s := &QuizScreen{quizTitle: quizTitle}

	engine, err := attempt.NewEngine(repo, studentID, quizID)
	if err != nil {
		s.errMsg = err.Error()
		return s
	}
	s.engine = engine
	s.snap = engine.Snapshot()
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	if s.engine == nil {
		return nil
	}
	return s.startAttempt()
}

// HandlesEsc reports that Esc is managed here (confirm-then-abandon)
// rather than by the router's default pop.
func (s *QuizScreen) HandlesEsc() bool {
	return true
}

func (s *QuizScreen) Title() string {
	if s.quizTitle != "" {
		return s.quizTitle
	}
	return "Quiz"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.showingQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave quiz"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.showingSubmitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Submit"},
			{Key: "N", Description: "Not yet"},
		}
	}
	switch s.snap.Status {
	case attempt.StatusActive:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Options"},
			{Key: "Enter", Description: "Mark"},
			{Key: "←→", Description: "Question"},
			{Key: "S", Description: "Submit"},
			{Key: "Esc", Description: "Leave"},
		}
	case attempt.StatusCompleted, attempt.StatusFailed:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
	}
	return nil
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case attemptStartedMsg:
		return s.handleStarted(msg)

	case timerTickMsg:
		return s.handleTimerTick()

	case submitDoneMsg:
		return s.handleSubmitDone(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

// startAttempt fetches the quiz definition off the UI loop.
func (s *QuizScreen) startAttempt() tea.Cmd {
	engine := s.engine
	return func() tea.Msg {
		snap, err := engine.Start(context.Background())
		return attemptStartedMsg{Snap: snap, Err: err}
	}
}

func (s *QuizScreen) handleStarted(msg attemptStartedMsg) (screen.Screen, tea.Cmd) {
	if errors.Is(msg.Err, attempt.ErrAbandoned) {
		return s, nil
	}
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}

	s.snap = msg.Snap
	if s.snap.Status != attempt.StatusActive {
		return s, nil
	}

	s.syncOptions()
	return s, tickCmd()
}

func (s *QuizScreen) handleTimerTick() (screen.Screen, tea.Cmd) {
	if s.engine == nil {
		return s, nil
	}

	snap, due := s.engine.Tick()
	s.snap = snap

	if due {
		// Time is up: force a submission with whatever is marked. The
		// engine guard decides the race against a concurrent user submit.
		return s, s.submitAttempt()
	}
	if snap.Status != attempt.StatusActive {
		return s, nil
	}
	return s, tickCmd()
}

func (s *QuizScreen) handleSubmitDone(msg submitDoneMsg) (screen.Screen, tea.Cmd) {
	switch {
	case errors.Is(msg.Err, attempt.ErrAbandoned):
		return s, nil
	case errors.Is(msg.Err, attempt.ErrSubmitInFlight), errors.Is(msg.Err, attempt.ErrSubmitDone):
		// Lost the race; the winning submission's message carries the
		// final state.
		return s, nil
	case msg.Err != nil:
		s.errMsg = msg.Err.Error()
		return s, nil
	}

	s.snap = msg.Snap
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, s.leave()
	}

	if s.showingQuitConfirm {
		switch key {
		case "y", "Y":
			return s, s.leave()
		case "n", "N", "esc":
			s.showingQuitConfirm = false
		}
		return s, nil
	}

	if s.showingSubmitConfirm {
		switch key {
		case "y", "Y":
			s.showingSubmitConfirm = false
			return s, s.submitAttempt()
		case "n", "N", "esc":
			s.showingSubmitConfirm = false
		}
		return s, nil
	}

	switch s.snap.Status {
	case attempt.StatusLoading, attempt.StatusSubmitting:
		// Everything except leaving waits for the in-flight call.
		if key == "esc" {
			s.showingQuitConfirm = true
		}
		return s, nil

	case attempt.StatusCompleted, attempt.StatusFailed:
		switch key {
		case "esc", "enter", "q":
			return s, s.leave()
		}
		return s, nil
	}

	// Active.
	switch key {
	case "esc":
		s.showingQuitConfirm = true
		return s, nil
	case "left", "h":
		s.snap, _ = s.engine.Navigate(attempt.Previous)
		s.syncOptions()
		return s, nil
	case "right", "l", "tab":
		s.snap, _ = s.engine.Navigate(attempt.Next)
		s.syncOptions()
		return s, nil
	case "s":
		s.showingSubmitConfirm = true
		return s, nil
	}

	// Option cursor and marking.
	var cmd tea.Cmd
	s.options, cmd = s.options.Update(msg)
	if q := s.snap.CurrentQuestion(); q != nil {
		if chosen := s.options.ChosenID; chosen != "" && chosen != s.snap.SelectedFor(q.ID) {
			s.snap, _ = s.engine.SelectOption(q.ID, chosen)
		}
	}
	return s, cmd
}

// leave abandons the attempt and pops back to the previous screen. Any
// in-flight fetch or submission resolving later is discarded by the
// engine.
func (s *QuizScreen) leave() tea.Cmd {
	if s.engine != nil {
		s.engine.Abandon()
	}
	return func() tea.Msg { return router.PopScreenMsg{} }
}

// submitAttempt submits off the UI loop.
func (s *QuizScreen) submitAttempt() tea.Cmd {
	engine := s.engine
	return func() tea.Msg {
		snap, err := engine.Submit(context.Background())
		return submitDoneMsg{Snap: snap, Err: err}
	}
}

// syncOptions rebuilds the option list for the current question,
// restoring any previously marked option.
func (s *QuizScreen) syncOptions() {
	q := s.snap.CurrentQuestion()
	if q == nil {
		s.options = components.OptionList{}
		return
	}

	ids := make([]string, len(q.Options))
	labels := make([]string, len(q.Options))
	for i, opt := range q.Options {
		ids[i] = opt.ID
		labels[i] = opt.Text
	}
	s.options = components.NewOptionList(ids, labels, s.snap.SelectedFor(q.ID))
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
