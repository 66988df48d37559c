package quiz

import (
	"time"

	"github.com/abhisek/studyhall/internal/attempt"
)

// attemptStartedMsg is sent when the quiz definition fetch resolves.
type attemptStartedMsg struct {
	Snap attempt.Snapshot
	Err  error
}

// timerTickMsg is sent every second to drive the countdown.
type timerTickMsg time.Time

// submitDoneMsg is sent when a submission resolves.
type submitDoneMsg struct {
	Snap attempt.Snapshot
	Err  error
}
