package attempt

import (
	"math"
	"time"

	"github.com/abhisek/studyhall/internal/quiz"
)

// Score computes the result of an attempt from the quiz definition and
// the recorded selections alone. A question counts as correct iff the
// selection equals its correct option ID; unanswered questions never
// match. The percentage uses round-half-up.
func Score(z *quiz.Quiz, selected map[string]string, now time.Time) Result {
	correct := 0
	for i := range z.Questions {
		q := &z.Questions[i]
		if optionID, ok := selected[q.ID]; ok && optionID == q.CorrectOptionID {
			correct++
		}
	}

	return Result{
		Score:          roundPercent(correct, len(z.Questions)),
		CorrectAnswers: correct,
		TotalQuestions: len(z.Questions),
		SubmittedAt:    now,
	}
}

// roundPercent returns count/total as a percentage rounded half-up.
func roundPercent(count, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}
