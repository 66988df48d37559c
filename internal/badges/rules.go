package badges

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/abhisek/studyhall/internal/store"
)

// Award thresholds. Rules fire once each; the earned date is the date
// of the result that completed the rule.
const (
	PerfectScore = 100

	QuizMasterCount    = 5  // completed quizzes at or above QuizMasterMinScore
	QuizMasterMinScore = 85

	SubjectWhizScore = 90 // single result in one subject

	HotStreakLength   = 3 // consecutive results at or above HotStreakMinScore
	HotStreakMinScore = 70
)

// FromHistory derives badges from a student's recorded results. The
// evaluation is pure: same history in, same badges out, ordered by the
// date each badge was earned.
func FromHistory(history []store.ResultRecord) []Badge {
	// Evaluate in chronological order regardless of input order.
	recs := make([]store.ResultRecord, len(history))
	copy(recs, history)
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].SubmittedAt.Before(recs[j].SubmittedAt)
	})

	var earned []Badge
	add := func(id, name, description string, at time.Time) {
		earned = append(earned, Badge{ID: id, Name: name, Description: description, EarnedAt: at})
	}

	var (
		perfectDone  bool
		masterCount  int
		masterDone   bool
		streak       int
		streakDone   bool
		whizBySubject = make(map[string]bool)
	)

	for _, rec := range recs {
		if !perfectDone && rec.Score >= PerfectScore {
			perfectDone = true
			add("perfect-score", "Perfect Score",
				fmt.Sprintf("Scored 100%% on %s", rec.QuizTitle), rec.SubmittedAt)
		}

		if rec.Score >= QuizMasterMinScore {
			masterCount++
			if !masterDone && masterCount >= QuizMasterCount {
				masterDone = true
				add("quiz-master", "Quiz Master",
					fmt.Sprintf("Completed %d quizzes with %d%%+ score", QuizMasterCount, QuizMasterMinScore),
					rec.SubmittedAt)
			}
		}

		if rec.Subject != "" && rec.Score >= SubjectWhizScore && !whizBySubject[rec.Subject] {
			whizBySubject[rec.Subject] = true
			add("whiz-"+slug(rec.Subject), rec.Subject+" Whiz",
				fmt.Sprintf("Scored %d+ in %s", SubjectWhizScore, rec.Subject), rec.SubmittedAt)
		}

		if rec.Score >= HotStreakMinScore {
			streak++
			if !streakDone && streak >= HotStreakLength {
				streakDone = true
				add("hot-streak", "Hot Streak",
					fmt.Sprintf("%d solid scores in a row", HotStreakLength), rec.SubmittedAt)
			}
		} else {
			streak = 0
		}
	}

	return earned
}

func slug(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "-")
}
