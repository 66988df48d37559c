package badges

import (
	"testing"
	"time"

	"github.com/abhisek/studyhall/internal/store"
)

func result(quizID, subject string, score int, day int) store.ResultRecord {
	return store.ResultRecord{
		ID:          quizID,
		StudentID:   "student1",
		QuizID:      quizID,
		QuizTitle:   "Quiz " + quizID,
		Subject:     subject,
		Score:       score,
		Correct:     score / 10,
		Total:       10,
		SubmittedAt: time.Date(2025, 5, day, 12, 0, 0, 0, time.UTC),
	}
}

func names(badges []Badge) map[string]bool {
	m := make(map[string]bool, len(badges))
	for _, b := range badges {
		m[b.ID] = true
	}
	return m
}

func TestFromHistory_Empty(t *testing.T) {
	if got := FromHistory(nil); len(got) != 0 {
		t.Errorf("FromHistory(nil) = %d badges, want none", len(got))
	}
}

func TestFromHistory_PerfectScoreOnce(t *testing.T) {
	earned := FromHistory([]store.ResultRecord{
		result("q1", "Algebra", 100, 1),
		result("q2", "Algebra", 100, 2),
	})

	count := 0
	for _, b := range earned {
		if b.ID == "perfect-score" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("perfect-score earned %d times, want once", count)
	}
}

func TestFromHistory_QuizMasterThreshold(t *testing.T) {
	var history []store.ResultRecord
	for i := 0; i < QuizMasterCount-1; i++ {
		history = append(history, result("q"+string(rune('1'+i)), "Science", 88, i+1))
	}
	if names(FromHistory(history))["quiz-master"] {
		t.Error("quiz-master earned below threshold")
	}

	history = append(history, result("q9", "Science", 90, QuizMasterCount))
	if !names(FromHistory(history))["quiz-master"] {
		t.Error("quiz-master not earned at threshold")
	}
}

func TestFromHistory_SubjectWhizPerSubject(t *testing.T) {
	earned := names(FromHistory([]store.ResultRecord{
		result("q1", "Algebra", 92, 1),
		result("q2", "Algebra", 95, 2),
		result("q3", "History", 91, 3),
		result("q4", "Geometry", 80, 4),
	}))

	if !earned["whiz-algebra"] {
		t.Error("expected whiz-algebra")
	}
	if !earned["whiz-history"] {
		t.Error("expected whiz-history")
	}
	if earned["whiz-geometry"] {
		t.Error("whiz-geometry earned below threshold")
	}
}

func TestFromHistory_HotStreakBreaksOnLowScore(t *testing.T) {
	broken := FromHistory([]store.ResultRecord{
		result("q1", "Math", 75, 1),
		result("q2", "Math", 80, 2),
		result("q3", "Math", 40, 3), // breaks the streak
		result("q4", "Math", 85, 4),
	})
	if names(broken)["hot-streak"] {
		t.Error("hot-streak earned across a broken run")
	}

	unbroken := FromHistory([]store.ResultRecord{
		result("q1", "Math", 75, 1),
		result("q2", "Math", 80, 2),
		result("q3", "Math", 85, 3),
	})
	if !names(unbroken)["hot-streak"] {
		t.Error("hot-streak not earned for three consecutive solid scores")
	}
}

func TestFromHistory_ChronologicalRegardlessOfInputOrder(t *testing.T) {
	// Same records, reversed input order, must earn the same badges.
	history := []store.ResultRecord{
		result("q3", "Math", 85, 3),
		result("q1", "Math", 75, 1),
		result("q2", "Math", 80, 2),
	}
	if !names(FromHistory(history))["hot-streak"] {
		t.Error("streak evaluation must sort by submission time first")
	}
}
