package attempt

import (
	"testing"
	"time"

	"github.com/abhisek/studyhall/internal/quiz"
)

func threeQuestionQuiz() *quiz.Quiz {
	opts := []quiz.Option{
		{ID: "a", Text: "first"},
		{ID: "b", Text: "second"},
		{ID: "c", Text: "third"},
		{ID: "d", Text: "fourth"},
	}
	return &quiz.Quiz{
		ID:         "quiz1",
		Title:      "Algebraic Expressions",
		Subject:    "Algebra",
		GradeLevel: "7",
		TimeLimit:  20,
		Questions: []quiz.Question{
			{ID: "q1", Text: "one", Options: opts, CorrectOptionID: "a"},
			{ID: "q2", Text: "two", Options: opts, CorrectOptionID: "b"},
			{ID: "q3", Text: "three", Options: opts, CorrectOptionID: "b"},
		},
	}
}

func TestScore_PartialAnswers(t *testing.T) {
	z := threeQuestionQuiz()
	selected := map[string]string{"q1": "a", "q2": "b"} // q3 unanswered

	r := Score(z, selected, time.Now())

	if r.CorrectAnswers != 2 {
		t.Errorf("CorrectAnswers = %d, want 2", r.CorrectAnswers)
	}
	if r.TotalQuestions != 3 {
		t.Errorf("TotalQuestions = %d, want 3", r.TotalQuestions)
	}
	if r.Score != 67 {
		t.Errorf("Score = %d, want 67 (round(2/3*100))", r.Score)
	}
}

func TestScore_NoAnswers(t *testing.T) {
	z := threeQuestionQuiz()

	r := Score(z, map[string]string{}, time.Now())

	if r.Score != 0 || r.CorrectAnswers != 0 {
		t.Errorf("Score = %d, CorrectAnswers = %d, want 0 and 0", r.Score, r.CorrectAnswers)
	}
}

func TestScore_AllCorrectSingleQuestion(t *testing.T) {
	z := &quiz.Quiz{
		ID:        "quiz-one",
		Title:     "One",
		TimeLimit: 5,
		Questions: []quiz.Question{
			{
				ID:              "q1",
				Text:            "only",
				Options:         []quiz.Option{{ID: "a", Text: "yes"}, {ID: "b", Text: "no"}},
				CorrectOptionID: "a",
			},
		},
	}

	r := Score(z, map[string]string{"q1": "a"}, time.Now())

	if r.Score != 100 {
		t.Errorf("Score = %d, want 100", r.Score)
	}
}

func TestScore_WrongOptionNeverMatches(t *testing.T) {
	z := threeQuestionQuiz()

	r := Score(z, map[string]string{"q1": "b", "q2": "a", "q3": "d"}, time.Now())

	if r.CorrectAnswers != 0 {
		t.Errorf("CorrectAnswers = %d, want 0", r.CorrectAnswers)
	}
}

func TestScore_Deterministic(t *testing.T) {
	z := threeQuestionQuiz()
	selected := map[string]string{"q1": "a", "q3": "b"}
	at := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)

	first := Score(z, selected, at)
	second := Score(z, selected, at)

	if first != second {
		t.Errorf("Score not deterministic: %+v vs %+v", first, second)
	}
}

func TestRoundPercent_HalfUp(t *testing.T) {
	cases := []struct {
		count, total, want int
	}{
		{2, 3, 67},
		{1, 3, 33},
		{1, 2, 50},
		{1, 8, 13}, // 12.5 rounds up
		{0, 3, 0},
		{3, 3, 100},
		{0, 0, 0},
	}
	for _, c := range cases {
		if got := roundPercent(c.count, c.total); got != c.want {
			t.Errorf("roundPercent(%d, %d) = %d, want %d", c.count, c.total, got, c.want)
		}
	}
}
