package mockapi

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/studyhall/internal/attempt"
	"github.com/abhisek/studyhall/internal/quiz"
	"github.com/abhisek/studyhall/internal/skills"
	"github.com/abhisek/studyhall/internal/store"
)

func testAPI() *API {
	return NewWithLatency(0)
}

func TestFetchStudentProfile(t *testing.T) {
	api := testAPI()
	ctx := context.Background()

	s, err := api.FetchStudentProfile(ctx, "student1")
	if err != nil {
		t.Fatalf("FetchStudentProfile: %v", err)
	}
	if s.Name != "Alex Johnson" || s.Grade != "7" {
		t.Errorf("unexpected profile %+v", s)
	}

	_, err = api.FetchStudentProfile(ctx, "student99")
	if !errors.Is(err, attempt.ErrNotFound) {
		t.Errorf("missing student error = %v, want ErrNotFound", err)
	}
}

func TestCreateAndUpdateProfile(t *testing.T) {
	api := testAPI()
	ctx := context.Background()

	created, err := api.CreateStudentProfile(ctx, ProfileInput{Name: "Robin Doe", Grade: "8", Section: "C", Email: "robin@example.com"})
	if err != nil {
		t.Fatalf("CreateStudentProfile: %v", err)
	}
	if created.ID == "" {
		t.Fatal("created profile has no ID")
	}

	updated, err := api.UpdateStudentProfile(ctx, created.ID, ProfileInput{Name: "Robin D.", Grade: "9", Section: "C", Email: "robin@example.com"})
	if err != nil {
		t.Fatalf("UpdateStudentProfile: %v", err)
	}
	if updated.Name != "Robin D." || updated.Grade != "9" {
		t.Errorf("update not applied: %+v", updated)
	}

	fetched, err := api.FetchStudentProfile(ctx, created.ID)
	if err != nil {
		t.Fatalf("FetchStudentProfile after update: %v", err)
	}
	if fetched.Name != "Robin D." {
		t.Error("update not visible on fetch")
	}
}

func TestFetchQuizzes_Filtering(t *testing.T) {
	api := testAPI()
	ctx := context.Background()

	all, err := api.FetchQuizzes(ctx, quiz.Filter{})
	if err != nil {
		t.Fatalf("FetchQuizzes: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("catalog size = %d, want 3", len(all))
	}

	algebra, err := api.FetchQuizzes(ctx, quiz.Filter{Subject: "Algebra"})
	if err != nil {
		t.Fatalf("FetchQuizzes(Algebra): %v", err)
	}
	if len(algebra) != 2 {
		t.Errorf("algebra quizzes = %d, want 2", len(algebra))
	}

	grade9, err := api.FetchQuizzes(ctx, quiz.Filter{GradeLevel: "9"})
	if err != nil {
		t.Fatalf("FetchQuizzes(grade 9): %v", err)
	}
	if len(grade9) != 1 || grade9[0].ID != "quiz3" {
		t.Errorf("grade 9 quizzes = %+v, want only quiz3", grade9)
	}
}

func TestLoadQuiz_Validity(t *testing.T) {
	api := testAPI()
	ctx := context.Background()

	z, err := api.LoadQuiz(ctx, "quiz1")
	if err != nil {
		t.Fatalf("LoadQuiz: %v", err)
	}
	if err := z.Validate(); err != nil {
		t.Errorf("seed quiz invalid: %v", err)
	}

	if _, err := api.LoadQuiz(ctx, "quiz99"); !errors.Is(err, attempt.ErrNotFound) {
		t.Errorf("missing quiz error = %v, want ErrNotFound", err)
	}
}

func TestSeedQuizzes_AllValid(t *testing.T) {
	for _, z := range seedQuizzes() {
		if err := z.Validate(); err != nil {
			t.Errorf("seed quiz %s: %v", z.ID, err)
		}
	}
}

type captureSink struct {
	recs []store.ResultRecord
}

func (c *captureSink) AppendResult(ctx context.Context, rec store.ResultRecord) error {
	c.recs = append(c.recs, rec)
	return nil
}

func TestSubmitAttempt_ScoresAndRecords(t *testing.T) {
	api := testAPI()
	sink := &captureSink{}
	api.SetResultSink(sink)
	ctx := context.Background()

	result, err := api.SubmitAttempt(ctx, "student1", "quiz1", []attempt.Answer{
		{QuestionID: "q1", SelectedOptionID: "a"}, // correct
		{QuestionID: "q2", SelectedOptionID: "b"}, // wrong
	})
	if err != nil {
		t.Fatalf("SubmitAttempt: %v", err)
	}
	if result.CorrectAnswers != 1 || result.TotalQuestions != 3 || result.Score != 33 {
		t.Errorf("result = %+v, want 1/3 at 33%%", result)
	}

	if len(sink.recs) != 1 {
		t.Fatalf("sink saw %d records, want 1", len(sink.recs))
	}
	rec := sink.recs[0]
	if rec.StudentID != "student1" || rec.QuizID != "quiz1" || rec.Score != 33 {
		t.Errorf("recorded %+v", rec)
	}
	if rec.Subject != "Algebra" || rec.QuizTitle != "Algebraic Expressions" {
		t.Errorf("record missing quiz metadata: %+v", rec)
	}
}

func TestSubmitAttempt_MissingQuiz(t *testing.T) {
	api := testAPI()
	_, err := api.SubmitAttempt(context.Background(), "student1", "quiz99", nil)
	if !errors.Is(err, attempt.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestFetchLeaderboard(t *testing.T) {
	api := testAPI()

	entries, err := api.FetchLeaderboard(context.Background(), skills.ProblemSolving)
	if err != nil {
		t.Fatalf("FetchLeaderboard: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(entries))
	}
	// student2 has the top problem-solving score in the seed data.
	if entries[0].StudentID != "student2" || entries[0].Rank != 1 {
		t.Errorf("top entry = %+v, want student2 at rank 1", entries[0])
	}
}

func TestAddQuizzes_ReplacesByID(t *testing.T) {
	api := testAPI()
	ctx := context.Background()

	replacement := seedQuizzes()[0]
	replacement.Title = "Algebra Revised"
	api.AddQuizzes([]quiz.Quiz{replacement})

	z, err := api.LoadQuiz(ctx, "quiz1")
	if err != nil {
		t.Fatalf("LoadQuiz: %v", err)
	}
	if z.Title != "Algebra Revised" {
		t.Errorf("Title = %q, want replacement applied", z.Title)
	}

	all, _ := api.FetchQuizzes(ctx, quiz.Filter{})
	if len(all) != 3 {
		t.Errorf("catalog size = %d after replacement, want 3", len(all))
	}
}

func TestDelay_HonorsCancellation(t *testing.T) {
	api := NewWithLatency(time.Hour) // would block forever without cancellation
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := api.FetchStudentProfile(ctx, "student1"); !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}
