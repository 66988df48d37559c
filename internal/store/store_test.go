package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "studyhall.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func record(student, quizID string, score int, at time.Time) ResultRecord {
	return ResultRecord{
		ID:          student + "-" + quizID + "-" + at.Format("150405"),
		StudentID:   student,
		QuizID:      quizID,
		QuizTitle:   "Quiz " + quizID,
		Subject:     "Algebra",
		Score:       score,
		Correct:     score / 10,
		Total:       10,
		SubmittedAt: at,
	}
}

func TestResultsRepo_AppendAndList(t *testing.T) {
	st := openTestStore(t)
	repo := st.Results()
	ctx := context.Background()

	base := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repo.AppendResult(ctx, record("student1", "quiz1", 70, base)))
	require.NoError(t, repo.AppendResult(ctx, record("student1", "quiz2", 90, base.Add(time.Hour))))
	require.NoError(t, repo.AppendResult(ctx, record("student2", "quiz1", 50, base)))

	recs, err := repo.ListResults(ctx, "student1", 0)
	require.NoError(t, err)
	require.Len(t, recs, 2)

	// Newest first.
	require.Equal(t, "quiz2", recs[0].QuizID)
	require.Equal(t, 90, recs[0].Score)
	require.Equal(t, "quiz1", recs[1].QuizID)

	limited, err := repo.ListResults(ctx, "student1", 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)

	none, err := repo.ListResults(ctx, "student9", 0)
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestResultsRepo_BestScores(t *testing.T) {
	st := openTestStore(t)
	repo := st.Results()
	ctx := context.Background()

	base := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repo.AppendResult(ctx, record("student1", "quiz1", 60, base)))
	require.NoError(t, repo.AppendResult(ctx, record("student1", "quiz1", 85, base.Add(time.Hour))))
	require.NoError(t, repo.AppendResult(ctx, record("student1", "quiz2", 40, base)))

	best, err := repo.BestScores(ctx, "student1")
	require.NoError(t, err)
	require.Equal(t, map[string]int{"quiz1": 85, "quiz2": 40}, best)
}

func TestOpen_Reopen(t *testing.T) {
	dir := t.TempDir()
	dsn := filepath.Join(dir, "studyhall.db")

	st, err := Open(dsn)
	require.NoError(t, err)
	ctx := context.Background()
	require.NoError(t, st.Results().AppendResult(ctx, record("student1", "quiz1", 75, time.Now().UTC())))
	require.NoError(t, st.Close())

	// Schema creation is idempotent and data survives reopen.
	st, err = Open(dsn)
	require.NoError(t, err)
	defer st.Close()

	recs, err := st.Results().ListResults(ctx, "student1", 0)
	require.NoError(t, err)
	require.Len(t, recs, 1)
}
