package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// ResultRecord is one completed attempt as stored locally.
type ResultRecord struct {
	ID          string
	StudentID   string
	QuizID      string
	QuizTitle   string
	Subject     string
	Score       int // percentage 0-100
	Correct     int
	Total       int
	SubmittedAt time.Time
}

// ResultsRepo provides append and read access to the results history.
type ResultsRepo interface {
	// AppendResult records a completed attempt.
	AppendResult(ctx context.Context, rec ResultRecord) error

	// ListResults returns a student's results, newest first.
	// limit <= 0 means unlimited.
	ListResults(ctx context.Context, studentID string, limit int) ([]ResultRecord, error)

	// BestScores returns a student's best score per quiz ID.
	BestScores(ctx context.Context, studentID string) (map[string]int, error)
}

type resultsRepo struct {
	db *sql.DB
}

func (r *resultsRepo) AppendResult(ctx context.Context, rec ResultRecord) error {
	const q = `
INSERT INTO results (id, student_id, quiz_id, quiz_title, subject, score, correct, total, submitted_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, q,
		rec.ID, rec.StudentID, rec.QuizID, rec.QuizTitle, rec.Subject,
		rec.Score, rec.Correct, rec.Total, rec.SubmittedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("append result: %w", err)
	}
	return nil
}

func (r *resultsRepo) ListResults(ctx context.Context, studentID string, limit int) ([]ResultRecord, error) {
	q := `
SELECT id, student_id, quiz_id, quiz_title, subject, score, correct, total, submitted_at
FROM results
WHERE student_id = ?
ORDER BY submitted_at DESC`
	args := []any{studentID}
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	defer rows.Close()

	var recs []ResultRecord
	for rows.Next() {
		var rec ResultRecord
		if err := rows.Scan(
			&rec.ID, &rec.StudentID, &rec.QuizID, &rec.QuizTitle, &rec.Subject,
			&rec.Score, &rec.Correct, &rec.Total, &rec.SubmittedAt,
		); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

func (r *resultsRepo) BestScores(ctx context.Context, studentID string) (map[string]int, error) {
	const q = `
SELECT quiz_id, MAX(score)
FROM results
WHERE student_id = ?
GROUP BY quiz_id`

	rows, err := r.db.QueryContext(ctx, q, studentID)
	if err != nil {
		return nil, fmt.Errorf("best scores: %w", err)
	}
	defer rows.Close()

	best := make(map[string]int)
	for rows.Next() {
		var quizID string
		var score int
		if err := rows.Scan(&quizID, &score); err != nil {
			return nil, fmt.Errorf("scan best score: %w", err)
		}
		best[quizID] = score
	}
	return best, rows.Err()
}
