package badges

import (
	"context"
	"fmt"
	"sort"

	"github.com/abhisek/studyhall/internal/store"
)

// Source lists badges granted outside the local rules (the remote
// profile's earned badges).
type Source interface {
	FetchStudentBadges(ctx context.Context, studentID string) ([]Badge, error)
}

// Service merges remote badges with locally derived awards.
type Service struct {
	source  Source
	results store.ResultsRepo
}

// NewService creates a badge service. Either dependency may be nil; the
// corresponding contribution is skipped.
func NewService(source Source, results store.ResultsRepo) *Service {
	return &Service{source: source, results: results}
}

// Earned returns a student's full badge list: remote badges first, then
// history-derived awards, deduplicated by ID and ordered by date earned.
func (s *Service) Earned(ctx context.Context, studentID string) ([]Badge, error) {
	var all []Badge

	if s.source != nil {
		remote, err := s.source.FetchStudentBadges(ctx, studentID)
		if err != nil {
			return nil, fmt.Errorf("fetch remote badges: %w", err)
		}
		all = append(all, remote...)
	}

	if s.results != nil {
		history, err := s.results.ListResults(ctx, studentID, 0)
		if err != nil {
			return nil, fmt.Errorf("load results history: %w", err)
		}
		all = append(all, FromHistory(history)...)
	}

	seen := make(map[string]bool, len(all))
	merged := all[:0]
	for _, b := range all {
		if seen[b.ID] {
			continue
		}
		seen[b.ID] = true
		merged = append(merged, b)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].EarnedAt.Before(merged[j].EarnedAt)
	})
	return merged, nil
}
