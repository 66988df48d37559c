// Package mockapi is the in-memory data layer behind the app: student
// profiles, quizzes, skill indices, leaderboards, and badges, served
// with simulated network latency. It implements attempt.Repository for
// the quiz session engine. Nothing here is durable across runs except
// what the optional result sink records.
package mockapi

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/studyhall/internal/attempt"
	"github.com/abhisek/studyhall/internal/badges"
	"github.com/abhisek/studyhall/internal/quiz"
	"github.com/abhisek/studyhall/internal/skills"
	"github.com/abhisek/studyhall/internal/store"
)

// Per-endpoint latency weights, in units. With the default unit of one
// millisecond they reproduce the original service's response times.
const (
	latencyFetch  = 500
	latencyList   = 700
	latencyCreate = 700
	latencyUpdate = 600
	latencySubmit = 800
)

// ResultSink receives completed attempt results for local persistence.
// Satisfied by store.ResultsRepo.
type ResultSink interface {
	AppendResult(ctx context.Context, rec store.ResultRecord) error
}

// API is the mock data layer. Safe for concurrent use.
type API struct {
	mu          sync.RWMutex
	unit        time.Duration
	students    map[string]Student
	scores      map[string][]AcademicScore
	activities  map[string][]PhysicalActivity
	skillIdx    map[string][]skills.Index
	badgeSets   map[string][]badges.Badge
	quizzes     []quiz.Quiz
	sink        ResultSink
	nextStudent int
}

// New creates an API seeded with the built-in datasets and realistic
// latency.
func New() *API {
	return NewWithLatency(time.Millisecond)
}

// NewWithLatency creates a seeded API whose simulated delays are scaled
// by unit. Zero disables delays entirely (used by tests).
func NewWithLatency(unit time.Duration) *API {
	return &API{
		unit:        unit,
		students:    seedStudents(),
		scores:      seedAcademicScores(),
		activities:  seedActivities(),
		skillIdx:    seedSkillIndices(),
		badgeSets:   seedBadges(),
		quizzes:     seedQuizzes(),
		nextStudent: 4,
	}
}

// SetResultSink wires a sink that records completed attempts.
func (a *API) SetResultSink(sink ResultSink) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.sink = sink
}

// AddQuizzes appends externally loaded quiz definitions (already
// validated) to the catalog. A duplicate ID replaces the built-in quiz.
func (a *API) AddQuizzes(quizzes []quiz.Quiz) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, z := range quizzes {
		replaced := false
		for i := range a.quizzes {
			if a.quizzes[i].ID == z.ID {
				a.quizzes[i] = z
				replaced = true
				break
			}
		}
		if !replaced {
			a.quizzes = append(a.quizzes, z)
		}
	}
}

// delay simulates network latency, honoring cancellation.
func (a *API) delay(ctx context.Context, weight int) error {
	if a.unit <= 0 {
		return ctx.Err()
	}
	select {
	case <-time.After(time.Duration(weight) * a.unit):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// FetchStudentProfile returns the profile for studentID.
func (a *API) FetchStudentProfile(ctx context.Context, studentID string) (Student, error) {
	if err := a.delay(ctx, latencyFetch); err != nil {
		return Student{}, err
	}

	a.mu.RLock()
	defer a.mu.RUnlock()
	s, ok := a.students[studentID]
	if !ok {
		return Student{}, fmt.Errorf("student %s: %w", studentID, attempt.ErrNotFound)
	}
	return s, nil
}

// CreateStudentProfile registers a new student and returns it.
func (a *API) CreateStudentProfile(ctx context.Context, input ProfileInput) (Student, error) {
	if err := a.delay(ctx, latencyCreate); err != nil {
		return Student{}, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	s := Student{
		ID:         fmt.Sprintf("student%d", a.nextStudent),
		Name:       input.Name,
		Grade:      input.Grade,
		Section:    input.Section,
		Email:      input.Email,
		JoinedDate: time.Now().UTC().Truncate(24 * time.Hour),
	}
	a.nextStudent++
	a.students[s.ID] = s
	return s, nil
}

// UpdateStudentProfile overwrites the editable fields of a profile.
func (a *API) UpdateStudentProfile(ctx context.Context, studentID string, input ProfileInput) (Student, error) {
	if err := a.delay(ctx, latencyUpdate); err != nil {
		return Student{}, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	s, ok := a.students[studentID]
	if !ok {
		return Student{}, fmt.Errorf("student %s: %w", studentID, attempt.ErrNotFound)
	}
	s.Name = input.Name
	s.Grade = input.Grade
	s.Section = input.Section
	s.Email = input.Email
	a.students[studentID] = s
	return s, nil
}

// FetchAcademicScores returns a student's graded topics, oldest first.
// A student with no scores gets an empty list, not an error.
func (a *API) FetchAcademicScores(ctx context.Context, studentID string) ([]AcademicScore, error) {
	if err := a.delay(ctx, latencyFetch); err != nil {
		return nil, err
	}

	a.mu.RLock()
	defer a.mu.RUnlock()
	return append([]AcademicScore(nil), a.scores[studentID]...), nil
}

// AddAcademicScore records a graded topic for a student.
func (a *API) AddAcademicScore(ctx context.Context, studentID, topic string, score int) (AcademicScore, error) {
	if err := a.delay(ctx, latencyUpdate); err != nil {
		return AcademicScore{}, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	entry := AcademicScore{
		ID:    "score-" + uuid.New().String(),
		Topic: topic,
		Score: score,
		Date:  time.Now().UTC().Truncate(24 * time.Hour),
	}
	a.scores[studentID] = append(a.scores[studentID], entry)
	return entry, nil
}

// FetchPhysicalActivities returns a student's logged activities.
func (a *API) FetchPhysicalActivities(ctx context.Context, studentID string) ([]PhysicalActivity, error) {
	if err := a.delay(ctx, latencyFetch); err != nil {
		return nil, err
	}

	a.mu.RLock()
	defer a.mu.RUnlock()
	return append([]PhysicalActivity(nil), a.activities[studentID]...), nil
}

// AddPhysicalActivity logs an activity for a student.
func (a *API) AddPhysicalActivity(ctx context.Context, studentID, activityType string, durationMinutes int) (PhysicalActivity, error) {
	if err := a.delay(ctx, latencyUpdate); err != nil {
		return PhysicalActivity{}, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	entry := PhysicalActivity{
		ID:       "activity-" + uuid.New().String(),
		Type:     activityType,
		Duration: durationMinutes,
		Date:     time.Now().UTC().Truncate(24 * time.Hour),
	}
	a.activities[studentID] = append(a.activities[studentID], entry)
	return entry, nil
}

// FetchQuizzes lists catalog quizzes matching the filter.
func (a *API) FetchQuizzes(ctx context.Context, filter quiz.Filter) ([]quiz.Quiz, error) {
	if err := a.delay(ctx, latencyList); err != nil {
		return nil, err
	}

	a.mu.RLock()
	defer a.mu.RUnlock()
	var out []quiz.Quiz
	for i := range a.quizzes {
		if filter.Matches(&a.quizzes[i]) {
			out = append(out, a.quizzes[i])
		}
	}
	return out, nil
}

// Subjects returns the distinct subjects in the catalog, in catalog order.
func (a *API) Subjects(ctx context.Context) ([]string, error) {
	if err := a.delay(ctx, latencyFetch); err != nil {
		return nil, err
	}

	a.mu.RLock()
	defer a.mu.RUnlock()
	seen := make(map[string]bool)
	var out []string
	for i := range a.quizzes {
		if s := a.quizzes[i].Subject; s != "" && !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out, nil
}

// LoadQuiz returns the full quiz definition. Part of attempt.Repository.
func (a *API) LoadQuiz(ctx context.Context, quizID string) (*quiz.Quiz, error) {
	if err := a.delay(ctx, latencyFetch); err != nil {
		return nil, err
	}

	a.mu.RLock()
	defer a.mu.RUnlock()
	for i := range a.quizzes {
		if a.quizzes[i].ID == quizID {
			z := a.quizzes[i]
			return &z, nil
		}
	}
	return nil, fmt.Errorf("quiz %s: %w", quizID, attempt.ErrNotFound)
}

// SubmitAttempt scores the answers against the quiz definition and
// records the result. Part of attempt.Repository.
func (a *API) SubmitAttempt(ctx context.Context, studentID, quizID string, answers []attempt.Answer) (attempt.Result, error) {
	if err := a.delay(ctx, latencySubmit); err != nil {
		return attempt.Result{}, err
	}

	a.mu.RLock()
	var target *quiz.Quiz
	for i := range a.quizzes {
		if a.quizzes[i].ID == quizID {
			z := a.quizzes[i]
			target = &z
			break
		}
	}
	sink := a.sink
	a.mu.RUnlock()

	if target == nil {
		return attempt.Result{}, fmt.Errorf("quiz %s: %w", quizID, attempt.ErrNotFound)
	}

	selected := make(map[string]string, len(answers))
	for _, ans := range answers {
		selected[ans.QuestionID] = ans.SelectedOptionID
	}
	result := attempt.Score(target, selected, time.Now().UTC())

	if sink != nil {
		// History is best-effort; a sink failure must not fail the attempt.
		_ = sink.AppendResult(ctx, store.ResultRecord{
			ID:          uuid.New().String(),
			StudentID:   studentID,
			QuizID:      target.ID,
			QuizTitle:   target.Title,
			Subject:     target.Subject,
			Score:       result.Score,
			Correct:     result.CorrectAnswers,
			Total:       result.TotalQuestions,
			SubmittedAt: result.SubmittedAt,
		})
	}

	return result, nil
}

// FetchSkillIndices returns a student's skill scores.
func (a *API) FetchSkillIndices(ctx context.Context, studentID string) ([]skills.Index, error) {
	if err := a.delay(ctx, latencyUpdate); err != nil {
		return nil, err
	}

	a.mu.RLock()
	defer a.mu.RUnlock()
	return append([]skills.Index(nil), a.skillIdx[studentID]...), nil
}

// FetchLeaderboard ranks every student on one skill.
func (a *API) FetchLeaderboard(ctx context.Context, skillType skills.SkillType) ([]skills.LeaderboardEntry, error) {
	if err := a.delay(ctx, latencyList); err != nil {
		return nil, err
	}

	a.mu.RLock()
	defer a.mu.RUnlock()
	var standings []skills.Standing
	for id, indices := range a.skillIdx {
		for _, idx := range indices {
			if idx.SkillType != skillType {
				continue
			}
			name := id
			if s, ok := a.students[id]; ok {
				name = s.Name
			}
			standings = append(standings, skills.Standing{StudentID: id, Name: name, Score: idx.Score})
			break
		}
	}
	return skills.Rank(standings), nil
}

// FetchStudentBadges returns a student's earned badges. Part of
// badges.Source.
func (a *API) FetchStudentBadges(ctx context.Context, studentID string) ([]badges.Badge, error) {
	if err := a.delay(ctx, latencyFetch); err != nil {
		return nil, err
	}

	a.mu.RLock()
	defer a.mu.RUnlock()
	return append([]badges.Badge(nil), a.badgeSets[studentID]...), nil
}
