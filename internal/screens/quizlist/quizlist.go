package quizlist

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/studyhall/internal/attempt"
	"github.com/abhisek/studyhall/internal/quiz"
	"github.com/abhisek/studyhall/internal/router"
	"github.com/abhisek/studyhall/internal/screen"
	quizscreen "github.com/abhisek/studyhall/internal/screens/quiz"
	"github.com/abhisek/studyhall/internal/store"
	"github.com/abhisek/studyhall/internal/ui/layout"
	"github.com/abhisek/studyhall/internal/ui/theme"
)

// Catalog lists available quizzes. Implemented by mockapi.API.
type Catalog interface {
	FetchQuizzes(ctx context.Context, filter quiz.Filter) ([]quiz.Quiz, error)
	Subjects(ctx context.Context) ([]string, error)
}

type catalogLoadedMsg struct {
	Quizzes  []quiz.Quiz
	Subjects []string
	Best     map[string]int
	Err      error
}

type quizzesLoadedMsg struct {
	Quizzes []quiz.Quiz
	Err     error
}

// QuizListScreen shows the quiz catalog with subject and grade filters.
type QuizListScreen struct {
	catalog   Catalog
	repo      attempt.Repository
	results   store.ResultsRepo // optional
	studentID string

	quizzes  []quiz.Quiz
	subjects []string
	grades   []string
	best     map[string]int // best past score per quiz ID

	subjectIdx int // 0 = all
	gradeIdx   int // 0 = all
	selected   int
	loaded     bool
	fetching   bool
	errMsg     string
}

var _ screen.Screen = (*QuizListScreen)(nil)
var _ screen.KeyHintProvider = (*QuizListScreen)(nil)

// New creates a QuizListScreen. results may be nil when no local store
// is configured.
func New(catalog Catalog, repo attempt.Repository, results store.ResultsRepo, studentID string) *QuizListScreen {
	return &QuizListScreen{
		catalog:   catalog,
		repo:      repo,
		results:   results,
		studentID: studentID,
	}
}

func (s *QuizListScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		quizzes, err := s.catalog.FetchQuizzes(ctx, quiz.Filter{})
		if err != nil {
			return catalogLoadedMsg{Err: err}
		}
		subjects, err := s.catalog.Subjects(ctx)
		if err != nil {
			return catalogLoadedMsg{Err: err}
		}

		var best map[string]int
		if s.results != nil {
			// Past scores are decoration; ignore a history failure.
			best, _ = s.results.BestScores(ctx, s.studentID)
		}

		return catalogLoadedMsg{Quizzes: quizzes, Subjects: subjects, Best: best}
	}
}

func (s *QuizListScreen) Title() string {
	return "Quizzes"
}

func (s *QuizListScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Start"},
		{Key: "F", Description: "Subject"},
		{Key: "G", Description: "Grade"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *QuizListScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case catalogLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.quizzes = msg.Quizzes
			s.subjects = msg.Subjects
			s.grades = distinctGrades(msg.Quizzes)
			s.best = msg.Best
		}
		s.loaded = true
		return s, nil

	case quizzesLoadedMsg:
		s.fetching = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.quizzes = msg.Quizzes
		if s.selected >= len(s.quizzes) {
			s.selected = 0
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *QuizListScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if !s.loaded || s.fetching {
		return s, nil
	}

	switch msg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.quizzes)-1 {
			s.selected++
		}
	case "f":
		s.subjectIdx = (s.subjectIdx + 1) % (len(s.subjects) + 1)
		return s.refetch()
	case "g":
		s.gradeIdx = (s.gradeIdx + 1) % (len(s.grades) + 1)
		return s.refetch()
	case "enter":
		if s.selected >= 0 && s.selected < len(s.quizzes) {
			z := s.quizzes[s.selected]
			return s, func() tea.Msg {
				return router.PushScreenMsg{
					Screen: quizscreen.New(s.repo, s.studentID, z.ID, z.Title),
				}
			}
		}
	}
	return s, nil
}

// refetch reloads the list with the current filter applied server-side.
func (s *QuizListScreen) refetch() (screen.Screen, tea.Cmd) {
	filter := s.filter()
	s.fetching = true
	return s, func() tea.Msg {
		quizzes, err := s.catalog.FetchQuizzes(context.Background(), filter)
		return quizzesLoadedMsg{Quizzes: quizzes, Err: err}
	}
}

func (s *QuizListScreen) filter() quiz.Filter {
	var f quiz.Filter
	if s.subjectIdx > 0 && s.subjectIdx <= len(s.subjects) {
		f.Subject = s.subjects[s.subjectIdx-1]
	}
	if s.gradeIdx > 0 && s.gradeIdx <= len(s.grades) {
		f.GradeLevel = s.grades[s.gradeIdx-1]
	}
	return f
}

func (s *QuizListScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded || s.fetching {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading quizzes...")
	}

	var b strings.Builder
	b.WriteString("\n")

	subjectLabel := "All subjects"
	if f := s.filter(); f.Subject != "" {
		subjectLabel = f.Subject
	}
	gradeLabel := "All grades"
	if f := s.filter(); f.GradeLevel != "" {
		gradeLabel = "Grade " + f.GradeLevel
	}
	filterLine := fmt.Sprintf("Filter: %s  ·  %s", subjectLabel, gradeLabel)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Secondary).Render(filterLine)))
	b.WriteString("\n\n")

	if len(s.quizzes) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("No quizzes match this filter."))
		return b.String()
	}

	for i, z := range s.quizzes {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%-32s %-10s Grade %-3s %2d min  %d questions",
			prefix, z.Title, z.Subject, z.GradeLevel, z.TimeLimit, len(z.Questions))
		if score, ok := s.best[z.ID]; ok {
			line += fmt.Sprintf("  Best %d%%", score)
		}

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if i == s.selected && z.Description != "" {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
					Render("    "+z.Description)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// distinctGrades returns the grade levels present in the catalog, in
// catalog order.
func distinctGrades(quizzes []quiz.Quiz) []string {
	seen := make(map[string]bool)
	var out []string
	for _, z := range quizzes {
		if z.GradeLevel != "" && !seen[z.GradeLevel] {
			seen[z.GradeLevel] = true
			out = append(out, z.GradeLevel)
		}
	}
	return out
}
