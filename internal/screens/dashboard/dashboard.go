package dashboard

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/studyhall/internal/mockapi"
	"github.com/abhisek/studyhall/internal/router"
	"github.com/abhisek/studyhall/internal/screen"
	"github.com/abhisek/studyhall/internal/skills"
	"github.com/abhisek/studyhall/internal/store"
	"github.com/abhisek/studyhall/internal/ui/components"
	"github.com/abhisek/studyhall/internal/ui/layout"
	"github.com/abhisek/studyhall/internal/ui/theme"
)

// Source provides the data shown on the dashboard. Implemented by
// mockapi.API.
type Source interface {
	FetchStudentProfile(ctx context.Context, studentID string) (mockapi.Student, error)
	FetchAcademicScores(ctx context.Context, studentID string) ([]mockapi.AcademicScore, error)
	FetchPhysicalActivities(ctx context.Context, studentID string) ([]mockapi.PhysicalActivity, error)
	FetchSkillIndices(ctx context.Context, studentID string) ([]skills.Index, error)
}

type dashboardLoadedMsg struct {
	Student    mockapi.Student
	Scores     []mockapi.AcademicScore
	Activities []mockapi.PhysicalActivity
	Skills     []skills.Index
	Recent     []store.ResultRecord
	Err        error
}

// DashboardScreen shows academic scores, activities, skill progress,
// and recent quiz results for one student.
type DashboardScreen struct {
	source    Source
	results   store.ResultsRepo // optional
	studentID string

	student    mockapi.Student
	scores     []mockapi.AcademicScore
	activities []mockapi.PhysicalActivity
	skillIdx   []skills.Index
	recent     []store.ResultRecord
	loaded     bool
	errMsg     string
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)

// New creates a DashboardScreen. results may be nil when no local store
// is configured.
func New(source Source, results store.ResultsRepo, studentID string) *DashboardScreen {
	return &DashboardScreen{
		source:    source,
		results:   results,
		studentID: studentID,
	}
}

func (s *DashboardScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		student, err := s.source.FetchStudentProfile(ctx, s.studentID)
		if err != nil {
			return dashboardLoadedMsg{Err: err}
		}
		scores, err := s.source.FetchAcademicScores(ctx, s.studentID)
		if err != nil {
			return dashboardLoadedMsg{Err: err}
		}
		activities, err := s.source.FetchPhysicalActivities(ctx, s.studentID)
		if err != nil {
			return dashboardLoadedMsg{Err: err}
		}
		indices, err := s.source.FetchSkillIndices(ctx, s.studentID)
		if err != nil {
			return dashboardLoadedMsg{Err: err}
		}

		var recent []store.ResultRecord
		if s.results != nil {
			// Local history is best-effort on the dashboard.
			recent, _ = s.results.ListResults(ctx, s.studentID, 5)
		}

		return dashboardLoadedMsg{
			Student:    student,
			Scores:     scores,
			Activities: activities,
			Skills:     indices,
			Recent:     recent,
		}
	}
}

func (s *DashboardScreen) Title() string {
	return "Dashboard"
}

func (s *DashboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.student = msg.Student
			s.scores = msg.Scores
			s.activities = msg.Activities
			s.skillIdx = msg.Skills
			s.recent = msg.Recent
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		if s.errMsg != "" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *DashboardScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading dashboard...")
	}

	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
			Render(fmt.Sprintf("%s — Grade %s, Section %s", s.student.Name, s.student.Grade, s.student.Section))))
	b.WriteString("\n\n")

	b.WriteString(s.renderSkills(width))
	b.WriteString(s.renderScores(width))
	b.WriteString(s.renderActivities(width))
	b.WriteString(s.renderRecent(width))

	return b.String()
}

func (s *DashboardScreen) renderSkills(width int) string {
	if len(s.skillIdx) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(sectionHeading("Skills", width))

	barWidth := min(width-20, 50)
	for _, idx := range s.skillIdx {
		bar := components.NewProgressBar(
			fmt.Sprintf("%-18s", idx.SkillType.Label()),
			float64(idx.Score)/100,
			true,
			barWidth,
		)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}

func (s *DashboardScreen) renderScores(width int) string {
	var b strings.Builder
	b.WriteString(sectionHeading("Academic Scores", width))

	if len(s.scores) == 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
				Render("No scores recorded yet.")))
		b.WriteString("\n\n")
		return b.String()
	}

	for _, sc := range s.scores {
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if sc.Score >= 90 {
			style = lipgloss.NewStyle().Foreground(theme.Success)
		} else if sc.Score < 60 {
			style = lipgloss.NewStyle().Foreground(theme.Error)
		}
		line := fmt.Sprintf("%-28s %3d%%   %s", sc.Topic, sc.Score, sc.Date.Format("Jan 02, 2006"))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}

func (s *DashboardScreen) renderActivities(width int) string {
	if len(s.activities) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(sectionHeading("Physical Activities", width))

	for _, a := range s.activities {
		line := fmt.Sprintf("%-28s %3d min %s", a.Type, a.Duration, a.Date.Format("Jan 02, 2006"))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}

func (s *DashboardScreen) renderRecent(width int) string {
	if len(s.recent) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(sectionHeading("Recent Quizzes", width))

	for _, r := range s.recent {
		line := fmt.Sprintf("%-28s %3d%%   %d/%d   %s",
			r.QuizTitle, r.Score, r.Correct, r.Total, r.SubmittedAt.Format("Jan 02, 2006"))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}

func sectionHeading(title string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(title)) + "\n"
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
