package badgelist

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/studyhall/internal/badges"
	"github.com/abhisek/studyhall/internal/router"
	"github.com/abhisek/studyhall/internal/screen"
	"github.com/abhisek/studyhall/internal/ui/layout"
	"github.com/abhisek/studyhall/internal/ui/theme"
)

type badgesLoadedMsg struct {
	Badges []badges.Badge
	Err    error
}

// BadgeListScreen shows every badge a student has earned, remote and
// locally derived.
type BadgeListScreen struct {
	service   *badges.Service
	studentID string

	badges []badges.Badge
	loaded bool
	errMsg string
}

var _ screen.Screen = (*BadgeListScreen)(nil)
var _ screen.KeyHintProvider = (*BadgeListScreen)(nil)

// New creates a BadgeListScreen.
func New(service *badges.Service, studentID string) *BadgeListScreen {
	return &BadgeListScreen{
		service:   service,
		studentID: studentID,
	}
}

func (s *BadgeListScreen) Init() tea.Cmd {
	return func() tea.Msg {
		earned, err := s.service.Earned(context.Background(), s.studentID)
		return badgesLoadedMsg{Badges: earned, Err: err}
	}
}

func (s *BadgeListScreen) Title() string {
	return "Badges"
}

func (s *BadgeListScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *BadgeListScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case badgesLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.badges = msg.Badges
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

func (s *BadgeListScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading badges...")
	}
	if len(s.badges) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No badges yet. Take some quizzes!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for _, badge := range s.badges {
		name := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
			Render("★ " + badge.Name)
		date := lipgloss.NewStyle().Foreground(theme.TextDim).
			Render("  " + badge.EarnedAt.Format("Jan 02, 2006"))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, name+date))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render(badge.Description)))
		b.WriteString("\n\n")
	}

	return b.String()
}
