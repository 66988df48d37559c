package leaderboard

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/studyhall/internal/router"
	"github.com/abhisek/studyhall/internal/screen"
	"github.com/abhisek/studyhall/internal/skills"
	"github.com/abhisek/studyhall/internal/ui/layout"
	"github.com/abhisek/studyhall/internal/ui/theme"
)

// Source provides ranked standings per skill. Implemented by mockapi.API.
type Source interface {
	FetchLeaderboard(ctx context.Context, skillType skills.SkillType) ([]skills.LeaderboardEntry, error)
}

type boardLoadedMsg struct {
	Skill   skills.SkillType
	Entries []skills.LeaderboardEntry
	Err     error
}

// LeaderboardScreen shows class standings for one skill at a time.
type LeaderboardScreen struct {
	source    Source
	studentID string

	skillIdx int
	entries  []skills.LeaderboardEntry
	loaded   bool
	fetching bool
	errMsg   string
}

var _ screen.Screen = (*LeaderboardScreen)(nil)
var _ screen.KeyHintProvider = (*LeaderboardScreen)(nil)

// New creates a LeaderboardScreen. studentID highlights the viewer's row.
func New(source Source, studentID string) *LeaderboardScreen {
	return &LeaderboardScreen{
		source:    source,
		studentID: studentID,
	}
}

func (s *LeaderboardScreen) Init() tea.Cmd {
	return s.fetch()
}

func (s *LeaderboardScreen) Title() string {
	return "Leaderboard"
}

func (s *LeaderboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Skill"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *LeaderboardScreen) currentSkill() skills.SkillType {
	all := skills.AllSkillTypes()
	return all[s.skillIdx%len(all)]
}

func (s *LeaderboardScreen) fetch() tea.Cmd {
	skill := s.currentSkill()
	s.fetching = true
	return func() tea.Msg {
		entries, err := s.source.FetchLeaderboard(context.Background(), skill)
		return boardLoadedMsg{Skill: skill, Entries: entries, Err: err}
	}
}

func (s *LeaderboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case boardLoadedMsg:
		s.fetching = false
		s.loaded = true
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		// A stale response for a skill the user already moved past is
		// dropped.
		if msg.Skill != s.currentSkill() {
			return s, nil
		}
		s.entries = msg.Entries
		return s, nil

	case tea.KeyMsg:
		if s.errMsg != "" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		all := skills.AllSkillTypes()
		switch msg.String() {
		case "left", "h":
			s.skillIdx = (s.skillIdx + len(all) - 1) % len(all)
			return s, s.fetch()
		case "right", "l", "tab":
			s.skillIdx = (s.skillIdx + 1) % len(all)
			return s, s.fetch()
		}
	}
	return s, nil
}

func (s *LeaderboardScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded || s.fetching {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading standings...")
	}

	var b strings.Builder
	b.WriteString("\n")

	// Skill tabs.
	var tabs []string
	for i, st := range skills.AllSkillTypes() {
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if i == s.skillIdx {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Underline(true)
		}
		tabs = append(tabs, style.Render(st.Label()))
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(tabs, "   ")))
	b.WriteString("\n\n")

	if len(s.entries) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("No standings yet."))
		return b.String()
	}

	for _, e := range s.entries {
		line := fmt.Sprintf("%2d.  %-24s %3d", e.Rank, e.Name, e.Score)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case e.StudentID == s.studentID:
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
			line += "  (you)"
		case e.Rank == 1:
			style = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
		}

		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}
