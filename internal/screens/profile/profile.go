package profile

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/studyhall/internal/mockapi"
	"github.com/abhisek/studyhall/internal/router"
	"github.com/abhisek/studyhall/internal/screen"
	"github.com/abhisek/studyhall/internal/ui/components"
	"github.com/abhisek/studyhall/internal/ui/layout"
	"github.com/abhisek/studyhall/internal/ui/theme"
)

// Source reads and writes student profiles. Implemented by mockapi.API.
type Source interface {
	FetchStudentProfile(ctx context.Context, studentID string) (mockapi.Student, error)
	UpdateStudentProfile(ctx context.Context, studentID string, input mockapi.ProfileInput) (mockapi.Student, error)
}

type profileLoadedMsg struct {
	Student mockapi.Student
	Err     error
}

type profileSavedMsg struct {
	Student mockapi.Student
	Err     error
}

const (
	fieldName = iota
	fieldGrade
	fieldSection
	fieldEmail
	fieldCount
)

// ProfileScreen shows the student profile and supports in-place editing.
type ProfileScreen struct {
	source    Source
	studentID string

	student mockapi.Student
	loaded  bool
	editing bool
	saving  bool
	field   int
	inputs  [fieldCount]components.TextInput
	errMsg  string
}

var _ screen.Screen = (*ProfileScreen)(nil)
var _ screen.KeyHintProvider = (*ProfileScreen)(nil)

// New creates a ProfileScreen.
func New(source Source, studentID string) *ProfileScreen {
	return &ProfileScreen{
		source:    source,
		studentID: studentID,
	}
}

func (s *ProfileScreen) Init() tea.Cmd {
	return func() tea.Msg {
		student, err := s.source.FetchStudentProfile(context.Background(), s.studentID)
		return profileLoadedMsg{Student: student, Err: err}
	}
}

// HandlesEsc reports whether Esc currently cancels the edit form
// instead of leaving the screen.
func (s *ProfileScreen) HandlesEsc() bool {
	return s.editing
}

func (s *ProfileScreen) Title() string {
	return "Profile"
}

func (s *ProfileScreen) KeyHints() []layout.KeyHint {
	if s.editing {
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next field"},
			{Key: "Enter", Description: "Save"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "E", Description: "Edit"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.student = msg.Student
		}
		s.loaded = true
		return s, nil

	case profileSavedMsg:
		s.saving = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.student = msg.Student
		s.editing = false
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *ProfileScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if !s.loaded || s.saving {
		return s, nil
	}

	if !s.editing {
		if msg.String() == "e" {
			s.startEditing()
			return s, s.inputs[s.field].Init()
		}
		return s, nil
	}

	switch msg.String() {
	case "esc":
		s.editing = false
		return s, nil
	case "tab", "down":
		s.field = (s.field + 1) % fieldCount
		return s, s.inputs[s.field].Init()
	case "shift+tab", "up":
		s.field = (s.field + fieldCount - 1) % fieldCount
		return s, s.inputs[s.field].Init()
	case "enter":
		return s.save()
	}

	var cmd tea.Cmd
	s.inputs[s.field], cmd = s.inputs[s.field].Update(msg)
	return s, cmd
}

func (s *ProfileScreen) startEditing() {
	s.editing = true
	s.field = fieldName

	s.inputs[fieldName] = components.NewTextInput("Full name", false, 40)
	s.inputs[fieldName].Model.SetValue(s.student.Name)
	s.inputs[fieldGrade] = components.NewTextInput("Grade", true, 2)
	s.inputs[fieldGrade].Model.SetValue(s.student.Grade)
	s.inputs[fieldSection] = components.NewTextInput("Section", false, 4)
	s.inputs[fieldSection].Model.SetValue(s.student.Section)
	s.inputs[fieldEmail] = components.NewTextInput("Email", false, 60)
	s.inputs[fieldEmail].Model.SetValue(s.student.Email)
}

func (s *ProfileScreen) save() (screen.Screen, tea.Cmd) {
	input := mockapi.ProfileInput{
		Name:    strings.TrimSpace(s.inputs[fieldName].Value()),
		Grade:   strings.TrimSpace(s.inputs[fieldGrade].Value()),
		Section: strings.TrimSpace(s.inputs[fieldSection].Value()),
		Email:   strings.TrimSpace(s.inputs[fieldEmail].Value()),
	}
	if input.Name == "" {
		// Refuse an empty name without leaving edit mode.
		return s, nil
	}

	s.saving = true
	return s, func() tea.Msg {
		student, err := s.source.UpdateStudentProfile(context.Background(), s.studentID, input)
		return profileSavedMsg{Student: student, Err: err}
	}
}

func (s *ProfileScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading profile...")
	}
	if s.saving {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Saving profile...")
	}

	if s.editing {
		return s.renderForm(width)
	}
	return s.renderProfile(width)
}

func (s *ProfileScreen) renderProfile(width int) string {
	var b strings.Builder
	b.WriteString("\n")

	rows := []struct {
		label, value string
	}{
		{"Name", s.student.Name},
		{"Grade", s.student.Grade},
		{"Section", s.student.Section},
		{"Email", s.student.Email},
		{"Joined", s.student.JoinedDate.Format("Jan 02, 2006")},
	}

	for _, row := range rows {
		line := lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("%-10s", row.label)) +
			lipgloss.NewStyle().Foreground(theme.Text).Render(row.value)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
		Render("Press E to edit."))

	return b.String()
}

func (s *ProfileScreen) renderForm(width int) string {
	var b strings.Builder
	b.WriteString("\n")

	labels := [fieldCount]string{"Name", "Grade", "Section", "Email"}
	for i := 0; i < fieldCount; i++ {
		labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
		if i == s.field {
			labelStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		line := labelStyle.Render(fmt.Sprintf("%-10s", labels[i])) + s.inputs[i].View()
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
		Render("Enter saves, Esc cancels."))

	return b.String()
}
