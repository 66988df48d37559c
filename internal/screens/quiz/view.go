package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/studyhall/internal/attempt"
	"github.com/abhisek/studyhall/internal/ui/components"
	"github.com/abhisek/studyhall/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.showingQuitConfirm {
		return renderQuitConfirm(width)
	}
	if s.showingSubmitConfirm {
		return s.renderSubmitConfirm(width)
	}

	switch s.snap.Status {
	case attempt.StatusLoading:
		return renderLoading(width)
	case attempt.StatusSubmitting:
		return renderSubmitting(width)
	case attempt.StatusCompleted:
		return s.renderResults(width)
	case attempt.StatusFailed:
		return renderError(width, s.snap.FailReason)
	}
	return s.renderQuestionView(width)
}

// renderQuestionView renders the active question with the countdown and
// answer progress.
func (s *QuizScreen) renderQuestionView(width int) string {
	q := s.snap.CurrentQuestion()
	if q == nil {
		return renderLoading(width)
	}

	var b strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Question %d/%d", s.snap.CurrentQuestionIndex+1, s.snap.TotalQuestions()))

	timerStyle := lipgloss.NewStyle().Foreground(theme.Accent)
	if s.snap.TimeRemainingSeconds <= 60 {
		timerStyle = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	}
	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Answered %d/%d  ", s.snap.AnsweredCount(), s.snap.TotalQuestions())) +
		timerStyle.Render(s.snap.FormatRemaining())

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")

	bar := components.NewProgressBar("", float64(s.snap.ProgressPercent())/100, false, width-8)
	b.WriteString("  " + bar.View())
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	questionStyle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(questionStyle.Render(q.Text))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.options.View()))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Enter marks an answer. Unanswered questions score zero."))

	return b.String()
}

// renderResults renders the completed attempt: score plus a per-question
// review with the correct and chosen options highlighted.
func (s *QuizScreen) renderResults(width int) string {
	result := s.snap.Result
	if result == nil {
		return renderSubmitting(width)
	}

	var b strings.Builder
	b.WriteString("\n")

	scoreStyle := theme.Correct
	verdict := "Great work!"
	switch {
	case result.Score < 50:
		scoreStyle = theme.Incorrect
		verdict = "Keep practicing!"
	case result.Score < 80:
		scoreStyle = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
		verdict = "Nice effort!"
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(scoreStyle.Render(fmt.Sprintf("Score: %d%%", result.Score))))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf("%d of %d correct — %s", result.CorrectAnswers, result.TotalQuestions, verdict)))
	b.WriteString("\n\n")

	if s.snap.Quiz != nil {
		for i, q := range s.snap.Quiz.Questions {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
					Render(fmt.Sprintf("%d. %s", i+1, q.Text))))
			b.WriteString("\n")

			ids := make([]string, len(q.Options))
			labels := make([]string, len(q.Options))
			for j, opt := range q.Options {
				ids[j] = opt.ID
				labels[j] = opt.Text
			}
			review := components.NewOptionList(ids, labels, s.snap.SelectedFor(q.ID))
			review.Reveal = true
			review.CorrectID = q.CorrectOptionID
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, review.View()))
			b.WriteString("\n")
		}
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press Esc to go back."))

	return b.String()
}

func (s *QuizScreen) renderSubmitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	unanswered := s.snap.TotalQuestions() - s.snap.AnsweredCount()

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Submit your answers?"))
	b.WriteString("\n")
	if unanswered > 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render(fmt.Sprintf("%d question(s) still unanswered.", unanswered)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, submit"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] Not yet"))

	return b.String()
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Leave this quiz?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("The attempt will be discarded."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, leave"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

func renderLoading(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Loading quiz...")
}

func renderSubmitting(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Submitting your answers...")
}

func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
