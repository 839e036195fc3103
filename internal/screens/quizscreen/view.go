package quizscreen

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/matrix/isotopes/internal/ui/components"
	"github.com/matrix/isotopes/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("📝 Nuclear Isotopes Quiz"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render("Test your knowledge of isotope economics and applications"))
	b.WriteString("\n\n")

	switch {
	case s.feedback != nil:
		b.WriteString(s.renderFeedback(width))
	case s.finished():
		b.WriteString(s.renderFinished(width))
	default:
		b.WriteString(s.renderQuestion(width))
	}

	return lipgloss.NewStyle().MaxHeight(height).Render(b.String())
}

func (s *QuizScreen) renderQuestion(width int) string {
	total := len(s.sess.Questions())
	current := s.sess.Quiz().CurrentIndex + 1

	var b strings.Builder
	b.WriteString(theme.Heading.Render(fmt.Sprintf("Question %d/%d", current, total)))
	b.WriteString("\n")
	b.WriteString(components.NewProgressBar("", float64(current-1)/float64(total), false, min(width, 40)).View())
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Width(max(width, 20)).Render(s.mc.View()))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("Select with ↑↓ and Enter, or press a-d"))
	return b.String()
}

func (s *QuizScreen) renderFeedback(width int) string {
	total := len(s.sess.Questions())

	var b strings.Builder
	b.WriteString(theme.Heading.Render(fmt.Sprintf("Question %d/%d", s.answered, total)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Width(max(width, 20)).Render(s.mc.View()))
	b.WriteString("\n")

	if s.feedback.Correct {
		b.WriteString(theme.Correct.Render("Correct!"))
	} else {
		b.WriteString(theme.Incorrect.Render("Incorrect!"))
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("Correct answer: " + s.feedback.Question.CorrectOption()))
	}
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("Press any key to continue"))
	return b.String()
}

func (s *QuizScreen) renderFinished(width int) string {
	st := s.sess.Quiz()
	total := len(s.sess.Questions())

	score := theme.Card.Render(
		theme.Subtitle.Render("Your Score") + "\n" +
			lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(fmt.Sprintf("%d/%d", st.Score, total)))

	var b strings.Builder
	b.WriteString(theme.Heading.Render("Quiz Completed!"))
	b.WriteString("\n\n")
	b.WriteString(score)
	b.WriteString("\n\n")
	b.WriteString(components.NewProgressBar("Accuracy", float64(st.Score)/float64(total), true, min(width, 40)).View())
	b.WriteString("\n\n")
	b.WriteString(s.restart.View())
	return b.String()
}
