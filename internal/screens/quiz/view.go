package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/minhvu/persona/internal/ui/components"
	"github.com/minhvu/persona/internal/ui/theme"
)

func (q *QuizScreen) View(width, height int) string {
	if q.errMsg != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.ErrorText.Render(q.errMsg))
	}
	if q.sess == nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Loading..."))
	}

	contentWidth := width - 12
	if contentWidth > 72 {
		contentWidth = 72
	}
	if contentWidth < 30 {
		contentWidth = 30
	}

	var b strings.Builder

	b.WriteString(theme.Title.Render(
		fmt.Sprintf("Question %d of %d", q.sess.Index()+1, q.sess.Total())))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Width(contentWidth).
		Render(q.sess.Question().Text))
	b.WriteString("\n\n")

	b.WriteString(q.choice.View())
	b.WriteString("\n")

	b.WriteString(components.NewProgressBar("", q.sess.Progress(), true, contentWidth).View())

	if q.prompt != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.ErrorText.Render(q.prompt))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
