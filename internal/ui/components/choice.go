package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/minhvu/persona/internal/ui/theme"
)

// Choice is a radio-style single-select list of answer options.
type Choice struct {
	Options []string
	Cursor  int
	Chosen  int // index of the committed choice, -1 when none
}

// NewChoice creates a choice list. chosen preselects a committed option
// (pass -1 for none), letting a restored answer show up selected.
func NewChoice(options []string, chosen int) Choice {
	cursor := 0
	if chosen >= 0 && chosen < len(options) {
		cursor = chosen
	}
	return Choice{
		Options: options,
		Cursor:  cursor,
		Chosen:  chosen,
	}
}

// Init returns nil.
func (c Choice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection. It reports whether the
// committed choice changed so the caller can persist it.
func (c Choice) Update(msg tea.Msg) (Choice, bool) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, false
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
	case "enter", " ":
		if c.Chosen != c.Cursor {
			c.Chosen = c.Cursor
			return c, true
		}
	}

	return c, false
}

// Value returns the committed option label, or "" when none is chosen.
func (c Choice) Value() string {
	if c.Chosen < 0 || c.Chosen >= len(c.Options) {
		return ""
	}
	return c.Options[c.Chosen]
}

// View renders the option list with radio markers.
func (c Choice) View() string {
	var s string
	for i, opt := range c.Options {
		marker := "○"
		if i == c.Chosen {
			marker = "●"
		}

		prefix := "  "
		if i == c.Cursor {
			prefix = "▸ "
		}

		line := prefix + marker + "  " + opt

		switch {
		case i == c.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		case i == c.Chosen:
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}
