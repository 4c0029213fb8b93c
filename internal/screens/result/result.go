package result

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/minhvu/persona/internal/content"
	"github.com/minhvu/persona/internal/registry"
	"github.com/minhvu/persona/internal/router"
	"github.com/minhvu/persona/internal/screen"
	"github.com/minhvu/persona/internal/ui/layout"
	"github.com/minhvu/persona/internal/ui/theme"
)

// Config carries the result screen's inputs.
type Config struct {
	User        *registry.UserProfile
	Instrument  content.Instrument
	Code        string
	Library     *content.Library
	HomeFactory func() screen.Screen
}

// ResultScreen shows the computed personality type with its catalog entry.
type ResultScreen struct {
	cfg   Config
	entry content.PersonalityType
	found bool
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)
var _ screen.UserProvider = (*ResultScreen)(nil)

// New creates the result screen, resolving the code in the catalog.
func New(cfg Config) *ResultScreen {
	entry, found := cfg.Library.Lookup(cfg.Instrument, cfg.Code)
	return &ResultScreen{cfg: cfg, entry: entry, found: found}
}

func (r *ResultScreen) Title() string {
	return string(r.cfg.Instrument) + " Result"
}

func (r *ResultScreen) Username() string {
	return r.cfg.User.Username
}

func (r *ResultScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Close"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (r *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc", " ":
			home := r.cfg.HomeFactory()
			return r, func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: home}
			}
		}
	}
	return r, nil
}

func (r *ResultScreen) View(width, height int) string {
	contentWidth := width - 12
	if contentWidth > 64 {
		contentWidth = 64
	}
	if contentWidth < 30 {
		contentWidth = 30
	}

	var b strings.Builder

	b.WriteString(theme.Title.Render("Kết Quả Tính Cách Của Bạn"))
	b.WriteString("\n\n")

	if r.found {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true).
			Render(r.entry.Name + " — " + r.cfg.Code))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Text).
			Width(contentWidth).
			Align(lipgloss.Center).
			Render(r.entry.Description))
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render(r.entry.ImageURL))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true).
			Render(r.cfg.Code))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Width(contentWidth).
			Align(lipgloss.Center).
			Render("Loại tính cách không xác định. Vui lòng thử lại."))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		theme.Card.Render(b.String()))
}
