package userlist

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/minhvu/persona/internal/content"
	"github.com/minhvu/persona/internal/registry"
	"github.com/minhvu/persona/internal/screen"
	"github.com/minhvu/persona/internal/ui/theme"
)

// UserListScreen renders the registry as a table of usernames, emails, and
// computed personality types per instrument.
type UserListScreen struct {
	users  []registry.UserProfile
	offset int
	errMsg string
}

var _ screen.Screen = (*UserListScreen)(nil)

// New creates the user list screen, reading the registry once.
func New(reg *registry.Registry) *UserListScreen {
	s := &UserListScreen{}
	users, err := reg.ListAll()
	if err != nil {
		s.errMsg = err.Error()
		return s
	}
	s.users = users
	return s
}

func (s *UserListScreen) Title() string {
	return "Registered Users"
}

func (s *UserListScreen) Init() tea.Cmd {
	return nil
}

func (s *UserListScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "up", "k":
			if s.offset > 0 {
				s.offset--
			}
		case "down", "j":
			if s.offset < len(s.users)-1 {
				s.offset++
			}
		}
	}
	return s, nil
}

func (s *UserListScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.ErrorText.Render("Could not read the user registry: "+s.errMsg))
	}
	if len(s.users) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("No registered users yet"))
	}

	colWidth := (width - 8) / 4
	if colWidth < 8 {
		colWidth = 8
	}

	headerStyle := lipgloss.NewStyle().
		Background(theme.Primary).
		Foreground(theme.Text).
		Bold(true).
		Width(colWidth).
		Align(lipgloss.Center)
	cellStyle := lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(colWidth).
		Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		headerStyle.Render("Username"),
		headerStyle.Render("Email"),
		headerStyle.Render("MBTI"),
		headerStyle.Render("DISC"),
	))
	b.WriteString("\n")

	rows := height - 4
	if rows < 1 {
		rows = 1
	}
	for i := s.offset; i < len(s.users) && i < s.offset+rows; i++ {
		u := s.users[i]
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			cellStyle.Render(u.Username),
			cellStyle.Render(u.Email),
			cellStyle.Render(typeOrDash(&u, content.MBTI)),
			cellStyle.Render(typeOrDash(&u, content.DISC)),
		))
		b.WriteString("\n")
	}

	if len(s.users) > rows {
		b.WriteString(theme.Hint.Render(fmt.Sprintf("(%d users, ↑↓ to scroll)", len(s.users))))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func typeOrDash(u *registry.UserProfile, inst content.Instrument) string {
	if code, ok := u.TypeFor(inst); ok && code != "" {
		return code
	}
	return "-"
}
