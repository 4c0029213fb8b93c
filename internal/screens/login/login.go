package login

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/minhvu/persona/internal/prefs"
	"github.com/minhvu/persona/internal/registry"
	"github.com/minhvu/persona/internal/router"
	"github.com/minhvu/persona/internal/screen"
	"github.com/minhvu/persona/internal/screens/signup"
	"github.com/minhvu/persona/internal/screens/userlist"
	"github.com/minhvu/persona/internal/ui/components"
	"github.com/minhvu/persona/internal/ui/layout"
	"github.com/minhvu/persona/internal/ui/theme"
)

// focus positions, cycled with tab / shift+tab / up / down
const (
	focusIdentifier = iota
	focusPassword
	focusRemember
	focusLogin
	focusSignup
	focusUserList
	focusCount
)

// Config carries the login screen's collaborators.
type Config struct {
	Registry    *registry.Registry
	Prefs       *prefs.Prefs
	HomeFactory func(user *registry.UserProfile) screen.Screen
}

// LoginScreen authenticates against the user registry and hands the
// matched profile to the home screen.
type LoginScreen struct {
	cfg        Config
	identifier components.TextInput
	password   components.TextInput
	remember   bool
	focus      int
	errMsg     string
}

var _ screen.Screen = (*LoginScreen)(nil)
var _ screen.KeyHintProvider = (*LoginScreen)(nil)

// New creates the login screen, prefilled from the remembered login when
// one is saved.
func New(cfg Config) *LoginScreen {
	s := &LoginScreen{
		cfg:        cfg,
		identifier: components.NewTextInput("Username or email", "you@example.com", false),
		password:   components.NewTextInput("Password", "", true),
	}

	if cfg.Prefs != nil {
		if r, err := cfg.Prefs.Remembered(); err == nil && r != nil {
			s.identifier.SetValue(r.Identifier)
			s.password.SetValue(r.Password)
			s.remember = true
		}
	}

	return s
}

func (s *LoginScreen) Title() string {
	return "Login"
}

func (s *LoginScreen) Init() tea.Cmd {
	return s.identifier.Focus()
}

func (s *LoginScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *LoginScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch kmsg.String() {
		case "tab", "down":
			return s, s.setFocus((s.focus + 1) % focusCount)
		case "shift+tab", "up":
			return s, s.setFocus((s.focus - 1 + focusCount) % focusCount)
		case "enter", " ":
			if cmd, handled := s.activate(kmsg.String()); handled {
				return s, cmd
			}
		}
	}

	// Everything else belongs to the focused text input.
	var cmd tea.Cmd
	switch s.focus {
	case focusIdentifier:
		s.identifier, cmd = s.identifier.Update(msg)
	case focusPassword:
		s.password, cmd = s.password.Update(msg)
	}
	return s, cmd
}

// activate runs the action under the cursor. It reports false when the key
// should fall through to the focused input instead.
func (s *LoginScreen) activate(key string) (tea.Cmd, bool) {
	switch s.focus {
	case focusIdentifier, focusPassword:
		if key == "enter" {
			// Enter in an input moves on, like the original form flow.
			return s.setFocus(s.focus + 1), true
		}
		return nil, false
	case focusRemember:
		s.remember = !s.remember
		return nil, true
	case focusLogin:
		if key != "enter" {
			return nil, false
		}
		return s.login(), true
	case focusSignup:
		if key != "enter" {
			return nil, false
		}
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: signup.New(s.cfg.Registry)}
		}, true
	case focusUserList:
		if key != "enter" {
			return nil, false
		}
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: userlist.New(s.cfg.Registry)}
		}, true
	}
	return nil, false
}

func (s *LoginScreen) setFocus(focus int) tea.Cmd {
	s.focus = focus
	s.identifier.Blur()
	s.password.Blur()
	switch focus {
	case focusIdentifier:
		return s.identifier.Focus()
	case focusPassword:
		return s.password.Focus()
	}
	return nil
}

// login checks the registry and, on a match, saves or clears the
// remembered login and replaces the stack with the home screen.
func (s *LoginScreen) login() tea.Cmd {
	user, err := s.cfg.Registry.FindByCredentials(
		strings.TrimSpace(s.identifier.Value()), s.password.Value())
	if err != nil {
		s.errMsg = "Could not read the user registry: " + err.Error()
		return nil
	}
	if user == nil {
		s.errMsg = "Invalid username or password"
		return nil
	}

	if s.cfg.Prefs != nil {
		if s.remember {
			_ = s.cfg.Prefs.SaveRemembered(prefs.Remembered{
				Identifier: strings.TrimSpace(s.identifier.Value()),
				Password:   s.password.Value(),
			})
		} else {
			_ = s.cfg.Prefs.ClearRemembered()
		}
	}

	home := s.cfg.HomeFactory(user)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: home}
	}
}

func (s *LoginScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("Login"))
	b.WriteString("\n\n")
	b.WriteString(s.identifier.View())
	b.WriteString("\n\n")
	b.WriteString(s.password.View())
	b.WriteString("\n\n")
	b.WriteString(renderCheckbox("Remember me", s.remember, s.focus == focusRemember))
	b.WriteString("\n\n")
	b.WriteString(components.Button{Label: "LOGIN", Active: s.focus == focusLogin}.View())
	b.WriteString("\n\n")
	b.WriteString(renderLink("Sign Up", s.focus == focusSignup))
	b.WriteString("\n")
	b.WriteString(renderLink("View Registered Users", s.focus == focusUserList))

	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.ErrorText.Render(s.errMsg))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func renderCheckbox(label string, checked, focused bool) string {
	box := "[ ]"
	if checked {
		box = "[x]"
	}
	line := box + " " + label
	if focused {
		return theme.Selected.Render("▸ " + line)
	}
	return theme.Unselected.Render("  " + line)
}

func renderLink(label string, focused bool) string {
	if focused {
		return theme.Selected.Render("▸ " + label)
	}
	return lipgloss.NewStyle().Foreground(theme.Secondary).Render("  " + label)
}
