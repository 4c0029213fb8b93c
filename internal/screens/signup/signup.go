package signup

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/minhvu/persona/internal/registry"
	"github.com/minhvu/persona/internal/router"
	"github.com/minhvu/persona/internal/screen"
	"github.com/minhvu/persona/internal/ui/components"
	"github.com/minhvu/persona/internal/ui/layout"
	"github.com/minhvu/persona/internal/ui/theme"
)

const (
	focusUsername = iota
	focusEmail
	focusPassword
	focusConfirm
	focusSubmit
	focusCount
)

// SignupScreen registers a new profile in the user registry.
type SignupScreen struct {
	reg    *registry.Registry
	inputs [4]components.TextInput
	focus  int
	errMsg string
}

var _ screen.Screen = (*SignupScreen)(nil)
var _ screen.KeyHintProvider = (*SignupScreen)(nil)

// New creates the signup screen.
func New(reg *registry.Registry) *SignupScreen {
	return &SignupScreen{
		reg: reg,
		inputs: [4]components.TextInput{
			components.NewTextInput("Username", "", false),
			components.NewTextInput("Email", "you@example.com", false),
			components.NewTextInput("Password", "", true),
			components.NewTextInput("Repeat password", "", true),
		},
	}
}

func (s *SignupScreen) Title() string {
	return "Sign Up"
}

func (s *SignupScreen) Init() tea.Cmd {
	return s.inputs[focusUsername].Focus()
}

func (s *SignupScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SignupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "tab", "down":
			return s, s.setFocus((s.focus + 1) % focusCount)
		case "shift+tab", "up":
			return s, s.setFocus((s.focus - 1 + focusCount) % focusCount)
		case "enter":
			if s.focus == focusSubmit {
				return s, s.submit()
			}
			return s, s.setFocus(s.focus + 1)
		}
	}

	if s.focus < len(s.inputs) {
		var cmd tea.Cmd
		s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *SignupScreen) setFocus(focus int) tea.Cmd {
	s.focus = focus
	for i := range s.inputs {
		s.inputs[i].Blur()
	}
	if focus < len(s.inputs) {
		return s.inputs[focus].Focus()
	}
	return nil
}

// submit validates the form, rejects an identity already registered, and
// appends the new profile with zeroed progress.
func (s *SignupScreen) submit() tea.Cmd {
	username := strings.TrimSpace(s.inputs[focusUsername].Value())
	email := strings.TrimSpace(s.inputs[focusEmail].Value())
	password := s.inputs[focusPassword].Value()
	confirm := s.inputs[focusConfirm].Value()

	switch {
	case username == "" && email == "":
		s.errMsg = "Enter a username or an email"
		return nil
	case password == "":
		s.errMsg = "Enter a password"
		return nil
	case password != confirm:
		s.errMsg = "Passwords do not match"
		return nil
	}

	for _, id := range []string{username, email} {
		if id == "" {
			continue
		}
		existing, err := s.reg.Find(id)
		if err != nil {
			s.errMsg = "Could not read the user registry: " + err.Error()
			return nil
		}
		if existing != nil {
			s.errMsg = "An account with that name already exists"
			return nil
		}
	}

	if err := s.reg.Upsert(registry.NewProfile(username, email, password)); err != nil {
		s.errMsg = "Could not save the account: " + err.Error()
		return nil
	}

	return func() tea.Msg {
		return router.PopScreenMsg{}
	}
}

func (s *SignupScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("Sign Up"))
	b.WriteString("\n\n")
	for i := range s.inputs {
		b.WriteString(s.inputs[i].View())
		b.WriteString("\n\n")
	}
	b.WriteString(components.Button{Label: "SIGN UP", Active: s.focus == focusSubmit}.View())

	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.ErrorText.Render(s.errMsg))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
