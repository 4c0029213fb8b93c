package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/minhvu/persona/internal/content"
	"github.com/minhvu/persona/internal/prefs"
	"github.com/minhvu/persona/internal/quiz"
	"github.com/minhvu/persona/internal/registry"
	"github.com/minhvu/persona/internal/router"
	"github.com/minhvu/persona/internal/screen"
	"github.com/minhvu/persona/internal/screens/home"
	"github.com/minhvu/persona/internal/screens/login"
	"github.com/minhvu/persona/internal/store"
	"github.com/minhvu/persona/internal/ui/layout"
)

// Options carries the collaborators the screens need.
type Options struct {
	Library  *content.Library
	Registry *registry.Registry
	Answers  *store.AnswerRepo
	Prefs    *prefs.Prefs
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel wires the screen factories and starts at the login screen.
func newAppModel(opts Options) AppModel {
	tracker := quiz.NewTracker(opts.Registry)
	onPersistError := quiz.LogPersistErrors(os.Stderr)

	var homeFactory func(user *registry.UserProfile) screen.Screen
	var loginFactory func() screen.Screen

	homeFactory = func(user *registry.UserProfile) screen.Screen {
		return home.New(home.Config{
			User:           user,
			Library:        opts.Library,
			Registry:       opts.Registry,
			Answers:        opts.Answers,
			Tracker:        tracker,
			OnPersistError: onPersistError,
			LoginFactory:   func() screen.Screen { return loginFactory() },
		})
	}
	loginFactory = func() screen.Screen {
		return login.New(login.Config{
			Registry:    opts.Registry,
			Prefs:       opts.Prefs,
			HomeFactory: homeFactory,
		})
	}

	return AppModel{
		router: router.New(loginFactory()),
	}
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	username := ""
	if active != nil {
		title = active.Title()
		if up, ok := active.(screen.UserProvider); ok {
			username = up.Username()
		}
	}

	header := layout.RenderHeader(title, username, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
