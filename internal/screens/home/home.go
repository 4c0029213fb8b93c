package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/minhvu/persona/internal/content"
	"github.com/minhvu/persona/internal/quiz"
	"github.com/minhvu/persona/internal/registry"
	"github.com/minhvu/persona/internal/router"
	"github.com/minhvu/persona/internal/screen"
	quizscreen "github.com/minhvu/persona/internal/screens/quiz"
	"github.com/minhvu/persona/internal/screens/userlist"
	"github.com/minhvu/persona/internal/store"
	"github.com/minhvu/persona/internal/ui/components"
	"github.com/minhvu/persona/internal/ui/theme"
)

// instrumentInfo is the static description shown per menu entry.
var instrumentInfo = map[content.Instrument]string{
	content.MBTI: "Myers-Briggs Type Indicator",
	content.DISC: "Dominance, Influence, Steadiness, Compliance",
}

// Config carries the home screen's collaborators.
type Config struct {
	User           *registry.UserProfile
	Library        *content.Library
	Registry       *registry.Registry
	Answers        *store.AnswerRepo
	Tracker        *quiz.Tracker
	OnPersistError quiz.PersistErrorFunc
	LoginFactory   func() screen.Screen
}

// HomeScreen lists the available assessments with the user's live progress.
type HomeScreen struct {
	cfg  Config
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.UserProvider = (*HomeScreen)(nil)

// New creates the home screen for a logged-in user.
func New(cfg Config) *HomeScreen {
	h := &HomeScreen{cfg: cfg}

	items := make([]components.MenuItem, 0, len(content.Instruments())+3)
	for _, inst := range content.Instruments() {
		inst := inst
		items = append(items, components.MenuItem{
			Label: string(inst),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: quizscreen.New(quizscreen.Config{
						User:           cfg.User,
						Instrument:     inst,
						Library:        cfg.Library,
						Answers:        cfg.Answers,
						Tracker:        cfg.Tracker,
						OnPersistError: cfg.OnPersistError,
						HomeFactory:    func() screen.Screen { return New(cfg) },
					})}
				}
			},
		})
	}
	items = append(items, components.MenuItem{
		Label: "REGISTERED USERS",
		Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: userlist.New(cfg.Registry)}
			}
		},
	})
	items = append(items, components.MenuItem{
		Label: "LOG OUT",
		Action: func() tea.Cmd {
			login := cfg.LoginFactory()
			return func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: login}
			}
		},
	})
	items = append(items, components.MenuItem{
		Label:  "EXIT",
		Action: func() tea.Cmd { return tea.Quit },
	})

	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Title() string {
	return "Available Quizzes"
}

func (h *HomeScreen) Username() string {
	return h.cfg.User.Username
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// Details are rebuilt every frame: the profile is shared with the quiz
	// session, so progress updates show up as soon as the user returns.
	for i, inst := range content.Instruments() {
		h.menu.Items[i].Detail = h.instrumentDetail(inst, width)
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render("Available Quizzes"))
	b.WriteString("\n\n")
	b.WriteString(h.menu.View())

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func (h *HomeScreen) instrumentDetail(inst content.Instrument, width int) string {
	fraction := h.cfg.User.ProgressFor(inst)

	barWidth := 24
	if width < 60 {
		barWidth = 12
	}
	bar := components.NewProgressBar("", fraction, true, barWidth).View()

	detail := fmt.Sprintf("%s  %s", instrumentInfo[inst], bar)
	if code, ok := h.cfg.User.TypeFor(inst); ok && code != "" {
		if pt, found := h.cfg.Library.Lookup(inst, code); found {
			detail += "  " + lipgloss.NewStyle().Foreground(theme.Accent).Render(code+" · "+pt.Name)
		} else {
			detail += "  " + lipgloss.NewStyle().Foreground(theme.Accent).Render(code)
		}
	}
	return detail
}
