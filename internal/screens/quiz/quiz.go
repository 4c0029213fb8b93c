package quiz

import (
	"context"
	"errors"

	tea "charm.land/bubbletea/v2"

	"github.com/minhvu/persona/internal/content"
	"github.com/minhvu/persona/internal/quiz"
	"github.com/minhvu/persona/internal/registry"
	"github.com/minhvu/persona/internal/router"
	"github.com/minhvu/persona/internal/screen"
	"github.com/minhvu/persona/internal/screens/result"
	"github.com/minhvu/persona/internal/store"
	"github.com/minhvu/persona/internal/ui/components"
	"github.com/minhvu/persona/internal/ui/layout"
)

// Config carries the quiz screen's collaborators.
type Config struct {
	User           *registry.UserProfile
	Instrument     content.Instrument
	Library        *content.Library
	Answers        *store.AnswerRepo
	Tracker        *quiz.Tracker
	OnPersistError quiz.PersistErrorFunc
	HomeFactory    func() screen.Screen
}

// QuizScreen runs one assessment: it owns the session state machine and
// renders the current question. Leaving the screen mid-assessment keeps
// the stored answers, so the run resumes on the next visit.
type QuizScreen struct {
	cfg    Config
	sess   *quiz.Session
	choice components.Choice
	errMsg string
	prompt string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.UserProvider = (*QuizScreen)(nil)

// New creates the quiz screen for one user and instrument.
func New(cfg Config) *QuizScreen {
	return &QuizScreen{cfg: cfg}
}

func (q *QuizScreen) Title() string {
	return string(q.cfg.Instrument)
}

func (q *QuizScreen) Username() string {
	return q.cfg.User.Username
}

func (q *QuizScreen) Init() tea.Cmd {
	return q.initSession()
}

// initSession builds the session off the update loop; loading stored
// answers touches the database.
func (q *QuizScreen) initSession() tea.Cmd {
	return func() tea.Msg {
		sess, err := quiz.NewSession(context.Background(), quiz.Config{
			User:           q.cfg.User,
			Instrument:     q.cfg.Instrument,
			Questions:      q.cfg.Library.Questions(q.cfg.Instrument),
			Store:          q.cfg.Answers,
			Tracker:        q.cfg.Tracker,
			OnPersistError: q.cfg.OnPersistError,
		})
		return sessionReadyMsg{Session: sess, Err: err}
	}
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Select"},
	}
	if q.sess != nil {
		if q.sess.Index() > 0 {
			hints = append(hints, layout.KeyHint{Key: "←", Description: "Back"})
		}
		if q.sess.Index() == q.sess.Total()-1 {
			hints = append(hints, layout.KeyHint{Key: "→", Description: "Submit"})
		} else {
			hints = append(hints, layout.KeyHint{Key: "→", Description: "Next"})
		}
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Save & leave"})
	return hints
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionReadyMsg:
		if msg.Err != nil {
			q.errMsg = msg.Err.Error()
			return q, nil
		}
		q.sess = msg.Session
		q.rebuildChoice()
		return q, nil

	case tea.KeyMsg:
		if q.sess == nil {
			return q, nil
		}
		return q.handleKey(msg)
	}

	return q, nil
}

func (q *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		if q.sess.Retreat() {
			q.prompt = ""
			q.rebuildChoice()
		}
		return q, nil

	case "right", "l", "n":
		return q.advance()
	}

	var changed bool
	q.choice, changed = q.choice.Update(msg)
	if changed {
		q.prompt = ""
		if err := q.sess.SelectAnswer(context.Background(), q.choice.Value()); err != nil {
			q.prompt = err.Error()
		}
	}
	return q, nil
}

// advance steps forward; on the final question the session submits and the
// result screen takes over the whole stack.
func (q *QuizScreen) advance() (screen.Screen, tea.Cmd) {
	err := q.sess.Advance(context.Background())

	var verr *quiz.ValidationError
	if errors.As(err, &verr) {
		q.prompt = "Please answer the question before proceeding."
		return q, nil
	}
	if err != nil {
		q.errMsg = err.Error()
		return q, nil
	}

	if q.sess.Completed() {
		resultScreen := result.New(result.Config{
			User:        q.cfg.User,
			Instrument:  q.cfg.Instrument,
			Code:        q.sess.Code(),
			Library:     q.cfg.Library,
			HomeFactory: q.cfg.HomeFactory,
		})
		return q, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: resultScreen}
		}
	}

	q.prompt = ""
	q.rebuildChoice()
	return q, nil
}

// rebuildChoice resets the option list for the current question, marking
// the restored answer when one exists.
func (q *QuizScreen) rebuildChoice() {
	options := q.sess.Question().Options
	chosen := -1
	for i, opt := range options {
		if opt == q.sess.Answer() {
			chosen = i
			break
		}
	}
	q.choice = components.NewChoice(options, chosen)
}
