package quiz

import (
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/minhvu/persona/internal/content"
	"github.com/minhvu/persona/internal/quiz"
	"github.com/minhvu/persona/internal/registry"
	"github.com/minhvu/persona/internal/router"
	"github.com/minhvu/persona/internal/screen"
	"github.com/minhvu/persona/internal/store"
)

// stubScreen stands in for the home screen.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "home" }
func (s *stubScreen) Title() string                           { return "Home" }

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func newTestQuiz(t *testing.T, inst content.Instrument) *QuizScreen {
	t.Helper()

	lib, err := content.Load()
	if err != nil {
		t.Fatalf("load content: %v", err)
	}
	st, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	reg := registry.Open(filepath.Join(t.TempDir(), "users.json"))
	user := registry.NewProfile("thao", "thao@example.com", "pw")
	if err := reg.Upsert(user); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	q := New(Config{
		User:        user,
		Instrument:  inst,
		Library:     lib,
		Answers:     st.Answers(),
		Tracker:     quiz.NewTracker(reg),
		HomeFactory: func() screen.Screen { return &stubScreen{} },
	})

	// Run the init command synchronously to load the session.
	msg := q.Init()()
	scr, _ := q.Update(msg)
	return scr.(*QuizScreen)
}

func TestSessionLoadsOnInit(t *testing.T) {
	q := newTestQuiz(t, content.DISC)

	if q.sess == nil {
		t.Fatal("session not loaded after init")
	}
	if q.sess.Index() != 0 {
		t.Errorf("index = %d, want 0", q.sess.Index())
	}

	view := q.View(80, 24)
	if !strings.Contains(view, "Question 1 of 20") {
		t.Errorf("view missing question counter:\n%s", view)
	}
}

func TestAdvanceWithoutAnswerShowsPrompt(t *testing.T) {
	q := newTestQuiz(t, content.DISC)

	scr, _ := q.Update(specialKey(tea.KeyRight))
	q = scr.(*QuizScreen)

	if q.sess.Index() != 0 {
		t.Errorf("index = %d after rejected advance, want 0", q.sess.Index())
	}
	if q.prompt == "" {
		t.Error("expected a prompt after advancing an unanswered question")
	}
}

func TestSelectThenAdvance(t *testing.T) {
	q := newTestQuiz(t, content.DISC)

	scr, _ := q.Update(specialKey(tea.KeyEnter)) // commit "Có"
	q = scr.(*QuizScreen)
	if got := q.sess.Answer(); got != "Có" {
		t.Fatalf("answer = %q after enter, want Có", got)
	}

	scr, _ = q.Update(specialKey(tea.KeyRight))
	q = scr.(*QuizScreen)
	if q.sess.Index() != 1 {
		t.Errorf("index = %d after advance, want 1", q.sess.Index())
	}
	if q.prompt != "" {
		t.Errorf("prompt = %q after valid advance, want empty", q.prompt)
	}
}

func TestRetreatRestoresEarlierAnswer(t *testing.T) {
	q := newTestQuiz(t, content.DISC)

	scr, _ := q.Update(specialKey(tea.KeyEnter))
	q = scr.(*QuizScreen)
	scr, _ = q.Update(specialKey(tea.KeyRight))
	q = scr.(*QuizScreen)

	scr, _ = q.Update(specialKey(tea.KeyLeft))
	q = scr.(*QuizScreen)

	if q.sess.Index() != 0 {
		t.Errorf("index = %d after retreat, want 0", q.sess.Index())
	}
	if q.choice.Chosen != 0 {
		t.Errorf("choice.Chosen = %d after retreat, want the restored answer", q.choice.Chosen)
	}
}

func TestFinalAdvanceReplacesWithResult(t *testing.T) {
	q := newTestQuiz(t, content.DISC)

	var scr screen.Screen = q
	var cmd tea.Cmd
	for i := 0; i < 20; i++ {
		scr, _ = scr.Update(specialKey(tea.KeyEnter))
		scr, cmd = scr.Update(specialKey(tea.KeyRight))
	}

	q = scr.(*QuizScreen)
	if !q.sess.Completed() {
		t.Fatal("session not completed after answering every question")
	}
	if q.sess.Code() != "DISC" {
		t.Errorf("code = %q, want DISC for uniform answers", q.sess.Code())
	}

	if cmd == nil {
		t.Fatal("expected a navigation command after submission")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected ReplaceScreenMsg carrying the result screen")
	}
}

func TestKeyHintsFollowPosition(t *testing.T) {
	q := newTestQuiz(t, content.DISC)

	hints := q.KeyHints()
	for _, h := range hints {
		if h.Key == "←" {
			t.Error("back hint shown at the first question")
		}
	}

	scr, _ := q.Update(specialKey(tea.KeyEnter))
	q = scr.(*QuizScreen)
	scr, _ = q.Update(specialKey(tea.KeyRight))
	q = scr.(*QuizScreen)

	foundBack := false
	for _, h := range q.KeyHints() {
		if h.Key == "←" {
			foundBack = true
		}
	}
	if !foundBack {
		t.Error("back hint missing past the first question")
	}
}
