package home

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
	quizscreen "github.com/minhvu/persona/internal/screens/quiz"
	"github.com/minhvu/persona/internal/store"
)

// stubScreen stands in for the login screen.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "login" }
func (s *stubScreen) Title() string                           { return "Login" }

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func newTestHome(t *testing.T) (*HomeScreen, *registry.UserProfile) {
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
	user := registry.NewProfile("vy", "vy@example.com", "pw")
	if err := reg.Upsert(user); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	h := New(Config{
		User:         user,
		Library:      lib,
		Registry:     reg,
		Answers:      st.Answers(),
		Tracker:      quiz.NewTracker(reg),
		LoginFactory: func() screen.Screen { return &stubScreen{} },
	})
	return h, user
}

func TestMenuListsInstrumentsAndActions(t *testing.T) {
	h, _ := newTestHome(t)

	wantLabels := []string{"MBTI", "DISC", "REGISTERED USERS", "LOG OUT", "EXIT"}
	if len(h.menu.Items) != len(wantLabels) {
		t.Fatalf("menu has %d items, want %d", len(h.menu.Items), len(wantLabels))
	}
	for i, want := range wantLabels {
		if h.menu.Items[i].Label != want {
			t.Errorf("item %d = %q, want %q", i, h.menu.Items[i].Label, want)
		}
	}
}

func TestEnterOnInstrumentPushesQuiz(t *testing.T) {
	h, _ := newTestHome(t)

	_, cmd := h.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command from the first menu entry")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("cmd produced %T, want PushScreenMsg", cmd())
	}
	if _, ok := msg.Screen.(*quizscreen.QuizScreen); !ok {
		t.Errorf("pushed screen is %T, want the quiz screen", msg.Screen)
	}
}

func TestLogOutReplacesWithLogin(t *testing.T) {
	h, _ := newTestHome(t)

	// Move the cursor to LOG OUT.
	for i := 0; i < 3; i++ {
		h.Update(specialKey(tea.KeyDown))
	}
	_, cmd := h.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command from LOG OUT")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("cmd produced %T, want ReplaceScreenMsg", cmd())
	}
	if _, ok := msg.Screen.(*stubScreen); !ok {
		t.Error("LOG OUT should replace the stack with the login screen")
	}
}

func TestViewShowsLiveProgressAndResult(t *testing.T) {
	h, user := newTestHome(t)

	view := h.View(100, 30)
	if !strings.Contains(view, "0%") {
		t.Errorf("view missing zero progress:\n%s", view)
	}

	// Progress and result written by a quiz session show up on the next
	// frame without rebuilding the screen.
	user.SetProgress(content.MBTI, 1)
	user.SetType(content.MBTI, "INTJ")

	view = h.View(100, 30)
	if !strings.Contains(view, "INTJ") {
		t.Errorf("view missing the computed type:\n%s", view)
	}
	if !strings.Contains(view, "100%") {
		t.Errorf("view missing completed progress:\n%s", view)
	}
}
