package quiz

import (
	"github.com/minhvu/persona/internal/quiz"
)

// sessionReadyMsg is sent when the session has loaded any stored answers
// and is ready to serve questions.
type sessionReadyMsg struct {
	Session *quiz.Session
	Err     error
}
