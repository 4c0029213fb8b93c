// Package quiz drives a single assessment run: the question-sequencing
// state machine, write-through answer persistence, and progress commits to
// the user registry.
package quiz

import (
	"context"
	"fmt"
	"io"

	"github.com/minhvu/persona/internal/content"
	"github.com/minhvu/persona/internal/registry"
	"github.com/minhvu/persona/internal/scoring"
)

// ValidationError signals a user action that the state machine rejects,
// such as advancing past an unanswered question. The caller re-prompts; no
// state was mutated.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// AnswerStore persists answer sequences for resumability across runs.
type AnswerStore interface {
	Save(ctx context.Context, userKey string, inst content.Instrument, sessionID string, answers scoring.Answers) error
	Load(ctx context.Context, userKey string, inst content.Instrument) (scoring.Answers, error)
}

// ProgressSink receives progress fractions and completion results.
type ProgressSink interface {
	RecordProgress(user *registry.UserProfile, inst content.Instrument, fraction float64) error
	RecordCompletion(user *registry.UserProfile, inst content.Instrument, code string) error
}

// PersistErrorFunc is the policy applied when a persistence side effect
// fails mid-session. The default logs and continues, keeping the
// interactive flow unblocked; callers wanting stricter handling supply
// their own.
type PersistErrorFunc func(op string, err error)

// LogPersistErrors returns the default policy: write the failure to w and
// treat the operation as a no-op.
func LogPersistErrors(w io.Writer) PersistErrorFunc {
	return func(op string, err error) {
		fmt.Fprintf(w, "persona: %s failed: %v\n", op, err)
	}
}
