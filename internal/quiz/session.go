package quiz

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/minhvu/persona/internal/content"
	"github.com/minhvu/persona/internal/registry"
	"github.com/minhvu/persona/internal/scoring"
)

// Config carries the collaborators a Session needs. User is passed in
// explicitly; the session holds no ambient current-user state.
type Config struct {
	User       *registry.UserProfile
	Instrument content.Instrument
	Questions  []content.Question
	Store      AnswerStore
	Tracker    ProgressSink

	// OnPersistError handles persistence failures during the session.
	// Defaults to logging on stderr via the app wiring.
	OnPersistError PersistErrorFunc
}

// Session is the state machine for one assessment run. It tracks the
// current question index and the answer sequence, writing every answer
// through to the store and every forward step through to the tracker.
type Session struct {
	id        string
	user      *registry.UserProfile
	inst      content.Instrument
	questions []content.Question
	index     int
	answers   scoring.Answers
	completed bool
	code      string

	store     AnswerStore
	tracker   ProgressSink
	onPerserr PersistErrorFunc
}

// NewSession starts or resumes an assessment for cfg.User. Any previously
// stored answer sequence is restored and the session resumes at the highest
// answered index + 1, clamped to the final question.
func NewSession(ctx context.Context, cfg Config) (*Session, error) {
	if cfg.User == nil {
		return nil, fmt.Errorf("quiz: nil user")
	}
	if !cfg.Instrument.Valid() {
		return nil, fmt.Errorf("quiz: unknown instrument %q", cfg.Instrument)
	}
	if len(cfg.Questions) == 0 {
		return nil, fmt.Errorf("quiz: no questions for %s", cfg.Instrument)
	}
	if cfg.OnPersistError == nil {
		cfg.OnPersistError = func(string, error) {}
	}

	s := &Session{
		id:        uuid.New().String(),
		user:      cfg.User,
		inst:      cfg.Instrument,
		questions: cfg.Questions,
		answers:   make(scoring.Answers, len(cfg.Questions)),
		store:     cfg.Store,
		tracker:   cfg.Tracker,
		onPerserr: cfg.OnPersistError,
	}

	stored, err := s.store.Load(ctx, cfg.User.Key(), cfg.Instrument)
	if err != nil {
		// Treated as "nothing stored": the user restarts from the top
		// rather than being locked out of the assessment.
		s.onPerserr("load answers", err)
		stored = nil
	}
	// Stored sequences never exceed the question count; guard against a
	// dataset that shrank between runs.
	copy(s.answers, stored)

	if last := s.answers.HighestAnswered(); last >= 0 {
		s.index = last + 1
		if s.index > s.lastIndex() {
			s.index = s.lastIndex()
		}
	}

	return s, nil
}

// ID returns the unique identifier of this run.
func (s *Session) ID() string { return s.id }

// User returns the profile this session belongs to.
func (s *Session) User() *registry.UserProfile { return s.user }

// Instrument returns the assessment being taken.
func (s *Session) Instrument() content.Instrument { return s.inst }

// Index returns the current question index.
func (s *Session) Index() int { return s.index }

// Total returns the number of questions in the instrument.
func (s *Session) Total() int { return len(s.questions) }

// Question returns the current question.
func (s *Session) Question() content.Question { return s.questions[s.index] }

// Answer returns the answer at the current index, or "" when unanswered.
func (s *Session) Answer() string { return s.answers[s.index] }

// Answers returns a copy of the answer sequence.
func (s *Session) Answers() scoring.Answers {
	out := make(scoring.Answers, len(s.answers))
	copy(out, s.answers)
	return out
}

// Progress returns the fraction of questions answered so far.
func (s *Session) Progress() float64 {
	if s.completed {
		return 1
	}
	return float64(s.answers.HighestAnswered()+1) / float64(len(s.questions))
}

// Completed reports whether Submit has run.
func (s *Session) Completed() bool { return s.completed }

// Code returns the computed personality code after completion.
func (s *Session) Code() string { return s.code }

func (s *Session) lastIndex() int { return len(s.questions) - 1 }

// SelectAnswer records option for the current question, overwriting any
// previous answer, and writes the full sequence through to the store.
func (s *Session) SelectAnswer(ctx context.Context, option string) error {
	if s.completed {
		return &ValidationError{Reason: "assessment already completed"}
	}
	if !contains(s.Question().Options, option) {
		return &ValidationError{Reason: fmt.Sprintf("%q is not an option for this question", option)}
	}

	s.answers[s.index] = option

	if err := s.store.Save(ctx, s.user.Key(), s.inst, s.id, s.answers); err != nil {
		s.onPerserr("save answers", err)
	}
	return nil
}

// Advance moves to the next question, persisting the new progress fraction
// first. On the final question it submits instead; the session never holds
// an index past the last question. Advancing an unanswered question is a
// ValidationError and changes nothing.
func (s *Session) Advance(ctx context.Context) error {
	if s.completed {
		return &ValidationError{Reason: "assessment already completed"}
	}
	if s.Answer() == "" {
		return &ValidationError{Reason: "unanswered question"}
	}
	if s.index == s.lastIndex() {
		return s.Submit(ctx)
	}

	fraction := float64(s.index+1) / float64(len(s.questions))
	if err := s.tracker.RecordProgress(s.user, s.inst, fraction); err != nil {
		s.onPerserr("record progress", err)
	}

	s.index++
	return nil
}

// Retreat moves back one question. It reports false at the first question.
// Navigating back never regresses stored progress.
func (s *Session) Retreat() bool {
	if s.completed || s.index == 0 {
		return false
	}
	s.index--
	return true
}

// Submit scores the completed sequence and commits progress 1.0 plus the
// personality code to the user's profile. The final question must be
// answered; a sequence with gaps elsewhere fails classification outright
// rather than mis-scoring.
func (s *Session) Submit(ctx context.Context) error {
	if s.completed {
		return &ValidationError{Reason: "assessment already completed"}
	}
	if s.answers[s.lastIndex()] == "" {
		return &ValidationError{Reason: "unanswered question"}
	}

	code, err := scoring.Classify(s.answers, s.inst)
	if err != nil {
		return err
	}

	if err := s.tracker.RecordCompletion(s.user, s.inst, code); err != nil {
		s.onPerserr("record completion", err)
	}

	s.completed = true
	s.code = code
	return nil
}

func contains(options []string, option string) bool {
	for _, o := range options {
		if o == option {
			return true
		}
	}
	return false
}
