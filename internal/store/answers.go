package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/minhvu/persona/internal/content"
	"github.com/minhvu/persona/internal/scoring"
)

// AnswerRepo persists answer sequences keyed by (user key, instrument).
// Save overwrites the whole stored sequence; last write wins.
type AnswerRepo struct {
	db *sqlx.DB
}

type answerRow struct {
	UserKey    string    `db:"user_key"`
	Instrument string    `db:"instrument"`
	SessionID  string    `db:"session_id"`
	Answers    string    `db:"answers"`
	UpdatedAt  time.Time `db:"updated_at"`
}

// Save stores the full answer sequence for the key, replacing any previous
// sequence. The session ID records which run last touched the sequence.
func (r *AnswerRepo) Save(ctx context.Context, userKey string, inst content.Instrument, sessionID string, answers scoring.Answers) error {
	raw, err := json.Marshal(answers)
	if err != nil {
		return fmt.Errorf("encode answers: %w", err)
	}

	_, err = r.db.NamedExecContext(ctx, `
		INSERT INTO answer_sets (user_key, instrument, session_id, answers, updated_at)
		VALUES (:user_key, :instrument, :session_id, :answers, :updated_at)
		ON CONFLICT (user_key, instrument) DO UPDATE SET
			session_id = excluded.session_id,
			answers    = excluded.answers,
			updated_at = excluded.updated_at`,
		answerRow{
			UserKey:    userKey,
			Instrument: string(inst),
			SessionID:  sessionID,
			Answers:    string(raw),
			UpdatedAt:  time.Now().UTC(),
		})
	if err != nil {
		return fmt.Errorf("save answers: %w", err)
	}
	return nil
}

// Load returns the stored answer sequence for the key, or an empty sequence
// when none is stored.
func (r *AnswerRepo) Load(ctx context.Context, userKey string, inst content.Instrument) (scoring.Answers, error) {
	var row answerRow
	err := r.db.GetContext(ctx, &row,
		`SELECT user_key, instrument, session_id, answers, updated_at
		 FROM answer_sets WHERE user_key = ? AND instrument = ?`,
		userKey, string(inst))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load answers: %w", err)
	}

	var answers scoring.Answers
	if err := json.Unmarshal([]byte(row.Answers), &answers); err != nil {
		return nil, fmt.Errorf("decode answers: %w", err)
	}
	return answers, nil
}

// Delete removes the stored sequence for the key. Used by the reset command.
func (r *AnswerRepo) Delete(ctx context.Context, userKey string, inst content.Instrument) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM answer_sets WHERE user_key = ? AND instrument = ?`,
		userKey, string(inst))
	if err != nil {
		return fmt.Errorf("delete answers: %w", err)
	}
	return nil
}
