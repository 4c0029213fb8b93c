package quiz

import (
	"github.com/minhvu/persona/internal/content"
	"github.com/minhvu/persona/internal/registry"
)

// Tracker commits progress fractions and completion results to the user
// registry via full-profile read-modify-write upserts.
type Tracker struct {
	reg *registry.Registry
}

// NewTracker creates a Tracker writing to reg.
func NewTracker(reg *registry.Registry) *Tracker {
	return &Tracker{reg: reg}
}

// RecordProgress writes the completion fraction for an instrument onto the
// profile and persists it. Callers guarantee fraction is in [0,1].
func (t *Tracker) RecordProgress(user *registry.UserProfile, inst content.Instrument, fraction float64) error {
	user.SetProgress(inst, fraction)
	return t.reg.Upsert(user)
}

// RecordCompletion marks the instrument complete and stores the computed
// personality code on the profile.
func (t *Tracker) RecordCompletion(user *registry.UserProfile, inst content.Instrument, code string) error {
	user.SetProgress(inst, 1)
	user.SetType(inst, code)
	return t.reg.Upsert(user)
}
