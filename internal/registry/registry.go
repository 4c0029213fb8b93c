// Package registry is the flat-file user registry: one JSON file holding
// every registered profile. The quiz core only depends on Upsert; login and
// the user list use the query methods.
package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/minhvu/persona/internal/content"
)

// UserProfile is one registry record. Progress holds a completion fraction
// in [0,1] per instrument; Types holds the computed personality code once
// an instrument reaches 1.0.
type UserProfile struct {
	Username string                         `json:"username"`
	Email    string                         `json:"email"`
	Password string                         `json:"password"`
	Progress map[content.Instrument]float64 `json:"progress"`
	Types    map[content.Instrument]string  `json:"personalityTypes,omitempty"`
}

// NewProfile creates a profile with zeroed progress for every instrument.
func NewProfile(username, email, password string) *UserProfile {
	progress := make(map[content.Instrument]float64, len(content.Instruments()))
	for _, inst := range content.Instruments() {
		progress[inst] = 0
	}
	return &UserProfile{
		Username: username,
		Email:    email,
		Password: password,
		Progress: progress,
	}
}

// Key returns the stable identity used to key stored answer sequences:
// the email when present, the username otherwise.
func (u *UserProfile) Key() string {
	if u.Email != "" {
		return u.Email
	}
	return u.Username
}

// ProgressFor returns the stored completion fraction for an instrument.
func (u *UserProfile) ProgressFor(inst content.Instrument) float64 {
	return u.Progress[inst]
}

// TypeFor returns the computed personality code for an instrument.
func (u *UserProfile) TypeFor(inst content.Instrument) (string, bool) {
	code, ok := u.Types[inst]
	return code, ok
}

// SetProgress records a completion fraction.
func (u *UserProfile) SetProgress(inst content.Instrument, fraction float64) {
	if u.Progress == nil {
		u.Progress = make(map[content.Instrument]float64)
	}
	u.Progress[inst] = fraction
}

// SetType records a computed personality code.
func (u *UserProfile) SetType(inst content.Instrument, code string) {
	if u.Types == nil {
		u.Types = make(map[content.Instrument]string)
	}
	u.Types[inst] = code
}

// Registry reads and writes the users file. Every operation is a full-file
// read or read-modify-write; last write wins across sessions.
type Registry struct {
	mu   sync.Mutex
	path string
}

// Open returns a Registry backed by the given file path. The file is
// created on first Upsert.
func Open(path string) *Registry {
	return &Registry{path: path}
}

// FindByCredentials returns the profile whose email or username matches
// identifier with a matching password, or nil when no profile matches.
func (r *Registry) FindByCredentials(identifier, password string) (*UserProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range users {
		u := &users[i]
		if (u.Email == identifier || u.Username == identifier) && u.Password == password {
			if u.Progress == nil {
				u.Progress = make(map[content.Instrument]float64)
			}
			return u, nil
		}
	}
	return nil, nil
}

// Find returns the profile whose email or username matches identifier, or
// nil when none does.
func (r *Registry) Find(identifier string) (*UserProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == identifier || users[i].Username == identifier {
			return &users[i], nil
		}
	}
	return nil, nil
}

// ListAll returns every registered profile in file order.
func (r *Registry) ListAll() ([]UserProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

// Upsert replaces the stored profile with the same identity key, or appends
// the profile when the key is new, then rewrites the whole file.
func (r *Registry) Upsert(profile *UserProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return err
	}

	replaced := false
	for i := range users {
		if users[i].Key() == profile.Key() {
			users[i] = *profile
			replaced = true
			break
		}
	}
	if !replaced {
		users = append(users, *profile)
	}

	return r.save(users)
}

func (r *Registry) load() ([]UserProfile, error) {
	raw, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read users file: %w", err)
	}

	var users []UserProfile
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, fmt.Errorf("decode users file: %w", err)
	}
	return users, nil
}

func (r *Registry) save(users []UserProfile) error {
	raw, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return fmt.Errorf("encode users file: %w", err)
	}
	if err := os.WriteFile(r.path, raw, 0o644); err != nil {
		return fmt.Errorf("write users file: %w", err)
	}
	return nil
}
