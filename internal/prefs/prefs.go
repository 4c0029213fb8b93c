// Package prefs stores small per-install preferences in the data directory.
// Currently that is only the remembered login used to prefill the login form.
package prefs

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Remembered holds the credentials saved when "remember me" is checked.
// Stored as-is; credential hardening is out of scope for this app.
type Remembered struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// Prefs reads and writes the preferences file.
type Prefs struct {
	path string
}

// Open returns a Prefs backed by the given file path.
func Open(path string) *Prefs {
	return &Prefs{path: path}
}

// Remembered returns the saved login, or nil when none is saved.
func (p *Prefs) Remembered() (*Remembered, error) {
	raw, err := os.ReadFile(p.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read prefs file: %w", err)
	}

	var r Remembered
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, fmt.Errorf("decode prefs file: %w", err)
	}
	if r.Identifier == "" {
		return nil, nil
	}
	return &r, nil
}

// SaveRemembered persists the login for the next launch.
func (p *Prefs) SaveRemembered(r Remembered) error {
	raw, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode prefs file: %w", err)
	}
	if err := os.WriteFile(p.path, raw, 0o600); err != nil {
		return fmt.Errorf("write prefs file: %w", err)
	}
	return nil
}

// ClearRemembered removes any saved login.
func (p *Prefs) ClearRemembered() error {
	err := os.Remove(p.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove prefs file: %w", err)
	}
	return nil
}
