// Package content holds the static question sets and the personality-type
// catalog for both instruments. The data ships embedded in the binary and is
// validated against JSON schemas at load time, so a bad edit to the data
// files fails at startup instead of mis-scoring silently.
package content

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
)

//go:embed data/quizzes.json data/personality_types.json
var dataFS embed.FS

// Instrument identifies one of the supported assessments.
type Instrument string

const (
	MBTI Instrument = "MBTI"
	DISC Instrument = "DISC"
)

// Instruments returns the supported instruments in display order.
func Instruments() []Instrument {
	return []Instrument{MBTI, DISC}
}

// Valid reports whether the instrument is one of the supported values.
func (i Instrument) Valid() bool {
	return i == MBTI || i == DISC
}

// Question is a single quiz question with its closed set of answer labels.
// Option labels are matched exactly by the scoring rules.
type Question struct {
	Text    string   `json:"question"`
	Options []string `json:"options"`
}

// PersonalityType is one catalog entry, keyed by (instrument, code).
type PersonalityType struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

// Library provides read-only access to the loaded content.
type Library struct {
	questions map[Instrument][]Question
	catalog   map[Instrument]map[string]PersonalityType
}

// Load parses and validates the embedded datasets.
func Load() (*Library, error) {
	quizRaw, err := dataFS.ReadFile("data/quizzes.json")
	if err != nil {
		return nil, fmt.Errorf("read quizzes data: %w", err)
	}
	if err := validate(quizSchema, quizRaw); err != nil {
		return nil, fmt.Errorf("quizzes data: %w", err)
	}

	catalogRaw, err := dataFS.ReadFile("data/personality_types.json")
	if err != nil {
		return nil, fmt.Errorf("read catalog data: %w", err)
	}
	if err := validate(catalogSchema, catalogRaw); err != nil {
		return nil, fmt.Errorf("catalog data: %w", err)
	}

	var questions map[Instrument][]Question
	if err := json.Unmarshal(quizRaw, &questions); err != nil {
		return nil, fmt.Errorf("decode quizzes data: %w", err)
	}

	var catalog map[Instrument]map[string]PersonalityType
	if err := json.Unmarshal(catalogRaw, &catalog); err != nil {
		return nil, fmt.Errorf("decode catalog data: %w", err)
	}

	return &Library{questions: questions, catalog: catalog}, nil
}

// Questions returns the fixed ordered question list for an instrument.
func (l *Library) Questions(inst Instrument) []Question {
	return l.questions[inst]
}

// Lookup returns the catalog entry for a personality code.
func (l *Library) Lookup(inst Instrument, code string) (PersonalityType, bool) {
	pt, ok := l.catalog[inst][code]
	return pt, ok
}

// Codes returns the sorted set of catalog codes for an instrument.
func (l *Library) Codes(inst Instrument) []string {
	codes := make([]string, 0, len(l.catalog[inst]))
	for code := range l.catalog[inst] {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
