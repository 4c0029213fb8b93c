// Package scoring classifies completed answer sequences into personality
// codes. Both instruments share the same shape: a declarative table assigns
// every question index to an axis or trait, and a single loop per instrument
// folds the answers into tallies. The tables live in table.go so the
// algorithms can be tested against them directly.
package scoring

import (
	"fmt"
	"strings"

	"github.com/minhvu/persona/internal/content"
)

// Answers is an ordered answer sequence indexed by question position.
// The empty string marks an unanswered question.
type Answers []string

// Answered reports whether the question at index has an answer.
func (a Answers) Answered(index int) bool {
	return index < len(a) && a[index] != ""
}

// HighestAnswered returns the largest answered index, or -1 when none.
func (a Answers) HighestAnswered() int {
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != "" {
			return i
		}
	}
	return -1
}

// IncompleteError reports answer sequences with unanswered questions
// reaching Classify. The session prevents this during normal navigation;
// the check guards against corrupt stored sequences.
type IncompleteError struct {
	Instrument content.Instrument
	Missing    []int
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("%s answers incomplete: %d question(s) unanswered (first missing index %d)",
		e.Instrument, len(e.Missing), e.Missing[0])
}

// Classify maps a completed answer sequence to a personality code for the
// given instrument. Every question index must be answered.
func Classify(answers Answers, inst content.Instrument) (string, error) {
	n := questionCount(inst)
	if n == 0 {
		return "", fmt.Errorf("unknown instrument %q", inst)
	}

	var missing []int
	for i := 0; i < n; i++ {
		if !answers.Answered(i) {
			missing = append(missing, i)
		}
	}
	if len(missing) > 0 {
		return "", &IncompleteError{Instrument: inst, Missing: missing}
	}

	switch inst {
	case content.MBTI:
		return classifyMBTI(answers), nil
	default:
		return classifyDISC(answers), nil
	}
}

// classifyMBTI folds answers into the four axis tallies and picks one
// letter per axis. A zero tally resolves toward the first-listed letter.
func classifyMBTI(answers Answers) string {
	var tallies [4]int
	for idx, rule := range mbtiRules {
		if matchesLabel(answers[idx], rule.Positive) {
			tallies[rule.Axis]++
		} else {
			tallies[rule.Axis]--
		}
	}

	var code strings.Builder
	for axis, t := range tallies {
		if t >= 0 {
			code.WriteString(mbtiAxes[axis].Positive)
		} else {
			code.WriteString(mbtiAxes[axis].Negative)
		}
	}
	return code.String()
}

// classifyDISC folds answers into the four trait tallies: "Có" on a
// question credits its primary trait, "Không" credits the designated
// secondary, any other label contributes nothing. The code is every trait
// holding the maximum tally, concatenated in D,I,S,C order, so a unique
// leader yields a single letter and ties yield a combination.
func classifyDISC(answers Answers) string {
	var tallies [4]int
	for idx := 0; idx < discQuestionCount; idx++ {
		primary := discPrimary(idx)
		switch answers[idx] {
		case labelYes:
			tallies[primary] += discPrimaryScore
		case labelNo:
			tallies[discSecondary[primary]] += discSecondaryScore
		}
	}

	max := tallies[0]
	for _, t := range tallies[1:] {
		if t > max {
			max = t
		}
	}

	var code strings.Builder
	for trait, t := range tallies {
		if t == max {
			code.WriteString(discTraits[trait])
		}
	}
	return code.String()
}

func matchesLabel(answer string, labels []string) bool {
	for _, l := range labels {
		if answer == l {
			return true
		}
	}
	return false
}
