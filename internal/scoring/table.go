package scoring

import "github.com/minhvu/persona/internal/content"

// Answer labels forming the closed vocabulary the rules match against.
const (
	labelYes       = "Có"
	labelNo        = "Không"
	labelFeeling   = "Cảm xúc"
	labelOrganized = "Có tổ chức"
)

// mbtiAxes lists the four MBTI axes in code order. Positive is the letter
// chosen when the axis tally is >= 0, Negative otherwise.
var mbtiAxes = [4]struct {
	Positive string
	Negative string
}{
	{"I", "E"},
	{"N", "S"},
	{"T", "F"},
	{"J", "P"},
}

// mbtiRule assigns one question index to an axis. Answering with any label
// in Positive adds +1 to the axis tally, any other label subtracts 1.
type mbtiRule struct {
	Axis     int
	Positive []string
}

// mbtiRules maps each of the 21 MBTI question indices to its axis rule.
// The index partition and positive label sets are fixed properties of the
// question set in internal/content.
var mbtiRules = buildMBTIRules()

func buildMBTIRules() map[int]mbtiRule {
	groups := []struct {
		Axis     int
		Indices  []int
		Positive []string
	}{
		{0, []int{0, 3, 8, 11, 15, 18}, []string{labelYes}},
		{1, []int{1, 4, 7, 10, 14, 17}, []string{labelYes}},
		{2, []int{2, 5, 9, 12, 16, 19}, []string{labelFeeling, labelYes}},
		{3, []int{6, 13, 20}, []string{labelOrganized, labelYes}},
	}

	rules := make(map[int]mbtiRule)
	for _, g := range groups {
		for _, idx := range g.Indices {
			rules[idx] = mbtiRule{Axis: g.Axis, Positive: g.Positive}
		}
	}
	return rules
}

// discTraits lists the four DISC traits in code order.
var discTraits = [4]string{"D", "I", "S", "C"}

// discSecondary maps a trait to the trait credited when a question in its
// primary group is answered "Không": D→S, I→C, S→D, C→I.
var discSecondary = [4]int{2, 3, 0, 1}

const (
	discQuestionCount = 20
	discPrimaryScore  = 2
	discSecondaryScore = 1
)

// discPrimary returns the primary trait for a DISC question index. The 20
// indices partition into four groups of five by position modulo 4.
func discPrimary(index int) int {
	return index % 4
}

// questionCount returns the number of questions the scoring table expects
// for an instrument.
func questionCount(inst content.Instrument) int {
	switch inst {
	case content.MBTI:
		return len(mbtiRules)
	case content.DISC:
		return discQuestionCount
	}
	return 0
}
