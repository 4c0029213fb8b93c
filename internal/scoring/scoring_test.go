package scoring

import (
	"errors"
	"testing"

	"github.com/minhvu/persona/internal/content"
)

func uniform(answer string, n int) Answers {
	a := make(Answers, n)
	for i := range a {
		a[i] = answer
	}
	return a
}

func TestClassifyMBTI(t *testing.T) {
	tests := []struct {
		name    string
		answers Answers
		want    string
	}{
		{"all yes", uniform("Có", 21), "INTJ"},
		{"all no", uniform("Không", 21), "ESFP"},
		{
			// Without the feeling label counting positive this axis would
			// tally -2 and resolve to F.
			name: "feeling label counts toward the positive side",
			answers: func() Answers {
				a := uniform("Không", 21)
				a[2] = "Có"
				a[9] = "Có"
				a[5] = "Cảm xúc"
				return a
			}(),
			want: "ESTP",
		},
		{
			name: "organized label flips JP axis",
			answers: func() Answers {
				a := uniform("Không", 21)
				a[6] = "Có"
				a[13] = "Có tổ chức"
				return a
			}(),
			want: "ESFJ",
		},
		{
			name: "zero tally resolves to first-listed letter",
			answers: func() Answers {
				// Three of the six IE questions answered yes.
				a := uniform("Không", 21)
				a[0] = "Có"
				a[3] = "Có"
				a[8] = "Có"
				return a
			}(),
			want: "ISFP",
		},
	}

	for _, tt := range tests {
		got, err := Classify(tt.answers, content.MBTI)
		if err != nil {
			t.Errorf("%s: Classify() error = %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s: Classify() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestClassifyDISC(t *testing.T) {
	tests := []struct {
		name    string
		answers Answers
		want    string
	}{
		{"all yes ties every trait", uniform("Có", 20), "DISC"},
		{"all no ties every trait", uniform("Không", 20), "DISC"},
		{
			name: "yes on one group yields single letter",
			answers: func() Answers {
				a := uniform("Không", 20)
				for i := 0; i < 20; i += 4 {
					a[i] = "Có"
				}
				return a
			}(),
			want: "D",
		},
		{
			name: "two-way tie concatenates in trait order",
			answers: func() Answers {
				a := uniform("Không", 20)
				a[0] = "Có" // D +2, forgoing the S secondary credit
				a[1] = "Có" // I +2, forgoing the C secondary credit
				return a
			}(),
			want: "DI",
		},
	}

	for _, tt := range tests {
		got, err := Classify(tt.answers, content.DISC)
		if err != nil {
			t.Errorf("%s: Classify() error = %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s: Classify() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestClassifyIncomplete(t *testing.T) {
	answers := uniform("Có", 21)
	answers[7] = ""
	answers[19] = ""

	_, err := Classify(answers, content.MBTI)
	var incomplete *IncompleteError
	if !errors.As(err, &incomplete) {
		t.Fatalf("Classify() error = %v, want *IncompleteError", err)
	}
	if incomplete.Instrument != content.MBTI {
		t.Errorf("Instrument = %q, want %q", incomplete.Instrument, content.MBTI)
	}
	if len(incomplete.Missing) != 2 || incomplete.Missing[0] != 7 || incomplete.Missing[1] != 19 {
		t.Errorf("Missing = %v, want [7 19]", incomplete.Missing)
	}
}

func TestClassifyShortSequence(t *testing.T) {
	_, err := Classify(uniform("Có", 5), content.DISC)
	var incomplete *IncompleteError
	if !errors.As(err, &incomplete) {
		t.Fatalf("Classify() error = %v, want *IncompleteError", err)
	}
	if len(incomplete.Missing) != 15 {
		t.Errorf("len(Missing) = %d, want 15", len(incomplete.Missing))
	}
}

func TestClassifyUnknownInstrument(t *testing.T) {
	_, err := Classify(uniform("Có", 21), content.Instrument("ENNEAGRAM"))
	if err == nil {
		t.Fatal("Classify() expected error for unknown instrument")
	}
}

func TestAnswersHighestAnswered(t *testing.T) {
	tests := []struct {
		name    string
		answers Answers
		want    int
	}{
		{"empty", Answers{}, -1},
		{"none answered", Answers{"", "", ""}, -1},
		{"gap before highest", Answers{"Có", "", "Không", ""}, 2},
		{"all answered", Answers{"Có", "Không"}, 1},
	}

	for _, tt := range tests {
		if got := tt.answers.HighestAnswered(); got != tt.want {
			t.Errorf("%s: HighestAnswered() = %d, want %d", tt.name, got, tt.want)
		}
	}
}
