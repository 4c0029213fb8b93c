package content

import "testing"

func loadLibrary(t *testing.T) *Library {
	t.Helper()
	lib, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return lib
}

func TestLoadQuestionCounts(t *testing.T) {
	lib := loadLibrary(t)

	tests := []struct {
		inst Instrument
		want int
	}{
		{MBTI, 21},
		{DISC, 20},
	}
	for _, tt := range tests {
		if got := len(lib.Questions(tt.inst)); got != tt.want {
			t.Errorf("len(Questions(%s)) = %d, want %d", tt.inst, got, tt.want)
		}
	}
}

func TestQuestionsHaveClosedOptionSets(t *testing.T) {
	lib := loadLibrary(t)

	for _, inst := range Instruments() {
		for i, q := range lib.Questions(inst) {
			if q.Text == "" {
				t.Errorf("%s question %d has empty text", inst, i)
			}
			if len(q.Options) < 2 {
				t.Errorf("%s question %d has %d options, want at least 2", inst, i, len(q.Options))
			}
		}
	}
}

func TestCatalogCoversMBTICodes(t *testing.T) {
	lib := loadLibrary(t)

	// Every combination one letter per axis must have an entry.
	for _, a := range []string{"I", "E"} {
		for _, b := range []string{"N", "S"} {
			for _, c := range []string{"T", "F"} {
				for _, d := range []string{"J", "P"} {
					code := a + b + c + d
					if _, ok := lib.Lookup(MBTI, code); !ok {
						t.Errorf("catalog missing MBTI code %q", code)
					}
				}
			}
		}
	}
	if got := len(lib.Codes(MBTI)); got != 16 {
		t.Errorf("len(Codes(MBTI)) = %d, want 16", got)
	}
}

func TestCatalogCoversDISCCombinations(t *testing.T) {
	lib := loadLibrary(t)

	// Trait tallies can tie in any combination, so every non-empty subset
	// of D,I,S,C in trait order must resolve.
	traits := []string{"D", "I", "S", "C"}
	var combos []string
	for mask := 1; mask < 16; mask++ {
		code := ""
		for i, tr := range traits {
			if mask&(1<<i) != 0 {
				code += tr
			}
		}
		combos = append(combos, code)
	}

	for _, code := range combos {
		if _, ok := lib.Lookup(DISC, code); !ok {
			t.Errorf("catalog missing DISC code %q", code)
		}
	}
	if got := len(lib.Codes(DISC)); got != 15 {
		t.Errorf("len(Codes(DISC)) = %d, want 15", got)
	}
}

func TestLookupMiss(t *testing.T) {
	lib := loadLibrary(t)
	if _, ok := lib.Lookup(MBTI, "ZZZZ"); ok {
		t.Error("Lookup(MBTI, ZZZZ) = true, want miss")
	}
	if _, ok := lib.Lookup(Instrument("TAROT"), "INTJ"); ok {
		t.Error("Lookup on unknown instrument = true, want miss")
	}
}
