package content

import "testing"

func TestValidateQuizData(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{
			name:    "not JSON",
			raw:     `{broken`,
			wantErr: true,
		},
		{
			name:    "missing instrument",
			raw:     `{"MBTI": []}`,
			wantErr: true,
		},
		{
			name:    "wrong question count",
			raw:     `{"MBTI": [{"question":"q","options":["a","b"]}], "DISC": []}`,
			wantErr: true,
		},
		{
			name:    "single option rejected",
			raw:     `{"MBTI": [{"question":"q","options":["only"]}], "DISC": []}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		err := validate(quizSchema, []byte(tt.raw))
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: validate() error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestValidateCatalogData(t *testing.T) {
	valid := `{
		"MBTI": {"INTJ": {"name":"n","description":"d","imageUrl":"u"}},
		"DISC": {"DI": {"name":"n","description":"d","imageUrl":"u"}}
	}`
	if err := validate(catalogSchema, []byte(valid)); err != nil {
		t.Errorf("validate() error = %v for valid catalog", err)
	}

	tests := []struct {
		name string
		raw  string
	}{
		{
			name: "malformed MBTI code",
			raw:  `{"MBTI": {"XXXX": {"name":"n","description":"d","imageUrl":"u"}}, "DISC": {}}`,
		},
		{
			name: "DISC letters out of trait order",
			raw:  `{"MBTI": {}, "DISC": {"ID": {"name":"n","description":"d","imageUrl":"u"}}}`,
		},
		{
			name: "entry missing description",
			raw:  `{"MBTI": {"INTJ": {"name":"n","imageUrl":"u"}}, "DISC": {}}`,
		},
	}

	for _, tt := range tests {
		if err := validate(catalogSchema, []byte(tt.raw)); err == nil {
			t.Errorf("%s: validate() expected error", tt.name)
		}
	}
}

func TestCompiledSchemaCached(t *testing.T) {
	first, err := compiledSchema(quizSchema)
	if err != nil {
		t.Fatalf("compiledSchema() error = %v", err)
	}
	second, err := compiledSchema(quizSchema)
	if err != nil {
		t.Fatalf("compiledSchema() error = %v", err)
	}
	if first != second {
		t.Error("compiledSchema() recompiled instead of returning the cached schema")
	}
}
