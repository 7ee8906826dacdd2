package services

import (
	"errors"
	"reflect"
	"testing"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  any
	}{
		{
			name:  "bare object",
			input: `{"score": 85}`,
			want:  map[string]any{"score": float64(85)},
		},
		{
			name:  "fenced with language tag",
			input: "```json\n{\"score\": 85}\n```",
			want:  map[string]any{"score": float64(85)},
		},
		{
			name:  "fenced without language tag",
			input: "```\n{\"ok\": true}\n```",
			want:  map[string]any{"ok": true},
		},
		{
			name:  "prose around object",
			input: "Here is the result you asked for:\n{\"score\": 85}\nHope that helps!",
			want:  map[string]any{"score": float64(85)},
		},
		{
			name:  "array in prose",
			input: "The list is [1, 2, 3] as requested.",
			want:  []any{float64(1), float64(2), float64(3)},
		},
		{
			name:  "nested braces sliced correctly",
			input: "prefix {\"outer\": {\"inner\": 1}} suffix",
			want:  map[string]any{"outer": map[string]any{"inner": float64(1)}},
		},
		{
			name:  "scalar verbatim",
			input: "85",
			want:  float64(85),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSON(tt.input)
			if err != nil {
				t.Fatalf("ExtractJSON(%q) returned error: %v", tt.input, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractJSON(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}

func TestExtractJSONNoValidJSON(t *testing.T) {
	inputs := []string{
		"",
		"The student communicates well and shows strong leadership.",
		"```json\nnot json at all\n```",
		"unbalanced } { braces",
	}

	for _, input := range inputs {
		_, err := ExtractJSON(input)
		if err == nil {
			t.Errorf("ExtractJSON(%q) expected error, got nil", input)
			continue
		}

		var noJSON *NoValidJSONError
		if !errors.As(err, &noJSON) {
			t.Errorf("ExtractJSON(%q) error type = %T, want *NoValidJSONError", input, err)
			continue
		}
		if noJSON.Raw != input {
			t.Errorf("NoValidJSONError.Raw = %q, want original input", noJSON.Raw)
		}
	}
}
