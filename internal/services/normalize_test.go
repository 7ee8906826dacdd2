package services

import (
	"testing"

	"github.com/RITVIKKAMASETTY/StudentAnalysisBackend/internal/models"
)

var testSchema = models.Schema{Fields: []models.Field{
	{Name: "score", Kind: models.KindNumber, Default: 70.0},
	{Name: "summary", Kind: models.KindString, Default: "n/a"},
	{Name: "tags", Kind: models.KindStringList, Default: []string{}},
	{Name: "breakdown", Kind: models.KindObject, Fields: []models.Field{
		{Name: "clarity", Kind: models.KindNumber, Default: 50.0},
	}},
}}

func TestNormalizeMapShapeInvariant(t *testing.T) {
	// whatever goes in, every declared field must come out with its type
	inputs := []any{
		nil,
		"not a map",
		float64(42),
		[]any{"a", "b"},
		map[string]any{},
		map[string]any{"score": "not numeric", "summary": 7, "tags": "nope", "breakdown": []any{}},
		map[string]any{"unrelated": true},
	}

	for _, input := range inputs {
		out := NormalizeMap(input, testSchema)

		if _, ok := out["score"].(float64); !ok {
			t.Errorf("input %#v: score = %#v, want float64", input, out["score"])
		}
		if _, ok := out["summary"].(string); !ok {
			t.Errorf("input %#v: summary = %#v, want string", input, out["summary"])
		}
		if _, ok := out["tags"].([]string); !ok {
			t.Errorf("input %#v: tags = %#v, want []string", input, out["tags"])
		}
		breakdown, ok := out["breakdown"].(map[string]any)
		if !ok {
			t.Fatalf("input %#v: breakdown = %#v, want map", input, out["breakdown"])
		}
		if _, ok := breakdown["clarity"].(float64); !ok {
			t.Errorf("input %#v: breakdown.clarity = %#v, want float64", input, breakdown["clarity"])
		}
	}
}

func TestNormalizeMapCopiesValidFields(t *testing.T) {
	out := NormalizeMap(map[string]any{
		"score":     float64(91),
		"summary":   "strong profile",
		"tags":      []any{"go", "mongo"},
		"breakdown": map[string]any{"clarity": float64(88)},
	}, testSchema)

	if out["score"] != float64(91) {
		t.Errorf("score = %v, want 91", out["score"])
	}
	if out["summary"] != "strong profile" {
		t.Errorf("summary = %v, want copied value", out["summary"])
	}
	tags := out["tags"].([]string)
	if len(tags) != 2 || tags[0] != "go" || tags[1] != "mongo" {
		t.Errorf("tags = %v, want [go mongo]", tags)
	}
	if out["breakdown"].(map[string]any)["clarity"] != float64(88) {
		t.Errorf("breakdown.clarity = %v, want 88", out["breakdown"].(map[string]any)["clarity"])
	}
}

func TestNormalizeMapNumericStringCoercion(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  float64
	}{
		{"numeric string", "85", 85},
		{"numeric string with spaces", " 91.5 ", 91.5},
		{"non-numeric string falls back", "eighty five", 70},
		{"empty string falls back", "", 70},
		{"bool falls back", true, 70},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := NormalizeMap(map[string]any{"score": tt.value}, testSchema)
			if out["score"] != tt.want {
				t.Errorf("score = %v, want %v", out["score"], tt.want)
			}
		})
	}
}

func TestNormalizeMapRejectsMixedLists(t *testing.T) {
	out := NormalizeMap(map[string]any{"tags": []any{"go", 3}}, testSchema)
	tags := out["tags"].([]string)
	if len(tags) != 0 {
		t.Errorf("tags = %v, want default on mixed-type list", tags)
	}
}
