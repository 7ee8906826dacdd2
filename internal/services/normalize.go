package services

import (
	"strconv"
	"strings"

	"github.com/RITVIKKAMASETTY/StudentAnalysisBackend/internal/models"
)

// NormalizeMap coerces a parsed-but-untrusted value into the shape a schema
// declares. It never fails: anything absent or of the wrong type is replaced
// by the field's default, so the output always satisfies the shape invariant.
func NormalizeMap(parsed any, schema models.Schema) map[string]any {
	src, _ := parsed.(map[string]any)
	out := make(map[string]any, len(schema.Fields))
	for _, f := range schema.Fields {
		out[f.Name] = normalizeField(src[f.Name], f)
	}
	return out
}

func normalizeField(v any, f models.Field) any {
	switch f.Kind {
	case models.KindNumber:
		if n, ok := toNumber(v); ok {
			return n
		}
		return f.Default
	case models.KindString:
		if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
			return s
		}
		return f.Default
	case models.KindStringList:
		if list, ok := toStringList(v); ok {
			return list
		}
		return f.Default
	case models.KindObject:
		return NormalizeMap(v, models.Schema{Fields: f.Fields})
	}
	return f.Default
}

// toNumber accepts actual JSON numbers plus numeric-looking strings, which
// models emit often enough to matter.
func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	}
	return 0, false
}

func toStringList(v any) ([]string, bool) {
	switch list := v.(type) {
	case []string:
		return list, true
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	}
	return nil, false
}
