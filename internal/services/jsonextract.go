package services

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Models routinely wrap their JSON in markdown fences or surround it with
// prose. ExtractJSON applies three strategies in order, first match wins:
// a fenced code block, the first-{ to last-} (or bracket) slice, then the
// full text verbatim.

var fencedBlockRe = regexp.MustCompile("(?s)```[a-zA-Z0-9]*\\s*(.*?)```")

// NoValidJSONError carries the original model output for diagnostics.
type NoValidJSONError struct {
	Raw string
}

func (e *NoValidJSONError) Error() string {
	return "no valid JSON found in model output"
}

func ExtractJSON(text string) (any, error) {
	if m := fencedBlockRe.FindStringSubmatch(text); m != nil {
		if v, err := tryParseJSON(m[1]); err == nil {
			return v, nil
		}
	}

	if start, end := strings.Index(text, "{"), strings.LastIndex(text, "}"); start != -1 && end > start {
		if v, err := tryParseJSON(text[start : end+1]); err == nil {
			return v, nil
		}
	}

	if start, end := strings.Index(text, "["), strings.LastIndex(text, "]"); start != -1 && end > start {
		if v, err := tryParseJSON(text[start : end+1]); err == nil {
			return v, nil
		}
	}

	if v, err := tryParseJSON(text); err == nil {
		return v, nil
	}

	return nil, &NoValidJSONError{Raw: text}
}

func tryParseJSON(s string) (any, error) {
	var v any
	if err := json.Unmarshal([]byte(strings.TrimSpace(s)), &v); err != nil {
		return nil, err
	}
	return v, nil
}
