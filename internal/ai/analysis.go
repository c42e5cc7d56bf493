package ai

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/amckenna/artgrow/internal/stamp"
	"github.com/amckenna/artgrow/task"
)

// TaskAnalysis is the structured record expected back from the
// task-analysis call.
type TaskAnalysis struct {
	Priority string `json:"priority"`
	Category string `json:"category"`
	DueDate  string `json:"due_date"`
	Tip      string `json:"tip"`
}

// DefaultTip is the fallback tip used when the service returns malformed
// structured output.
const DefaultTip = "Break this into one small exercise you can do today."

// ErrNoAnalysis is returned by ParseTaskAnalysis when the response holds
// no parsable JSON object.
var ErrNoAnalysis = errors.New("no task analysis found in response")

// DefaultTaskAnalysis is the fixed record used when the structured
// response cannot be parsed: medium priority, a general category, and a
// due date three days out.
func DefaultTaskAnalysis() TaskAnalysis {
	return TaskAnalysis{
		Priority: string(task.PriorityMedium),
		Category: "general",
		DueDate:  stamp.DateIn(3),
		Tip:      DefaultTip,
	}
}

// ParseTaskAnalysis parses raw model output into a TaskAnalysis. Markdown
// code fences and surrounding prose are tolerated; the first JSON object
// in the text is used. Missing or invalid fields are filled from
// DefaultTaskAnalysis. The error reports why parsing failed so callers
// can log it, but callers are expected to degrade to the returned
// defaults rather than abort.
func ParseTaskAnalysis(raw string) (TaskAnalysis, error) {
	fallback := DefaultTaskAnalysis()

	object, ok := extractJSONObject(raw)
	if !ok {
		return fallback, ErrNoAnalysis
	}

	var parsed TaskAnalysis
	if err := json.Unmarshal([]byte(object), &parsed); err != nil {
		return fallback, err
	}

	parsed.Priority = string(task.NormalizePriority(parsed.Priority))
	if strings.TrimSpace(parsed.Category) == "" {
		parsed.Category = fallback.Category
	}
	if strings.TrimSpace(parsed.DueDate) == "" {
		parsed.DueDate = fallback.DueDate
	}
	if strings.TrimSpace(parsed.Tip) == "" {
		parsed.Tip = fallback.Tip
	}

	return parsed, nil
}

// extractJSONObject returns the first balanced {...} span in the text.
func extractJSONObject(raw string) (string, bool) {
	start := strings.Index(raw, "{")
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(raw); i++ {
		c := raw[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return raw[start : i+1], true
			}
		}
	}
	return "", false
}
