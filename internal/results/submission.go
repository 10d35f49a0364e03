package results

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Submission is the raw result payload returned by the grading backend.
// Field names may arrive in snake_case or camelCase, and any field may be
// missing, null, or of the wrong type.
type Submission map[string]any

// field is an ordered list of payload keys. The first key holding a usable
// value wins.
type field []string

var (
	fieldXPAwarded    = field{"xp_awarded", "xpAwarded"}
	fieldCorrect      = field{"correct_count", "correctCount"}
	fieldTotal        = field{"total_questions", "totalQuestions"}
	fieldScore        = field{"score_count", "scoreCount"}
	fieldPassed       = field{"passed"}
	fieldPassingScore = field{"passing_score", "passingScore"}
)

// lookup walks the keys of f in order and returns the first value that
// accept converts. Null or unconvertible values fall through to the next key.
func lookup[T any](s Submission, f field, accept func(any) (T, bool)) (T, bool) {
	var zero T
	if s == nil {
		return zero, false
	}
	for _, key := range f {
		raw, ok := s[key]
		if !ok || raw == nil {
			continue
		}
		if v, ok := accept(raw); ok {
			return v, true
		}
	}
	return zero, false
}

// asNumber accepts JSON numbers only.
func asNumber(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// asNumeric accepts JSON numbers and numeric strings such as "60".
func asNumeric(v any) (float64, bool) {
	if s, ok := v.(string); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	}
	return asNumber(v)
}

// asCount accepts numeric values and truncates them to an integer. Values
// outside the int range are rejected.
func asCount(v any) (int, bool) {
	f, ok := asNumeric(v)
	if !ok {
		return 0, false
	}
	f = math.Trunc(f)
	if f < math.MinInt || f >= math.MaxInt+1 {
		return 0, false
	}
	return int(f), true
}

func asBool(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

// DecodeSubmission reads a submission payload from r. Only malformed JSON
// is an error; a payload that is not an object decodes to an empty
// submission.
func DecodeSubmission(r io.Reader) (Submission, error) {
	var raw any
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode submission: %w", err)
	}
	return submissionFrom(raw), nil
}

func submissionFrom(raw any) Submission {
	obj, ok := raw.(map[string]any)
	if !ok {
		return Submission{}
	}
	return Submission(obj)
}

// State is the navigation state handed to the result screen after a test
// attempt is submitted.
type State struct {
	TestID         string
	ElapsedSeconds int
	Submission     Submission
	Questions      []any
}

// DecodeState reads a navigation state document of the form
//
//	{"testId": "...", "elapsedSeconds": 95, "submitResult": {...}, "questions": [...]}
//
// Missing or wrong-typed members fall back to their zero values.
func DecodeState(r io.Reader) (State, error) {
	var raw map[string]any
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return State{}, fmt.Errorf("decode result state: %w", err)
	}

	var st State
	if id, ok := raw["testId"].(string); ok {
		st.TestID = id
	}
	if secs, ok := asCount(raw["elapsedSeconds"]); ok && secs > 0 {
		st.ElapsedSeconds = secs
	}
	st.Submission = submissionFrom(raw["submitResult"])
	if qs, ok := raw["questions"].([]any); ok {
		st.Questions = qs
	}
	return st, nil
}

// Summary derives the display summary for this state.
func (st State) Summary() Summary {
	return Derive(st.Submission, st.ElapsedSeconds, len(st.Questions))
}
