package results

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }
func intPtr(i int) *int    { return &i }

func TestDerive_Scenario(t *testing.T) {
	sub := Submission{"correct_count": 7.0, "total_questions": 10.0, "xp_awarded": 50.0}

	got := Derive(sub, 95, 0)

	want := Summary{
		Correct:        7,
		Total:          10,
		Incorrect:      3,
		ScorePercent:   70,
		XPAwarded:      intPtr(50),
		Passed:         nil,
		ElapsedSeconds: 95,
	}
	assert.Equal(t, want, got)
}

func TestDerive_FieldFallbacks(t *testing.T) {
	tests := []struct {
		name          string
		sub           Submission
		questionCount int
		want          Summary
	}{
		{
			name: "nil submission",
			sub:  nil,
			want: Summary{},
		},
		{
			name: "camelCase keys",
			sub:  Submission{"correctCount": 4.0, "totalQuestions": 5.0, "xpAwarded": 20.0},
			want: Summary{Correct: 4, Total: 5, Incorrect: 1, ScorePercent: 80, XPAwarded: intPtr(20)},
		},
		{
			name: "snake_case wins over camelCase",
			sub: Submission{
				"correct_count": 2.0, "correctCount": 9.0,
				"total_questions": 4.0, "totalQuestions": 10.0,
				"xp_awarded": 5.0, "xpAwarded": 99.0,
			},
			want: Summary{Correct: 2, Total: 4, Incorrect: 2, ScorePercent: 50, XPAwarded: intPtr(5)},
		},
		{
			name: "null snake_case falls through to camelCase",
			sub:  Submission{"xp_awarded": nil, "xpAwarded": 12.0},
			want: Summary{XPAwarded: intPtr(12)},
		},
		{
			name:          "total falls back to question count",
			sub:           Submission{"correct_count": 3.0},
			questionCount: 4,
			want:          Summary{Correct: 3, Total: 4, Incorrect: 1, ScorePercent: 75},
		},
		{
			name:          "explicit total beats question count",
			sub:           Submission{"total_questions": 2.0},
			questionCount: 9,
			want:          Summary{Total: 2, Incorrect: 2},
		},
		{
			name: "zero xp is known",
			sub:  Submission{"xp_awarded": 0.0},
			want: Summary{XPAwarded: intPtr(0)},
		},
		{
			name: "numeric strings are accepted for counts",
			sub:  Submission{"correct_count": "3", "total_questions": "6"},
			want: Summary{Correct: 3, Total: 6, Incorrect: 3, ScorePercent: 50},
		},
		{
			name: "garbage count falls through to default",
			sub:  Submission{"correct_count": "many", "total_questions": true},
			want: Summary{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Derive(tt.sub, 0, tt.questionCount)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDerive_IncorrectNeverNegative(t *testing.T) {
	for total := 0; total <= 10; total++ {
		for correct := 0; correct <= 12; correct++ {
			sub := Submission{"correct_count": float64(correct), "total_questions": float64(total)}
			got := Derive(sub, 0, 0)
			if got.Incorrect < 0 {
				t.Fatalf("correct=%d total=%d: incorrect = %d", correct, total, got.Incorrect)
			}
			if correct <= total && got.Incorrect != total-correct {
				t.Errorf("correct=%d total=%d: incorrect = %d, want %d", correct, total, got.Incorrect, total-correct)
			}
			if correct > total && got.Incorrect != 0 {
				t.Errorf("correct=%d total=%d: incorrect = %d, want 0", correct, total, got.Incorrect)
			}
		}
	}
}

func TestDerive_ScorePercent(t *testing.T) {
	tests := []struct {
		name string
		sub  Submission
		want float64
	}{
		{"server score wins", Submission{"score_count": 42.5, "correct_count": 9.0, "total_questions": 10.0}, 42.5},
		{"camelCase server score", Submission{"scoreCount": 88.0, "correct_count": 1.0, "total_questions": 10.0}, 88},
		{"server zero is authoritative", Submission{"score_count": 0.0, "correct_count": 5.0, "total_questions": 5.0}, 0},
		{"computed from counts", Submission{"correct_count": 6.0, "total_questions": 8.0}, 75},
		{"no total means zero", Submission{"correct_count": 6.0}, 0},
		{"string score is not numeric", Submission{"score_count": "90", "correct_count": 1.0, "total_questions": 4.0}, 25},
		{"json.Number score", Submission{"score_count": json.Number("64")}, 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Derive(tt.sub, 0, 0)
			assert.InDelta(t, tt.want, got.ScorePercent, 1e-9)
		})
	}
}

func TestDerive_Passed(t *testing.T) {
	tests := []struct {
		name string
		sub  Submission
		want *bool
	}{
		{"no verdict without passed or threshold", Submission{"correct_count": 10.0, "total_questions": 10.0}, nil},
		{"explicit true", Submission{"passed": true}, boolPtr(true)},
		{"explicit false beats threshold", Submission{"passed": false, "score_count": 95.0, "passing_score": 50.0}, boolPtr(false)},
		{"threshold met", Submission{"score_count": 70.0, "passing_score": 70.0}, boolPtr(true)},
		{"threshold missed", Submission{"correct_count": 3.0, "total_questions": 10.0, "passingScore": 50.0}, boolPtr(false)},
		{"threshold as numeric string", Submission{"score_count": 61.0, "passing_score": "60"}, boolPtr(true)},
		{"null passed uses threshold", Submission{"passed": nil, "score_count": 40.0, "passing_score": 50.0}, boolPtr(false)},
		{"non-boolean passed is ignored", Submission{"passed": "yes"}, nil},
		{"unparseable threshold gives no verdict", Submission{"score_count": 99.0, "passing_score": "high"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Derive(tt.sub, 0, 0)
			assert.Equal(t, tt.want, got.Passed)
		})
	}
}

func TestSummary_Verdict(t *testing.T) {
	assert.Equal(t, "", Summary{}.Verdict())
	assert.Equal(t, "Passed", Summary{Passed: boolPtr(true)}.Verdict())
	assert.Equal(t, "Failed", Summary{Passed: boolPtr(false)}.Verdict())
}

func TestSummary_JSONUsesNullForUnknowns(t *testing.T) {
	data, err := json.Marshal(Derive(Submission{"correct_count": 1.0, "total_questions": 2.0}, 3, 0))
	require.NoError(t, err)

	s := string(data)
	assert.True(t, strings.Contains(s, `"passed":null`), s)
	assert.True(t, strings.Contains(s, `"xpAwarded":null`), s)
	assert.True(t, strings.Contains(s, `"scorePercent":50`), s)
}

func TestDerive_OutOfRangeCountsFallThrough(t *testing.T) {
	tests := []struct {
		name string
		sub  Submission
		want Summary
	}{
		{
			name: "huge xp is unknown",
			sub:  Submission{"xp_awarded": 1e30},
			want: Summary{Total: 2, Incorrect: 2},
		},
		{
			name: "huge snake_case xp falls through to camelCase",
			sub:  Submission{"xp_awarded": -1e30, "xpAwarded": 40.0},
			want: Summary{Total: 2, Incorrect: 2, XPAwarded: intPtr(40)},
		},
		{
			name: "huge total falls back to question count",
			sub:  Submission{"total_questions": "1e300", "correct_count": 1.0},
			want: Summary{Correct: 1, Total: 2, Incorrect: 1, ScorePercent: 50},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Derive(tt.sub, 0, 2))
		})
	}
}
