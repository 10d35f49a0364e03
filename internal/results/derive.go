// Package results turns raw test submission payloads into display-ready
// result summaries.
package results

// Summary is the normalized outcome of a test attempt.
type Summary struct {
	Correct      int     `json:"correct"`
	Total        int     `json:"total"`
	Incorrect    int     `json:"incorrect"`
	ScorePercent float64 `json:"scorePercent"`

	// Passed is nil when neither the server nor a passing threshold
	// decides the attempt.
	Passed *bool `json:"passed"`

	// XPAwarded is nil when the server did not report XP. Unknown XP is
	// not the same as zero XP.
	XPAwarded *int `json:"xpAwarded"`

	ElapsedSeconds int `json:"elapsedSeconds"`
}

// Derive computes a Summary from a submission payload. questionCount is the
// length of the question list the attempt was taken against, used only when
// the payload carries no total. Derive never fails: missing or malformed
// fields degrade to their defaults.
func Derive(sub Submission, elapsedSeconds, questionCount int) Summary {
	var sum Summary

	if xp, ok := lookup(sub, fieldXPAwarded, asCount); ok {
		sum.XPAwarded = &xp
	}

	if correct, ok := lookup(sub, fieldCorrect, asCount); ok && correct > 0 {
		sum.Correct = correct
	}

	if total, ok := lookup(sub, fieldTotal, asCount); ok {
		sum.Total = max(total, 0)
	} else {
		sum.Total = max(questionCount, 0)
	}

	sum.Incorrect = max(sum.Total-sum.Correct, 0)

	if score, ok := lookup(sub, fieldScore, asNumber); ok {
		sum.ScorePercent = score
	} else if sum.Total > 0 {
		sum.ScorePercent = float64(sum.Correct) * 100 / float64(sum.Total)
	}

	if passed, ok := lookup(sub, fieldPassed, asBool); ok {
		sum.Passed = &passed
	} else if threshold, ok := lookup(sub, fieldPassingScore, asNumeric); ok {
		passed := sum.ScorePercent >= threshold
		sum.Passed = &passed
	}

	sum.ElapsedSeconds = elapsedSeconds
	return sum
}

// Verdict returns "Passed", "Failed", or "" when there is no verdict.
func (s Summary) Verdict() string {
	switch {
	case s.Passed == nil:
		return ""
	case *s.Passed:
		return "Passed"
	default:
		return "Failed"
	}
}
