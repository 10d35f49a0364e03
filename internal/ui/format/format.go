// Package format renders numeric display values used across screens.
package format

import (
	"fmt"
	"math"
)

// Clock formats a duration in seconds as M:SS. Minutes are not padded and
// negative input renders as 0:00.
func Clock(totalSeconds int) string {
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	return fmt.Sprintf("%d:%02d", totalSeconds/60, totalSeconds%60)
}

// Percent formats a 0-100 score as a whole percentage.
func Percent(p float64) string {
	if math.IsNaN(p) {
		p = 0
	}
	return fmt.Sprintf("%.0f%%", p)
}

// XP formats an optional XP award. Unknown XP renders as a dash, not zero.
func XP(xp *int) string {
	if xp == nil {
		return "—"
	}
	return fmt.Sprintf("+%d XP", *xp)
}
