package leaderboard

import (
	"fmt"
	"image/color"

	"github.com/abhisek/scorecard/internal/ui/theme"
)

// ColorFor returns the row color for a leaderboard rank. The top three
// ranks get podium colors; every other value, including nil, is neutral.
// Integer ranks are matched by their decimal form.
func ColorFor(rank any) color.Color {
	switch rankKey(rank) {
	case "1":
		return theme.RankGold
	case "2":
		return theme.RankBlue
	case "3":
		return theme.RankOrange
	default:
		return theme.Text
	}
}

func rankKey(rank any) string {
	switch r := rank.(type) {
	case string:
		return r
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", r)
	default:
		return ""
	}
}
