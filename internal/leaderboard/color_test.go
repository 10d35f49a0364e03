package leaderboard

import (
	"image/color"
	"testing"

	"github.com/abhisek/scorecard/internal/ui/theme"
)

func TestColorFor_Podium(t *testing.T) {
	first, second, third := ColorFor("1"), ColorFor("2"), ColorFor("3")

	if first != theme.RankGold {
		t.Errorf("rank 1 = %v, want gold", first)
	}
	if second != theme.RankBlue {
		t.Errorf("rank 2 = %v, want blue", second)
	}
	if third != theme.RankOrange {
		t.Errorf("rank 3 = %v, want orange", third)
	}
	if first == second || second == third || first == third {
		t.Error("podium colors must be distinct")
	}
	for _, c := range []color.Color{first, second, third} {
		if c == theme.Text {
			t.Errorf("podium color %v must differ from neutral", c)
		}
	}
}

func TestColorFor_Neutral(t *testing.T) {
	for _, rank := range []any{"4", 4, nil, "", "10", "01", 3.0, "first"} {
		if got := ColorFor(rank); got != theme.Text {
			t.Errorf("ColorFor(%#v) = %v, want neutral", rank, got)
		}
	}
}

func TestColorFor_IntegerRanks(t *testing.T) {
	if ColorFor(1) != ColorFor("1") {
		t.Error("integer rank 1 should match string rank 1")
	}
	if ColorFor(int64(3)) != ColorFor("3") {
		t.Error("int64 rank 3 should match string rank 3")
	}
}
