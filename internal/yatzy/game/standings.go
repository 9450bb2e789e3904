package game

import (
	"sort"

	"github.com/louisbranch/yatzy/internal/yatzy/scorecard"
)

// Standing is one player's final or running score.
type Standing struct {
	// Seat is the player's index in the roster.
	Seat  int
	Name  string
	Upper int
	Bonus int
	Total int
}

// rank orders players by total, highest first. Ties keep roster order.
func rank(players []*scorecard.Player) []Standing {
	out := make([]Standing, len(players))
	for i, p := range players {
		out[i] = Standing{
			Seat:  i,
			Name:  p.Name(),
			Upper: p.UpperScore(),
			Bonus: p.Bonus(),
			Total: p.Total(),
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Total > out[j].Total })
	return out
}
