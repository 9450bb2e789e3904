package scorecard

import (
	"github.com/louisbranch/yatzy/internal/core/dice"
	apperrors "github.com/louisbranch/yatzy/internal/platform/errors"
	"github.com/louisbranch/yatzy/internal/yatzy/rules"
)

// Player owns a full score sheet. Aggregates are computed on read.
type Player struct {
	name string
	rows []*Row
}

// NewPlayer returns a player with an open sheet of every category.
func NewPlayer(name string) *Player {
	cats := rules.Categories()
	rows := make([]*Row, len(cats))
	for i, c := range cats {
		rows[i] = NewRow(c)
	}
	return &Player{name: name, rows: rows}
}

// Name returns the player name.
func (p *Player) Name() string { return p.name }

// Rows returns the sheet rows in category order. The slice is a copy; the
// rows are shared.
func (p *Player) Rows() []*Row {
	return append([]*Row(nil), p.rows...)
}

// Row returns the row for a category key or sheet position.
func (p *Player) Row(ref string) (*Row, error) {
	c, err := rules.Lookup(ref)
	if err != nil {
		return nil, err
	}
	for _, row := range p.rows {
		if row.Key() == c.Key {
			return row, nil
		}
	}
	return nil, apperrors.WithMetadata(apperrors.CodeCategoryUnknown, "category not on sheet", map[string]string{"Category": ref})
}

// UpperScore sums the upper section rows.
func (p *Player) UpperScore() int {
	total := 0
	for _, row := range p.rows[:rules.UpperSectionSize] {
		total += row.Points()
	}
	return total
}

// Bonus is BonusPoints once the upper section reaches BonusThreshold.
func (p *Player) Bonus() int {
	if p.UpperScore() >= rules.BonusThreshold {
		return rules.BonusPoints
	}
	return 0
}

// Total sums every row plus the bonus.
func (p *Player) Total() int {
	total := p.Bonus()
	for _, row := range p.rows {
		total += row.Points()
	}
	return total
}

// Complete reports whether no row is open.
func (p *Player) Complete() bool {
	for _, row := range p.rows {
		if row.Open() {
			return false
		}
	}
	return true
}

// Reset reopens every row.
func (p *Player) Reset() {
	for _, row := range p.rows {
		row.Reset()
	}
}

// Option is an open row and the points the current dice would give it.
type Option struct {
	Row    *Row
	Points int
}

// Options lists the open rows values can be claimed into, in sheet order.
func (p *Player) Options(values []int, dist dice.Distribution) []Option {
	var out []Option
	for _, row := range p.rows {
		if points, ok := row.Eligible(values, dist); ok {
			out = append(out, Option{Row: row, Points: points})
		}
	}
	return out
}
