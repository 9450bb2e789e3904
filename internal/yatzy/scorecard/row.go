// Package scorecard holds a player's score sheet: one row per category and
// the aggregate scores derived from it.
package scorecard

import (
	"github.com/louisbranch/yatzy/internal/core/dice"
	apperrors "github.com/louisbranch/yatzy/internal/platform/errors"
	"github.com/louisbranch/yatzy/internal/yatzy/rules"
)

// State is the lifecycle of a score sheet row.
type State int

const (
	// StateOpen is a row that has not been played.
	StateOpen State = iota
	// StateClosed is a row forfeited for zero points.
	StateClosed
	// StateClaimed is a row scored with a set of dice.
	StateClaimed
)

func (s State) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateClosed:
		return "closed"
	case StateClaimed:
		return "claimed"
	default:
		return "unknown"
	}
}

// Row is one category on a player's sheet. Rows only move from open to
// closed or claimed; Reset is reserved for starting a new game.
type Row struct {
	category rules.Category
	state    State
	dice     []int
	points   int
}

// NewRow returns an open row for category.
func NewRow(category rules.Category) *Row {
	return &Row{category: category}
}

// Category returns the row's category.
func (r *Row) Category() rules.Category { return r.category }

// Key returns the category key.
func (r *Row) Key() string { return r.category.Key }

// State returns the row state.
func (r *Row) State() State { return r.state }

// Open reports whether the row can still be claimed or closed.
func (r *Row) Open() bool { return r.state == StateOpen }

// Points returns the claimed points, or zero for open and closed rows.
func (r *Row) Points() int {
	if r.state != StateClaimed {
		return 0
	}
	return r.points
}

// Dice returns a copy of the dice the row was claimed with.
func (r *Row) Dice() []int {
	if r.state != StateClaimed {
		return nil
	}
	return append([]int(nil), r.dice...)
}

// Eligible reports what the row would score for values without claiming it.
func (r *Row) Eligible(values []int, dist dice.Distribution) (int, bool) {
	if r.state != StateOpen {
		return 0, false
	}
	return r.category.Rule.Evaluate(values, dist)
}

// Claim scores the row with values. It fails with ROW_ALREADY_DECIDED when
// the row is not open and ROW_NOT_ELIGIBLE when the dice do not satisfy the
// category.
func (r *Row) Claim(values []int, dist dice.Distribution) error {
	if err := r.requireOpen(); err != nil {
		return err
	}
	points, ok := r.category.Rule.Evaluate(values, dist)
	if !ok {
		return apperrors.WithMetadata(apperrors.CodeRowNotEligible,
			"dice do not satisfy "+r.category.Key, r.metadata())
	}
	r.state = StateClaimed
	r.dice = append([]int(nil), values...)
	r.points = points
	return nil
}

// Close forfeits the row for zero points.
func (r *Row) Close() error {
	if err := r.requireOpen(); err != nil {
		return err
	}
	r.state = StateClosed
	return nil
}

// Reset reopens the row.
func (r *Row) Reset() {
	r.state = StateOpen
	r.dice = nil
	r.points = 0
}

func (r *Row) requireOpen() error {
	if r.state == StateOpen {
		return nil
	}
	return apperrors.WithMetadata(apperrors.CodeRowAlreadyDecided,
		r.category.Key+" is already "+r.state.String(), r.metadata())
}

func (r *Row) metadata() map[string]string {
	return map[string]string{"Category": r.category.Key}
}
