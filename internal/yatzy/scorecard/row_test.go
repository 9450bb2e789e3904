package scorecard

import (
	"testing"

	"github.com/louisbranch/yatzy/internal/core/dice"
	apperrors "github.com/louisbranch/yatzy/internal/platform/errors"
	"github.com/louisbranch/yatzy/internal/yatzy/rules"
)

func mustCategory(t *testing.T, key string) rules.Category {
	t.Helper()
	c, err := rules.Lookup(key)
	if err != nil {
		t.Fatalf("lookup %s: %v", key, err)
	}
	return c
}

func TestRowClaim(t *testing.T) {
	row := NewRow(mustCategory(t, "full_house"))
	values := []int{2, 2, 2, 5, 5}

	if points, ok := row.Eligible(values, dice.Distribute(values)); !ok || points != 16 {
		t.Fatalf("Eligible = %d, %v; want 16, true", points, ok)
	}
	if err := row.Claim(values, dice.Distribute(values)); err != nil {
		t.Fatalf("claim: %v", err)
	}
	if row.State() != StateClaimed {
		t.Fatalf("state = %s, want claimed", row.State())
	}
	if row.Points() != 16 {
		t.Fatalf("points = %d, want 16", row.Points())
	}

	values[0] = 6
	if got := row.Dice(); got[0] != 2 {
		t.Fatalf("claimed dice changed with caller slice: %v", got)
	}
}

func TestRowClaimNotEligible(t *testing.T) {
	row := NewRow(mustCategory(t, "yatzy"))
	values := []int{1, 2, 3, 4, 5}

	err := row.Claim(values, dice.Distribute(values))
	if apperrors.CodeOf(err) != apperrors.CodeRowNotEligible {
		t.Fatalf("claim error = %v, want %s", err, apperrors.CodeRowNotEligible)
	}
	if !row.Open() {
		t.Fatal("rejected claim must leave the row open")
	}
}

func TestRowDecidedOnce(t *testing.T) {
	values := []int{6, 6, 6, 6, 6}
	dist := dice.Distribute(values)

	closed := NewRow(mustCategory(t, "sixes"))
	if err := closed.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if closed.Points() != 0 || closed.State() != StateClosed {
		t.Fatalf("closed row = %s/%d, want closed/0", closed.State(), closed.Points())
	}
	if err := closed.Claim(values, dist); apperrors.CodeOf(err) != apperrors.CodeRowAlreadyDecided {
		t.Fatalf("claim closed row error = %v", err)
	}
	if _, ok := closed.Eligible(values, dist); ok {
		t.Fatal("closed row must not be eligible")
	}

	claimed := NewRow(mustCategory(t, "sixes"))
	if err := claimed.Claim(values, dist); err != nil {
		t.Fatalf("claim: %v", err)
	}
	if err := claimed.Close(); apperrors.CodeOf(err) != apperrors.CodeRowAlreadyDecided {
		t.Fatalf("close claimed row error = %v", err)
	}
	if claimed.Points() != 30 {
		t.Fatalf("points = %d, want 30", claimed.Points())
	}
}

func TestRowReset(t *testing.T) {
	values := []int{1, 1, 1, 1, 1}
	row := NewRow(mustCategory(t, "ones"))
	if err := row.Claim(values, dice.Distribute(values)); err != nil {
		t.Fatalf("claim: %v", err)
	}
	row.Reset()
	if !row.Open() || row.Points() != 0 || row.Dice() != nil {
		t.Fatalf("reset row = %s/%d/%v", row.State(), row.Points(), row.Dice())
	}
}
