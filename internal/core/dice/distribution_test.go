package dice

import (
	"math/rand"
	"testing"
)

func TestDistribute(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		want   Distribution
	}{
		{name: "straight", values: []int{1, 2, 3, 4, 5}, want: Distribution{0, 1, 1, 1, 1, 1, 0}},
		{name: "yatzy", values: []int{4, 4, 4, 4, 4}, want: Distribution{0, 0, 0, 0, 5, 0, 0}},
		{name: "unset dice", values: []int{0, 0, 6, 6, 2}, want: Distribution{2, 0, 1, 0, 0, 0, 2}},
		{name: "out of range counts as unset", values: []int{7, -1, 3}, want: Distribution{2, 0, 0, 1, 0, 0, 0}},
		{name: "empty", values: nil, want: Distribution{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Distribute(tt.values); got != tt.want {
				t.Fatalf("Distribute(%v) = %v, want %v", tt.values, got, tt.want)
			}
		})
	}
}

// TestDistributeMatchesSum checks the weighted histogram against the plain sum
// and that every die is accounted for exactly once.
func TestDistributeMatchesSum(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for i := 0; i < 500; i++ {
		values := make([]int, 5)
		for j := range values {
			values[j] = rng.Intn(Faces + 1)
		}
		dist := Distribute(values)
		if dist.Weighted() != Sum(values) {
			t.Fatalf("weighted = %d, sum = %d for %v", dist.Weighted(), Sum(values), values)
		}
		if dist.Rolled()+dist[Unset] != len(values) {
			t.Fatalf("rolled %d + unset %d != %d for %v", dist.Rolled(), dist[Unset], len(values), values)
		}
	}
}

func TestDistributionCount(t *testing.T) {
	dist := Distribute([]int{2, 2, 5})
	if got := dist.Count(2); got != 2 {
		t.Fatalf("Count(2) = %d, want 2", got)
	}
	if got := dist.Count(0); got != 0 {
		t.Fatalf("Count(0) = %d, want 0", got)
	}
	if got := dist.Count(9); got != 0 {
		t.Fatalf("Count(9) = %d, want 0", got)
	}
}

func TestSumIgnoresUnset(t *testing.T) {
	if got := Sum([]int{0, 6, 6, 1, 0}); got != 13 {
		t.Fatalf("Sum = %d, want 13", got)
	}
}
