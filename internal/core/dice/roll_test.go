package dice

import (
	"errors"
	"math/rand"
	"testing"
)

func TestRollDice_Basic(t *testing.T) {
	tests := []struct {
		name    string
		request Request
		wantErr error
	}{
		{
			name:    "five d6",
			request: Request{Dice: []Spec{{Sides: Faces, Count: 5}}, Seed: 42},
		},
		{
			name: "2d6 + 1d8",
			request: Request{
				Dice: []Spec{{Sides: 6, Count: 2}, {Sides: 8, Count: 1}},
				Seed: 42,
			},
		},
		{
			name:    "no dice",
			request: Request{Seed: 42},
			wantErr: ErrMissingDice,
		},
		{
			name:    "invalid sides",
			request: Request{Dice: []Spec{{Sides: 0, Count: 1}}, Seed: 42},
			wantErr: ErrInvalidDiceSpec,
		},
		{
			name:    "invalid count",
			request: Request{Dice: []Spec{{Sides: 6, Count: 0}}, Seed: 42},
			wantErr: ErrInvalidDiceSpec,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := RollDice(tt.request)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("RollDice() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if len(result.Rolls) != len(tt.request.Dice) {
				t.Fatalf("RollDice() got %d rolls, want %d", len(result.Rolls), len(tt.request.Dice))
			}

			total := 0
			for i, roll := range result.Rolls {
				if len(roll.Results) != tt.request.Dice[i].Count {
					t.Errorf("Roll[%d] got %d results, want %d", i, len(roll.Results), tt.request.Dice[i].Count)
				}
				sum := 0
				for j, r := range roll.Results {
					if r < 1 || r > roll.Sides {
						t.Errorf("Roll[%d].Results[%d] = %d, out of range [1, %d]", i, j, r, roll.Sides)
					}
					sum += r
				}
				if roll.Total != sum {
					t.Errorf("Roll[%d].Total = %d, want %d", i, roll.Total, sum)
				}
				total += roll.Total
			}
			if result.Total != total {
				t.Errorf("Result.Total = %d, want %d", result.Total, total)
			}
		})
	}
}

func TestRollDice_Determinism(t *testing.T) {
	request := Request{Dice: []Spec{{Sides: Faces, Count: 5}}, Seed: 12345}

	first, err := RollDice(request)
	if err != nil {
		t.Fatalf("RollDice() error = %v", err)
	}
	second, err := RollDice(request)
	if err != nil {
		t.Fatalf("RollDice() error = %v", err)
	}

	a, b := first.Values(), second.Values()
	if len(a) != 5 || len(b) != 5 {
		t.Fatalf("values length = %d/%d, want 5", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("value[%d] differs: %d vs %d", i, a[i], b[i])
		}
	}
}

func TestRollWithRngUsesSource(t *testing.T) {
	seed := int64(7)
	expected := rand.New(rand.NewSource(seed))
	want := []int{expected.Intn(6) + 1, expected.Intn(6) + 1, expected.Intn(6) + 1}

	result, err := RollWithRng(rand.New(rand.NewSource(seed)), []Spec{{Sides: 6, Count: 3}})
	if err != nil {
		t.Fatalf("RollWithRng() error = %v", err)
	}
	got := result.Values()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("values = %v, want %v", got, want)
		}
	}
}

func TestResultValuesFlattensInOrder(t *testing.T) {
	result := Result{Rolls: []Roll{{Results: []int{1, 2}}, {Results: []int{3}}}}
	got := result.Values()
	want := []int{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("values = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("values = %v, want %v", got, want)
		}
	}
}
