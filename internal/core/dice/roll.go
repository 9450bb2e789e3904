package dice

import (
	"errors"
	"math/rand"
)

// Faces is the number of sides on a standard die.
const Faces = 6

// ErrMissingDice indicates a roll request had no dice specified.
var ErrMissingDice = errors.New("at least one die must be provided")

// ErrInvalidDiceSpec indicates a die specification has invalid fields.
var ErrInvalidDiceSpec = errors.New("dice must have positive sides and count")

// Spec describes a die to roll and how many times to roll it.
type Spec struct {
	Sides int
	Count int
}

// Roll captures the results for a single dice spec.
type Roll struct {
	Sides   int
	Results []int
	Total   int
}

// Request describes a request to roll one or more dice.
type Request struct {
	Dice []Spec
	Seed int64
}

// Result captures the results from rolling multiple dice.
type Result struct {
	Rolls []Roll
	Total int
}

// Values flattens every rolled face in request order.
func (r Result) Values() []int {
	n := 0
	for _, roll := range r.Rolls {
		n += len(roll.Results)
	}
	out := make([]int, 0, n)
	for _, roll := range r.Rolls {
		out = append(out, roll.Results...)
	}
	return out
}

// RollDice rolls dice based on the provided request.
//
// # Determinism
//
// RollDice is deterministic with respect to Request.Seed: the same seed and
// the same Dice slice always produce the same Result.
//
// # Errors
//
//   - At least one Spec must be provided, otherwise ErrMissingDice.
//   - Each Spec must have Sides > 0 and Count > 0, otherwise ErrInvalidDiceSpec.
//
// Example:
//
//	result, err := RollDice(Request{
//	    Dice: []Spec{{Sides: 6, Count: 5}},
//	    Seed: 1,
//	})
func RollDice(request Request) (Result, error) {
	return RollWithRng(rand.New(rand.NewSource(request.Seed)), request.Dice)
}

// RollWithRng rolls dice using a provided random source. Callers that roll
// repeatedly within one game keep a single source so consecutive rolls differ.
func RollWithRng(rng *rand.Rand, specs []Spec) (Result, error) {
	if len(specs) == 0 {
		return Result{}, ErrMissingDice
	}
	for _, spec := range specs {
		if spec.Sides <= 0 || spec.Count <= 0 {
			return Result{}, ErrInvalidDiceSpec
		}
	}

	result := Result{Rolls: make([]Roll, 0, len(specs))}
	for _, spec := range specs {
		roll := Roll{Sides: spec.Sides, Results: make([]int, spec.Count)}
		for i := range roll.Results {
			roll.Results[i] = rollDie(rng, spec.Sides)
			roll.Total += roll.Results[i]
		}
		result.Rolls = append(result.Rolls, roll)
		result.Total += roll.Total
	}
	return result, nil
}

// rollDie rolls a single die with the provided number of sides.
func rollDie(rng *rand.Rand, sides int) int {
	return rng.Intn(sides) + 1
}
