package game

import "math/rand"

// DefaultRollsPerTurn is the number of rerolls after the opening throw.
const DefaultRollsPerTurn = 2

// Option configures a Game.
type Option func(*options)

type options struct {
	seed         *int64
	rng          *rand.Rand
	listener     Listener
	rollsPerTurn int
}

// WithSeed makes dice rolls reproducible.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = &seed }
}

// WithRand supplies the random source directly. It takes precedence over WithSeed.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) { o.rng = rng }
}

// WithListener registers the event listener.
func WithListener(l Listener) Option {
	return func(o *options) { o.listener = l }
}

// WithRollsPerTurn overrides DefaultRollsPerTurn. Values below zero are ignored.
func WithRollsPerTurn(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.rollsPerTurn = n
		}
	}
}
