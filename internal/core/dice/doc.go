// Package dice rolls six-sided dice and summarises rolled faces.
//
// Rolling is deterministic for a given seed or random source so game logic
// built on top of it can be replayed in tests. Summaries (distribution and
// sum) are pure functions over a slice of face values.
package dice
