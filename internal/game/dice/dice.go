// Package dice provides the randomness collaborator for encounter resolution:
// a pluggable Source, a small dice-expression grammar, and a logged Roller
// that answers coin flips and six-sided rolls.
package dice

import "fmt"

// RollResult records the individual dice of one expression evaluation.
//
// Postcondition: Total() == sum(Dice) + Modifier.
type RollResult struct {
	Expression string
	Dice       []int
	Modifier   int
}

// Total returns the sum of all die results plus the modifier.
func (r RollResult) Total() int {
	total := r.Modifier
	for _, d := range r.Dice {
		total += d
	}
	return total
}

// String renders the roll as "1d6 [4] +0 = 4".
func (r RollResult) String() string {
	return fmt.Sprintf("%s %v %+d = %d", r.Expression, r.Dice, r.Modifier, r.Total())
}

// Source is the randomness provider for dice rolls.
//
// Implementations MUST be safe for concurrent use.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}
