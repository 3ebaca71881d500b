// Package combat resolves encounters between the player and an enemy and
// evaluates the win condition.
package combat

//go:generate go tool mockgen -destination=./mocks/randomness_mock.go -package=mocks . Randomness

// Randomness is the only source of chance in combat.
type Randomness interface {
	// RandomBit returns a fair coin flip.
	RandomBit() bool
	// DiceRoll returns a uniform value in [1, 6].
	DiceRoll() int
}

// Action is what the player chose to do when meeting an enemy.
type Action int

const (
	// Fight attacks the enemy.
	Fight Action = iota
	// Evade tries to slip past the enemy.
	Evade
)

// String returns the lowercase action name.
func (a Action) String() string {
	switch a {
	case Fight:
		return "fight"
	case Evade:
		return "evade"
	default:
		return "unknown"
	}
}

// Outcome is the result of one encounter.
type Outcome int

const (
	Win Outcome = iota
	Loss
	Evaded
)

// String returns a human-readable outcome label.
func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Loss:
		return "loss"
	case Evaded:
		return "evaded"
	default:
		return "unknown"
	}
}
