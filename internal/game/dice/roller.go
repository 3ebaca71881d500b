package dice

import "go.uber.org/zap"

var (
	coin = MustParse("1d2")
	d6   = MustParse("1d6")
)

// Roller wraps a Source and logger. It implements the combat randomness
// collaborator: RandomBit is a fair coin flip and DiceRoll a single d6.
// Every roll is logged at debug level.
type Roller struct {
	src    Source
	logger *zap.Logger
}

// NewLoggedRoller creates a Roller that rolls with src and logs each roll to logger.
//
// Precondition: src and logger must be non-nil.
func NewLoggedRoller(src Source, logger *zap.Logger) *Roller {
	return &Roller{src: src, logger: logger}
}

// Roll evaluates expr and logs the result.
func (r *Roller) Roll(expr Expression) RollResult {
	result := Roll(expr, r.src)
	r.logger.Debug("dice roll",
		zap.String("expression", result.Expression),
		zap.Ints("dice", result.Dice),
		zap.Int("modifier", result.Modifier),
		zap.Int("total", result.Total()),
	)
	return result
}

// RandomBit returns true with probability exactly 1/2.
func (r *Roller) RandomBit() bool {
	return r.Roll(coin).Total() == 2
}

// DiceRoll returns a uniform value in [1, 6].
func (r *Roller) DiceRoll() int {
	return r.Roll(d6).Total()
}
