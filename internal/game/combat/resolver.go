package combat

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/dungeon/internal/game/inventory"
	"github.com/cory-johannsen/dungeon/internal/game/npc"
	"github.com/cory-johannsen/dungeon/internal/game/session"
)

// Result describes how an encounter played out.
type Result struct {
	Enemy   string
	Action  Action
	Outcome Outcome
	// Eligible is false when the player lacked a required item.
	Eligible bool
	// Roll is the d6 drawn for the condition, or 0 when none was drawn.
	Roll int
	// WeaponScore and Multiplier are set for damage conditions.
	WeaponScore int
	Multiplier  int
	Damage      int
	// Consequence is the loss consequence applied, empty unless Outcome is Loss.
	Consequence npc.LossConsequence
	// Victory is true when this win completed the victory set.
	Victory bool
}

// Resolver applies defeat conditions using an injected source of chance.
type Resolver struct {
	rng    Randomness
	logger *zap.Logger
}

// NewResolver creates a Resolver.
//
// Precondition: rng and logger must be non-nil.
func NewResolver(rng Randomness, logger *zap.Logger) *Resolver {
	return &Resolver{rng: rng, logger: logger}
}

// Eligible reports whether every item enemy requires is held.
func Eligible(enemy *npc.Enemy, h *session.History) bool {
	for _, name := range enemy.Requires {
		if !h.HasItem(name) {
			return false
		}
	}
	return true
}

// Resolve plays one encounter and applies its consequences to h.
//
// Precondition: enemy and h must be non-nil.
// Postcondition: on a Loss against a fatal enemy the returned error is a
// *session.FatalError and the Result is still populated. An item-wipe loss
// empties the inventory. A Win marks the enemy defeated.
func (r *Resolver) Resolve(enemy *npc.Enemy, action Action, h *session.History) (Result, error) {
	res := Result{Enemy: enemy.Name, Action: action, Eligible: Eligible(enemy, h)}

	switch action {
	case Evade:
		if enemy.CanEvade {
			res.Outcome = Evaded
		} else {
			res.Outcome = Loss
		}
	case Fight:
		if !res.Eligible {
			res.Outcome = Loss
		} else if r.evaluate(enemy, h, &res) {
			res.Outcome = Win
		} else {
			res.Outcome = Loss
		}
	default:
		return res, fmt.Errorf("combat: unknown action %d", int(action))
	}

	r.logger.Debug("encounter resolved",
		zap.String("enemy", enemy.Name),
		zap.Stringer("action", action),
		zap.Stringer("outcome", res.Outcome),
		zap.Bool("eligible", res.Eligible),
		zap.Int("roll", res.Roll),
		zap.Int("damage", res.Damage),
	)

	switch res.Outcome {
	case Win:
		h.MarkDefeated(enemy.Name)
		res.Victory = CheckWin(h.DefeatedSet())
	case Loss:
		res.Consequence = enemy.OnLoss
		switch enemy.OnLoss {
		case npc.LossItemWipe:
			h.ClearItems()
		case npc.LossFatal:
			return res, &session.FatalError{Source: enemy.Name, Cause: session.CauseCombat}
		}
	}
	return res, nil
}

// evaluate applies the enemy's condition and records the draws in res.
func (r *Resolver) evaluate(enemy *npc.Enemy, h *session.History, res *Result) bool {
	c := enemy.Condition
	switch c.Kind {
	case npc.ConditionRandom:
		return r.rng.RandomBit()
	case npc.ConditionDice:
		res.Roll = r.rng.DiceRoll()
		return compare(res.Roll, c.Op, c.Threshold)
	case npc.ConditionDamage:
		res.WeaponScore, res.Multiplier = scores(enemy.Requires, h.Items())
		res.Damage = res.WeaponScore * res.Multiplier
		if c.DiceMultiplier {
			res.Roll = r.rng.DiceRoll()
			res.Damage *= res.Roll
		}
		return res.Damage > c.Threshold
	default:
		return true
	}
}

// scores sums weapon items named in requires and multiplies every multiplier item held.
func scores(requires []string, items []inventory.Item) (weapon, multiplier int) {
	required := make(map[string]bool, len(requires))
	for _, name := range requires {
		required[name] = true
	}
	multiplier = 1
	for _, it := range items {
		switch it.Category {
		case inventory.CategoryWeapon:
			if required[it.Name] {
				weapon += it.Score
			}
		case inventory.CategoryMultiplier:
			multiplier *= it.Score
		}
	}
	return weapon, multiplier
}

func compare(roll int, op string, n int) bool {
	switch op {
	case npc.OpGreater:
		return roll > n
	case npc.OpLess:
		return roll < n
	case npc.OpEqual:
		return roll == n
	default:
		return false
	}
}
