package npc

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConditionKind enumerates the defeat-condition families.
type ConditionKind int

const (
	// ConditionNone means an eligible fight is always won.
	ConditionNone ConditionKind = iota
	// ConditionRandom is decided by one fair coin flip.
	ConditionRandom
	// ConditionDice compares one d6 against Threshold using Op.
	ConditionDice
	// ConditionDamage compares computed damage against Threshold, strictly greater.
	ConditionDamage
)

// String returns the grammar keyword of the kind.
func (k ConditionKind) String() string {
	switch k {
	case ConditionNone:
		return "none"
	case ConditionRandom:
		return "random"
	case ConditionDice:
		return "dice"
	case ConditionDamage:
		return "damage"
	default:
		return fmt.Sprintf("ConditionKind(%d)", int(k))
	}
}

// Comparison operators accepted by dice conditions.
const (
	OpGreater = ">"
	OpLess    = "<"
	OpEqual   = "="
)

// Condition is a parsed defeat condition.
//
// Grammar:
//
//	""                 none
//	"random"           coin flip
//	"dice<op><n>"      op is one of > < =
//	"damage><n>"       weapon score times multipliers must exceed n
//	"damage><n>&dice"  as above, also multiplied by one d6
type Condition struct {
	Kind      ConditionKind
	Op        string
	Threshold int
	// DiceMultiplier is set for "damage>n&dice".
	DiceMultiplier bool
}

var (
	dicePattern   = regexp.MustCompile(`^dice\s*([<>=])\s*(\d+)$`)
	damagePattern = regexp.MustCompile(`^damage\s*>\s*(\d+)\s*(?:&\s*(dice)?)?$`)
)

// ParseCondition parses the compact condition notation.
//
// Postcondition: returns a Condition whose String() re-parses to an equal value, or an error.
func ParseCondition(s string) (Condition, error) {
	t := strings.ToLower(strings.TrimSpace(s))
	switch {
	case t == "" || t == "none":
		return Condition{Kind: ConditionNone}, nil
	case t == "random":
		return Condition{Kind: ConditionRandom}, nil
	}
	if m := dicePattern.FindStringSubmatch(t); m != nil {
		n, err := strconv.Atoi(m[2])
		if err != nil {
			return Condition{}, fmt.Errorf("npc: invalid dice threshold in %q: %w", s, err)
		}
		return Condition{Kind: ConditionDice, Op: m[1], Threshold: n}, nil
	}
	if m := damagePattern.FindStringSubmatch(t); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return Condition{}, fmt.Errorf("npc: invalid damage threshold in %q: %w", s, err)
		}
		return Condition{Kind: ConditionDamage, Threshold: n, DiceMultiplier: m[2] == "dice"}, nil
	}
	return Condition{}, fmt.Errorf("npc: unknown defeat condition %q", s)
}

// MustParseCondition parses s and panics on error.
func MustParseCondition(s string) Condition {
	c, err := ParseCondition(s)
	if err != nil {
		panic(err.Error())
	}
	return c
}

// UsesDice reports whether evaluating the condition draws a d6.
func (c Condition) UsesDice() bool {
	return c.Kind == ConditionDice || (c.Kind == ConditionDamage && c.DiceMultiplier)
}

// String renders the condition in its compact notation.
func (c Condition) String() string {
	switch c.Kind {
	case ConditionRandom:
		return "random"
	case ConditionDice:
		return fmt.Sprintf("dice%s%d", c.Op, c.Threshold)
	case ConditionDamage:
		if c.DiceMultiplier {
			return fmt.Sprintf("damage>%d&dice", c.Threshold)
		}
		return fmt.Sprintf("damage>%d", c.Threshold)
	default:
		return ""
	}
}

// UnmarshalYAML decodes a condition from its compact string form.
func (c *Condition) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseCondition(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalYAML encodes the condition in its compact string form.
func (c Condition) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}
