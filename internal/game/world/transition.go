package world

import (
	"errors"
	"fmt"
)

// ErrUnknownOption is returned when a choice is not offered at a location.
var ErrUnknownOption = errors.New("world: option not offered")

// TransitionKind enumerates path transitions.
type TransitionKind int

const (
	// Advance appends a segment.
	Advance TransitionKind = iota
	// Return pops one segment and marks the arrival as returning.
	Return
	// Stay keeps the path and clears the returning flag.
	Stay
)

// String returns a lowercase name of the kind.
func (k TransitionKind) String() string {
	switch k {
	case Advance:
		return "advance"
	case Return:
		return "return"
	case Stay:
		return "stay"
	default:
		return fmt.Sprintf("TransitionKind(%d)", int(k))
	}
}

// Transition is the outcome of one location decision.
type Transition struct {
	Kind    TransitionKind
	Segment Segment
}

// AdvanceTo builds an Advance transition.
func AdvanceTo(seg Segment) Transition { return Transition{Kind: Advance, Segment: seg} }

// ReturnBack builds a Return transition.
func ReturnBack() Transition { return Transition{Kind: Return} }

// StayPut builds a Stay transition.
func StayPut() Transition { return Transition{Kind: Stay} }

// Apply computes the next path and returning flag.
//
// Postcondition: Advance grows the path by one; Return shrinks it by one or
// fails with ErrAtStart; Stay leaves it unchanged.
func (t Transition) Apply(p Path) (Path, bool, error) {
	switch t.Kind {
	case Advance:
		return p.Advance(t.Segment), false, nil
	case Return:
		prev, err := p.Return()
		if err != nil {
			return nil, false, err
		}
		return prev, true, nil
	case Stay:
		return PathOf(p...), false, nil
	default:
		return nil, false, fmt.Errorf("world: unknown transition %v", t.Kind)
	}
}

// String renders the transition for logs.
func (t Transition) String() string {
	if t.Kind == Advance {
		return fmt.Sprintf("advance(%s)", t.Segment)
	}
	return t.Kind.String()
}
