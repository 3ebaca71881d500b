package session

import (
	"errors"
	"fmt"
)

// ErrFatal marks an outcome that ends the session with the player's death.
var ErrFatal = errors.New("session: fatal outcome")

// FatalError describes a death. Source names what caused it: an enemy, an
// item or a location.
type FatalError struct {
	Source string
	Cause  string
}

// Fatal causes.
const (
	CauseCombat   = "combat"
	CauseHazard   = "hazard"
	CauseLocation = "location"
)

// Error implements error.
func (e *FatalError) Error() string {
	return fmt.Sprintf("fatal %s outcome: %s", e.Cause, e.Source)
}

// Is matches ErrFatal.
func (e *FatalError) Is(target error) bool {
	return target == ErrFatal
}
