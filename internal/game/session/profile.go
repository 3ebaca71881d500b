// Package session holds the single explicit session context of a game: the
// player profile, the history tracker and the flat record used to persist them.
package session

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/cory-johannsen/dungeon/internal/game/inventory"
	"github.com/cory-johannsen/dungeon/internal/game/world"
)

// ErrCorruptSession is returned when a saved record cannot be turned back into a Profile.
var ErrCorruptSession = errors.New("session: corrupt saved session")

// Profile is the player's session context. It is owned by one navigation
// machine for the lifetime of a session.
type Profile struct {
	ID   uuid.UUID
	name string
	// Path is the current location.
	Path world.Path
	// Returning is true when the last transition was a return. It only varies narration.
	Returning bool
	History   *History
}

// NewProfile starts a fresh profile at the start location.
//
// Precondition: name must be non-empty.
func NewProfile(name string) *Profile {
	return &Profile{
		ID:      uuid.New(),
		name:    name,
		Path:    world.PathOf(),
		History: NewHistory(nil, nil),
	}
}

// Name returns the player name, which never changes after creation.
func (p *Profile) Name() string {
	return p.name
}

// Record is the flat persisted form of a Profile.
type Record struct {
	ID        string           `yaml:"id" json:"id"`
	Name      string           `yaml:"name" json:"name"`
	Path      string           `yaml:"path" json:"path"`
	Returning bool             `yaml:"returning" json:"returning"`
	Items     []inventory.Item `yaml:"items" json:"items"`
	Defeated  []string         `yaml:"defeated" json:"defeated"`
}

// Record flattens p for persistence.
func (p *Profile) Record() Record {
	items := p.History.Items()
	if items == nil {
		items = []inventory.Item{}
	}
	return Record{
		ID:        p.ID.String(),
		Name:      p.name,
		Path:      p.Path.Key(),
		Returning: p.Returning,
		Items:     items,
		Defeated:  p.History.Defeated(),
	}
}

// FromRecord rebuilds a Profile from its persisted form.
//
// Postcondition: returns an error wrapping ErrCorruptSession when the name is
// empty, the ID or path cannot be parsed, or an item is invalid.
func FromRecord(r Record) (*Profile, error) {
	if r.Name == "" {
		return nil, fmt.Errorf("%w: empty name", ErrCorruptSession)
	}
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: id %q: %v", ErrCorruptSession, r.ID, err)
	}
	path, err := world.ParsePath(r.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: path %q: %v", ErrCorruptSession, r.Path, err)
	}
	for _, it := range r.Items {
		if err := it.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorruptSession, err)
		}
	}
	return &Profile{
		ID:        id,
		name:      r.Name,
		Path:      path,
		Returning: r.Returning,
		History:   NewHistory(r.Items, r.Defeated),
	}, nil
}
