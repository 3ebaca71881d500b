// Package storage defines the single-slot persistence contract for game sessions.
package storage

import (
	"context"

	"github.com/cory-johannsen/dungeon/internal/game/session"
)

//go:generate go tool mockgen -destination=./mocks/store_mock.go -package=mocks . Store

// ActiveSlot is the name of the only save slot.
const ActiveSlot = "active"

// Store persists the active session.
type Store interface {
	// Load returns the saved profile, or (nil, nil) when the slot is empty.
	// A record that cannot be decoded yields an error wrapping session.ErrCorruptSession.
	Load(ctx context.Context) (*session.Profile, error)
	// Save overwrites the slot with p.
	Save(ctx context.Context, p *session.Profile) error
	// Close releases backend resources.
	Close() error
}
