package engine

import (
	"context"

	"github.com/cory-johannsen/dungeon/internal/game/combat"
	"github.com/cory-johannsen/dungeon/internal/game/inventory"
	"github.com/cory-johannsen/dungeon/internal/game/npc"
	"github.com/cory-johannsen/dungeon/internal/game/session"
	"github.com/cory-johannsen/dungeon/internal/game/world"
)

// Snapshot is the read-only view of the session a frontend may render while
// a prompt is open, e.g. for the items and map requests.
type Snapshot struct {
	Player string
	Path   world.Path
	Items  []inventory.Item
}

// Prompt asks the player to pick one of Options.
type Prompt struct {
	Message  string
	Options  []string
	Snapshot Snapshot
}

// Prompter reads player decisions.
type Prompter interface {
	// Choose returns the raw line the player entered for p. The machine
	// validates it against p.Options and the control words.
	Choose(ctx context.Context, p Prompt) (string, error)
	// Ask returns a free-text answer such as the player's name.
	Ask(ctx context.Context, message string) (string, error)
}

// EventKind enumerates what a Notifier is told about.
type EventKind int

const (
	EventSessionStarted EventKind = iota
	EventLocation
	EventDoors
	EventNarration
	EventItemFound
	EventItemTaken
	EventItemLeft
	EventNothingFound
	EventHint
	EventEncounter
	EventCombat
	EventVictory
	EventFatal
	EventSaved
	EventInvalidChoice
	EventFarewell
)

var eventNames = map[EventKind]string{
	EventSessionStarted: "session_started",
	EventLocation:       "location",
	EventDoors:          "doors",
	EventNarration:      "narration",
	EventItemFound:      "item_found",
	EventItemTaken:      "item_taken",
	EventItemLeft:       "item_left",
	EventNothingFound:   "nothing_found",
	EventHint:           "hint",
	EventEncounter:      "encounter",
	EventCombat:         "combat",
	EventVictory:        "victory",
	EventFatal:          "fatal",
	EventSaved:          "saved",
	EventInvalidChoice:  "invalid_choice",
	EventFarewell:       "farewell",
}

// String returns the snake_case event name.
func (k EventKind) String() string {
	if n, ok := eventNames[k]; ok {
		return n
	}
	return "unknown"
}

// Event is one thing that happened during play. Only the fields relevant to
// Kind are set.
type Event struct {
	Kind   EventKind
	Player string
	Path   world.Path
	Title  string
	Text   string
	// Resumed is set on EventSessionStarted when a save was opened.
	Resumed bool
	Doors   []string
	Options []string
	Item    *inventory.Item
	Enemy   *npc.Enemy
	Combat  *combat.Result
	Fatal   *session.FatalError
}

// Notifier presents events. Notify must not block on player input.
type Notifier interface {
	Notify(e Event)
}
