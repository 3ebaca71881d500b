package engine

import (
	"context"
	"errors"

	"github.com/cory-johannsen/dungeon/internal/game/combat"
	"github.com/cory-johannsen/dungeon/internal/game/inventory"
	"github.com/cory-johannsen/dungeon/internal/game/npc"
	"github.com/cory-johannsen/dungeon/internal/game/room"
	"github.com/cory-johannsen/dungeon/internal/game/session"
	"github.com/cory-johannsen/dungeon/internal/game/world"
)

// Handler plays one visit to loc and returns the player's next move.
type Handler func(ctx context.Context, m *Machine, loc *world.Location) (world.Transition, error)

// DefaultHandlers returns the dispatch table keyed by path key.
func DefaultHandlers() map[string]Handler {
	return map[string]Handler{
		world.PathOf().Key():                                                             junction,
		world.PathOf(world.LeftRoom).Key():                                               choice,
		world.PathOf(world.LeftRoom, world.Inspect).Key():                                search,
		world.PathOf(world.MiddleRoom).Key():                                             choice,
		world.PathOf(world.MiddleRoom, world.GoDown).Key():                               junction,
		world.PathOf(world.MiddleRoom, world.GoDown, world.OldRoom).Key():                choice,
		world.PathOf(world.MiddleRoom, world.GoDown, world.OldRoom, world.Inspect).Key(): search,
		world.PathOf(world.MiddleRoom, world.GoDown, world.ModernRoom).Key():             lair,
		world.PathOf(world.RightRoom).Key():                                              lair,
	}
}

// junction presents a row of doors.
func junction(ctx context.Context, m *Machine, loc *world.Location) (world.Transition, error) {
	m.enter(loc, loc.Narration(m.profile.Returning))
	m.notifier.Notify(Event{Kind: EventDoors, Player: m.profile.Name(), Path: loc.Path, Doors: loc.Doors()})
	return m.decide(ctx, loc, "Through which one would you like to go?")
}

// choice narrates and offers the location's options.
func choice(ctx context.Context, m *Machine, loc *world.Location) (world.Transition, error) {
	m.enter(loc, loc.Narration(m.profile.Returning))
	return m.decide(ctx, loc, "What would you like to do?")
}

// search offers the items the player does not own yet, then the hint.
func search(ctx context.Context, m *Machine, loc *world.Location) (world.Transition, error) {
	items, err := m.content.Items.Lookup(loc.Items)
	if err != nil {
		return world.Transition{}, err
	}
	remaining := room.FilterItems(items, m.profile.History.Items())
	if len(remaining) > 0 {
		m.enter(loc, loc.Description)
		if err := m.offerItems(ctx, remaining); err != nil {
			return world.Transition{}, err
		}
	} else {
		m.enter(loc, "")
		m.notifier.Notify(Event{Kind: EventNothingFound, Path: loc.Path, Text: loc.EmptyText})
	}
	if hint := loc.Hint; hint != nil {
		text := hint.Absent
		if m.profile.History.HasItem(hint.Item) {
			text = hint.Present
		}
		m.notifier.Notify(Event{Kind: EventHint, Path: loc.Path, Text: text})
	}
	return m.decide(ctx, loc, "Would you like to stay here or return?")
}

// lair makes the player face every undefeated enemy before the items are offered.
func lair(ctx context.Context, m *Machine, loc *world.Location) (world.Transition, error) {
	m.enter(loc, loc.Narration(m.profile.Returning))
	enemies, err := m.content.Enemies.Lookup(loc.Enemies)
	if err != nil {
		return world.Transition{}, err
	}
	for _, e := range room.FilterEnemies(enemies, m.profile.History.DefeatedSet()) {
		if err := m.encounter(ctx, e); err != nil {
			return world.Transition{}, err
		}
	}
	items, err := m.content.Items.Lookup(loc.Items)
	if err != nil {
		return world.Transition{}, err
	}
	// Items stay hidden while an enemy lives, but an emptied lair says so.
	remaining := room.FilterItems(items, m.profile.History.Items())
	switch {
	case len(remaining) == 0:
		m.notifier.Notify(Event{Kind: EventNothingFound, Path: loc.Path, Text: loc.EmptyText})
	case len(room.FilterEnemies(enemies, m.profile.History.DefeatedSet())) == 0:
		if loc.ClearedText != "" {
			m.notifier.Notify(Event{Kind: EventNarration, Path: loc.Path, Text: loc.ClearedText})
		}
		if err := m.offerItems(ctx, remaining); err != nil {
			return world.Transition{}, err
		}
	}
	return m.decide(ctx, loc, "Would you like to stay or return?")
}

func (m *Machine) enter(loc *world.Location, text string) {
	m.notifier.Notify(Event{
		Kind:   EventLocation,
		Player: m.profile.Name(),
		Path:   loc.Path,
		Title:  loc.Title,
		Text:   text,
	})
}

func (m *Machine) decide(ctx context.Context, loc *world.Location, message string) (world.Transition, error) {
	opt, err := m.choose(ctx, message, loc.Options())
	if err != nil {
		return world.Transition{}, err
	}
	return loc.Resolve(opt)
}

func (m *Machine) offerItems(ctx context.Context, items []inventory.Item) error {
	for _, it := range items {
		if err := m.takeItem(ctx, it); err != nil {
			return err
		}
	}
	return nil
}

// takeItem offers it. Taking a hazardous item is fatal.
func (m *Machine) takeItem(ctx context.Context, it inventory.Item) error {
	m.notifier.Notify(Event{Kind: EventItemFound, Player: m.profile.Name(), Item: &it})
	opt, err := m.choose(ctx, "Write either 'take' or 'leave'", []string{"take", "leave"})
	if err != nil {
		return err
	}
	if opt == "leave" {
		m.notifier.Notify(Event{Kind: EventItemLeft, Item: &it})
		return nil
	}
	if it.Category == inventory.CategoryHazardous {
		fatal := &session.FatalError{Source: it.Name, Cause: session.CauseHazard}
		m.notifier.Notify(Event{Kind: EventFatal, Player: m.profile.Name(), Item: &it, Fatal: fatal})
		return fatal
	}
	m.profile.History.AddItem(it)
	m.notifier.Notify(Event{Kind: EventItemTaken, Player: m.profile.Name(), Item: &it})
	return nil
}

// encounter asks fight or hide, rolls if needed and applies the outcome.
func (m *Machine) encounter(ctx context.Context, e *npc.Enemy) error {
	m.notifier.Notify(Event{Kind: EventEncounter, Player: m.profile.Name(), Enemy: e})
	opt, err := m.choose(ctx, "Write either 'fight' or 'hide'", []string{"fight", "hide"})
	if err != nil {
		return err
	}
	action := combat.Fight
	if opt == "hide" {
		action = combat.Evade
	}
	if action == combat.Fight && e.Condition.UsesDice() && combat.Eligible(e, m.profile.History) {
		if _, err := m.choose(ctx, "The outcome of the fight depends on your dice throw! Type in 'dice' to throw the dice", []string{"dice"}); err != nil {
			return err
		}
	}

	res, err := m.resolver.Resolve(e, action, m.profile.History)
	m.notifier.Notify(Event{Kind: EventCombat, Player: m.profile.Name(), Enemy: e, Combat: &res})
	if err != nil {
		var fatal *session.FatalError
		if errors.As(err, &fatal) {
			m.notifier.Notify(Event{Kind: EventFatal, Player: m.profile.Name(), Enemy: e, Fatal: fatal})
		}
		return err
	}
	if res.Victory && !m.celebrated && m.opts.VictoryBanner {
		m.celebrated = true
		m.notifier.Notify(Event{Kind: EventVictory, Player: m.profile.Name()})
		if _, err := m.choose(ctx, "Write 'continue' to continue the game or 'exit' to exit the game", []string{"continue"}); err != nil {
			return err
		}
	}
	return nil
}
