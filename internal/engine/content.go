package engine

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/cory-johannsen/dungeon/content"
	"github.com/cory-johannsen/dungeon/internal/game/inventory"
	"github.com/cory-johannsen/dungeon/internal/game/npc"
	"github.com/cory-johannsen/dungeon/internal/game/world"
)

// Content is the immutable data a game runs on.
type Content struct {
	World   *world.World
	Items   *inventory.Catalog
	Enemies *npc.Roster
}

// LoadContent reads the world, item and enemy files from fsys.
//
// Postcondition: Returns loaded content or the first loading error. Cross
// references are not checked; call Validate.
func LoadContent(fsys fs.FS) (*Content, error) {
	w, err := world.LoadWorld(fsys, content.WorldFile)
	if err != nil {
		return nil, err
	}
	items, err := inventory.LoadCatalog(fsys, content.ItemsFile)
	if err != nil {
		return nil, err
	}
	enemies, err := npc.LoadRoster(fsys, content.EnemiesFile)
	if err != nil {
		return nil, err
	}
	return &Content{World: w, Items: items, Enemies: enemies}, nil
}

// Validate checks that every item and enemy a location names exists, that
// enemy requirements name known items, and that handlers cover every location.
//
// Postcondition: Returns nil if consistent, or an error joining every violation.
func (c *Content) Validate(handlers map[string]Handler) error {
	var errs []error
	known := func(name string) bool {
		_, ok := c.Items.Item(name)
		return ok
	}
	for _, loc := range c.World.Locations() {
		key := loc.Path.Key()
		if _, ok := handlers[key]; !ok {
			errs = append(errs, fmt.Errorf("location %s: no handler", loc.Path))
		}
		for _, name := range loc.Items {
			if !known(name) {
				errs = append(errs, fmt.Errorf("location %s: unknown item %q", loc.Path, name))
			}
		}
		for _, name := range loc.Enemies {
			if _, ok := c.Enemies.Enemy(name); !ok {
				errs = append(errs, fmt.Errorf("location %s: unknown enemy %q", loc.Path, name))
			}
		}
		if loc.Requires != "" && !known(loc.Requires) {
			errs = append(errs, fmt.Errorf("location %s: requires unknown item %q", loc.Path, loc.Requires))
		}
		if loc.Hint != nil && !known(loc.Hint.Item) {
			errs = append(errs, fmt.Errorf("location %s: hint names unknown item %q", loc.Path, loc.Hint.Item))
		}
	}
	for key := range handlers {
		p, err := world.ParsePath(key)
		if err != nil {
			errs = append(errs, fmt.Errorf("handler %q: %w", key, err))
			continue
		}
		if _, ok := c.World.Location(p); !ok {
			errs = append(errs, fmt.Errorf("handler %q: no such location", key))
		}
	}
	for _, e := range c.Enemies.All() {
		for _, name := range e.Requires {
			if !known(name) {
				errs = append(errs, fmt.Errorf("enemy %q: requires unknown item %q", e.Name, name))
			}
		}
	}
	return errors.Join(errs...)
}
