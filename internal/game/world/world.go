package world

import (
	"errors"
	"fmt"
)

// World is the validated tree of locations indexed by path key.
type World struct {
	ID          string
	Name        string
	Description string
	locations   map[string]*Location
	order       []string
}

// NewWorld indexes locs by path key and validates the tree.
//
// Postcondition: Returns a World satisfying Validate, or an error.
func NewWorld(id, name, description string, locs []*Location) (*World, error) {
	w := &World{
		ID:          id,
		Name:        name,
		Description: description,
		locations:   make(map[string]*Location, len(locs)),
	}
	for _, loc := range locs {
		key := loc.Path.Key()
		if _, exists := w.locations[key]; exists {
			return nil, fmt.Errorf("world %q: duplicate location %q", id, loc.Path)
		}
		w.locations[key] = loc
		w.order = append(w.order, key)
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return w, nil
}

// Validate checks tree invariants: a start location exists, every location
// hangs off an existing parent that offers an exit to it, every exit lands
// on an existing child, and the start location offers no return.
//
// Postcondition: Returns nil if valid, or an error joining every violation.
func (w *World) Validate() error {
	var errs []error
	if w.ID == "" {
		errs = append(errs, errors.New("world ID must not be empty"))
	}
	start, ok := w.locations[""]
	if !ok {
		errs = append(errs, fmt.Errorf("world %q: missing start location", w.ID))
	} else if start.CanReturn {
		errs = append(errs, fmt.Errorf("world %q: start location cannot offer return", w.ID))
	}
	for _, key := range w.order {
		loc := w.locations[key]
		if loc.Title == "" {
			errs = append(errs, fmt.Errorf("world %q: location %s: title must not be empty", w.ID, loc.Path))
		}
		if len(loc.Options()) == 0 {
			errs = append(errs, fmt.Errorf("world %q: location %s: offers no options", w.ID, loc.Path))
		}
		if loc.Requires == "" && loc.FatalText != "" {
			errs = append(errs, fmt.Errorf("world %q: location %s: fatal_text without requires", w.ID, loc.Path))
		}
		if !loc.Path.IsStart() {
			parentPath, _ := loc.Path.Return()
			parent, ok := w.locations[parentPath.Key()]
			if !ok {
				errs = append(errs, fmt.Errorf("world %q: location %s: parent %s not found", w.ID, loc.Path, parentPath))
			} else if !offersExit(parent, loc.Path.Tail()) {
				errs = append(errs, fmt.Errorf("world %q: location %s: unreachable from %s", w.ID, loc.Path, parentPath))
			}
		}
		seen := make(map[string]bool)
		for _, e := range loc.Exits {
			if seen[e.Label] || e.Label == OptionReturn || e.Label == OptionStay {
				errs = append(errs, fmt.Errorf("world %q: location %s: duplicate or reserved exit label %q", w.ID, loc.Path, e.Label))
			}
			seen[e.Label] = true
			if _, ok := w.locations[loc.Path.Advance(e.Target).Key()]; !ok {
				errs = append(errs, fmt.Errorf("world %q: location %s: exit %q targets unknown location %s", w.ID, loc.Path, e.Label, loc.Path.Advance(e.Target)))
			}
		}
	}
	return errors.Join(errs...)
}

func offersExit(loc *Location, seg Segment) bool {
	for _, e := range loc.Exits {
		if e.Target == seg {
			return true
		}
	}
	return false
}

// Start returns the start location.
func (w *World) Start() *Location {
	return w.locations[""]
}

// Location returns the location at p.
//
// Postcondition: Returns (loc, true) if found, or (nil, false) otherwise.
func (w *World) Location(p Path) (*Location, bool) {
	loc, ok := w.locations[p.Key()]
	return loc, ok
}

// Navigate resolves option at the location p and returns the destination
// path and returning flag.
//
// Precondition: p must exist in the world.
// Postcondition: the returned path exists in the world.
func (w *World) Navigate(p Path, option string) (Path, bool, error) {
	loc, ok := w.Location(p)
	if !ok {
		return nil, false, fmt.Errorf("location %s not found", p)
	}
	t, err := loc.Resolve(option)
	if err != nil {
		return nil, false, err
	}
	next, returning, err := t.Apply(p)
	if err != nil {
		return nil, false, err
	}
	if _, ok := w.Location(next); !ok {
		return nil, false, fmt.Errorf("transition %s from %s lands on unknown location %s", t, p, next)
	}
	return next, returning, nil
}

// Locations returns every location in definition order.
func (w *World) Locations() []*Location {
	out := make([]*Location, 0, len(w.order))
	for _, key := range w.order {
		out = append(out, w.locations[key])
	}
	return out
}

// LocationCount returns the number of locations.
func (w *World) LocationCount() int {
	return len(w.locations)
}
