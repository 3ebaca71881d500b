// Package npc provides enemy definitions and the roster they are loaded into.
package npc

import (
	"errors"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// LossConsequence is what happens to the player after losing a fight.
type LossConsequence string

// LossConsequence constants for Enemy.OnLoss.
const (
	LossFatal    LossConsequence = "fatal"
	LossItemWipe LossConsequence = "item-wipe"
)

// Enemy is an immutable scripted opponent.
type Enemy struct {
	Name string `yaml:"name"`
	// Requires lists item names the player must hold to fight meaningfully.
	Requires  []string        `yaml:"requires"`
	Condition Condition       `yaml:"condition"`
	OnLoss    LossConsequence `yaml:"on_loss"`
	CanEvade  bool            `yaml:"can_evade"`
}

// Validate checks that the enemy satisfies basic invariants.
//
// Postcondition: Returns nil iff Name is non-empty, OnLoss is known and no
// required item name is blank.
func (e *Enemy) Validate() error {
	var errs []error
	if e.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	switch e.OnLoss {
	case LossFatal, LossItemWipe:
	default:
		errs = append(errs, fmt.Errorf("on_loss must be one of fatal, item-wipe; got %q", e.OnLoss))
	}
	for _, r := range e.Requires {
		if r == "" {
			errs = append(errs, errors.New("requires must not contain empty names"))
			break
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("enemy %q: %w", e.Name, errors.Join(errs...))
	}
	return nil
}

type yamlRosterFile struct {
	Enemies []*Enemy `yaml:"enemies"`
}

// Roster indexes enemy definitions by name.
type Roster struct {
	order   []string
	enemies map[string]*Enemy
}

// NewRoster validates enemies and indexes them by name.
//
// Postcondition: returns an error on the first invalid enemy or duplicate name.
func NewRoster(enemies []*Enemy) (*Roster, error) {
	r := &Roster{enemies: make(map[string]*Enemy, len(enemies))}
	for _, e := range enemies {
		if err := e.Validate(); err != nil {
			return nil, err
		}
		if _, exists := r.enemies[e.Name]; exists {
			return nil, fmt.Errorf("npc: enemy %q already registered", e.Name)
		}
		r.enemies[e.Name] = e
		r.order = append(r.order, e.Name)
	}
	return r, nil
}

// LoadRosterFromBytes parses an enemies YAML document.
func LoadRosterFromBytes(data []byte) (*Roster, error) {
	var f yamlRosterFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing enemies YAML: %w", err)
	}
	return NewRoster(f.Enemies)
}

// LoadRoster reads name from fsys and parses it into a Roster.
func LoadRoster(fsys fs.FS, name string) (*Roster, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("reading enemies file %q: %w", name, err)
	}
	r, err := LoadRosterFromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("loading enemies file %q: %w", name, err)
	}
	return r, nil
}

// Enemy returns the definition registered under name.
func (r *Roster) Enemy(name string) (*Enemy, bool) {
	e, ok := r.enemies[name]
	return e, ok
}

// Lookup resolves names to definitions in order.
func (r *Roster) Lookup(names []string) ([]*Enemy, error) {
	out := make([]*Enemy, 0, len(names))
	for _, n := range names {
		e, ok := r.enemies[n]
		if !ok {
			return nil, fmt.Errorf("npc: unknown enemy %q", n)
		}
		out = append(out, e)
	}
	return out, nil
}

// All returns every enemy in definition order.
func (r *Roster) All() []*Enemy {
	out := make([]*Enemy, 0, len(r.order))
	for _, n := range r.order {
		out = append(out, r.enemies[n])
	}
	return out
}
