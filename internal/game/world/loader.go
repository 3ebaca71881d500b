package world

import (
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// yamlWorldFile is the top-level YAML structure for world files.
type yamlWorldFile struct {
	World yamlWorld `yaml:"world"`
}

type yamlWorld struct {
	ID          string         `yaml:"id"`
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Locations   []yamlLocation `yaml:"locations"`
}

type yamlLocation struct {
	Path              string     `yaml:"path"`
	Title             string     `yaml:"title"`
	Description       string     `yaml:"description"`
	ReturnDescription string     `yaml:"return_description"`
	Doors             []string   `yaml:"doors"`
	Exits             []yamlExit `yaml:"exits"`
	CanReturn         bool       `yaml:"can_return"`
	CanStay           bool       `yaml:"can_stay"`
	Items             []string   `yaml:"items"`
	Enemies           []string   `yaml:"enemies"`
	Requires          string     `yaml:"requires"`
	FatalText         string     `yaml:"fatal_text"`
	EmptyText         string     `yaml:"empty_text"`
	ClearedText       string     `yaml:"cleared_text"`
	Hint              *yamlHint  `yaml:"hint"`
}

type yamlExit struct {
	Label  string `yaml:"label"`
	Target string `yaml:"target"`
}

type yamlHint struct {
	Item    string `yaml:"item"`
	Present string `yaml:"present"`
	Absent  string `yaml:"absent"`
}

// LoadWorld reads name from fsys and parses it as a world file.
//
// Precondition: fsys contains a readable YAML file called name.
// Postcondition: Returns a validated World or a non-nil error.
func LoadWorld(fsys fs.FS, name string) (*World, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("reading world file %s: %w", name, err)
	}
	return LoadWorldFromBytes(data)
}

// LoadWorldFromBytes parses and validates a world from YAML bytes.
//
// Postcondition: Returns a validated World or a non-nil error.
func LoadWorldFromBytes(data []byte) (*World, error) {
	var file yamlWorldFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing world YAML: %w", err)
	}

	locs := make([]*Location, 0, len(file.World.Locations))
	for _, yl := range file.World.Locations {
		loc, err := convertYAMLLocation(yl)
		if err != nil {
			return nil, fmt.Errorf("world %q: %w", file.World.ID, err)
		}
		locs = append(locs, loc)
	}

	w, err := NewWorld(file.World.ID, file.World.Name, file.World.Description, locs)
	if err != nil {
		return nil, fmt.Errorf("validating world: %w", err)
	}
	return w, nil
}

func convertYAMLLocation(yl yamlLocation) (*Location, error) {
	p, err := ParsePath(yl.Path)
	if err != nil {
		return nil, fmt.Errorf("location %q: %w", yl.Path, err)
	}
	loc := &Location{
		Path:              p,
		Title:             yl.Title,
		Description:       yl.Description,
		ReturnDescription: yl.ReturnDescription,
		CanReturn:         yl.CanReturn,
		CanStay:           yl.CanStay,
		Items:             yl.Items,
		Enemies:           yl.Enemies,
		Requires:          yl.Requires,
		FatalText:         yl.FatalText,
		EmptyText:         yl.EmptyText,
		ClearedText:       yl.ClearedText,
	}
	for _, door := range yl.Doors {
		seg, err := ParseSegment(string(DoorSegment(door)))
		if err != nil {
			return nil, fmt.Errorf("location %q: door %q: %w", yl.Path, door, err)
		}
		loc.Exits = append(loc.Exits, Exit{Label: door + " door", Target: seg, Door: true})
	}
	for _, ye := range yl.Exits {
		seg, err := ParseSegment(ye.Target)
		if err != nil {
			return nil, fmt.Errorf("location %q: exit %q: %w", yl.Path, ye.Label, err)
		}
		label := ye.Label
		if label == "" {
			label = ye.Target
		}
		loc.Exits = append(loc.Exits, Exit{Label: label, Target: seg})
	}
	if yl.Hint != nil {
		loc.Hint = &Hint{Item: yl.Hint.Item, Present: yl.Hint.Present, Absent: yl.Hint.Absent}
	}
	return loc, nil
}
