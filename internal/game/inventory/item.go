package inventory

import (
	"errors"
	"fmt"
)

// Category classifies an item for combat and story logic.
type Category string

// Category constants for Item.Category.
const (
	CategoryWeapon     Category = "weapon"
	CategoryMultiplier Category = "multiplier"
	CategoryDiscovery  Category = "discovery"
	CategorySpecial    Category = "special"
	CategoryHazardous  Category = "hazardous"
)

// validCategories is the closed set of item categories.
var validCategories = map[Category]bool{
	CategoryWeapon:     true,
	CategoryMultiplier: true,
	CategoryDiscovery:  true,
	CategorySpecial:    true,
	CategoryHazardous:  true,
}

// Valid reports whether c belongs to the closed category set.
func (c Category) Valid() bool {
	return validCategories[c]
}

// Item is a collectible object. Name is unique across the catalog; Score is the
// damage of a weapon or the factor of a multiplier and 0 otherwise. Image is
// presentational only.
type Item struct {
	Name     string   `yaml:"name" json:"name"`
	Category Category `yaml:"category" json:"category"`
	Score    int      `yaml:"score" json:"score"`
	Image    string   `yaml:"image,omitempty" json:"image,omitempty"`
}

// Validate checks that the Item satisfies its invariants.
//
// Postcondition: returns nil iff all fields are valid.
func (i Item) Validate() error {
	var errs []error
	if i.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	if !i.Category.Valid() {
		errs = append(errs, fmt.Errorf("category must be one of weapon, multiplier, discovery, special, hazardous; got %q", i.Category))
	}
	if i.Score < 0 {
		errs = append(errs, fmt.Errorf("score must be >= 0; got %d", i.Score))
	}
	if i.Category == CategoryMultiplier && i.Score < 1 {
		errs = append(errs, errors.New("multiplier score must be >= 1"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("item %q validation failed: %w", i.Name, errors.Join(errs...))
	}
	return nil
}

// Names returns the names of items in order.
func Names(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out
}
