// Package inventory defines collectible items and the catalog they are loaded into.
package inventory

import (
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// yamlCatalogFile is the top-level structure of an items YAML file.
type yamlCatalogFile struct {
	Items []Item `yaml:"items"`
}

// Catalog holds every item definition indexed by name.
type Catalog struct {
	order []string
	items map[string]Item
}

// NewCatalog builds a Catalog from items.
//
// Postcondition: Item(name) returns each registered item; returns error on an
// invalid item or a duplicate name.
func NewCatalog(items []Item) (*Catalog, error) {
	c := &Catalog{items: make(map[string]Item, len(items))}
	for _, it := range items {
		if err := it.Validate(); err != nil {
			return nil, err
		}
		if _, exists := c.items[it.Name]; exists {
			return nil, fmt.Errorf("inventory: item %q already registered", it.Name)
		}
		c.items[it.Name] = it
		c.order = append(c.order, it.Name)
	}
	return c, nil
}

// LoadCatalogFromBytes parses YAML bytes into a Catalog.
func LoadCatalogFromBytes(data []byte) (*Catalog, error) {
	var f yamlCatalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing items YAML: %w", err)
	}
	return NewCatalog(f.Items)
}

// LoadCatalog reads name from fsys and parses it into a Catalog.
//
// Precondition: fsys contains a readable YAML file called name.
func LoadCatalog(fsys fs.FS, name string) (*Catalog, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("reading items file %q: %w", name, err)
	}
	c, err := LoadCatalogFromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("loading items file %q: %w", name, err)
	}
	return c, nil
}

// Item returns the item registered under name.
//
// Postcondition: ok is true iff name is registered.
func (c *Catalog) Item(name string) (Item, bool) {
	it, ok := c.items[name]
	return it, ok
}

// Lookup resolves names to items in order.
//
// Postcondition: returns an error naming the first unknown item.
func (c *Catalog) Lookup(names []string) ([]Item, error) {
	out := make([]Item, 0, len(names))
	for _, n := range names {
		it, ok := c.items[n]
		if !ok {
			return nil, fmt.Errorf("inventory: unknown item %q", n)
		}
		out = append(out, it)
	}
	return out, nil
}

// All returns every item in definition order.
func (c *Catalog) All() []Item {
	out := make([]Item, 0, len(c.order))
	for _, n := range c.order {
		out = append(out, c.items[n])
	}
	return out
}
