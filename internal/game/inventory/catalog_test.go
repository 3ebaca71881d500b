package inventory_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/dungeon/internal/game/inventory"
)

const itemsYAML = `
items:
  - name: sword
    category: weapon
    score: 10
  - name: ring
    category: multiplier
    score: 2
  - name: torch
    category: discovery
  - name: suspicious berry
    category: hazardous
`

func TestLoadCatalogFromBytes(t *testing.T) {
	c, err := inventory.LoadCatalogFromBytes([]byte(itemsYAML))
	require.NoError(t, err)

	sword, ok := c.Item("sword")
	require.True(t, ok)
	assert.Equal(t, inventory.CategoryWeapon, sword.Category)
	assert.Equal(t, 10, sword.Score)

	assert.Equal(t, []string{"sword", "ring", "torch", "suspicious berry"}, inventory.Names(c.All()))
}

func TestLoadCatalog_FromFS(t *testing.T) {
	fsys := fstest.MapFS{"items.yaml": {Data: []byte(itemsYAML)}}
	c, err := inventory.LoadCatalog(fsys, "items.yaml")
	require.NoError(t, err)
	_, ok := c.Item("torch")
	assert.True(t, ok)
}

func TestLoadCatalog_MissingFile(t *testing.T) {
	_, err := inventory.LoadCatalog(fstest.MapFS{}, "items.yaml")
	assert.Error(t, err)
}

func TestNewCatalog_RejectsDuplicate(t *testing.T) {
	_, err := inventory.NewCatalog([]inventory.Item{
		{Name: "sword", Category: inventory.CategoryWeapon, Score: 10},
		{Name: "sword", Category: inventory.CategoryWeapon, Score: 12},
	})
	assert.Error(t, err)
}

func TestItemValidate(t *testing.T) {
	assert.NoError(t, inventory.Item{Name: "torch", Category: inventory.CategoryDiscovery}.Validate())
	assert.Error(t, inventory.Item{Category: inventory.CategoryWeapon}.Validate())
	assert.Error(t, inventory.Item{Name: "rock", Category: "junk"}.Validate())
	assert.Error(t, inventory.Item{Name: "ring", Category: inventory.CategoryMultiplier, Score: 0}.Validate())
	assert.Error(t, inventory.Item{Name: "sword", Category: inventory.CategoryWeapon, Score: -1}.Validate())
}

func TestCatalogLookup(t *testing.T) {
	c, err := inventory.LoadCatalogFromBytes([]byte(itemsYAML))
	require.NoError(t, err)

	items, err := c.Lookup([]string{"torch", "sword"})
	require.NoError(t, err)
	assert.Equal(t, []string{"torch", "sword"}, inventory.Names(items))

	_, err = c.Lookup([]string{"shield"})
	assert.Error(t, err)
}

func TestCategoryValid_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		c := inventory.Category(rapid.String().Draw(rt, "category"))
		switch c {
		case inventory.CategoryWeapon, inventory.CategoryMultiplier, inventory.CategoryDiscovery,
			inventory.CategorySpecial, inventory.CategoryHazardous:
			if !c.Valid() {
				rt.Fatalf("%q should be valid", c)
			}
		default:
			if c.Valid() {
				rt.Fatalf("%q should be invalid", c)
			}
		}
	})
}
