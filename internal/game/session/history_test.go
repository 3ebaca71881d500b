package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/dungeon/internal/game/inventory"
	"github.com/cory-johannsen/dungeon/internal/game/session"
)

var (
	sword = inventory.Item{Name: "sword", Category: inventory.CategoryWeapon, Score: 10}
	ring  = inventory.Item{Name: "ring", Category: inventory.CategoryMultiplier, Score: 2}
	torch = inventory.Item{Name: "torch", Category: inventory.CategoryDiscovery}
)

func TestHistory_Items(t *testing.T) {
	h := session.NewHistory(nil, nil)
	assert.False(t, h.HasItem("sword"))

	h.AddItem(sword)
	h.AddItem(sword)
	assert.True(t, h.HasItem("sword"))
	assert.Len(t, h.Items(), 2, "duplicates are allowed")
}

func TestHistory_ItemsIsACopy(t *testing.T) {
	h := session.NewHistory([]inventory.Item{sword}, nil)
	items := h.Items()
	items[0] = ring
	assert.True(t, h.HasItem("sword"))
	assert.False(t, h.HasItem("ring"))
}

func TestHistory_ClearItemsOnEmpty(t *testing.T) {
	h := session.NewHistory(nil, nil)
	assert.NotPanics(t, h.ClearItems)
	assert.Empty(t, h.Items())
}

func TestHistory_MarkDefeatedIsIdempotent(t *testing.T) {
	h := session.NewHistory(nil, []string{"dragon", "dragon"})
	h.MarkDefeated("dragon")
	h.MarkDefeated("leprechaun")
	assert.Equal(t, []string{"dragon", "leprechaun"}, h.Defeated())
	assert.Equal(t, map[string]bool{"dragon": true, "leprechaun": true}, h.DefeatedSet())
	assert.True(t, h.HasDefeated("leprechaun"))
	assert.False(t, h.HasDefeated("troll"))
}

func TestHistory_ClearItemsAlwaysEmpties_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		items := rapid.SliceOf(rapid.SampledFrom([]inventory.Item{sword, ring, torch})).Draw(rt, "items")
		h := session.NewHistory(items, nil)
		h.ClearItems()
		if len(h.Items()) != 0 {
			rt.Fatalf("inventory not empty after clear: %v", h.Items())
		}
	})
}

func TestHistory_DefeatedOnlyGrows_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		names := rapid.SliceOf(rapid.SampledFrom([]string{"dragon", "leprechaun", "troll"})).Draw(rt, "names")
		h := session.NewHistory(nil, nil)
		prev := 0
		for _, n := range names {
			h.MarkDefeated(n)
			if !h.HasDefeated(n) {
				rt.Fatalf("%q not recorded", n)
			}
			if len(h.Defeated()) < prev {
				rt.Fatalf("defeated set shrank")
			}
			prev = len(h.Defeated())
		}
	})
}
