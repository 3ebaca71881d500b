// Package room computes what a location still offers a returning player.
package room

import (
	"github.com/cory-johannsen/dungeon/internal/game/inventory"
	"github.com/cory-johannsen/dungeon/internal/game/npc"
)

// FilterItems returns the candidates the player does not already own, in
// candidate order. Items are compared by name, which identifies an item
// record across the catalog; an owned copy whose score or image differs
// still counts as owned.
//
// Postcondition: the result is a subsequence of candidates and
// FilterItems(FilterItems(c, o), o) equals FilterItems(c, o).
func FilterItems(candidates, owned []inventory.Item) []inventory.Item {
	have := make(map[string]bool, len(owned))
	for _, it := range owned {
		have[it.Name] = true
	}
	out := make([]inventory.Item, 0, len(candidates))
	for _, it := range candidates {
		if !have[it.Name] {
			out = append(out, it)
		}
	}
	return out
}

// FilterEnemies returns the candidates not in defeated, in candidate order.
func FilterEnemies(candidates []*npc.Enemy, defeated map[string]bool) []*npc.Enemy {
	out := make([]*npc.Enemy, 0, len(candidates))
	for _, e := range candidates {
		if !defeated[e.Name] {
			out = append(out, e)
		}
	}
	return out
}
