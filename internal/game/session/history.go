package session

import "github.com/cory-johannsen/dungeon/internal/game/inventory"

// History tracks the items a player owns and the enemies they have defeated.
// Mutations never fail.
//
// Invariant: defeated contains no duplicate names and only grows.
type History struct {
	items    []inventory.Item
	defeated []string
}

// NewHistory returns a History holding items and defeated. Duplicate defeated
// names are collapsed.
func NewHistory(items []inventory.Item, defeated []string) *History {
	h := &History{}
	for _, it := range items {
		h.AddItem(it)
	}
	for _, name := range defeated {
		h.MarkDefeated(name)
	}
	return h
}

// HasItem reports whether an item named name is owned.
func (h *History) HasItem(name string) bool {
	for _, it := range h.items {
		if it.Name == name {
			return true
		}
	}
	return false
}

// AddItem appends item to the inventory. Duplicates are allowed.
func (h *History) AddItem(item inventory.Item) {
	h.items = append(h.items, item)
}

// ClearItems empties the inventory.
//
// Postcondition: len(Items()) == 0.
func (h *History) ClearItems() {
	h.items = nil
}

// Items returns a copy of the inventory in acquisition order.
func (h *History) Items() []inventory.Item {
	out := make([]inventory.Item, len(h.items))
	copy(out, h.items)
	return out
}

// HasDefeated reports whether the enemy named name has been defeated.
func (h *History) HasDefeated(name string) bool {
	for _, d := range h.defeated {
		if d == name {
			return true
		}
	}
	return false
}

// MarkDefeated records name as defeated. Repeated calls are no-ops.
func (h *History) MarkDefeated(name string) {
	if h.HasDefeated(name) {
		return
	}
	h.defeated = append(h.defeated, name)
}

// Defeated returns defeated enemy names in order of defeat.
func (h *History) Defeated() []string {
	out := make([]string, len(h.defeated))
	copy(out, h.defeated)
	return out
}

// DefeatedSet returns the defeated names as a set.
func (h *History) DefeatedSet() map[string]bool {
	set := make(map[string]bool, len(h.defeated))
	for _, d := range h.defeated {
		set[d] = true
	}
	return set
}
