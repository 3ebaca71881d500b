package combat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/dungeon/internal/game/combat"
)

func TestCheckWin(t *testing.T) {
	assert.False(t, combat.CheckWin(nil))
	assert.False(t, combat.CheckWin(map[string]bool{"dragon": true}))
	assert.True(t, combat.CheckWin(map[string]bool{"dragon": true, "leprechaun": true}))
	assert.True(t, combat.CheckWin(map[string]bool{"dragon": true, "leprechaun": true, "troll": true}))
}

func TestCheckWin_Property_Monotonic(t *testing.T) {
	names := []string{"dragon", "leprechaun", "troll", "imp"}
	rapid.Check(t, func(rt *rapid.T) {
		base := rapid.SliceOf(rapid.SampledFrom(names)).Draw(rt, "base")
		extra := rapid.SliceOf(rapid.SampledFrom(names)).Draw(rt, "extra")

		set := make(map[string]bool)
		for _, n := range base {
			set[n] = true
		}
		before := combat.CheckWin(set)
		if before != combat.CheckWin(set) {
			rt.Fatalf("not idempotent")
		}
		for _, n := range extra {
			set[n] = true
		}
		if before && !combat.CheckWin(set) {
			rt.Fatalf("win lost after adding %v", extra)
		}
	})
}
