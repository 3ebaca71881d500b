package npc_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/dungeon/internal/game/npc"
)

const enemiesYAML = `
enemies:
  - name: leprechaun
    requires: [sword]
    condition: "dice<5"
    on_loss: item-wipe
    can_evade: false
  - name: dragon
    requires: [sword]
    condition: "damage>41&dice"
    on_loss: fatal
    can_evade: true
`

func TestLoadRosterFromBytes(t *testing.T) {
	r, err := npc.LoadRosterFromBytes([]byte(enemiesYAML))
	require.NoError(t, err)

	lep, ok := r.Enemy("leprechaun")
	require.True(t, ok)
	assert.Equal(t, []string{"sword"}, lep.Requires)
	assert.Equal(t, npc.ConditionDice, lep.Condition.Kind)
	assert.Equal(t, npc.OpLess, lep.Condition.Op)
	assert.Equal(t, 5, lep.Condition.Threshold)
	assert.Equal(t, npc.LossItemWipe, lep.OnLoss)
	assert.False(t, lep.CanEvade)

	dragon, ok := r.Enemy("dragon")
	require.True(t, ok)
	assert.True(t, dragon.Condition.DiceMultiplier)
	assert.True(t, dragon.CanEvade)

	assert.Len(t, r.All(), 2)
}

func TestLoadRoster_FromFS(t *testing.T) {
	fsys := fstest.MapFS{"enemies.yaml": {Data: []byte(enemiesYAML)}}
	r, err := npc.LoadRoster(fsys, "enemies.yaml")
	require.NoError(t, err)
	enemies, err := r.Lookup([]string{"dragon"})
	require.NoError(t, err)
	assert.Equal(t, "dragon", enemies[0].Name)
}

func TestLoadRoster_InvalidCondition(t *testing.T) {
	_, err := npc.LoadRosterFromBytes([]byte(`
enemies:
  - name: troll
    condition: "charisma>4"
    on_loss: fatal
`))
	assert.Error(t, err)
}

func TestEnemyValidate(t *testing.T) {
	assert.Error(t, (&npc.Enemy{OnLoss: npc.LossFatal}).Validate())
	assert.Error(t, (&npc.Enemy{Name: "imp", OnLoss: "banish"}).Validate())
	assert.Error(t, (&npc.Enemy{Name: "imp", OnLoss: npc.LossFatal, Requires: []string{""}}).Validate())
	assert.NoError(t, (&npc.Enemy{Name: "imp", OnLoss: npc.LossItemWipe}).Validate())
}

func TestNewRoster_RejectsDuplicate(t *testing.T) {
	_, err := npc.NewRoster([]*npc.Enemy{
		{Name: "imp", OnLoss: npc.LossFatal},
		{Name: "imp", OnLoss: npc.LossItemWipe},
	})
	assert.Error(t, err)
}

func TestRosterLookup_Unknown(t *testing.T) {
	r, err := npc.LoadRosterFromBytes([]byte(enemiesYAML))
	require.NoError(t, err)
	_, err = r.Lookup([]string{"basilisk"})
	assert.Error(t, err)
}
