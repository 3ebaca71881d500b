package world_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/dungeon/content"
	"github.com/cory-johannsen/dungeon/internal/game/world"
)

const tinyWorldYAML = `
world:
  id: tiny
  name: "Tiny"
  locations:
    - path: ""
      title: "Hall"
      description: "Two doors."
      doors: [left, right]
    - path: left-room
      title: "Left"
      description: "Empty."
      return_description: "Still empty."
      exits:
        - label: inspect
          target: inspect
      can_return: true
    - path: left-room/inspect
      title: "Left, inspected"
      items: [sword]
      can_return: true
      can_stay: true
    - path: right-room
      title: "Right"
      enemies: [dragon]
      can_return: true
`

func TestLoadWorldFromBytes_Valid(t *testing.T) {
	w, err := world.LoadWorldFromBytes([]byte(tinyWorldYAML))
	require.NoError(t, err)

	assert.Equal(t, "tiny", w.ID)
	assert.Equal(t, 4, w.LocationCount())

	start := w.Start()
	require.NotNil(t, start)
	assert.Equal(t, []string{"left door", "right door"}, start.Options())
	assert.Equal(t, []string{"left", "right"}, start.Doors())

	left, ok := w.Location(world.PathOf(world.LeftRoom))
	require.True(t, ok)
	assert.Equal(t, []string{"inspect", "return"}, left.Options())
	assert.Equal(t, "Still empty.", left.Narration(true))
	assert.Equal(t, "Empty.", left.Narration(false))

	inspect, ok := w.Location(world.PathOf(world.LeftRoom, world.Inspect))
	require.True(t, ok)
	assert.Equal(t, []string{"stay", "return"}, inspect.Options())
	assert.Equal(t, []string{"sword"}, inspect.Items)
}

func TestLoadWorld_FromFS(t *testing.T) {
	fsys := fstest.MapFS{"world.yaml": {Data: []byte(tinyWorldYAML)}}
	w, err := world.LoadWorld(fsys, "world.yaml")
	require.NoError(t, err)
	assert.Equal(t, "Tiny", w.Name)
}

func TestLoadWorldFromBytes_UnknownSegment(t *testing.T) {
	_, err := world.LoadWorldFromBytes([]byte(`
world:
  id: bad
  locations:
    - path: ""
      title: "Hall"
      doors: [attic]
`))
	assert.ErrorIs(t, err, world.ErrUnknownSegment)
}

func TestLoadWorldFromBytes_DanglingExit(t *testing.T) {
	_, err := world.LoadWorldFromBytes([]byte(`
world:
  id: bad
  locations:
    - path: ""
      title: "Hall"
      doors: [left]
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "targets unknown location")
}

func TestLoadWorldFromBytes_Unreachable(t *testing.T) {
	_, err := world.LoadWorldFromBytes([]byte(`
world:
  id: bad
  locations:
    - path: ""
      title: "Hall"
      doors: [left]
    - path: left-room
      title: "Left"
      can_return: true
    - path: right-room
      title: "Right"
      can_return: true
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unreachable")
}

func TestLoadWorldFromBytes_StartCannotReturn(t *testing.T) {
	_, err := world.LoadWorldFromBytes([]byte(`
world:
  id: bad
  locations:
    - path: ""
      title: "Hall"
      can_return: true
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot offer return")
}

func TestEmbeddedWorld_Loads(t *testing.T) {
	w, err := world.LoadWorld(content.FS, content.WorldFile)
	require.NoError(t, err)
	assert.Equal(t, 9, w.LocationCount())

	vault, ok := w.Location(world.PathOf(world.MiddleRoom, world.GoDown, world.OldRoom, world.Inspect))
	require.True(t, ok)
	assert.Equal(t, "torch", vault.Requires)
	require.NotNil(t, vault.Hint)
	assert.Equal(t, "sword", vault.Hint.Item)

	junction, ok := w.Location(world.PathOf(world.MiddleRoom, world.GoDown))
	require.True(t, ok)
	assert.Equal(t, []string{"old door", "modern door", "return"}, junction.Options())
}
