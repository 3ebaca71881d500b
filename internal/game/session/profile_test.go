package session_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/dungeon/internal/game/inventory"
	"github.com/cory-johannsen/dungeon/internal/game/session"
	"github.com/cory-johannsen/dungeon/internal/game/world"
)

func TestNewProfile(t *testing.T) {
	p := session.NewProfile("Ada")
	assert.Equal(t, "Ada", p.Name())
	assert.True(t, p.Path.IsStart())
	assert.False(t, p.Returning)
	assert.NotEqual(t, uuid.Nil, p.ID)
	assert.Empty(t, p.History.Items())
}

func TestProfile_RecordRoundTrip(t *testing.T) {
	p := session.NewProfile("Ada")
	p.Path = world.PathOf(world.MiddleRoom, world.GoDown, world.OldRoom)
	p.Returning = true
	p.History.AddItem(sword)
	p.History.AddItem(torch)
	p.History.MarkDefeated("leprechaun")

	rec := p.Record()
	assert.Equal(t, "middle-room/go-down/old-room", rec.Path)

	got, err := session.FromRecord(rec)
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)
	assert.Equal(t, "Ada", got.Name())
	assert.True(t, got.Path.Equal(p.Path))
	assert.True(t, got.Returning)
	assert.Equal(t, p.History.Items(), got.History.Items())
	assert.Equal(t, []string{"leprechaun"}, got.History.Defeated())
}

func TestFromRecord_Corrupt(t *testing.T) {
	good := session.NewProfile("Ada").Record()

	cases := map[string]func(r *session.Record){
		"empty name":   func(r *session.Record) { r.Name = "" },
		"bad id":       func(r *session.Record) { r.ID = "not-a-uuid" },
		"bad path":     func(r *session.Record) { r.Path = "middle-room/basement" },
		"invalid item": func(r *session.Record) { r.Items = []inventory.Item{{Name: "rock", Category: "junk"}} },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			rec := good
			mutate(&rec)
			_, err := session.FromRecord(rec)
			assert.ErrorIs(t, err, session.ErrCorruptSession)
		})
	}
}

func TestFatalError_IsErrFatal(t *testing.T) {
	var err error = &session.FatalError{Source: "dragon", Cause: session.CauseCombat}
	assert.ErrorIs(t, err, session.ErrFatal)

	var fatal *session.FatalError
	require.True(t, errors.As(err, &fatal))
	assert.Equal(t, "dragon", fatal.Source)
	assert.Contains(t, err.Error(), "dragon")
}
