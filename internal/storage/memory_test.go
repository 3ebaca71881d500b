package storage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/dungeon/internal/game/session"
	"github.com/cory-johannsen/dungeon/internal/game/world"
	"github.com/cory-johannsen/dungeon/internal/storage"
)

func TestMemoryStore_EmptySlot(t *testing.T) {
	s := storage.NewMemoryStore()
	p, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestMemoryStore_RoundTrip(t *testing.T) {
	s := storage.NewMemoryStore()
	p := session.NewProfile("Ada")
	p.Path = world.PathOf(world.RightRoom)
	p.History.MarkDefeated("dragon")
	require.NoError(t, s.Save(context.Background(), p))

	got, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, p.Record(), got.Record())
}

func TestMemoryStore_CorruptRecord(t *testing.T) {
	s := storage.NewMemoryStore()
	s.Put(session.Record{Name: ""})
	_, err := s.Load(context.Background())
	assert.ErrorIs(t, err, session.ErrCorruptSession)
}

func TestMemoryStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := storage.NewMemoryStore()
	assert.ErrorIs(t, s.Save(ctx, session.NewProfile("Ada")), context.Canceled)
}
