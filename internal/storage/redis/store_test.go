package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cory-johannsen/dungeon/internal/config"
	"github.com/cory-johannsen/dungeon/content"
	"github.com/cory-johannsen/dungeon/internal/game/inventory"
	"github.com/cory-johannsen/dungeon/internal/game/session"
	"github.com/cory-johannsen/dungeon/internal/game/world"
	"github.com/cory-johannsen/dungeon/internal/storage/redis"
)

func newStore(t *testing.T, ttl time.Duration) (*redis.Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	cfg := config.RedisConfig{Addr: mr.Addr(), Key: "dungeon:session:test", TTL: ttl}
	s, err := redis.NewStore(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s, mr
}

func TestStore_EmptySlot(t *testing.T) {
	s, _ := newStore(t, 0)
	p, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestStore_RoundTrip(t *testing.T) {
	s, mr := newStore(t, 0)
	p := session.NewProfile("Ada")
	p.Path = world.PathOf(world.RightRoom)
	p.Returning = true
	cat, err := inventory.LoadCatalog(content.FS, content.ItemsFile)
	require.NoError(t, err)
	for _, it := range cat.All() {
		p.History.AddItem(it)
	}
	p.History.MarkDefeated("dragon")

	require.NoError(t, s.Save(context.Background(), p))
	assert.True(t, mr.Exists("dungeon:session:test"))

	got, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, p.Record(), got.Record())
}

func TestStore_TTLExpiresSlot(t *testing.T) {
	s, mr := newStore(t, time.Hour)
	require.NoError(t, s.Save(context.Background(), session.NewProfile("Ada")))
	assert.Equal(t, time.Hour, mr.TTL("dungeon:session:test"))

	mr.FastForward(2 * time.Hour)
	p, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestStore_CorruptValue(t *testing.T) {
	s, mr := newStore(t, 0)
	require.NoError(t, mr.Set("dungeon:session:test", "{not json"))
	_, err := s.Load(context.Background())
	assert.ErrorIs(t, err, session.ErrCorruptSession)
}

func TestNewStore_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()
	_, err := redis.NewStore(context.Background(), config.RedisConfig{Addr: addr, Key: "k"}, zap.NewNop())
	assert.Error(t, err)
}
