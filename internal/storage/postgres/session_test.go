package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cory-johannsen/dungeon/content"
	"github.com/cory-johannsen/dungeon/internal/game/inventory"
	"github.com/cory-johannsen/dungeon/internal/game/session"
	"github.com/cory-johannsen/dungeon/internal/game/world"
	"github.com/cory-johannsen/dungeon/internal/storage/postgres"
	"github.com/cory-johannsen/dungeon/internal/testutil"
)

func setupRepo(t *testing.T) *postgres.SessionRepository {
	t.Helper()
	if testing.Short() {
		t.Skip("postgres container tests skipped in -short mode")
	}
	pc := testutil.NewPostgresContainer(t)
	pc.ApplyMigrations(t)
	return postgres.NewSessionRepository(pc.RawPool, zap.NewNop())
}

func TestSessionRepository_EmptySlot(t *testing.T) {
	repo := setupRepo(t)
	p, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestSessionRepository_RoundTripAndOverwrite(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	p := session.NewProfile("Ada")
	p.Path = world.PathOf(world.MiddleRoom, world.GoDown, world.OldRoom, world.Inspect)
	cat, err := inventory.LoadCatalog(content.FS, content.ItemsFile)
	require.NoError(t, err)
	for _, it := range cat.All() {
		p.History.AddItem(it)
	}
	p.History.MarkDefeated("leprechaun")
	require.NoError(t, repo.Save(ctx, p))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, p.Record(), got.Record())

	next := session.NewProfile("Grace")
	require.NoError(t, repo.Save(ctx, next))
	got, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Grace", got.Name())
	assert.Empty(t, got.History.Items())
}
