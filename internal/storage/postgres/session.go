package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/cory-johannsen/dungeon/internal/game/inventory"
	"github.com/cory-johannsen/dungeon/internal/game/session"
	"github.com/cory-johannsen/dungeon/internal/storage"
)

// SessionRepository is a storage.Store keeping the active session in the saves table.
type SessionRepository struct {
	db     *pgxpool.Pool
	slot   string
	logger *zap.Logger
}

// NewSessionRepository creates a SessionRepository backed by the given pool.
//
// Precondition: db must be a valid, open connection pool with migrations applied.
func NewSessionRepository(db *pgxpool.Pool, logger *zap.Logger) *SessionRepository {
	return &SessionRepository{db: db, slot: storage.ActiveSlot, logger: logger}
}

// Load implements storage.Store.
func (r *SessionRepository) Load(ctx context.Context) (*session.Profile, error) {
	var (
		rec   session.Record
		items []inventory.Item
	)
	err := r.db.QueryRow(ctx, `
		SELECT session_id::text, player_name, path, is_returning, items, defeated
		FROM saves WHERE slot = $1`,
		r.slot,
	).Scan(&rec.ID, &rec.Name, &rec.Path, &rec.Returning, &items, &rec.Defeated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("querying saved session: %w", err)
	}
	rec.Items = items
	return session.FromRecord(rec)
}

// Save implements storage.Store by upserting the slot row.
func (r *SessionRepository) Save(ctx context.Context, p *session.Profile) error {
	rec := p.Record()
	_, err := r.db.Exec(ctx, `
		INSERT INTO saves (slot, session_id, player_name, path, is_returning, items, defeated, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		ON CONFLICT (slot) DO UPDATE SET
			session_id   = EXCLUDED.session_id,
			player_name  = EXCLUDED.player_name,
			path         = EXCLUDED.path,
			is_returning = EXCLUDED.is_returning,
			items        = EXCLUDED.items,
			defeated     = EXCLUDED.defeated,
			updated_at   = NOW()`,
		r.slot, rec.ID, rec.Name, rec.Path, rec.Returning, rec.Items, rec.Defeated,
	)
	if err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	r.logger.Debug("session saved", zap.String("slot", r.slot), zap.String("player", rec.Name))
	return nil
}

// Close implements storage.Store. The pool is owned by the caller.
func (r *SessionRepository) Close() error { return nil }
