// Package sqlite keeps the active session in a local SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/cory-johannsen/dungeon/internal/game/session"
	"github.com/cory-johannsen/dungeon/internal/storage"
)

//go:embed schema.sql
var schema string

// Store is a storage.Store backed by SQLite.
type Store struct {
	db     *sql.DB
	slot   string
	logger *zap.Logger
}

// Open opens (creating if needed) the database at path and applies the schema.
//
// Postcondition: Returns a ready Store or a non-nil error.
func Open(path string, logger *zap.Logger) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("sqlite path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply sqlite schema: %w", err)
	}
	return &Store{db: db, slot: storage.ActiveSlot, logger: logger}, nil
}

// Load implements storage.Store.
func (s *Store) Load(ctx context.Context) (*session.Profile, error) {
	var (
		rec             session.Record
		returning       int
		items, defeated string
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT session_id, player_name, path, is_returning, items, defeated
		FROM saves WHERE slot = ?`, s.slot,
	).Scan(&rec.ID, &rec.Name, &rec.Path, &returning, &items, &defeated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying saved session: %w", err)
	}
	rec.Returning = returning != 0
	if err := json.Unmarshal([]byte(items), &rec.Items); err != nil {
		return nil, fmt.Errorf("%w: items column: %v", session.ErrCorruptSession, err)
	}
	if err := json.Unmarshal([]byte(defeated), &rec.Defeated); err != nil {
		return nil, fmt.Errorf("%w: defeated column: %v", session.ErrCorruptSession, err)
	}
	return session.FromRecord(rec)
}

// Save implements storage.Store by upserting the slot row.
func (s *Store) Save(ctx context.Context, p *session.Profile) error {
	rec := p.Record()
	items, err := json.Marshal(rec.Items)
	if err != nil {
		return fmt.Errorf("encoding items: %w", err)
	}
	defeated, err := json.Marshal(rec.Defeated)
	if err != nil {
		return fmt.Errorf("encoding defeated: %w", err)
	}
	returning := 0
	if rec.Returning {
		returning = 1
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO saves (slot, session_id, player_name, path, is_returning, items, defeated, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (slot) DO UPDATE SET
			session_id   = excluded.session_id,
			player_name  = excluded.player_name,
			path         = excluded.path,
			is_returning = excluded.is_returning,
			items        = excluded.items,
			defeated     = excluded.defeated,
			updated_at   = excluded.updated_at`,
		s.slot, rec.ID, rec.Name, rec.Path, returning, string(items), string(defeated),
	)
	if err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	s.logger.Debug("session saved", zap.String("slot", s.slot), zap.String("player", rec.Name))
	return nil
}

// Close implements storage.Store.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
