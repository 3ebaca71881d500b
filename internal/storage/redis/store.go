// Package redis keeps the active session under a single Redis key.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/cory-johannsen/dungeon/internal/config"
	"github.com/cory-johannsen/dungeon/internal/game/session"
)

// Store is a storage.Store backed by one Redis string value.
type Store struct {
	client *goredis.Client
	cfg    config.RedisConfig
	logger *zap.Logger
}

// NewStore connects to the server described by cfg and verifies it with PING.
//
// Postcondition: Returns a ready Store or a non-nil error.
func NewStore(ctx context.Context, cfg config.RedisConfig, logger *zap.Logger) (*Store, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}
	return &Store{client: client, cfg: cfg, logger: logger}, nil
}

// Load implements storage.Store.
func (s *Store) Load(ctx context.Context) (*session.Profile, error) {
	data, err := s.client.Get(ctx, s.cfg.Key).Bytes()
	if errors.Is(err, goredis.Nil) {
		s.logger.Debug("no saved session", zap.String("key", s.cfg.Key))
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", s.cfg.Key, err)
	}

	var rec session.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %v", session.ErrCorruptSession, s.cfg.Key, err)
	}
	return session.FromRecord(rec)
}

// Save implements storage.Store. A non-zero TTL expires the slot.
func (s *Store) Save(ctx context.Context, p *session.Profile) error {
	data, err := json.Marshal(p.Record())
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}
	if err := s.client.Set(ctx, s.cfg.Key, data, s.cfg.TTL).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", s.cfg.Key, err)
	}
	s.logger.Debug("session saved", zap.String("key", s.cfg.Key), zap.Int("bytes", len(data)))
	return nil
}

// Close implements storage.Store.
func (s *Store) Close() error {
	return s.client.Close()
}
