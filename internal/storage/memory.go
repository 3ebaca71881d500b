package storage

import (
	"context"
	"sync"

	"github.com/cory-johannsen/dungeon/internal/game/session"
)

// MemoryStore keeps the active record in process. It backs tests and the
// --no-save mode of the game.
type MemoryStore struct {
	mu  sync.Mutex
	rec *session.Record
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load implements Store.
func (m *MemoryStore) Load(ctx context.Context) (*session.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.rec == nil {
		return nil, nil
	}
	return session.FromRecord(*m.rec)
}

// Save implements Store.
func (m *MemoryStore) Save(ctx context.Context, p *session.Profile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	rec := p.Record()
	m.mu.Lock()
	m.rec = &rec
	m.mu.Unlock()
	return nil
}

// Put replaces the stored record verbatim.
func (m *MemoryStore) Put(rec session.Record) {
	m.mu.Lock()
	m.rec = &rec
	m.mu.Unlock()
}

// Record returns the stored record, if any.
func (m *MemoryStore) Record() (session.Record, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.rec == nil {
		return session.Record{}, false
	}
	return *m.rec, true
}

// Close implements Store.
func (m *MemoryStore) Close() error { return nil }
