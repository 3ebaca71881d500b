// Package file stores the active session as a YAML document on disk.
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/dungeon/internal/game/session"
)

// Store is a storage.Store backed by a single YAML file.
type Store struct {
	path   string
	logger *zap.Logger
}

// NewStore returns a Store writing to path. The file is created on first save.
//
// Precondition: path must be non-empty; logger must be non-nil.
func NewStore(path string, logger *zap.Logger) *Store {
	return &Store{path: path, logger: logger}
}

// Load implements storage.Store.
func (s *Store) Load(ctx context.Context) (*session.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Debug("no saved session", zap.String("path", s.path))
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading save file %s: %w", s.path, err)
	}

	var rec session.Record
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", session.ErrCorruptSession, s.path, err)
	}
	return session.FromRecord(rec)
}

// Save implements storage.Store. The file is replaced atomically.
func (s *Store) Save(ctx context.Context, p *session.Profile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := encodeRecord(p.Record())
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating save directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".save-*.yaml")
	if err != nil {
		return fmt.Errorf("creating temp save file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing temp save file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp save file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replacing save file: %w", err)
	}
	s.logger.Debug("session saved", zap.String("path", s.path), zap.String("player", p.Name()))
	return nil
}

// encodeRecord renders rec as YAML with every multi-line string double
// quoted. yaml.v3 emits block scalars for such strings, and a block scalar
// whose first line is indented (item art) does not parse back.
func encodeRecord(rec session.Record) ([]byte, error) {
	var doc yaml.Node
	if err := doc.Encode(rec); err != nil {
		return nil, err
	}
	quoteMultiline(&doc)
	return yaml.Marshal(&doc)
}

func quoteMultiline(n *yaml.Node) {
	if n.Kind == yaml.ScalarNode && strings.Contains(n.Value, "\n") {
		n.Style = yaml.DoubleQuotedStyle
	}
	for _, c := range n.Content {
		quoteMultiline(c)
	}
}

// Close implements storage.Store.
func (s *Store) Close() error { return nil }
