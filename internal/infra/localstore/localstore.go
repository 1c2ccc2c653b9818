// Package localstore is the durable per-browser key-value store, persisted
// as a single JSON file.
package localstore

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"menfes/config"
	"menfes/internal/domain/repository"

	"github.com/pkg/errors"
)

const defaultFileName = "localstore.json"

type store struct {
	mu     sync.Mutex
	path   string
	values map[string]string
}

// New opens the store at the configured path, creating it on first use. An
// unreadable or corrupt file starts the store empty rather than failing;
// the store is best-effort by contract.
func New(cfg *config.Config) (repository.LocalStore, error) {
	path := cfg.Storage.Path
	if path == "" {
		path = filepath.Join(os.TempDir(), "menfes", defaultFileName)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrap(err, "create localstore dir")
	}

	s := &store{path: path, values: map[string]string{}}
	if raw, err := os.ReadFile(path); err == nil {
		var values map[string]string
		if err := json.Unmarshal(raw, &values); err == nil {
			s.values = values
		}
	}

	return s, nil
}

func (s *store) Get(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok := s.values[key]
	if !ok {
		return "", repository.ErrKeyNotFound
	}

	return value, nil
}

func (s *store) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value

	return s.persist()
}

func (s *store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)

	return s.persist()
}

// persist writes the whole map atomically. Callers hold the mutex.
func (s *store) persist() error {
	raw, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal localstore")
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return errors.Wrap(err, "write localstore")
	}

	return errors.Wrap(os.Rename(tmp, s.path), "replace localstore")
}
