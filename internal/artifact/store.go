// Package artifact persists rendered contract binaries and resolves the
// opaque references handed back to clients.
package artifact

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotFound reports a reference naming no stored artifact.
var ErrNotFound = errors.New("artifact not found")

// Store is a flat directory of rendered artifacts. Writes are append-only:
// names embed a fresh ULID, so the same name is never written twice.
type Store struct {
	dir string
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create artifact dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// NewName returns a fresh time-derived artifact file name.
func NewName() string {
	return "contract_" + NewID() + ".pdf"
}

// Save writes an artifact under the given name.
func (s *Store) Save(name string, data []byte) error {
	if err := os.WriteFile(filepath.Join(s.dir, filepath.Base(name)), data, 0o644); err != nil {
		return fmt.Errorf("write artifact %s: %w", name, err)
	}
	return nil
}

// Open resolves a reference name to its stored binary.
func (s *Store) Open(name string) (*os.File, error) {
	f, err := os.Open(filepath.Join(s.dir, filepath.Base(name)))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("open artifact %s: %w", name, err)
	}
	return f, nil
}
