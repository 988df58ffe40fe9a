// Package storage spools uploaded documents to uniquely named temp files so
// the extractors can work from a path. Files live for one analysis attempt.
package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

type Store struct {
	dir string
}

// New returns a Store writing into dir, or the system temp dir when dir is
// empty.
func New(dir string) *Store {
	if dir == "" {
		dir = os.TempDir()
	}
	return &Store{dir: dir}
}

// Save writes data to <dir>/<uuid>_<base name> and returns the full path.
// The random prefix makes concurrent uploads of the same file name safe.
func (s *Store) Save(name string, data []byte) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	path := filepath.Join(s.dir, fmt.Sprintf("%s_%s", uuid.NewString(), filepath.Base(name)))
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	return path, nil
}

// Remove deletes a saved upload. Best-effort: the caller only logs failures.
func (s *Store) Remove(path string) error {
	return os.Remove(path)
}
