// Package blob persists uploaded hoarding photos on the local
// filesystem and hands out opaque string references. Callers never
// depend on the reference shape beyond it being a stable key.
package blob

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrInvalidRef signals a reference that could not have been issued by
// this store.
var ErrInvalidRef = errors.New("invalid blob reference")

// Store writes blobs into a single directory with generated names.
type Store struct {
	dir string
}

// New sets up a Store rooted at dir, creating it if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create image dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Save persists the blob and returns its reference. ext is the file
// extension without the dot; it only affects the stored name.
func (s *Store) Save(data []byte, ext string) (string, error) {
	name := uuid.NewString()
	if ext != "" {
		name += "." + strings.TrimPrefix(ext, ".")
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write blob: %w", err)
	}
	return name, nil
}

// Exists reports whether the reference resolves to a stored blob.
func (s *Store) Exists(ref string) bool {
	path, err := s.resolve(ref)
	if err != nil {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Open returns the raw bytes for a previously stored reference.
func (s *Store) Open(ref string) ([]byte, error) {
	path, err := s.resolve(ref)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read blob: %w", err)
	}
	return data, nil
}

// resolve rejects anything that is not a bare generated name, so a
// reference can never escape the blob directory.
func (s *Store) resolve(ref string) (string, error) {
	if ref == "" || ref != filepath.Base(ref) || strings.HasPrefix(ref, ".") {
		return "", fmt.Errorf("%w: %q", ErrInvalidRef, ref)
	}
	return filepath.Join(s.dir, ref), nil
}
