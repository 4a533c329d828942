// Package store persists the command registry as a JSON document at a fixed
// path under the workspace metadata directory.
package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gofrs/flock"

	"github.com/mlanders/sextant/internal/atomicfile"
	"github.com/mlanders/sextant/internal/paths"
	"github.com/mlanders/sextant/internal/registry"
)

// Store reads and writes the durable copy of the command registry.
// The router owns the in-memory registry; the store owns the file.
type Store struct {
	workspacePath string
}

// New creates a store rooted at the given workspace.
func New(workspacePath string) *Store {
	return &Store{workspacePath: workspacePath}
}

// Path returns the location of the registry document.
func (s *Store) Path() string {
	return paths.Registry(s.workspacePath)
}

// Load reads the persisted registry.
//
// A missing, unreadable, or corrupt file yields (nil, false) rather than an
// error: the caller treats "absent" as a regeneration trigger, so recovering
// this way loses nothing but a cache.
func (s *Store) Load() (*registry.Registry, bool) {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		return nil, false
	}

	var reg registry.Registry
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, false
	}
	if reg.GeneratedAt.IsZero() {
		// A document without a generation timestamp cannot be trusted for
		// staleness checks; treat it as absent.
		return nil, false
	}

	return &reg, true
}

// Save writes the registry document durably.
//
// The write is atomic (write-then-rename) so concurrent readers observe
// either the previous generation or the new one, never a partial document.
// A file lock serializes writers across processes.
func (s *Store) Save(reg *registry.Registry) error {
	if err := os.MkdirAll(paths.Metadata(s.workspacePath), 0755); err != nil {
		return fmt.Errorf("create metadata directory: %w", err)
	}

	lock := flock.New(paths.RegistryLock(s.workspacePath))
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("lock registry: %w", err)
	}
	defer func() { _ = lock.Unlock() }()

	data, err := json.MarshalIndent(reg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal registry: %w", err)
	}
	data = append(data, '\n')

	if err := atomicfile.WriteFile(s.Path(), data, 0644); err != nil {
		return fmt.Errorf("write registry: %w", err)
	}

	return nil
}
