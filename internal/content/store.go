package content

import (
	"errors"
	"fmt"
	"io/fs"
	"sync/atomic"
)

// Store holds the current Catalog and swaps it atomically on reload. Readers
// keep whichever snapshot they fetched for the rest of their request.
type Store struct {
	fsys    fs.FS
	current atomic.Pointer[Catalog]
}

// NewStore loads fsys once and returns a Store serving it.
func NewStore(fsys fs.FS) (*Store, error) {
	if fsys == nil {
		return nil, errors.New("content filesystem is required")
	}
	store := &Store{fsys: fsys}
	if err := store.Reload(); err != nil {
		return nil, err
	}
	return store, nil
}

// StaticStore wraps an already loaded Catalog. Reload keeps it unchanged.
func StaticStore(catalog *Catalog) *Store {
	store := &Store{}
	store.current.Store(catalog)
	return store
}

// Catalog returns the current snapshot.
func (s *Store) Catalog() *Catalog {
	return s.current.Load()
}

// Reload re-reads the content filesystem. On failure the previous snapshot
// stays in place.
func (s *Store) Reload() error {
	if s.fsys == nil {
		return nil
	}
	catalog, err := Load(s.fsys)
	if err != nil {
		return fmt.Errorf("reload content: %w", err)
	}
	s.current.Store(catalog)
	return nil
}
