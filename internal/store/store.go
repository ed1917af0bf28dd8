// Package store implements the Store catalog: a process-wide mapping
// from keyspace name to open Keyspace, backed by a directory of
// subdirectories on disk.
package store

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/dumpstors-labs/keepstore/internal/engine"
	"github.com/dumpstors-labs/keepstore/internal/keyspace"
	"github.com/dumpstors-labs/keepstore/internal/storeerr"
)

// Store is the catalog of open keyspaces rooted at Path. The mapping
// is protected by a single exclusive lock: every operation acquires it
// for the minimum critical section needed to resolve or mutate the
// mapping, then (for engine-only work) releases it before touching
// disk.
type Store struct {
	Path string

	opener engine.Opener

	mu        sync.Mutex
	keyspaces map[string]*keyspace.Keyspace
}

// Open discovers path (creating it if absent), opens every
// subdirectory as a keyspace, and returns the populated Store.
// Directories that fail to open are logged and excluded — never
// fatal.
func Open(path string, opener engine.Opener) (*Store, error) {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, storeerr.Wrap(err, "create store root %q", path)
	}

	s := &Store{Path: path, opener: opener, keyspaces: make(map[string]*keyspace.Keyspace)}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, storeerr.Wrap(err, "read store root %q", path)
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		ks, err := keyspace.Open(opener, filepath.Join(path, name), name)
		if err != nil {
			log.Printf("store: skipping keyspace %q: %v", name, err)
			continue
		}
		s.keyspaces[name] = ks
	}
	return s, nil
}

// validateName rejects names that would be unsafe as a directory
// component: empty, "." or "..", path separators, or a NUL byte.
func validateName(name string) error {
	if name == "" {
		return storeerr.Newf(storeerr.KindInvalidArgument, "keyspace name must not be empty")
	}
	if name == "." || name == ".." {
		return storeerr.Newf(storeerr.KindInvalidArgument, "keyspace name %q is reserved", name)
	}
	if strings.ContainsAny(name, "/\\") || strings.ContainsRune(name, 0) {
		return storeerr.Newf(storeerr.KindInvalidArgument, "keyspace name %q contains forbidden characters", name)
	}
	return nil
}

// CreateKeyspace opens a new keyspace named name. Fails with
// KeyspaceAlreadyExists if name is already present; on engine-open
// error, no entry is inserted.
func (s *Store) CreateKeyspace(_ context.Context, name string) (*keyspace.Keyspace, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.keyspaces[name]; ok {
		return nil, storeerr.Newf(storeerr.KindKeyspaceAlreadyExists, "keyspace %q already exists", name)
	}

	ks, err := keyspace.Open(s.opener, filepath.Join(s.Path, name), name)
	if err != nil {
		return nil, err
	}
	s.keyspaces[name] = ks
	return ks, nil
}

// GetKeyspace returns a shareable reference to the named keyspace, or
// KeyspaceNotFound. The returned *keyspace.Keyspace remains valid
// after the Store lock is released, so callers (notably the
// streaming multi-get) may retain it beyond their critical section.
func (s *Store) GetKeyspace(_ context.Context, name string) (*keyspace.Keyspace, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ks, ok := s.keyspaces[name]
	if !ok {
		return nil, storeerr.Newf(storeerr.KindKeyspaceNotFound, "keyspace %q not found", name)
	}
	return ks, nil
}

// DeleteKeyspace removes the mapping entry then recursively removes
// its on-disk directory. If directory removal fails after the mapping
// entry is gone, the catalog and the filesystem disagree; there is no
// automatic remediation, only a logged warning.
func (s *Store) DeleteKeyspace(_ context.Context, name string) error {
	s.mu.Lock()
	if _, ok := s.keyspaces[name]; !ok {
		s.mu.Unlock()
		return storeerr.Newf(storeerr.KindKeyspaceNotFound, "keyspace %q not found", name)
	}
	delete(s.keyspaces, name)
	s.mu.Unlock()

	// Dropping the map entry releases the Store's share of the engine
	// handle; any in-flight operation that already resolved the
	// keyspace reference before this delete ran keeps it alive until
	// that operation completes, and may observe the just-removed
	// records, which is accepted behavior. The keyspace is not closed
	// here: doing so would force-close the engine out from under that
	// in-flight holder. The engine is reclaimed once its last
	// reference drops, via the finalizer PebbleEngine registers on
	// open.
	if err := os.RemoveAll(filepath.Join(s.Path, name)); err != nil {
		log.Printf("store: keyspace %q removed from catalog but directory removal failed: %v", name, err)
		return storeerr.Wrap(err, "remove directory for keyspace %q", name)
	}
	return nil
}

// TruncateKeyspace resolves the named keyspace and clears its
// records, preserving the entry and directory (invariant 5).
func (s *Store) TruncateKeyspace(ctx context.Context, name string) error {
	ks, err := s.GetKeyspace(ctx, name)
	if err != nil {
		return err
	}
	return ks.Truncate(ctx)
}

// ListKeyspaces returns a snapshot of current names sorted
// lexicographically ascending, for deterministic client output.
func (s *Store) ListKeyspaces(context.Context) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, 0, len(s.keyspaces))
	for name := range s.keyspaces {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Close closes every open keyspace's engine. Used by the server
// bootstrap during graceful shutdown.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var firstErr error
	for name, ks := range s.keyspaces {
		if err := ks.Close(); err != nil && firstErr == nil {
			firstErr = storeerr.Wrap(err, "close keyspace %q", name)
		}
	}
	return firstErr
}
