// Package cache implements the fingerprint-keyed artifact cache.
package cache

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/tscheck/tscheck/internal/core/domain"
	"github.com/tscheck/tscheck/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ArtifactCache = (*Store)(nil)

// Store implements ports.ArtifactCache using a flat JSON index file inside
// the cache directory. The directory is safe to delete entirely at any time;
// the next invocation regenerates on demand.
type Store struct {
	dir       string
	indexPath string

	mu      sync.RWMutex
	entries map[string]domain.CacheEntry
	loaded  bool
}

// NewStore creates a Store rooted at the given cache directory.
// Nothing is read or created until first use.
func NewStore(dir string) *Store {
	clean := filepath.Clean(dir)
	return &Store{
		dir:       clean,
		indexPath: filepath.Join(clean, domain.CacheIndexFileName),
		entries:   make(map[string]domain.CacheEntry),
	}
}

// Dir returns the cache directory artifacts should be written into.
func (s *Store) Dir() string {
	return s.dir
}

// Get retrieves the entry for a fingerprint. A hit whose artifact has
// vanished from disk is treated as a miss and dropped from the index,
// so a stale entry can never scope a compiler run.
func (s *Store) Get(fingerprint string) (*domain.CacheEntry, error) {
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	entry, ok := s.entries[fingerprint]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}

	if _, err := os.Stat(entry.ArtifactPath); err != nil {
		s.mu.Lock()
		delete(s.entries, fingerprint)
		s.mu.Unlock()
		return nil, nil
	}
	return &entry, nil
}

// Put stores an entry and persists the index.
func (s *Store) Put(entry domain.CacheEntry) error {
	if err := s.ensureLoaded(); err != nil {
		return err
	}

	s.mu.Lock()
	s.entries[entry.Fingerprint] = entry
	s.mu.Unlock()

	return s.save()
}

// Clean removes the entire cache directory.
func (s *Store) Clean() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.RemoveAll(s.dir); err != nil {
		return zerr.With(zerr.With(domain.ErrCacheWrite, "cause", err.Error()), "dir", s.dir)
	}
	s.entries = make(map[string]domain.CacheEntry)
	s.loaded = true
	return nil
}

func (s *Store) ensureLoaded() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return nil
	}

	//nolint:gosec // index path is derived from the cache dir
	data, err := os.ReadFile(s.indexPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.loaded = true
			return nil
		}
		return zerr.With(zerr.With(domain.ErrCacheRead, "cause", err.Error()), "path", s.indexPath)
	}

	if len(data) > 0 {
		if err := json.Unmarshal(data, &s.entries); err != nil {
			// A corrupt index is discarded, not fatal: entries are only an
			// optimization over regenerating artifacts.
			s.entries = make(map[string]domain.CacheEntry)
		}
	}
	s.loaded = true
	return nil
}

// save writes the index atomically: temp name in the same directory, then
// rename, so concurrent readers never observe a truncated file.
func (s *Store) save() error {
	s.mu.RLock()
	data, err := json.MarshalIndent(s.entries, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		return zerr.With(domain.ErrCacheWrite, "cause", err.Error())
	}

	if err := os.MkdirAll(s.dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.With(domain.ErrCacheWrite, "cause", err.Error()), "dir", s.dir)
	}

	tmp, err := os.CreateTemp(s.dir, ".index-*")
	if err != nil {
		return zerr.With(domain.ErrCacheWrite, "cause", err.Error())
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return zerr.With(domain.ErrCacheWrite, "cause", err.Error())
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return zerr.With(domain.ErrCacheWrite, "cause", err.Error())
	}

	if err := os.Rename(tmp.Name(), s.indexPath); err != nil {
		_ = os.Remove(tmp.Name())
		return zerr.With(zerr.With(domain.ErrCacheWrite, "cause", err.Error()), "path", s.indexPath)
	}
	return nil
}
