// Package cache persists slow collector readouts between runs.
package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// ErrInvalidKey is returned for keys that would escape the cache directory.
var ErrInvalidKey = errors.New("invalid cache key")

// Store is a JSON file cache with per-lookup TTL and an in-process layer
// in front of it. Files are stored flat:
//
//	~/.cache/dracfetch/
//	  host.json
//	  os.json
//	  cpu.json
//	  gpu.json
//	  packages.json
//
// A Store is safe for concurrent use by the collectors.
type Store struct {
	dir    string
	logger *slog.Logger

	// bypass skips reads; writes still refresh the files.
	bypass bool

	mu  sync.Mutex
	mem map[string]json.RawMessage
}

// Meta holds cache metadata including last update times and file sizes.
type Meta struct {
	LastUpdate map[string]time.Time `json:"last_update"`
	Sizes      map[string]int64     `json:"sizes"`
}

// Option configures a Store.
type Option func(*Store)

// WithBypass makes every lookup a miss. Fetched values are still written
// so the next normal run sees them.
func WithBypass(bypass bool) Option {
	return func(s *Store) { s.bypass = bypass }
}

// NewStore creates a cache store at the given directory.
// The directory is created with 0700 permissions if it does not exist.
func NewStore(dir string, logger *slog.Logger, opts ...Option) (*Store, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("cache: create directory %s: %w", dir, err)
	}
	s := &Store{dir: dir, logger: logger, mem: make(map[string]json.RawMessage)}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Dir returns the directory the store writes to.
func (s *Store) Dir() string {
	return s.dir
}

// keyPath returns the filesystem path for a cache key.
func (s *Store) keyPath(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || strings.HasPrefix(key, ".") {
		return "", fmt.Errorf("cache: %q: %w", key, ErrInvalidKey)
	}
	return filepath.Join(s.dir, key+".json"), nil
}

// Get reads a cached value. Returns the data and whether it is fresh (within TTL).
// A ttl of zero or less never expires.
// If the file does not exist, returns nil, false, nil.
// If the file exists but is stale (past TTL), returns data, false, nil.
// Corrupted or unreadable JSON files are removed and treated as a miss.
func (s *Store) Get(key string, ttl time.Duration) (json.RawMessage, bool, error) {
	path, err := s.keyPath(key)
	if err != nil {
		return nil, false, err
	}
	if s.bypass {
		return nil, false, nil
	}

	s.mu.Lock()
	if raw, ok := s.mem[key]; ok {
		s.mu.Unlock()
		return raw, true, nil
	}
	s.mu.Unlock()

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("cache: stat %s: %w", key, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false, fmt.Errorf("cache: read %s: %w", key, err)
	}

	// Validate that the file contains valid JSON. If not, remove the
	// corrupted file and treat it as a cache miss.
	if !json.Valid(data) {
		s.logger.Warn("cache: removing corrupted entry", slog.String("key", key))
		_ = os.Remove(path)
		return nil, false, nil
	}

	fresh := ttl <= 0 || time.Since(info.ModTime()) < ttl
	if fresh {
		s.remember(key, data)
	}
	return json.RawMessage(data), fresh, nil
}

// Set writes a value to the cache with an atomic write (write to temp file,
// then rename). This prevents corrupted reads from concurrent access.
func (s *Store) Set(key string, data any) error {
	path, err := s.keyPath(key)
	if err != nil {
		return err
	}

	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("cache: marshal %s: %w", key, err)
	}

	tmp, err := os.CreateTemp(s.dir, ".tmp-"+key+"-*.json")
	if err != nil {
		return fmt.Errorf("cache: create temp for %s: %w", key, err)
	}
	tmpName := tmp.Name()

	// Clean up the temp file on any failure path.
	success := false
	defer func() {
		if !success {
			_ = os.Remove(tmpName)
		}
	}()

	if err := os.Chmod(tmpName, 0o600); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("cache: chmod temp for %s: %w", key, err)
	}

	if _, err := tmp.Write(encoded); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("cache: write temp for %s: %w", key, err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cache: close temp for %s: %w", key, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("cache: rename temp for %s: %w", key, err)
	}

	success = true
	s.remember(key, encoded)
	return nil
}

func (s *Store) remember(key string, raw []byte) {
	s.mu.Lock()
	s.mem[key] = json.RawMessage(raw)
	s.mu.Unlock()
}

// GetTyped reads and unmarshals a cached value into the type parameter T.
// Returns nil if the key does not exist. The fresh boolean indicates TTL status.
func GetTyped[T any](s *Store, key string, ttl time.Duration) (*T, bool, error) {
	raw, fresh, err := s.Get(key, ttl)
	if err != nil {
		return nil, false, err
	}
	if raw == nil {
		return nil, false, nil
	}

	var result T
	if err := json.Unmarshal(raw, &result); err != nil {
		s.logger.Warn("cache: removing entry with unmarshal error",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		s.Invalidate(key)
		return nil, false, nil
	}

	return &result, fresh, nil
}

// SetTyped marshals and caches a value of type T.
func SetTyped[T any](s *Store, key string, data *T) error {
	return s.Set(key, data)
}

// GetOrSet returns the fresh cached value for key, or calls fetch and
// caches its result. hit reports whether the value came from the cache.
// Fetch errors are returned and nothing is cached. A failed cache write is
// logged and the fetched value still returned.
func GetOrSet[T any](s *Store, key string, ttl time.Duration, fetch func() (T, error)) (v T, hit bool, err error) {
	cached, fresh, err := GetTyped[T](s, key, ttl)
	if err != nil {
		s.logger.Debug("cache: read failed", slog.String("key", key), slog.String("error", err.Error()))
	}
	if cached != nil && fresh {
		s.logger.Debug("cache: hit", slog.String("key", key))
		return *cached, true, nil
	}

	v, err = fetch()
	if err != nil {
		var zero T
		return zero, false, err
	}
	if err := SetTyped(s, key, &v); err != nil {
		s.logger.Warn("cache: write failed", slog.String("key", key), slog.String("error", err.Error()))
	}
	return v, false, nil
}

// Invalidate removes one entry from memory and disk.
func (s *Store) Invalidate(key string) {
	s.mu.Lock()
	delete(s.mem, key)
	s.mu.Unlock()

	if path, err := s.keyPath(key); err == nil {
		_ = os.Remove(path)
	}
}

// Age returns how old a cache entry is based on file modification time.
// Returns 0 if the entry does not exist.
func (s *Store) Age(key string) time.Duration {
	path, err := s.keyPath(key)
	if err != nil {
		return 0
	}
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return time.Since(info.ModTime())
}

// Keys returns all cached keys (filenames without the .json extension).
func (s *Store) Keys() []string {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil
	}

	var keys []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".tmp-") {
			continue
		}
		if strings.HasSuffix(name, ".json") {
			keys = append(keys, strings.TrimSuffix(name, ".json"))
		}
	}
	return keys
}

// Clear removes all cache files from the store directory and returns how
// many were removed.
func (s *Store) Clear() (int, error) {
	s.mu.Lock()
	clear(s.mem)
	s.mu.Unlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("cache: clear read dir: %w", err)
	}

	removed := 0
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		path := filepath.Join(s.dir, e.Name())
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return removed, fmt.Errorf("cache: clear remove %s: %w", e.Name(), err)
		}
		removed++
		s.logger.Debug("cache: removed", slog.String("file", e.Name()))
	}
	return removed, nil
}

// Meta returns cache metadata including last update times and file sizes
// for every cached key.
func (s *Store) Meta() (*Meta, error) {
	m := &Meta{
		LastUpdate: make(map[string]time.Time),
		Sizes:      make(map[string]int64),
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return m, nil
		}
		return nil, fmt.Errorf("cache: meta read dir: %w", err)
	}

	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".tmp-") || !strings.HasSuffix(name, ".json") {
			continue
		}

		key := strings.TrimSuffix(name, ".json")
		info, err := e.Info()
		if err != nil {
			continue
		}

		m.LastUpdate[key] = info.ModTime()
		m.Sizes[key] = info.Size()
	}

	return m, nil
}
