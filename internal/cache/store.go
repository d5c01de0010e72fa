// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package cache

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/apex/log"
)

const (
	// SchemaVersion is the single supported on-disk schema. Documents
	// tagged with anything else are discarded wholesale.
	SchemaVersion = 0

	// FileName is the canonical cache file inside the cache directory.
	FileName = "cache.json"

	versionKey = "__version__"
)

// Dir resolves the cache directory.
// Precedence:
//  1. HACKERLATES_CACHE_DIR, if set and non-empty
//  2. os.UserCacheDir()/hackerlates
func Dir() (string, error) {
	if d := os.Getenv("HACKERLATES_CACHE_DIR"); d != "" {
		return d, nil
	}
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user cache dir: %w", err)
	}
	return filepath.Join(base, "hackerlates"), nil
}

// Store is the in-memory view of the cache document for one run. It is
// created locked via Open, mutated in memory, and written back exactly
// once by Close.
type Store struct {
	dir     string
	lock    *DirLock
	entries map[string]json.RawMessage
	closed  bool
}

// Open creates the cache directory (owner-only, ancestors included) if
// needed, takes the directory lock, and loads the current document.
// A concurrent mkdir by another process is success, not an error.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	lock := NewDirLock(dir)
	if err := lock.Lock(); err != nil {
		return nil, fmt.Errorf("failed to lock cache directory: %w", err)
	}

	s := &Store{dir: dir, lock: lock}
	if err := s.load(); err != nil {
		_ = lock.Unlock()
		return nil, err
	}

	return s, nil
}

// load reads the on-disk document. A missing file and a schema-version
// mismatch both yield an empty document; anything unreadable is fatal.
func (s *Store) load() error {
	path := s.Path()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			s.entries = make(map[string]json.RawMessage)
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}

	if !versionMatches(doc[versionKey]) {
		log.Debugf("cache schema mismatch in %s, starting over", path)
		s.entries = make(map[string]json.RawMessage)
		return nil
	}

	delete(doc, versionKey)
	s.entries = doc
	log.Debugf("loaded %d cached items from %s", len(s.entries), path)
	return nil
}

// versionMatches is the explicit tagged check: only an integer equal to
// SchemaVersion passes. A missing tag or a tag of the wrong shape is a
// mismatch, never an error.
func versionMatches(raw json.RawMessage) bool {
	if raw == nil {
		return false
	}
	var v int
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}
	return v == SchemaVersion
}

// Path returns the canonical cache file path.
func (s *Store) Path() string {
	return filepath.Join(s.dir, FileName)
}

// Get returns the cached payload for key. It never touches the network
// or the disk.
func (s *Store) Get(key string) (json.RawMessage, bool) {
	v, ok := s.entries[key]
	return v, ok
}

// Set inserts or overwrites the in-memory entry for key. The disk is
// only written on Close.
func (s *Store) Set(key string, val json.RawMessage) {
	s.entries[key] = val
}

// Len returns the number of cached entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// Close serializes the document to a temp file in the cache directory,
// renames it over the canonical path, and releases the lock. The lock
// is released even when the flush fails. Closing twice is a usage
// error.
func (s *Store) Close() error {
	if s.closed {
		return errors.New("cache store already closed")
	}
	s.closed = true

	defer func() {
		_ = s.lock.Unlock()
	}()

	return s.flush()
}

// encode assembles the document by hand. json.Marshal would HTML-escape
// and re-compact the stored payloads, and they must go back to disk
// byte-identical to what the API sent.
func (s *Store) encode() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	buf.WriteString(`"` + versionKey + `":` + strconv.Itoa(SchemaVersion))
	for k, v := range s.entries {
		key, err := json.Marshal(k)
		if err != nil {
			return nil, fmt.Errorf("failed to encode cache key %q: %w", k, err)
		}
		buf.WriteByte(',')
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (s *Store) flush() error {
	data, err := s.encode()
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, FileName+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp cache file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write cache: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write cache: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.Path()); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace cache file: %w", err)
	}

	log.Debugf("flushed %d cached items to %s", len(s.entries), s.Path())
	return nil
}
