// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_MissingFile(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(dir)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
	require.NoError(t, s.Close())

	// Close writes the (empty) document.
	info, err := os.Stat(filepath.Join(dir, FileName))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestOpen_CreatesDirOwnerOnly(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "deep", "hackerlates")

	s, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, os.FileMode(0o700), info.Mode().Perm())
}

func TestLoad_SchemaMismatchResets(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"wrong version", `{"__version__": 99, "item/1.json": {"title": "x"}}`},
		{"missing version", `{"item/1.json": {"title": "x"}}`},
		{"non-integer version", `{"__version__": "banana", "item/1.json": {"title": "x"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(tt.doc), 0o600))

			s, err := Open(dir)
			require.NoError(t, err)
			assert.Equal(t, 0, s.Len())

			_, ok := s.Get("item/1.json")
			assert.False(t, ok)

			require.NoError(t, s.Close())

			// The reset only hits the disk at Close time; after that the
			// stale entries are gone for good.
			s2, err := Open(dir)
			require.NoError(t, err)
			assert.Equal(t, 0, s2.Len())
			require.NoError(t, s2.Close())
		})
	}
}

func TestLoad_CorruptIsFatal(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("not json"), 0o600))

	_, err := Open(dir)
	require.Error(t, err)

	// The failed Open must not leak the lock.
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(`{"__version__": 0}`), 0o600))
	s, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, s.Close())
}

func TestStore_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	payload := `{"id":101,"time":1700000000,"title":"A","url":"http://x"}`

	s, err := Open(dir)
	require.NoError(t, err)
	s.Set("item/101.json", json.RawMessage(payload))
	require.NoError(t, s.Close())

	s2, err := Open(dir)
	require.NoError(t, err)
	got, ok := s2.Get("item/101.json")
	require.True(t, ok)
	assert.Equal(t, payload, string(got))
	require.NoError(t, s2.Close())

	// Flushing an unmodified store is idempotent.
	s3, err := Open(dir)
	require.NoError(t, err)
	got, ok = s3.Get("item/101.json")
	require.True(t, ok)
	assert.Equal(t, payload, string(got))
	assert.Equal(t, 1, s3.Len())
	require.NoError(t, s3.Close())
}

func TestStore_FlushKeepsPayloadBytes(t *testing.T) {
	dir := t.TempDir()

	// Typical HN comment body, plus a payload with interior whitespace.
	// Neither may be escaped or re-compacted on the way to disk.
	markup := `{"id":7,"time":1700000000,"text":"<i>hi &amp; bye</i>"}`
	spaced := `{"id": 8,  "title": "spaced"}`

	s, err := Open(dir)
	require.NoError(t, err)
	s.Set("item/7.json", json.RawMessage(markup))
	s.Set("item/8.json", json.RawMessage(spaced))
	require.NoError(t, s.Close())

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), `<i>hi &amp; bye</i>`)
	assert.Contains(t, string(data), spaced)
	assert.NotContains(t, string(data), `\u003c`)
	assert.NotContains(t, string(data), `\u0026`)

	s2, err := Open(dir)
	require.NoError(t, err)
	got, ok := s2.Get("item/7.json")
	require.True(t, ok)
	assert.Equal(t, markup, string(got))
	got, ok = s2.Get("item/8.json")
	require.True(t, ok)
	assert.Equal(t, spaced, string(got))
	require.NoError(t, s2.Close())
}

func TestStore_SequentialRunsKeepEntries(t *testing.T) {
	dir := t.TempDir()

	s1, err := Open(dir)
	require.NoError(t, err)
	s1.Set("item/1.json", json.RawMessage(`{"id":1}`))
	require.NoError(t, s1.Close())

	s2, err := Open(dir)
	require.NoError(t, err)
	_, ok := s2.Get("item/1.json")
	assert.True(t, ok, "second run must see the first run's entries")
	s2.Set("item/2.json", json.RawMessage(`{"id":2}`))
	require.NoError(t, s2.Close())

	s3, err := Open(dir)
	require.NoError(t, err)
	assert.Equal(t, 2, s3.Len())
	require.NoError(t, s3.Close())
}

func TestStore_SetOverwrites(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(dir)
	require.NoError(t, err)
	defer s.Close() //nolint:errcheck

	s.Set("item/1.json", json.RawMessage(`{"v":1}`))
	s.Set("item/1.json", json.RawMessage(`{"v":2}`))

	got, ok := s.Get("item/1.json")
	require.True(t, ok)
	assert.Equal(t, `{"v":2}`, string(got))
	assert.Equal(t, 1, s.Len())
}

func TestStore_CloseTwice(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Close())
	assert.Error(t, s.Close())
}

func TestStore_VersionTagWritten(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	require.NoError(t, err)

	var doc map[string]int
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, SchemaVersion, doc["__version__"])
}
