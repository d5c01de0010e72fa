// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package cache owns the single JSON document hackerlates persists
// between runs.
//
// The document lives at <cache-root>/hackerlates/cache.json and maps
// fetch paths (item/<id>.json) to the raw item payloads the API
// returned. A __version__ tag guards the schema: any document whose tag
// doesn't match the current version is discarded in memory and replaced
// with an empty one, so stale or future schemas are never partially
// trusted.
//
// Access is exclusive for the whole run. Open acquires an advisory
// flock on the cache directory itself and Close rewrites the document
// through a temp-file rename, so a concurrent reader never observes a
// half-written file and at most one process mutates the cache at a
// time. Close releases the lock even when the flush fails.
package cache
