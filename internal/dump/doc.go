// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package dump orchestrates one run: fetch the user's submission IDs
// live, consult the cache per item with a live fetch on miss, gate
// write-backs through the freshness policy, and render each item in API
// order. Strictly sequential; every call blocks the pipeline.
package dump
