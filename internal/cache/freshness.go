// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package cache

import (
	"time"

	"github.com/staranto/hackerlates/internal/hn"
)

// MinCacheAge is how old an item must be before it is stored
// permanently. HN items can be edited or deleted shortly after posting;
// caching earlier would pin a stale render forever.
const MinCacheAge = 2 * time.Hour

// Policy decides whether a freshly fetched item may be cached. Now is
// captured once at the start of a run so every item is judged against
// the same instant.
type Policy struct {
	Now    time.Time
	MinAge time.Duration
}

// NewPolicy returns the standard policy anchored at now.
func NewPolicy(now time.Time) Policy {
	return Policy{Now: now, MinAge: MinCacheAge}
}

// Cacheable reports whether the item is old enough to persist. Items
// without a time field never qualify.
func (p Policy) Cacheable(it hn.Item) bool {
	ts, ok := it.Time()
	if !ok {
		return false
	}
	return p.Now.Sub(time.Unix(ts, 0)) > p.MinAge
}
