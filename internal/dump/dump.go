// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package dump

import (
	"context"
	"io"
	"time"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"

	"github.com/staranto/hackerlates/internal/cache"
	"github.com/staranto/hackerlates/internal/hn"
	"github.com/staranto/hackerlates/internal/render"
)

// Pipeline wires the fetcher, the cache store and the freshness policy
// for one run. The caller owns the store's lifecycle; the pipeline only
// reads and sets entries.
type Pipeline struct {
	Client *hn.Client
	Store  *cache.Store
	Policy cache.Policy
	Out    io.Writer

	// Limit caps the number of rendered items. Non-positive means
	// unlimited.
	Limit int
}

// Run dumps the user's submissions in the order the API returns them.
// No reordering, no dedup.
func (p *Pipeline) Run(ctx context.Context, user string) error {
	ids, err := p.Client.SubmittedIDs(ctx, user)
	if err != nil {
		return err
	}

	rendered := 0
	for _, id := range ids {
		if p.Limit > 0 && rendered >= p.Limit {
			break
		}

		key := hn.ItemPath(id)

		raw, ok := p.Store.Get(key)
		if ok {
			log.Debugf("cache hit: %s", key)
		} else {
			raw, err = p.Client.Fetch(ctx, key)
			if err != nil {
				return err
			}

			it := hn.Item(raw)
			if p.Policy.Cacheable(it) {
				log.Debugf("caching %s (posted %s)", key, p.age(it))
				p.Store.Set(key, it.Raw())
			} else {
				log.Debugf("not caching %s (posted %s)", key, p.age(it))
			}
		}

		if err := render.Block(p.Out, id, hn.Item(raw)); err != nil {
			return err
		}
		rendered++
	}

	return nil
}

func (p *Pipeline) age(it hn.Item) string {
	ts, ok := it.Time()
	if !ok {
		return "unknown time"
	}
	return humanize.RelTime(time.Unix(ts, 0), p.Policy.Now, "ago", "from now")
}
