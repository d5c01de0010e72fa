// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/hackerlates/internal/cache"
	"github.com/staranto/hackerlates/internal/config"
	"github.com/staranto/hackerlates/internal/dump"
	"github.com/staranto/hackerlates/internal/hn"
)

// DumpAction is the root (and only) action: dump one user's submission
// history to stdout.
func DumpAction(ctx context.Context, cmd *cli.Command) (err error) {
	if cmd.Bool("debug") {
		log.SetLevel(log.DebugLevel)
	}

	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args)

	if cmd.Args().Len() != 1 {
		return errors.New("usage: hackerlates USER")
	}
	user := cmd.Args().First()

	dir := cmd.String("cache-dir")
	if dir == "" {
		if dir, err = cache.Dir(); err != nil {
			return err
		}
	}

	store, err := cache.Open(dir)
	if err != nil {
		return err
	}
	// The flush-and-unlock runs on every exit path; a flush error only
	// surfaces when the run itself succeeded.
	defer func() {
		if cerr := store.Close(); err == nil {
			err = cerr
		}
	}()

	timeoutSec, _ := config.GetInt("timeout", 30)

	client := hn.NewClient(hn.Config{
		BaseURL:   cmd.String("base-url"),
		UserAgent: cmd.String("user-agent"),
		Timeout:   time.Duration(timeoutSec) * time.Second,
	})

	pipe := &dump.Pipeline{
		Client: client,
		Store:  store,
		Policy: cache.NewPolicy(time.Now()),
		Out:    os.Stdout,
		Limit:  int(cmd.Int("limit")),
	}

	return pipe.Run(ctx, user)
}
