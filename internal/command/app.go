// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/staranto/hackerlates/internal/meta"
)

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	m := meta.Meta{
		Args:   args,
		Config: cfg,
	}

	app := &cli.Command{
		Name:      "hackerlates",
		Usage:     "dump a Hacker News user's submissions as plain text",
		ArgsUsage: "USER",
		Metadata: map[string]any{
			"meta": m,
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "hackerlates version info",
				HideDefault: true,
			},
			newDebugFlag(),
			newLimitFlag(),
			newBaseURLFlag(),
			newUserAgentFlag(),
			newCacheDirFlag(),
		},
		Action: DumpAction,
	}

	return app, nil
}

// GetMeta returns the meta.Meta stored in the command's Metadata. If
// missing or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}
