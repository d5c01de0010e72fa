// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yamlsrc "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/staranto/hackerlates/internal/config"
	"github.com/staranto/hackerlates/internal/hn"
)

func init() {
	cfg, _ = config.Load()
}

var cfg config.Type

// All flags below are functional but hidden: the supported surface is
// just `hackerlates USER`.

func newDebugFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:        "debug",
		Aliases:     []string{"d"},
		Usage:       "log requests and cache decisions",
		Hidden:      true,
		HideDefault: true,
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("HACKERLATES_DEBUG"),
		),
	}
}

func newLimitFlag() *cli.IntFlag {
	return &cli.IntFlag{
		Name:    "limit",
		Aliases: []string{"n"},
		Usage:   "cap the number of rendered items",
		Hidden:  true,
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("HACKERLATES_LIMIT"),
			yamlsrc.YAML("limit", altsrc.StringSourcer(cfg.Source)),
		),
	}
}

func newBaseURLFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:   "base-url",
		Usage:  "base API URL",
		Hidden: true,
		Value:  hn.DefaultBaseURL,
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("HACKERLATES_BASE_URL"),
			yamlsrc.YAML("base_url", altsrc.StringSourcer(cfg.Source)),
		),
	}
}

func newUserAgentFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:   "user-agent",
		Usage:  "User-Agent header sent with every request",
		Hidden: true,
		Value:  hn.DefaultUserAgent,
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("HACKERLATES_USER_AGENT"),
			yamlsrc.YAML("user_agent", altsrc.StringSourcer(cfg.Source)),
		),
	}
}

// newCacheDirFlag overrides the cache directory. An empty value defers
// to cache.Dir, which also honors HACKERLATES_CACHE_DIR.
func newCacheDirFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:   "cache-dir",
		Usage:  "cache directory override",
		Hidden: true,
		Sources: cli.NewValueSourceChain(
			yamlsrc.YAML("cache_dir", altsrc.StringSourcer(cfg.Source)),
		),
	}
}
