// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package meta

import (
	"github.com/staranto/hackerlates/internal/config"
)

// Meta are the meta-options that are available to the command action.
type Meta struct {
	Args   []string
	Config config.Type
}
