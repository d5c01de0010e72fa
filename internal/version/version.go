// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package version holds the build version stamped in by the release
// pipeline.
package version

// Version is overridden at build time via -ldflags.
var Version = "dev"
