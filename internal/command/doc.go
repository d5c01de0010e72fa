// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package command builds the CLI surface. The documented surface is
// exactly `hackerlates USER`; the remaining flags are functional but
// hidden from help output.
package command
