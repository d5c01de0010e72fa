// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package render turns raw HN items into the fixed plain-text block
// format hackerlates prints: permalink, timestamp, deleted marker,
// title, story URL, quoted body, blank line. There are no formatting
// options; pipes and pagers are the intended consumers.
package render
