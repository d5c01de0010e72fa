// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package hn talks to the public Hacker News item-tree API. It fetches
// raw JSON documents relative to a base URL and exposes typed access to
// the handful of item fields the dump needs, without ever re-encoding
// the payload.
package hn
