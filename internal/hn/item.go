// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package hn

import (
	"encoding/json"

	"github.com/tidwall/gjson"
)

// Item is the raw payload of a single HN item, exactly as fetched or as
// read back from the cache. Fields are queried lazily so that fields we
// don't know about survive a cache round-trip untouched.
type Item json.RawMessage

// Time returns the item's unix creation timestamp, if present.
func (it Item) Time() (int64, bool) {
	r := gjson.GetBytes(it, "time")
	if !r.Exists() {
		return 0, false
	}
	return r.Int(), true
}

// Deleted reports whether the item carries the deleted flag.
func (it Item) Deleted() bool {
	return gjson.GetBytes(it, "deleted").Bool()
}

// Title returns the item's title, if present.
func (it Item) Title() (string, bool) {
	r := gjson.GetBytes(it, "title")
	return r.String(), r.Exists()
}

// URL returns the story URL, if present.
func (it Item) URL() (string, bool) {
	r := gjson.GetBytes(it, "url")
	return r.String(), r.Exists()
}

// Text returns the item's HTML body, if present.
func (it Item) Text() (string, bool) {
	r := gjson.GetBytes(it, "text")
	return r.String(), r.Exists()
}

// Raw returns the payload bytes.
func (it Item) Raw() json.RawMessage {
	return json.RawMessage(it)
}
