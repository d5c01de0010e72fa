// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package hn

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/apex/log"
	"github.com/tidwall/gjson"
)

const (
	// DefaultBaseURL is the v0 Firebase endpoint of the HN API.
	DefaultBaseURL = "https://hacker-news.firebaseio.com/v0/"

	// DefaultUserAgent identifies the tool on every request.
	DefaultUserAgent = "hackerlates (+https://github.com/staranto/hackerlates)"

	defaultTimeout = 30 * time.Second
)

// Config carries the knobs a Client needs. Zero values fall back to the
// package defaults, so Config{} is usable as-is.
type Config struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

// Client fetches JSON documents from the HN API. One GET per path, no
// retries, no pagination.
type Client struct {
	baseURL   string
	userAgent string
	httpc     *http.Client
}

func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Client{
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		httpc:     &http.Client{Timeout: cfg.Timeout},
	}
}

// Fetch GETs path relative to the base URL and returns the response
// body as validated raw JSON. The bytes are exactly what the API sent,
// modulo surrounding whitespace.
func (c *Client) Fetch(ctx context.Context, path string) (json.RawMessage, error) {
	url := c.baseURL + path
	log.Debugf("GET %s", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: unexpected status %s", url, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	body = bytes.TrimSpace(body)
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("GET %s: malformed JSON response", url)
	}

	return body, nil
}

// SubmittedIDs fetches the user's submission ID list. This is always a
// live call; the list itself is never cached.
func (c *Client) SubmittedIDs(ctx context.Context, user string) ([]int64, error) {
	raw, err := c.Fetch(ctx, UserPath(user))
	if err != nil {
		return nil, err
	}

	doc := gjson.ParseBytes(raw)
	if doc.Type == gjson.Null {
		return nil, fmt.Errorf("no such user: %s", user)
	}

	submitted := doc.Get("submitted").Array()
	ids := make([]int64, 0, len(submitted))
	for _, r := range submitted {
		ids = append(ids, r.Int())
	}

	log.Debugf("user %s has %d submissions", user, len(ids))
	return ids, nil
}

// UserPath returns the fetch path for a user document.
func UserPath(user string) string {
	return "user/" + user + ".json"
}

// ItemPath returns the fetch path for an item. It doubles as the item's
// cache key.
func ItemPath(id int64) string {
	return fmt.Sprintf("item/%d.json", id)
}

// Permalink returns the news.ycombinator.com URL for an item.
func Permalink(id int64) string {
	return fmt.Sprintf("https://news.ycombinator.com/item?id=%d", id)
}
