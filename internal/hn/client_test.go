// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package hn

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "hackerlates-test", r.Header.Get("User-Agent"))

		switch r.URL.Path {
		case "/user/alice.json":
			fmt.Fprint(w, `{"id":"alice","submitted":[3,2,1]}`)
		case "/user/ghost.json":
			fmt.Fprint(w, `null`)
		case "/item/1.json":
			fmt.Fprint(w, `{"id":1,"time":123,"title":"hello"}`)
		case "/bad.json":
			fmt.Fprint(w, `{oops`)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient(srv *httptest.Server) *Client {
	return NewClient(Config{
		BaseURL:   srv.URL + "/",
		UserAgent: "hackerlates-test",
	})
}

func TestClient_Fetch(t *testing.T) {
	c := newTestClient(newTestServer(t))

	raw, err := c.Fetch(context.Background(), "item/1.json")
	require.NoError(t, err)
	assert.Equal(t, `{"id":1,"time":123,"title":"hello"}`, string(raw))
}

func TestClient_FetchNotFound(t *testing.T) {
	c := newTestClient(newTestServer(t))

	_, err := c.Fetch(context.Background(), "item/999.json")
	assert.Error(t, err)
}

func TestClient_FetchMalformed(t *testing.T) {
	c := newTestClient(newTestServer(t))

	_, err := c.Fetch(context.Background(), "bad.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed")
}

func TestClient_SubmittedIDs(t *testing.T) {
	c := newTestClient(newTestServer(t))

	ids, err := c.SubmittedIDs(context.Background(), "alice")
	require.NoError(t, err)
	// API order is preserved.
	assert.Equal(t, []int64{3, 2, 1}, ids)
}

func TestClient_SubmittedIDsUnknownUser(t *testing.T) {
	c := newTestClient(newTestServer(t))

	_, err := c.SubmittedIDs(context.Background(), "ghost")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ghost")
}

func TestPaths(t *testing.T) {
	assert.Equal(t, "user/pg.json", UserPath("pg"))
	assert.Equal(t, "item/101.json", ItemPath(101))
	assert.Equal(t, "https://news.ycombinator.com/item?id=101", Permalink(101))
}
