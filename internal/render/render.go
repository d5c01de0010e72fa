// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/k3a/html2text"

	"github.com/staranto/hackerlates/internal/hn"
)

const timeLayout = "Mon, 02 Jan 2006 15:04:05"

// FormatTime renders a unix timestamp in the fixed RFC-2822-style form
// the dump has always used. The zone is printed as -0000 because the
// poster's local offset is unknown, only the UTC instant is.
func FormatTime(unix int64) string {
	return time.Unix(unix, 0).UTC().Format(timeLayout) + " -0000"
}

// Block writes one submission's rendered block, terminated by a blank
// line. Every field except the permalink is optional and simply omitted
// when absent.
func Block(w io.Writer, id int64, it hn.Item) error {
	var b strings.Builder

	fmt.Fprintln(&b, hn.Permalink(id))

	if ts, ok := it.Time(); ok {
		fmt.Fprintln(&b, FormatTime(ts))
	}
	if it.Deleted() {
		fmt.Fprintln(&b, "<deleted>")
	}
	if title, ok := it.Title(); ok {
		fmt.Fprintln(&b, title)
	}
	if url, ok := it.URL(); ok {
		fmt.Fprintln(&b, url)
	}
	if text, ok := it.Text(); ok {
		if q := Quote(plainText(text)); q != "" {
			fmt.Fprintln(&b, q)
		}
	}

	fmt.Fprintln(&b)

	_, err := io.WriteString(w, b.String())
	return err
}

// plainText converts an HTML item body to plain text with normalized
// line endings.
func plainText(html string) string {
	plain := html2text.HTML2Text(html)
	plain = strings.ReplaceAll(plain, "\r\n", "\n")
	return strings.ReplaceAll(plain, "\r", "\n")
}

// Quote prefixes every line with a quote marker: "> " for content, a
// bare ">" for empty lines. Trailing blank lines are dropped first.
func Quote(text string) string {
	lines := strings.Split(text, "\n")

	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	for i, line := range lines {
		if line == "" {
			lines[i] = ">"
		} else {
			lines[i] = "> " + line
		}
	}

	return strings.Join(lines, "\n")
}
