package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"text/tabwriter"
	"time"

	"github.com/alvinosh/nestjs-recurly-sub000/recurly"
)

const (
	checkMark = "✓"
	crossMark = "✗"
)

func jsonOutput() bool {
	return outputFormat == "json"
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newTable(w io.Writer, header ...string) *tabwriter.Writer {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i, h := range header {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, h)
	}
	fmt.Fprintln(tw)
	return tw
}

// printNext tells the user how to fetch the following page.
func printNext[T any](w io.Writer, page *recurly.List[T]) {
	if !page.HasMore {
		return
	}
	if c := nextCursor(page.Next); c != "" {
		fmt.Fprintf(w, "\nMore results: --cursor %s\n", c)
	}
}

// nextCursor extracts the cursor parameter from a list's next link.
func nextCursor(next string) string {
	u, err := url.Parse(next)
	if err != nil {
		return ""
	}
	return u.Query().Get("cursor")
}

func formatTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "-"
	}
	return t.UTC().Format("2006-01-02 15:04")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
