package main

import (
	"fmt"
	"strings"

	"github.com/google/go-cmp/cmp"
)

// lineDiff renders a unified-ish, line-oriented diff of path's before/after
// contents using cmp.Diff over line slices — reusing the formatter's own
// go-cmp dependency for the CLI's -d output rather than hand-rolling a
// differ.
func lineDiff(path, before, after string) string {
	if before == after {
		return ""
	}

	beforeLines := strings.Split(before, "\n")
	afterLines := strings.Split(after, "\n")

	d := cmp.Diff(beforeLines, afterLines)
	if d == "" {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "--- %s\n+++ %s\n", path, path)
	b.WriteString(d)
	return b.String()
}
