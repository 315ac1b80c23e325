package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineDiff(t *testing.T) {
	t.Parallel()

	t.Run("identical inputs produce no diff", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, lineDiff("x.out", "fn main() {}\n", "fn main() {}\n"))
	})

	t.Run("changed lines are reported with a header", func(t *testing.T) {
		t.Parallel()
		d := lineDiff("x.out", "fn main() {\n  1\n}\n", "fn main() {\n  2\n}\n")
		a := assert.New(t)
		a.True(strings.HasPrefix(d, "--- x.out\n+++ x.out\n"))
		a.Contains(d, "1")
		a.Contains(d, "2")
	})
}
