package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscoverPaths(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0o755))

	top := filepath.Join(dir, "a.module.json")
	nested := filepath.Join(dir, "nested", "b.module.json")
	ignored := filepath.Join(dir, "c.txt")

	for _, p := range []string{top, nested, ignored} {
		require.NoError(t, os.WriteFile(p, []byte("{}"), 0o644))
	}

	paths, err := discoverPaths([]string{dir})
	require.NoError(t, err)
	assert.Equal(t, []string{top, nested}, paths)
}

func TestDiscoverPathsExplicitFileAndDedup(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "a.module.json")
	require.NoError(t, os.WriteFile(file, []byte("{}"), 0o644))

	paths, err := discoverPaths([]string{file, dir})
	require.NoError(t, err)
	assert.Equal(t, []string{file}, paths)
}

func TestDiscoverPathsMissingInput(t *testing.T) {
	t.Parallel()

	_, err := discoverPaths([]string{filepath.Join(t.TempDir(), "missing")})
	require.Error(t, err)
}
