package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// modulePattern is the glob fnfmt walks a directory with, matching the
// pre-parsed-module boundary the CLI reads from.
const modulePattern = "**/*.module.json"

// discoverPaths expands inputs (files or directories) into a sorted,
// deduplicated list of *.module.json files, the way wharflab-tally's
// discovery package turns directories into a flat file list with
// doublestar globbing.
func discoverPaths(inputs []string) ([]string, error) {
	seen := make(map[string]bool)
	var out []string

	for _, input := range inputs {
		info, err := os.Stat(input)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", input, err)
		}

		if !info.IsDir() {
			if !seen[input] {
				seen[input] = true
				out = append(out, input)
			}
			continue
		}

		pattern := filepath.ToSlash(filepath.Join(input, modulePattern))
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", input, err)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				out = append(out, m)
			}
		}
	}

	sort.Strings(out)
	return out, nil
}
