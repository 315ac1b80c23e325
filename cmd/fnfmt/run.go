package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/eutampieri/gleam/format"
	clilog "github.com/eutampieri/gleam/internal/cli/log"
	"github.com/eutampieri/gleam/internal/moduleio"
)

// errNotCanonical is returned by run when --check or -l found at least one
// input whose canonical form differs from what's on disk; main reports it
// with a non-zero exit without printing an extra message, since the list/
// check output has already told the user what changed.
var errNotCanonical = errors.New("not canonical")

// maxWorkers bounds how many files are rendered concurrently, the way a
// gofmt-style batch tool avoids opening unbounded file descriptors on a
// large tree.
const maxWorkers = 8

func run(cmd *cobra.Command, cfg *Config, logCfg *clilog.Config, args []string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	handler, err := logCfg.NewHandler(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	logger := slog.New(handler)

	paths, err := discoverPaths(args)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(maxWorkers)

	results := make([]fileResult, len(paths))
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			start := time.Now()
			res, err := processFile(path, cfg.TargetVersion)
			logger.Debug("processed file", "path", path, "elapsed", time.Since(start), "error", err)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	changed := false
	for _, res := range results {
		if !res.changed {
			continue
		}
		changed = true

		switch {
		case cfg.List:
			fmt.Fprintln(cmd.OutOrStdout(), res.inputPath)
		case cfg.Diff:
			if d := lineDiff(res.outputPath, res.previous, res.rendered); d != "" {
				fmt.Fprint(cmd.OutOrStdout(), d)
			}
		case cfg.Check:
			// --check reports via exit status only; see errNotCanonical below.
		default:
			if err := os.WriteFile(res.outputPath, []byte(res.rendered), 0o644); err != nil {
				return fmt.Errorf("%w: %s: %w", ErrWriteOutput, res.outputPath, err)
			}
		}
	}

	if changed && (cfg.Check || cfg.List) {
		return errNotCanonical
	}
	return nil
}

type fileResult struct {
	inputPath  string
	outputPath string
	previous   string
	rendered   string
	changed    bool
}

// outputPathFor derives the canonical-text sibling of a *.module.json
// input, the way gofmt reformats a .go file in place — here the rendered
// text is a distinct file since the input is JSON, not source text.
func outputPathFor(inputPath string) string {
	return strings.TrimSuffix(inputPath, ".module.json") + ".out"
}

func processFile(path, targetVersion string) (fileResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return fileResult{}, fmt.Errorf("%w: %w", ErrReadInput, err)
	}
	defer f.Close()

	module, ex, err := moduleio.Decode(f)
	if err != nil {
		return fileResult{}, &format.ParseError{Path: path, Inner: fmt.Errorf("%w: %w", ErrReadInput, err)}
	}

	var buf bytes.Buffer
	err = format.PrettyWithOptions(&buf, module, ex, path, format.Options{TargetVersion: targetVersion})
	if err != nil {
		return fileResult{}, err
	}
	rendered := buf.String()

	outputPath := outputPathFor(path)
	var previous string
	if existing, err := os.ReadFile(outputPath); err == nil {
		previous = string(existing)
	} else if !os.IsNotExist(err) {
		return fileResult{}, fmt.Errorf("%w: %w", ErrReadInput, err)
	}

	return fileResult{
		inputPath:  path,
		outputPath: outputPath,
		previous:   previous,
		rendered:   rendered,
		changed:    previous != rendered,
	}, nil
}
