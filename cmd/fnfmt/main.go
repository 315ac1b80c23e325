// Command fnfmt renders pre-parsed, JSON-encoded modules (see
// internal/moduleio) into their canonical textual form and reports or
// writes back the result, the way gofmt/gofumpt do for Go source — except
// here the input boundary is an already-parsed AST rather than raw text,
// since this repository ships the formatting core, not a front-end parser.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	clilog "github.com/eutampieri/gleam/internal/cli/log"
)

var (
	// ErrReadInput wraps a failure to read or decode a *.module.json input.
	ErrReadInput = errors.New("reading input")
	// ErrWriteOutput wraps a failure to write a rendered output file.
	ErrWriteOutput = errors.New("writing output")
)

func main() {
	cfg := NewConfig()
	logCfg := clilog.NewConfig()

	rootCmd := &cobra.Command{
		Use:   "fnfmt [flags] <path|directory> ...",
		Short: "Render pre-parsed modules to their canonical textual form",
		Long: `fnfmt walks the given files and directories for *.module.json inputs,
renders each to its canonical textual form, and reports or writes back the
result — the same job gofmt does for Go source, aimed at a JSON-encoded AST
instead of raw text.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, cfg, logCfg, args)
		},
	}

	cfg.RegisterFlags(rootCmd.Flags())
	logCfg.RegisterFlags(rootCmd.PersistentFlags())

	if err := cfg.RegisterCompletions(rootCmd); err != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", err)
	}
	if err := logCfg.RegisterCompletions(rootCmd); err != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", err)
	}

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errNotCanonical) {
			fmt.Fprintf(os.Stderr, "%v\n", err)
		}
		os.Exit(1)
	}
}
