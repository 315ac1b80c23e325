package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/mod/semver"

	"github.com/eutampieri/gleam/format"
)

// Flags holds the CLI flag names fnfmt registers, so tests or embedders can
// rename them without touching [Config]'s fields.
type Flags struct {
	List          string
	Diff          string
	Write         string
	Check         string
	TargetVersion string
}

// NewConfig creates a [Config] embedding these flag names.
func (f Flags) NewConfig() *Config {
	return &Config{Flags: f}
}

// Config holds fnfmt's parsed flag values.
//
// Create instances with [NewConfig], register CLI flags with
// [Config.RegisterFlags], then read List/Diff/Write/Check/TargetVersion once
// cobra has parsed the command line.
type Config struct {
	Flags Flags

	List          bool
	Diff          bool
	Write         bool
	Check         bool
	TargetVersion string
}

// NewConfig returns a [Config] using fnfmt's default flag names.
func NewConfig() *Config {
	return Flags{
		List:          "list",
		Diff:          "diff",
		Write:         "write",
		Check:         "check",
		TargetVersion: "target-version",
	}.NewConfig()
}

// RegisterFlags adds fnfmt's flags to flags.
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.BoolVarP(&c.List, c.Flags.List, "l", false,
		"list files whose canonical form differs from disk, without writing")
	flags.BoolVarP(&c.Diff, c.Flags.Diff, "d", false,
		"print a diff of the changes, without writing")
	flags.BoolVarP(&c.Write, c.Flags.Write, "w", false,
		"write the canonical form back to each file")
	flags.BoolVar(&c.Check, c.Flags.Check, false,
		"exit non-zero if any input is not already canonical")
	flags.StringVar(&c.TargetVersion, c.Flags.TargetVersion, "v1",
		"target language version gating bit-array codepoint-option normalisation, as a semantic version")
}

// RegisterCompletions registers shell completions for fnfmt's flags on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc(c.Flags.TargetVersion,
		cobra.FixedCompletions([]string{"v1"}, cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.TargetVersion, err)
	}
	return nil
}

// Validate normalises and checks TargetVersion, mirroring gofumpt's own
// LangVersion handling (accept a bare "1.2" as well as "v1.2").
func (c *Config) Validate() error {
	v := c.TargetVersion
	if v == "" {
		v = "v1"
	} else if v[0] != 'v' {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return fmt.Errorf("%w: invalid target version %q", format.ErrInvalidTargetVersion, c.TargetVersion)
	}
	c.TargetVersion = v
	return nil
}
