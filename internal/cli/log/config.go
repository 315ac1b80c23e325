package log

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flags holds the CLI flag names used for logging configuration, so a
// command can rename them without changing [Config]'s field names.
type Flags struct {
	Level  string
	Format string
}

// NewConfig creates a [Config] embedding these flag names.
func (f Flags) NewConfig() *Config {
	return &Config{Flags: f}
}

// Config holds logging flag values for a cobra command. Create it with
// [NewConfig], register its flags with [Config.RegisterFlags], and build a
// handler from it with [Config.NewHandler] once flags have been parsed.
type Config struct {
	Level  string
	Format string
	Flags  Flags
}

// NewConfig returns a [Config] using the default flag names "log-level" and
// "log-format".
func NewConfig() *Config {
	return Flags{Level: "log-level", Format: "log-format"}.NewConfig()
}

// RegisterFlags adds the logging flags to flags.
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.Level, c.Flags.Level, string(LevelInfo),
		fmt.Sprintf("log level, one of: %s", GetAllLevelStrings()))
	flags.StringVar(&c.Format, c.Flags.Format, string(FormatText),
		fmt.Sprintf("log format, one of: %s", GetAllFormatStrings()))
}

// RegisterCompletions registers shell completion functions for the logging
// flags on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc(c.Flags.Level,
		cobra.FixedCompletions(GetAllLevelStrings(), cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Level, err)
	}

	err = cmd.RegisterFlagCompletionFunc(c.Flags.Format,
		cobra.FixedCompletions(GetAllFormatStrings(), cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Format, err)
	}

	return nil
}

// NewHandler builds a [slog.Handler] writing to w from c's parsed flag
// values.
func (c *Config) NewHandler(w io.Writer) (slog.Handler, error) {
	return NewHandlerFromStrings(w, c.Level, c.Format)
}
