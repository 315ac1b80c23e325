// Package log builds a [log/slog] handler for fnfmt's CLI diagnostics from
// flag-friendly strings, the way a formatter reports parse errors and
// write-back activity to a user's terminal.
package log

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
)

// Level names a logging severity as a flag-friendly string, so it can be
// compared and completed without importing [log/slog] at call sites.
type Level string

const (
	LevelError Level = "error"
	LevelWarn  Level = "warn"
	LevelInfo  Level = "info"
	LevelDebug Level = "debug"
)

// Format names a handler's output encoding.
type Format string

const (
	// FormatJSON emits one JSON object per log line.
	FormatJSON Format = "json"
	// FormatText emits slog's default key=value text encoding.
	FormatText Format = "text"
)

var (
	// ErrInvalidArgument wraps a malformed level or format string.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnknownLevel indicates a level string matched none of the known levels.
	ErrUnknownLevel = errors.New("unknown log level")
	// ErrUnknownFormat indicates a format string matched none of the known formats.
	ErrUnknownFormat = errors.New("unknown log format")
)

// NewHandlerFromStrings parses levelStr and formatStr and builds a
// [slog.Handler] writing to w. Both strings are matched case-insensitively.
func NewHandlerFromStrings(w io.Writer, levelStr, formatStr string) (slog.Handler, error) {
	level, err := ParseLevel(levelStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	format, err := ParseFormat(formatStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return NewHandler(w, level, format), nil
}

// NewHandler builds a [slog.Handler] writing to w at the given level and
// format. Source locations are attached only at [LevelDebug], matching how
// verbose fnfmt's diagnostics get as a user raises --log-level.
func NewHandler(w io.Writer, level Level, format Format) slog.Handler {
	opts := &slog.HandlerOptions{
		AddSource: level == LevelDebug,
		Level:     level.slogLevel(),
	}

	if format == FormatJSON {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

func (l Level) slogLevel() slog.Level {
	switch l {
	case LevelError:
		return slog.LevelError
	case LevelWarn:
		return slog.LevelWarn
	case LevelDebug:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// ParseLevel parses a level string case-insensitively. "warning" is accepted
// as a synonym for "warn".
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case string(LevelError):
		return LevelError, nil
	case string(LevelWarn), "warning":
		return LevelWarn, nil
	case string(LevelInfo):
		return LevelInfo, nil
	case string(LevelDebug):
		return LevelDebug, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}

// ParseFormat parses a format string case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(s))
	if slices.Contains([]Format{FormatJSON, FormatText}, f) {
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// GetAllLevelStrings lists every accepted level string, for flag usage text
// and shell completion.
func GetAllLevelStrings() []string {
	return []string{string(LevelError), string(LevelWarn), string(LevelInfo), string(LevelDebug)}
}

// GetAllFormatStrings lists every accepted format string, for flag usage
// text and shell completion.
func GetAllFormatStrings() []string {
	return []string{string(FormatJSON), string(FormatText)}
}
