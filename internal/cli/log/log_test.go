package log_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eutampieri/gleam/internal/cli/log"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input       string
		expected    log.Level
		expectError bool
	}{
		"error level":      {input: "error", expected: log.LevelError},
		"warn level":       {input: "warn", expected: log.LevelWarn},
		"warning level":    {input: "warning", expected: log.LevelWarn},
		"info level":       {input: "info", expected: log.LevelInfo},
		"debug level":      {input: "debug", expected: log.LevelDebug},
		"case insensitive": {input: "DEBUG", expected: log.LevelDebug},
		"unknown level":    {input: "verbose", expectError: true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			lvl, err := log.ParseLevel(tc.input)
			if tc.expectError {
				require.Error(t, err)
				require.ErrorIs(t, err, log.ErrUnknownLevel)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, lvl)
		})
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input       string
		expected    log.Format
		expectError bool
	}{
		"json format":      {input: "json", expected: log.FormatJSON},
		"text format":      {input: "text", expected: log.FormatText},
		"case insensitive": {input: "JSON", expected: log.FormatJSON},
		"unknown format":   {input: "logfmt", expectError: true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			f, err := log.ParseFormat(tc.input)
			if tc.expectError {
				require.Error(t, err)
				require.ErrorIs(t, err, log.ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, f)
		})
	}
}

func TestNewHandlerFromStrings(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler, err := log.NewHandlerFromStrings(&buf, "info", "json")
	require.NoError(t, err)
	assert.True(t, handler.Enabled(nil, 0))

	_, err = log.NewHandlerFromStrings(&buf, "bogus", "json")
	require.Error(t, err)
	require.ErrorIs(t, err, log.ErrInvalidArgument)
	require.ErrorIs(t, err, log.ErrUnknownLevel)
}

func TestGetAllLevelAndFormatStrings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"error", "warn", "info", "debug"}, log.GetAllLevelStrings())
	assert.Equal(t, []string{"json", "text"}, log.GetAllFormatStrings())
}
