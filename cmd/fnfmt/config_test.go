package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eutampieri/gleam/format"
)

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input       string
		expected    string
		expectError bool
	}{
		"empty defaults to v1": {input: "", expected: "v1"},
		"already prefixed":     {input: "v1.1", expected: "v1.1"},
		"bare version gets v":  {input: "1.1", expected: "v1.1"},
		"invalid version":      {input: "not-a-version", expectError: true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cfg := NewConfig()
			cfg.TargetVersion = tc.input
			err := cfg.Validate()
			if tc.expectError {
				require.Error(t, err)
				require.ErrorIs(t, err, format.ErrInvalidTargetVersion)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, cfg.TargetVersion)
		})
	}
}
