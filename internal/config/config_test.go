package config

import (
	"strconv"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	calcerrors "calc/internal/errors"
)

func env(values map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(env(nil))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 5, cfg.MaxReadFailures)
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := Load(env(map[string]string{
		EnvVerbosity:       "2",
		EnvNoColor:         "true",
		EnvMaxReadFailures: "0",
	}))
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Verbosity)
	assert.True(t, cfg.NoColor)
	assert.Equal(t, 0, cfg.MaxReadFailures)
}

func TestLoadEmptyValuesKeepDefaults(t *testing.T) {
	cfg, err := Load(env(map[string]string{
		EnvVerbosity:       "",
		EnvMaxReadFailures: "",
	}))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadStandardNoColor(t *testing.T) {
	// Any value, even empty, counts.
	cfg, err := Load(env(map[string]string{EnvNoColorStandard: ""}))
	require.NoError(t, err)
	assert.True(t, cfg.NoColor)
}

func TestLoadInvalidValues(t *testing.T) {
	tests := []struct {
		key string
		raw string
	}{
		{EnvVerbosity, "loud"},
		{EnvNoColor, "maybe"},
		{EnvMaxReadFailures, "many"},
		{EnvMaxReadFailures, "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.raw, func(t *testing.T) {
			_, err := Load(env(map[string]string{tt.key: tt.raw}))
			require.Error(t, err)
			assert.Equal(t, calcerrors.ErrorInvalidConfig, calcerrors.CodeOf(err))
			assert.Contains(t, err.Error(), tt.key)
			assert.Contains(t, err.Error(), strconv.Quote(tt.raw))
		})
	}
}

func TestLoadInvalidKeepsCause(t *testing.T) {
	_, err := Load(env(map[string]string{EnvVerbosity: "loud"}))
	require.Error(t, err)

	var numErr *strconv.NumError
	assert.True(t, errors.As(err, &numErr))
}
