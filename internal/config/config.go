// Package config reads the calculator's settings from the environment.
// The command takes no flags, so this is the only configuration surface.
package config

import (
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/tliron/commonlog"

	calcerrors "calc/internal/errors"
)

const (
	EnvVerbosity       = "CALC_VERBOSITY"
	EnvNoColor         = "CALC_NO_COLOR"
	EnvMaxReadFailures = "CALC_MAX_READ_FAILURES"

	// NO_COLOR is the cross-tool convention, see https://no-color.org
	EnvNoColorStandard = "NO_COLOR"
)

var log = commonlog.GetLogger("calc.config")

type Config struct {
	// Verbosity is passed to commonlog.Configure. 0 keeps info and debug
	// lines off; each step up enables one more level.
	Verbosity int

	// NoColor disables ANSI colour in console output.
	NoColor bool

	// MaxReadFailures stops a session after that many consecutive read
	// failures. 0 means retry forever.
	MaxReadFailures int
}

func Default() Config {
	return Config{
		Verbosity:       0,
		NoColor:         false,
		MaxReadFailures: 5,
	}
}

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// FromEnv loads configuration from the process environment.
func FromEnv() (Config, error) {
	return Load(os.LookupEnv)
}

// Load builds a Config from Default and the values lookup returns.
func Load(lookup LookupFunc) (Config, error) {
	cfg := Default()

	if raw, ok := lookup(EnvVerbosity); ok && raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return cfg, invalid(EnvVerbosity, raw, err)
		}
		cfg.Verbosity = v
	}

	if raw, ok := lookup(EnvNoColor); ok && raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return cfg, invalid(EnvNoColor, raw, err)
		}
		cfg.NoColor = v
	}
	if _, ok := lookup(EnvNoColorStandard); ok {
		cfg.NoColor = true
	}

	if raw, ok := lookup(EnvMaxReadFailures); ok && raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return cfg, invalid(EnvMaxReadFailures, raw, err)
		}
		if v < 0 {
			return cfg, invalid(EnvMaxReadFailures, raw, errors.New("must not be negative"))
		}
		cfg.MaxReadFailures = v
	}

	log.Debugf("loaded config: verbosity=%d noColor=%t maxReadFailures=%d",
		cfg.Verbosity, cfg.NoColor, cfg.MaxReadFailures)
	return cfg, nil
}

func invalid(key, raw string, cause error) error {
	return &calcerrors.InputError{
		Level:   calcerrors.Error,
		Code:    calcerrors.ErrorInvalidConfig,
		Message: "invalid value for " + key,
		Input:   raw,
		Cause:   errors.Wrapf(cause, "parse %s=%q", key, raw),
	}
}
