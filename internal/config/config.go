// SPDX-License-Identifier: MIT

// Package config loads matcalc runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// Default values, shared with command-line flag defaults.
const (
	DefaultPrecision    = -1
	DefaultPrompt       = "matcalc> "
	DefaultLaplaceLimit = 8
	DefaultTolerance    = 1e-9
)

var (
	// ErrInvalidPrecision is returned for precision values below -1.
	ErrInvalidPrecision = errors.New("config: precision must be >= -1")

	// ErrInvalidLaplaceLimit is returned for a non-positive Laplace limit.
	ErrInvalidLaplaceLimit = errors.New("config: laplace limit must be >= 1")

	// ErrInvalidTolerance is returned for a negative comparison tolerance.
	ErrInvalidTolerance = errors.New("config: tolerance must be >= 0")
)

// Config holds console settings.
type Config struct {
	// Precision is the number of decimals printed (-1 = shortest exact form).
	Precision int `env:"MATCALC_PRECISION" envDefault:"-1"`
	// Prompt is written before each interactive read.
	Prompt string `env:"MATCALC_PROMPT" envDefault:"matcalc> "`
	// LaplaceLimit is the largest size evaluated by cofactor expansion;
	// bigger matrices use LU elimination.
	LaplaceLimit int `env:"MATCALC_LAPLACE_LIMIT" envDefault:"8"`
	// Tolerance is the absolute tolerance used by approximate comparisons.
	Tolerance float64 `env:"MATCALC_TOLERANCE" envDefault:"1e-9"`
	// Verbose enables per-command tracing in the binary.
	Verbose bool `env:"MATCALC_VERBOSE" envDefault:"false"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Precision:    DefaultPrecision,
		Prompt:       DefaultPrompt,
		LaplaceLimit: DefaultLaplaceLimit,
		Tolerance:    DefaultTolerance,
	}
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first out-of-range setting.
func (c Config) Validate() error {
	switch {
	case c.Precision < -1:
		return fmt.Errorf("%w: got %d", ErrInvalidPrecision, c.Precision)
	case c.LaplaceLimit < 1:
		return fmt.Errorf("%w: got %d", ErrInvalidLaplaceLimit, c.LaplaceLimit)
	case c.Tolerance < 0:
		return fmt.Errorf("%w: got %g", ErrInvalidTolerance, c.Tolerance)
	}
	return nil
}

// Exitf writes a formatted error message to stderr and exits with code 1.
// It provides a consistent fatal-exit pattern for the binary's entry point.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
