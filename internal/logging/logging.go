// SPDX-License-Identifier: MIT

// Package logging builds the structured logger used by the matcalc binary.
// Library packages never log; internal packages accept a logr.Logger.
package logging

import (
	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Verbosity levels for logr.Logger.V.
const (
	INFO  = 0
	DEBUG = 1
)

// New returns a human-readable zap logger writing to stderr, wrapped as a
// logr.Logger. Verbose enables DEBUG-level messages.
// The returned sync function flushes buffered entries.
func New(verbose bool) (logr.Logger, func(), error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	cfg.DisableCaller = true
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	z, err := cfg.Build(zap.WithCaller(false))
	if err != nil {
		return logr.Discard(), func() {}, err
	}

	return zapr.NewLogger(z).WithName("matcalc"), func() { _ = z.Sync() }, nil
}
