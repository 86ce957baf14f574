// SPDX-License-Identifier: MIT

// Command matcalc is an interactive matrix calculator.
//
// Settings come from MATCALC_* environment variables and may be overridden
// by flags. With -e the given commands run in order and the program exits;
// otherwise commands are read from standard input.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	flag "github.com/spf13/pflag"

	"github.com/katalvlaran/matcalc/internal/config"
	"github.com/katalvlaran/matcalc/internal/console"
	"github.com/katalvlaran/matcalc/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("matcalc: load config: %v", err)
	}

	var commands []string
	flag.IntVar(&cfg.Precision, "precision", cfg.Precision, "decimals printed (-1 = shortest exact form)")
	flag.StringVar(&cfg.Prompt, "prompt", cfg.Prompt, "interactive prompt")
	flag.IntVar(&cfg.LaplaceLimit, "laplace-limit", cfg.LaplaceLimit, "largest size evaluated by cofactor expansion")
	flag.Float64Var(&cfg.Tolerance, "tol", cfg.Tolerance, "absolute tolerance for eq")
	flag.BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "trace every command")
	flag.StringArrayVarP(&commands, "eval", "e", nil, "command to run (repeatable); exits afterwards")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		config.Exitf("matcalc: invalid flags: %v", err)
	}

	logger, syncLog, err := logging.New(cfg.Verbose)
	if err != nil {
		config.Exitf("matcalc: init logger: %v", err)
	}
	defer syncLog()
	logger.V(logging.DEBUG).Info("Configuration loaded",
		"precision", cfg.Precision, "laplaceLimit", cfg.LaplaceLimit, "tolerance", cfg.Tolerance)

	if len(commands) == 0 && !isTerminal(os.Stdin) {
		cfg.Prompt = "" // piped input
	}
	c := console.New(cfg, os.Stdout, console.WithLogger(logger))

	if len(commands) > 0 {
		failed := 0
		for _, line := range commands {
			quit, err := c.Exec(line)
			if err != nil {
				fmt.Fprintf(os.Stdout, "error: %v\n", err)
				failed++
				continue
			}
			if quit {
				break
			}
		}
		if failed > 0 {
			logger.Info("Some commands failed", "failed", failed, "total", len(commands))
			syncLog()
			os.Exit(1)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := c.Run(ctx, os.Stdin); err != nil && ctx.Err() == nil {
		logger.Error(err, "Reading input failed")
		syncLog()
		os.Exit(1)
	}
}

// isTerminal reports whether f is a character device.
func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
