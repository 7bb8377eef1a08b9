package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/fatih/color"

	"github.com/hupe1980/numconv/internal/logging"
	"github.com/hupe1980/numconv/internal/verify"
)

// VerifyCmd sweeps every conversion against the exact oracle.
type VerifyCmd struct {
	Config   string   `short:"c" help:"TOML file with workers, samples, seed and policies"`
	Workers  int      `help:"Pairs verified concurrently (overrides the config file)"`
	Samples  int      `help:"Random samples per source kind (overrides the config file)" default:"-1"`
	Seed     int64    `help:"Seed of the random samples, 0 keeps the config file's seed"`
	Policies []string `help:"Policies to verify (overrides the config file)"`
}

func (cmd *VerifyCmd) Run(globals *Globals) error {
	logger, err := globals.Logger()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return cmd.run(ctx, os.Stdout, logger)
}

func (cmd *VerifyCmd) run(ctx context.Context, w io.Writer, logger *logging.Logger) error {
	cfg, err := cmd.config()
	if err != nil {
		return err
	}

	v := verify.New(
		verify.WithWorkers(cfg.Workers),
		verify.WithSamples(cfg.Samples),
		verify.WithSeed(cfg.Seed),
		verify.WithPolicies(cfg.Policies...),
		verify.WithLogger(logger),
	)
	report, err := v.Run(ctx)
	if report != nil {
		status := color.New(color.FgGreen).Sprint("ok")
		if report.Violations > 0 {
			status = color.New(color.FgRed).Sprintf("%d violations", report.Violations)
		}
		fmt.Fprintf(w, "%d pairs, %d checks: %s\n", report.Pairs, report.Checks, status)
	}
	return err
}

// config merges the config file and the flags; flags win.
func (cmd *VerifyCmd) config() (VerifyConfig, error) {
	cfg := DefaultVerifyConfig()
	if cmd.Config != "" {
		var err error
		if cfg, err = loadVerifyConfig(cmd.Config); err != nil {
			return VerifyConfig{}, err
		}
	}

	if cmd.Workers > 0 {
		cfg.Workers = cmd.Workers
	}
	if cmd.Samples >= 0 {
		cfg.Samples = cmd.Samples
	}
	if cmd.Seed != 0 {
		cfg.Seed = cmd.Seed
	}
	if len(cmd.Policies) > 0 {
		ps, err := parsePolicies(cmd.Policies)
		if err != nil {
			return VerifyConfig{}, err
		}
		cfg.Policies = ps
	}
	return cfg, nil
}
