package main

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/hupe1980/numconv/matrix"
)

// VerifyConfig holds the settings of a verification run.
type VerifyConfig struct {
	Workers  int
	Samples  int
	Seed     int64
	Policies []matrix.Policy
}

// DefaultVerifyConfig returns the settings used when neither a config file
// nor flags override them.
func DefaultVerifyConfig() VerifyConfig {
	return VerifyConfig{
		Workers:  runtime.GOMAXPROCS(0),
		Samples:  256,
		Seed:     1,
		Policies: matrix.Policies(),
	}
}

type fileConfig struct {
	Workers  int      `toml:"workers"`
	Samples  int      `toml:"samples"`
	Seed     int64    `toml:"seed"`
	Policies []string `toml:"policies"`
}

// loadVerifyConfig overlays the keys defined in the TOML file at path on the
// defaults. Unknown keys are rejected.
func loadVerifyConfig(path string) (VerifyConfig, error) {
	cfg := DefaultVerifyConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return VerifyConfig{}, fmt.Errorf("load verify config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return VerifyConfig{}, fmt.Errorf("load verify config: unknown keys %s", strings.Join(keys, ", "))
	}

	if meta.IsDefined("workers") {
		if raw.Workers < 1 {
			return VerifyConfig{}, fmt.Errorf("workers must be positive, got %d", raw.Workers)
		}
		cfg.Workers = raw.Workers
	}

	if meta.IsDefined("samples") {
		if raw.Samples < 0 {
			return VerifyConfig{}, fmt.Errorf("samples must not be negative, got %d", raw.Samples)
		}
		cfg.Samples = raw.Samples
	}

	if meta.IsDefined("seed") {
		cfg.Seed = raw.Seed
	}

	if meta.IsDefined("policies") {
		ps, err := parsePolicies(raw.Policies)
		if err != nil {
			return VerifyConfig{}, fmt.Errorf("parse policies: %w", err)
		}
		cfg.Policies = ps
	}

	return cfg, nil
}

func parsePolicies(names []string) ([]matrix.Policy, error) {
	if len(names) == 0 {
		return matrix.Policies(), nil
	}
	out := make([]matrix.Policy, 0, len(names))
	for _, name := range names {
		p, err := matrix.ParsePolicy(name)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
