// Package config centralizes the CLI-level settings that surround a
// schedule generation run. The core library itself takes a plain
// ScheduleInput and never reads flags, files, or the environment.
package config

import "github.com/icedraw/schedgen/internal/core/models"

// RunConfig carries the handful of settings the CLI layer resolves
// before calling schedule.Generate.
type RunConfig struct {
	InputPath  string
	OutputPath string

	Seed                     uint32
	OptimizationTimeBudgetMs int

	Verbose bool
}

// Default returns a RunConfig with the same defaults the core uses
// when a value is left at its zero value.
func Default() RunConfig {
	return RunConfig{
		OptimizationTimeBudgetMs: models.DefaultOptimizationTimeBudgetMs,
	}
}

// ApplyOverrides copies any non-zero override fields from c onto the
// ScheduleInput read from the input file, so CLI flags can take
// precedence over values embedded in the JSON payload.
func (c RunConfig) ApplyOverrides(input *models.ScheduleInput) {
	if c.Seed != 0 {
		input.Seed = c.Seed
	}
	if c.OptimizationTimeBudgetMs != 0 {
		input.OptimizationTimeBudgetMs = c.OptimizationTimeBudgetMs
	}
}
