package main

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/icedraw/schedgen/internal/config"
	"github.com/icedraw/schedgen/internal/core/models"
	"github.com/icedraw/schedgen/internal/core/schedule"
	"github.com/icedraw/schedgen/internal/progress"
	"github.com/icedraw/schedgen/pkg/scheduleio"
)

func generateCmd() *cobra.Command {
	cfg := config.Default()

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a league schedule from a JSON input file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cfg)
		},
	}

	cmd.Flags().StringVar(&cfg.InputPath, "input", "", "path to the ScheduleInput JSON file (required)")
	cmd.Flags().StringVar(&cfg.OutputPath, "output", "", "path to write the ScheduleResult JSON (defaults to stdout)")
	cmd.Flags().Uint32Var(&cfg.Seed, "seed", 0, "override the input's PRNG seed (0 = use the input's seed)")
	cmd.Flags().IntVar(&cfg.OptimizationTimeBudgetMs, "budget-ms", 0, "override the optimization time budget in milliseconds (0 = use the input's budget)")
	cmd.Flags().BoolVar(&cfg.Verbose, "verbose", false, "log progress events to stderr")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func runGenerate(cfg config.RunConfig) error {
	f, err := os.Open(cfg.InputPath)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	input, err := scheduleio.DecodeInput(f)
	if err != nil {
		return err
	}
	cfg.ApplyOverrides(&input)

	runID := uuid.New().String()

	var sink progress.Sink = progress.NoopSink{}
	if cfg.Verbose {
		sink = stderrSink{runID: runID, start: time.Now()}
	}

	logrus.WithField("run_id", runID).Info("starting schedule generation")
	result := schedule.Generate(input, sink)

	out := os.Stdout
	if cfg.OutputPath != "" {
		out, err = os.Create(cfg.OutputPath)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer out.Close()
	}

	return scheduleio.EncodeResult(out, result)
}

// stderrSink logs each progress event to stderr; it exists only for
// --verbose CLI runs.
type stderrSink struct {
	runID string
	start time.Time
}

func (s stderrSink) Emit(event models.ProgressEvent) {
	logrus.WithFields(logrus.Fields{
		"run_id":  s.runID,
		"phase":   event.Phase,
		"percent": event.Percent,
		"elapsed": time.Since(s.start).Round(time.Millisecond),
	}).Info(event.Message)
}
