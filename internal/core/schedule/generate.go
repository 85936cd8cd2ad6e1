// Package schedule is the orchestrator: it drives matchup generation,
// greedy slot placement, and simulated annealing in order, emitting
// progress events and assembling the final result.
package schedule

import (
	"math"
	"sort"

	"github.com/icedraw/schedgen/internal/core/matchup"
	"github.com/icedraw/schedgen/internal/core/models"
	"github.com/icedraw/schedgen/internal/core/optimizer"
	"github.com/icedraw/schedgen/internal/core/scoring"
	"github.com/icedraw/schedgen/internal/core/slotassign"
	"github.com/icedraw/schedgen/internal/prng"
	"github.com/icedraw/schedgen/internal/progress"
)

// Generate runs one full generation: matchup construction, greedy
// placement, and annealing, returning a well-formed ScheduleResult
// even for empty or degenerate input.
func Generate(input models.ScheduleInput, sink progress.Sink) models.ScheduleResult {
	if sink == nil {
		sink = progress.NoopSink{}
	}
	input.Normalize()

	sink.Emit(models.ProgressEvent{Phase: "Generating matchups", Percent: 0})

	var warnings []models.Warning

	rounds := matchup.Generate(input.Strategies, input.Teams)
	totalMatchups := 0
	for _, r := range rounds {
		totalMatchups += len(r.Matchups)
	}
	if totalMatchups == 0 {
		warnings = append(warnings, models.Warning{Severity: models.SeverityInfo, Message: "no matchups were produced from the given strategies"})
	}

	sink.Emit(models.ProgressEvent{Phase: "Generating matchups", Percent: 10})

	teamIDs := make([]int, 0, len(input.Teams))
	for _, t := range input.Teams {
		teamIDs = append(teamIDs, t.ID)
	}
	sort.Ints(teamIDs)

	byeMap := scoring.BuildByeMap(input.ByeRequests)

	pool, err := slotassign.BuildSlotPool(input.DrawSlots, input.Strategies)
	if err != nil {
		warnings = append(warnings, models.Warning{Severity: models.SeverityError, Message: "failed to build slot pool: " + err.Error()})
		return models.ScheduleResult{Warnings: warnings}
	}
	if pool.IsEmpty() {
		warnings = append(warnings, models.Warning{Severity: models.SeverityError, Message: "slot pool is empty after filtering draw slots against strategies"})
		return models.ScheduleResult{Warnings: warnings}
	}

	rng := prng.New(input.Seed)

	onAssignProgress := func(processed, total int) {
		if total == 0 || processed%10 != 0 {
			return
		}
		percent := int(math.Round(float64(processed) / float64(total) * 80))
		sink.Emit(models.ProgressEvent{Phase: "Assigning slots", Percent: percent})
	}

	result := slotassign.Assign(rounds, pool, input.Strategies, byeMap, rng, onAssignProgress)

	sink.Emit(models.ProgressEvent{Phase: "Optimizing", Percent: 80})

	games := result.Games
	if len(games) > 0 {
		annealer := optimizer.New(games, pool, teamIDs, byeMap, rng)
		onOptimizeProgress := func(percent int, message string) {
			sink.Emit(models.ProgressEvent{Phase: "Optimizing", Percent: percent, Message: message})
		}
		games, _ = annealer.Run(input.OptimizationTimeBudgetMs, onOptimizeProgress)
	}

	totalScore := scoring.TotalScheduleScore(games, teamIDs, byeMap) + scoring.CompactnessScore(games, pool.DrawCapacities, pool.NumSheets)

	teamStats := scoring.ComputeTeamStats(games, teamIDs, byeMap)

	warnings = append(warnings, assembleWarnings(games, result.Unschedulable, teamStats, pool, totalMatchups)...)

	sink.Emit(models.ProgressEvent{Phase: "Complete", Percent: 100})

	return models.ScheduleResult{
		Games:         games,
		Unschedulable: result.Unschedulable,
		TeamStats:     teamStats,
		Warnings:      warnings,
		TotalScore:    totalScore,
	}
}
