package schedule

import (
	"fmt"
	"math"

	"github.com/icedraw/schedgen/internal/core/models"
	"github.com/icedraw/schedgen/internal/core/slotassign"
)

// assembleWarnings builds the warning list described for the final
// result: unschedulable count, draw-compactness misses, draw-time
// spread, and bye conflicts.
func assembleWarnings(games []models.GeneratedGame, unschedulable []models.UnschedulableMatchup, teamStats []models.TeamStats, pool *slotassign.SlotPool, totalMatchups int) []models.Warning {
	var warnings []models.Warning

	if len(unschedulable) > 0 {
		warnings = append(warnings, models.Warning{
			Severity: models.SeverityWarning,
			Message:  fmt.Sprintf("%d matchup(s) could not be scheduled", len(unschedulable)),
		})
	}

	if pool.NumSheets > 0 && len(games) > 0 {
		target := int(math.Ceil(float64(len(games)) / float64(pool.NumSheets)))

		counts := make(map[string]int)
		for i := range games {
			counts[games[i].DrawKey()]++
		}
		actual := len(counts)

		if actual > target {
			warnings = append(warnings, models.Warning{
				Severity: models.SeverityWarning,
				Message:  fmt.Sprintf("schedule used %d draws, more than the %d draw target", actual, target),
			})
		}

		var totalEmpty int
		var multiEmptyDraws int
		for key, count := range counts {
			empty := pool.DrawCapacities[key] - count
			if empty > 0 {
				totalEmpty += empty
			}
			if empty > 1 {
				multiEmptyDraws++
			}
		}

		if multiEmptyDraws > 0 {
			warnings = append(warnings, models.Warning{
				Severity: models.SeverityWarning,
				Message:  fmt.Sprintf("%d draw(s) have more than one empty sheet", multiEmptyDraws),
			})
		}

		if totalEmpty >= pool.NumSheets {
			warnings = append(warnings, models.Warning{
				Severity: models.SeverityWarning,
				Message:  fmt.Sprintf("%d total empty sheets across the schedule, at least a full draw's worth of unused capacity", totalEmpty),
			})
		}
	}

	for _, s := range teamStats {
		if spread := drawTimeSpread(s.DrawTimeCounts); spread > 2 {
			warnings = append(warnings, models.Warning{
				Severity: models.SeverityInfo,
				Message:  fmt.Sprintf("team %d has a draw-time spread of %d", s.TeamID, spread),
			})
		}

		highPriority := 0
		lowPriority := 0
		for _, c := range s.ByeConflicts {
			if c.Priority <= 2 {
				highPriority++
			} else {
				lowPriority++
			}
		}
		if highPriority > 0 {
			warnings = append(warnings, models.Warning{
				Severity: models.SeverityWarning,
				Message:  fmt.Sprintf("team %d has %d priority-1-or-2 bye conflict(s)", s.TeamID, highPriority),
			})
		}
		if lowPriority > 0 {
			warnings = append(warnings, models.Warning{
				Severity: models.SeverityInfo,
				Message:  fmt.Sprintf("team %d has %d lower-priority bye conflict(s)", s.TeamID, lowPriority),
			})
		}
	}

	return warnings
}

func drawTimeSpread(counts map[string]int) int {
	if len(counts) == 0 {
		return 0
	}
	min, max := math.MaxInt32, 0
	for _, c := range counts {
		if c < min {
			min = c
		}
		if c > max {
			max = c
		}
	}
	return max - min
}
