// Package optimizer implements the simulated-annealing pass that
// refines a greedily-placed schedule: it never changes which teams
// play which matchup, only where (and in which team order) each game
// sits.
package optimizer

import (
	"fmt"
	"math"
	"time"

	"github.com/icedraw/schedgen/internal/core/models"
	"github.com/icedraw/schedgen/internal/core/scoring"
	"github.com/icedraw/schedgen/internal/core/slotassign"
	"github.com/icedraw/schedgen/internal/prng"
)

// ProgressFunc reports SA progress at roughly 500ms intervals.
type ProgressFunc func(percent int, message string)

// Annealer holds all state for one optimization run. It is built once
// per schedule.Generate call and discarded at the end.
type Annealer struct {
	games []models.GeneratedGame

	pool           *slotassign.SlotPool
	occupied       map[string]bool
	activeDrawKeys map[string]bool

	teamIDs        []int
	byeMap         models.ByeMap
	drawCapacities scoring.DrawCapacities
	numSheets      int

	rng *prng.Mulberry32

	drawTeamsBuf map[string]map[int]bool
	weekTeamsBuf map[string]map[int]bool
}

// New builds an Annealer over a committed set of games.
func New(games []models.GeneratedGame, pool *slotassign.SlotPool, teamIDs []int, byeMap models.ByeMap, rng *prng.Mulberry32) *Annealer {
	working := make([]models.GeneratedGame, len(games))
	copy(working, games)

	occupied := make(map[string]bool, len(working))
	activeDraws := make(map[string]bool, len(working))
	for _, g := range working {
		occupied[g.Slot().Key()] = true
		activeDraws[g.DrawKey()] = true
	}

	return &Annealer{
		games:          working,
		pool:           pool,
		occupied:       occupied,
		activeDrawKeys: activeDraws,
		teamIDs:        teamIDs,
		byeMap:         byeMap,
		drawCapacities: pool.DrawCapacities,
		numSheets:      pool.NumSheets,
		rng:            rng,
	}
}

// score computes the SA objective: schedule balance score plus
// compactness against the current (date,time) distribution.
func (a *Annealer) score() float64 {
	return scoring.TotalScheduleScore(a.games, a.teamIDs, a.byeMap) +
		scoring.CompactnessScore(a.games, a.drawCapacities, a.numSheets)
}

// violatesHardConstraints rebuilds per-draw and per-week team
// membership from scratch and reports whether any team appears twice
// in the same draw or the same week.
func (a *Annealer) violatesHardConstraints() bool {
	if a.drawTeamsBuf == nil {
		a.drawTeamsBuf = make(map[string]map[int]bool)
		a.weekTeamsBuf = make(map[string]map[int]bool)
	}
	for k := range a.drawTeamsBuf {
		delete(a.drawTeamsBuf, k)
	}
	for k := range a.weekTeamsBuf {
		delete(a.weekTeamsBuf, k)
	}

	for i := range a.games {
		g := &a.games[i]
		drawKey := g.DrawKey()
		weekKey := a.pool.WeekOf[drawKey]

		if a.drawTeamsBuf[drawKey] == nil {
			a.drawTeamsBuf[drawKey] = make(map[int]bool)
		}
		if a.drawTeamsBuf[drawKey][g.Team1ID] || a.drawTeamsBuf[drawKey][g.Team2ID] {
			return true
		}
		a.drawTeamsBuf[drawKey][g.Team1ID] = true
		a.drawTeamsBuf[drawKey][g.Team2ID] = true

		if a.weekTeamsBuf[weekKey] == nil {
			a.weekTeamsBuf[weekKey] = make(map[int]bool)
		}
		if a.weekTeamsBuf[weekKey][g.Team1ID] || a.weekTeamsBuf[weekKey][g.Team2ID] {
			return true
		}
		a.weekTeamsBuf[weekKey][g.Team1ID] = true
		a.weekTeamsBuf[weekKey][g.Team2ID] = true
	}
	return false
}

func (a *Annealer) proposeMove() (undoRecord, bool) {
	r := a.rng.Float64()
	switch {
	case r < 0.35:
		return a.swapMove()
	case r < 0.60:
		return a.relocateMove()
	case r < 0.85:
		return a.cycleMove()
	default:
		return a.positionMove()
	}
}

// Run executes the annealing loop until budgetMs elapses, returning
// the best-scoring snapshot observed (or the input unchanged if there
// are fewer than 2 games).
func (a *Annealer) Run(budgetMs int, onProgress ProgressFunc) ([]models.GeneratedGame, float64) {
	if len(a.games) < 2 {
		return a.games, a.score()
	}

	start := time.Now()
	budget := time.Duration(budgetMs) * time.Millisecond

	currentScore := a.score()
	best := make([]models.GeneratedGame, len(a.games))
	copy(best, a.games)
	bestScore := currentScore

	improvements := 0
	iterations := 0
	lastReport := start

	cooling := NewExponentialCooling(currentScore)

	for {
		elapsed := time.Since(start)
		if elapsed >= budget {
			break
		}
		p := float64(elapsed) / float64(budget)
		if p > 1 {
			p = 1
		}
		temperature := cooling.Temperature(p)

		rec, ok := a.proposeMove()
		iterations++
		if !ok {
			continue
		}

		if a.violatesHardConstraints() {
			a.undo(rec)
			continue
		}

		newScore := a.score()
		delta := newScore - currentScore

		accept := delta <= 0
		if !accept && temperature > 0 {
			accept = a.rng.Float64() < math.Exp(-delta/temperature)
		}

		if accept {
			currentScore = newScore
			if newScore < bestScore {
				bestScore = newScore
				copy(best, a.games)
				improvements++
			}
		} else {
			a.undo(rec)
		}

		if onProgress != nil && time.Since(lastReport) >= 500*time.Millisecond {
			lastReport = time.Now()
			percent := 80 + int(math.Round(p*19))
			if percent > 99 {
				percent = 99
			}
			msg := fmt.Sprintf("%d improvements, score %.2f, %dk iter, %ds",
				improvements, bestScore, iterations/1000, int(time.Since(start).Seconds()))
			onProgress(percent, msg)
		}
	}

	return best, bestScore
}
