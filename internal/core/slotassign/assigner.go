// Package slotassign implements the three-tier greedy placement that
// binds matchups to concrete (date,time,sheet) slots, preferring to
// fill already-active draws before opening new ones, and to fill
// already-active weeks before opening a new week.
package slotassign

import (
	"math"

	"github.com/icedraw/schedgen/internal/core/models"
	"github.com/icedraw/schedgen/internal/core/scoring"
	"github.com/icedraw/schedgen/internal/prng"
)

const noAvailableSlotReason = "No available slot without conflicts."

// Result is the output of one Assign run.
type Result struct {
	Games         []models.GeneratedGame
	Unschedulable []models.UnschedulableMatchup
	Pool          *SlotPool
}

// ProgressFunc is invoked after every matchup placement attempt,
// reporting how many of the total matchups have been processed so far.
type ProgressFunc func(processed, total int)

// Assign runs the three-tier greedy search over every round's matchups
// in order.
func Assign(rounds []models.MatchupRound, pool *SlotPool, strategies []models.Strategy, byeMap models.ByeMap, rng *prng.Mulberry32, onProgress ProgressFunc) Result {
	strategyByID := make(map[int]models.Strategy, len(strategies))
	for _, s := range strategies {
		strategyByID[s.LocalID] = s
	}

	t := newTracker(pool)

	var games []models.GeneratedGame
	var unschedulable []models.UnschedulableMatchup

	total := 0
	for _, r := range rounds {
		total += len(r.Matchups)
	}
	processed := 0

	for _, round := range rounds {
		for _, m := range round.Matchups {
			strategy, ok := strategyByID[m.StrategyLocalID]
			if !ok {
				unschedulable = append(unschedulable, models.UnschedulableMatchup{
					Team1ID: m.Team1ID, Team2ID: m.Team2ID, StrategyLocalID: m.StrategyLocalID,
					Reason: noAvailableSlotReason,
				})
				processed++
				if onProgress != nil {
					onProgress(processed, total)
				}
				continue
			}

			best, found := searchTiers(pool, t, strategy, m, byeMap, rng)
			if !found {
				unschedulable = append(unschedulable, models.UnschedulableMatchup{
					Team1ID: m.Team1ID, Team2ID: m.Team2ID, StrategyLocalID: m.StrategyLocalID,
					Reason: noAvailableSlotReason,
				})
				processed++
				if onProgress != nil {
					onProgress(processed, total)
				}
				continue
			}

			games = append(games, commit(t, best, m))
			processed++
			if onProgress != nil {
				onProgress(processed, total)
			}
		}
	}

	return Result{Games: games, Unschedulable: unschedulable, Pool: pool}
}

type candidate struct {
	slot  models.GameSlot
	score float64
}

// searchTiers runs tier 1 (active draws), tier 2 (inactive draws in
// active weeks), then tier 3 (earliest unused week) in order, returning
// the first tier's best candidate.
func searchTiers(pool *SlotPool, t *tracker, strategy models.Strategy, m models.Matchup, byeMap models.ByeMap, rng *prng.Mulberry32) (models.GameSlot, bool) {
	if best, ok := bestInDraws(activeDrawKeys(pool, t), pool, t, strategy, m, byeMap, rng); ok {
		return best, true
	}

	if best, ok := bestInDraws(inactiveDrawsInActiveWeeks(pool, t), pool, t, strategy, m, byeMap, rng); ok {
		return best, true
	}

	for _, week := range pool.OrderedWeeks {
		if t.activeWeeks[week] {
			continue
		}
		draws := pool.DrawsInWeek[week]
		if best, ok := bestInDraws(draws, pool, t, strategy, m, byeMap, rng); ok {
			return best, true
		}
	}

	return models.GameSlot{}, false
}

func activeDrawKeys(pool *SlotPool, t *tracker) []string {
	var keys []string
	for key := range pool.SlotsByDraw {
		if t.activeDraws[key] {
			keys = append(keys, key)
		}
	}
	return sortedKeys(keys)
}

func inactiveDrawsInActiveWeeks(pool *SlotPool, t *tracker) []string {
	var keys []string
	for key := range pool.SlotsByDraw {
		if t.activeDraws[key] {
			continue
		}
		week := pool.WeekOf[key]
		if t.activeWeeks[week] {
			keys = append(keys, key)
		}
	}
	return sortedKeys(keys)
}

func sortedKeys(keys []string) []string {
	// Draw keys are "date|time"; lexical sort matches chronological
	// order for ISO dates and zero-padded times, keeping candidate
	// enumeration (and therefore PRNG draw order) deterministic.
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j-1] > keys[j]; j-- {
			keys[j-1], keys[j] = keys[j], keys[j-1]
		}
	}
	return keys
}

// bestInDraws scores every slot in the given draw keys and returns the
// minimum-scoring valid (finite) candidate, if any.
func bestInDraws(drawKeys []string, pool *SlotPool, t *tracker, strategy models.Strategy, m models.Matchup, byeMap models.ByeMap, rng *prng.Mulberry32) (models.GameSlot, bool) {
	var best *candidate
	for _, drawKey := range drawKeys {
		for _, slot := range pool.SlotsByDraw[drawKey] {
			score := scoreCandidate(slot, strategy, m, t, byeMap, rng)
			if math.IsInf(score, 1) {
				continue
			}
			if best == nil || score < best.score {
				best = &candidate{slot: slot, score: score}
			}
		}
	}
	if best == nil {
		return models.GameSlot{}, false
	}
	return best.slot, true
}

// scoreCandidate hard-rejects invalid placements with +Inf, else
// returns the weighted soft-constraint score described in spec §4.3.
func scoreCandidate(slot models.GameSlot, strategy models.Strategy, m models.Matchup, t *tracker, byeMap models.ByeMap, rng *prng.Mulberry32) float64 {
	drawKey := slot.DrawKey()
	weekKey := t.weekOf(slot)

	if t.occupied[slot.Key()] {
		return math.Inf(1)
	}
	if _, allowed := strategy.SlotKeySet()[drawKey]; !allowed {
		return math.Inf(1)
	}
	if t.teamInDraw(drawKey, m.Team1ID) || t.teamInDraw(drawKey, m.Team2ID) {
		return math.Inf(1)
	}
	if t.teamInWeek(weekKey, m.Team1ID) || t.teamInWeek(weekKey, m.Team2ID) {
		return math.Inf(1)
	}

	var score float64
	score += float64(t.drawGameCounts[drawKey]) * scoring.DrawFillBalance

	candidateGame := models.GeneratedGame{
		Team1ID: m.Team1ID, Team2ID: m.Team2ID,
		GameDate: slot.Date, GameTime: slot.Time, SheetID: slot.SheetID,
	}
	score += scoring.ByePenalty(candidateGame, byeMap)

	score += float64(t.drawTimeCount(m.Team1ID, slot.Time)) * scoring.DrawTimeBalance * 0.5
	score += float64(t.drawTimeCount(m.Team2ID, slot.Time)) * scoring.DrawTimeBalance * 0.5

	score += float64(t.sheetCount(m.Team1ID, slot.SheetID)) * scoring.SheetBalance * 0.5
	score += float64(t.sheetCount(m.Team2ID, slot.SheetID)) * scoring.SheetBalance * 0.5

	p1 := t.position(m.Team1ID)
	t1Diff := p1.AsTeam1 - p1.AsTeam2
	if t1Diff > 0 {
		score += float64(t1Diff) * scoring.PositionBalance * 0.5
	}

	p2 := t.position(m.Team2ID)
	t2Diff := p2.AsTeam1 - p2.AsTeam2
	if -t2Diff > 0 {
		score += float64(-t2Diff) * scoring.PositionBalance * 0.5
	}

	score += rng.Float64() * 0.01

	return score
}

// weekOf resolves a slot's ISO Monday-anchored week key, caching per
// draw key (populated once at pool-build time).
func (t *tracker) weekOf(slot models.GameSlot) string {
	return t.weekCache[slot.DrawKey()]
}

// commit binds the matchup to the winning slot, optimizes team order
// for position balance, and updates every tracking structure.
func commit(t *tracker, slot models.GameSlot, m models.Matchup) models.GeneratedGame {
	team1, team2 := m.Team1ID, m.Team2ID

	p1 := t.position(team1)
	p2 := t.position(team2)
	if (p1.AsTeam1 - p1.AsTeam2) > (p2.AsTeam1 - p2.AsTeam2) {
		team1, team2 = team2, team1
	}

	drawKey := slot.DrawKey()
	weekKey := t.weekOf(slot)

	t.occupied[slot.Key()] = true

	if t.drawTeams[drawKey] == nil {
		t.drawTeams[drawKey] = make(map[int]bool)
	}
	t.drawTeams[drawKey][team1] = true
	t.drawTeams[drawKey][team2] = true

	if t.weekTeams[weekKey] == nil {
		t.weekTeams[weekKey] = make(map[int]bool)
	}
	t.weekTeams[weekKey][team1] = true
	t.weekTeams[weekKey][team2] = true

	t.drawGameCounts[drawKey]++

	if t.teamDrawTime[team1] == nil {
		t.teamDrawTime[team1] = make(map[string]int)
	}
	if t.teamDrawTime[team2] == nil {
		t.teamDrawTime[team2] = make(map[string]int)
	}
	t.teamDrawTime[team1][slot.Time]++
	t.teamDrawTime[team2][slot.Time]++

	if t.teamSheet[team1] == nil {
		t.teamSheet[team1] = make(map[int]int)
	}
	if t.teamSheet[team2] == nil {
		t.teamSheet[team2] = make(map[int]int)
	}
	t.teamSheet[team1][slot.SheetID]++
	t.teamSheet[team2][slot.SheetID]++

	t.position(team1).AsTeam1++
	t.position(team2).AsTeam2++

	t.activeDraws[drawKey] = true
	if !t.activeWeeks[weekKey] {
		t.activeWeeks[weekKey] = true
		t.usedWeeksInOrder = append(t.usedWeeksInOrder, weekKey)
	}

	return models.GeneratedGame{
		Team1ID: team1, Team2ID: team2,
		GameDate: slot.Date, GameTime: slot.Time, SheetID: slot.SheetID,
		StrategyLocalID: m.StrategyLocalID,
	}
}
