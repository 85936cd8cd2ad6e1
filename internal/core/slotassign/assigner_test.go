package slotassign

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/icedraw/schedgen/internal/core/models"
	"github.com/icedraw/schedgen/internal/prng"
)

func sheets(available ...int) []models.Sheet {
	out := make([]models.Sheet, 0, len(available))
	for _, id := range available {
		out = append(out, models.Sheet{ID: id, IsAvailable: true})
	}
	return out
}

func TestBuildSlotPoolFiltersToReferencedDraws(t *testing.T) {
	drawSlots := []models.DrawSlot{
		{Date: "2024-01-08", Time: "18:00", Sheets: sheets(1, 2)},
		{Date: "2024-01-15", Time: "18:00", Sheets: sheets(1, 2)},
	}
	strategy := models.Strategy{LocalID: 1, DrawSlotKeys: []string{"2024-01-08|18:00"}}

	pool, err := BuildSlotPool(drawSlots, []models.Strategy{strategy})
	require.NoError(t, err)
	require.Len(t, pool.Slots, 2)
	require.Equal(t, 2, pool.NumSheets)
	require.Contains(t, pool.SlotsByDraw, "2024-01-08|18:00")
	require.NotContains(t, pool.SlotsByDraw, "2024-01-15|18:00")
}

func TestBuildSlotPoolSkipsUnavailableSheets(t *testing.T) {
	drawSlots := []models.DrawSlot{
		{Date: "2024-01-08", Time: "18:00", Sheets: []models.Sheet{
			{ID: 1, IsAvailable: true},
			{ID: 2, IsAvailable: false},
		}},
	}
	strategy := models.Strategy{LocalID: 1, DrawSlotKeys: []string{"2024-01-08|18:00"}}

	pool, err := BuildSlotPool(drawSlots, []models.Strategy{strategy})
	require.NoError(t, err)
	require.Len(t, pool.Slots, 1)
}

func TestAssignFourTeamSingleRoundRobin(t *testing.T) {
	drawSlots := []models.DrawSlot{
		{Date: "2024-01-08", Time: "18:00", Sheets: sheets(1, 2)},
		{Date: "2024-01-15", Time: "18:00", Sheets: sheets(1, 2)},
		{Date: "2024-01-22", Time: "18:00", Sheets: sheets(1, 2)},
	}
	strategy := models.Strategy{LocalID: 1, IsIntraDivision: true, GamesPerTeam: 1,
		DrawSlotKeys: []string{"2024-01-08|18:00", "2024-01-15|18:00", "2024-01-22|18:00"}}
	divID := 1
	strategy.DivisionID = &divID

	teams := []models.Team{{ID: 1, DivisionID: 1}, {ID: 2, DivisionID: 1}, {ID: 3, DivisionID: 1}, {ID: 4, DivisionID: 1}}

	rounds := generateRoundsForTest(strategy, teams)
	pool, err := BuildSlotPool(drawSlots, []models.Strategy{strategy})
	require.NoError(t, err)

	rng := prng.New(1)
	result := Assign(rounds, pool, []models.Strategy{strategy}, models.ByeMap{}, rng, nil)

	require.Len(t, result.Games, 6)
	require.Empty(t, result.Unschedulable)

	draws := map[string]int{}
	for _, g := range result.Games {
		draws[g.DrawKey()]++
	}
	require.Len(t, draws, 3)
	for _, count := range draws {
		require.Equal(t, 2, count)
	}
}

func TestAssignUnschedulableWhenCapacityExhausted(t *testing.T) {
	drawSlots := []models.DrawSlot{
		{Date: "2024-01-08", Time: "18:00", Sheets: sheets(1)},
	}
	strategy := models.Strategy{LocalID: 1, IsIntraDivision: false, GamesPerTeam: 3, DrawSlotKeys: []string{"2024-01-08|18:00"}}
	teams := []models.Team{{ID: 1, DivisionID: 1}, {ID: 2, DivisionID: 2}}

	rounds := generateRoundsForTest(strategy, teams)
	pool, err := BuildSlotPool(drawSlots, []models.Strategy{strategy})
	require.NoError(t, err)

	rng := prng.New(1)
	result := Assign(rounds, pool, []models.Strategy{strategy}, models.ByeMap{}, rng, nil)

	require.Len(t, result.Games, 1)
	require.Len(t, result.Unschedulable, 2)
	for _, u := range result.Unschedulable {
		require.Equal(t, noAvailableSlotReason, u.Reason)
	}
}

// generateRoundsForTest builds a minimal round list without importing the
// matchup package, to keep this test package's scope to slot assignment.
func generateRoundsForTest(strategy models.Strategy, teams []models.Team) []models.MatchupRound {
	if strategy.IsIntraDivision {
		var rounds []models.MatchupRound
		n := len(teams)
		ids := make([]int, n)
		for i, tm := range teams {
			ids[i] = tm.ID
		}
		for r := 0; r < n-1; r++ {
			round := models.MatchupRound{}
			for i := 0; i < n/2; i++ {
				round.Matchups = append(round.Matchups, models.Matchup{
					Team1ID: ids[i], Team2ID: ids[n-1-i], StrategyLocalID: strategy.LocalID,
				})
			}
			rounds = append(rounds, round)
			last := ids[n-1]
			copy(ids[2:], ids[1:n-1])
			ids[1] = last
		}
		return rounds
	}

	var matchups []models.Matchup
	for c := 0; c < strategy.GamesPerTeam; c++ {
		for i := 0; i < len(teams); i++ {
			for j := i + 1; j < len(teams); j++ {
				if teams[i].DivisionID == teams[j].DivisionID {
					continue
				}
				matchups = append(matchups, models.Matchup{Team1ID: teams[i].ID, Team2ID: teams[j].ID, StrategyLocalID: strategy.LocalID})
			}
		}
	}
	round := models.MatchupRound{Matchups: matchups}
	return []models.MatchupRound{round}
}
