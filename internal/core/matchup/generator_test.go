package matchup

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/icedraw/schedgen/internal/core/models"
)

func divisionID(id int) *int { return &id }

func teamsIn(divID int, ids ...int) []models.Team {
	out := make([]models.Team, 0, len(ids))
	for _, id := range ids {
		out = append(out, models.Team{ID: id, DivisionID: divID})
	}
	return out
}

func TestGenerateIntraDivisionEvenTeams(t *testing.T) {
	teams := teamsIn(1, 1, 2, 3, 4)
	strategy := models.Strategy{LocalID: 1, IsIntraDivision: true, DivisionID: divisionID(1), GamesPerTeam: 1, DrawSlotKeys: []string{"x"}}

	rounds := Generate([]models.Strategy{strategy}, teams)

	require.Len(t, rounds, 3)
	total := 0
	for _, r := range rounds {
		require.Len(t, r.Matchups, 2)
		seen := map[int]bool{}
		for _, m := range r.Matchups {
			require.NotEqual(t, m.Team1ID, m.Team2ID)
			require.False(t, seen[m.Team1ID])
			require.False(t, seen[m.Team2ID])
			seen[m.Team1ID] = true
			seen[m.Team2ID] = true
			total++
		}
	}
	require.Equal(t, 6, total)
}

func TestGenerateIntraDivisionOddTeamsByeOncePerTeam(t *testing.T) {
	teams := teamsIn(1, 1, 2, 3, 4, 5)
	strategy := models.Strategy{LocalID: 1, IsIntraDivision: true, DivisionID: divisionID(1), GamesPerTeam: 1, DrawSlotKeys: []string{"x"}}

	rounds := Generate([]models.Strategy{strategy}, teams)
	require.Len(t, rounds, 5)

	played := map[int]int{}
	for _, r := range rounds {
		require.Len(t, r.Matchups, 2)
		for _, m := range r.Matchups {
			played[m.Team1ID]++
			played[m.Team2ID]++
		}
	}
	for _, id := range []int{1, 2, 3, 4, 5} {
		require.Equal(t, 4, played[id], "team %d should play 4 times with one bye round", id)
	}
}

func TestGenerateIntraDivisionDoubleRoundRobinEachPairPlaysTwice(t *testing.T) {
	teams := teamsIn(1, 1, 2, 3, 4)
	strategy := models.Strategy{LocalID: 1, IsIntraDivision: true, DivisionID: divisionID(1), GamesPerTeam: 2, DrawSlotKeys: []string{"x"}}

	rounds := Generate([]models.Strategy{strategy}, teams)
	require.Len(t, rounds, 6)

	pairCounts := map[[2]int]int{}
	for _, r := range rounds {
		for _, m := range r.Matchups {
			key := [2]int{m.Team1ID, m.Team2ID}
			if key[0] > key[1] {
				key[0], key[1] = key[1], key[0]
			}
			pairCounts[key]++
		}
	}
	for pair, count := range pairCounts {
		require.Equal(t, 2, count, "pair %v should play exactly twice", pair)
	}
}

func TestGenerateCrossDivision(t *testing.T) {
	teams := append(teamsIn(1, 1, 2, 3), teamsIn(2, 4, 5, 6)...)
	strategy := models.Strategy{LocalID: 1, IsIntraDivision: false, GamesPerTeam: 1, DrawSlotKeys: []string{"x"}}

	rounds := Generate([]models.Strategy{strategy}, teams)

	total := 0
	for _, r := range rounds {
		for _, m := range r.Matchups {
			total++
			sameDivision := (m.Team1ID <= 3) == (m.Team2ID <= 3)
			require.False(t, sameDivision, "cross-division strategy must not pair same-division teams")
		}
	}
	require.Equal(t, 9, total)
}

func TestGenerateEmptyInputsProduceNoRounds(t *testing.T) {
	require.Nil(t, Generate(nil, teamsIn(1, 1, 2)))
	require.Nil(t, Generate([]models.Strategy{{LocalID: 1, IsIntraDivision: true, DivisionID: divisionID(1), GamesPerTeam: 1}}, nil))
}
