// Package matchup turns a set of strategies plus teams into an ordered
// list of rounds. It implements the circle method for intra-division
// round robins, a greedy round-packer for cross-division layers, and
// same-priority strategy interleaving.
package matchup

import (
	"sort"

	"github.com/icedraw/schedgen/internal/core/models"
)

const byeSentinel = 0

// Generate produces the full, priority-interleaved list of rounds for
// every strategy in input.
func Generate(strategies []models.Strategy, teams []models.Team) []models.MatchupRound {
	if len(strategies) == 0 || len(teams) < 2 {
		return nil
	}

	teamsByDivision := make(map[int][]int)
	for _, t := range teams {
		teamsByDivision[t.DivisionID] = append(teamsByDivision[t.DivisionID], t.ID)
	}
	for div := range teamsByDivision {
		sort.Ints(teamsByDivision[div])
	}

	allTeamIDs := make([]int, 0, len(teams))
	for _, t := range teams {
		allTeamIDs = append(allTeamIDs, t.ID)
	}
	sort.Ints(allTeamIDs)

	byPriority := make(map[int][]models.Strategy)
	var priorities []int
	for _, s := range strategies {
		if _, seen := byPriority[s.Priority]; !seen {
			priorities = append(priorities, s.Priority)
		}
		byPriority[s.Priority] = append(byPriority[s.Priority], s)
	}
	sort.Ints(priorities)

	var out []models.MatchupRound
	for _, p := range priorities {
		group := byPriority[p]
		perStrategy := make([][]models.MatchupRound, len(group))
		for i, s := range group {
			if s.IsIntraDivision {
				perStrategy[i] = generateIntraDivision(s, teamsByDivision[*s.DivisionID])
			} else {
				perStrategy[i] = generateCrossDivision(s, teams)
			}
		}
		out = append(out, interleave(perStrategy)...)
	}

	return out
}

// interleave emits rounds1[0], rounds2[0], ..., rounds1[1], rounds2[1],
// ..., skipping exhausted lists at their turn.
func interleave(lists [][]models.MatchupRound) []models.MatchupRound {
	var out []models.MatchupRound
	maxLen := 0
	for _, l := range lists {
		if len(l) > maxLen {
			maxLen = len(l)
		}
	}
	for i := 0; i < maxLen; i++ {
		for _, l := range lists {
			if i < len(l) {
				out = append(out, l[i])
			}
		}
	}
	return out
}

// generateIntraDivision applies the circle method to teamIDs, repeating
// the n-1 round sequence gamesPerTeam times.
func generateIntraDivision(s models.Strategy, teamIDs []int) []models.MatchupRound {
	n := len(teamIDs)
	if n < 2 || s.GamesPerTeam <= 0 {
		return nil
	}

	working := make([]int, n)
	copy(working, teamIDs)

	hasBye := n%2 == 1
	if hasBye {
		working = append(working, byeSentinel)
		n++
	}

	roundsInCycle := n - 1
	var cycleRounds []models.MatchupRound
	for r := 0; r < roundsInCycle; r++ {
		round := models.MatchupRound{}
		round.Matchups = append(round.Matchups, models.Matchup{
			Team1ID: working[0], Team2ID: working[1], StrategyLocalID: s.LocalID,
		})
		for i := 1; i < n/2; i++ {
			round.Matchups = append(round.Matchups, models.Matchup{
				Team1ID: working[i+1], Team2ID: working[n-i], StrategyLocalID: s.LocalID,
			})
		}
		round.Matchups = dropByeMatchups(round.Matchups)
		cycleRounds = append(cycleRounds, round)

		rotate(working)
	}

	var out []models.MatchupRound
	for cycle := 0; cycle < s.GamesPerTeam; cycle++ {
		out = append(out, cycleRounds...)
	}
	return out
}

// rotate fixes position 0 and rotates positions 1..n-1 by one (moves
// the last element to the front of the rotating block).
func rotate(teams []int) {
	n := len(teams)
	if n <= 2 {
		return
	}
	last := teams[n-1]
	copy(teams[2:], teams[1:n-1])
	teams[1] = last
}

func dropByeMatchups(matchups []models.Matchup) []models.Matchup {
	out := matchups[:0:0]
	for _, m := range matchups {
		if m.Team1ID == byeSentinel || m.Team2ID == byeSentinel {
			continue
		}
		out = append(out, m)
	}
	return out
}

// generateCrossDivision enumerates every unordered pair of teams from
// different divisions, replicates it gamesPerTeam times, and greedily
// packs the replicated list into rounds.
func generateCrossDivision(s models.Strategy, teams []models.Team) []models.MatchupRound {
	if s.GamesPerTeam <= 0 {
		return nil
	}

	sorted := make([]models.Team, len(teams))
	copy(sorted, teams)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	var pairs []models.Matchup
	for i := 0; i < len(sorted); i++ {
		for j := i + 1; j < len(sorted); j++ {
			if sorted[i].DivisionID == sorted[j].DivisionID {
				continue
			}
			pairs = append(pairs, models.Matchup{
				Team1ID: sorted[i].ID, Team2ID: sorted[j].ID, StrategyLocalID: s.LocalID,
			})
		}
	}
	if len(pairs) == 0 {
		return nil
	}

	var replicated []models.Matchup
	for c := 0; c < s.GamesPerTeam; c++ {
		replicated = append(replicated, pairs...)
	}

	return packRounds(replicated)
}

// packRounds greedily packs an ordered list of matchups into rounds: a
// matchup joins the current round if neither of its teams is already
// present in it.
func packRounds(pending []models.Matchup) []models.MatchupRound {
	remaining := make([]models.Matchup, len(pending))
	copy(remaining, pending)

	var rounds []models.MatchupRound
	for len(remaining) > 0 {
		round := models.MatchupRound{}
		var leftover []models.Matchup
		for _, m := range remaining {
			if round.HasTeam(m.Team1ID) || round.HasTeam(m.Team2ID) {
				leftover = append(leftover, m)
				continue
			}
			round.Matchups = append(round.Matchups, m)
		}
		if len(round.Matchups) == 0 {
			// A full pass added nothing: the remaining matchups can
			// never be packed (e.g. a single pair repeated with no
			// other teams to interleave with). Stop rather than loop.
			break
		}
		rounds = append(rounds, round)
		remaining = leftover
	}
	return rounds
}
