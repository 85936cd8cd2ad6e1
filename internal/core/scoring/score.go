package scoring

import (
	"math"

	"github.com/icedraw/schedgen/internal/core/models"
)

// BuildByeMap groups bye requests by draw date.
func BuildByeMap(requests []models.ByeRequest) models.ByeMap {
	return models.BuildByeMap(requests)
}

// ByePenalty sums, for each bye request on game.GameDate whose team
// equals Team1ID or Team2ID: 10000 for priority 1, 1000 for priority 2,
// else 100/priority.
func ByePenalty(game models.GeneratedGame, byeMap models.ByeMap) float64 {
	var total float64
	for _, req := range byeMap[game.GameDate] {
		if req.TeamID != game.Team1ID && req.TeamID != game.Team2ID {
			continue
		}
		switch {
		case req.Priority == 1:
			total += ByePriority1
		case req.Priority == 2:
			total += ByePriority2
		default:
			total += ByePriorityLowBase / float64(req.Priority)
		}
	}
	return total
}

// Variance returns the population variance (divide by N). Empty input
// yields 0.
func Variance(xs []int) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += float64(x)
	}
	mean := sum / float64(len(xs))

	var sq float64
	for _, x := range xs {
		d := float64(x) - mean
		sq += d * d
	}
	return sq / float64(len(xs))
}

// ComputeTeamStats builds per-team counts from a finished set of games.
func ComputeTeamStats(games []models.GeneratedGame, teamIDs []int, byeMap models.ByeMap) []models.TeamStats {
	statsByTeam := make(map[int]*models.TeamStats, len(teamIDs))
	order := make([]int, 0, len(teamIDs))
	for _, id := range teamIDs {
		if _, ok := statsByTeam[id]; !ok {
			statsByTeam[id] = models.NewTeamStats(id)
			order = append(order, id)
		}
	}

	ensure := func(id int) *models.TeamStats {
		if s, ok := statsByTeam[id]; ok {
			return s
		}
		s := models.NewTeamStats(id)
		statsByTeam[id] = s
		order = append(order, id)
		return s
	}

	for i := range games {
		g := &games[i]
		s1 := ensure(g.Team1ID)
		s2 := ensure(g.Team2ID)

		s1.AsTeam1++
		s2.AsTeam2++

		s1.DrawTimeCounts[g.GameTime]++
		s2.DrawTimeCounts[g.GameTime]++
		s1.SheetCounts[g.SheetID]++
		s2.SheetCounts[g.SheetID]++

		for _, req := range byeMap[g.GameDate] {
			if req.TeamID == g.Team1ID {
				s1.ByeConflicts = append(s1.ByeConflicts, models.ByeConflict{DrawDate: g.GameDate, Priority: req.Priority})
			}
			if req.TeamID == g.Team2ID {
				s2.ByeConflicts = append(s2.ByeConflicts, models.ByeConflict{DrawDate: g.GameDate, Priority: req.Priority})
			}
		}
	}

	out := make([]models.TeamStats, 0, len(order))
	for _, id := range order {
		out = append(out, *statsByTeam[id])
	}
	return out
}

// TotalScheduleScore sums bye penalties over all games plus per-team
// balance penalties (draw-time variance, sheet variance, position
// imbalance).
func TotalScheduleScore(games []models.GeneratedGame, teamIDs []int, byeMap models.ByeMap) float64 {
	if len(games) == 0 {
		return 0
	}

	var total float64
	for i := range games {
		total += ByePenalty(games[i], byeMap)
	}

	stats := ComputeTeamStats(games, teamIDs, byeMap)
	for _, s := range stats {
		drawTimeCounts := make([]int, 0, len(s.DrawTimeCounts))
		for _, c := range s.DrawTimeCounts {
			drawTimeCounts = append(drawTimeCounts, c)
		}
		sheetCounts := make([]int, 0, len(s.SheetCounts))
		for _, c := range s.SheetCounts {
			sheetCounts = append(sheetCounts, c)
		}

		total += Variance(drawTimeCounts) * DrawTimeBalance
		total += Variance(sheetCounts) * SheetBalance

		diff := float64(s.AsTeam1 - s.AsTeam2)
		total += diff * diff * PositionBalance
	}

	return total
}

// DrawCapacities maps a "date|time" key to the number of available
// sheets at that draw.
type DrawCapacities map[string]int

// CompactnessScore penalizes spreading games across more draws than
// necessary, and leaving more than one sheet empty in a used draw.
func CompactnessScore(games []models.GeneratedGame, drawCapacities DrawCapacities, numSheets int) float64 {
	if len(games) == 0 || numSheets == 0 {
		return 0
	}

	target := int(math.Ceil(float64(len(games)) / float64(numSheets)))

	counts := make(map[string]int)
	for i := range games {
		counts[games[i].DrawKey()]++
	}

	actual := len(counts)

	var score float64
	if diff := actual - target; diff > 0 {
		score += float64(diff) * CompactnessExtraDraw
	}

	var totalEmpty int
	var multiEmptyDraws int
	for key, count := range counts {
		cap := drawCapacities[key]
		emp := cap - count
		if emp > 0 {
			totalEmpty += emp
		}
		if emp > 1 {
			multiEmptyDraws++
		}
	}

	score += float64(multiEmptyDraws) * CompactnessMultiEmpty

	if totalEmpty >= numSheets {
		score += float64(totalEmpty-numSheets+1) * CompactnessExcessEmpties
	}

	return score
}
