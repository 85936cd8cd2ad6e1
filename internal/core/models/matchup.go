package models

// Matchup is an unordered pair of teams produced by one strategy layer.
// Team order may later be flipped by the slot assigner for position
// balance, so Team1ID/Team2ID are mutable fields, not an identity.
type Matchup struct {
	Team1ID         int
	Team2ID         int
	StrategyLocalID int
}

// MatchupRound is a set of matchups in which no team appears twice.
type MatchupRound struct {
	Matchups []Matchup
}

// HasTeam reports whether any matchup in the round already involves teamID.
func (r *MatchupRound) HasTeam(teamID int) bool {
	for _, m := range r.Matchups {
		if m.Team1ID == teamID || m.Team2ID == teamID {
			return true
		}
	}
	return false
}
