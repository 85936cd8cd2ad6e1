package models

import (
	"fmt"
)

// ByeRequest expresses a team's preference to be off on a given date.
// Priority 1 is most preferred.
type ByeRequest struct {
	TeamID   int    `json:"teamId" validate:"required"`
	DrawDate string `json:"drawDate" validate:"required"`
	Priority int    `json:"priority" validate:"required,min=1"`
}

// Validate ensures the bye request has well-formed data.
func (b *ByeRequest) Validate() error {
	if b.Priority < 1 {
		return fmt.Errorf("bye request for team %d has non-positive priority %d", b.TeamID, b.Priority)
	}
	if _, err := ParseDate(b.DrawDate); err != nil {
		return fmt.Errorf("bye request date %q is not YYYY-MM-DD: %w", b.DrawDate, err)
	}
	return nil
}

// ByeMap groups bye requests by draw date.
type ByeMap map[string][]ByeRequest

// BuildByeMap groups bye requests by drawDate.
func BuildByeMap(requests []ByeRequest) ByeMap {
	m := make(ByeMap)
	for _, r := range requests {
		m[r.DrawDate] = append(m[r.DrawDate], r)
	}
	return m
}
