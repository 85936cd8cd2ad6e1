package models

import "fmt"

// Strategy describes one round-robin layer.
type Strategy struct {
	LocalID         int      `json:"localId" validate:"required"`
	Priority        int      `json:"priority"`
	IsIntraDivision bool     `json:"isIntraDivision"`
	DivisionID      *int     `json:"divisionId,omitempty"`
	GamesPerTeam    int      `json:"gamesPerTeam" validate:"required"`
	DrawSlotKeys    []string `json:"drawSlotKeys" validate:"required,min=1"`
}

// Validate ensures the strategy has well-formed data.
func (s *Strategy) Validate() error {
	if s.IsIntraDivision && s.DivisionID == nil {
		return fmt.Errorf("strategy %d is intra-division but has no divisionId", s.LocalID)
	}
	if len(s.DrawSlotKeys) == 0 {
		return fmt.Errorf("strategy %d has no drawSlotKeys", s.LocalID)
	}
	return nil
}

// SlotKeySet returns the strategy's drawSlotKeys as a set for fast lookup.
func (s *Strategy) SlotKeySet() map[string]struct{} {
	set := make(map[string]struct{}, len(s.DrawSlotKeys))
	for _, k := range s.DrawSlotKeys {
		set[k] = struct{}{}
	}
	return set
}
