package models

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// DefaultOptimizationTimeBudgetMs is used when ScheduleInput omits it.
const DefaultOptimizationTimeBudgetMs = 30000

// ScheduleInput is the generator's sole entry-point payload.
type ScheduleInput struct {
	Strategies               []Strategy   `json:"strategies" validate:"dive"`
	Teams                    []Team       `json:"teams" validate:"dive"`
	Divisions                []Division   `json:"divisions" validate:"dive"`
	DrawSlots                []DrawSlot   `json:"drawSlots" validate:"dive"`
	ByeRequests              []ByeRequest `json:"byeRequests" validate:"dive"`
	Seed                     uint32       `json:"seed"`
	OptimizationTimeBudgetMs int          `json:"optimizationTimeBudgetMs"`
}

// Normalize fills in field defaults (e.g. zero time budget -> default).
func (in *ScheduleInput) Normalize() {
	if in.OptimizationTimeBudgetMs == 0 {
		in.OptimizationTimeBudgetMs = DefaultOptimizationTimeBudgetMs
	}
}

// Validate aggregates every structural problem in the input rather than
// stopping at the first. A strategy referencing a drawSlotKey that
// doesn't exist in DrawSlots is NOT an error here: such references are
// silently ignored at generation time.
func (in *ScheduleInput) Validate() error {
	var result *multierror.Error

	divisionIDs := make(map[int]struct{}, len(in.Divisions))
	for i := range in.Divisions {
		if err := in.Divisions[i].Validate(); err != nil {
			result = multierror.Append(result, err)
		}
		divisionIDs[in.Divisions[i].ID] = struct{}{}
	}

	teamIDs := make(map[int]struct{}, len(in.Teams))
	for i := range in.Teams {
		if err := in.Teams[i].Validate(); err != nil {
			result = multierror.Append(result, err)
			continue
		}
		if _, ok := divisionIDs[in.Teams[i].DivisionID]; !ok {
			result = multierror.Append(result, fmt.Errorf(
				"team %d references unknown division %d", in.Teams[i].ID, in.Teams[i].DivisionID))
		}
		if _, dup := teamIDs[in.Teams[i].ID]; dup {
			result = multierror.Append(result, fmt.Errorf("duplicate team id %d", in.Teams[i].ID))
		}
		teamIDs[in.Teams[i].ID] = struct{}{}
	}

	sheetIDs := make(map[int]struct{})
	for i := range in.DrawSlots {
		if err := in.DrawSlots[i].Validate(); err != nil {
			result = multierror.Append(result, err)
			continue
		}
		for _, sheet := range in.DrawSlots[i].Sheets {
			sheetIDs[sheet.ID] = struct{}{}
		}
	}

	for i := range in.ByeRequests {
		if err := in.ByeRequests[i].Validate(); err != nil {
			result = multierror.Append(result, err)
		}
	}

	for i := range in.Strategies {
		if err := in.Strategies[i].Validate(); err != nil {
			result = multierror.Append(result, err)
			continue
		}
		if in.Strategies[i].IsIntraDivision {
			if _, ok := divisionIDs[*in.Strategies[i].DivisionID]; !ok {
				result = multierror.Append(result, fmt.Errorf(
					"strategy %d references unknown division %d", in.Strategies[i].LocalID, *in.Strategies[i].DivisionID))
			}
		}
	}

	if result != nil {
		return result.ErrorOrNil()
	}
	return nil
}
