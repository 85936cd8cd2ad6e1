package slotassign

import (
	"sort"

	"github.com/icedraw/schedgen/internal/core/models"
	"github.com/icedraw/schedgen/internal/core/scoring"
)

// SlotPool is the enumerated inventory of assignable (date,time,sheet)
// resources, restricted to draws referenced by at least one strategy.
type SlotPool struct {
	Slots          []models.GameSlot
	SlotsByDraw    map[string][]models.GameSlot
	DrawCapacities scoring.DrawCapacities
	NumSheets      int
	DrawDates      map[string]string // drawKey -> date, for week lookups
	WeekOf         map[string]string // drawKey -> week key
	OrderedWeeks   []string          // distinct week keys, chronological
	DrawsInWeek    map[string][]string
}

// BuildSlotPool enumerates one GameSlot per available sheet for every
// draw slot whose "date|time" key is referenced by at least one strategy.
func BuildSlotPool(drawSlots []models.DrawSlot, strategies []models.Strategy) (*SlotPool, error) {
	allowed := make(map[string]struct{})
	for _, s := range strategies {
		for _, k := range s.DrawSlotKeys {
			allowed[k] = struct{}{}
		}
	}

	pool := &SlotPool{
		SlotsByDraw:    make(map[string][]models.GameSlot),
		DrawCapacities: make(scoring.DrawCapacities),
		DrawDates:      make(map[string]string),
		WeekOf:         make(map[string]string),
		DrawsInWeek:    make(map[string][]string),
	}

	distinctSheets := make(map[int]struct{})
	type dated struct {
		key  string
		date string
	}
	var orderedDraws []dated

	for i := range drawSlots {
		ds := &drawSlots[i]
		key := ds.Key()
		if _, ok := allowed[key]; !ok {
			continue
		}
		if _, seen := pool.SlotsByDraw[key]; !seen {
			orderedDraws = append(orderedDraws, dated{key: key, date: ds.Date})
		}
		for _, sheet := range ds.Sheets {
			if !sheet.IsAvailable {
				continue
			}
			slot := models.GameSlot{Date: ds.Date, Time: ds.Time, SheetID: sheet.ID}
			pool.Slots = append(pool.Slots, slot)
			pool.SlotsByDraw[key] = append(pool.SlotsByDraw[key], slot)
			pool.DrawCapacities[key]++
			distinctSheets[sheet.ID] = struct{}{}
		}
		pool.DrawDates[key] = ds.Date
	}

	pool.NumSheets = len(distinctSheets)

	weekKeys := make(map[string]struct{})
	for _, d := range orderedDraws {
		wk, err := models.WeekKey(d.date)
		if err != nil {
			return nil, err
		}
		pool.WeekOf[d.key] = wk
		if _, ok := weekKeys[wk]; !ok {
			weekKeys[wk] = struct{}{}
			pool.OrderedWeeks = append(pool.OrderedWeeks, wk)
		}
		pool.DrawsInWeek[wk] = append(pool.DrawsInWeek[wk], d.key)
	}
	sort.Strings(pool.OrderedWeeks)

	return pool, nil
}

// IsEmpty reports whether the pool has no assignable slots.
func (p *SlotPool) IsEmpty() bool {
	return len(p.Slots) == 0
}
