package optimizer

import "github.com/icedraw/schedgen/internal/core/models"

// moveKind tags which of the four proposal shapes an undo record came
// from.
type moveKind int

const (
	moveSwap moveKind = iota
	moveRelocate
	moveCycle
	movePosition
)

// undoRecord captures enough state to reverse exactly one move.
type undoRecord struct {
	kind moveKind

	i, j, k int

	prevI models.GeneratedGame
	prevJ models.GeneratedGame
	prevK models.GeneratedGame

	freedSlotKey string
	takenSlotKey string
}

func snapshotSlot(g models.GeneratedGame) models.GeneratedGame {
	return g
}

// swapMove exchanges the (date,time,sheet) of two distinct games. The
// occupied-slot set is unchanged: the same two keys are just reassigned
// between the two games.
func (a *Annealer) swapMove() (undoRecord, bool) {
	if len(a.games) < 2 {
		return undoRecord{}, false
	}
	i := a.rng.Intn(len(a.games))
	j := a.rng.Intn(len(a.games))
	for attempts := 0; attempts < 30 && j == i; attempts++ {
		j = a.rng.Intn(len(a.games))
	}
	if i == j {
		return undoRecord{}, false
	}

	rec := undoRecord{kind: moveSwap, i: i, j: j, prevI: snapshotSlot(a.games[i]), prevJ: snapshotSlot(a.games[j])}

	gi, gj := a.games[i], a.games[j]
	a.games[i].GameDate, a.games[i].GameTime, a.games[i].SheetID = gj.GameDate, gj.GameTime, gj.SheetID
	a.games[j].GameDate, a.games[j].GameTime, a.games[j].SheetID = gi.GameDate, gi.GameTime, gi.SheetID

	return rec, true
}

// relocateMove moves one random game to an unoccupied pool slot whose
// draw was already active at the start of the run.
func (a *Annealer) relocateMove() (undoRecord, bool) {
	if len(a.games) == 0 {
		return undoRecord{}, false
	}
	idx := a.rng.Intn(len(a.games))

	for attempts := 0; attempts < 30; attempts++ {
		slot := a.pool.Slots[a.rng.Intn(len(a.pool.Slots))]
		if !a.activeDrawKeys[slot.DrawKey()] {
			continue
		}
		if a.occupied[slot.Key()] {
			continue
		}

		rec := undoRecord{
			kind:         moveRelocate,
			i:            idx,
			prevI:        snapshotSlot(a.games[idx]),
			freedSlotKey: a.games[idx].Slot().Key(),
			takenSlotKey: slot.Key(),
		}

		delete(a.occupied, rec.freedSlotKey)
		a.occupied[rec.takenSlotKey] = true

		a.games[idx].GameDate = slot.Date
		a.games[idx].GameTime = slot.Time
		a.games[idx].SheetID = slot.SheetID

		return rec, true
	}

	return undoRecord{}, false
}

// cycleMove rotates the (date,time,sheet) of three distinct games:
// i takes k's slot, j takes i's, k takes j's.
func (a *Annealer) cycleMove() (undoRecord, bool) {
	if len(a.games) < 3 {
		return undoRecord{}, false
	}

	i := a.rng.Intn(len(a.games))
	j := a.rng.Intn(len(a.games))
	k := a.rng.Intn(len(a.games))
	for attempts := 0; attempts < 30 && (i == j || j == k || i == k); attempts++ {
		i = a.rng.Intn(len(a.games))
		j = a.rng.Intn(len(a.games))
		k = a.rng.Intn(len(a.games))
	}
	if i == j || j == k || i == k {
		return undoRecord{}, false
	}

	rec := undoRecord{
		kind: moveCycle, i: i, j: j, k: k,
		prevI: snapshotSlot(a.games[i]), prevJ: snapshotSlot(a.games[j]), prevK: snapshotSlot(a.games[k]),
	}

	gi, gj, gk := a.games[i], a.games[j], a.games[k]
	a.games[i].GameDate, a.games[i].GameTime, a.games[i].SheetID = gk.GameDate, gk.GameTime, gk.SheetID
	a.games[j].GameDate, a.games[j].GameTime, a.games[j].SheetID = gi.GameDate, gi.GameTime, gi.SheetID
	a.games[k].GameDate, a.games[k].GameTime, a.games[k].SheetID = gj.GameDate, gj.GameTime, gj.SheetID

	return rec, true
}

// positionMove flips team1/team2 on a random game.
func (a *Annealer) positionMove() (undoRecord, bool) {
	if len(a.games) == 0 {
		return undoRecord{}, false
	}
	idx := a.rng.Intn(len(a.games))
	rec := undoRecord{kind: movePosition, i: idx, prevI: snapshotSlot(a.games[idx])}
	a.games[idx].Team1ID, a.games[idx].Team2ID = a.games[idx].Team2ID, a.games[idx].Team1ID
	return rec, true
}

// undo reverses a move using its record.
func (a *Annealer) undo(rec undoRecord) {
	switch rec.kind {
	case moveSwap:
		a.games[rec.i] = rec.prevI
		a.games[rec.j] = rec.prevJ
	case moveRelocate:
		a.games[rec.i] = rec.prevI
		delete(a.occupied, rec.takenSlotKey)
		a.occupied[rec.freedSlotKey] = true
	case moveCycle:
		a.games[rec.i] = rec.prevI
		a.games[rec.j] = rec.prevJ
		a.games[rec.k] = rec.prevK
	case movePosition:
		a.games[rec.i] = rec.prevI
	}
}
