package ai

import (
	mb "github.com/mahdiarv/seabattle-backend/models/battleship"
)

// SeekAndDestroy is the medium strategy. It shoots randomly until a
// hit, then probes the hit's orthogonal neighbors front-to-back so
// the current ship is walked contiguously before diverging.
type SeekAndDestroy struct{}

var _ Strategy = SeekAndDestroy{}

func (SeekAndDestroy) ChooseTarget(mem *TargetMemory) mb.Coordinates {
	if c, ok := mem.Dequeue(); ok {
		return c
	}
	return RandomShooter{}.ChooseTarget(mem)
}

// ProcessResult queues the up-to-4 in-bounds, unfired neighbors of a
// hit. Sinking a ship discards the whole queue: leftover candidates
// would belong to a different, not-yet-found ship, and returning to
// random search keeps the policy simple and deterministic.
func (SeekAndDestroy) ProcessResult(mem *TargetMemory, coord mb.Coordinates, outcome mb.ShotOutcome) {
	if outcome.ShipSunk {
		mem.ClearQueue()
		return
	}

	if outcome.Hit {
		for _, n := range coord.Neighbors() {
			mem.Enqueue(n)
		}
	}
}
