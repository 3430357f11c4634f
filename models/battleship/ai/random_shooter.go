package ai

import (
	mb "github.com/mahdiarv/seabattle-backend/models/battleship"
)

// RandomShooter is the easy strategy: uniform random over the
// not-yet-fired cells, no reaction to outcomes.
type RandomShooter struct{}

var _ Strategy = RandomShooter{}

func (RandomShooter) ChooseTarget(mem *TargetMemory) mb.Coordinates {
	c, ok := mem.randomUntried(nil)
	if !ok {
		// The game is bounded by the cell count and ends before
		// exhaustion; reaching this is a turn-loop defect.
		panic("ai: no untried cell left to target")
	}
	return c
}

func (RandomShooter) ProcessResult(*TargetMemory, mb.Coordinates, mb.ShotOutcome) {}
