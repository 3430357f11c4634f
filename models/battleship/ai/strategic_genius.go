package ai

import (
	mb "github.com/mahdiarv/seabattle-backend/models/battleship"
)

// Parity of the checkerboard hunt pattern, fixed at game start.
// The smallest ship spans 2 cells, so cells with (x+y)%2 == huntParity
// can never all miss a ship while halving the search space.
const huntParity = 0

// StrategicGenius is the hard strategy: checkerboard hunting until a
// hit, then directional probing. Once two hits of the current streak
// line up, only the two inline extension cells are queued; if both
// are unusable it falls back to four-directional probing.
type StrategicGenius struct{}

var _ Strategy = StrategicGenius{}

func (StrategicGenius) ChooseTarget(mem *TargetMemory) mb.Coordinates {
	if c, ok := mem.Dequeue(); ok {
		return c
	}

	if c, ok := mem.randomUntried(func(c mb.Coordinates) bool {
		return (c.X+c.Y)%2 == huntParity
	}); ok {
		return c
	}

	// Checkerboard exhausted; anything untried goes.
	return RandomShooter{}.ChooseTarget(mem)
}

func (StrategicGenius) ProcessResult(mem *TargetMemory, coord mb.Coordinates, outcome mb.ShotOutcome) {
	if outcome.ShipSunk {
		// Local hunt complete. Queued leftovers likely belong to a
		// different ship; discarding them and resuming the sweep is
		// the documented simplicity tradeoff.
		mem.ClearQueue()
		mem.ClearStreak()
		return
	}

	if !outcome.Hit {
		return
	}

	mem.RecordHit(coord)
	streak := mem.Streak()

	if len(streak) >= 2 && collinear(streak) {
		mem.ClearQueue()
		ahead, behind := inlineExtensions(streak)

		queuedInline := mem.Enqueue(ahead)
		if mem.Enqueue(behind) {
			queuedInline = true
		}
		if queuedInline {
			return
		}

		// Both inline cells invalid or spent; probe around the whole
		// streak four-directionally.
		for _, hit := range streak {
			for _, n := range hit.Neighbors() {
				mem.Enqueue(n)
			}
		}
		return
	}

	for _, n := range coord.Neighbors() {
		mem.Enqueue(n)
	}
}

func collinear(coords []mb.Coordinates) bool {
	sameX, sameY := true, true
	for _, c := range coords[1:] {
		if c.X != coords[0].X {
			sameX = false
		}
		if c.Y != coords[0].Y {
			sameY = false
		}
	}
	return sameX || sameY
}

// inlineExtensions returns the two cells extending the hit streak at
// either end. The streak is known collinear.
func inlineExtensions(streak []mb.Coordinates) (mb.Coordinates, mb.Coordinates) {
	minC, maxC := streak[0], streak[0]

	if streak[0].X == streak[1].X {
		// Horizontal run; extend along Y.
		for _, c := range streak[1:] {
			if c.Y < minC.Y {
				minC = c
			}
			if c.Y > maxC.Y {
				maxC = c
			}
		}
		return mb.NewCoordinates(minC.X, minC.Y-1), mb.NewCoordinates(maxC.X, maxC.Y+1)
	}

	// Vertical run; extend along X.
	for _, c := range streak[1:] {
		if c.X < minC.X {
			minC = c
		}
		if c.X > maxC.X {
			maxC = c
		}
	}
	return mb.NewCoordinates(minC.X-1, minC.Y), mb.NewCoordinates(maxC.X+1, maxC.Y)
}
