package ai

import (
	mb "github.com/mahdiarv/seabattle-backend/models/battleship"
)

// Opponent binds one strategy to one TargetMemory for a game session.
// It only ever sees the target grid through Fire outcomes; ship
// layout is never handed to a strategy.
type Opponent struct {
	strategy Strategy
	memory   *TargetMemory
}

func NewOpponent(difficulty uint8, gridSize int, seed int64) (*Opponent, error) {
	strategy, err := NewStrategy(difficulty)
	if err != nil {
		return nil, err
	}

	return &Opponent{
		strategy: strategy,
		memory:   NewTargetMemory(gridSize, seed),
	}, nil
}

func (o *Opponent) Memory() *TargetMemory {
	return o.memory
}

// TakeTurn runs one atomic select-fire-update sequence against the
// target grid. A repeat-fire error out of Fire means the strategy
// contract was broken, which is a defect, not a recoverable state.
func (o *Opponent) TakeTurn(target *mb.Grid) (mb.Coordinates, mb.ShotOutcome, error) {
	coord := o.strategy.ChooseTarget(o.memory)

	outcome, err := target.Fire(coord)
	if err != nil {
		return mb.Coordinates{}, mb.ShotOutcome{}, err
	}

	o.memory.MarkFired(coord)
	o.strategy.ProcessResult(o.memory, coord, outcome)
	return coord, outcome, nil
}
