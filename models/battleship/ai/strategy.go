package ai

import (
	cerr "github.com/mahdiarv/seabattle-backend/internal/error"
	mb "github.com/mahdiarv/seabattle-backend/models/battleship"
)

// Strategy picks the next cell to fire at and digests the outcome.
//
// ChooseTarget must never return a coordinate already in the fired
// set; the caller records the coordinate as fired right after the
// shot resolves, regardless of outcome, so the contract stays the
// same across all variants.
type Strategy interface {
	ChooseTarget(mem *TargetMemory) mb.Coordinates
	ProcessResult(mem *TargetMemory, coord mb.Coordinates, outcome mb.ShotOutcome)
}

// NewStrategy maps a game difficulty to its targeting strategy.
func NewStrategy(difficulty uint8) (Strategy, error) {
	switch difficulty {
	case mb.GameDifficultyEasy:
		return RandomShooter{}, nil
	case mb.GameDifficultyNormal:
		return SeekAndDestroy{}, nil
	case mb.GameDifficultyHard:
		return StrategicGenius{}, nil
	default:
		return nil, cerr.ErrInvalidGameDifficulty()
	}
}
