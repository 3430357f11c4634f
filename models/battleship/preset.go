package battleship

import (
	cerr "github.com/mahdiarv/seabattle-backend/internal/error"
)

const (
	GameDifficultyEasy uint8 = iota
	GameDifficultyNormal
	GameDifficultyHard
)

const (
	BoardPresetSmall uint8 = iota
	BoardPresetMedium
	BoardPresetBig
)

// BoardConfig is applied uniformly to both sides' grids.
type BoardConfig struct {
	GridSize  int
	ShipSizes []int
}

var boardConfigs = map[uint8]BoardConfig{
	BoardPresetSmall:  {GridSize: 5, ShipSizes: []int{2, 2, 3}},
	BoardPresetMedium: {GridSize: 6, ShipSizes: []int{2, 2, 2, 3}},
	BoardPresetBig:    {GridSize: 8, ShipSizes: []int{2, 2, 2, 3, 4}},
}

func ConfigForPreset(preset uint8) (BoardConfig, error) {
	cfg, prs := boardConfigs[preset]
	if !prs {
		return BoardConfig{}, cerr.ErrInvalidBoardPreset()
	}
	return cfg, nil
}

func IsDifficultyValid(difficulty uint8) bool {
	return difficulty == GameDifficultyEasy || difficulty == GameDifficultyNormal || difficulty == GameDifficultyHard
}
