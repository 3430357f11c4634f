package connection

import (
	mb "github.com/mahdiarv/seabattle-backend/models/battleship"
)

type ReqCreateGame struct {
	GameDifficulty uint8 `json:"game_difficulty"`
	BoardPreset    uint8 `json:"board_preset"`
}

type ReqPlaceShips struct {
	GameUuid string             `json:"game_uuid"`
	Ships    [][]mb.Coordinates `json:"ships"`
}

type ReqAttack struct {
	GameUuid string `json:"game_uuid"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
}
