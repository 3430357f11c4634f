package connection

import (
	mb "github.com/mahdiarv/seabattle-backend/models/battleship"
)

type RespSessionId struct {
	SessionID string `json:"session_id"`
}

type RespCreateGame struct {
	GameUuid   string `json:"game_uuid"`
	PlayerUuid string `json:"player_uuid"`
	GridSize   int    `json:"grid_size"`
	ShipSizes  []int  `json:"ship_sizes"`
}

// ComputerShot reports the counter-shot the computer fires after a
// human attack that did not end the game.
type ComputerShot struct {
	X              int              `json:"x"`
	Y              int              `json:"y"`
	Hit            bool             `json:"hit"`
	ShipSunk       bool             `json:"ship_sunk"`
	SunkShipCoords []mb.Coordinates `json:"sunk_ship_coords,omitempty"`
}

type RespAttack struct {
	X              int              `json:"x"`
	Y              int              `json:"y"`
	Hit            bool             `json:"hit"`
	ShipSunk       bool             `json:"ship_sunk"`
	SunkShipCoords []mb.Coordinates `json:"sunk_ship_coords,omitempty"`
	ComputerShot   *ComputerShot    `json:"computer_shot,omitempty"`
}

type RespEndGame struct {
	PlayerMatchStatus int `json:"player_match_status"`
}

type RespErr struct {
	ErrorDetails string `json:"error_details,omitempty"`
	Message      string `json:"message,omitempty"`
}

func NewRespErr(errorDetails, message string) *RespErr {
	return &RespErr{
		ErrorDetails: errorDetails,
		Message:      message,
	}
}
