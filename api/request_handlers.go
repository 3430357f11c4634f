package api

import (
	"encoding/json"
	"log"
	"time"

	cerr "github.com/mahdiarv/seabattle-backend/internal/error"
	mb "github.com/mahdiarv/seabattle-backend/models/battleship"
	"github.com/mahdiarv/seabattle-backend/models/battleship/ai"
	mc "github.com/mahdiarv/seabattle-backend/models/connection"
)

type RequestHandler interface {
	HandleCreateGame(gameManager mb.GameManager) (*mb.Game, *ai.Opponent, mc.Message[mc.RespCreateGame])
	HandlePlaceShips(game *mb.Game) mc.Message[mc.NoPayload]
	HandleAttack(game *mb.Game, opponent *ai.Opponent) mc.Message[mc.RespAttack]
}

// Every incoming valid request is wrapped in this struct and handled
// in line with the RequestHandler interface.
type Request struct {
	payload []byte
}

var _ RequestHandler = (*Request)(nil)

func NewRequest(payload ...[]byte) *Request {
	if len(payload) > 1 {
		log.Println("cannot accept more than one payload")
		return nil
	}

	req := Request{}
	if len(payload) != 0 {
		req.payload = payload[0]
	}
	return &req
}

// HandleCreateGame sets up the match and its computer opponent. The
// opponent is seeded per game so every session gets an independent
// shot sequence.
func (r *Request) HandleCreateGame(gameManager mb.GameManager) (*mb.Game, *ai.Opponent, mc.Message[mc.RespCreateGame]) {
	resp := mc.NewMessage[mc.RespCreateGame](mc.CodeCreateGame)

	var reqCreateGame mc.Message[mc.ReqCreateGame]
	if err := json.Unmarshal(r.payload, &reqCreateGame); err != nil {
		resp.AddError(err.Error(), cerr.ConstErrPlaceFailed)
		return nil, nil, resp
	}

	game, err := gameManager.CreateGame(reqCreateGame.Payload.GameDifficulty, reqCreateGame.Payload.BoardPreset)
	if err != nil {
		resp.AddError(err.Error(), "failed to create game")
		return nil, nil, resp
	}

	opponent, err := ai.NewOpponent(game.Difficulty(), game.Config().GridSize, time.Now().UnixNano())
	if err != nil {
		gameManager.TerminateGame(game.Uuid())
		resp.AddError(err.Error(), "failed to create game")
		return nil, nil, resp
	}

	resp.AddPayload(mc.RespCreateGame{
		GameUuid:   game.Uuid(),
		PlayerUuid: game.HumanPlayer().Uuid,
		GridSize:   game.Config().GridSize,
		ShipSizes:  game.Config().ShipSizes,
	})
	return game, opponent, resp
}

// HandlePlaceShips validates and places the human fleet. A rejected
// footprint is recoverable: the client adjusts and resends the whole
// fleet.
func (r *Request) HandlePlaceShips(game *mb.Game) mc.Message[mc.NoPayload] {
	resp := mc.NewMessage[mc.NoPayload](mc.CodePlaceShips)

	if game == nil {
		resp.AddError("no game bound to this session", cerr.ConstErrPlaceFailed)
		return resp
	}

	var reqPlaceShips mc.Message[mc.ReqPlaceShips]
	if err := json.Unmarshal(r.payload, &reqPlaceShips); err != nil {
		resp.AddError(err.Error(), cerr.ConstErrPlaceFailed)
		return resp
	}

	if reqPlaceShips.Payload.GameUuid != game.Uuid() {
		resp.AddError(cerr.ErrGameNotExists(reqPlaceShips.Payload.GameUuid).Error(), cerr.ConstErrPlaceFailed)
		return resp
	}

	if err := game.PlaceHumanFleet(reqPlaceShips.Payload.Ships); err != nil {
		resp.AddError(err.Error(), cerr.ConstErrPlaceFailed)
		return resp
	}

	return resp
}

// HandleAttack resolves the human shot and, when the game is still
// on, the computer counter-shot in the same turn.
func (r *Request) HandleAttack(game *mb.Game, opponent *ai.Opponent) mc.Message[mc.RespAttack] {
	resp := mc.NewMessage[mc.RespAttack](mc.CodeAttack)

	if game == nil || opponent == nil {
		resp.AddError("no game bound to this session", cerr.ConstErrAttackFailed)
		return resp
	}

	var reqAttack mc.Message[mc.ReqAttack]
	if err := json.Unmarshal(r.payload, &reqAttack); err != nil {
		resp.AddError(err.Error(), cerr.ConstErrAttackFailed)
		return resp
	}

	if reqAttack.Payload.GameUuid != game.Uuid() {
		resp.AddError(cerr.ErrGameNotExists(reqAttack.Payload.GameUuid).Error(), cerr.ConstErrAttackFailed)
		return resp
	}

	coord := mb.NewCoordinates(reqAttack.Payload.X, reqAttack.Payload.Y)
	outcome, err := game.HumanAttack(coord)
	if err != nil {
		resp.AddError(err.Error(), cerr.ConstErrAttackFailed)
		return resp
	}

	payload := mc.RespAttack{
		X:              coord.X,
		Y:              coord.Y,
		Hit:            outcome.Hit,
		ShipSunk:       outcome.ShipSunk,
		SunkShipCoords: outcome.SunkShipCoords,
	}

	if !game.IsFinished() {
		pcCoord, pcOutcome, err := opponent.TakeTurn(game.HumanPlayer().Grid())
		if err != nil {
			// A strategy that honors its contract can never re-fire a
			// cell; this is a logic defect, not a user error.
			panic("computer turn violated the targeting contract: " + err.Error())
		}
		game.Conclude()

		payload.ComputerShot = &mc.ComputerShot{
			X:              pcCoord.X,
			Y:              pcCoord.Y,
			Hit:            pcOutcome.Hit,
			ShipSunk:       pcOutcome.ShipSunk,
			SunkShipCoords: pcOutcome.SunkShipCoords,
		}
	}

	resp.AddPayload(payload)
	return resp
}
