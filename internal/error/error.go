package error

import "fmt"

const (
	ConstErrAttackFailed = "attack operation failed"
	ConstErrPlaceFailed  = "ship placement operation failed"
)

func ErrGameNotExists(gameUuid string) error {
	return fmt.Errorf("game with this uuid does not exist, uuid: %s", gameUuid)
}

func ErrGameIsNil(gameUuid string) error {
	return fmt.Errorf("game is nil, uuid: %s", gameUuid)
}

func ErrSessionNotFound(sessionId string) error {
	return fmt.Errorf("session with this id does not exist, id: %s", sessionId)
}

func ErrSessionIsNil(sessionId string) error {
	return fmt.Errorf("session is nil, id: %s", sessionId)
}

func ErrInvalidGameDifficulty() error {
	return fmt.Errorf("difficulty must be easy, normal or hard")
}

func ErrInvalidBoardPreset() error {
	return fmt.Errorf("board preset must be small, medium or big")
}

func ErrXorYOutOfGridBound(x, y int) error {
	return fmt.Errorf("incoming x or y is out of game grid bound\tx: %d\ty: %d", x, y)
}

func ErrShipOutOfGridBound(x, y int) error {
	return fmt.Errorf("ship cell is out of game grid bound\tx: %d\ty: %d", x, y)
}

func ErrShipCellsOverlap(x, y int) error {
	return fmt.Errorf("ship cell overlaps an already placed ship\tx: %d\ty: %d", x, y)
}

func ErrEmptyShipFootprint() error {
	return fmt.Errorf("ship footprint must contain at least one cell")
}

func ErrFleetSizeMismatch(want, got int) error {
	return fmt.Errorf("fleet must contain the preset ship count\twant: %d\tgot: %d", want, got)
}

func ErrShipSizeMismatch(want, got int) error {
	return fmt.Errorf("ship length does not match the preset\twant: %d\tgot: %d", want, got)
}

func ErrPositionAlreadyFired(x, y int) error {
	return fmt.Errorf("this position was already fired at in previous rounds\tx: %d\ty: %d", x, y)
}

func ErrCoordsNotInShipFootprint(x, y int) error {
	return fmt.Errorf("hit routed to a ship that does not occupy this cell\tx: %d\ty: %d", x, y)
}

func ErrFleetNotPlaced() error {
	return fmt.Errorf("fleet must be fully placed before attacking")
}

func ErrFleetAlreadyPlaced() error {
	return fmt.Errorf("fleet has already been placed for this game")
}

func ErrGameAlreadyFinished(gameUuid string) error {
	return fmt.Errorf("game has already finished, uuid: %s", gameUuid)
}
