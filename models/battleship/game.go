package battleship

import (
	cerr "github.com/mahdiarv/seabattle-backend/internal/error"
)

// Game holds one human-vs-computer match. The computer fleet is placed
// at game creation; the human fleet arrives through PlaceHumanFleet
// before any attack is accepted.
type Game struct {
	uuid           string
	difficulty     uint8
	config         BoardConfig
	humanPlayer    *Player
	computerPlayer *Player
	isFinished     bool
}

func newGame(difficulty uint8, gameUuid string, cfg BoardConfig) *Game {
	return &Game{
		uuid:           gameUuid,
		difficulty:     difficulty,
		config:         cfg,
		humanPlayer:    NewPlayer(false, cfg.GridSize),
		computerPlayer: NewPlayer(true, cfg.GridSize),
	}
}

func (g *Game) Uuid() string {
	return g.uuid
}

func (g *Game) Difficulty() uint8 {
	return g.difficulty
}

func (g *Game) Config() BoardConfig {
	return g.config
}

func (g *Game) HumanPlayer() *Player {
	return g.humanPlayer
}

func (g *Game) ComputerPlayer() *Player {
	return g.computerPlayer
}

func (g *Game) IsFinished() bool {
	return g.isFinished
}

// PlaceHumanFleet accepts the fleet once. Re-sending a fleet after a
// successful placement would reset a grid the computer may already
// have fired at.
func (g *Game) PlaceHumanFleet(footprints [][]Coordinates) error {
	if g.humanPlayer.FleetPlaced() {
		return cerr.ErrFleetAlreadyPlaced()
	}
	return g.humanPlayer.PlaceFleet(g.config, footprints)
}

// HumanAttack resolves the human shot on the computer grid.
func (g *Game) HumanAttack(c Coordinates) (ShotOutcome, error) {
	if g.isFinished {
		return ShotOutcome{}, cerr.ErrGameAlreadyFinished(g.uuid)
	}
	if !g.humanPlayer.FleetPlaced() {
		return ShotOutcome{}, cerr.ErrFleetNotPlaced()
	}

	outcome, err := g.computerPlayer.Grid().Fire(c)
	if err != nil {
		return ShotOutcome{}, err
	}

	g.Conclude()
	return outcome, nil
}

// Conclude settles match statuses once either fleet is fully sunk.
// Safe to call after every shot; it is a no-op until then and stable
// afterwards.
func (g *Game) Conclude() bool {
	if g.isFinished {
		return true
	}

	switch {
	case g.computerPlayer.IsLoser():
		g.humanPlayer.MatchStatus = PlayerMatchStatusWon
		g.computerPlayer.MatchStatus = PlayerMatchStatusLost
		g.isFinished = true

	case g.humanPlayer.IsLoser():
		g.humanPlayer.MatchStatus = PlayerMatchStatusLost
		g.computerPlayer.MatchStatus = PlayerMatchStatusWon
		g.isFinished = true
	}

	return g.isFinished
}
