package battleship

import (
	"math/rand"

	"github.com/google/uuid"

	cerr "github.com/mahdiarv/seabattle-backend/internal/error"
)

const (
	PlayerMatchStatusLost      = -1
	PlayerMatchStatusUndefined = 0
	PlayerMatchStatusWon       = 1
)

type Player struct {
	Uuid        string
	IsComputer  bool
	MatchStatus int
	grid        *Grid
	fleetPlaced bool
}

func NewPlayer(isComputer bool, gridSize int) *Player {
	return &Player{
		Uuid:        uuid.NewString()[:10],
		IsComputer:  isComputer,
		MatchStatus: PlayerMatchStatusUndefined,
		grid:        NewGrid(gridSize),
	}
}

func (p *Player) Grid() *Grid {
	return p.grid
}

func (p *Player) FleetPlaced() bool {
	return p.fleetPlaced
}

func (p *Player) IsLoser() bool {
	return p.grid.AllShipsSunk()
}

// PlaceFleet validates the footprints against the board config and
// places them. Any rejected footprint aborts the whole fleet so the
// player starts placement over with a clean grid.
func (p *Player) PlaceFleet(cfg BoardConfig, footprints [][]Coordinates) error {
	if len(footprints) != len(cfg.ShipSizes) {
		return cerr.ErrFleetSizeMismatch(len(cfg.ShipSizes), len(footprints))
	}

	for i, footprint := range footprints {
		if len(footprint) != cfg.ShipSizes[i] {
			return cerr.ErrShipSizeMismatch(cfg.ShipSizes[i], len(footprint))
		}
	}

	for _, footprint := range footprints {
		sh, err := NewShip(footprint)
		if err != nil {
			p.resetGrid()
			return err
		}
		if err := p.grid.PlaceShip(sh); err != nil {
			p.resetGrid()
			return err
		}
	}

	p.fleetPlaced = true
	return nil
}

// PlaceFleetRandom drops the configured ships at random spots with
// random horizontal/vertical orientation, retrying on rejection.
// All preset boards have far more room than fleet, so the retry
// loop terminates.
func (p *Player) PlaceFleetRandom(cfg BoardConfig, rng *rand.Rand) {
	for _, size := range cfg.ShipSizes {
		for {
			start := NewCoordinates(rng.Intn(cfg.GridSize), rng.Intn(cfg.GridSize))
			horizontal := rng.Intn(2) == 0

			footprint := straightFootprint(start, size, horizontal)
			sh, err := NewShip(footprint)
			if err != nil {
				continue
			}
			if err := p.grid.PlaceShip(sh); err != nil {
				continue
			}
			break
		}
	}
	p.fleetPlaced = true
}

func (p *Player) resetGrid() {
	p.grid = NewGrid(p.grid.size)
	p.fleetPlaced = false
}

func straightFootprint(start Coordinates, size int, horizontal bool) []Coordinates {
	footprint := make([]Coordinates, 0, size)
	for i := 0; i < size; i++ {
		if horizontal {
			footprint = append(footprint, NewCoordinates(start.X, start.Y+i))
		} else {
			footprint = append(footprint, NewCoordinates(start.X+i, start.Y))
		}
	}
	return footprint
}
