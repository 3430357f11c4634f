package battleship

import (
	cerr "github.com/mahdiarv/seabattle-backend/internal/error"
)

type CellState uint8

const (
	CellStateEmpty CellState = iota
	CellStateShip
	CellStateHit
	CellStateMiss
)

// ShotOutcome is what a single call to Fire reveals to the attacker.
type ShotOutcome struct {
	Hit            bool          `json:"hit"`
	ShipSunk       bool          `json:"ship_sunk"`
	SunkShipCoords []Coordinates `json:"sunk_ship_coords,omitempty"`
}

// Grid owns the cell states of one side's board. Fire is the single
// authoritative state transition; everything else is read-only.
type Grid struct {
	size   int
	cells  [][]CellState
	ships  []*Ship
	shipAt map[Coordinates]*Ship
}

func NewGrid(size int) *Grid {
	cells := make([][]CellState, size)
	for i := 0; i < size; i++ {
		cells[i] = make([]CellState, size)
	}

	return &Grid{
		size:   size,
		cells:  cells,
		shipAt: make(map[Coordinates]*Ship),
	}
}

func (g *Grid) Size() int {
	return g.size
}

func (g *Grid) ShipCount() int {
	return len(g.ships)
}

func (g *Grid) Contains(c Coordinates) bool {
	return c.X >= 0 && c.X < g.size && c.Y >= 0 && c.Y < g.size
}

func (g *Grid) CellAt(c Coordinates) (CellState, error) {
	if !g.Contains(c) {
		return CellStateEmpty, cerr.ErrXorYOutOfGridBound(c.X, c.Y)
	}
	return g.cells[c.X][c.Y], nil
}

// PlaceShip registers the ship and marks its footprint. Out-of-bounds
// or overlapping cells reject the whole placement and leave the grid
// untouched, so the caller can retry with a different footprint.
func (g *Grid) PlaceShip(sh *Ship) error {
	for _, c := range sh.Footprint() {
		if !g.Contains(c) {
			return cerr.ErrShipOutOfGridBound(c.X, c.Y)
		}
		if g.cells[c.X][c.Y] != CellStateEmpty {
			return cerr.ErrShipCellsOverlap(c.X, c.Y)
		}
	}

	for _, c := range sh.Footprint() {
		g.cells[c.X][c.Y] = CellStateShip
		g.shipAt[c] = sh
	}
	g.ships = append(g.ships, sh)
	return nil
}

// Fire resolves a shot at c. A cell is never fired at twice; repeat
// shots surface as an error for the caller to report.
func (g *Grid) Fire(c Coordinates) (ShotOutcome, error) {
	if !g.Contains(c) {
		return ShotOutcome{}, cerr.ErrXorYOutOfGridBound(c.X, c.Y)
	}

	switch g.cells[c.X][c.Y] {
	case CellStateHit, CellStateMiss:
		return ShotOutcome{}, cerr.ErrPositionAlreadyFired(c.X, c.Y)

	case CellStateShip:
		g.cells[c.X][c.Y] = CellStateHit

		sh := g.shipAt[c]
		if err := sh.RegisterHit(c); err != nil {
			return ShotOutcome{}, err
		}

		outcome := ShotOutcome{Hit: true}
		if sh.IsSunk() {
			outcome.ShipSunk = true
			outcome.SunkShipCoords = sh.Footprint()
		}
		return outcome, nil

	default:
		g.cells[c.X][c.Y] = CellStateMiss
		return ShotOutcome{}, nil
	}
}

func (g *Grid) AllShipsSunk() bool {
	if len(g.ships) == 0 {
		return false
	}

	for _, sh := range g.ships {
		if !sh.IsSunk() {
			return false
		}
	}
	return true
}
