package battleship

import (
	cerr "github.com/mahdiarv/seabattle-backend/internal/error"
)

// Ship occupies a fixed footprint of cells and tracks
// per-segment damage. Footprint and hit flags always have
// the same length.
type Ship struct {
	footprint []Coordinates
	hits      []bool
}

func NewShip(footprint []Coordinates) (*Ship, error) {
	if len(footprint) == 0 {
		return nil, cerr.ErrEmptyShipFootprint()
	}

	return &Ship{
		footprint: footprint,
		hits:      make([]bool, len(footprint)),
	}, nil
}

func (sh *Ship) Length() int {
	return len(sh.footprint)
}

func (sh *Ship) Footprint() []Coordinates {
	return sh.footprint
}

func (sh *Ship) Occupies(c Coordinates) bool {
	for _, fc := range sh.footprint {
		if fc == c {
			return true
		}
	}
	return false
}

// RegisterHit marks the segment at c as damaged. The coordinate
// must belong to the footprint; anything else means a hit was
// routed to the wrong ship.
func (sh *Ship) RegisterHit(c Coordinates) error {
	for i, fc := range sh.footprint {
		if fc == c {
			sh.hits[i] = true
			return nil
		}
	}
	return cerr.ErrCoordsNotInShipFootprint(c.X, c.Y)
}

func (sh *Ship) IsSunk() bool {
	for _, hit := range sh.hits {
		if !hit {
			return false
		}
	}
	return true
}
