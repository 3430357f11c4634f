package main

import (
	mb "github.com/mahdiarv/seabattle-backend/models/battleship"
)

type cellMark uint8

const (
	cellUnknown cellMark = iota
	cellShip
	cellHit
	cellMiss
	cellSunk
)

// boardView is the client-side picture of one grid. The own board
// knows ship positions, the enemy board only accumulates shot results.
type boardView struct {
	size  int
	cells [][]cellMark
}

func newBoardView(size int) *boardView {
	cells := make([][]cellMark, size)
	for i := range cells {
		cells[i] = make([]cellMark, size)
	}
	return &boardView{size: size, cells: cells}
}

func (b *boardView) markShot(c mb.Coordinates, hit bool) {
	if c.X < 0 || c.X >= b.size || c.Y < 0 || c.Y >= b.size {
		return
	}
	if hit {
		b.cells[c.X][c.Y] = cellHit
	} else {
		b.cells[c.X][c.Y] = cellMiss
	}
}

func (b *boardView) markSunk(coords []mb.Coordinates) {
	for _, c := range coords {
		if c.X < 0 || c.X >= b.size || c.Y < 0 || c.Y >= b.size {
			continue
		}
		b.cells[c.X][c.Y] = cellSunk
	}
}

func (b *boardView) alreadyShot(c mb.Coordinates) bool {
	mark := b.cells[c.X][c.Y]
	return mark == cellHit || mark == cellMiss || mark == cellSunk
}

// tryPlace marks a straight ship of the given size starting at bow and
// returns its footprint, or false when it leaves the board or crosses
// another ship.
func (b *boardView) tryPlace(bow mb.Coordinates, size int, horizontal bool) ([]mb.Coordinates, bool) {
	footprint := make([]mb.Coordinates, 0, size)
	for i := 0; i < size; i++ {
		c := bow
		if horizontal {
			c.Y += i
		} else {
			c.X += i
		}

		if c.X < 0 || c.X >= b.size || c.Y < 0 || c.Y >= b.size {
			return nil, false
		}
		if b.cells[c.X][c.Y] == cellShip {
			return nil, false
		}
		footprint = append(footprint, c)
	}

	for _, c := range footprint {
		b.cells[c.X][c.Y] = cellShip
	}
	return footprint, true
}
