package battleship

import (
	"testing"
)

func mustShip(t *testing.T, footprint ...Coordinates) *Ship {
	t.Helper()
	sh, err := NewShip(footprint)
	if err != nil {
		t.Fatal(err)
	}
	return sh
}

func TestPlaceShipRejectsOutOfBound(t *testing.T) {
	g := NewGrid(5)

	tests := []struct {
		name      string
		footprint []Coordinates
	}{
		{"negative x", []Coordinates{NewCoordinates(-1, 0), NewCoordinates(0, 0)}},
		{"x past edge", []Coordinates{NewCoordinates(4, 4), NewCoordinates(5, 4)}},
		{"y past edge", []Coordinates{NewCoordinates(0, 4), NewCoordinates(0, 5)}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if err := g.PlaceShip(mustShip(t, test.footprint...)); err == nil {
				t.Fatal("expected out of bound error, got nil")
			}
			if g.ShipCount() != 0 {
				t.Fatalf("rejected placement must leave grid untouched, ship count: %d", g.ShipCount())
			}
		})
	}
}

func TestPlaceShipRejectsOverlap(t *testing.T) {
	g := NewGrid(5)

	if err := g.PlaceShip(mustShip(t, NewCoordinates(2, 1), NewCoordinates(2, 2))); err != nil {
		t.Fatal(err)
	}

	overlapping := mustShip(t, NewCoordinates(1, 2), NewCoordinates(2, 2), NewCoordinates(3, 2))
	if err := g.PlaceShip(overlapping); err == nil {
		t.Fatal("expected overlap error, got nil")
	}

	if g.ShipCount() != 1 {
		t.Fatalf("expected ship count: 1\t got: %d", g.ShipCount())
	}

	// The overlapping ship's non-conflicting cells must stay empty.
	state, err := g.CellAt(NewCoordinates(1, 2))
	if err != nil {
		t.Fatal(err)
	}
	if state != CellStateEmpty {
		t.Fatalf("expected cell state: %d\t got: %d", CellStateEmpty, state)
	}
}

func TestFireOutcomes(t *testing.T) {
	g := NewGrid(5)
	if err := g.PlaceShip(mustShip(t, NewCoordinates(0, 0), NewCoordinates(0, 1))); err != nil {
		t.Fatal(err)
	}

	// Miss on open water.
	outcome, err := g.Fire(NewCoordinates(3, 3))
	if err != nil {
		t.Fatal(err)
	}
	if outcome.Hit || outcome.ShipSunk {
		t.Fatalf("expected plain miss, got %+v", outcome)
	}

	// Hit without sinking.
	outcome, err = g.Fire(NewCoordinates(0, 0))
	if err != nil {
		t.Fatal(err)
	}
	if !outcome.Hit || outcome.ShipSunk {
		t.Fatalf("expected hit without sink, got %+v", outcome)
	}

	// Second hit sinks and reports the footprint.
	outcome, err = g.Fire(NewCoordinates(0, 1))
	if err != nil {
		t.Fatal(err)
	}
	if !outcome.Hit || !outcome.ShipSunk {
		t.Fatalf("expected sinking hit, got %+v", outcome)
	}
	if len(outcome.SunkShipCoords) != 2 {
		t.Fatalf("expected sunk footprint of 2 cells\t got: %d", len(outcome.SunkShipCoords))
	}

	// Repeat shots are refused, both on hits and misses.
	if _, err := g.Fire(NewCoordinates(0, 0)); err == nil {
		t.Fatal("expected already fired error on hit cell, got nil")
	}
	if _, err := g.Fire(NewCoordinates(3, 3)); err == nil {
		t.Fatal("expected already fired error on miss cell, got nil")
	}

	if _, err := g.Fire(NewCoordinates(9, 0)); err == nil {
		t.Fatal("expected out of bound error, got nil")
	}
}

func TestAllShipsSunk(t *testing.T) {
	g := NewGrid(5)

	// A grid with no fleet can never count as defeated.
	if g.AllShipsSunk() {
		t.Fatal("empty grid must not report all ships sunk")
	}

	if err := g.PlaceShip(mustShip(t, NewCoordinates(0, 0), NewCoordinates(0, 1))); err != nil {
		t.Fatal(err)
	}
	if err := g.PlaceShip(mustShip(t, NewCoordinates(2, 2), NewCoordinates(3, 2))); err != nil {
		t.Fatal(err)
	}

	for _, c := range []Coordinates{
		NewCoordinates(0, 0),
		NewCoordinates(0, 1),
		NewCoordinates(2, 2),
	} {
		if _, err := g.Fire(c); err != nil {
			t.Fatal(err)
		}
	}

	if g.AllShipsSunk() {
		t.Fatal("one ship afloat, must not report all ships sunk")
	}

	if _, err := g.Fire(NewCoordinates(3, 2)); err != nil {
		t.Fatal(err)
	}

	if !g.AllShipsSunk() {
		t.Fatal("expected all ships sunk")
	}
	// Stable on repeated calls.
	if !g.AllShipsSunk() {
		t.Fatal("expected all ships sunk to stay true")
	}
}
