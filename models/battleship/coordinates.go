package battleship

type Coordinates struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func NewCoordinates(x, y int) Coordinates {
	return Coordinates{X: x, Y: y}
}

// Neighbors returns the 4-directionally adjacent cells.
// No bound check is done here; callers filter against the grid.
func (c Coordinates) Neighbors() [4]Coordinates {
	return [4]Coordinates{
		{X: c.X - 1, Y: c.Y},
		{X: c.X + 1, Y: c.Y},
		{X: c.X, Y: c.Y - 1},
		{X: c.X, Y: c.Y + 1},
	}
}
