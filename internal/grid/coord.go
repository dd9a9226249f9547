package grid

import "fmt"

// Coord addresses a cell on the grid.
// Row increases downward, Col increases to the right.
type Coord struct {
	Row int
	Col int
}

// C is a convenience constructor for Coord.
func C(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns a new Coord offset by (dr, dc).
func (c Coord) Add(dr, dc int) Coord {
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}

// Manhattan returns the Manhattan distance to another coordinate.
func (c Coord) Manhattan(other Coord) int {
	dr := c.Row - other.Row
	dc := c.Col - other.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}

// Adjacent returns true if the two coordinates differ by exactly one orthogonal step.
func (c Coord) Adjacent(other Coord) bool {
	return c.Manhattan(other) == 1
}

// neighborOffsets lists orthogonal moves in expansion priority order:
// down, up, right, left.
var neighborOffsets = [4][2]int{
	{1, 0},
	{-1, 0},
	{0, 1},
	{0, -1},
}
