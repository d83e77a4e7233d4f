package blob

import "fmt"

// Coord addresses a grid cell. Row 0 is the floor; rows grow upward.
type Coord struct {
	Col int
	Row int
}

// C is a convenience constructor for Coord.
func C(col, row int) Coord {
	return Coord{Col: col, Row: row}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// Add returns c offset by another coordinate.
func (c Coord) Add(o Coord) Coord {
	return Coord{Col: c.Col + o.Col, Row: c.Row + o.Row}
}

// Up returns the coordinate directly above c.
func (c Coord) Up() Coord { return Coord{Col: c.Col, Row: c.Row + 1} }

// Down returns the coordinate directly below c.
func (c Coord) Down() Coord { return Coord{Col: c.Col, Row: c.Row - 1} }

// Left returns the coordinate to the left of c.
func (c Coord) Left() Coord { return Coord{Col: c.Col - 1, Row: c.Row} }

// Right returns the coordinate to the right of c.
func (c Coord) Right() Coord { return Coord{Col: c.Col + 1, Row: c.Row} }

// Neighbors returns the 4 orthogonal neighbors: left, right, up, down.
func (c Coord) Neighbors() [4]Coord {
	return [4]Coord{c.Left(), c.Right(), c.Up(), c.Down()}
}

// Less orders coordinates bottom-up, then left to right.
// The lowest member of a group is its master.
func (c Coord) Less(o Coord) bool {
	if c.Row != o.Row {
		return c.Row < o.Row
	}
	return c.Col < o.Col
}

// Offsets relative to a piece, used by area effects.
var (
	OffsetLeft  = Coord{Col: -1}
	OffsetRight = Coord{Col: 1}
	OffsetDown  = Coord{Row: -1}
)
