package blob

// Cell is the record held for one occupied coordinate.
type Cell struct {
	Piece

	// FallsUntil is the row a falling cell will rest on. It is -1 while the
	// cell is attached.
	FallsUntil int

	// master is the group id: the lowest coordinate of the cell's group.
	master Coord
}

// Master returns the coordinate identifying the cell's group.
func (c Cell) Master() Coord {
	return c.master
}
