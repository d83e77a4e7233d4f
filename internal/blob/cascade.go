package blob

import (
	"fmt"
	"sort"
)

func (g *Grid) beginBatch() {
	g.batchDepth++
}

// endBatch closes a destruction batch. The outermost close resolves lost
// support for everything destroyed inside it.
func (g *Grid) endBatch() {
	g.batchDepth--
	if g.batchDepth > 0 || len(g.destroyed) == 0 {
		return
	}
	batch := g.destroyed
	g.destroyed = nil
	g.OnCellsDestroyed(batch)
}

// OnCellsDestroyed detaches every cell that lost its support below and
// reports each one once through CellShouldFall. Loss of support propagates
// upward: a cell resting on a falling cell falls too.
//
// Each fall's target row is where the cell settles once the column compacts:
// just above the highest surviving cell below it, stacked on any cells of the
// same column that fall before it.
func (g *Grid) OnCellsDestroyed(coords []Coord) []Fall {
	falling := make(map[Coord]bool)
	var order []Coord

	stack := make([]Coord, len(coords))
	copy(stack, coords)
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		up := c.Up()
		if falling[up] || !g.Occupied(up) {
			continue
		}
		falling[up] = true
		order = append(order, up)
		stack = append(stack, up)
	}
	if len(order) == 0 {
		return nil
	}

	sortCoords(order)
	pieces := make(map[Coord]Piece, len(order))
	for _, c := range order {
		pieces[c] = g.remove(c).Piece
	}

	byColumn := make(map[int][]Coord)
	for _, c := range order {
		byColumn[c.Col] = append(byColumn[c.Col], c)
	}

	falls := make([]Fall, 0, len(order))
	for _, col := range sortedKeys(byColumn) {
		list := byColumn[col]
		for i, c := range list {
			base := g.restingRow(c)
			stacked := 0
			for _, below := range list[:i] {
				if below.Row >= base {
					stacked++
				}
			}
			falls = append(falls, Fall{From: c, To: base + stacked, Piece: pieces[c]})
		}
	}

	for _, f := range falls {
		g.listener.CellShouldFall(f)
	}
	return falls
}

// restingRow returns the row just above the highest attached cell below c.
func (g *Grid) restingRow(c Coord) int {
	for row := c.Row - 1; row >= 0; row-- {
		if g.Occupied(C(c.Col, row)) {
			return row + 1
		}
	}
	return 0
}

// OnCellLanded reattaches a previously falling piece at its new resting
// coordinate and confirms it through CellLanded.
func (g *Grid) OnCellLanded(at Coord, p Piece) error {
	if err := g.Attach(at, p); err != nil {
		return fmt.Errorf("land: %w", err)
	}
	g.listener.CellLanded(at)
	return nil
}

func sortedKeys(m map[int][]Coord) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
