// Package blob implements the connectivity and scoring engine of a
// falling-ball matching board.
//
// A Grid tracks which coordinates hold a piece, which same-colored matchers
// are linked into groups, scores groups on request and works out which cells
// lose support after a destruction. Every group is identified by its master,
// the lowest member coordinate; the master alone holds the member list and
// every member records the master's coordinate.
//
// A Grid is not safe for concurrent use. Each player owns one.
package blob

import (
	"fmt"
	"sort"
)

// Grid is a sparse board of occupied cells with incremental group bookkeeping.
type Grid struct {
	columns int
	rows    int
	ceiling int

	cells  map[Coord]*Cell
	groups map[Coord][]Coord // master -> members

	listener Listener

	batchDepth int
	destroyed  []Coord
}

// NewGrid creates an empty grid. Rows bounds the addressable height; cells at
// or above ceiling can be occupied but never connect or score.
func NewGrid(columns, rows, ceiling int, l Listener) *Grid {
	if l == nil {
		l = NopListener{}
	}
	if ceiling <= 0 || ceiling > rows {
		ceiling = rows
	}
	return &Grid{
		columns:  columns,
		rows:     rows,
		ceiling:  ceiling,
		cells:    make(map[Coord]*Cell),
		groups:   make(map[Coord][]Coord),
		listener: l,
	}
}

// Columns returns the column count.
func (g *Grid) Columns() int { return g.columns }

// Rows returns the addressable row count.
func (g *Grid) Rows() int { return g.rows }

// Ceiling returns the first row on which no scoring interaction occurs.
func (g *Grid) Ceiling() int { return g.ceiling }

// InBounds returns true if c is addressable.
func (g *Grid) InBounds(c Coord) bool {
	return c.Col >= 0 && c.Col < g.columns && c.Row >= 0 && c.Row < g.rows
}

// Occupied returns true if a cell is attached at c.
func (g *Grid) Occupied(c Coord) bool {
	_, ok := g.cells[c]
	return ok
}

// CellAt returns a copy of the cell at c.
func (g *Grid) CellAt(c Coord) (Cell, bool) {
	cell, ok := g.cells[c]
	if !ok {
		return Cell{}, false
	}
	return *cell, true
}

// Count returns the number of attached cells.
func (g *Grid) Count() int {
	return len(g.cells)
}

// ColumnHeight returns one past the highest occupied row of a column.
func (g *Grid) ColumnHeight(col int) int {
	for row := g.rows - 1; row >= 0; row-- {
		if g.Occupied(C(col, row)) {
			return row + 1
		}
	}
	return 0
}

// Coords returns all occupied coordinates, bottom-up then left to right.
func (g *Grid) Coords() []Coord {
	out := make([]Coord, 0, len(g.cells))
	for c := range g.cells {
		out = append(out, c)
	}
	sortCoords(out)
	return out
}

// GroupCount returns the number of groups, singletons included.
func (g *Grid) GroupCount() int {
	return len(g.groups)
}

// Attach places p at c and merges it with every connecting neighbor group.
func (g *Grid) Attach(c Coord, p Piece) error {
	if !g.InBounds(c) {
		return fmt.Errorf("attach %v: %w", c, ErrOutOfBounds)
	}
	if g.Occupied(c) {
		return fmt.Errorf("attach %v: %w", c, ErrOccupied)
	}

	g.cells[c] = &Cell{Piece: p, FallsUntil: -1, master: c}

	var masters []Coord
	for _, n := range c.Neighbors() {
		if !g.connects(c, n) {
			continue
		}
		m := g.cells[n].master
		if !containsCoord(masters, m) {
			masters = append(masters, m)
		}
	}

	if len(masters) == 0 {
		g.groups[c] = []Coord{c}
		return nil
	}

	members := []Coord{c}
	master := c
	for _, m := range masters {
		list, ok := g.groups[m]
		if !ok {
			breach("attach", c, "neighbor master %v has no member list", m)
		}
		members = append(members, list...)
		delete(g.groups, m)
		if m.Less(master) {
			master = m
		}
	}

	for _, m := range members {
		g.cells[m].master = master
	}
	g.groups[master] = members
	g.checkGroup("attach", master)
	return nil
}

// Detach removes the cell at c and splits its former group into the
// components that remain connected.
func (g *Grid) Detach(c Coord) error {
	if !g.InBounds(c) {
		return fmt.Errorf("detach %v: %w", c, ErrOutOfBounds)
	}
	if !g.Occupied(c) {
		return fmt.Errorf("detach %v: %w", c, ErrUnoccupied)
	}
	g.remove(c)
	return nil
}

// GroupOf returns the members of c's group sorted bottom-up, or nil if c is
// unoccupied.
func (g *Grid) GroupOf(c Coord) []Coord {
	cell, ok := g.cells[c]
	if !ok {
		return nil
	}
	members := g.groups[cell.master]
	out := make([]Coord, len(members))
	copy(out, members)
	sortCoords(out)
	return out
}

// connects reports whether a and b are both attached matchers of one color
// below the ceiling.
func (g *Grid) connects(a, b Coord) bool {
	ca, ok := g.cells[a]
	if !ok {
		return false
	}
	cb, ok := g.cells[b]
	if !ok {
		return false
	}
	if a.Row >= g.ceiling || b.Row >= g.ceiling {
		return false
	}
	return ca.IsMatcher() && cb.IsMatcher() && ca.Color == cb.Color
}

// remove detaches c and re-floods the survivors of its group.
func (g *Grid) remove(c Coord) *Cell {
	cell := g.cells[c]
	master := cell.master
	members, ok := g.groups[master]
	if !ok {
		breach("detach", c, "master %v has no member list", master)
	}
	delete(g.cells, c)
	delete(g.groups, master)

	if len(members) == 1 {
		if members[0] != c {
			breach("detach", c, "singleton group of %v lists %v", master, members[0])
		}
		return cell
	}

	assigned := make(map[Coord]bool, len(members)-1)
	for _, n := range c.Neighbors() {
		nc, ok := g.cells[n]
		if !ok || assigned[n] || nc.master != master {
			continue
		}
		comp := g.flood(n, master, assigned)
		newMaster := comp[0]
		for _, m := range comp[1:] {
			if m.Less(newMaster) {
				newMaster = m
			}
		}
		for _, m := range comp {
			g.cells[m].master = newMaster
		}
		g.groups[newMaster] = comp
		g.checkGroup("detach", newMaster)
	}

	if len(assigned) != len(members)-1 {
		breach("detach", c, "re-flood reached %d of %d survivors", len(assigned), len(members)-1)
	}
	return cell
}

// flood collects the component containing start among cells still owned by
// oldMaster. It uses an explicit stack so depth is bounded by the heap.
func (g *Grid) flood(start, oldMaster Coord, assigned map[Coord]bool) []Coord {
	var comp []Coord
	stack := []Coord{start}
	assigned[start] = true
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		comp = append(comp, cur)
		for _, n := range cur.Neighbors() {
			if assigned[n] || !g.connects(cur, n) {
				continue
			}
			if g.cells[n].master != oldMaster {
				breach("detach", cur, "connected neighbor %v belongs to foreign group %v", n, g.cells[n].master)
			}
			assigned[n] = true
			stack = append(stack, n)
		}
	}
	return comp
}

// checkGroup panics if the group rooted at master is inconsistent.
func (g *Grid) checkGroup(op string, master Coord) {
	members, ok := g.groups[master]
	if !ok {
		breach(op, master, "no member list")
	}
	if !containsCoord(members, master) {
		breach(op, master, "member list omits its master")
	}
	for _, m := range members {
		cell, ok := g.cells[m]
		if !ok {
			breach(op, m, "member of %v is not attached", master)
		}
		if cell.master != master {
			breach(op, m, "member points at %v instead of %v", cell.master, master)
		}
	}
}

// Validate checks every structural invariant and returns the first violation.
// Unlike the internal checks it does not panic.
func (g *Grid) Validate() error {
	seen := make(map[Coord]Coord, len(g.cells))
	for master, members := range g.groups {
		if !containsCoord(members, master) {
			return fmt.Errorf("blob: group %v omits its master", master)
		}
		for _, m := range members {
			if other, dup := seen[m]; dup {
				return fmt.Errorf("blob: %v listed by groups %v and %v", m, other, master)
			}
			seen[m] = master
			cell, ok := g.cells[m]
			if !ok {
				return fmt.Errorf("blob: group %v lists unattached %v", master, m)
			}
			if cell.master != master {
				return fmt.Errorf("blob: %v points at %v, listed by %v", m, cell.master, master)
			}
			if m.Less(master) {
				return fmt.Errorf("blob: %v is lower than its master %v", m, master)
			}
		}
	}
	for c, cell := range g.cells {
		if _, ok := seen[c]; !ok {
			return fmt.Errorf("blob: %v belongs to no group", c)
		}
		for _, n := range c.Neighbors() {
			if !g.connects(c, n) {
				continue
			}
			if g.cells[n].master != cell.master {
				return fmt.Errorf("blob: connected cells %v and %v in different groups", c, n)
			}
			if g.cells[n].Color != cell.Color {
				return fmt.Errorf("blob: group %v mixes colors", cell.master)
			}
		}
	}
	return nil
}

// String renders the grid top row first, one column per character.
func (g *Grid) String() string {
	buf := make([]byte, 0, (g.columns+1)*g.rows)
	for row := g.rows - 1; row >= 0; row-- {
		for col := 0; col < g.columns; col++ {
			cell, ok := g.cells[C(col, row)]
			switch {
			case !ok:
				buf = append(buf, '.')
			case cell.IsAreaEffect():
				buf = append(buf, '@')
			default:
				buf = append(buf, cell.Color.Char())
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}

func containsCoord(list []Coord, c Coord) bool {
	for _, x := range list {
		if x == c {
			return true
		}
	}
	return false
}

func sortCoords(list []Coord) {
	sort.Slice(list, func(i, j int) bool { return list[i].Less(list[j]) })
}
