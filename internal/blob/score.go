package blob

import "fmt"

// ScoreGroupAt scores and destroys the group containing c.
//
// The total is the sum of the additive members shifted left once per
// multiplier member. Every member is destroyed, including zero-value ones.
// Unoccupied coordinates and coordinates at or above the ceiling are no-ops
// returning 0, so scoring an already destroyed group is harmless.
func (g *Grid) ScoreGroupAt(c Coord) (int, error) {
	if !g.InBounds(c) {
		return 0, fmt.Errorf("score %v: %w", c, ErrOutOfBounds)
	}
	cell, ok := g.cells[c]
	if !ok || c.Row >= g.ceiling {
		return 0, nil
	}

	master := cell.master
	g.checkGroup("score", master)
	members := g.GroupOf(c)

	g.beginBatch()
	defer g.endBatch()

	s := Score{Origin: c, Size: len(members)}
	for _, m := range members {
		mc := g.cells[m]
		switch {
		case !mc.IsMatcher():
		case mc.IsMultiplier():
			s.Multipliers++
		default:
			s.Sum += mc.Points
		}
	}
	s.Total = s.Sum << s.Multipliers

	delete(g.groups, master)
	for _, m := range members {
		delete(g.cells, m)
		g.destroyed = append(g.destroyed, m)
		g.listener.CellDestroyRequested(m)
	}
	if s.Total != 0 {
		g.listener.Scored(s)
	}
	return s.Total, nil
}

// ScoreAreaEffect runs an independent ScoreGroupAt for each coordinate and
// returns the results in the same order. Out-of-bounds and already destroyed
// coordinates contribute 0. Falls are resolved once, after every coordinate.
func (g *Grid) ScoreAreaEffect(coords []Coord) []int {
	g.beginBatch()
	defer g.endBatch()

	results := make([]int, len(coords))
	for i, c := range coords {
		if !g.InBounds(c) {
			continue
		}
		total, _ := g.ScoreGroupAt(c)
		results[i] = total
	}
	return results
}

// DestroyAt removes a single cell without scoring it. Unoccupied coordinates
// are a no-op.
func (g *Grid) DestroyAt(c Coord) error {
	if !g.InBounds(c) {
		return fmt.Errorf("destroy %v: %w", c, ErrOutOfBounds)
	}
	if !g.Occupied(c) {
		return nil
	}

	g.beginBatch()
	defer g.endBatch()

	g.remove(c)
	g.destroyed = append(g.destroyed, c)
	g.listener.CellDestroyRequested(c)
	return nil
}
