package blob

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"
)

func newTestGrid(cols, rows int) (*Grid, *Recorder) {
	rec := &Recorder{}
	return NewGrid(cols, rows, rows, rec), rec
}

func mustAttach(t *testing.T, g *Grid, c Coord, p Piece) {
	t.Helper()
	if err := g.Attach(c, p); err != nil {
		t.Fatalf("Attach(%v) failed: %v", c, err)
	}
}

func TestAttachSingleton(t *testing.T) {
	g, _ := newTestGrid(4, 4)
	mustAttach(t, g, C(1, 0), NewBall(White, 3))

	group := g.GroupOf(C(1, 0))
	if !reflect.DeepEqual(group, []Coord{C(1, 0)}) {
		t.Errorf("GroupOf = %v, want singleton", group)
	}
	if got := g.GroupOf(C(2, 0)); got != nil {
		t.Errorf("GroupOf(unoccupied) = %v, want nil", got)
	}
}

func TestAttachMergesWithLowestMaster(t *testing.T) {
	g, _ := newTestGrid(4, 4)
	mustAttach(t, g, C(2, 0), NewBall(Red, 1))
	mustAttach(t, g, C(0, 0), NewBall(Red, 1))
	mustAttach(t, g, C(2, 1), NewBall(Red, 1))

	// (1,0) bridges the two groups.
	mustAttach(t, g, C(1, 0), NewBall(Red, 1))

	want := []Coord{C(0, 0), C(1, 0), C(2, 0), C(2, 1)}
	for _, c := range want {
		if got := g.GroupOf(c); !reflect.DeepEqual(got, want) {
			t.Errorf("GroupOf(%v) = %v, want %v", c, got, want)
		}
		cell, _ := g.CellAt(c)
		if cell.Master() != C(0, 0) {
			t.Errorf("master of %v = %v, want (0,0)", c, cell.Master())
		}
	}
	if g.GroupCount() != 1 {
		t.Errorf("GroupCount = %d, want 1", g.GroupCount())
	}
}

func TestAttachDoesNotMergeAcrossColors(t *testing.T) {
	g, _ := newTestGrid(4, 4)
	mustAttach(t, g, C(0, 0), NewBall(White, 1))
	mustAttach(t, g, C(1, 0), NewBall(Red, 1))
	mustAttach(t, g, C(2, 0), NewBall(White, 1))

	if len(g.GroupOf(C(0, 0))) != 1 || len(g.GroupOf(C(2, 0))) != 1 {
		t.Error("different colors must not connect")
	}
}

func TestAreaEffectPiecesStaySingletons(t *testing.T) {
	g, _ := newTestGrid(4, 4)
	mustAttach(t, g, C(0, 0), NewBall(White, 1))
	mustAttach(t, g, C(1, 0), NewBomb())
	mustAttach(t, g, C(2, 0), NewBall(White, 1))

	if got := g.GroupOf(C(1, 0)); len(got) != 1 {
		t.Errorf("bomb group = %v, want singleton", got)
	}
	if len(g.GroupOf(C(0, 0))) != 1 {
		t.Error("a bomb must not bridge two matchers")
	}
}

func TestAttachPreconditions(t *testing.T) {
	g, _ := newTestGrid(3, 3)
	mustAttach(t, g, C(0, 0), NewBall(White, 1))

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"occupied", g.Attach(C(0, 0), NewBall(White, 1)), ErrOccupied},
		{"negative column", g.Attach(C(-1, 0), NewBall(White, 1)), ErrOutOfBounds},
		{"row past top", g.Attach(C(0, 3), NewBall(White, 1)), ErrOutOfBounds},
		{"detach empty", g.Detach(C(2, 2)), ErrUnoccupied},
		{"detach out of bounds", g.Detach(C(5, 0)), ErrOutOfBounds},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.want) {
				t.Errorf("got %v, want %v", tt.err, tt.want)
			}
		})
	}

	if g.Count() != 1 {
		t.Errorf("rejected operations changed the grid: Count = %d", g.Count())
	}
}

func TestDetachSplitsLine(t *testing.T) {
	g, _ := newTestGrid(5, 2)
	a, b, c, d := C(0, 0), C(1, 0), C(2, 0), C(3, 0)
	for _, co := range []Coord{a, b, c, d} {
		mustAttach(t, g, co, NewBall(White, 1))
	}

	if err := g.Detach(b); err != nil {
		t.Fatalf("Detach failed: %v", err)
	}

	if got := g.GroupOf(a); !reflect.DeepEqual(got, []Coord{a}) {
		t.Errorf("GroupOf(A) = %v, want [A]", got)
	}
	want := []Coord{c, d}
	if got := g.GroupOf(c); !reflect.DeepEqual(got, want) {
		t.Errorf("GroupOf(C) = %v, want %v", got, want)
	}
	if got := g.GroupOf(d); !reflect.DeepEqual(got, want) {
		t.Errorf("GroupOf(D) = %v, want %v", got, want)
	}
	if g.GroupCount() != 2 {
		t.Errorf("GroupCount = %d, want 2", g.GroupCount())
	}
	if err := g.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestDetachMasterReassigns(t *testing.T) {
	g, _ := newTestGrid(3, 3)
	mustAttach(t, g, C(0, 0), NewBall(Red, 1))
	mustAttach(t, g, C(0, 1), NewBall(Red, 1))
	mustAttach(t, g, C(1, 1), NewBall(Red, 1))

	if err := g.Detach(C(0, 0)); err != nil {
		t.Fatalf("Detach failed: %v", err)
	}
	cell, _ := g.CellAt(C(1, 1))
	if cell.Master() != C(0, 1) {
		t.Errorf("new master = %v, want (0,1)", cell.Master())
	}
	if err := g.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestDetachSplitsIntoThree(t *testing.T) {
	// A plus shape: removing the center leaves four arms.
	g, _ := newTestGrid(3, 3)
	center := C(1, 1)
	arms := []Coord{C(0, 1), C(2, 1), C(1, 0), C(1, 2)}
	mustAttach(t, g, center, NewBall(Blue, 1))
	for _, a := range arms {
		mustAttach(t, g, a, NewBall(Blue, 1))
	}

	if err := g.Detach(center); err != nil {
		t.Fatalf("Detach failed: %v", err)
	}
	if g.GroupCount() != len(arms) {
		t.Errorf("GroupCount = %d, want %d", g.GroupCount(), len(arms))
	}
	for _, a := range arms {
		if len(g.GroupOf(a)) != 1 {
			t.Errorf("arm %v should be isolated", a)
		}
	}
}

func TestAttachDetachRoundTrip(t *testing.T) {
	g, _ := newTestGrid(3, 3)
	mustAttach(t, g, C(1, 1), NewBall(White, 5))
	if err := g.Detach(C(1, 1)); err != nil {
		t.Fatalf("Detach failed: %v", err)
	}

	if g.Count() != 0 || g.GroupCount() != 0 {
		t.Errorf("residual state: %d cells, %d groups", g.Count(), g.GroupCount())
	}
	if g.Occupied(C(1, 1)) {
		t.Error("cell still occupied")
	}
}

func TestCeilingBlocksConnections(t *testing.T) {
	g := NewGrid(2, 4, 2, nil)
	mustAttach(t, g, C(0, 1), NewBall(White, 1))
	mustAttach(t, g, C(0, 2), NewBall(White, 1))

	if len(g.GroupOf(C(0, 1))) != 1 {
		t.Error("cells above the ceiling must not connect")
	}
	total, err := g.ScoreGroupAt(C(0, 2))
	if err != nil || total != 0 {
		t.Errorf("ScoreGroupAt above ceiling = %d, %v; want 0, nil", total, err)
	}
	if !g.Occupied(C(0, 2)) {
		t.Error("scoring above the ceiling must not destroy anything")
	}
}

func TestCorruptedGroupPanics(t *testing.T) {
	g, _ := newTestGrid(3, 1)
	mustAttach(t, g, C(0, 0), NewBall(White, 1))
	mustAttach(t, g, C(1, 0), NewBall(White, 1))

	// Point a member at itself.
	g.cells[C(1, 0)].master = C(1, 0)

	defer func() {
		r := recover()
		ie, ok := r.(*InvariantError)
		if !ok {
			t.Fatalf("expected *InvariantError panic, got %v", r)
		}
		if ie.Op != "score" {
			t.Errorf("Op = %q, want score", ie.Op)
		}
	}()
	_, _ = g.ScoreGroupAt(C(0, 0))
}

func TestValidateDetectsCorruption(t *testing.T) {
	g, _ := newTestGrid(3, 1)
	mustAttach(t, g, C(0, 0), NewBall(White, 1))
	mustAttach(t, g, C(1, 0), NewBall(White, 1))
	if err := g.Validate(); err != nil {
		t.Fatalf("Validate on healthy grid: %v", err)
	}

	g.groups[C(0, 0)] = []Coord{C(1, 0)}
	if err := g.Validate(); err == nil {
		t.Error("Validate should report a group that omits its master")
	}
}

// TestRandomOperationsKeepInvariants drives the grid through random attaches
// and detaches and checks uniqueness, symmetry, homogeneity and maximality
// after every step.
func TestRandomOperationsKeepInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	g, _ := newTestGrid(6, 8)
	colors := []ColorKey{White, Red, Blue}

	for step := 0; step < 2000; step++ {
		c := C(rng.Intn(6), rng.Intn(8))
		if g.Occupied(c) {
			if err := g.Detach(c); err != nil {
				t.Fatalf("step %d: Detach(%v): %v", step, c, err)
			}
		} else {
			p := NewBall(colors[rng.Intn(len(colors))], rng.Intn(10))
			if rng.Intn(10) == 0 {
				p = NewBomb()
			}
			if err := g.Attach(c, p); err != nil {
				t.Fatalf("step %d: Attach(%v): %v", step, c, err)
			}
		}

		if err := g.Validate(); err != nil {
			t.Fatalf("step %d: %v", step, err)
		}
		checkGroupProperties(t, g)
	}
}

func checkGroupProperties(t *testing.T, g *Grid) {
	t.Helper()
	owner := make(map[Coord]int)
	for _, a := range g.Coords() {
		group := g.GroupOf(a)
		cellA, _ := g.CellAt(a)
		for _, b := range group {
			owner[b]++
			if !containsCoord(g.GroupOf(b), a) {
				t.Fatalf("GroupOf not symmetric: %v in GroupOf(%v) but not reverse", b, a)
			}
			cellB, _ := g.CellAt(b)
			if len(group) > 1 && cellB.Color != cellA.Color {
				t.Fatalf("group of %v mixes colors", a)
			}
			for _, n := range b.Neighbors() {
				if g.connects(b, n) && !containsCoord(group, n) {
					t.Fatalf("group of %v excludes connected neighbor %v", a, n)
				}
			}
		}
	}
	for c := range owner {
		if owner[c] != len(g.GroupOf(c)) {
			t.Fatalf("%v appears in more than one group", c)
		}
	}
}

func TestGridString(t *testing.T) {
	g, _ := newTestGrid(3, 2)
	mustAttach(t, g, C(0, 0), NewBall(White, 1))
	mustAttach(t, g, C(1, 0), NewBall(Red, 1))
	mustAttach(t, g, C(1, 1), NewBomb())

	want := ".@.\nWR.\n"
	if got := g.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
