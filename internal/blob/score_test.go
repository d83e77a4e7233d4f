package blob

import (
	"errors"
	"reflect"
	"testing"
)

func TestScoreGroupAt(t *testing.T) {
	tests := []struct {
		name   string
		pieces map[Coord]Piece
		start  Coord
		want   int
	}{
		{
			name:   "singleton",
			pieces: map[Coord]Piece{C(0, 0): NewBall(White, 7)},
			start:  C(0, 0),
			want:   7,
		},
		{
			name: "multiplier doubles the sum",
			pieces: map[Coord]Piece{
				C(0, 0): NewBall(Red, 3),
				C(1, 0): NewBall(Red, 5),
				C(2, 0): NewMultiplier(Red),
			},
			start: C(0, 0),
			want:  16,
		},
		{
			name: "two multipliers quadruple",
			pieces: map[Coord]Piece{
				C(0, 0): NewBall(White, 2),
				C(0, 1): NewMultiplier(White),
				C(1, 0): NewMultiplier(White),
			},
			start: C(1, 0),
			want:  8,
		},
		{
			name: "other colors are not counted",
			pieces: map[Coord]Piece{
				C(0, 0): NewBall(White, 2),
				C(1, 0): NewBall(Red, 9),
				C(0, 1): NewBall(White, 3),
			},
			start: C(0, 1),
			want:  5,
		},
		{
			name:   "lone multiplier scores nothing",
			pieces: map[Coord]Piece{C(0, 0): NewMultiplier(Red)},
			start:  C(0, 0),
			want:   0,
		},
		{
			name:   "negative points",
			pieces: map[Coord]Piece{C(0, 0): NewBall(Blue, -3)},
			start:  C(0, 0),
			want:   -3,
		},
		{
			name:   "unoccupied start",
			pieces: map[Coord]Piece{C(0, 0): NewBall(Red, 4)},
			start:  C(2, 0),
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := newTestGrid(4, 4)
			for c, p := range tt.pieces {
				mustAttach(t, g, c, p)
			}
			got, err := g.ScoreGroupAt(tt.start)
			if err != nil {
				t.Fatalf("ScoreGroupAt failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("ScoreGroupAt(%v) = %d, want %d", tt.start, got, tt.want)
			}
		})
	}
}

func TestScoreDestroysEveryVisitedCell(t *testing.T) {
	g, rec := newTestGrid(4, 4)
	mustAttach(t, g, C(0, 0), NewBall(White, 0))
	mustAttach(t, g, C(1, 0), NewBall(White, 0))
	mustAttach(t, g, C(3, 0), NewBall(White, 4))

	total, _ := g.ScoreGroupAt(C(1, 0))
	if total != 0 {
		t.Errorf("total = %d, want 0", total)
	}
	if len(rec.Scores) != 0 {
		t.Errorf("zero total must not emit Scored, got %v", rec.Scores)
	}
	want := []Coord{C(0, 0), C(1, 0)}
	if !reflect.DeepEqual(rec.Destroyed, want) {
		t.Errorf("Destroyed = %v, want %v", rec.Destroyed, want)
	}
	if g.Occupied(C(0, 0)) || g.Occupied(C(1, 0)) {
		t.Error("zero-value group still attached")
	}
	if !g.Occupied(C(3, 0)) {
		t.Error("unrelated cell destroyed")
	}
}

func TestScoreNegativeTotalIsReported(t *testing.T) {
	g, rec := newTestGrid(4, 4)
	mustAttach(t, g, C(0, 0), NewBall(Blue, -3))
	mustAttach(t, g, C(1, 0), NewMultiplier(Blue))

	total, err := g.ScoreGroupAt(C(0, 0))
	if err != nil {
		t.Fatal(err)
	}
	if total != -6 {
		t.Errorf("total = %d, want -6", total)
	}
	want := []Score{{Origin: C(0, 0), Sum: -3, Multipliers: 1, Total: -6, Size: 2}}
	if !reflect.DeepEqual(rec.Scores, want) {
		t.Errorf("Scores = %+v, want %+v", rec.Scores, want)
	}
}

func TestScoreEventCarriesBreakdown(t *testing.T) {
	g, rec := newTestGrid(4, 4)
	mustAttach(t, g, C(0, 0), NewBall(Red, 3))
	mustAttach(t, g, C(1, 0), NewBall(Red, 5))
	mustAttach(t, g, C(2, 0), NewMultiplier(Red))

	if _, err := g.ScoreGroupAt(C(2, 0)); err != nil {
		t.Fatal(err)
	}
	want := []Score{{Origin: C(2, 0), Sum: 8, Multipliers: 1, Total: 16, Size: 3}}
	if !reflect.DeepEqual(rec.Scores, want) {
		t.Errorf("Scores = %+v, want %+v", rec.Scores, want)
	}
}

func TestScoreIsIdempotent(t *testing.T) {
	g, rec := newTestGrid(4, 4)
	mustAttach(t, g, C(0, 0), NewBall(White, 2))
	mustAttach(t, g, C(1, 0), NewBall(White, 3))

	first, _ := g.ScoreGroupAt(C(0, 0))
	destroyed := len(rec.Destroyed)
	second, err := g.ScoreGroupAt(C(1, 0))

	if first != 5 {
		t.Errorf("first score = %d, want 5", first)
	}
	if second != 0 || err != nil {
		t.Errorf("second score = %d, %v; want 0, nil", second, err)
	}
	if len(rec.Destroyed) != destroyed {
		t.Error("second scoring emitted destroy requests")
	}
	if len(rec.Scores) != 1 {
		t.Errorf("Scored emitted %d times, want 1", len(rec.Scores))
	}
}

func TestScoreOutOfBounds(t *testing.T) {
	g, _ := newTestGrid(2, 2)
	if _, err := g.ScoreGroupAt(C(5, 5)); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("err = %v, want ErrOutOfBounds", err)
	}
}

func TestScoreAreaEffect(t *testing.T) {
	g, rec := newTestGrid(5, 5)
	mustAttach(t, g, C(1, 2), NewBall(Red, 6))
	mustAttach(t, g, C(2, 1), NewBall(White, 4))
	mustAttach(t, g, C(2, 2), NewBomb())

	results := g.ScoreAreaEffect([]Coord{C(1, 2), C(3, 2), C(2, 1)})

	if want := []int{6, 0, 4}; !reflect.DeepEqual(results, want) {
		t.Errorf("results = %v, want %v", results, want)
	}
	if want := []int{6, 4}; !reflect.DeepEqual(rec.Totals(), want) {
		t.Errorf("Scored totals = %v, want %v", rec.Totals(), want)
	}
}

func TestScoreAreaEffectOverlap(t *testing.T) {
	// Left and down both reach the same L-shaped group.
	g, rec := newTestGrid(4, 4)
	mustAttach(t, g, C(0, 0), NewBall(White, 1))
	mustAttach(t, g, C(1, 0), NewBall(White, 2))
	mustAttach(t, g, C(0, 1), NewBall(White, 3))

	results := g.ScoreAreaEffect([]Coord{C(0, 1), C(1, 0), C(-1, 0)})

	if want := []int{6, 0, 0}; !reflect.DeepEqual(results, want) {
		t.Errorf("results = %v, want %v", results, want)
	}
	if len(rec.Scores) != 1 || len(rec.Destroyed) != 3 {
		t.Errorf("got %d scores, %d destroys; want 1, 3", len(rec.Scores), len(rec.Destroyed))
	}
}

func TestDestroyAtSplitsGroup(t *testing.T) {
	g, rec := newTestGrid(3, 1)
	mustAttach(t, g, C(0, 0), NewBall(White, 1))
	mustAttach(t, g, C(1, 0), NewBall(White, 1))
	mustAttach(t, g, C(2, 0), NewBall(White, 1))

	if err := g.DestroyAt(C(1, 0)); err != nil {
		t.Fatal(err)
	}
	if err := g.DestroyAt(C(1, 0)); err != nil {
		t.Errorf("second DestroyAt should be a no-op, got %v", err)
	}
	if g.GroupCount() != 2 {
		t.Errorf("GroupCount = %d, want 2", g.GroupCount())
	}
	if len(rec.Destroyed) != 1 {
		t.Errorf("Destroyed = %v, want one entry", rec.Destroyed)
	}
}
