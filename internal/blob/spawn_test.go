package blob

import (
	"reflect"
	"testing"
)

func TestSpawnerDeterministic(t *testing.T) {
	a := NewSpawner(0, DefaultSpawnOptions())
	b := NewSpawner(DefaultSeed, DefaultSpawnOptions())
	for i := 0; i < 100; i++ {
		pa, pb := a.Next(), b.Next()
		if !reflect.DeepEqual(pa, pb) {
			t.Fatalf("draw %d differs: %+v vs %+v", i, pa, pb)
		}
	}
}

func TestSpawnerDistribution(t *testing.T) {
	s := NewSpawner(1, DefaultSpawnOptions())
	var bombs, multipliers, balls int
	colors := make(map[ColorKey]bool)
	for i := 0; i < 2000; i++ {
		p := s.Next()
		switch {
		case p.IsAreaEffect():
			bombs++
		case p.IsMultiplier():
			multipliers++
			colors[p.Color] = true
		default:
			balls++
			colors[p.Color] = true
			if p.Points < 0 || p.Points > MaxPointValue {
				t.Fatalf("points %d out of range", p.Points)
			}
		}
	}
	if bombs < 100 || bombs > 300 {
		t.Errorf("bombs = %d, expected about 10%%", bombs)
	}
	if multipliers == 0 {
		t.Error("no multipliers drawn")
	}
	if len(colors) != 2 || !colors[White] || !colors[Red] {
		t.Errorf("colors = %v, want white and red", colors)
	}
}

func TestSpawnerBombChanceBounds(t *testing.T) {
	opts := DefaultSpawnOptions()
	opts.BombChance = 0
	s := NewSpawner(3, opts)
	for i := 0; i < 200; i++ {
		if s.Next().IsAreaEffect() {
			t.Fatal("bomb drawn with zero chance")
		}
	}
	s.SetBombChance(1)
	if !s.Next().IsAreaEffect() {
		t.Error("expected a bomb with chance 1")
	}
}

func TestPile(t *testing.T) {
	p := NewPile(3)
	p.Add(NewBall(White, 1))
	p.Add(NewBomb())
	p.Add(NewBall(Red, 2))
	if p.Add(NewBall(Red, 3)) {
		t.Error("Add succeeded on a full pile")
	}
	if !p.Full() || p.Stuck() {
		t.Error("full pile with a bomb is not stuck")
	}

	bomb, ok := p.Take(1)
	if !ok || !bomb.IsAreaEffect() {
		t.Fatalf("Take(1) = %+v, %v", bomb, ok)
	}
	if p.Len() != 2 || p.HasBomb() {
		t.Errorf("after take: len %d, bomb %v", p.Len(), p.HasBomb())
	}
	if _, ok := p.Take(5); ok {
		t.Error("Take out of range succeeded")
	}

	p.Add(NewBall(White, 4))
	if !p.Stuck() {
		t.Error("full pile without bombs should be stuck")
	}
}

func TestSpawnSchedulerOneSpawnPerTick(t *testing.T) {
	s := NewSpawnScheduler(2)
	var log []int
	for tick := 0; tick < 8; tick++ {
		s.Advance()
		for id := 0; id < 2; id++ {
			if s.Allow(id) {
				log = append(log, int(s.Tick())*10+id)
			}
		}
	}
	// tick 2: spawner 0; tick 3: spawner 1; then each every 2 ticks.
	want := []int{20, 31, 40, 51, 60, 71, 80}
	if !reflect.DeepEqual(log, want) {
		t.Errorf("spawns = %v, want %v", log, want)
	}
}

func TestHopperFillsSharedPile(t *testing.T) {
	pile := NewPile(4)
	h := NewHopper(pile, NewSpawnScheduler(1),
		NewSpawner(1, DefaultSpawnOptions()),
		NewSpawner(2, DefaultSpawnOptions()),
	)
	added := 0
	for i := 0; i < 10; i++ {
		if h.Step() {
			added++
		}
	}
	if added != 4 || !pile.Full() {
		t.Errorf("added %d pieces, pile len %d; want 4, full", added, pile.Len())
	}

	empty := NewHopper(NewPile(5), NewSpawnScheduler(1), NewSpawner(0, DefaultSpawnOptions()))
	empty.Fill(3)
	if empty.Pile.Len() != 3 {
		t.Errorf("Fill(3) left %d pieces", empty.Pile.Len())
	}
}
