package blob

import "math/rand"

// DefaultSeed makes unseeded spawners reproducible.
const DefaultSeed = 42

// SpawnOptions controls what a Spawner produces.
type SpawnOptions struct {
	Colors      []ColorKey
	MaxPoints   int     // additive values are drawn from 0..MaxPoints
	Multipliers bool    // adds one multiplier outcome to the value draw
	BombChance  float64 // probability of a bomb instead of a ball
}

// DefaultSpawnOptions returns two colors, values 0-9 plus a multiplier, and
// 10% bombs.
func DefaultSpawnOptions() SpawnOptions {
	return SpawnOptions{
		Colors:      []ColorKey{White, Red},
		MaxPoints:   MaxPointValue,
		Multipliers: true,
		BombChance:  0.1,
	}
}

// Spawner draws pieces from a seeded source.
type Spawner struct {
	rng  *rand.Rand
	opts SpawnOptions
}

// NewSpawner creates a spawner. Seed 0 selects DefaultSeed.
func NewSpawner(seed int64, opts SpawnOptions) *Spawner {
	if seed == 0 {
		seed = DefaultSeed
	}
	if len(opts.Colors) == 0 {
		opts.Colors = []ColorKey{White}
	}
	if opts.MaxPoints < 0 {
		opts.MaxPoints = 0
	}
	return &Spawner{
		rng:  rand.New(rand.NewSource(seed)),
		opts: opts,
	}
}

// SetBombChance changes the bomb probability for later draws.
func (s *Spawner) SetBombChance(p float64) {
	s.opts.BombChance = p
}

// Next draws a piece. Every value outcome, the multiplier included, is
// equally likely.
func (s *Spawner) Next() Piece {
	if s.rng.Float64() < s.opts.BombChance {
		return NewBomb()
	}
	color := s.opts.Colors[s.rng.Intn(len(s.opts.Colors))]
	outcomes := s.opts.MaxPoints + 1
	if s.opts.Multipliers {
		outcomes++
	}
	v := s.rng.Intn(outcomes)
	if v > s.opts.MaxPoints {
		return NewMultiplier(color)
	}
	return NewBall(color, v)
}

// Intn exposes the spawner's source for callers that need matching
// determinism, such as autoplayers.
func (s *Spawner) Intn(n int) int {
	return s.rng.Intn(n)
}

// Pile is the hopper of pieces waiting for a claw.
type Pile struct {
	capacity int
	pieces   []Piece
}

// NewPile creates an empty pile holding at most capacity pieces.
func NewPile(capacity int) *Pile {
	if capacity <= 0 {
		capacity = 1
	}
	return &Pile{capacity: capacity}
}

// Len returns the number of waiting pieces.
func (p *Pile) Len() int { return len(p.pieces) }

// Cap returns the capacity.
func (p *Pile) Cap() int { return p.capacity }

// Full reports whether the pile is at capacity.
func (p *Pile) Full() bool { return len(p.pieces) >= p.capacity }

// Add appends a piece; it returns false when the pile is full.
func (p *Pile) Add(pc Piece) bool {
	if p.Full() {
		return false
	}
	p.pieces = append(p.pieces, pc)
	return true
}

// Peek returns the piece at index i.
func (p *Pile) Peek(i int) (Piece, bool) {
	if i < 0 || i >= len(p.pieces) {
		return Piece{}, false
	}
	return p.pieces[i], true
}

// Take removes and returns the piece at index i.
func (p *Pile) Take(i int) (Piece, bool) {
	pc, ok := p.Peek(i)
	if !ok {
		return Piece{}, false
	}
	p.pieces = append(p.pieces[:i], p.pieces[i+1:]...)
	return pc, true
}

// HasBomb reports whether any waiting piece is an area effect.
func (p *Pile) HasBomb() bool {
	for _, pc := range p.pieces {
		if pc.IsAreaEffect() {
			return true
		}
	}
	return false
}

// Pieces returns a copy of the waiting pieces.
func (p *Pile) Pieces() []Piece {
	out := make([]Piece, len(p.pieces))
	copy(out, p.pieces)
	return out
}

// Stuck reports the no-moves condition: the pile is full and nothing in it
// can clear the board.
func (p *Pile) Stuck() bool {
	return p.Full() && !p.HasBomb()
}

// SpawnScheduler throttles every spawner of one match: at most one spawn per
// tick overall, and each spawner waits interval ticks between its own spawns.
type SpawnScheduler struct {
	interval int
	tick     uint64
	used     bool
	last     map[int]uint64
}

// NewSpawnScheduler creates a scheduler. Interval values below 1 mean every
// tick.
func NewSpawnScheduler(interval int) *SpawnScheduler {
	if interval < 1 {
		interval = 1
	}
	return &SpawnScheduler{interval: interval, last: make(map[int]uint64)}
}

// SetInterval changes the per-spawner interval.
func (s *SpawnScheduler) SetInterval(interval int) {
	if interval < 1 {
		interval = 1
	}
	s.interval = interval
}

// Advance moves to the next tick.
func (s *SpawnScheduler) Advance() {
	s.tick++
	s.used = false
}

// Tick returns the current tick.
func (s *SpawnScheduler) Tick() uint64 { return s.tick }

// Allow reports whether spawner id may spawn now, and records the spawn if so.
func (s *SpawnScheduler) Allow(id int) bool {
	if s.used {
		return false
	}
	last, seen := s.last[id]
	if seen && s.tick-last < uint64(s.interval) {
		return false
	}
	if !seen && s.tick < uint64(s.interval) {
		return false
	}
	s.used = true
	s.last[id] = s.tick
	return true
}

// Hopper feeds one pile from several spawners under a shared scheduler.
type Hopper struct {
	Pile      *Pile
	Scheduler *SpawnScheduler
	spawners  []*Spawner
	next      int
}

// NewHopper wires spawners to a pile.
func NewHopper(pile *Pile, sched *SpawnScheduler, spawners ...*Spawner) *Hopper {
	return &Hopper{Pile: pile, Scheduler: sched, spawners: spawners}
}

// Spawners returns the attached spawners.
func (h *Hopper) Spawners() []*Spawner { return h.spawners }

// Step advances the scheduler one tick and lets at most one spawner add a
// piece. Spawners are offered the tick in rotation. It returns true if a
// piece was added.
func (h *Hopper) Step() bool {
	h.Scheduler.Advance()
	if h.Pile.Full() || len(h.spawners) == 0 {
		return false
	}
	for i := 0; i < len(h.spawners); i++ {
		id := (h.next + i) % len(h.spawners)
		if !h.Scheduler.Allow(id) {
			continue
		}
		h.Pile.Add(h.spawners[id].Next())
		h.next = (id + 1) % len(h.spawners)
		return true
	}
	return false
}

// Fill adds pieces until the pile holds n or is full, ignoring the schedule.
func (h *Hopper) Fill(n int) {
	if len(h.spawners) == 0 {
		return
	}
	for h.Pile.Len() < n && !h.Pile.Full() {
		h.Pile.Add(h.spawners[h.next].Next())
		h.next = (h.next + 1) % len(h.spawners)
	}
}
