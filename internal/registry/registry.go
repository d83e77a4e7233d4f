// Package registry lets game modes register themselves from init so the
// CLI and menus can list and build them by id.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/clawful/internal/core"
)

// Game is a single-seat game mode. Implementations hold pure logic: the
// platform owns timing, input mapping and terminal output.
type Game interface {
	// ID is the stable key used by the CLI and the score store.
	ID() string
	Title() string

	// Reset starts a fresh game; it is also how a finished game restarts.
	Reset(cfg core.RuntimeConfig)

	// Step advances one fixed tick with this tick's input.
	Step(in core.InputFrame) core.StepResult

	// Render draws into a pre-cleared screen.
	Render(dst *core.Screen)

	State() core.GameState
}

// MultiGame is a Game for two players sharing one keyboard. The platform
// drives it through StepMulti.
type MultiGame interface {
	Game
	StepMulti(in core.MultiInputFrame) core.StepResult
	Scores() (p1, p2 int)
}

// GameInfo describes a registered mode.
type GameInfo struct {
	ID    string
	Title string
	Multi bool
}

// Factory builds a new game instance.
type Factory func() Game

type entry struct {
	info GameInfo
	make Factory
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register adds a mode. It panics on a duplicate id.
func Register(id string, f Factory) {
	probe := f()
	_, multi := probe.(MultiGame)

	mu.Lock()
	defer mu.Unlock()
	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{
		info: GameInfo{ID: id, Title: probe.Title(), Multi: multi},
		make: f,
	}
}

// List returns every registered mode ordered by id.
func List() []GameInfo {
	mu.RLock()
	out := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.info)
	}
	mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Create builds a fresh instance of mode id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.make(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := entries[id]
	return ok
}
