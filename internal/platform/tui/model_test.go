package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/clawful/internal/core"
	"github.com/vovakirdan/clawful/internal/multiplayer"
	"github.com/vovakirdan/clawful/internal/registry"
	"github.com/vovakirdan/clawful/internal/storage"
)

// fakeGame ends after endAfter steps with a fixed score.
type fakeGame struct {
	id       string
	score    int
	endAfter int
	steps    int
	resets   int
}

func (g *fakeGame) ID() string               { return g.id }
func (g *fakeGame) Title() string            { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++; g.steps = 0 }
func (g *fakeGame) Render(dst *core.Screen)  { dst.DrawText(0, 0, "fake") }

func (g *fakeGame) Step(core.InputFrame) core.StepResult {
	g.steps++
	return core.StepResult{State: g.State()}
}

func (g *fakeGame) State() core.GameState {
	return core.GameState{Score: g.score, GameOver: g.steps >= g.endAfter}
}

type fakeDuel struct {
	fakeGame
	p1, p2 int
	reason multiplayer.MatchEndReason
}

func (d *fakeDuel) StepMulti(core.MultiInputFrame) core.StepResult {
	return d.Step(core.NewInputFrame())
}

func (d *fakeDuel) Scores() (int, int)                    { return d.p1, d.p2 }
func (d *fakeDuel) EndReason() multiplayer.MatchEndReason { return d.reason }

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestModel(g registry.Game, store *storage.Store) Model {
	m := NewModel(g, store, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1}, nil)
	m.Init()
	return m
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestModelSavesSoloScoreOnce(t *testing.T) {
	store := openTestStore(t)
	g := &fakeGame{id: "clawful", score: 42, endAfter: 2}
	m := newTestModel(g, store)

	for i := 0; i < 5; i++ {
		m = send(t, m, TickMsg{})
	}

	scores, err := store.TopScores("clawful", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 1 || scores[0].Score != 42 {
		t.Errorf("scores = %+v, want one entry of 42", scores)
	}
}

func TestModelRecordsDuel(t *testing.T) {
	store := openTestStore(t)
	d := &fakeDuel{fakeGame: fakeGame{id: "clawful_duel", endAfter: 2}, p1: 3, p2: 5,
		reason: multiplayer.MatchEndReasonOverflow}
	m := newTestModel(d, store)

	for i := 0; i < 4; i++ {
		m = send(t, m, TickMsg{})
	}

	duels, err := store.RecentDuels(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(duels) != 1 {
		t.Fatalf("duels = %+v, want one", duels)
	}
	got := duels[0]
	if got.Winner != 2 || got.Score1 != 3 || got.Score2 != 5 || got.EndReason != "overflow" {
		t.Errorf("duel = %+v", got)
	}
	if scores, _ := store.TopScores("clawful_duel", 10); len(scores) != 0 {
		t.Errorf("duel saved solo scores: %+v", scores)
	}
}

func TestModelRecordsQuitDuel(t *testing.T) {
	store := openTestStore(t)
	d := &fakeDuel{fakeGame: fakeGame{id: "clawful_duel", endAfter: 100}, p1: 7, p2: 7}
	m := newTestModel(d, store)

	m = send(t, m, TickMsg{})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !m.quitting {
		t.Fatal("q did not quit")
	}

	duels, _ := store.RecentDuels(10)
	if len(duels) != 1 || duels[0].EndReason != "quit" || duels[0].Winner != 0 {
		t.Errorf("duels = %+v, want one tied quit", duels)
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &fakeGame{id: "clawful", endAfter: 100}
	m := newTestModel(g, nil)
	m = send(t, m, TickMsg{})

	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	if g.resets != 1 || g.steps != 1 {
		t.Errorf("resize reset the game: resets %d, steps %d", g.resets, g.steps)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestModelRestartAfterGameOver(t *testing.T) {
	store := openTestStore(t)
	g := &fakeGame{id: "clawful", score: 9, endAfter: 1}
	m := newTestModel(g, store)

	// Restart is ignored while playing.
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = send(t, m, TickMsg{})
	if g.resets != 1 || !m.gameState.GameOver {
		t.Fatalf("resets %d, over %v", g.resets, m.gameState.GameOver)
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = send(t, m, TickMsg{})
	if g.resets != 2 {
		t.Fatalf("resets = %d, want 2", g.resets)
	}
	m = send(t, m, TickMsg{})

	scores, _ := store.TopScores("clawful", 10)
	if len(scores) != 2 {
		t.Errorf("scores = %+v, want one per game", scores)
	}
	if m.View() == "" {
		t.Error("View is empty")
	}
}
