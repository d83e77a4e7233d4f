package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/clawful/internal/core"
	"github.com/vovakirdan/clawful/internal/multiplayer"
	"github.com/vovakirdan/clawful/internal/registry"
	"github.com/vovakirdan/clawful/internal/storage"
)

// endReasoner is implemented by duel games that report why a match ended.
type endReasoner interface {
	EndReason() multiplayer.MatchEndReason
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game        registry.Game
	multi       registry.MultiGame // non-nil for duels
	screen      *core.Screen
	store       *storage.Store
	logger      *log.Logger
	keys        *KeyMapper
	config      core.RuntimeConfig
	inputFrame  core.InputFrame
	multiFrame  core.MultiInputFrame
	gameState   core.GameState
	match       *multiplayer.Match
	quitting    bool
	resultSaved bool // Whether the result has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		keys:       NewKeyMapper(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		multiFrame: core.NewMultiInputFrame(),
	}
	if mg, ok := game.(registry.MultiGame); ok {
		m.multi = mg
	}
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// start resets the game and opens a match record for duels.
func (m *Model) start() {
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.resultSaved = false
	m.match = nil
	if m.multi != nil {
		m.match = multiplayer.NewMatch(m.game.ID(), multiplayer.MatchModeLocalDuel, time.Now())
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	var isQuit bool
	if m.multi != nil {
		isQuit = m.keys.MapKeyToMultiFrame(msg, &m.multiFrame)
	} else {
		isQuit = m.keys.MapKeyToFrame(msg, &m.inputFrame)
	}
	if isQuit {
		if !m.gameState.GameOver {
			m.saveResult(multiplayer.MatchEndReasonQuit)
		}
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events. The game keeps running;
// Render adapts to the new size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

func (m Model) restartRequested() bool {
	if !m.gameState.GameOver {
		return false
	}
	if m.multi != nil {
		return m.multiFrame.Player1().Has(core.ActionRestart)
	}
	return m.inputFrame.Has(core.ActionRestart)
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.match == nil && m.multi != nil && !m.gameState.GameOver {
		m.match = multiplayer.NewMatch(m.game.ID(), multiplayer.MatchModeLocalDuel, time.Now())
	}

	if m.restartRequested() {
		m.config.Seed = time.Now().UnixNano()
		m.start()
		m.clearInput()
		return m, tickCmd(m.config.TickRate)
	}

	var result core.StepResult
	if m.multi != nil {
		result = m.multi.StepMulti(m.multiFrame)
	} else {
		result = m.game.Step(m.inputFrame)
	}
	m.gameState = result.State

	if m.gameState.GameOver && !m.resultSaved {
		reason := multiplayer.MatchEndReasonCompleted
		if er, ok := m.game.(endReasoner); ok {
			reason = er.EndReason()
		}
		m.saveResult(reason)
	}

	m.clearInput()
	return m, tickCmd(m.config.TickRate)
}

func (m *Model) clearInput() {
	m.inputFrame.Clear()
	m.multiFrame = core.NewMultiInputFrame()
}

// saveResult stores the solo score or the duel result once per game.
func (m *Model) saveResult(reason multiplayer.MatchEndReason) {
	if m.resultSaved {
		return
	}
	m.resultSaved = true

	if m.multi != nil {
		if m.match == nil {
			return
		}
		s1, s2 := m.multi.Scores()
		res := m.match.Finish(s1, s2, reason, time.Now())
		m.logger.Info("duel finished", "match", res.MatchID, "winner", res.Winner,
			"p1", s1, "p2", s2, "reason", res.Reason)
		if m.store == nil {
			return
		}
		if err := multiplayer.Record(m.store, res); err != nil {
			m.logger.Error("could not save duel", "error", err)
		}
		return
	}

	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), m.gameState.Score); err != nil {
		m.logger.Error("could not save score", "game", m.game.ID(), "error", err)
	}
}

// screenshotDir is where ctrl+s writes the screen.
func screenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".clawful", "screenshots")
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := screenshotDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot dir", "dir", dir, "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "path", path, "error", err)
		return
	}
	m.logger.Debug("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
