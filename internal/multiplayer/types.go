// Package multiplayer holds the match bookkeeping for local two-player
// duels: identifiers, end reasons, winner resolution and the persistence
// hand-off.
package multiplayer

import (
	"fmt"
	"time"

	"github.com/vovakirdan/clawful/internal/core"
)

// PlayerID is an alias to core.PlayerID for convenience.
type PlayerID = core.PlayerID

// Re-export player constants for convenience.
const (
	Player1 = core.Player1
	Player2 = core.Player2
)

// MatchID uniquely identifies a game match.
type MatchID string

// NewMatchID derives a match id from the start time.
func NewMatchID(start time.Time) MatchID {
	return MatchID(fmt.Sprintf("duel-%d", start.UnixNano()))
}

// MatchMode defines how a game match is configured.
type MatchMode int

const (
	// MatchModeSolo is a single board.
	MatchModeSolo MatchMode = iota

	// MatchModeLocalDuel is two boards sharing one pile on one keyboard.
	MatchModeLocalDuel
)

// String returns a human-readable name for the match mode.
func (m MatchMode) String() string {
	switch m {
	case MatchModeSolo:
		return "Solo"
	case MatchModeLocalDuel:
		return "Local duel"
	default:
		return "Unknown"
	}
}

// Match tracks one running match.
type Match struct {
	id      MatchID
	mode    MatchMode
	gameID  string
	started time.Time
}

// NewMatch starts a match of the given game at time start.
func NewMatch(gameID string, mode MatchMode, start time.Time) *Match {
	return &Match{
		id:      NewMatchID(start),
		mode:    mode,
		gameID:  gameID,
		started: start,
	}
}

// ID returns the match identifier.
func (m *Match) ID() MatchID {
	return m.id
}

// Finish closes the match with the final scores.
func (m *Match) Finish(score1, score2 int, reason MatchEndReason, end time.Time) MatchResult {
	return MatchResult{
		MatchID:  m.id,
		GameID:   m.gameID,
		Reason:   reason,
		Winner:   Decide(score1, score2),
		Score1:   score1,
		Score2:   score2,
		Duration: end.Sub(m.started),
	}
}
