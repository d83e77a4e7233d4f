package multiplayer

import (
	"fmt"
	"time"
)

// MatchEndReason describes why a match ended.
type MatchEndReason int

const (
	MatchEndReasonCompleted MatchEndReason = iota // Both players finished
	MatchEndReasonOverflow                        // A board overflowed its ceiling
	MatchEndReasonNoMoves                         // The shared pile is stuck
	MatchEndReasonQuit                            // A player left the match
)

func (r MatchEndReason) String() string {
	switch r {
	case MatchEndReasonCompleted:
		return "completed"
	case MatchEndReasonOverflow:
		return "overflow"
	case MatchEndReasonNoMoves:
		return "no moves"
	case MatchEndReasonQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// MatchResult contains the outcome of a completed match.
type MatchResult struct {
	MatchID  MatchID
	GameID   string
	Reason   MatchEndReason
	Winner   PlayerID // 0 on a tie
	Score1   int
	Score2   int
	Duration time.Duration
}

// Tie reports whether neither player won.
func (r MatchResult) Tie() bool {
	return r.Winner == 0
}

// Decide returns the player with the higher score, or 0 on a tie.
func Decide(score1, score2 int) PlayerID {
	switch {
	case score1 > score2:
		return Player1
	case score2 > score1:
		return Player2
	default:
		return 0
	}
}

// Outcome announces the winner.
func Outcome(winner PlayerID) string {
	if winner == 0 {
		return "Players 1 & 2 tied!"
	}
	return fmt.Sprintf("Player %d won!", int(winner))
}

// MatchResultSaver is an interface for saving match results.
// Storage implements it so this package does not import storage.
type MatchResultSaver interface {
	SaveMatchResult(result MatchResultData) error
}

// MatchResultData contains match result data for persistence.
type MatchResultData struct {
	MatchID      string
	GameID       string
	Score1       int
	Score2       int
	Winner       int
	EndReason    string
	DurationSecs int
}

// Data flattens the result for a MatchResultSaver.
func (r MatchResult) Data() MatchResultData {
	return MatchResultData{
		MatchID:      string(r.MatchID),
		GameID:       r.GameID,
		Score1:       r.Score1,
		Score2:       r.Score2,
		Winner:       int(r.Winner),
		EndReason:    r.Reason.String(),
		DurationSecs: int(r.Duration / time.Second),
	}
}

// Record hands the result to saver. A nil saver is allowed and does nothing.
func Record(saver MatchResultSaver, r MatchResult) error {
	if saver == nil {
		return nil
	}
	if err := saver.SaveMatchResult(r.Data()); err != nil {
		return fmt.Errorf("multiplayer: cannot record match %s: %w", r.MatchID, err)
	}
	return nil
}
