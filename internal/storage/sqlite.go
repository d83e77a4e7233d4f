// Package storage keeps solo scores and duel results in a local SQLite
// file through the pure-Go modernc.org/sqlite driver.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/vovakirdan/clawful/internal/multiplayer"
)

// sqliteTime is the text layout of CURRENT_TIMESTAMP.
const sqliteTime = "2006-01-02 15:04:05"

const schema = `
CREATE TABLE IF NOT EXISTS scores (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	game_id    TEXT NOT NULL,
	score      INTEGER NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_scores_rank ON scores(game_id, score DESC);

CREATE TABLE IF NOT EXISTS duel_matches (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	match_id      TEXT NOT NULL UNIQUE,
	game_id       TEXT NOT NULL,
	score1        INTEGER NOT NULL DEFAULT 0,
	score2        INTEGER NOT NULL DEFAULT 0,
	winner        INTEGER NOT NULL DEFAULT 0,
	end_reason    TEXT NOT NULL,
	duration_secs INTEGER NOT NULL DEFAULT 0,
	created_at    DATETIME DEFAULT CURRENT_TIMESTAMP
);
`

const (
	scoreColumns = `id, game_id, score, created_at`
	duelColumns  = `id, match_id, game_id, score1, score2, winner, end_reason, duration_secs, created_at`
)

// Store is an open score database.
type Store struct {
	db *sql.DB
}

// ScoreEntry is one finished solo game.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Score     int
	CreatedAt time.Time
}

// DuelResult is one finished local duel.
type DuelResult struct {
	ID        int64
	MatchID   string
	GameID    string
	Score1    int
	Score2    int
	Winner    int    // 1 or 2, 0 on a tie
	EndReason string // completed, overflow, no moves or quit
	Duration  int    // seconds
	CreatedAt time.Time
}

// GameStats aggregates the scores of one mode.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

var _ multiplayer.MatchResultSaver = (*Store)(nil)

// Open opens the database at path, creating it and its directory when
// missing. A leading ~ expands to the home directory.
func Open(path string) (*Store, error) {
	if rest, ok := strings.CutPrefix(path, "~"); ok {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, rest)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory for %s: %w", path, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// parseTime accepts either a time.Time or the raw CURRENT_TIMESTAMP text,
// depending on what the driver returns for a column.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTime, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// collect runs a query and scans every row with scan.
func collect[T any](db *sql.DB, what string, scan func(scanner) (T, error), query string, args ...any) ([]T, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query %s: %w", what, err)
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan %s: %w", what, err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: reading %s: %w", what, err)
	}
	return out, nil
}

func scanScore(row scanner) (ScoreEntry, error) {
	var e ScoreEntry
	var at any
	err := row.Scan(&e.ID, &e.GameID, &e.Score, &at)
	e.CreatedAt = parseTime(at)
	return e, err
}

func scanDuel(row scanner) (DuelResult, error) {
	var d DuelResult
	var at any
	err := row.Scan(&d.ID, &d.MatchID, &d.GameID, &d.Score1, &d.Score2,
		&d.Winner, &d.EndReason, &d.Duration, &at)
	d.CreatedAt = parseTime(at)
	return d, err
}

func scanStats(row scanner) (GameStats, error) {
	var gs GameStats
	var last any
	err := row.Scan(&gs.GameID, &gs.GamesCount, &gs.HighScore, &gs.AvgScore, &gs.TotalScore, &last)
	gs.LastPlayed = parseTime(last)
	return gs, err
}

// SaveScore records a solo score and returns its row id.
func (s *Store) SaveScore(gameID string, score int) (int64, error) {
	res, err := s.db.Exec(`INSERT INTO scores (game_id, score) VALUES (?, ?)`, gameID, score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}
	return res.LastInsertId()
}

// TopScores returns the best limit scores of a mode, highest first. A
// non-positive limit means 10.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return collect(s.db, "scores", scanScore,
		`SELECT `+scoreColumns+` FROM scores WHERE game_id = ? ORDER BY score DESC, id ASC LIMIT ?`,
		gameID, limit)
}

// AllScores returns every score of a mode, highest first.
func (s *Store) AllScores(gameID string) ([]ScoreEntry, error) {
	return collect(s.db, "scores", scanScore,
		`SELECT `+scoreColumns+` FROM scores WHERE game_id = ? ORDER BY score DESC, id ASC`,
		gameID)
}

// HighScore returns the best score of a mode, or 0 if it was never played.
func (s *Store) HighScore(gameID string) (int, error) {
	var best int
	err := s.db.QueryRow(`SELECT COALESCE(MAX(score), 0) FROM scores WHERE game_id = ?`, gameID).Scan(&best)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return best, nil
}

// ClearScores deletes every score of a mode.
func (s *Store) ClearScores(gameID string) error {
	if _, err := s.db.Exec(`DELETE FROM scores WHERE game_id = ?`, gameID); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// SaveDuel records a duel and returns its row id. Match ids are unique.
func (s *Store) SaveDuel(d DuelResult) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO duel_matches (match_id, game_id, score1, score2, winner, end_reason, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		d.MatchID, d.GameID, d.Score1, d.Score2, d.Winner, d.EndReason, d.Duration)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save duel %s: %w", d.MatchID, err)
	}
	return res.LastInsertId()
}

// SaveMatchResult stores a finished duel for the multiplayer package.
func (s *Store) SaveMatchResult(r multiplayer.MatchResultData) error {
	_, err := s.SaveDuel(DuelResult{
		MatchID:   r.MatchID,
		GameID:    r.GameID,
		Score1:    r.Score1,
		Score2:    r.Score2,
		Winner:    r.Winner,
		EndReason: r.EndReason,
		Duration:  r.DurationSecs,
	})
	return err
}

// DuelByID looks a duel up by match id. A missing duel is nil, nil.
func (s *Store) DuelByID(matchID string) (*DuelResult, error) {
	d, err := scanDuel(s.db.QueryRow(`SELECT `+duelColumns+` FROM duel_matches WHERE match_id = ?`, matchID))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("storage: cannot query duel: %w", err)
	}
	return &d, nil
}

// RecentDuels returns the latest duels, newest first. A non-positive
// limit means 20.
func (s *Store) RecentDuels(limit int) ([]DuelResult, error) {
	if limit <= 0 {
		limit = 20
	}
	return collect(s.db, "duels", scanDuel,
		`SELECT `+duelColumns+` FROM duel_matches ORDER BY created_at DESC, id DESC LIMIT ?`,
		limit)
}

// aggregates follows the game id column in both stats queries.
const aggregates = `COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0), MAX(created_at)`

// GetGameStats aggregates one mode. A mode without scores yields zero
// counts rather than an error.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	gs, err := scanStats(s.db.QueryRow(
		`SELECT ?, `+aggregates+` FROM scores WHERE game_id = ?`,
		gameID, gameID))
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	return &gs, nil
}

// GetAllGamesStats aggregates every mode that has at least one score.
func (s *Store) GetAllGamesStats() (map[string]*GameStats, error) {
	list, err := collect(s.db, "stats", scanStats,
		`SELECT game_id, `+aggregates+` FROM scores GROUP BY game_id`)
	if err != nil {
		return nil, err
	}
	out := make(map[string]*GameStats, len(list))
	for i := range list {
		out[list[i].GameID] = &list[i]
	}
	return out, nil
}
