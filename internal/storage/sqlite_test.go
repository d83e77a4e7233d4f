package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/clawful/internal/multiplayer"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesNestedDirs(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{100, 50, 200} {
		if _, err := store.SaveScore("clawful", s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("clawful_chain", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("clawful", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	for i, want := range []int{200, 100, 50} {
		if scores[i].Score != want {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, want)
		}
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt was not parsed")
	}

	chain, err := store.TopScores("clawful_chain", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(chain) != 1 {
		t.Errorf("Expected 1 chain score, got %d", len(chain))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)
	for i := 0; i < 5; i++ {
		store.SaveScore("clawful", (i+1)*100)
	}

	scores, err := store.TopScores("clawful", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	all, err := store.AllScores("clawful")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("Expected 5 scores, got %d", len(all))
	}
}

func TestStoreHighScoreAndClear(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("clawful")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("clawful", 100)
	store.SaveScore("clawful", 300)
	store.SaveScore("clawful_chain", 900)

	if high, _ = store.HighScore("clawful"); high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}

	if err := store.ClearScores("clawful"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if left, _ := store.TopScores("clawful", 10); len(left) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(left))
	}
	if other, _ := store.TopScores("clawful_chain", 10); len(other) != 1 {
		t.Error("Clearing one game affected another")
	}
}

func TestStoreDuels(t *testing.T) {
	store := openTestStore(t)

	results := []multiplayer.MatchResultData{
		{MatchID: "duel-1", GameID: "clawful_duel", Score1: 40, Score2: 12, Winner: 1, EndReason: "no moves", DurationSecs: 61},
		{MatchID: "duel-2", GameID: "clawful_duel", Score1: 9, Score2: 9, Winner: 0, EndReason: "overflow", DurationSecs: 30},
	}
	for _, r := range results {
		if err := store.SaveMatchResult(r); err != nil {
			t.Fatalf("SaveMatchResult(%s) failed: %v", r.MatchID, err)
		}
	}

	if err := store.SaveMatchResult(results[0]); err == nil {
		t.Error("duplicate match id should be rejected")
	}

	d, err := store.DuelByID("duel-2")
	if err != nil {
		t.Fatalf("DuelByID() failed: %v", err)
	}
	if d == nil || d.Winner != 0 || d.Score1 != 9 || d.EndReason != "overflow" || d.Duration != 30 {
		t.Errorf("DuelByID(duel-2) = %+v", d)
	}

	missing, err := store.DuelByID("duel-404")
	if err != nil || missing != nil {
		t.Errorf("DuelByID(missing) = %+v, %v; want nil, nil", missing, err)
	}

	recent, err := store.RecentDuels(10)
	if err != nil {
		t.Fatalf("RecentDuels() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].MatchID != "duel-2" {
		t.Errorf("RecentDuels = %+v, want duel-2 first", recent)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)
	store.SaveScore("clawful", 10)
	store.SaveScore("clawful", 30)
	store.SaveScore("clawful_chain", 7)

	stats, err := store.GetGameStats("clawful")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 30 || stats.AvgScore != 20 || stats.TotalScore != 40 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed not set")
	}

	empty, err := store.GetGameStats("clawful_duel")
	if err != nil {
		t.Fatalf("GetGameStats(empty) failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 || all["clawful_chain"].HighScore != 7 {
		t.Errorf("GetAllGamesStats = %v", all)
	}
}
