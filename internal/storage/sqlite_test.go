package storage

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
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

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsScores(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.SaveScore("creeps", 12)
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("creeps")
	if err != nil || high != 12 {
		t.Errorf("HighScore() = %d, %v; expected 12", high, err)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{100, 50, 200} {
		if _, err := store.SaveScore("creeps", s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("other", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("creeps", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not sorted descending: %v", scores)
	}
	for _, s := range scores {
		if s.GameID != "creeps" {
			t.Errorf("TopScores leaked game %q", s.GameID)
		}
	}
}

func TestStoreSaveRoundDifficulty(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRound("creeps", 30, "hard"); err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}
	store.SaveScore("creeps", 10)

	scores, err := store.TopScores("creeps", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if scores[0].Difficulty != "hard" {
		t.Errorf("difficulty = %q, expected hard", scores[0].Difficulty)
	}
	if scores[1].Difficulty != "" {
		t.Errorf("SaveScore difficulty = %q, expected empty", scores[1].Difficulty)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreTopScoresForDifficulty(t *testing.T) {
	store := openTestStore(t)

	store.SaveRound("creeps", 40, "hard")
	store.SaveRound("creeps", 90, "easy")
	store.SaveRound("creeps", 60, "hard")
	store.SaveScore("creeps", 70)

	hard, err := store.TopScoresForDifficulty("creeps", "hard", 10)
	if err != nil {
		t.Fatalf("TopScoresForDifficulty() failed: %v", err)
	}
	if len(hard) != 2 || hard[0].Score != 60 || hard[1].Score != 40 {
		t.Errorf("hard scores = %+v", hard)
	}

	plain, _ := store.TopScoresForDifficulty("creeps", "", 10)
	if len(plain) != 1 || plain[0].Score != 70 {
		t.Errorf("config-difficulty scores = %+v", plain)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100)
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("creeps")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("creeps", 100)
	store.SaveScore("creeps", 300)
	store.SaveScore("creeps", 200)

	high, err = store.HighScore("creeps")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("creeps", 100)
	store.SaveScore("creeps", 200)
	store.SaveScore("other", 300)

	if err := store.ClearScores("creeps"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("creeps", 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if scores, _ := store.TopScores("other", 10); len(scores) != 1 {
		t.Error("Other games should not be affected by clearing creeps")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveScore("test", i*10)
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("creeps")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveScore("creeps", 10)
	store.SaveScore("creeps", 30)

	stats, err := store.GetGameStats("creeps")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 30 || stats.AvgScore != 20 || stats.TotalScore != 40 {
		t.Errorf("stats = %+v", stats)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 1 || all["creeps"].HighScore != 30 {
		t.Errorf("all stats = %+v", all)
	}
}

func TestStoreNestedPath(t *testing.T) {
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

func TestOpenUpgradesArcadeDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "arcade.db")

	// Scores table as written by the arcade, before difficulty existed
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatal(err)
	}
	_, err = db.Exec(`CREATE TABLE scores (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		game_id TEXT NOT NULL,
		score INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	INSERT INTO scores (game_id, score) VALUES ('snake', 40), ('creeps', 7);`)
	if err != nil {
		t.Fatal(err)
	}
	db.Close()

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() on old schema failed: %v", err)
	}
	defer store.Close()

	scores, err := store.TopScoresForDifficulty("creeps", "", 10)
	if err != nil {
		t.Fatalf("TopScoresForDifficulty() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 7 {
		t.Errorf("old rows should read back with empty difficulty, got %+v", scores)
	}

	if _, err := store.SaveRound("creeps", 9, "hard"); err != nil {
		t.Fatalf("SaveRound() after upgrade failed: %v", err)
	}

	var version int
	if err := store.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		t.Fatal(err)
	}
	if version != len(migrations) {
		t.Errorf("user_version = %d, want %d", version, len(migrations))
	}
}

func TestOpenTwiceIsIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	for i := 0; i < 2; i++ {
		store, err := Open(dbPath)
		if err != nil {
			t.Fatalf("Open() #%d failed: %v", i+1, err)
		}
		store.Close()
	}
}

func TestTopScoresDefaultLimit(t *testing.T) {
	store := openTestStore(t)
	for i := 0; i < 15; i++ {
		store.SaveScore("creeps", i)
	}
	top, err := store.TopScores("creeps", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(top) != defaultLimit {
		t.Fatalf("TopScores(0) = %d rows, want %d", len(top), defaultLimit)
	}
	if top[0].Score != 14 {
		t.Errorf("best = %d, want 14", top[0].Score)
	}
}
