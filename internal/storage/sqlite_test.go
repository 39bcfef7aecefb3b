package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tri-hunt/internal/game"
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
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Parent directories are created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.trihunt/scores.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".trihunt", "scores.db")); err != nil {
		t.Errorf("expected database under home: %v", err)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	results := []Result{
		{Player: "alice", Outcome: game.LostToTimeout, Collected: 4, Total: 10, Score: 400, Duration: 60 * time.Second},
		{Player: "bob", Outcome: game.Won, Collected: 10, Total: 10, TimeLeft: 21.5, Score: 1210, Duration: 38500 * time.Millisecond},
		{Player: "alice", Outcome: game.LostToObstacle, Collected: 7, Total: 10, TimeLeft: 12, Score: 700, Duration: 48 * time.Second},
	}
	for _, r := range results {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	top, err := store.TopResults(10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(top))
	}

	// Sorted by score descending
	wantScores := []int{1210, 700, 400}
	for i, want := range wantScores {
		if top[i].Score != want {
			t.Errorf("top[%d].Score = %d, expected %d", i, top[i].Score, want)
		}
	}

	best := top[0]
	if best.Player != "bob" || best.Outcome != game.Won {
		t.Errorf("unexpected best result: %+v", best)
	}
	if best.Duration != 38500*time.Millisecond {
		t.Errorf("duration round trip: got %v", best.Duration)
	}
	if best.TimeLeft != 21.5 {
		t.Errorf("time left round trip: got %v", best.TimeLeft)
	}
	if best.CreatedAt.IsZero() {
		t.Error("created_at was not populated")
	}
}

func TestStoreTopResultsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 15; i++ {
		if _, err := store.SaveResult(Result{Player: "p", Outcome: game.LostToTimeout, Score: i * 100}); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	top, err := store.TopResults(5)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(top) != 5 {
		t.Errorf("Expected 5 results, got %d", len(top))
	}
	if top[0].Score != 1400 {
		t.Errorf("Expected best score 1400, got %d", top[0].Score)
	}

	// Non-positive limit falls back to the default
	top, err = store.TopResults(0)
	if err != nil {
		t.Fatalf("TopResults(0) failed: %v", err)
	}
	if len(top) != 10 {
		t.Errorf("Expected default limit of 10, got %d", len(top))
	}
}

func TestStoreRecentResults(t *testing.T) {
	store := openTestStore(t)

	for _, player := range []string{"first", "second", "third"} {
		if _, err := store.SaveResult(Result{Player: player, Outcome: game.LostToTimeout}); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	recent, err := store.RecentResults(2)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(recent))
	}
	if recent[0].Player != "third" || recent[1].Player != "second" {
		t.Errorf("Expected newest first, got %s, %s", recent[0].Player, recent[1].Player)
	}
}

func TestStorePlayerResults(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []Result{
		{Player: "alice", Outcome: game.LostToTimeout, Score: 300},
		{Player: "bob", Outcome: game.Won, Score: 1500},
		{Player: "alice", Outcome: game.LostToObstacle, Score: 800},
	} {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	alice, err := store.PlayerResults("alice", 10)
	if err != nil {
		t.Fatalf("PlayerResults() failed: %v", err)
	}
	if len(alice) != 2 {
		t.Fatalf("Expected 2 results for alice, got %d", len(alice))
	}
	if alice[0].Score != 800 {
		t.Errorf("Expected alice's best to be 800, got %d", alice[0].Score)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	// Empty database
	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesPlayed != 0 || stats.BestScore != 0 || stats.WinRate() != 0 {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	for _, r := range []Result{
		{Player: "a", Outcome: game.Won, Collected: 10, Score: 1300},
		{Player: "a", Outcome: game.Won, Collected: 10, Score: 1100},
		{Player: "a", Outcome: game.LostToObstacle, Collected: 3, Score: 300},
		{Player: "a", Outcome: game.LostToTimeout, Collected: 5, Score: 500},
	} {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesPlayed != 4 {
		t.Errorf("GamesPlayed = %d, expected 4", stats.GamesPlayed)
	}
	if stats.Wins != 2 || stats.ObstacleLosses != 1 || stats.TimeoutLosses != 1 {
		t.Errorf("unexpected outcome counts: %+v", stats)
	}
	if stats.BestScore != 1300 {
		t.Errorf("BestScore = %d, expected 1300", stats.BestScore)
	}
	if stats.AvgCollected != 7 {
		t.Errorf("AvgCollected = %v, expected 7", stats.AvgCollected)
	}
	if stats.WinRate() != 0.5 {
		t.Errorf("WinRate() = %v, expected 0.5", stats.WinRate())
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed was not populated")
	}
}

func TestStoreClear(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveResult(Result{Player: "a", Outcome: game.Won, Score: 1000}); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}

	top, err := store.TopResults(10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(top) != 0 {
		t.Errorf("Expected no results after Clear, got %d", len(top))
	}
}

func TestResultFromSnapshot(t *testing.T) {
	snap := game.Snapshot{
		Outcome:   game.Won,
		Collected: 10,
		Total:     10,
		TimeLeft:  15.9,
	}

	r := ResultFromSnapshot("carol", snap, 44*time.Second)
	if r.Player != "carol" || r.Outcome != game.Won {
		t.Errorf("unexpected result: %+v", r)
	}
	if r.Score != 1150 {
		t.Errorf("Score = %d, expected 1150", r.Score)
	}
	if r.Duration != 44*time.Second {
		t.Errorf("Duration = %v, expected 44s", r.Duration)
	}
}
