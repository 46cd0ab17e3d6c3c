package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// openTestStorage opens a Storage instance backed by a throwaway badger
// database under t's temp dir, bypassing GetDatabaseDir.
func openTestStorage(t *testing.T) *Storage {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "db")
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return &Storage{db: db}
}

func TestStorage(t *testing.T) {
	// Use temp directory for test
	tmpDir, err := os.MkdirTemp("", "chessmcts-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	// Override the data dir for testing
	dbDir := filepath.Join(tmpDir, "db")
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		t.Fatalf("Failed to create db dir: %v", err)
	}

	// We can't easily test with the real GetDatabaseDir, so we'll test the structs directly
	t.Run("DefaultPreferences", func(t *testing.T) {
		prefs := DefaultPreferences()
		if prefs.Username != "Player" {
			t.Errorf("Expected username 'Player', got '%s'", prefs.Username)
		}
		if prefs.Difficulty != DifficultyMedium {
			t.Errorf("Expected medium difficulty")
		}
		if prefs.SearchQuality != QualityStandard {
			t.Errorf("Expected standard search quality")
		}
		if !prefs.SoundEnabled {
			t.Errorf("Expected sound enabled by default")
		}
	})

	t.Run("NewGameStats", func(t *testing.T) {
		stats := NewGameStats()
		if stats.GamesPlayed != 0 {
			t.Errorf("Expected 0 games played")
		}
		if stats.GetWinRate() != 0 {
			t.Errorf("Expected 0 win rate")
		}
	})

	t.Run("WinRate", func(t *testing.T) {
		stats := &GameStats{
			GamesPlayed: 10,
			Wins:        5,
			Losses:      3,
			Draws:       2,
		}
		rate := stats.GetWinRate()
		if rate != 50 {
			t.Errorf("Expected 50%% win rate, got %.2f%%", rate)
		}
	})
}

func TestDataPaths(t *testing.T) {
	// Test that GetDataDir returns a valid path
	dataDir, err := GetDataDir()
	if err != nil {
		t.Fatalf("GetDataDir failed: %v", err)
	}
	if dataDir == "" {
		t.Error("GetDataDir returned empty path")
	}

	// Verify directory exists
	if _, err := os.Stat(dataDir); os.IsNotExist(err) {
		t.Errorf("Data directory was not created: %s", dataDir)
	}

	t.Logf("Data directory: %s", dataDir)
}

func TestSearchRunHistory(t *testing.T) {
	s := openTestStorage(t)

	for i := 0; i < maxSearchRuns+3; i++ {
		run := SearchRun{
			Timestamp:  time.Now(),
			Move:       "e2e4",
			Iterations: 1000 * (i + 1),
			Threads:    4,
			Elapsed:    time.Second,
			Visits:     map[string]int{"e2e4": i},
		}
		if err := s.RecordSearchRun(run); err != nil {
			t.Fatalf("RecordSearchRun failed: %v", err)
		}
	}

	runs, err := s.LoadSearchRuns()
	if err != nil {
		t.Fatalf("LoadSearchRuns failed: %v", err)
	}
	if len(runs) != maxSearchRuns {
		t.Fatalf("expected %d runs after eviction, got %d", maxSearchRuns, len(runs))
	}
	if runs[len(runs)-1].Iterations != 1000*(maxSearchRuns+3) {
		t.Errorf("expected newest run last, got iterations=%d", runs[len(runs)-1].Iterations)
	}
}
