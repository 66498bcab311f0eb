package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "game.log")

	logger, logFile, err := setupLogging(path, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if logFile != nil {
		t.Error("Expected nil log file when debug=false")
		logFile.Close()
	}

	logger.Info().Msg("discarded")
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Expected no log file when debug=false")
	}
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "game.log")

	logger, logFile, err := setupLogging(path, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if logFile == nil {
		t.Fatal("Expected non-nil log file when debug=true")
	}
	defer logFile.Close()

	logger.Info().Str("difficulty", "hard").Msg("test message")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), `"message":"test message"`) {
		t.Errorf("Expected JSON log line, got %q", data)
	}
	if !strings.Contains(string(data), `"difficulty":"hard"`) {
		t.Errorf("Expected field in log line, got %q", data)
	}
}

func TestSetupLogging_Rotation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.log")

	// Write just over the limit
	if err := os.WriteFile(path, make([]byte, maxLogSize+1), 0o644); err != nil {
		t.Fatalf("Failed to create large log file: %v", err)
	}

	_, logFile, err := setupLogging(path, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer logFile.Close()

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Failed to stat new log file: %v", err)
	}
	if info.Size() != 0 {
		t.Errorf("Expected fresh log file, got size %d", info.Size())
	}

	rotated, err := filepath.Glob(filepath.Join(dir, "game-*.log"))
	if err != nil {
		t.Fatalf("Glob failed: %v", err)
	}
	if len(rotated) != 1 {
		t.Fatalf("Expected one rotated log, found %d", len(rotated))
	}
}

func TestSetupLogging_SmallFileAppends(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.log")
	if err := os.WriteFile(path, []byte("previous\n"), 0o644); err != nil {
		t.Fatalf("seed log: %v", err)
	}

	logger, logFile, err := setupLogging(path, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logger.Info().Msg("next")
	logFile.Close()

	data, _ := os.ReadFile(path)
	if !strings.HasPrefix(string(data), "previous\n") {
		t.Errorf("Expected existing content kept, got %q", data)
	}
	if matches, _ := filepath.Glob(filepath.Join(dir, "game-*.log")); len(matches) != 0 {
		t.Errorf("Expected no rotation, found %v", matches)
	}
}
