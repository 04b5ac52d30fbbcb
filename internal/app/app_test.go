package app

import (
	"context"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/williamdwatson/bananagrams-solver-web/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()

	longPath := filepath.Join(dir, "dictionary.txt")
	if err := os.WriteFile(longPath, []byte("cat\ndog\nfish\n"), 0644); err != nil {
		t.Fatalf("failed to write dictionary: %v", err)
	}
	shortPath := filepath.Join(dir, "short_dictionary.txt")
	if err := os.WriteFile(shortPath, []byte("cat\ndog\n"), 0644); err != nil {
		t.Fatalf("failed to write dictionary: %v", err)
	}

	cfg, err := config.Load(filepath.Join(dir, "no-such-config.yaml"))
	if err != nil {
		t.Fatalf("config.Load() error = %v", err)
	}
	cfg.Server.Port = 65123
	cfg.Dictionaries.LongFile = longPath
	cfg.Dictionaries.ShortFile = shortPath
	return cfg
}

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestNew(t *testing.T) {
	if _, err := New(testConfig(t), discardLogger()); err != nil {
		t.Fatalf("New() error = %v", err)
	}
}

func TestNewInvalidConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.Server.Port = -1
	if _, err := New(cfg, discardLogger()); err == nil {
		t.Fatal("New() expected error for invalid config")
	}
}

func TestNewMissingDictionaries(t *testing.T) {
	// Missing dictionary files are logged, not fatal; /words reads them
	// per request, so the server must still come up.
	cfg := testConfig(t)
	cfg.Dictionaries.LongFile = filepath.Join(t.TempDir(), "nope.txt")
	cfg.Dictionaries.ShortFile = filepath.Join(t.TempDir(), "nope.txt")
	if _, err := New(cfg, discardLogger()); err != nil {
		t.Fatalf("New() error = %v", err)
	}
}

func TestRunStopsOnContextCancel(t *testing.T) {
	application, err := New(testConfig(t), discardLogger())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := application.Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
}
