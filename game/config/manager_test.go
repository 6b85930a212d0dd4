package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/josephcrivera/Blokus-Game-Simulation/game/engine"
)

// writeTestConfig writes a valid two-player variant file and returns its
// config id.
func writeTestConfig(t *testing.T, dir, name string) string {
	t.Helper()

	config := &engine.GameConfig{
		Name:        "Test " + name,
		Description: "Test configuration " + name,
		BoardSize:   8,
		Players: []engine.PlayerSetup{
			{Color: engine.Blue, Start: engine.Position{Row: 0, Col: 0}},
			{Color: engine.Yellow, Start: engine.Position{Row: 7, Col: 7}},
		},
	}
	config.Scoring.FullPlacementBonus = 15
	config.Scoring.MonominoFinishBonus = 5

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal config: %v", err)
	}
	path := filepath.Join(dir, name+".json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return name
}

func TestNewManager(t *testing.T) {
	t.Run("valid directory", func(t *testing.T) {
		dir := t.TempDir()
		writeTestConfig(t, dir, "classic")

		manager, err := NewManager(dir)
		if err != nil {
			t.Fatalf("Failed to create manager: %v", err)
		}
		if manager.GetDefault() == nil {
			t.Error("Expected a default config")
		}
		if manager.GetDefault().Name != "Test classic" {
			t.Errorf("Expected classic.json as default, got %q", manager.GetDefault().Name)
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		if _, err := NewManager("/non/existent/dir"); err == nil {
			t.Error("Expected error for missing config directory")
		}
	})

	t.Run("empty directory falls back to built-in default", func(t *testing.T) {
		manager, err := NewManager(t.TempDir())
		if err != nil {
			t.Fatalf("Failed to create manager: %v", err)
		}
		def := manager.GetDefault()
		if def == nil {
			t.Fatal("Expected built-in default config")
		}
		if def.BoardSize != engine.DefaultBoardSize {
			t.Errorf("Expected board size %d, got %d", engine.DefaultBoardSize, def.BoardSize)
		}
	})

	t.Run("no classic uses first listed config", func(t *testing.T) {
		dir := t.TempDir()
		writeTestConfig(t, dir, "duo")

		manager, err := NewManager(dir)
		if err != nil {
			t.Fatalf("Failed to create manager: %v", err)
		}
		if manager.GetDefault().Name != "Test duo" {
			t.Errorf("Expected duo.json as default, got %q", manager.GetDefault().Name)
		}
	})
}

func TestManager_LoadConfig(t *testing.T) {
	dir := t.TempDir()
	writeTestConfig(t, dir, "classic")
	writeTestConfig(t, dir, "small")

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	t.Run("loads and caches", func(t *testing.T) {
		first, err := manager.LoadConfig("small")
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}
		second, err := manager.LoadConfig("small")
		if err != nil {
			t.Fatalf("Failed to load cached config: %v", err)
		}
		if first != second {
			t.Error("Expected the cached instance on the second load")
		}
	})

	t.Run("accepts .json suffix", func(t *testing.T) {
		if _, err := manager.LoadConfig("small.json"); err != nil {
			t.Errorf("Expected suffixed name to load, got %v", err)
		}
	})

	t.Run("missing config", func(t *testing.T) {
		if _, err := manager.LoadConfig("absent"); !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("Expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("invalid config", func(t *testing.T) {
		path := filepath.Join(dir, "broken.json")
		if err := os.WriteFile(path, []byte(`{"name":"broken","description":"d","board_size":1}`), 0644); err != nil {
			t.Fatalf("Failed to write broken config: %v", err)
		}
		if _, err := manager.LoadConfig("broken"); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("Expected ErrInvalidConfig, got %v", err)
		}
	})

	t.Run("malformed JSON", func(t *testing.T) {
		path := filepath.Join(dir, "garbage.json")
		if err := os.WriteFile(path, []byte("not json"), 0644); err != nil {
			t.Fatalf("Failed to write garbage config: %v", err)
		}
		if _, err := manager.LoadConfig("garbage"); err == nil {
			t.Error("Expected error for malformed JSON")
		}
	})
}

func TestManager_ListConfigs(t *testing.T) {
	dir := t.TempDir()
	writeTestConfig(t, dir, "classic")
	writeTestConfig(t, dir, "duo")

	// Invalid files are skipped, not reported
	if err := os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{"), 0644); err != nil {
		t.Fatalf("Failed to write broken config: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore me"), 0644); err != nil {
		t.Fatalf("Failed to write non-json file: %v", err)
	}

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	configs, err := manager.ListConfigs()
	if err != nil {
		t.Fatalf("Failed to list configs: %v", err)
	}
	if len(configs) != 2 {
		t.Fatalf("Expected 2 configs, got %d", len(configs))
	}
	for _, info := range configs {
		if info.BoardSize != 8 {
			t.Errorf("Expected board size 8, got %d", info.BoardSize)
		}
		if info.Players != 2 {
			t.Errorf("Expected 2 players, got %d", info.Players)
		}
		if info.ConfigID == "" || info.Filename == "" {
			t.Error("Expected config id and filename to be populated")
		}
	}
}

func TestManager_SetDefaultAndRefresh(t *testing.T) {
	dir := t.TempDir()
	writeTestConfig(t, dir, "classic")
	writeTestConfig(t, dir, "duo")

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	if err := manager.SetDefault("duo"); err != nil {
		t.Fatalf("Failed to set default: %v", err)
	}
	if manager.GetDefault().Name != "Test duo" {
		t.Errorf("Expected duo default, got %q", manager.GetDefault().Name)
	}

	if err := manager.SetDefault("absent"); !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("Expected ErrConfigNotFound, got %v", err)
	}

	if err := manager.RefreshCache(); err != nil {
		t.Fatalf("Failed to refresh cache: %v", err)
	}
	if manager.GetDefault().Name != "Test classic" {
		t.Errorf("Expected refresh to restore classic default, got %q", manager.GetDefault().Name)
	}
}

func TestManager_SaveConfig(t *testing.T) {
	dir := t.TempDir()
	writeTestConfig(t, dir, "classic")

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	saved := engine.DefaultGameConfig()
	saved.Name = "Saved"
	if err := manager.SaveConfig("saved", saved); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	loaded, err := manager.LoadConfig("saved")
	if err != nil {
		t.Fatalf("Failed to load saved config: %v", err)
	}
	if loaded.Name != "Saved" {
		t.Errorf("Expected saved name round-trip, got %q", loaded.Name)
	}

	invalid := engine.DefaultGameConfig()
	invalid.BoardSize = 0
	if err := manager.SaveConfig("invalid", invalid); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}

func TestManager_ConcurrentLoad(t *testing.T) {
	dir := t.TempDir()
	writeTestConfig(t, dir, "classic")
	writeTestConfig(t, dir, "shared")

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := manager.LoadConfig("shared"); err != nil {
				t.Errorf("Concurrent load failed: %v", err)
			}
		}()
	}
	wg.Wait()
}
