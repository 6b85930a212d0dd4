// Package config provides configuration management for the Blokus rules
// engine.
//
// The config package handles:
//   - Loading game variant configurations from JSON files
//   - Configuration validation and verification
//   - Default configuration management
//   - Configuration discovery and listing
//
// Configuration Format:
//
// Game configurations are stored as JSON files in the configs directory.
// Each configuration defines:
//   - Board side length
//   - The seated players: color and designated start cell each
//   - Scoring bonuses for emptying the inventory and for finishing on the
//     one-cell piece
//
// Available Configurations:
//
// The shipped variants cover the standard rule sets:
//   - classic: four players on the 20x20 board with corner starts
//   - duo: two players on the 14x14 board with the official interior starts
//   - mono: single-player practice on an 11x11 board
//   - mini: a 5x5 quick game used in examples and tests
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Load specific configuration
//	gameConfig, err := manager.LoadConfig("duo")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Get default configuration
//	defaultConfig := manager.GetDefault()
//
//	// List available configurations
//	configs, err := manager.ListConfigs()
//
// Validation:
//
// All configurations are validated on load for board-size bounds, the
// player count, distinct colors, distinct in-bounds start cells, and
// non-negative scoring bonuses. Loaded configurations are cached; the
// cache is safe for concurrent use.
package config
