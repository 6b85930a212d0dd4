package engine

import (
	"encoding/json"
	"fmt"
	"os"
)

// ValidateGameConfig validates a game configuration for correctness and playability
func ValidateGameConfig(config *GameConfig) error {
	if config == nil {
		return fmt.Errorf("config validation: config is required")
	}
	if config.Name == "" {
		return fmt.Errorf("config validation: name is required")
	}
	if config.Description == "" {
		return fmt.Errorf("config validation: description is required")
	}

	if config.BoardSize < MinBoardSize || config.BoardSize > MaxBoardSize {
		return fmt.Errorf("config validation: board_size must be between %d and %d, got %d",
			MinBoardSize, MaxBoardSize, config.BoardSize)
	}

	if len(config.Players) == 0 {
		return fmt.Errorf("config validation: at least one player is required")
	}
	if len(config.Players) > MaxPlayers {
		return fmt.Errorf("config validation: at most %d players are supported, got %d",
			MaxPlayers, len(config.Players))
	}

	seenColors := make(map[Color]bool)
	seenStarts := make(map[Position]bool)
	for i, setup := range config.Players {
		if _, err := ParseColor(string(setup.Color)); err != nil {
			return fmt.Errorf("config validation: player %d has unknown color %q", i+1, setup.Color)
		}
		if seenColors[setup.Color] {
			return fmt.Errorf("config validation: color %q is assigned twice", setup.Color)
		}
		seenColors[setup.Color] = true

		if setup.Start.Row < 0 || setup.Start.Row >= config.BoardSize ||
			setup.Start.Col < 0 || setup.Start.Col >= config.BoardSize {
			return fmt.Errorf("config validation: player %d start cell (%d,%d) is off the %dx%d board",
				i+1, setup.Start.Row, setup.Start.Col, config.BoardSize, config.BoardSize)
		}
		if seenStarts[setup.Start] {
			return fmt.Errorf("config validation: start cell (%d,%d) is assigned twice",
				setup.Start.Row, setup.Start.Col)
		}
		seenStarts[setup.Start] = true
	}

	if config.Scoring.FullPlacementBonus < 0 {
		return fmt.Errorf("config validation: full_placement_bonus must not be negative, got %d",
			config.Scoring.FullPlacementBonus)
	}
	if config.Scoring.MonominoFinishBonus < 0 {
		return fmt.Errorf("config validation: monomino_finish_bonus must not be negative, got %d",
			config.Scoring.MonominoFinishBonus)
	}

	return nil
}

// LoadGameConfig loads and validates a game configuration from a JSON file.
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config GameConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	if err := ValidateGameConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// DefaultGameConfig returns the classic setup: four players on the standard
// board with corner start cells and the classic scoring bonuses.
func DefaultGameConfig() *GameConfig {
	config := &GameConfig{
		Name:        "Classic",
		Description: "Four players on the standard 20x20 board with corner starts",
		BoardSize:   DefaultBoardSize,
		Players: []PlayerSetup{
			{Color: Blue, Start: Position{Row: 0, Col: 0}},
			{Color: Yellow, Start: Position{Row: 0, Col: DefaultBoardSize - 1}},
			{Color: Red, Start: Position{Row: DefaultBoardSize - 1, Col: DefaultBoardSize - 1}},
			{Color: Green, Start: Position{Row: DefaultBoardSize - 1, Col: 0}},
		},
	}
	config.Scoring.FullPlacementBonus = DefaultFullPlacementBonus
	config.Scoring.MonominoFinishBonus = DefaultMonominoFinishBonus
	return config
}
