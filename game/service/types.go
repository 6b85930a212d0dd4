package service

import (
	"time"

	"github.com/josephcrivera/Blokus-Game-Simulation/game/engine"
)

// Event types recorded in a session's event ring.
const (
	EventMovePlaced    = "move_placed"
	EventMoveRejected  = "move_rejected"
	EventPlayerRetired = "player_retired"
	EventTurnChanged   = "turn_changed"
	EventGameOver      = "game_over"
)

// GameInfo provides information about a running game
type GameInfo struct {
	ID         string             `json:"id"`
	ConfigName string             `json:"config_name"`
	CreatedAt  time.Time          `json:"created_at"`
	LastActive time.Time          `json:"last_active"`
	GameState  *engine.GameState  `json:"game_state"`
	GameConfig *engine.GameConfig `json:"game_config"`
}

// PlaceResult contains the outcome of a placement attempt. A rejected move
// leaves the game unchanged; Success is false and Message carries the
// failing rule.
type PlaceResult struct {
	Success   bool               `json:"success"`
	Message   string             `json:"message,omitempty"`
	Record    *engine.MoveRecord `json:"record,omitempty"`
	GameState *engine.GameState  `json:"game_state"`
	Events    []GameEvent        `json:"events,omitempty"`
}

// RetireResult contains the outcome of a retirement request
type RetireResult struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message,omitempty"`
	GameState *engine.GameState `json:"game_state"`
	Events    []GameEvent       `json:"events,omitempty"`
}

// GameEvent is one entry on the reporting surface: moves applied or
// rejected, retirements, turn changes, and the terminal score report.
type GameEvent struct {
	ID        string               `json:"id"`
	Sequence  int                  `json:"sequence"`
	Type      string               `json:"type"`
	Color     engine.Color         `json:"color,omitempty"`
	Message   string               `json:"message"`
	Scores    map[engine.Color]int `json:"scores,omitempty"`
	Timestamp time.Time            `json:"timestamp"`
}

// HistoryOptions configures move history retrieval. Offset and Limit are
// clamped: a non-positive limit falls back to the default, and the limit
// never exceeds the maximum page size.
type HistoryOptions struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// HistoryResponse contains one page of move history
type HistoryResponse struct {
	Moves      []engine.MoveRecord `json:"moves"`
	TotalMoves int                 `json:"total_moves"`
	Offset     int                 `json:"offset"`
	Limit      int                 `json:"limit"`
	HasMore    bool                `json:"has_more"`
}

// EventOptions configures event retrieval, clamped like HistoryOptions.
type EventOptions struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// EventsResponse contains one page of game events. TotalEvents counts every
// event ever recorded; events evicted from the bounded ring are no longer
// retrievable and the first retained sequence number reflects that.
type EventsResponse struct {
	Events      []GameEvent `json:"events"`
	TotalEvents int         `json:"total_events"`
	Offset      int         `json:"offset"`
	Limit       int         `json:"limit"`
	HasMore     bool        `json:"has_more"`
}

// CatalogEntry describes one catalog piece for front ends: its id, size,
// distinct orientation count, and the art of the base orientation.
type CatalogEntry struct {
	ID           engine.PieceID `json:"id"`
	Size         int            `json:"size"`
	Orientations int            `json:"orientations"`
	Art          []string       `json:"art"`
}

// ConfigInfo provides information about a game configuration
type ConfigInfo struct {
	Filename    string `json:"filename"`
	ConfigID    string `json:"config_id"` // The identifier to use for game creation
	Name        string `json:"name"`      // Display name
	Description string `json:"description"`
	BoardSize   int    `json:"board_size"`
	Players     int    `json:"players"`
}
