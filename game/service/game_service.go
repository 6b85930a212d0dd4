package service

import (
	"context"
	"sync"
	"time"

	"github.com/josephcrivera/Blokus-Game-Simulation/game/engine"
)

// GameService defines all game-related operations
type GameService interface {
	// Game Lifecycle
	CreateGame(ctx context.Context, configName string) (*GameInfo, error)
	GetGame(ctx context.Context, gameID string) (*GameInfo, error)
	ListGames(ctx context.Context) ([]*GameInfo, error)
	DeleteGame(ctx context.Context, gameID string) error

	// Commands
	PlacePiece(ctx context.Context, gameID string, color engine.Color, piece engine.PieceID, orientation int, anchor engine.Position) (*PlaceResult, error)
	Retire(ctx context.Context, gameID string, color engine.Color) (*RetireResult, error)
	Reset(ctx context.Context, gameID string) (*engine.GameState, error)

	// Queries and search
	GetState(ctx context.Context, gameID string) (*engine.GameState, error)
	LegalPlacements(ctx context.Context, gameID string, color engine.Color) ([]engine.Placement, error)
	HasLegalMove(ctx context.Context, gameID string, color engine.Color) (bool, error)
	GetHistory(ctx context.Context, gameID string, opts HistoryOptions) (*HistoryResponse, error)
	GetEvents(ctx context.Context, gameID string, opts EventOptions) (*EventsResponse, error)

	// Catalog and configuration
	Catalog(ctx context.Context) []*CatalogEntry
	ListConfigs(ctx context.Context) ([]*ConfigInfo, error)
	LoadConfig(ctx context.Context, configName string) (*engine.GameConfig, error)
}

// SessionManager defines session storage operations
type SessionManager interface {
	Create(id string, config *engine.GameConfig) (*Session, error)
	Get(id string) (*Session, error)
	GetOrCreate(id string, config *engine.GameConfig) (*Session, error)
	List() []*Session
	Delete(id string) error
	Count() int
}

// ConfigManager handles game configuration loading
type ConfigManager interface {
	LoadConfig(name string) (*engine.GameConfig, error)
	ListConfigs() ([]*ConfigInfo, error)
	GetDefault() *engine.GameConfig
}

// maxSessionEvents bounds the per-session event ring; older events are
// discarded once the ring is full.
const maxSessionEvents = 256

// Session represents one running game. The embedded lock guards the Game
// and the event ring: mutating commands take the write lock, queries and
// the legality search take the read lock, so searches never observe a
// half-applied move.
type Session struct {
	sync.RWMutex

	ID         string
	Game       *engine.Game
	Config     *engine.GameConfig
	CreatedAt  time.Time
	LastActive time.Time

	events     []GameEvent
	eventTotal int
}

// Touch updates the last-active timestamp. Callers hold the write lock.
func (s *Session) Touch() {
	s.LastActive = time.Now()
}

// appendEvent adds an event to the ring, evicting the oldest entry when
// full. Callers hold the write lock.
func (s *Session) appendEvent(event GameEvent) {
	event.Sequence = s.eventTotal + 1
	s.eventTotal++
	s.events = append(s.events, event)
	if len(s.events) > maxSessionEvents {
		s.events = s.events[len(s.events)-maxSessionEvents:]
	}
}
