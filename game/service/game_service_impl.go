package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/josephcrivera/Blokus-Game-Simulation/game/engine"
)

// History and event pagination bounds.
const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// errFoundMove short-circuits the parallel search once any piece has a
// legal placement.
var errFoundMove = errors.New("legal move found")

// gameServiceImpl implements the GameService interface
type gameServiceImpl struct {
	sessions SessionManager
	configs  ConfigManager
}

// NewGameService creates a new game service instance
func NewGameService(sessions SessionManager, configs ConfigManager) GameService {
	return &gameServiceImpl{
		sessions: sessions,
		configs:  configs,
	}
}

// getConfigID returns the config_id for a given config display name, used
// for consistent responses.
func (s *gameServiceImpl) getConfigID(configName string) string {
	availableConfigs, err := s.configs.ListConfigs()
	if err == nil {
		for _, cfg := range availableConfigs {
			if cfg.Name == configName {
				return cfg.ConfigID
			}
		}
	}
	if configName == "" {
		return "default"
	}
	return configName
}

// CreateGame creates a new game from the named configuration, or from the
// default configuration when the name is empty.
func (s *gameServiceImpl) CreateGame(ctx context.Context, configName string) (*GameInfo, error) {
	var config *engine.GameConfig
	var err error
	if configName != "" {
		config, err = s.configs.LoadConfig(configName)
		if err != nil {
			if strings.Contains(err.Error(), "configuration not found") {
				availableConfigs, listErr := s.configs.ListConfigs()
				if listErr == nil && len(availableConfigs) > 0 {
					var configIDs []string
					for _, cfg := range availableConfigs {
						configIDs = append(configIDs, cfg.ConfigID)
					}
					return nil, fmt.Errorf("config %q not found. Available configs: %v", configName, configIDs)
				}
				return nil, fmt.Errorf("config %q not found", configName)
			}
			return nil, fmt.Errorf("failed to load config %s: %w", configName, err)
		}
	} else {
		config = s.configs.GetDefault()
	}

	// Let the session manager generate a proper 4-character ID
	session, err := s.sessions.Create("", config)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	configID := configName
	if configID == "" {
		configID = s.getConfigID(config.Name)
	}

	session.RLock()
	defer session.RUnlock()
	return s.gameInfo(session, configID), nil
}

// gameInfo builds the externally visible snapshot. Callers hold at least
// the session read lock.
func (s *gameServiceImpl) gameInfo(sess *Session, configID string) *GameInfo {
	return &GameInfo{
		ID:         sess.ID,
		ConfigName: configID,
		CreatedAt:  sess.CreatedAt,
		LastActive: sess.LastActive,
		GameState:  sess.Game.State(),
		GameConfig: sess.Config,
	}
}

// GetGame retrieves game information
func (s *gameServiceImpl) GetGame(ctx context.Context, gameID string) (*GameInfo, error) {
	sess, err := s.sessions.Get(gameID)
	if err != nil {
		return nil, fmt.Errorf("game not found: %w", err)
	}

	sess.Lock()
	defer sess.Unlock()
	sess.Touch()
	return s.gameInfo(sess, s.getConfigID(sess.Config.Name)), nil
}

// ListGames returns all running games, oldest first.
func (s *gameServiceImpl) ListGames(ctx context.Context) ([]*GameInfo, error) {
	sessions := s.sessions.List()
	sort.Slice(sessions, func(i, j int) bool {
		if !sessions[i].CreatedAt.Equal(sessions[j].CreatedAt) {
			return sessions[i].CreatedAt.Before(sessions[j].CreatedAt)
		}
		return sessions[i].ID < sessions[j].ID
	})

	result := make([]*GameInfo, 0, len(sessions))
	for _, sess := range sessions {
		sess.RLock()
		result = append(result, s.gameInfo(sess, s.getConfigID(sess.Config.Name)))
		sess.RUnlock()
	}
	return result, nil
}

// DeleteGame removes a game
func (s *gameServiceImpl) DeleteGame(ctx context.Context, gameID string) error {
	return s.sessions.Delete(gameID)
}

// newEvent builds an event with a fresh id and timestamp.
func newEvent(eventType string, color engine.Color, message string) GameEvent {
	return GameEvent{
		ID:        uuid.NewString(),
		Type:      eventType,
		Color:     color,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// recordOutcome appends turn-change and game-over events after a successful
// command. Callers hold the session write lock.
func recordOutcome(sess *Session, prevTurn engine.Color, events []GameEvent) []GameEvent {
	if sess.Game.IsGameOver() {
		event := newEvent(EventGameOver, engine.NoColor, "game over")
		event.Scores = sess.Game.Scores()
		sess.appendEvent(event)
		return append(events, event)
	}
	if next := sess.Game.CurrentTurn(); next != prevTurn {
		event := newEvent(EventTurnChanged, next, fmt.Sprintf("%s to move", next))
		sess.appendEvent(event)
		events = append(events, event)
	}
	return events
}

// PlacePiece attempts a placement for the player. Recoverable rejections
// (out of turn, illegal move, unknown piece) come back as an unsuccessful
// result with the failing rule, not as an error; the game is unchanged and
// a move_rejected event is recorded.
func (s *gameServiceImpl) PlacePiece(ctx context.Context, gameID string, color engine.Color, piece engine.PieceID, orientation int, anchor engine.Position) (*PlaceResult, error) {
	sess, err := s.sessions.Get(gameID)
	if err != nil {
		return nil, fmt.Errorf("game not found: %w", err)
	}

	sess.Lock()
	defer sess.Unlock()
	sess.Touch()

	prevTurn := sess.Game.CurrentTurn()
	record, err := sess.Game.AttemptPlace(color, piece, orientation, anchor)
	if err != nil {
		if errors.Is(err, engine.ErrInvalidState) {
			return nil, err
		}
		event := newEvent(EventMoveRejected, color, err.Error())
		sess.appendEvent(event)
		return &PlaceResult{
			Success:   false,
			Message:   err.Error(),
			GameState: sess.Game.State(),
			Events:    []GameEvent{event},
		}, nil
	}

	event := newEvent(EventMovePlaced, color,
		fmt.Sprintf("%s placed piece %s at (%d,%d)", color, piece, anchor.Row, anchor.Col))
	sess.appendEvent(event)
	events := recordOutcome(sess, prevTurn, []GameEvent{event})

	return &PlaceResult{
		Success:   true,
		Record:    record,
		GameState: sess.Game.State(),
		Events:    events,
	}, nil
}

// Retire marks the player as retired. Like PlacePiece, out-of-turn requests
// come back as an unsuccessful result rather than an error.
func (s *gameServiceImpl) Retire(ctx context.Context, gameID string, color engine.Color) (*RetireResult, error) {
	sess, err := s.sessions.Get(gameID)
	if err != nil {
		return nil, fmt.Errorf("game not found: %w", err)
	}

	sess.Lock()
	defer sess.Unlock()
	sess.Touch()

	prevTurn := sess.Game.CurrentTurn()
	if err := sess.Game.Retire(color); err != nil {
		if errors.Is(err, engine.ErrInvalidState) {
			return nil, err
		}
		return &RetireResult{
			Success:   false,
			Message:   err.Error(),
			GameState: sess.Game.State(),
		}, nil
	}

	event := newEvent(EventPlayerRetired, color, fmt.Sprintf("%s retired", color))
	sess.appendEvent(event)
	events := recordOutcome(sess, prevTurn, []GameEvent{event})

	return &RetireResult{
		Success:   true,
		GameState: sess.Game.State(),
		Events:    events,
	}, nil
}

// Reset restores a game to its initial state
func (s *gameServiceImpl) Reset(ctx context.Context, gameID string) (*engine.GameState, error) {
	sess, err := s.sessions.Get(gameID)
	if err != nil {
		return nil, fmt.Errorf("game not found: %w", err)
	}

	sess.Lock()
	defer sess.Unlock()
	sess.Touch()
	sess.Game.Reset()
	return sess.Game.State(), nil
}

// GetState retrieves the current game state
func (s *gameServiceImpl) GetState(ctx context.Context, gameID string) (*engine.GameState, error) {
	sess, err := s.sessions.Get(gameID)
	if err != nil {
		return nil, fmt.Errorf("game not found: %w", err)
	}

	sess.RLock()
	defer sess.RUnlock()
	return sess.Game.State(), nil
}

// LegalPlacements enumerates every legal placement for the player. The
// per-piece searches run in parallel under the session read lock; the merge
// preserves catalog order, so the result is deterministic.
func (s *gameServiceImpl) LegalPlacements(ctx context.Context, gameID string, color engine.Color) ([]engine.Placement, error) {
	sess, err := s.sessions.Get(gameID)
	if err != nil {
		return nil, fmt.Errorf("game not found: %w", err)
	}

	sess.RLock()
	defer sess.RUnlock()

	remaining, err := sess.Game.Remaining(color)
	if err != nil {
		return nil, err
	}

	group, ctx := errgroup.WithContext(ctx)
	perPiece := make([][]engine.Placement, len(remaining))
	for i, id := range remaining {
		i, id := i, id
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			placements, err := sess.Game.LegalPlacementsForPiece(color, id)
			if err != nil {
				return err
			}
			perPiece[i] = placements
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	var merged []engine.Placement
	for _, placements := range perPiece {
		merged = append(merged, placements...)
	}
	return merged, nil
}

// HasLegalMove reports whether any legal placement exists for the player
// across their full remaining inventory. The per-piece searches run in
// parallel and stop as soon as one piece fits.
func (s *gameServiceImpl) HasLegalMove(ctx context.Context, gameID string, color engine.Color) (bool, error) {
	sess, err := s.sessions.Get(gameID)
	if err != nil {
		return false, fmt.Errorf("game not found: %w", err)
	}

	sess.RLock()
	defer sess.RUnlock()

	remaining, err := sess.Game.Remaining(color)
	if err != nil {
		return false, err
	}

	group, ctx := errgroup.WithContext(ctx)
	for _, id := range remaining {
		id := id
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			ok, err := sess.Game.HasLegalMoveForPiece(color, id)
			if err != nil {
				return err
			}
			if ok {
				return errFoundMove
			}
			return nil
		})
	}

	err = group.Wait()
	if errors.Is(err, errFoundMove) {
		return true, nil
	}
	return false, err
}

// clampPage applies the shared offset/limit rules.
func clampPage(offset, limit, total int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if offset > total {
		offset = total
	}
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return offset, limit
}

// GetHistory returns one page of the game's move history in chronological
// order.
func (s *gameServiceImpl) GetHistory(ctx context.Context, gameID string, opts HistoryOptions) (*HistoryResponse, error) {
	sess, err := s.sessions.Get(gameID)
	if err != nil {
		return nil, fmt.Errorf("game not found: %w", err)
	}

	sess.RLock()
	defer sess.RUnlock()

	history := sess.Game.History()
	total := len(history)
	offset, limit := clampPage(opts.Offset, opts.Limit, total)

	end := offset + limit
	if end > total {
		end = total
	}
	moves := make([]engine.MoveRecord, end-offset)
	copy(moves, history[offset:end])

	return &HistoryResponse{
		Moves:      moves,
		TotalMoves: total,
		Offset:     offset,
		Limit:      limit,
		HasMore:    end < total,
	}, nil
}

// GetEvents returns one page of the game's recorded events in order. The
// offset counts within the retained ring, oldest first.
func (s *gameServiceImpl) GetEvents(ctx context.Context, gameID string, opts EventOptions) (*EventsResponse, error) {
	sess, err := s.sessions.Get(gameID)
	if err != nil {
		return nil, fmt.Errorf("game not found: %w", err)
	}

	sess.RLock()
	defer sess.RUnlock()

	retained := len(sess.events)
	offset, limit := clampPage(opts.Offset, opts.Limit, retained)

	end := offset + limit
	if end > retained {
		end = retained
	}
	events := make([]GameEvent, end-offset)
	copy(events, sess.events[offset:end])

	return &EventsResponse{
		Events:      events,
		TotalEvents: sess.eventTotal,
		Offset:      offset,
		Limit:       limit,
		HasMore:     end < retained,
	}, nil
}

// Catalog describes the 21 catalog pieces in canonical order.
func (s *gameServiceImpl) Catalog(ctx context.Context) []*CatalogEntry {
	pieces := engine.AllPieces()
	entries := make([]*CatalogEntry, len(pieces))
	for i, piece := range pieces {
		entries[i] = &CatalogEntry{
			ID:           piece.ID,
			Size:         piece.Size,
			Orientations: len(piece.Orientations),
			Art:          piece.Orientations[0].Art(),
		}
	}
	return entries
}

// ListConfigs returns available game configurations
func (s *gameServiceImpl) ListConfigs(ctx context.Context) ([]*ConfigInfo, error) {
	return s.configs.ListConfigs()
}

// LoadConfig loads a specific game configuration
func (s *gameServiceImpl) LoadConfig(ctx context.Context, configName string) (*engine.GameConfig, error) {
	return s.configs.LoadConfig(configName)
}
