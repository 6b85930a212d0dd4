// Package service provides the business logic layer for the Blokus rules
// engine.
//
// The service package implements:
//   - Multi-game management over the session registry
//   - Placement and retirement commands with rejection reporting
//   - Parallel legality search across a player's remaining pieces
//   - Paginated move history and event retrieval
//   - Piece catalog and configuration queries
//
// Core Interfaces:
//
// GameService is the main service interface providing high-level game
// operations. SessionManager handles game creation, retrieval, and
// lifecycle. ConfigManager manages game configuration loading and
// validation.
//
// Architecture:
//
// The service layer sits between front ends (CLI, simulation driver, any
// future renderer) and the game engine, providing game isolation, the
// reporting surface, and business logic orchestration. Each session owns
// its own engine.Game with independent state.
//
// Usage:
//
//	sessionMgr := session.NewManager()
//	configMgr, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//	gameService := service.NewGameService(sessionMgr, configMgr)
//
//	// Create a new game and place a piece
//	info, err := gameService.CreateGame(ctx, "duo")
//	result, err := gameService.PlacePiece(ctx, info.ID, engine.Blue, "1", 0, engine.Position{Row: 4, Col: 4})
//
// Reporting:
//
// Every command appends GameEvent records to a bounded per-session ring:
// placed and rejected moves, retirements, turn changes, and the terminal
// event carrying final scores. GetEvents pages through the retained ring.
//
// Concurrency:
//
// Each session carries its own read-write lock. Commands take the write
// lock; queries and the fan-out legality search take the read lock, so the
// search always observes a consistent board. The search itself runs one
// goroutine per remaining piece via errgroup and honors context
// cancellation.
package service
