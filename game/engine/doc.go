// Package engine implements the Blokus rules: the piece catalog, board,
// per-player inventories, placement legality, turn order, retirement, and
// scoring.
//
// The engine package implements the game mechanics including:
//   - The 21-piece polyomino catalog with deduplicated orientations
//   - Board bounds, occupancy, and placement
//   - First-move start-cell coverage and the corner-contact rule
//   - Exhaustive "any legal move" search used for retirement decisions
//   - Scoring with configurable full-placement and monomino bonuses
//
// Core Types:
//
// Game is the state machine a match runs through; GameConfig defines the
// board size, seats, and scoring, loaded from JSON files. Piece and Shape
// describe the catalog; Placement names one concrete move. External callers
// read GameState snapshots rather than engine internals.
//
// Usage:
//
//	config, err := engine.LoadGameConfig("configs/duo.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	game, err := engine.NewGame(config)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Place the monomino on the blue start cell
//	record, err := game.AttemptPlace(engine.Blue, "1", 0, engine.Position{Row: 4, Col: 4})
//	state := game.State()
//
// Game Rules:
//
// Each player's first piece must cover their designated start cell. Every
// later piece must touch one of the player's own pieces at a corner and
// must not share an edge with any of them; contact with other colors is
// unrestricted. A player with no legal move retires; the game ends when
// every player has retired or placed all 21 pieces. Emptying the inventory
// scores the 89-pip total plus a bonus, with a further bonus when the last
// piece placed was the monomino; otherwise the score is minus the cells
// still in hand.
//
// Concurrency:
//
// A Game is not safe for concurrent use. All operations are synchronous and
// non-blocking; callers serialize mutations. The read-only query and search
// operations may be fanned out by a caller that guarantees no mutating call
// overlaps them, which is what game/service does.
package engine
