package engine

import (
	"errors"
	"fmt"
	"time"
)

// Error kinds returned by game operations. IllegalMove and OutOfTurn are
// recoverable and expected during normal play; InvalidState indicates a
// caller or engine bug and is fatal to the game instance.
var (
	ErrOutOfTurn    = errors.New("out of turn")
	ErrIllegalMove  = errors.New("illegal move")
	ErrUnknownPiece = errors.New("unknown piece")
	ErrInvalidState = errors.New("invalid state")
	ErrGameOver     = errors.New("game over")
)

// Game orchestrates a single match: the board, the players in turn order,
// and the turn/terminal bookkeeping. All mutation goes through AttemptPlace,
// Retire, and Reset.
type Game struct {
	config    *GameConfig
	board     *Board
	players   []*player
	turn      int
	over      bool
	moveCount int
	history   []MoveRecord
}

// NewGame creates a game from the provided configuration.
func NewGame(config *GameConfig) (*Game, error) {
	if err := ValidateGameConfig(config); err != nil {
		return nil, err
	}

	g := &Game{config: config}
	g.init()
	return g, nil
}

// NewGameWithDefaults creates a game with the classic configuration.
func NewGameWithDefaults() *Game {
	g, _ := NewGame(DefaultGameConfig())
	return g
}

// init builds the board and players from the configuration.
func (g *Game) init() {
	g.board = NewBoard(g.config.BoardSize)
	g.players = make([]*player, len(g.config.Players))
	for i, setup := range g.config.Players {
		g.players[i] = newPlayer(setup)
	}
	g.turn = 0
	g.over = false
	g.moveCount = 0
	g.history = nil
}

// Reset restores the game to its initial state.
func (g *Game) Reset() {
	g.init()
}

func (g *Game) playerByColor(color Color) *player {
	for _, p := range g.players {
		if p.color == color {
			return p
		}
	}
	return nil
}

// AttemptPlace applies the placement for the player if it is their turn and
// the move is legal: the board cells are claimed, the piece leaves the
// inventory, the first-placement flag is set, and the turn advances past
// retired and exhausted players. On failure the game state is unchanged.
func (g *Game) AttemptPlace(color Color, id PieceID, orientation int, anchor Position) (*MoveRecord, error) {
	if g.over {
		return nil, fmt.Errorf("%w: no further moves can be made", ErrGameOver)
	}
	p := g.playerByColor(color)
	if p == nil {
		return nil, fmt.Errorf("%w: no player with color %q", ErrInvalidState, color)
	}
	if active := g.players[g.turn]; active != p {
		return nil, fmt.Errorf("%w: it is %s's turn", ErrOutOfTurn, active.color)
	}
	if err := g.CheckPlacement(color, id, orientation, anchor); err != nil {
		return nil, err
	}

	cells := absoluteCells(pieceCatalog[id].Orientations[orientation], anchor)
	g.board.Place(cells, color)
	if err := p.inventory.Remove(id); err != nil {
		return nil, err
	}
	p.hasPlaced = true
	p.lastPiece = id

	g.moveCount++
	record := MoveRecord{
		MoveNumber:  g.moveCount,
		Color:       color,
		Piece:       id,
		Orientation: orientation,
		Anchor:      anchor,
		Cells:       cells,
		Timestamp:   time.Now().Unix(),
	}
	g.history = append(g.history, record)

	g.advanceTurn()
	return &record, nil
}

// Retire permanently removes the player from the turn rotation. The engine
// does not decide retirement itself: callers invoke Retire when the
// exhaustive search (HasAnyLegalMove) reports no legal move remains.
func (g *Game) Retire(color Color) error {
	if g.over {
		return fmt.Errorf("%w: no further moves can be made", ErrGameOver)
	}
	p := g.playerByColor(color)
	if p == nil {
		return fmt.Errorf("%w: no player with color %q", ErrInvalidState, color)
	}
	if active := g.players[g.turn]; active != p {
		return fmt.Errorf("%w: it is %s's turn", ErrOutOfTurn, active.color)
	}

	p.retired = true
	g.advanceTurn()
	return nil
}

// advanceTurn moves to the next player still taking turns and flags the
// game over when nobody is left. The game is over exactly when every
// player is retired or out of pieces.
func (g *Game) advanceTurn() {
	for i := 1; i <= len(g.players); i++ {
		next := (g.turn + i) % len(g.players)
		if g.players[next].active() {
			g.turn = next
			return
		}
	}
	g.over = true
}

// CurrentTurn returns the active player's color, or NoColor once the game
// is over.
func (g *Game) CurrentTurn() Color {
	if g.over {
		return NoColor
	}
	return g.players[g.turn].color
}

// IsGameOver reports whether the game has reached its terminal state.
func (g *Game) IsGameOver() bool {
	return g.over
}

// Config returns the configuration the game was created from.
func (g *Game) Config() *GameConfig {
	return g.config
}

// BoardSize returns the board's side length.
func (g *Game) BoardSize() int {
	return g.board.Side()
}

// BoardRows returns the board's row rendering.
func (g *Game) BoardRows() []string {
	return g.board.Rows()
}

// CellColor returns the color occupying the position.
func (g *Game) CellColor(p Position) (Color, error) {
	if !g.board.InBounds(p) {
		return NoColor, fmt.Errorf("%w: position (%d,%d) is out of bounds", ErrInvalidState, p.Row, p.Col)
	}
	return g.board.ColorAt(p), nil
}

// Players returns the seat colors in turn order.
func (g *Game) Players() []Color {
	colors := make([]Color, len(g.players))
	for i, p := range g.players {
		colors[i] = p.color
	}
	return colors
}

// Remaining returns the player's unplaced piece ids in catalog order.
func (g *Game) Remaining(color Color) ([]PieceID, error) {
	p := g.playerByColor(color)
	if p == nil {
		return nil, fmt.Errorf("%w: no player with color %q", ErrInvalidState, color)
	}
	return p.inventory.Remaining(), nil
}

// IsRetired reports whether the player has retired.
func (g *Game) IsRetired(color Color) (bool, error) {
	p := g.playerByColor(color)
	if p == nil {
		return false, fmt.Errorf("%w: no player with color %q", ErrInvalidState, color)
	}
	return p.retired, nil
}

// IsExhausted reports whether the player has placed every piece.
func (g *Game) IsExhausted(color Color) (bool, error) {
	p := g.playerByColor(color)
	if p == nil {
		return false, fmt.Errorf("%w: no player with color %q", ErrInvalidState, color)
	}
	return p.exhausted(), nil
}

// HasPlaced reports whether the player has made their first placement.
func (g *Game) HasPlaced(color Color) (bool, error) {
	p := g.playerByColor(color)
	if p == nil {
		return false, fmt.Errorf("%w: no player with color %q", ErrInvalidState, color)
	}
	return p.hasPlaced, nil
}

// StartCell returns the player's designated start cell.
func (g *Game) StartCell(color Color) (Position, error) {
	p := g.playerByColor(color)
	if p == nil {
		return Position{}, fmt.Errorf("%w: no player with color %q", ErrInvalidState, color)
	}
	return p.startCell, nil
}

// Score returns the player's score. With pieces still unplaced it is the
// negative sum of their cell counts; with an empty inventory it is the full
// pip total plus the configured bonuses.
func (g *Game) Score(color Color) (int, error) {
	p := g.playerByColor(color)
	if p == nil {
		return 0, fmt.Errorf("%w: no player with color %q", ErrInvalidState, color)
	}
	return g.scoreOf(p), nil
}

func (g *Game) scoreOf(p *player) int {
	if p.inventory.Empty() {
		score := TotalPipCount + g.config.Scoring.FullPlacementBonus
		if p.lastPiece == MonominoID {
			score += g.config.Scoring.MonominoFinishBonus
		}
		return score
	}
	return -p.inventory.RemainingPips()
}

// Scores returns every player's current score keyed by color.
func (g *Game) Scores() map[Color]int {
	scores := make(map[Color]int, len(g.players))
	for _, p := range g.players {
		scores[p.color] = g.scoreOf(p)
	}
	return scores
}

// Winners returns the players with the highest score, in seat order, once
// the game is over. Before that it returns nil.
func (g *Game) Winners() []Color {
	if !g.over {
		return nil
	}

	best := 0
	for i, p := range g.players {
		if score := g.scoreOf(p); i == 0 || score > best {
			best = score
		}
	}
	var winners []Color
	for _, p := range g.players {
		if g.scoreOf(p) == best {
			winners = append(winners, p.color)
		}
	}
	return winners
}

// MoveCount returns the number of applied placements.
func (g *Game) MoveCount() int {
	return g.moveCount
}

// History returns the applied placements in order.
func (g *Game) History() []MoveRecord {
	return append([]MoveRecord(nil), g.history...)
}

// State builds the externally visible snapshot of the whole game.
func (g *Game) State() *GameState {
	players := make([]PlayerState, len(g.players))
	for i, p := range g.players {
		players[i] = p.state(g.scoreOf(p))
	}
	return &GameState{
		ConfigName:  g.config.Name,
		BoardSize:   g.board.Side(),
		Board:       g.board.Rows(),
		Players:     players,
		CurrentTurn: g.CurrentTurn(),
		GameOver:    g.over,
		MoveCount:   g.moveCount,
		History:     g.History(),
	}
}
