package engine

import "fmt"

// Color identifies a player and the cells they own
type Color string

const (
	NoColor Color = ""
	Blue    Color = "blue"
	Yellow  Color = "yellow"
	Red     Color = "red"
	Green   Color = "green"

	// Validation constants
	MinBoardSize = 5
	MaxBoardSize = 50
	MaxPlayers   = 4

	// Catalog constants
	PieceCount    = 21
	TotalPipCount = 89

	// Classic scoring values
	DefaultBoardSize           = 20
	DefaultFullPlacementBonus  = 15
	DefaultMonominoFinishBonus = 5
)

// SeatOrder lists the four colors in classic turn order.
var SeatOrder = []Color{Blue, Yellow, Red, Green}

// Letter returns the single-character board symbol for the color.
func (c Color) Letter() byte {
	switch c {
	case Blue:
		return 'B'
	case Yellow:
		return 'Y'
	case Red:
		return 'R'
	case Green:
		return 'G'
	default:
		return '.'
	}
}

// ParseColor resolves a color name to its Color value.
func ParseColor(name string) (Color, error) {
	for _, c := range SeatOrder {
		if string(c) == name {
			return c, nil
		}
	}
	return NoColor, fmt.Errorf("%w: unknown color %q", ErrInvalidState, name)
}

// Position represents row,col coordinates with (0,0) at the top-left
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// PieceID is the stable one-character identifier of a catalog piece
type PieceID string

// Shape is one fixed orientation of a polyomino, stored as offsets
// normalized so the minimum row and column are zero.
type Shape struct {
	Cells []Position `json:"cells"`
}

// Size returns the number of cells in the shape.
func (s Shape) Size() int {
	return len(s.Cells)
}

// Piece is one of the 21 catalog polyominoes with its distinct orientations
type Piece struct {
	ID           PieceID `json:"id"`
	Size         int     `json:"size"`
	Orientations []Shape `json:"orientations"`
}

// Placement identifies one concrete move: a piece, an orientation index
// into the piece's distinct orientations, and the board anchor the
// orientation's offsets are added to.
type Placement struct {
	Piece       PieceID  `json:"piece"`
	Orientation int      `json:"orientation"`
	Anchor      Position `json:"anchor"`
}

// GameConfig represents the game setup loaded from JSON
type GameConfig struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	BoardSize   int           `json:"board_size"`
	Players     []PlayerSetup `json:"players"`
	Scoring     struct {
		FullPlacementBonus  int `json:"full_placement_bonus"`
		MonominoFinishBonus int `json:"monomino_finish_bonus"`
	} `json:"scoring"`
}

// PlayerSetup assigns a seat its color and designated start cell
type PlayerSetup struct {
	Color Color    `json:"color"`
	Start Position `json:"start"`
}

// MoveRecord represents a single applied placement in the game history
type MoveRecord struct {
	MoveNumber  int        `json:"move_number"`
	Color       Color      `json:"color"`
	Piece       PieceID    `json:"piece"`
	Orientation int        `json:"orientation"`
	Anchor      Position   `json:"anchor"`
	Cells       []Position `json:"cells"`
	Timestamp   int64      `json:"timestamp"`
}

// PlayerState is the externally visible snapshot of one player
type PlayerState struct {
	Color         Color     `json:"color"`
	StartCell     Position  `json:"start_cell"`
	Remaining     []PieceID `json:"remaining"`
	RemainingPips int       `json:"remaining_pips"`
	HasPlaced     bool      `json:"has_placed"`
	Retired       bool      `json:"retired"`
	Exhausted     bool      `json:"exhausted"`
	Score         int       `json:"score"`
	LastPiece     PieceID   `json:"last_piece,omitempty"`
}

// GameState is the externally visible snapshot of a whole game
type GameState struct {
	ConfigName  string        `json:"config_name"`
	BoardSize   int           `json:"board_size"`
	Board       []string      `json:"board"`
	Players     []PlayerState `json:"players"`
	CurrentTurn Color         `json:"current_turn"`
	GameOver    bool          `json:"game_over"`
	MoveCount   int           `json:"move_count"`
	History     []MoveRecord  `json:"history"`
}
