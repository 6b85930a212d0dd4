package engine

import (
	"fmt"
	"strings"
)

// Board is a fixed-size square grid of cells, each empty or owned by a color
type Board struct {
	side  int
	cells [][]Color
}

// NewBoard creates an empty board with the given side length.
func NewBoard(side int) *Board {
	cells := make([][]Color, side)
	for r := range cells {
		cells[r] = make([]Color, side)
	}
	return &Board{side: side, cells: cells}
}

// Side returns the board's side length.
func (b *Board) Side() int {
	return b.side
}

// InBounds reports whether the position is on the board.
func (b *Board) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < b.side && p.Col >= 0 && p.Col < b.side
}

// IsEmpty reports whether the position is on the board and unoccupied.
func (b *Board) IsEmpty(p Position) bool {
	return b.InBounds(p) && b.cells[p.Row][p.Col] == NoColor
}

// ColorAt returns the occupying color, or NoColor for an empty or
// out-of-range cell.
func (b *Board) ColorAt(p Position) Color {
	if !b.InBounds(p) {
		return NoColor
	}
	return b.cells[p.Row][p.Col]
}

// Place marks every given cell as occupied by the color. Callers have
// already validated bounds and occupancy; occupied cells never empty again.
func (b *Board) Place(cells []Position, color Color) {
	for _, p := range cells {
		b.cells[p.Row][p.Col] = color
	}
}

// OccupiedCount returns the number of non-empty cells.
func (b *Board) OccupiedCount() int {
	count := 0
	for _, row := range b.cells {
		for _, cell := range row {
			if cell != NoColor {
				count++
			}
		}
	}
	return count
}

// ColorCount returns the number of cells owned by the color.
func (b *Board) ColorCount(color Color) int {
	count := 0
	for _, row := range b.cells {
		for _, cell := range row {
			if cell == color {
				count++
			}
		}
	}
	return count
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	clone := NewBoard(b.side)
	for r, row := range b.cells {
		copy(clone.cells[r], row)
	}
	return clone
}

// Rows renders the board as one string per row, using . for empty cells
// and each color's letter for occupied ones.
func (b *Board) Rows() []string {
	rows := make([]string, b.side)
	for r, row := range b.cells {
		line := make([]byte, b.side)
		for c, cell := range row {
			line[c] = cell.Letter()
		}
		rows[r] = string(line)
	}
	return rows
}

// String renders the board with one row per line.
func (b *Board) String() string {
	return strings.Join(b.Rows(), "\n")
}

// ParseBoard rebuilds a board from its row rendering. The input must be
// square and use only . and the four color letters.
func ParseBoard(rows []string) (*Board, error) {
	side := len(rows)
	if side == 0 {
		return nil, fmt.Errorf("board parse: no rows")
	}

	board := NewBoard(side)
	for r, row := range rows {
		if len(row) != side {
			return nil, fmt.Errorf("board parse: row %d has %d cells, want %d", r, len(row), side)
		}
		for c := 0; c < side; c++ {
			color, err := colorForLetter(row[c])
			if err != nil {
				return nil, fmt.Errorf("board parse: row %d col %d: %v", r, c, err)
			}
			board.cells[r][c] = color
		}
	}
	return board, nil
}

// colorForLetter is the inverse of Color.Letter.
func colorForLetter(letter byte) (Color, error) {
	switch letter {
	case '.':
		return NoColor, nil
	case 'B':
		return Blue, nil
	case 'Y':
		return Yellow, nil
	case 'R':
		return Red, nil
	case 'G':
		return Green, nil
	default:
		return NoColor, fmt.Errorf("unknown cell %q", string(letter))
	}
}
