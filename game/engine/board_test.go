package engine

import "testing"

func TestNewBoard(t *testing.T) {
	board := NewBoard(14)
	if board.Side() != 14 {
		t.Errorf("Expected side 14, got %d", board.Side())
	}
	if board.OccupiedCount() != 0 {
		t.Errorf("Expected a fresh board to be empty, got %d occupied cells", board.OccupiedCount())
	}
}

func TestBoardInBounds(t *testing.T) {
	board := NewBoard(5)

	tests := []struct {
		pos      Position
		expected bool
	}{
		{Position{Row: 0, Col: 0}, true},
		{Position{Row: 4, Col: 4}, true},
		{Position{Row: 0, Col: 4}, true},
		{Position{Row: -1, Col: 0}, false},
		{Position{Row: 0, Col: -1}, false},
		{Position{Row: 5, Col: 0}, false},
		{Position{Row: 0, Col: 5}, false},
	}

	for _, test := range tests {
		if got := board.InBounds(test.pos); got != test.expected {
			t.Errorf("InBounds(%d,%d): expected %v, got %v", test.pos.Row, test.pos.Col, test.expected, got)
		}
	}
}

func TestBoardPlaceAndQuery(t *testing.T) {
	board := NewBoard(5)
	cells := []Position{{Row: 1, Col: 1}, {Row: 1, Col: 2}}
	board.Place(cells, Red)

	for _, cell := range cells {
		if board.IsEmpty(cell) {
			t.Errorf("Cell (%d,%d) should be occupied", cell.Row, cell.Col)
		}
		if got := board.ColorAt(cell); got != Red {
			t.Errorf("Cell (%d,%d): expected red, got %q", cell.Row, cell.Col, got)
		}
	}

	if !board.IsEmpty(Position{Row: 0, Col: 0}) {
		t.Error("Cell (0,0) should be empty")
	}
	if got := board.ColorAt(Position{Row: 0, Col: 0}); got != NoColor {
		t.Errorf("Expected NoColor at (0,0), got %q", got)
	}
	if got := board.ColorAt(Position{Row: -1, Col: 0}); got != NoColor {
		t.Errorf("Expected NoColor out of bounds, got %q", got)
	}
	if board.IsEmpty(Position{Row: 9, Col: 9}) {
		t.Error("Out-of-bounds cells must not report empty")
	}

	if board.OccupiedCount() != 2 {
		t.Errorf("Expected 2 occupied cells, got %d", board.OccupiedCount())
	}
	if board.ColorCount(Red) != 2 {
		t.Errorf("Expected 2 red cells, got %d", board.ColorCount(Red))
	}
	if board.ColorCount(Blue) != 0 {
		t.Errorf("Expected 0 blue cells, got %d", board.ColorCount(Blue))
	}
}

func TestBoardClone(t *testing.T) {
	board := NewBoard(5)
	board.Place([]Position{{Row: 2, Col: 2}}, Green)

	clone := board.Clone()
	clone.Place([]Position{{Row: 0, Col: 0}}, Blue)

	if board.ColorAt(Position{Row: 0, Col: 0}) != NoColor {
		t.Error("Placing on the clone mutated the original")
	}
	if clone.ColorAt(Position{Row: 2, Col: 2}) != Green {
		t.Error("Clone lost the original's cells")
	}
}

func TestBoardRenderRoundTrip(t *testing.T) {
	board := NewBoard(5)
	board.Place([]Position{{Row: 0, Col: 0}, {Row: 0, Col: 1}}, Blue)
	board.Place([]Position{{Row: 4, Col: 4}}, Yellow)
	board.Place([]Position{{Row: 2, Col: 2}}, Red)
	board.Place([]Position{{Row: 3, Col: 1}}, Green)

	rows := board.Rows()
	expected := []string{
		"BB...",
		".....",
		"..R..",
		".G...",
		"....Y",
	}
	for i, row := range expected {
		if rows[i] != row {
			t.Errorf("Row %d: expected %q, got %q", i, row, rows[i])
		}
	}

	parsed, err := ParseBoard(rows)
	if err != nil {
		t.Fatalf("Failed to parse rendered board: %v", err)
	}
	if parsed.String() != board.String() {
		t.Errorf("Round trip changed the board:\n%s\nvs\n%s", board.String(), parsed.String())
	}
}

func TestParseBoardErrors(t *testing.T) {
	t.Run("no rows", func(t *testing.T) {
		if _, err := ParseBoard(nil); err == nil {
			t.Error("Expected error for empty input")
		}
	})

	t.Run("ragged rows", func(t *testing.T) {
		if _, err := ParseBoard([]string{"..", "..."}); err == nil {
			t.Error("Expected error for ragged rows")
		}
	})

	t.Run("unknown cell", func(t *testing.T) {
		if _, err := ParseBoard([]string{".Q", ".."}); err == nil {
			t.Error("Expected error for unknown cell character")
		}
	})
}
