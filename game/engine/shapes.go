package engine

import (
	"fmt"
	"strings"
)

// MonominoID is the single-cell piece, special-cased by scoring.
const MonominoID PieceID = "1"

// PieceIDs lists the catalog in canonical order. The one-character names
// follow the classic lettering: digits for the straight pieces, letters for
// the pieces shaped like them.
var PieceIDs = []PieceID{
	"1", "2", "3", "C",
	"4", "7", "S", "O", "A",
	"F", "5", "L", "N", "P", "T", "U", "V", "W", "X", "Y", "Z",
}

// baseShapeArt defines each piece's reference orientation as rows of
// X (cell) and . (blank). Offsets and all other orientations derive
// from these at startup.
var baseShapeArt = map[PieceID][]string{
	"1": {"X"},
	"2": {"XX"},
	"3": {"XXX"},
	"C": {
		"XX",
		"X.",
	},
	"4": {"XXXX"},
	"7": {
		"XX",
		".X",
		".X",
	},
	"S": {
		".XX",
		"XX.",
	},
	"O": {
		"XX",
		"XX",
	},
	"A": {
		".X.",
		"XXX",
	},
	"F": {
		".XX",
		"XX.",
		".X.",
	},
	"5": {
		"X",
		"X",
		"X",
		"X",
		"X",
	},
	"L": {
		"X.",
		"X.",
		"X.",
		"XX",
	},
	"N": {
		".X",
		".X",
		"XX",
		"X.",
	},
	"P": {
		"XX",
		"XX",
		"X.",
	},
	"T": {
		"XXX",
		".X.",
		".X.",
	},
	"U": {
		"X.X",
		"XXX",
	},
	"V": {
		"X..",
		"X..",
		"XXX",
	},
	"W": {
		"X..",
		"XX.",
		".XX",
	},
	"X": {
		".X.",
		"XXX",
		".X.",
	},
	"Y": {
		".X",
		"XX",
		".X",
		".X",
	},
	"Z": {
		"XX.",
		".X.",
		".XX",
	},
}

// pieceCatalog is built once at startup and never mutated afterwards.
var pieceCatalog = buildCatalog()

// buildCatalog parses the base shape art and computes every piece's
// distinct orientations.
func buildCatalog() map[PieceID]*Piece {
	catalog := make(map[PieceID]*Piece, len(PieceIDs))
	for _, id := range PieceIDs {
		art, ok := baseShapeArt[id]
		if !ok {
			panic(fmt.Sprintf("engine: piece %q has no shape definition", id))
		}
		base := parseShapeArt(art)
		if len(base) == 0 {
			panic(fmt.Sprintf("engine: piece %q has an empty shape definition", id))
		}
		catalog[id] = &Piece{
			ID:           id,
			Size:         len(base),
			Orientations: orientationsOf(base),
		}
	}
	return catalog
}

// parseShapeArt converts X/. rows into normalized offsets.
func parseShapeArt(art []string) []Position {
	var cells []Position
	for r, row := range art {
		for c, ch := range row {
			if ch == 'X' {
				cells = append(cells, Position{Row: r, Col: c})
			}
		}
	}
	return normalizeOffsets(cells)
}

// GetPiece looks up a catalog piece by id.
func GetPiece(id PieceID) (*Piece, bool) {
	piece, ok := pieceCatalog[id]
	return piece, ok
}

// AllPieces returns the catalog in canonical order.
func AllPieces() []*Piece {
	pieces := make([]*Piece, 0, len(PieceIDs))
	for _, id := range PieceIDs {
		pieces = append(pieces, pieceCatalog[id])
	}
	return pieces
}

// Art renders the shape back into X/. rows.
func (s Shape) Art() []string {
	maxRow, maxCol := 0, 0
	for _, cell := range s.Cells {
		if cell.Row > maxRow {
			maxRow = cell.Row
		}
		if cell.Col > maxCol {
			maxCol = cell.Col
		}
	}

	rows := make([][]byte, maxRow+1)
	for r := range rows {
		rows[r] = []byte(strings.Repeat(".", maxCol+1))
	}
	for _, cell := range s.Cells {
		rows[cell.Row][cell.Col] = 'X'
	}

	art := make([]string, len(rows))
	for r, row := range rows {
		art[r] = string(row)
	}
	return art
}
