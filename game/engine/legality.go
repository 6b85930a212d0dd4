package engine

import "fmt"

var (
	cardinalDeltas = []Position{
		{Row: -1, Col: 0}, {Row: 1, Col: 0}, {Row: 0, Col: -1}, {Row: 0, Col: 1},
	}
	diagonalDeltas = []Position{
		{Row: -1, Col: -1}, {Row: -1, Col: 1}, {Row: 1, Col: -1}, {Row: 1, Col: 1},
	}
)

// absoluteCells translates a shape's offsets to board cells at the anchor.
func absoluteCells(shape Shape, anchor Position) []Position {
	cells := make([]Position, len(shape.Cells))
	for i, offset := range shape.Cells {
		cells[i] = Position{Row: anchor.Row + offset.Row, Col: anchor.Col + offset.Col}
	}
	return cells
}

// CheckPlacement reports whether placing the piece's orientation at the
// anchor is legal for the player in the current board and inventory state.
// It returns nil when legal, and a wrapped ErrIllegalMove or ErrUnknownPiece
// naming the failed rule otherwise. The check reads nothing but the board
// and the player's inventory and flags; turn order and retirement are
// enforced by AttemptPlace, not here.
//
// Rule order: bounds and occupancy are unconditional; then the piece must be
// in the player's inventory; then, for a first placement, some cell of the
// piece must cover the player's start cell, while for every later placement
// the piece must avoid edge contact with the player's own color and touch
// it on at least one corner. Contact with other colors is unrestricted.
func (g *Game) CheckPlacement(color Color, id PieceID, orientation int, anchor Position) error {
	p := g.playerByColor(color)
	if p == nil {
		return fmt.Errorf("%w: no player with color %q", ErrInvalidState, color)
	}
	piece, ok := pieceCatalog[id]
	if !ok {
		return fmt.Errorf("%w: %q is not a catalog piece", ErrUnknownPiece, id)
	}
	if !p.inventory.Has(id) {
		return fmt.Errorf("%w: piece %q was already placed", ErrUnknownPiece, id)
	}
	if orientation < 0 || orientation >= len(piece.Orientations) {
		return fmt.Errorf("%w: piece %q has no orientation %d", ErrIllegalMove, id, orientation)
	}

	cells := absoluteCells(piece.Orientations[orientation], anchor)
	for _, cell := range cells {
		if !g.board.InBounds(cell) {
			return fmt.Errorf("%w: cell (%d,%d) is out of bounds", ErrIllegalMove, cell.Row, cell.Col)
		}
		if g.board.ColorAt(cell) != NoColor {
			return fmt.Errorf("%w: cell (%d,%d) is occupied", ErrIllegalMove, cell.Row, cell.Col)
		}
	}

	if !p.hasPlaced {
		for _, cell := range cells {
			if cell == p.startCell {
				return nil
			}
		}
		return fmt.Errorf("%w: first piece must cover the start cell (%d,%d)",
			ErrIllegalMove, p.startCell.Row, p.startCell.Col)
	}

	for _, cell := range cells {
		for _, d := range cardinalDeltas {
			neighbor := Position{Row: cell.Row + d.Row, Col: cell.Col + d.Col}
			if g.board.ColorAt(neighbor) == color {
				return fmt.Errorf("%w: cell (%d,%d) would share an edge with its own color",
					ErrIllegalMove, cell.Row, cell.Col)
			}
		}
	}
	for _, cell := range cells {
		for _, d := range diagonalDeltas {
			neighbor := Position{Row: cell.Row + d.Row, Col: cell.Col + d.Col}
			if g.board.ColorAt(neighbor) == color {
				return nil
			}
		}
	}
	return fmt.Errorf("%w: no corner contact with own color", ErrIllegalMove)
}

// IsLegal is the boolean form of CheckPlacement.
func (g *Game) IsLegal(color Color, id PieceID, orientation int, anchor Position) bool {
	return g.CheckPlacement(color, id, orientation, anchor) == nil
}

// seedCells returns the cells a new piece must touch to have any chance of
// being legal: the start cell before the first placement, the free diagonal
// neighbors of the player's cells afterwards. Restricting candidate anchors
// to those derived from seeds keeps the search exact, since every legal
// placement covers the start cell or corner-touches an own cell.
func (g *Game) seedCells(p *player) []Position {
	if !p.hasPlaced {
		return []Position{p.startCell}
	}

	seen := make(map[Position]bool)
	var seeds []Position
	for r := 0; r < g.board.Side(); r++ {
		for c := 0; c < g.board.Side(); c++ {
			if g.board.ColorAt(Position{Row: r, Col: c}) != p.color {
				continue
			}
			for _, d := range diagonalDeltas {
				neighbor := Position{Row: r + d.Row, Col: c + d.Col}
				if g.board.IsEmpty(neighbor) && !seen[neighbor] {
					seen[neighbor] = true
					seeds = append(seeds, neighbor)
				}
			}
		}
	}
	return seeds
}

// candidateAnchors derives every anchor that lands some cell of the shape
// on some seed, deduplicated, in row-major order.
func candidateAnchors(shape Shape, seeds []Position) []Position {
	seen := make(map[Position]bool)
	var anchors []Position
	for _, seed := range seeds {
		for _, offset := range shape.Cells {
			anchor := Position{Row: seed.Row - offset.Row, Col: seed.Col - offset.Col}
			if !seen[anchor] {
				seen[anchor] = true
				anchors = append(anchors, anchor)
			}
		}
	}
	sortPositions(anchors)
	return anchors
}

// pieceHasPlacement reports whether any orientation of the piece fits at
// any candidate anchor.
func (g *Game) pieceHasPlacement(p *player, piece *Piece, seeds []Position) bool {
	for orient := range piece.Orientations {
		for _, anchor := range candidateAnchors(piece.Orientations[orient], seeds) {
			if g.CheckPlacement(p.color, piece.ID, orient, anchor) == nil {
				return true
			}
		}
	}
	return false
}

// HasLegalMoveForPiece reports whether the player can legally place the
// given piece anywhere on the board. A piece no longer in the player's
// inventory has no legal move.
func (g *Game) HasLegalMoveForPiece(color Color, id PieceID) (bool, error) {
	p := g.playerByColor(color)
	if p == nil {
		return false, fmt.Errorf("%w: no player with color %q", ErrInvalidState, color)
	}
	piece, ok := pieceCatalog[id]
	if !ok {
		return false, fmt.Errorf("%w: %q is not a catalog piece", ErrUnknownPiece, id)
	}
	if !p.inventory.Has(id) {
		return false, nil
	}
	return g.pieceHasPlacement(p, piece, g.seedCells(p)), nil
}

// HasAnyLegalMove reports whether any legal placement exists for the player
// across their full remaining inventory. A false answer is the condition
// under which the player must retire.
func (g *Game) HasAnyLegalMove(color Color) (bool, error) {
	p := g.playerByColor(color)
	if p == nil {
		return false, fmt.Errorf("%w: no player with color %q", ErrInvalidState, color)
	}
	seeds := g.seedCells(p)
	for _, id := range p.inventory.Remaining() {
		if g.pieceHasPlacement(p, pieceCatalog[id], seeds) {
			return true, nil
		}
	}
	return false, nil
}

// LegalPlacementsForPiece enumerates every legal placement of one piece for
// the player, ordered by orientation index then row-major anchor. A piece no
// longer in the inventory has no placements.
func (g *Game) LegalPlacementsForPiece(color Color, id PieceID) ([]Placement, error) {
	p := g.playerByColor(color)
	if p == nil {
		return nil, fmt.Errorf("%w: no player with color %q", ErrInvalidState, color)
	}
	piece, ok := pieceCatalog[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a catalog piece", ErrUnknownPiece, id)
	}
	if !p.inventory.Has(id) {
		return nil, nil
	}

	seeds := g.seedCells(p)
	var placements []Placement
	for orient := range piece.Orientations {
		for _, anchor := range candidateAnchors(piece.Orientations[orient], seeds) {
			if g.CheckPlacement(color, id, orient, anchor) == nil {
				placements = append(placements, Placement{
					Piece:       id,
					Orientation: orient,
					Anchor:      anchor,
				})
			}
		}
	}
	return placements, nil
}

// LegalPlacements enumerates every legal placement for the player across
// their remaining inventory, ordered by catalog position, orientation
// index, then row-major anchor.
func (g *Game) LegalPlacements(color Color) ([]Placement, error) {
	p := g.playerByColor(color)
	if p == nil {
		return nil, fmt.Errorf("%w: no player with color %q", ErrInvalidState, color)
	}

	seeds := g.seedCells(p)
	var placements []Placement
	for _, id := range p.inventory.Remaining() {
		piece := pieceCatalog[id]
		for orient := range piece.Orientations {
			for _, anchor := range candidateAnchors(piece.Orientations[orient], seeds) {
				if g.CheckPlacement(color, id, orient, anchor) == nil {
					placements = append(placements, Placement{
						Piece:       id,
						Orientation: orient,
						Anchor:      anchor,
					})
				}
			}
		}
	}
	return placements, nil
}
