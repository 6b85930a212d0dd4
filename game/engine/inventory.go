package engine

import "fmt"

// Inventory tracks the piece ids a player has not yet placed
type Inventory struct {
	remaining map[PieceID]bool
}

// NewInventory returns an inventory holding the full catalog.
func NewInventory() *Inventory {
	remaining := make(map[PieceID]bool, len(PieceIDs))
	for _, id := range PieceIDs {
		remaining[id] = true
	}
	return &Inventory{remaining: remaining}
}

// Has reports whether the piece is still unplaced.
func (inv *Inventory) Has(id PieceID) bool {
	return inv.remaining[id]
}

// Remaining returns the unplaced piece ids in catalog order.
func (inv *Inventory) Remaining() []PieceID {
	ids := make([]PieceID, 0, len(inv.remaining))
	for _, id := range PieceIDs {
		if inv.remaining[id] {
			ids = append(ids, id)
		}
	}
	return ids
}

// Count returns the number of unplaced pieces.
func (inv *Inventory) Count() int {
	return len(inv.remaining)
}

// Empty reports whether every piece has been placed.
func (inv *Inventory) Empty() bool {
	return len(inv.remaining) == 0
}

// RemainingPips returns the total cell count of the unplaced pieces.
func (inv *Inventory) RemainingPips() int {
	pips := 0
	for id := range inv.remaining {
		pips += pieceCatalog[id].Size
	}
	return pips
}

// Remove takes the piece out of the inventory. Removing an absent piece
// is an internal invariant violation, not a user-facing condition.
func (inv *Inventory) Remove(id PieceID) error {
	if !inv.remaining[id] {
		return fmt.Errorf("%w: piece %q not in inventory", ErrInvalidState, id)
	}
	delete(inv.remaining, id)
	return nil
}
