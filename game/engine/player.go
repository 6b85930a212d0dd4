package engine

// player holds one seat's identity, start cell, inventory, and flags.
// The Game owns its players; external callers see PlayerState snapshots.
type player struct {
	color     Color
	startCell Position
	inventory *Inventory
	hasPlaced bool
	retired   bool
	lastPiece PieceID
}

func newPlayer(setup PlayerSetup) *player {
	return &player{
		color:     setup.Color,
		startCell: setup.Start,
		inventory: NewInventory(),
	}
}

// exhausted reports whether the player has placed every piece.
func (p *player) exhausted() bool {
	return p.inventory.Empty()
}

// active reports whether the player still takes turns.
func (p *player) active() bool {
	return !p.retired && !p.exhausted()
}

// state builds the externally visible snapshot.
func (p *player) state(score int) PlayerState {
	return PlayerState{
		Color:         p.color,
		StartCell:     p.startCell,
		Remaining:     p.inventory.Remaining(),
		RemainingPips: p.inventory.RemainingPips(),
		HasPlaced:     p.hasPlaced,
		Retired:       p.retired,
		Exhausted:     p.exhausted(),
		Score:         score,
		LastPiece:     p.lastPiece,
	}
}
