package engine

import (
	"errors"
	"testing"
)

func TestFirstMoveMustCoverStart(t *testing.T) {
	game, err := NewGame(createDuoConfig())
	if err != nil {
		t.Fatalf("Failed to create game: %v", err)
	}

	t.Run("anywhere else is rejected", func(t *testing.T) {
		err := game.CheckPlacement(Blue, "1", 0, Position{Row: 1, Col: 1})
		if !errors.Is(err, ErrIllegalMove) {
			t.Errorf("Expected ErrIllegalMove for a first move off the start cell, got %v", err)
		}
	})

	t.Run("covering the start cell is legal", func(t *testing.T) {
		if err := game.CheckPlacement(Blue, "1", 0, Position{Row: 0, Col: 0}); err != nil {
			t.Errorf("Expected the monomino on the start cell to be legal, got %v", err)
		}
	})

	t.Run("any cell of the piece may cover the start", func(t *testing.T) {
		// Horizontal triomino anchored two cells left of the corner
		if err := game.CheckPlacement(Yellow, "3", 0, Position{Row: 13, Col: 11}); err != nil {
			t.Errorf("Expected coverage by a non-anchor cell to be legal, got %v", err)
		}
	})
}

func TestPlacementBounds(t *testing.T) {
	game, err := NewGame(createDuoConfig())
	if err != nil {
		t.Fatalf("Failed to create game: %v", err)
	}

	tests := []struct {
		name   string
		piece  PieceID
		orient int
		anchor Position
	}{
		{"negative anchor", "1", 0, Position{Row: -1, Col: 0}},
		{"tail off the bottom", "5", 0, Position{Row: 10, Col: 0}},
		{"tail off the right", "4", 0, Position{Row: 0, Col: 11}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := game.CheckPlacement(Blue, test.piece, test.orient, test.anchor)
			if !errors.Is(err, ErrIllegalMove) {
				t.Errorf("Expected ErrIllegalMove, got %v", err)
			}
		})
	}
}

func TestUnknownPieceRejected(t *testing.T) {
	game, err := NewGame(createDuoConfig())
	if err != nil {
		t.Fatalf("Failed to create game: %v", err)
	}

	t.Run("id not in catalog", func(t *testing.T) {
		err := game.CheckPlacement(Blue, "Q", 0, Position{Row: 0, Col: 0})
		if !errors.Is(err, ErrUnknownPiece) {
			t.Errorf("Expected ErrUnknownPiece, got %v", err)
		}
	})

	t.Run("piece already placed", func(t *testing.T) {
		mustPlace(t, game, Blue, "1", 0, Position{Row: 0, Col: 0})
		err := game.CheckPlacement(Blue, "1", 0, Position{Row: 1, Col: 1})
		if !errors.Is(err, ErrUnknownPiece) {
			t.Errorf("Expected ErrUnknownPiece for a spent piece, got %v", err)
		}
	})

	t.Run("orientation out of range", func(t *testing.T) {
		err := game.CheckPlacement(Yellow, "1", 5, Position{Row: 13, Col: 13})
		if !errors.Is(err, ErrIllegalMove) {
			t.Errorf("Expected ErrIllegalMove for a bad orientation index, got %v", err)
		}
	})
}

func TestOccupiedCellsRejected(t *testing.T) {
	game, err := NewGame(createDuoConfig())
	if err != nil {
		t.Fatalf("Failed to create game: %v", err)
	}
	mustPlace(t, game, Blue, "1", 0, Position{Row: 0, Col: 0})

	err = game.CheckPlacement(Blue, "2", 0, Position{Row: 0, Col: 0})
	if !errors.Is(err, ErrIllegalMove) {
		t.Errorf("Expected ErrIllegalMove for overlapping an occupied cell, got %v", err)
	}
}

func TestAdjacencyRules(t *testing.T) {
	game, err := NewGame(createDuoConfig())
	if err != nil {
		t.Fatalf("Failed to create game: %v", err)
	}
	mustPlace(t, game, Blue, "1", 0, Position{Row: 0, Col: 0})

	t.Run("edge contact rejected even with corner contact", func(t *testing.T) {
		// Horizontal domino at (1,0)-(1,1): edge-touches (0,0), corner-touches it too
		err := game.CheckPlacement(Blue, "2", 0, Position{Row: 1, Col: 0})
		if !errors.Is(err, ErrIllegalMove) {
			t.Errorf("Expected ErrIllegalMove for edge contact, got %v", err)
		}
	})

	t.Run("corner contact without edge contact accepted", func(t *testing.T) {
		// Vertical domino at (1,1)-(2,1): only diagonal contact with (0,0)
		if err := game.CheckPlacement(Blue, "2", 1, Position{Row: 1, Col: 1}); err != nil {
			t.Errorf("Expected the diagonal domino to be legal, got %v", err)
		}
	})

	t.Run("no contact at all rejected", func(t *testing.T) {
		err := game.CheckPlacement(Blue, "1", 0, Position{Row: 5, Col: 5})
		if !errors.Is(err, ErrIllegalMove) {
			t.Errorf("Expected ErrIllegalMove for a free-floating piece, got %v", err)
		}
	})
}

func TestCrossColorContactAllowed(t *testing.T) {
	game, err := NewGame(createMiniConfig())
	if err != nil {
		t.Fatalf("Failed to create game: %v", err)
	}

	mustPlace(t, game, Blue, "1", 0, Position{Row: 0, Col: 0})
	mustPlace(t, game, Yellow, "1", 0, Position{Row: 4, Col: 4})
	mustPlace(t, game, Blue, "2", 1, Position{Row: 1, Col: 1})
	mustPlace(t, game, Yellow, "2", 1, Position{Row: 2, Col: 3})

	// (3,2) corner-touches blue (2,1) and edge-touches yellow (3,3)
	if err := game.CheckPlacement(Blue, "C", 0, Position{Row: 3, Col: 2}); err == nil {
		t.Error("The C triomino should not fit at (3,2): it would land on yellow cells")
	}
	if err := game.CheckPlacement(Blue, "1", 0, Position{Row: 3, Col: 2}); err != nil {
		t.Errorf("Expected edge contact with another color to be legal, got %v", err)
	}
}

func TestSearchMatchesBruteForce(t *testing.T) {
	game, err := NewGame(createMiniConfig())
	if err != nil {
		t.Fatalf("Failed to create game: %v", err)
	}
	mustPlace(t, game, Blue, "1", 0, Position{Row: 0, Col: 0})
	mustPlace(t, game, Yellow, "1", 0, Position{Row: 4, Col: 4})
	mustPlace(t, game, Blue, "2", 1, Position{Row: 1, Col: 1})

	for _, color := range []Color{Blue, Yellow} {
		pruned, err := game.LegalPlacements(color)
		if err != nil {
			t.Fatalf("Failed to enumerate placements for %s: %v", color, err)
		}

		prunedSet := make(map[Placement]bool, len(pruned))
		for _, placement := range pruned {
			if prunedSet[placement] {
				t.Errorf("%s: placement %+v listed twice", color, placement)
			}
			prunedSet[placement] = true
		}

		// Brute force over every piece, orientation, and anchor
		remaining, _ := game.Remaining(color)
		bruteCount := 0
		for _, id := range remaining {
			piece, _ := GetPiece(id)
			for orient := range piece.Orientations {
				for row := 0; row < game.BoardSize(); row++ {
					for col := 0; col < game.BoardSize(); col++ {
						anchor := Position{Row: row, Col: col}
						if !game.IsLegal(color, id, orient, anchor) {
							continue
						}
						bruteCount++
						if !prunedSet[Placement{Piece: id, Orientation: orient, Anchor: anchor}] {
							t.Errorf("%s: brute force found %s/%d at (%d,%d) missing from the enumeration",
								color, id, orient, row, col)
						}
					}
				}
			}
		}

		if bruteCount != len(pruned) {
			t.Errorf("%s: brute force found %d placements, enumeration found %d", color, bruteCount, len(pruned))
		}

		hasMove, err := game.HasAnyLegalMove(color)
		if err != nil {
			t.Fatalf("Search failed for %s: %v", color, err)
		}
		if hasMove != (len(pruned) > 0) {
			t.Errorf("%s: HasAnyLegalMove=%v but %d placements exist", color, hasMove, len(pruned))
		}
	}
}

func TestSearchIdempotent(t *testing.T) {
	game, err := NewGame(createMiniConfig())
	if err != nil {
		t.Fatalf("Failed to create game: %v", err)
	}
	mustPlace(t, game, Blue, "1", 0, Position{Row: 0, Col: 0})

	first, err := game.HasAnyLegalMove(Blue)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	second, err := game.HasAnyLegalMove(Blue)
	if err != nil {
		t.Fatalf("Repeated search failed: %v", err)
	}
	if first != second {
		t.Errorf("Search on unchanged state changed its answer: %v then %v", first, second)
	}
}

func TestHasLegalMoveForPiece(t *testing.T) {
	game, err := NewGame(createMiniConfig())
	if err != nil {
		t.Fatalf("Failed to create game: %v", err)
	}
	mustPlace(t, game, Blue, "1", 0, Position{Row: 0, Col: 0})

	t.Run("spent piece has no move", func(t *testing.T) {
		hasMove, err := game.HasLegalMoveForPiece(Blue, "1")
		if err != nil {
			t.Fatalf("Search failed: %v", err)
		}
		if hasMove {
			t.Error("A spent piece must report no legal move")
		}
	})

	t.Run("piece in hand", func(t *testing.T) {
		hasMove, err := game.HasLegalMoveForPiece(Blue, "2")
		if err != nil {
			t.Fatalf("Search failed: %v", err)
		}
		if !hasMove {
			t.Error("The domino should still have a legal move")
		}
	})

	t.Run("unknown piece", func(t *testing.T) {
		_, err := game.HasLegalMoveForPiece(Blue, "Q")
		if !errors.Is(err, ErrUnknownPiece) {
			t.Errorf("Expected ErrUnknownPiece, got %v", err)
		}
	})

	t.Run("unknown color", func(t *testing.T) {
		_, err := game.HasLegalMoveForPiece(Red, "2")
		if !errors.Is(err, ErrInvalidState) {
			t.Errorf("Expected ErrInvalidState, got %v", err)
		}
	})
}

func TestBlockedPlayerHasNoMoves(t *testing.T) {
	game, err := NewGame(createMiniConfig())
	if err != nil {
		t.Fatalf("Failed to create game: %v", err)
	}

	board, err := ParseBoard([]string{
		"BYYYY",
		"YYYYY",
		"YYYYY",
		"YYYYY",
		"YYYY.",
	})
	if err != nil {
		t.Fatalf("Failed to parse board: %v", err)
	}
	game.board = board
	game.playerByColor(Blue).hasPlaced = true
	game.playerByColor(Yellow).hasPlaced = true

	blueMove, err := game.HasAnyLegalMove(Blue)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if blueMove {
		t.Error("Blue is walled in and must have no legal move")
	}

	// Yellow's only free cell edge-touches yellow, so it is unusable too
	yellowMove, err := game.HasAnyLegalMove(Yellow)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if yellowMove {
		t.Error("Yellow's single free cell is edge-adjacent to yellow and unusable")
	}
}

func TestOccupiedStartBlocksFirstMove(t *testing.T) {
	game, err := NewGame(createMiniConfig())
	if err != nil {
		t.Fatalf("Failed to create game: %v", err)
	}

	board, err := ParseBoard([]string{
		"Y....",
		".....",
		".....",
		".....",
		".....",
	})
	if err != nil {
		t.Fatalf("Failed to parse board: %v", err)
	}
	game.board = board

	hasMove, err := game.HasAnyLegalMove(Blue)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if hasMove {
		t.Error("Blue cannot cover an occupied start cell, so no first move exists")
	}
}
