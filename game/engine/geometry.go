package engine

import (
	"sort"
	"strconv"
	"strings"
)

// normalizeOffsets translates cells so the minimum row and column are zero
// and sorts them in row-major order.
func normalizeOffsets(cells []Position) []Position {
	if len(cells) == 0 {
		return nil
	}
	minRow, minCol := cells[0].Row, cells[0].Col
	for _, cell := range cells[1:] {
		if cell.Row < minRow {
			minRow = cell.Row
		}
		if cell.Col < minCol {
			minCol = cell.Col
		}
	}

	normalized := make([]Position, len(cells))
	for i, cell := range cells {
		normalized[i] = Position{Row: cell.Row - minRow, Col: cell.Col - minCol}
	}
	sortPositions(normalized)
	return normalized
}

func sortPositions(cells []Position) {
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Row != cells[j].Row {
			return cells[i].Row < cells[j].Row
		}
		return cells[i].Col < cells[j].Col
	})
}

// rotateRight turns offsets 90 degrees clockwise.
func rotateRight(cells []Position) []Position {
	rotated := make([]Position, len(cells))
	for i, cell := range cells {
		rotated[i] = Position{Row: cell.Col, Col: -cell.Row}
	}
	return rotated
}

// flipHorizontally mirrors offsets across the vertical axis.
func flipHorizontally(cells []Position) []Position {
	flipped := make([]Position, len(cells))
	for i, cell := range cells {
		flipped[i] = Position{Row: cell.Row, Col: -cell.Col}
	}
	return flipped
}

// offsetKey encodes a normalized offset set for equality comparison.
func offsetKey(cells []Position) string {
	var b strings.Builder
	for i, cell := range cells {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(strconv.Itoa(cell.Row))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(cell.Col))
	}
	return b.String()
}

// orientationsOf produces the distinct orientations reachable from the base
// offsets by the four right rotations, with and without a horizontal flip,
// deduplicated by offset-set equality after re-normalization. Order is
// generation order: the unflipped rotations first, then the flipped ones.
func orientationsOf(base []Position) []Shape {
	var shapes []Shape
	seen := make(map[string]bool)

	current := normalizeOffsets(base)
	for flip := 0; flip < 2; flip++ {
		for rot := 0; rot < 4; rot++ {
			key := offsetKey(current)
			if !seen[key] {
				seen[key] = true
				shapes = append(shapes, Shape{Cells: current})
			}
			current = normalizeOffsets(rotateRight(current))
		}
		current = normalizeOffsets(flipHorizontally(current))
	}
	return shapes
}
