// Command analyze prints quick, human-readable statistics about the piece
// catalog and the variant configuration files in a config directory. It
// summarizes the orientation histogram and pip totals, and for each variant
// compares the board capacity against the combined piece supply and checks
// the start-cell geometry.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/josephcrivera/Blokus-Game-Simulation/game/engine"
)

func main() {
	configDir := flag.String("config-dir", "configs", "directory containing variant configurations")
	flag.Parse()

	analyzeCatalog()

	files, err := filepath.Glob(filepath.Join(*configDir, "*.json"))
	if err != nil {
		fmt.Printf("Error finding config files: %v\n", err)
		os.Exit(1)
	}
	for _, file := range files {
		fmt.Printf("\n=== Analyzing %s ===\n", filepath.Base(file))
		analyzeVariant(file)
	}
}

// analyzeCatalog prints the orientation histogram and pip accounting for
// the 21 catalog pieces.
func analyzeCatalog() {
	fmt.Println("=== Piece catalog ===")

	histogram := make(map[int]int)
	totalPips := 0
	totalOrientations := 0
	for _, piece := range engine.AllPieces() {
		histogram[len(piece.Orientations)]++
		totalPips += piece.Size
		totalOrientations += len(piece.Orientations)
	}

	fmt.Printf("Pieces: %d\n", len(engine.AllPieces()))
	fmt.Printf("Total pips: %d\n", totalPips)
	fmt.Printf("Distinct orientations: %d\n", totalOrientations)
	fmt.Println("Orientation histogram:")
	for _, count := range []int{1, 2, 4, 8} {
		if n, ok := histogram[count]; ok {
			fmt.Printf("  %d orientations: %d pieces\n", count, n)
		}
	}
}

// analyzeVariant reads one variant file and reports board capacity against
// the combined piece supply, plus the start-cell layout.
func analyzeVariant(path string) {
	config, err := engine.LoadGameConfig(path)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		return
	}

	fmt.Printf("Name: %s\n", config.Name)
	fmt.Printf("Board: %d x %d (%d cells)\n", config.BoardSize, config.BoardSize, config.BoardSize*config.BoardSize)
	fmt.Printf("Players: %d\n", len(config.Players))

	supply := engine.TotalPipCount * len(config.Players)
	capacity := config.BoardSize * config.BoardSize
	fmt.Printf("Piece supply: %d cells vs board capacity %d\n", supply, capacity)
	if supply > capacity {
		fmt.Printf("Fill ceiling: board fills before all pieces can be placed (%d cells short)\n", supply-capacity)
	} else {
		fmt.Printf("Fill ceiling: every piece could fit with %d cells to spare\n", capacity-supply)
	}

	var starts []string
	cornerStarts := 0
	last := config.BoardSize - 1
	for _, player := range config.Players {
		starts = append(starts, fmt.Sprintf("%s (%d,%d)", player.Color, player.Start.Row, player.Start.Col))
		r, c := player.Start.Row, player.Start.Col
		if (r == 0 || r == last) && (c == 0 || c == last) {
			cornerStarts++
		}
	}
	fmt.Printf("Start cells: %s\n", strings.Join(starts, ", "))
	if cornerStarts == len(config.Players) {
		fmt.Println("Start geometry: all corner starts")
	} else if cornerStarts == 0 {
		fmt.Println("Start geometry: all interior starts")
	} else {
		fmt.Printf("Start geometry: mixed (%d corner, %d interior)\n",
			cornerStarts, len(config.Players)-cornerStarts)
	}
}
