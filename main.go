// Command blokus drives the Blokus rules engine from the terminal.
//
// It exposes subcommands to inspect the piece catalog, list the variant
// configurations, replay a scripted rules demo, print the rule summary,
// and run deterministic full-game simulations through the service layer.
// Flags control the config directory, the variant to play, and debug
// logging; CONFIG_DIR and BLOKUS_VARIANT provide environment defaults and
// a .env file is honored when present.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"github.com/josephcrivera/Blokus-Game-Simulation/game/config"
	"github.com/josephcrivera/Blokus-Game-Simulation/game/engine"
	"github.com/josephcrivera/Blokus-Game-Simulation/game/service"
	"github.com/josephcrivera/Blokus-Game-Simulation/game/session"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "Blokus Rules Engine"
)

func main() {
	// Load .env if present; a missing file is not an error
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.WithError(err).Warn("could not load .env file")
	}

	if err := newRootCommand().Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// newRootCommand builds the CLI command tree.
func newRootCommand() *cli.Command {
	return &cli.Command{
		Name:    "blokus",
		Usage:   AppName,
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config-dir",
				Usage:   "directory containing variant configurations",
				Value:   "configs",
				Sources: cli.EnvVars("CONFIG_DIR"),
			},
			&cli.StringFlag{
				Name:    "variant",
				Usage:   "variant configuration to play",
				Value:   "classic",
				Sources: cli.EnvVars("BLOKUS_VARIANT"),
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if cmd.Bool("debug") {
				log.SetLevel(log.DebugLevel)
			}
			return ctx, nil
		},
		Commands: []*cli.Command{
			newCatalogCommand(),
			newVariantsCommand(),
			newSimulateCommand(),
			newDemoCommand(),
			newRulesCommand(),
		},
	}
}

// initializeServices wires the session registry, config manager, and game
// service for commands that drive real games.
func initializeServices(configDir string) (service.GameService, *session.Manager, error) {
	configManager, err := config.NewManager(configDir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create config manager: %w", err)
	}

	sessionManager := session.NewManager()
	gameService := service.NewGameService(sessionManager, configManager)
	return gameService, sessionManager, nil
}

// newCatalogCommand prints the 21 catalog pieces.
func newCatalogCommand() *cli.Command {
	return &cli.Command{
		Name:  "catalog",
		Usage: "print the piece catalog",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "piece",
				Usage: "restrict the output to one piece id",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return printCatalog(cmd.Root().Writer, cmd.String("piece"))
		},
	}
}

// printCatalog writes the catalog table, optionally restricted to one id.
func printCatalog(w io.Writer, only string) error {
	pieces := engine.AllPieces()
	if only != "" {
		piece, ok := engine.GetPiece(engine.PieceID(only))
		if !ok {
			return fmt.Errorf("unknown piece %q", only)
		}
		pieces = []*engine.Piece{piece}
	}

	fmt.Fprintf(w, "%-5s %-5s %-12s %s\n", "ID", "SIZE", "ORIENTATIONS", "SHAPE")
	for _, piece := range pieces {
		art := piece.Orientations[0].Art()
		fmt.Fprintf(w, "%-5s %-5d %-12d %s\n", piece.ID, piece.Size, len(piece.Orientations), art[0])
		for _, row := range art[1:] {
			fmt.Fprintf(w, "%-5s %-5s %-12s %s\n", "", "", "", row)
		}
	}
	return nil
}

// newVariantsCommand lists the variant configurations the manager can see.
func newVariantsCommand() *cli.Command {
	return &cli.Command{
		Name:  "variants",
		Usage: "list available variant configurations",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			gameService, _, err := initializeServices(cmd.String("config-dir"))
			if err != nil {
				return err
			}

			configs, err := gameService.ListConfigs(ctx)
			if err != nil {
				return err
			}

			w := cmd.Root().Writer
			fmt.Fprintf(w, "%-10s %-8s %-8s %s\n", "ID", "BOARD", "PLAYERS", "DESCRIPTION")
			for _, info := range configs {
				fmt.Fprintf(w, "%-10s %-8s %-8d %s\n",
					info.ConfigID, fmt.Sprintf("%dx%d", info.BoardSize, info.BoardSize),
					info.Players, info.Description)
			}
			return nil
		},
	}
}

// newSimulateCommand plays full games to completion through the service
// layer. Each turn takes the first enumerated legal placement for the
// active player, which is deterministic but not a strategy; a player with
// no legal move retires.
func newSimulateCommand() *cli.Command {
	return &cli.Command{
		Name:  "simulate",
		Usage: "drive full games to completion",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "games",
				Usage: "number of games to play",
				Value: 1,
			},
			&cli.IntFlag{
				Name:  "seats",
				Usage: "override the number of seated players",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			gameService, sessionManager, err := initializeServices(cmd.String("config-dir"))
			if err != nil {
				return err
			}

			variant := cmd.String("variant")
			games := int(cmd.Int("games"))
			seats := int(cmd.Int("seats"))
			w := cmd.Root().Writer

			for i := 0; i < games; i++ {
				gameID, err := createSimulationGame(ctx, gameService, sessionManager, variant, seats)
				if err != nil {
					return err
				}
				if err := runSimulation(ctx, gameService, gameID, w); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// createSimulationGame creates a game from the variant, trimmed to the
// requested seat count when one is given.
func createSimulationGame(ctx context.Context, gameService service.GameService, sessionManager *session.Manager, variant string, seats int) (string, error) {
	if seats <= 0 {
		info, err := gameService.CreateGame(ctx, variant)
		if err != nil {
			return "", err
		}
		return info.ID, nil
	}

	base, err := gameService.LoadConfig(ctx, variant)
	if err != nil {
		return "", err
	}
	if seats > len(base.Players) {
		return "", fmt.Errorf("variant %q seats at most %d players", variant, len(base.Players))
	}

	trimmed := *base
	trimmed.Players = base.Players[:seats]
	sess, err := sessionManager.Create("", &trimmed)
	if err != nil {
		return "", err
	}
	return sess.ID, nil
}

// runSimulation drives one game to its terminal state and prints the final
// board, scores, and winners.
func runSimulation(ctx context.Context, gameService service.GameService, gameID string, w io.Writer) error {
	log.WithField("game", gameID).Info("simulation started")

	for {
		state, err := gameService.GetState(ctx, gameID)
		if err != nil {
			return err
		}
		if state.GameOver {
			break
		}

		active := state.CurrentTurn
		placements, err := gameService.LegalPlacements(ctx, gameID, active)
		if err != nil {
			return err
		}

		if len(placements) == 0 {
			result, err := gameService.Retire(ctx, gameID, active)
			if err != nil {
				return err
			}
			if !result.Success {
				return fmt.Errorf("retire rejected for %s: %s", active, result.Message)
			}
			log.WithFields(log.Fields{"game": gameID, "color": active}).Debug("player retired")
			continue
		}

		move := placements[0]
		result, err := gameService.PlacePiece(ctx, gameID, active, move.Piece, move.Orientation, move.Anchor)
		if err != nil {
			return err
		}
		if !result.Success {
			return fmt.Errorf("enumerated placement rejected for %s: %s", active, result.Message)
		}
		log.WithFields(log.Fields{
			"game":   gameID,
			"color":  active,
			"piece":  move.Piece,
			"anchor": fmt.Sprintf("(%d,%d)", move.Anchor.Row, move.Anchor.Col),
		}).Debug("piece placed")
	}

	state, err := gameService.GetState(ctx, gameID)
	if err != nil {
		return err
	}
	printFinalState(w, gameID, state)
	return nil
}

// printFinalState writes the board, the per-player scores, and the winners.
func printFinalState(w io.Writer, gameID string, state *engine.GameState) {
	fmt.Fprintf(w, "game %s finished after %d moves\n", gameID, state.MoveCount)
	for _, row := range state.Board {
		fmt.Fprintln(w, row)
	}

	best := state.Players[0].Score
	for _, p := range state.Players[1:] {
		if p.Score > best {
			best = p.Score
		}
	}
	var winners []string
	for _, p := range state.Players {
		fmt.Fprintf(w, "%-8s score %d\n", p.Color, p.Score)
		if p.Score == best {
			winners = append(winners, string(p.Color))
		}
	}
	fmt.Fprintf(w, "winner: %s\n", strings.Join(winners, ", "))
}

// demoStep is one scripted command in the rules demo.
type demoStep struct {
	color       engine.Color
	piece       engine.PieceID
	orientation int
	anchor      engine.Position
	note        string
}

// demoScript is the scripted 14x14 two-player opening: the monomino on the
// corner, a rejected out-of-turn probe, a rejected edge-touching domino,
// and the accepted diagonal domino.
func demoScript() (*engine.GameConfig, []demoStep) {
	config := &engine.GameConfig{
		Name:        "Demo",
		Description: "Scripted 14x14 two-player opening",
		BoardSize:   14,
		Players: []engine.PlayerSetup{
			{Color: engine.Blue, Start: engine.Position{Row: 0, Col: 0}},
			{Color: engine.Yellow, Start: engine.Position{Row: 13, Col: 13}},
		},
	}
	config.Scoring.FullPlacementBonus = engine.DefaultFullPlacementBonus
	config.Scoring.MonominoFinishBonus = engine.DefaultMonominoFinishBonus

	steps := []demoStep{
		{engine.Blue, "1", 0, engine.Position{Row: 0, Col: 0},
			"blue opens with the monomino on the start corner"},
		{engine.Yellow, "2", 0, engine.Position{Row: 5, Col: 5},
			"yellow's domino misses the start corner and is rejected"},
		{engine.Yellow, "1", 0, engine.Position{Row: 13, Col: 13},
			"yellow covers the start corner instead"},
		{engine.Blue, "2", 0, engine.Position{Row: 1, Col: 0},
			"blue's domino would share an edge with (0,0) and is rejected"},
		{engine.Blue, "2", 1, engine.Position{Row: 1, Col: 1},
			"blue's domino corner-touches (0,0) and is accepted"},
	}
	return config, steps
}

// newDemoCommand replays the scripted opening, printing each outcome. It
// shows the rule set without choosing any moves itself.
func newDemoCommand() *cli.Command {
	return &cli.Command{
		Name:  "demo",
		Usage: "replay a scripted two-player opening",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			sessionManager := session.NewManager()
			gameService := service.NewGameService(sessionManager, demoConfigManager{})

			demoConfig, steps := demoScript()
			sess, err := sessionManager.Create("demo", demoConfig)
			if err != nil {
				return err
			}

			w := cmd.Root().Writer
			for i, step := range steps {
				result, err := gameService.PlacePiece(ctx, sess.ID, step.color, step.piece, step.orientation, step.anchor)
				if err != nil {
					return err
				}
				outcome := "accepted"
				if !result.Success {
					outcome = "rejected: " + result.Message
				}
				fmt.Fprintf(w, "%d. %s\n   -> %s\n", i+1, step.note, outcome)
			}

			state, err := gameService.GetState(ctx, sess.ID)
			if err != nil {
				return err
			}
			fmt.Fprintln(w, "\nboard after the opening:")
			for _, row := range state.Board {
				fmt.Fprintln(w, row)
			}
			return nil
		},
	}
}

// demoConfigManager satisfies service.ConfigManager for the demo, which
// never loads configs from disk.
type demoConfigManager struct{}

func (demoConfigManager) LoadConfig(name string) (*engine.GameConfig, error) {
	return nil, fmt.Errorf("configuration not found")
}

func (demoConfigManager) ListConfigs() ([]*service.ConfigInfo, error) { return nil, nil }

func (demoConfigManager) GetDefault() *engine.GameConfig {
	demoConfig, _ := demoScript()
	return demoConfig
}

// rulesText is the plain-text summary printed by the rules command.
const rulesText = `Placement rules
  - Every cell of a piece must be on the board and on empty cells.
  - A player's first piece must cover their designated start cell.
  - Every later piece must touch one of the player's own pieces at a
    corner and must not share an edge with any of them.
  - Contact with other players' pieces is unrestricted.

Turn order and retirement
  - Players move in seat order; retired and finished players are skipped.
  - A player must retire exactly when no legal placement exists across
    their remaining pieces, orientations, and anchors.
  - The game ends when every player has retired or placed all 21 pieces.

Scoring
  - Pieces left in hand count against you: minus one point per cell.
  - Placing all 21 pieces scores the full 89 cells plus a bonus, with a
    further bonus when the last piece placed was the one-cell piece.
  - Bonus values are part of the variant configuration.`

// newRulesCommand prints the rule summary.
func newRulesCommand() *cli.Command {
	return &cli.Command{
		Name:  "rules",
		Usage: "print a summary of placement rules and scoring",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			fmt.Fprintln(cmd.Root().Writer, rulesText)
			return nil
		},
	}
}
