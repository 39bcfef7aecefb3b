package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tri-hunt/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the current terminal.

Controls:
  Arrows/WASD  - Move
  Enter/Space  - Start, close a message
  R            - Play again (after the game ends)
  Tab          - High scores (after the game ends)
  Q/Esc/Ctrl+C - Quit

Difficulty options:
  easy   - 90 seconds, 3 stars
  normal - Settings from the config file
  hard   - 45 seconds, 8 stars

Examples:
  trihunt play
  trihunt play --difficulty easy
  trihunt play --seed 42
  trihunt play --config ./my-hunt.yaml --log-file ./hunt.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closer, err := newLogger("trihunt", true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	// Continue without storage if the database is unavailable
	store := openStore(flagDBPath)

	runErr := tui.Run(tui.Options{
		Config:  cfg,
		Runtime: runtimeConfig(),
		Player:  playerName(),
		Store:   store,
		Logger:  logger,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		if errors.Is(runErr, tui.ErrNoTerminal) || errors.Is(runErr, tui.ErrScreenTooSmall) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
			fmt.Fprintln(os.Stderr, "Try 'trihunt window' to play in a desktop window.")
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
