package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tri-hunt/internal/platform/gui"
)

var (
	flagWidth  int
	flagHeight int
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and play there.

Controls:
  Arrows/WASD  - Move
  Enter/Space  - Start, close a message
  R            - Play again (after the game ends)
  Q/Esc        - Quit

Examples:
  trihunt window
  trihunt window --width 1024 --height 1024
  trihunt window --difficulty hard --debug`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagWidth, "width", gui.DefaultWidth, "Window width in pixels")
	windowCmd.Flags().IntVar(&flagHeight, "height", gui.DefaultHeight, "Window height in pixels")
}

func runWindow(_ *cobra.Command, _ []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closer, err := newLogger("trihunt", false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	store := openStore(flagDBPath)

	rt := runtimeConfig()
	rt.ScreenW = flagWidth
	rt.ScreenH = flagHeight

	runErr := gui.Run(gui.Options{
		Config:  cfg,
		Runtime: rt,
		Player:  playerName(),
		Store:   store,
		Logger:  logger,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
