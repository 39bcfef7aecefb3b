// trihunt is a triangle collecting game for the terminal and the desktop.
//
// Usage:
//
//	trihunt play             - Play in the terminal
//	trihunt window           - Play in a desktop window
//	trihunt serve            - Start SSH server for remote play
//	trihunt scores           - Show high scores
//	trihunt config           - Print the effective game configuration
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set RNG seed for reproducible placement
//	--db <path>            - Set database path (default: ~/.trihunt/scores.db)
//	--config <path>        - Load game settings from a YAML file
//	--difficulty <preset>  - Apply a difficulty preset: easy, normal, hard
package main

import (
	"fmt"
	"io"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tri-hunt/internal/config"
	"github.com/vovakirdan/tri-hunt/internal/core"
	"github.com/vovakirdan/tri-hunt/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagDebug      bool
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "trihunt",
	Short: "Triangle Hunt - Collect every triangle before time runs out",
	Long: `Triangle Hunt is a small arcade game: steer your triangle across the
board, collect the colored triangles and stay clear of the stars.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the effective game configuration

Examples:
  trihunt play
  trihunt play --difficulty hard
  trihunt window --seed 42
  trihunt serve --ssh :2222
  trihunt scores --limit 5`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log every frame")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file instead of stderr")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// loadGameConfig resolves --config and --difficulty into a validated configuration.
func loadGameConfig() (config.HuntConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.HuntConfig{}, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.HuntConfig{}, err
	}
	config.ApplyPreset(&cfg, preset)

	if err := cfg.Validate(); err != nil {
		return config.HuntConfig{}, err
	}
	return cfg, nil
}

// runtimeConfig builds the platform settings from the global flags.
// The screen size is left to the frontend.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed
	return cfg
}

// newLogger returns the process logger and a closer for its output.
// The terminal frontend owns the screen, so play logs are discarded
// unless --log-file is given.
func newLogger(prefix string, quietByDefault bool) (*log.Logger, io.Closer, error) {
	var (
		out    io.Writer = os.Stderr
		closer io.Closer = io.NopCloser(nil)
	)

	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out, closer = f, f
	case quietByDefault:
		out = io.Discard
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer, nil
}

// openStore opens the scores database. A failure is reported as a warning
// and the game runs without saving results.
func openStore(path string) *storage.Store {
	store, err := storage.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// playerName is the name local results are stored under.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "player"
}
