// invaders is a terminal space invaders shooter.
//
// Usage:
//
//	invaders play            - Play a round in this terminal
//	invaders serve           - Start SSH server for remote play
//	invaders cues            - Preview or export the sound cues
//
// Global flags:
//
//	--config <path>     - Config file (.yaml or .toml)
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Invaders - shoot down the invasion in your terminal",
	Long: `Invaders is a terminal shooter. Invaders appear at the top of a
40x20 playfield and march down one row per second; shoot them all down
before one reaches your ship.

Available commands:
  play     - Play a round in this terminal
  serve    - Start SSH server for remote play
  cues     - Preview or export the sound cues

Examples:
  invaders play
  invaders play --backend ansi --no-sound
  invaders serve --ssh :2222
  invaders cues --export ./sounds`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file (.yaml or .toml)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(cuesCmd)
}

// loadConfig reads the config file and applies explicitly set global flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.Loop.FPS = flagFPS
	}
	if flags.Changed("seed") {
		cfg.Loop.Seed = flagSeed
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	return cfg, cfg.Validate()
}
