// flappy is a terminal Flappy game with a deterministic simulation core.
//
// Usage:
//
//	flappy                   - Play (same as flappy play)
//	flappy play              - Play in the terminal
//	flappy simulate          - Run headless and print the trajectory
//	flappy config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Custom config YAML
//	--difficulty <name>   - easy, normal or hard
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - dodge the pipes in your terminal",
	Long: `Flappy is a side-scrolling obstacle game for the terminal.
Flap through the gaps; the world speeds up the longer you survive.

Available commands:
  play      - Play in the terminal (default)
  simulate  - Run the simulation headless
  config    - Print the effective configuration

Examples:
  flappy
  flappy play --difficulty hard --sound
  flappy simulate --seed 7 --frames 600 --flap-every 20
  flappy config --config ./my-flappy.yaml`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the config file and applies the difficulty preset.
// It returns where the config came from.
func loadConfig() (config.FlappyConfig, string, error) {
	cfg, source, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return cfg, "", err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, "", err
	}
	if err := config.ApplyFlappyPreset(&cfg, preset); err != nil {
		return cfg, "", err
	}
	return cfg, source, nil
}
