// dodger is a terminal game: steer along the bottom row and dodge the
// obstacles falling from the top. Every tick survived scores a point.
//
// Usage:
//
//	dodger                    - Play in the terminal (same as "dodger play")
//	dodger play               - Play in the terminal
//	dodger simulate           - Let the autopilot play headless
//	dodger config             - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Override the frame rate (default: config frame_ms)
//	--seed <value>      - Set RNG seed for reproducible sessions
//	--config <path>     - Read settings from a YAML file
//	--log-file <path>   - Write logs to a file (default: discarded)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dodger/internal/config"
	"github.com/vovakirdan/tui-dodger/internal/core"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dodger",
	Short: "Dodge falling obstacles in your terminal",
	Long: `dodger is a terminal game. You move along the bottom row while
obstacles fall from the top; every tick you survive scores a point.

Available commands:
  play      - Play in the terminal (default)
  simulate  - Let the autopilot play without a terminal
  config    - Print the effective configuration

Examples:
  dodger
  dodger --seed 42 --fps 20
  dodger simulate --ticks 500 --trace
  dodger config --config ./dodge.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate (0 = use the configured frame_ms)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a config YAML file")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads the game config named by --config, or the defaults.
func loadConfig() (config.DodgeConfig, error) {
	return config.Load(flagConfig)
}

// runtimeConfig collects the per-session overrides from the global flags.
func runtimeConfig() core.RuntimeConfig {
	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	rt.Seed = flagSeed
	return rt
}
