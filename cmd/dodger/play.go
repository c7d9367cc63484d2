package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-dodger/internal/games/dodge"
	"github.com/vovakirdan/tui-dodger/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Left/A/H    - Move left
  Right/D/L   - Move right
  Up/Down/S   - Stop (velocity movement only)
  P           - Pause
  Ctrl+S      - Save a screenshot to ~/.dodger/screenshots
  Q/Esc       - Quit

Examples:
  dodger play
  dodger play --seed 7
  dodger play --config ./velocity.yaml --log-file dodger.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("play: stdout is not a terminal (use 'dodger simulate' for headless runs)")
	}

	// Playfield plus the help line under it.
	needW, needH := dodge.ScreenSize(cfg.Viewport.Width, cfg.Viewport.Height)
	needH++
	if w, h, sizeErr := term.GetSize(fd); sizeErr == nil && (w < needW || h < needH) {
		return fmt.Errorf("play: terminal is %dx%d, need at least %dx%d", w, h, needW, needH)
	}

	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close of the log file

	result, err := tui.Run(cfg, runtimeConfig(), logger)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Game Over! Final Score: %d\n", result.Score)
	return nil
}
