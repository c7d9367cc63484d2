package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dodger/internal/config"
	"github.com/vovakirdan/tui-dodger/internal/core"
	"github.com/vovakirdan/tui-dodger/internal/games/dodge"
)

var (
	flagTicks     int
	flagTrace     bool
	flagLookahead int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Let the autopilot play without a terminal",
	Long: `Run a session headless, steered by the autopilot, without frame delays.
With the same --seed and config a simulation always plays out the same way.

Examples:
  dodger simulate --seed 42
  dodger simulate --seed 42 --ticks 200 --trace
  dodger simulate --config ./hard.yaml --log-file sim.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 1000, "Quit after this many ticks (0 = until a collision)")
	simulateCmd.Flags().BoolVar(&flagTrace, "trace", false, "Print every frame")
	simulateCmd.Flags().IntVar(&flagLookahead, "lookahead", dodge.DefaultLookahead, "Rows the autopilot watches")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close of the log file

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	opts := simulation{
		MaxTicks:  flagTicks,
		Lookahead: flagLookahead,
	}
	if flagTrace {
		opts.Trace = cmd.OutOrStdout()
	}

	result, err := simulate(ctx, cfg, runtimeConfig(), opts, logger)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Game Over! Final Score: %d\n", result.Score)
	return nil
}

// simulation holds the knobs of a headless run.
type simulation struct {
	MaxTicks  int       // Quit after this many ticks; 0 runs until a collision
	Lookahead int       // Autopilot lookahead; 0 selects the default
	Trace     io.Writer // Receives every frame when set
}

// simulationResult summarizes a headless run.
type simulationResult struct {
	Score  int
	Ticks  uint64
	Reason dodge.EndReason
	Seed   int64
}

// simulate plays one autopilot session to the end without sleeping.
func simulate(ctx context.Context, cfg config.DodgeConfig, rt core.RuntimeConfig, sim simulation, logger *log.Logger) (simulationResult, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	seed := rt.ResolvedSeed()
	state := dodge.NewState(cfg, dodge.NewSeededSource(seed))

	var input dodge.InputSource = dodge.NewAutopilot(state, sim.Lookahead)
	if sim.MaxTicks > 0 {
		input = &tickLimit{next: input, max: sim.MaxTicks}
	}

	var renderer dodge.Renderer = dodge.RendererFunc(func(dodge.Snapshot) {})
	var text *dodge.TextRenderer
	if sim.Trace != nil {
		text = dodge.NewTextRenderer(sim.Trace, cfg.Glyphs)
		renderer = text
	}

	loop := dodge.NewLoop(state, input, renderer,
		dodge.WithFrameBudget(rt.FrameBudget(cfg.FrameBudget())),
		dodge.WithSleep(func(time.Duration) {}),
		dodge.WithLogger(logger),
	)
	logger.Info("simulation", "seed", seed, "max_ticks", sim.MaxTicks)
	loop.Run(ctx)

	result := simulationResult{
		Score:  state.Score(),
		Ticks:  state.Ticks(),
		Reason: state.Reason(),
		Seed:   seed,
	}
	if text != nil && text.Err() != nil {
		return result, fmt.Errorf("simulate: failed to write trace: %w", text.Err())
	}
	return result, nil
}

// tickLimit asks the wrapped input source for actions and adds a quit
// request once max ticks have been played.
type tickLimit struct {
	next  dodge.InputSource
	max   int
	polls int
}

func (t *tickLimit) Poll() []core.Action {
	t.polls++
	actions := t.next.Poll()
	if t.polls > t.max {
		actions = append(actions, core.ActionQuit)
	}
	return actions
}
