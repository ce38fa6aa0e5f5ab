package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/draney98/ochoXocho/internal/config"
	"github.com/draney98/ochoXocho/internal/games/ochoxocho"
	"github.com/draney98/ochoXocho/internal/games/ochoxocho/core"
	"github.com/draney98/ochoXocho/internal/games/ochoxocho/sim"
)

var (
	flagSimGames    int
	flagSimWorkers  int
	flagSimMaxMoves int
	flagSimMode     string
	flagSimVerbose  bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run headless games with the built-in solver",
	Long: `Play many games without a terminal UI, placing every hand with the
solver, and print score statistics. Zero-valued flags fall back to the
sim section of the config.

Examples:
  ochoxocho sim
  ochoxocho sim --games 1000 --workers 8
  ochoxocho sim --mode unconstrained --seed 42 --verbose`,
	Run: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimGames, "games", 0, "Number of games")
	simCmd.Flags().IntVar(&flagSimWorkers, "workers", 0, "Concurrent games")
	simCmd.Flags().IntVar(&flagSimMaxMoves, "max-moves", 0, "Per-game placement cap")
	simCmd.Flags().StringVar(&flagSimMode, "mode", "", "Generation mode: guaranteed-fit, unconstrained")
	simCmd.Flags().BoolVarP(&flagSimVerbose, "verbose", "v", false, "Print every game")
	simCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runSim(_ *cobra.Command, _ []string) {
	logger := consoleLogger("ochoxocho-sim")

	cfg, err := loadConfig(flagDifficulty)
	if err != nil {
		logger.Fatal("could not load config", "error", err)
	}

	mode := ochoxocho.ConfiguredMode(cfg)
	if flagSimMode != "" {
		m, ok := core.ParseMode(flagSimMode)
		if !ok {
			logger.Fatal("unknown mode", "mode", flagSimMode)
		}
		mode = m
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	opts := simOptions(cfg, mode, seed)
	opts.Logger = logger

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("running simulation",
		"games", opts.Games,
		"workers", opts.Workers,
		"max_moves", opts.MaxMoves,
		"mode", mode,
		"seed", seed)
	start := time.Now()
	report, err := sim.Run(ctx, opts)
	if err != nil {
		logger.Error("simulation failed", "error", err)
		os.Exit(1)
	}
	logger.Info("simulation done", "elapsed", time.Since(start).Round(time.Millisecond))

	printReport(report)
}

func simOptions(cfg config.OchoConfig, mode core.Mode, seed int64) sim.Options {
	opts := sim.Options{
		Games:    cfg.Sim.Games,
		Workers:  cfg.Sim.Workers,
		MaxMoves: cfg.Sim.MaxMoves,
		Seed:     seed,
		Session:  ochoxocho.Options(cfg, mode),
	}
	if flagSimGames > 0 {
		opts.Games = flagSimGames
	}
	if flagSimWorkers > 0 {
		opts.Workers = flagSimWorkers
	}
	if flagSimMaxMoves > 0 {
		opts.MaxMoves = flagSimMaxMoves
	}
	return opts
}

func printReport(r sim.Report) {
	const padding = 3
	w := tabwriter.NewWriter(os.Stdout, 0, 0, padding, ' ', 0)

	if flagSimVerbose {
		fmt.Fprintln(w, "Game\tSeed\tScore\tLevel\tLines\tShapes\tHands\tFallbacks\tEnd")
		for _, g := range r.Games {
			end := "cap"
			switch {
			case g.Over:
				end = "over"
			case g.Stuck:
				end = "stuck"
			}
			fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%s\n",
				g.Index, g.Seed, g.Score, g.Level, g.Lines, g.Shapes, g.Hands, g.FallbackHands, end)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Games\t%d\n", len(r.Games))
	fmt.Fprintf(w, "Finished\t%d\n", r.Finished)
	fmt.Fprintf(w, "Mean score\t%.1f\n", r.MeanScore)
	fmt.Fprintf(w, "Max score\t%d\n", r.MaxScore)
	fmt.Fprintf(w, "Mean lines\t%.1f\n", r.MeanLines)
	fmt.Fprintf(w, "Mean shapes\t%.1f\n", r.MeanShapes)
	fmt.Fprintf(w, "Fallback hands\t%d\n", r.FallbackHands)
	w.Flush()
}
