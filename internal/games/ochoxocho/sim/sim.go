// Package sim plays ochoXocho games headlessly with the built-in solver and
// reports aggregate statistics. Games run concurrently; each one owns its
// session and RNG.
package sim

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"runtime"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/draney98/ochoXocho/internal/games/ochoxocho/core"
)

// Options controls a simulation run.
type Options struct {
	Games    int   // Number of games to play
	Workers  int   // Concurrent games; 0 means GOMAXPROCS
	MaxMoves int   // Per-game placement cap; 0 means no cap
	Seed     int64 // Game i is seeded with Seed+i

	Session core.Options
	Logger  *log.Logger
}

// GameResult is the outcome of one simulated game.
type GameResult struct {
	Index         int
	Seed          int64
	Score         int
	Level         int
	Lines         int
	Shapes        int
	Hands         int
	FallbackHands int  // Hands where guaranteed-fit generation fell back
	Over          bool // Ended by game over rather than the move cap
	Stuck         bool // Solver found no move while the game was still active
}

// Report aggregates a simulation run.
type Report struct {
	Games         []GameResult
	MeanScore     float64
	MaxScore      int
	MeanLines     float64
	MeanShapes    float64
	FallbackHands int
	Finished      int // Games that reached game over
}

// ErrNoGames is returned when Options.Games is not positive.
var ErrNoGames = errors.New("sim: games must be positive")

// Run plays opts.Games games and aggregates the results. Results are
// independent of the worker count.
func Run(ctx context.Context, opts Options) (Report, error) {
	if opts.Games <= 0 {
		return Report{}, ErrNoGames
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	results := make([]GameResult, opts.Games)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range opts.Games {
		g.Go(func() error {
			seed := opts.Seed + int64(i)
			res, err := Play(ctx, seed, opts.Session, opts.MaxMoves)
			if err != nil {
				return fmt.Errorf("sim: game %d: %w", i, err)
			}
			res.Index = i
			results[i] = res
			logger.Debug("game finished",
				"game", i,
				"seed", seed,
				"score", res.Score,
				"lines", res.Lines,
				"shapes", res.Shapes,
				"over", res.Over)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	return summarize(results), nil
}

// Play runs one game with AutoPlay until game over, the solver gets stuck, or
// at least maxMoves placements have been made.
func Play(ctx context.Context, seed int64, opts core.Options, maxMoves int) (GameResult, error) {
	s := core.NewSession(rand.New(rand.NewSource(seed)), opts)

	res := GameResult{Seed: seed}
	if s.LastReport().FellBack {
		res.FallbackHands++
	}
	s.Subscribe(func(ev core.Event) {
		if dealt, ok := ev.(core.HandDealtEvent); ok && dealt.Report.FellBack {
			res.FallbackHands++
		}
	})

	for s.State() == core.StateActive {
		if err := ctx.Err(); err != nil {
			return GameResult{}, err
		}
		if maxMoves > 0 && s.Score().Placed >= maxMoves {
			break
		}
		if len(s.AutoPlay()) == 0 {
			res.Stuck = true
			break
		}
	}

	score := s.Score()
	res.Score = score.Score
	res.Level = score.Level
	res.Lines = score.Lines
	res.Shapes = score.Placed
	res.Hands = s.HandsDealt()
	res.Over = s.State() == core.StateOver
	return res, nil
}

func summarize(results []GameResult) Report {
	r := Report{Games: results}
	var score, lines, shapes int
	for _, g := range results {
		score += g.Score
		lines += g.Lines
		shapes += g.Shapes
		r.MaxScore = max(r.MaxScore, g.Score)
		r.FallbackHands += g.FallbackHands
		if g.Over {
			r.Finished++
		}
	}
	n := float64(len(results))
	r.MeanScore = float64(score) / n
	r.MeanLines = float64(lines) / n
	r.MeanShapes = float64(shapes) / n
	return r
}
