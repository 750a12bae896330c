// Package soak drives many headless sessions with random input and checks world invariants.
package soak

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"

	"github.com/lixenwraith/sacrifices/engine"
	"github.com/lixenwraith/sacrifices/game"
	"github.com/lixenwraith/sacrifices/logger"
	"github.com/lixenwraith/sacrifices/vmath"
)

// ErrInvalidOptions is returned by NewRunner for unusable options
var ErrInvalidOptions = errors.New("soak: invalid options")

// Options control a soak batch
type Options struct {
	Runs     int
	Workers  int
	Players  int
	MaxTicks int     // Per run; a run also ends at game over
	DT       float64 // Seconds per step
	Seed     uint64  // Run i uses Seed+i
}

// DefaultOptions returns a small batch at the reference tick rate
func DefaultOptions() Options {
	return Options{
		Runs:     32,
		Workers:  4,
		Players:  1,
		MaxTicks: 60 * 60 * 5,
		DT:       1.0 / 60,
		Seed:     1,
	}
}

func (o Options) validate() error {
	switch {
	case o.Runs <= 0:
		return fmt.Errorf("%w: runs %d", ErrInvalidOptions, o.Runs)
	case o.Workers <= 0:
		return fmt.Errorf("%w: workers %d", ErrInvalidOptions, o.Workers)
	case o.MaxTicks <= 0:
		return fmt.Errorf("%w: max ticks %d", ErrInvalidOptions, o.MaxTicks)
	case !(o.DT > 0):
		return fmt.Errorf("%w: dt %v", ErrInvalidOptions, o.DT)
	}
	return nil
}

// RunResult is the outcome of one session
type RunResult struct {
	ID         string
	Seed       uint64
	Ticks      uint64
	Score      int
	Rescued    int
	GameOver   bool
	Violations []string
	Err        error
	Elapsed    time.Duration
}

// Runner executes soak batches on a bounded worker pool
type Runner struct {
	opts Options
	log  logger.Logger
	pool *ants.Pool
}

// NewRunner creates a runner and its worker pool
func NewRunner(opts Options, log logger.Logger) (*Runner, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.NewNop()
	}

	pool, err := ants.NewPool(opts.Workers,
		ants.WithPreAlloc(true),
		ants.WithPanicHandler(func(p interface{}) {
			log.Error("soak worker panic", logger.F("panic", p))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("soak: create pool: %w", err)
	}

	return &Runner{opts: opts, log: log, pool: pool}, nil
}

// Close releases the worker pool
func (r *Runner) Close() {
	r.pool.Release()
}

// Run executes every session and returns the aggregated report
// A cancelled context stops runs at their next tick; finished runs are kept
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	batch := uuid.NewString()
	log := r.log.With(logger.F("batch", batch))
	log.Info("soak started",
		logger.F("runs", r.opts.Runs),
		logger.F("workers", r.opts.Workers),
		logger.F("players", r.opts.Players),
	)

	results := make([]RunResult, r.opts.Runs)
	var wg sync.WaitGroup

	for i := 0; i < r.opts.Runs; i++ {
		if ctx.Err() != nil {
			results = results[:i]
			break
		}
		i := i // Per-iteration copy for the closure (module targets go 1.21)
		wg.Add(1)
		err := r.pool.Submit(func() {
			defer wg.Done()
			results[i] = r.runOne(ctx, r.opts.Seed+uint64(i), log)
		})
		if err != nil {
			wg.Done()
			results[i] = RunResult{Seed: r.opts.Seed + uint64(i), Err: err}
		}
	}
	wg.Wait()

	report := NewReport(batch, results)
	log.Info("soak finished",
		logger.F("completed", report.Completed),
		logger.F("failed", report.Failed),
		logger.F("violations", report.Violations),
	)
	return report, ctx.Err()
}

// runOne plays a single session to game over or the tick limit
func (r *Runner) runOne(ctx context.Context, seed uint64, log logger.Logger) (res RunResult) {
	start := time.Now()
	res.Seed = seed
	defer func() {
		if p := recover(); p != nil {
			res.Err = fmt.Errorf("soak: run panicked: %v", p)
		}
		res.Elapsed = time.Since(start)
	}()

	sess, err := game.New(r.opts.Players, vmath.NewFastRand(seed), log)
	if err != nil {
		res.Err = err
		return res
	}
	res.ID = sess.ID

	keys := vmath.NewFastRand(seed ^ 0x9e3779b97f4a7c15)
	var prev Tally
	for t := 0; t < r.opts.MaxTicks && !sess.Over(); t++ {
		if ctx.Err() != nil {
			break
		}
		result, err := sess.Step(r.opts.DT, RandomInputs(keys, r.opts.Players))
		if err != nil {
			res.Err = err
			break
		}
		if v := CheckInvariants(sess.World(), prev); len(v) > 0 {
			for _, msg := range v {
				res.Violations = append(res.Violations, fmt.Sprintf("tick %d: %s", result.Tick, msg))
			}
			sess.Logger().Warn("invariant violated", logger.F("tick", result.Tick), logger.F("count", len(v)))
		}
		prev = Tally{Score: result.Score, Rescued: result.Rescued, Over: result.GameOver}
	}

	w := sess.World()
	res.Ticks = sess.Ticks()
	res.Score = w.Score
	res.Rescued = w.Rescued
	res.GameOver = w.GameOver
	return res
}

// RandomInputs draws a plausible control snapshot per player
// Directions are held often, actions pressed rarely
func RandomInputs(rng vmath.Rand, players int) []engine.Input {
	inputs := make([]engine.Input, players)
	for i := range inputs {
		inputs[i] = engine.Input{
			Up:     rng.Float64() < 0.3,
			Down:   rng.Float64() < 0.3,
			Left:   rng.Float64() < 0.3,
			Right:  rng.Float64() < 0.3,
			Rescue: rng.Float64() < 0.05,
			Shield: rng.Float64() < 0.01,
		}
	}
	return inputs
}
