package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lixenwraith/sacrifices/logger"
	"github.com/lixenwraith/sacrifices/soak"
)

func main() {
	defaults := soak.DefaultOptions()

	runs := flag.Int("runs", defaults.Runs, "Number of sessions")
	workers := flag.Int("workers", defaults.Workers, "Concurrent sessions")
	players := flag.Int("players", defaults.Players, "Players per session (1 or 2)")
	ticks := flag.Int("ticks", defaults.MaxTicks, "Tick limit per session")
	seed := flag.Uint64("seed", defaults.Seed, "Seed of the first session")
	tickRate := flag.Int("rate", 60, "Simulated ticks per second")
	level := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	flag.Parse()

	// No terminal UI here, so logs go to stderr
	log, err := logger.NewZapLogger(logger.Config{Level: *level, Format: "console"})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if *tickRate <= 0 {
		fmt.Fprintln(os.Stderr, "rate must be positive")
		os.Exit(2)
	}
	opts := soak.Options{
		Runs:     *runs,
		Workers:  *workers,
		Players:  *players,
		MaxTicks: *ticks,
		DT:       1.0 / float64(*tickRate),
		Seed:     *seed,
	}

	runner, err := soak.NewRunner(opts, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	defer runner.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := runner.Run(ctx)
	if werr := report.Write(os.Stdout); werr != nil {
		log.Error("write report", logger.F("error", werr))
	}
	if err != nil {
		log.Warn("soak interrupted", logger.F("error", err))
	}
	if !report.OK() {
		os.Exit(1)
	}
}
