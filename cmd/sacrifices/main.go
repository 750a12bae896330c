package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/sacrifices/audio"
	"github.com/lixenwraith/sacrifices/config"
	"github.com/lixenwraith/sacrifices/engine"
	"github.com/lixenwraith/sacrifices/logger"
)

var (
	configFlag  = flag.String("config", "", "Path to YAML config file")
	playersFlag = flag.Int("players", 0, "Player count 1 or 2; 0 shows the mode menu")
	seedFlag    = flag.Int64("seed", 0, "Spawn seed; 0 uses the clock")
	muteFlag    = flag.Bool("mute", false, "Disable audio")
	debugFlag   = flag.Bool("debug", false, "Debug level logging")
)

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(2)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "sacrifices needs an interactive terminal")
		os.Exit(1)
	}

	log, err := setupLogging(cfg.Log, *debugFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := play(cfg, log); err != nil {
		log.Error("game failed", logger.F("error", err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the file then applies flags over it
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return nil, err
	}
	if *playersFlag != 0 {
		cfg.Players = *playersFlag
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setupLogging builds the file logger; the terminal belongs to the renderer
func setupLogging(cfg logger.Config, verbose bool) (logger.Logger, error) {
	if verbose {
		cfg.Level = "debug"
		cfg.Development = true
	}
	if cfg.File == "" {
		// stderr would corrupt the screen
		cfg.Dir, cfg.File = logger.DefaultDir, logger.DefaultFile
	}
	return logger.NewZapLogger(cfg)
}

func play(cfg *config.Config, log logger.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	// Panic recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			log.Error("crashed", logger.F("panic", r))
			fmt.Fprintf(os.Stderr, "\n\x1b[31mSACRIFICES CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	clock := engine.NewMonotonicTimeProvider()

	sound := audio.NewSoundManager(audio.LoadAudioConfig(cfg.Audio), clock)
	if err := sound.Initialize(); err != nil {
		log.Warn("audio unavailable, continuing without sound", logger.F("error", err))
	}
	defer sound.Cleanup()

	a := newApp(screen, cfg, sound, log, clock)

	// A preset count in the file or flag skips the menu
	players := 0
	if *playersFlag != 0 || *configFlag != "" {
		players = cfg.Players
	}
	if err := a.start(players); err != nil {
		return err
	}

	events := make(chan tcell.Event, 256)
	go func() {
		defer close(events)
		for {
			// PollEvent returns nil once the screen is finalized
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	return a.run(events)
}
