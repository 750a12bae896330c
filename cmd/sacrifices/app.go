package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/sacrifices/audio"
	"github.com/lixenwraith/sacrifices/config"
	"github.com/lixenwraith/sacrifices/engine"
	"github.com/lixenwraith/sacrifices/game"
	"github.com/lixenwraith/sacrifices/input"
	"github.com/lixenwraith/sacrifices/logger"
	"github.com/lixenwraith/sacrifices/parameter"
	"github.com/lixenwraith/sacrifices/render"
	"github.com/lixenwraith/sacrifices/vmath"
)

// phase is the screen currently shown
type phase int

const (
	phaseMenu phase = iota
	phaseIntro
	phasePlay
)

// app owns the terminal, the active session and everything around it
// All methods run on the main loop goroutine
type app struct {
	screen   tcell.Screen
	renderer *render.TerminalRenderer
	cfg      *config.Config
	sound    *audio.SoundManager
	log      logger.Logger
	clock    engine.TimeProvider
	frame    *engine.FrameClock
	seeds    *vmath.FastRand

	phase      phase
	players    int
	introStart time.Time

	session *game.Session
	machine *input.Machine
}

func newApp(screen tcell.Screen, cfg *config.Config, sound *audio.SoundManager, log logger.Logger, clock engine.TimeProvider) *app {
	seed := uint64(cfg.Seed)
	if seed == 0 {
		seed = uint64(clock.Now().UnixNano())
	}

	a := &app{
		screen:   screen,
		renderer: render.NewTerminalRenderer(screen),
		cfg:      cfg,
		sound:    sound,
		log:      log,
		clock:    clock,
		frame:    engine.NewFrameClock(clock),
		seeds:    vmath.NewFastRand(seed),
	}
	return a
}

// start picks the first screen; a preset player count skips the menu
func (a *app) start(players int) error {
	if players == 0 {
		a.phase = phaseMenu
		return nil
	}
	a.players = players
	return a.startSession()
}

// handleEvent applies one terminal event, false means quit
func (a *app) handleEvent(ev tcell.Event) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.renderer.Resize()
		a.screen.Sync()
		return true, nil
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false, nil
		}
		return true, a.handleKey(ev)
	}
	return true, nil
}

func (a *app) handleKey(ev *tcell.EventKey) error {
	switch a.phase {
	case phaseMenu:
		if ev.Key() != tcell.KeyRune {
			return nil
		}
		switch ev.Rune() {
		case '1':
			a.players = 1
		case '2':
			a.players = 2
		default:
			return nil
		}
		a.phase = phaseIntro
		a.introStart = a.clock.Now()

	case phasePlay:
		// In two player mode Enter is also a rescue key; it restarts only once the game is over
		if a.session.Over() {
			if ev.Key() == tcell.KeyEnter {
				return a.startSession()
			}
			return nil
		}
		a.machine.Process(ev)
	}
	return nil
}

// startSession begins a fresh run with a new ID
func (a *app) startSession() error {
	keys, err := input.LoadKeyTable(a.cfg.Keys, a.players)
	if err != nil {
		return err
	}
	sess, err := game.New(a.players, vmath.NewFastRand(a.seeds.Next()), a.log)
	if err != nil {
		return err
	}

	a.session = sess
	a.machine = input.NewMachine(keys, a.players, a.clock, parameter.DefaultKeyHold)
	a.renderer.SetControls(render.ControlsLine(a.cfg.Keys, a.players))
	a.frame.Reset()
	a.phase = phasePlay
	return nil
}

// update advances the current screen by one frame and draws it
func (a *app) update() error {
	switch a.phase {
	case phaseMenu:
		a.renderer.RenderMenu()

	case phaseIntro:
		elapsed := a.clock.Now().Sub(a.introStart)
		if elapsed >= parameter.IntroDuration {
			return a.startSession()
		}
		a.renderer.RenderIntro(render.IntroAlpha(elapsed.Seconds()))

	case phasePlay:
		dt := a.frame.Tick(a.frameInterval())
		if dt > parameter.MaxFrameDelta.Seconds() {
			dt = parameter.MaxFrameDelta.Seconds()
		}
		if !a.session.Over() {
			res, err := a.session.Step(dt, a.machine.Inputs())
			if err != nil {
				return fmt.Errorf("step: %w", err)
			}
			a.sound.HandleEvents(res.Events)
		}
		a.renderer.RenderFrame(a.session.World())
	}
	return nil
}

func (a *app) frameInterval() time.Duration {
	return time.Second / time.Duration(a.cfg.TickRate)
}

// run drives the frame ticker and terminal events until quit
func (a *app) run(events <-chan tcell.Event) error {
	ticker := time.NewTicker(a.frameInterval())
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			keepGoing, err := a.handleEvent(ev)
			if err != nil {
				return err
			}
			if !keepGoing {
				a.log.Info("quit requested")
				return nil
			}
		case <-ticker.C:
			if err := a.update(); err != nil {
				if errors.Is(err, engine.ErrInvalidDelta) {
					a.log.Warn("frame skipped", logger.F("error", err))
					continue
				}
				return err
			}
		}
	}
}
