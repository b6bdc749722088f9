package main

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"lifeaccel/life"
)

type gameMode int

const (
	modeTitle gameMode = iota
	modeRunning
)

// Game owns the engine handle, the frame pixel buffer, and the title screen
// and HUD state. It drives exactly one engine step per tick while running.
type Game struct {
	engine     *life.Engine
	rows, cols int

	mode    gameMode
	paused  bool
	showHUD bool

	pixels []byte

	title *titleScreen
	music *titleMusic

	metrics  simMetrics
	prevLive int

	stopProfile     func()
	profileDeadline time.Time
}

// newGame constructs the front end around an already-randomized engine.
func newGame(engine *life.Engine) *Game {
	rows, cols := engine.Dimensions()
	g := &Game{
		engine:  engine,
		rows:    rows,
		cols:    cols,
		pixels:  make([]byte, rows*cols*4),
		showHUD: *debugFlag,
	}
	if *skipTitleFlag {
		g.startSimulation()
		return g
	}
	g.mode = modeTitle
	g.title = newTitleScreen()
	if !*muteFlag {
		music, err := newTitleMusic()
		if err != nil {
			log.Printf("Title music disabled: %v", err)
		} else {
			g.music = music
			g.music.play()
		}
	}
	return g
}

// Update advances the title animation or the simulation by one tick.
func (g *Game) Update() error {
	switch g.mode {
	case modeTitle:
		g.updateTitle()
		return nil
	default:
		return g.updateSimulation()
	}
}

func (g *Game) updateTitle() {
	done := g.title.update(1.0 / defaultTPS)
	if g.music != nil {
		g.music.setVolume(titleMusicVolume * g.title.alpha())
	}
	if done {
		g.startSimulation()
	}
}

// startSimulation switches out of the title screen and arms the optional
// PGO capture window.
func (g *Game) startSimulation() {
	if g.music != nil {
		g.music.stop()
		g.music = nil
	}
	g.mode = modeRunning
	if *recordDefaultPGO {
		stop, err := startCPUProfile("default.pgo")
		if err != nil {
			log.Printf("PGO recording failed to start: %v", err)
		} else {
			g.stopProfile = stop
			g.profileDeadline = time.Now().Add(pgoRecordDuration)
			log.Printf("Recording default.pgo for %v", pgoRecordDuration)
		}
	}
}

func (g *Game) updateSimulation() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.showHUD = !g.showHUD
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.engine.Randomize(*fillFlag); err != nil {
			return err
		}
		g.prevLive = g.engine.LiveCellCount()
	}

	if g.stopProfile != nil && time.Now().After(g.profileDeadline) {
		g.stopProfile()
		g.stopProfile = nil
		log.Printf("Wrote default.pgo")
	}

	if g.paused {
		return nil
	}

	start := time.Now()
	if err := g.engine.Step(); err != nil {
		return err
	}
	g.metrics.record(time.Since(start), g.engine.LiveCellCount(), g.prevLive)
	g.prevLive = g.metrics.live
	return nil
}
