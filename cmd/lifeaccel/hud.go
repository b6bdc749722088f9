package main

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// hudHeader caches the rendered panel title.
var hudHeader *ebiten.Image

// simMetrics accumulates per-generation timing and population statistics.
// The generation counter lives here, on the consumer side: one successful
// engine step is one generation.
type simMetrics struct {
	fps      float64
	avgFPS   float64
	updateMS float64
	frameMS  float64
	live     int
	delta    int
	gen      int64
}

// record folds one completed step into the running statistics.
func (m *simMetrics) record(stepTime time.Duration, live, prevLive int) {
	m.updateMS = stepTime.Seconds() * 1000
	m.fps = ebiten.ActualFPS()
	if m.fps > 0 {
		m.frameMS = 1000 / m.fps
	}
	m.avgFPS = (m.avgFPS*float64(m.gen) + m.fps) / float64(m.gen+1)
	m.live = live
	m.delta = live - prevLive
	m.gen++
}

// draw paints the metrics panel in the top-left corner. The original ran a
// second metrics window; ebiten drives a single window, so the panel is an
// in-window overlay instead.
func (m *simMetrics) draw(screen *ebiten.Image, paused bool) {
	vector.DrawFilledRect(screen, hudMarginX, hudMarginY, hudWidth, hudHeight, hudBGColor, false)

	if hudHeader == nil {
		hudHeader = textImage("SIMULATION METRICS")
	}
	drawTinted(screen, hudHeader, hudMarginX+4, hudMarginY+2, 1, hudHeaderColor, 1)

	state := ""
	if paused {
		state = "\nPAUSED (space resumes)"
	}
	body := fmt.Sprintf(
		"FPS: %.1f (%.1f avg)\nUpdate: %.2f ms\nFrame: %.2f ms\nLive Cells: %d\nDelta Cells: %+d\nGeneration: %d%s",
		m.fps, m.avgFPS, m.updateMS, m.frameMS, m.live, m.delta, m.gen, state)
	ebitenutil.DebugPrintAt(screen, body, hudMarginX+4, hudMarginY+20)
}
