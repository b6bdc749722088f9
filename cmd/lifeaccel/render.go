package main

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Draw renders the current generation as one logical pixel per cell; the
// window scale configured at startup stretches each cell to cell-size pixels.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.mode == modeTitle {
		g.title.draw(screen)
		return
	}

	px := g.pixels
	for i := 0; i < len(px); i += 4 {
		px[i] = 0
		px[i+1] = 0
		px[i+2] = 0
		px[i+3] = 255
	}
	g.engine.ForEachAlive(func(row, col int) {
		base := (row*g.cols + col) * 4
		px[base] = cellColor.R
		px[base+1] = cellColor.G
		px[base+2] = cellColor.B
		px[base+3] = cellColor.A
	})
	screen.WritePixels(px)

	if g.showHUD {
		g.metrics.draw(screen, g.paused)
	}
}

// Layout reports the logical screen size: full window resolution for the
// title animation, then one pixel per grid cell once the simulation runs.
func (g *Game) Layout(_, _ int) (int, int) {
	if g.mode == modeTitle {
		return windowW, windowH
	}
	return g.cols, g.rows
}
