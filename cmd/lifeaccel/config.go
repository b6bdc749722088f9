package main

import (
	"image/color"
	"time"
)

// Simulation and rendering configuration constants. These values define the
// window geometry, timing, and title-screen behavior for the Game of Life
// front end; the engine itself only ever sees the derived rows and cols.
const (
	windowW, windowH = 1280, 720
	defaultCellSize  = 4
	defaultTPS       = 60
	defaultFill      = 0.3

	titleFadeSeconds = 1.5
	promptPulseRate  = 3.0
	bannerScale      = 6.0
	promptScale      = 2.0

	dnaSegments   = 32
	dnaWavelength = 10.0
	dnaAmplitude  = 6.0
	dnaScale      = 6.0
	dnaRungStride = 2

	hudMarginX = 5
	hudMarginY = 5
	hudWidth   = 184
	hudHeight  = 140

	audioSampleRate  = 48000
	titleMusicVolume = 0.6

	pgoRecordDuration = 15 * time.Second
)

// Palette shared by the renderer, title screen, and HUD.
var (
	cellColor      = color.RGBA{80, 200, 255, 255}
	titleBGColor   = color.RGBA{10, 10, 40, 255}
	titleColor     = color.RGBA{255, 230, 0, 255}
	titleShadow    = color.RGBA{200, 0, 0, 255}
	dnaBlue        = color.RGBA{0, 170, 255, 255}
	dnaGreen       = color.RGBA{90, 230, 120, 255}
	dnaWhite       = color.RGBA{240, 240, 255, 255}
	hudBGColor     = color.RGBA{20, 20, 30, 230}
	hudHeaderColor = color.RGBA{255, 200, 0, 255}
)
