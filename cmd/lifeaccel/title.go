package main

import (
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// titleScreen animates the banner, the pixel-DNA helix, and the pulsing
// prompt. It fades in over titleFadeSeconds, then fades back out once Enter
// is pressed; update reports true when the fade-out has finished.
type titleScreen struct {
	elapsed  float64
	fading   bool
	fadeTime float64

	banner *ebiten.Image
	prompt *ebiten.Image
}

func newTitleScreen() *titleScreen {
	return &titleScreen{
		banner: textImage("CONWAY'S\nGAME OF LIFE"),
		prompt: textImage("PRESS ENTER TO BEGIN"),
	}
}

// alpha returns the current banner opacity in [0, 1].
func (t *titleScreen) alpha() float64 {
	if t.fading {
		return math.Max(0, 1-t.fadeTime/titleFadeSeconds)
	}
	return math.Min(1, t.elapsed/titleFadeSeconds)
}

func (t *titleScreen) update(dt float64) bool {
	t.elapsed += dt
	if !t.fading && inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		t.fading = true
	}
	if t.fading {
		t.fadeTime += dt
		if t.alpha() <= 0.001 {
			return true
		}
	}
	return false
}

func (t *titleScreen) draw(screen *ebiten.Image) {
	screen.Fill(titleBGColor)

	a := float32(t.alpha())
	sw := float64(screen.Bounds().Dx())
	sh := float64(screen.Bounds().Dy())

	bw := float64(t.banner.Bounds().Dx()) * bannerScale
	bh := float64(t.banner.Bounds().Dy()) * bannerScale
	bx := (sw - bw) / 2
	by := (sh-bh)/2 - 40
	drawTinted(screen, t.banner, bx+6, by+6, bannerScale, titleShadow, a)
	drawTinted(screen, t.banner, bx, by, bannerScale, titleColor, a)

	t.drawDNA(screen, sw/2-24, sh/2+50)

	pulse := math.Sin(t.elapsed*promptPulseRate)*0.5 + 0.5
	pw := float64(t.prompt.Bounds().Dx()) * promptScale
	px := (sw - pw) / 2
	py := by + bh + 100
	drawTinted(screen, t.prompt, px, py, promptScale, dnaWhite, float32(math.Min(pulse, t.alpha())))
}

// drawDNA renders a scrolling double helix from two sine strands joined by
// horizontal rungs.
func (t *titleScreen) drawDNA(screen *ebiten.Image, cx, cy float64) {
	var prevLX, prevLY, prevRX, prevRY float32
	for i := 0; i < dnaSegments; i++ {
		x := float32(cx + float64(i)*dnaWavelength*dnaScale*0.1)
		y := float32(math.Sin(float64(i)*0.5+t.elapsed*2) * dnaAmplitude * dnaScale)
		lx, ly := x, float32(cy)+y
		rx, ry := x, float32(cy)-y
		if i > 0 {
			vector.StrokeLine(screen, prevLX, prevLY, lx, ly, 1, dnaBlue, true)
			vector.StrokeLine(screen, prevRX, prevRY, rx, ry, 1, dnaGreen, true)
		}
		if i%dnaRungStride == 0 {
			vector.StrokeLine(screen, lx, ly, rx, ry, 1, dnaWhite, true)
		}
		prevLX, prevLY, prevRX, prevRY = lx, ly, rx, ry
	}
}

// textImage renders s with the debug font into a tight offscreen image so it
// can be scaled and tinted. The repo ships no font assets, so the built-in
// debug font does all the text.
func textImage(s string) *ebiten.Image {
	lines := strings.Split(s, "\n")
	longest := 0
	for _, line := range lines {
		if len(line) > longest {
			longest = len(line)
		}
	}
	img := ebiten.NewImage(longest*8+2, len(lines)*16+2)
	ebitenutil.DebugPrint(img, s)
	return img
}

// drawTinted draws img scaled uniformly at (x, y), multiplied by clr and the
// given opacity.
func drawTinted(dst, img *ebiten.Image, x, y, scale float64, clr color.RGBA, alpha float32) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(alpha)
	dst.DrawImage(img, op)
}
