// Package ebitenhost runs a scroller inside an ebiten game loop. The loop
// ticks at a fixed rate, so the scroller is driven by a manual clock that
// advances one tick per Update instead of reading wall time.
package ebitenhost

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/edward-ap/smoothscroll/scroller"
)

// bitmap is implemented by elements that rasterize themselves, such as
// *label.Label.
type bitmap interface {
	Image() *image.RGBA
	Origin() image.Point
}

// Game implements ebiten.Game for a single scroller.
type Game struct {
	sc      *scroller.Scroller
	clock   *scroller.ManualClock
	display scroller.Display
	bg      color.Color
	paused  bool

	src    *image.RGBA
	sprite *ebiten.Image
}

// NewGame wraps sc, which must have been created with WithClock(clock).
func NewGame(sc *scroller.Scroller, clock *scroller.ManualClock, display scroller.Display, bg color.Color) *Game {
	if bg == nil {
		bg = color.Black
	}
	return &Game{sc: sc, clock: clock, display: display, bg: bg}
}

// Paused reports whether the clock is frozen.
func (g *Game) Paused() bool { return g.paused }

// TogglePause freezes or resumes the scroller clock.
func (g *Game) TogglePause() { g.paused = !g.paused }

// Scroller exposes the hosted scroller.
func (g *Game) Scroller() *scroller.Scroller { return g.sc }

// Update handles input and advances the scroller by one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sc.Reset()
	}
	g.step(1 / float64(ebiten.TPS()))
	return nil
}

// step advances the clock by dt seconds unless paused, then updates.
func (g *Game) step(dt float64) {
	if !g.paused {
		g.clock.Advance(dt)
	}
	g.sc.Update()
}

// Draw clears the screen and blits the label at its origin.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.bg)
	if sprite, at, ok := g.labelSprite(); ok {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(at.X), float64(at.Y))
		screen.DrawImage(sprite, op)
	}
	if g.paused {
		ebitenutil.DebugPrintAt(screen, "PAUSED", 2, 2)
	}
}

// labelSprite returns the GPU copy of the label bitmap, uploading it again
// only when the label re-rasterized.
func (g *Game) labelSprite() (*ebiten.Image, image.Point, bool) {
	b, ok := g.sc.Label().(bitmap)
	if !ok {
		return nil, image.Point{}, false
	}
	src := b.Image()
	if src == nil || src.Bounds().Empty() {
		return nil, image.Point{}, false
	}
	if src != g.src {
		if g.sprite != nil {
			g.sprite.Deallocate()
		}
		g.sprite = ebiten.NewImageFromImage(src)
		g.src = src
	}
	return g.sprite, b.Origin(), true
}

// Layout fixes the logical screen to the display size; ebiten scales it to
// the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.display.Width(), g.display.Height()
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}
