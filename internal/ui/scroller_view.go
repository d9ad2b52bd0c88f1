package ui

import (
	"image"
	"image/color"
	"log"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"golang.org/x/image/draw"

	"github.com/edward-ap/smoothscroll/scroller"
)

// frameDrawer is implemented by text elements that can paint themselves onto
// a frame buffer, such as *label.Label.
type frameDrawer interface {
	Draw(dst draw.Image)
}

// ScrollerView shows a scroller on a simulated fixed-size display. A fyne
// animation acts as the host frame loop: every frame it ticks the scroller and
// repaints the frame buffer. All methods are safe to call from any goroutine.
type ScrollerView struct {
	mu      sync.Mutex
	sc      *scroller.Scroller
	clock   *PausableClock
	fb      *image.RGBA
	bg      color.Color
	img     *canvas.Image
	anim    *fyne.Animation
	running bool
	frames  uint64

	onRunning func(bool)
}

// NewScrollerView creates a view for sc. The scroller must have been built on
// clock so pausing the view also pauses its motion. pixelScale enlarges the
// display for desktop monitors.
func NewScrollerView(sc *scroller.Scroller, clock *PausableClock, display scroller.Display, bg color.Color, pixelScale int) *ScrollerView {
	if pixelScale < 1 {
		pixelScale = 1
	}
	if bg == nil {
		bg = color.Black
	}
	w, h := display.Width(), display.Height()
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	fb := image.NewRGBA(image.Rect(0, 0, w, h))
	img := canvas.NewImageFromImage(fb)
	img.ScaleMode = canvas.ImageScalePixels
	img.FillMode = canvas.ImageFillContain
	// min size is in device-independent units; keep the physical pixel scale
	dpScale := float32(uiScale())
	img.SetMinSize(fyne.NewSize(float32(w*pixelScale)/dpScale, float32(h*pixelScale)/dpScale))

	v := &ScrollerView{sc: sc, clock: clock, fb: fb, bg: bg, img: img}
	renderFrame(v.fb, v.bg, sc)
	return v
}

// CanvasObject exposes the display image for layout containers.
func (v *ScrollerView) CanvasObject() fyne.CanvasObject { return v.img }

// SetOnRunningChanged registers a callback fired on the GUI goroutine after
// Start and Stop, so it may touch widgets directly.
func (v *ScrollerView) SetOnRunningChanged(f func(bool)) {
	v.mu.Lock()
	v.onRunning = f
	v.mu.Unlock()
}

// Start resumes the frame loop.
func (v *ScrollerView) Start() {
	v.mu.Lock()
	if v.running {
		v.mu.Unlock()
		return
	}
	v.running = true
	if v.clock != nil {
		v.clock.Resume()
	}
	// a stopped fyne animation is not restarted; each run gets its own
	anim := fyne.NewAnimation(time.Second, func(float32) { v.tick() })
	anim.RepeatCount = fyne.AnimationRepeatForever
	anim.Curve = fyne.AnimationLinear
	v.anim = anim
	cb := v.onRunning
	v.mu.Unlock()

	anim.Start()
	notifyRunning(cb, true)
}

// Stop halts the frame loop; the text stays where it is.
func (v *ScrollerView) Stop() {
	v.mu.Lock()
	if !v.running {
		v.mu.Unlock()
		return
	}
	v.running = false
	if v.clock != nil {
		v.clock.Pause()
	}
	anim := v.anim
	v.anim = nil
	cb := v.onRunning
	v.mu.Unlock()

	if anim != nil {
		anim.Stop()
	}
	notifyRunning(cb, false)
}

// Toggle flips between running and stopped and reports the new state.
func (v *ScrollerView) Toggle() bool {
	if v.Running() {
		v.Stop()
		return false
	}
	v.Start()
	return true
}

// Running reports whether the frame loop is active.
func (v *ScrollerView) Running() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.running
}

// Close stops the frame loop.
func (v *ScrollerView) Close() { v.Stop() }

// SetText replaces the scrolling text.
func (v *ScrollerView) SetText(text string) {
	v.withScroller(func(sc *scroller.Scroller) { sc.SetText(text) })
}

// SetSpeed changes the scroll rate in pixels per second.
func (v *ScrollerView) SetSpeed(speed float64) {
	v.withScroller(func(sc *scroller.Scroller) { sc.SetSpeed(speed) })
}

// SetColor changes the text color.
func (v *ScrollerView) SetColor(c color.Color) {
	v.withScroller(func(sc *scroller.Scroller) { sc.SetColor(c) })
}

// Reset moves the text back to its start position.
func (v *ScrollerView) Reset() {
	v.withScroller(func(sc *scroller.Scroller) { sc.Reset() })
}

// Replace swaps in a new scroller, for example after a direction change.
func (v *ScrollerView) Replace(sc *scroller.Scroller) {
	if sc == nil {
		return
	}
	v.mu.Lock()
	v.sc = sc
	renderFrame(v.fb, v.bg, v.sc)
	v.mu.Unlock()
	canvas.Refresh(v.img)
}

// Snapshot returns the current text, speed and direction.
func (v *ScrollerView) Snapshot() (text string, speed float64, dir scroller.Direction) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.sc.Text(), v.sc.Speed(), v.sc.Direction()
}

func (v *ScrollerView) withScroller(f func(*scroller.Scroller)) {
	v.mu.Lock()
	f(v.sc)
	renderFrame(v.fb, v.bg, v.sc)
	v.mu.Unlock()
	canvas.Refresh(v.img)
}

func (v *ScrollerView) tick() {
	v.mu.Lock()
	if !v.running {
		v.mu.Unlock()
		return
	}
	v.sc.Update()
	renderFrame(v.fb, v.bg, v.sc)
	v.frames++
	frames, pos := v.frames, v.sc.Position()
	v.mu.Unlock()

	canvas.Refresh(v.img)
	if isTraceLoggingEnabled() && frames%traceEveryFrames == 0 {
		log.Printf("scroll: frame=%d pos=%.1f", frames, pos)
	}
}

const traceEveryFrames = 120

func notifyRunning(cb func(bool), on bool) {
	if cb != nil {
		RunOnMain(func() { cb(on) })
	}
}

// uiScale is the fyne content scale, 1 before the app has settings.
func uiScale() float64 {
	if a := fyne.CurrentApp(); a != nil {
		if set := a.Settings(); set != nil && set.Scale() > 0 {
			return float64(set.Scale())
		}
	}
	return 1
}

// renderFrame clears fb to bg and paints the scroller's element when it
// knows how to draw itself.
func renderFrame(fb *image.RGBA, bg color.Color, sc *scroller.Scroller) {
	draw.Draw(fb, fb.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	if sc == nil {
		return
	}
	if d, ok := sc.Label().(frameDrawer); ok {
		d.Draw(fb)
	}
}
