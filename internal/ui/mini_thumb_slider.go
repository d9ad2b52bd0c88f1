package ui

import (
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// MiniThumbSlider is a compact horizontal slider with a thumb drawn at half
// the usual size. The control bar uses it for the scroll speed.
type MiniThumbSlider struct {
	widget.BaseWidget
	Min       float64
	Max       float64
	Step      float64
	Value     float64
	OnChanged func(float64)
}

// NewMiniThumbSlider creates a horizontal slider constrained to [min, max].
func NewMiniThumbSlider(min, max float64) *MiniThumbSlider {
	s := &MiniThumbSlider{Min: min, Max: max, Step: 1}
	s.ExtendBaseWidget(s)
	return s
}

func (s *MiniThumbSlider) CreateRenderer() fyne.WidgetRenderer {
	r := &miniSliderRenderer{
		s:     s,
		track: canvas.NewRectangle(theme.ShadowColor()),
		fill:  canvas.NewRectangle(theme.PrimaryColor()),
		thumb: canvas.NewCircle(theme.ForegroundColor()),
	}
	r.objs = []fyne.CanvasObject{r.track, r.fill, r.thumb}
	return r
}

// SetValue sets the slider value and triggers refresh and callback.
func (s *MiniThumbSlider) SetValue(v float64) {
	if !s.store(v) {
		return
	}
	if s.OnChanged != nil {
		s.OnChanged(s.Value)
	}
}

// SyncValue moves the thumb without firing OnChanged, for values that were
// changed elsewhere (keyboard shortcuts).
func (s *MiniThumbSlider) SyncValue(v float64) {
	s.store(v)
}

func (s *MiniThumbSlider) store(v float64) bool {
	if s.Max <= s.Min {
		return false
	}
	newValue := normalizeSliderValue(s.Min, s.Max, s.Step, v)
	if newValue == s.Value {
		return false
	}
	s.Value = newValue
	s.Refresh()
	return true
}

func normalizeSliderValue(min, max, step, value float64) float64 {
	if max <= min {
		return min
	}
	v := clamp(value, min, max)
	if step > 0 {
		span := max - min
		if span > 0 {
			steps := (v - min) / step
			n := math.Round(steps)
			v = clamp(min+n*step, min, max)
		}
	}
	return v
}

// Dragged updates the value based on pointer drag position.
func (s *MiniThumbSlider) Dragged(e *fyne.DragEvent) {
	s.updateFromPos(e.Position.X, s.Size().Width)
}

func (s *MiniThumbSlider) DragEnd() {}

// Tapped moves the thumb to the tapped position.
func (s *MiniThumbSlider) Tapped(e *fyne.PointEvent) {
	s.updateFromPos(e.Position.X, s.Size().Width)
}

// Scrolled adjusts the slider value using mouse wheel input.
func (s *MiniThumbSlider) Scrolled(ev *fyne.ScrollEvent) {
	if ev == nil {
		return
	}
	step := s.Step
	if step <= 0 {
		step = 1
	}
	if ev.Scrolled.DY > 0 {
		s.SetValue(s.Value + step)
	} else if ev.Scrolled.DY < 0 {
		s.SetValue(s.Value - step)
	}
}

func (s *MiniThumbSlider) updateFromPos(px float32, w float32) {
	if w <= 0 || s.Max <= s.Min {
		return
	}
	frac := clamp(float64(px/w), 0, 1)
	s.SetValue(s.Min + frac*(s.Max-s.Min))
	s.Refresh()
}

// MinSize leaves enough travel for fine speed changes.
func (s *MiniThumbSlider) MinSize() fyne.Size {
	return fyne.NewSize(140, theme.IconInlineSize())
}

type miniSliderRenderer struct {
	s     *MiniThumbSlider
	track *canvas.Rectangle
	fill  *canvas.Rectangle
	thumb *canvas.Circle
	objs  []fyne.CanvasObject
}

func (r *miniSliderRenderer) Layout(sz fyne.Size) {
	// track centered vertically
	trackH := float32(4)
	y := (sz.Height - trackH) / 2
	r.track.Move(fyne.NewPos(0, y))
	r.track.Resize(fyne.NewSize(sz.Width, trackH))

	// fill width proportionate to value (left to right)
	span := r.s.Max - r.s.Min
	frac := float32(0)
	if span > 0 {
		frac = float32((r.s.Value - r.s.Min) / span)
	}
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	fillW := sz.Width * frac
	r.fill.Move(fyne.NewPos(0, y))
	r.fill.Resize(fyne.NewSize(fillW, trackH))

	// small thumb circle centered on the fill end
	thumbR := theme.IconInlineSize() / 4
	cx := fillW
	if cx < float32(thumbR) {
		cx = float32(thumbR)
	}
	if cx > sz.Width-float32(thumbR) {
		cx = sz.Width - float32(thumbR)
	}
	cy := sz.Height / 2
	r.thumb.Resize(fyne.NewSize(thumbR*2, thumbR*2))
	r.thumb.Move(fyne.NewPos(cx-float32(thumbR), cy-float32(thumbR)))
}

func (r *miniSliderRenderer) MinSize() fyne.Size { return r.s.MinSize() }

func (r *miniSliderRenderer) Refresh() {
	r.Layout(r.s.Size())
	canvas.Refresh(r.track)
	canvas.Refresh(r.fill)
	canvas.Refresh(r.thumb)
}

func (r *miniSliderRenderer) Destroy() {}

func (r *miniSliderRenderer) Objects() []fyne.CanvasObject { return r.objs }

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
