package ui

import (
	"image/color"
	"math"
	"sync/atomic"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
)

var indicatorIdle = color.NRGBA{0x80, 0x80, 0x80, 0xFF}

// ActivityIndicator is a tiny circle that breathes in the text color while
// the scroller is running and turns gray when it is paused.
type ActivityIndicator struct {
	wrap   *fyne.Container
	circle *canvas.Circle
	on     atomic.Bool
	hue    float64
	sat    float64
}

// NewActivityIndicator constructs an indicator with the given diameter tinted
// after col.
func NewActivityIndicator(diameter float32, col color.Color) *ActivityIndicator {
	c := canvas.NewCircle(indicatorIdle)
	c.StrokeColor = color.NRGBA{0, 0, 0, 0}
	inner := container.New(layout.NewGridWrapLayout(fyne.NewSize(diameter, diameter)), c)
	wrap := container.NewCenter(inner)
	a := &ActivityIndicator{wrap: wrap, circle: c}
	a.SetTint(col)
	return a
}

// CanvasObject returns the fyne object suitable for embedding in layouts.
func (a *ActivityIndicator) CanvasObject() fyne.CanvasObject { return a.wrap }

// SetTint changes the breathing color. White and gray tints breathe in a
// neutral cyan so the pulse stays visible.
func (a *ActivityIndicator) SetTint(col color.Color) {
	if col == nil {
		col = color.White
	}
	h, s, _ := nrgbaToHSV(color.NRGBAModel.Convert(col).(color.NRGBA))
	if s < 0.1 {
		h, s = 190, 0.65
	}
	a.hue, a.sat = h, s
}

// SetActive toggles the pulsating animation.
func (a *ActivityIndicator) SetActive(on bool) {
	prev := a.on.Swap(on)
	if on && !prev {
		go a.animate()
	} else if !on {
		RunOnMain(func() {
			a.circle.FillColor = indicatorIdle
			a.circle.Refresh()
		})
	}
}

// Active reports whether the indicator is pulsing.
func (a *ActivityIndicator) Active() bool { return a.on.Load() }

func (a *ActivityIndicator) animate() {
	t := time.NewTicker(90 * time.Millisecond)
	defer t.Stop()
	phase := 0.0
	for a.on.Load() {
		<-t.C
		phase += 0.25
		col := hsvToNRGBA(a.hue, a.sat, breathValue(phase))
		RunOnMain(func() {
			if !a.on.Load() {
				return
			}
			a.circle.FillColor = col
			a.circle.Refresh()
		})
	}
}

// breathValue maps a phase to a brightness between 0.55 and 1.
func breathValue(phase float64) float64 {
	return 0.775 + 0.225*math.Sin(phase)
}

// hsvToNRGBA converts HSV (0..360, 0..1, 0..1) to color.NRGBA.
func hsvToNRGBA(h, s, v float64) color.NRGBA {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60.0, 2)-1))
	m := v - c
	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return color.NRGBA{
		R: uint8((r+m)*255 + 0.5),
		G: uint8((g+m)*255 + 0.5),
		B: uint8((b+m)*255 + 0.5),
		A: 0xFF,
	}
}

// nrgbaToHSV is the inverse of hsvToNRGBA, ignoring alpha.
func nrgbaToHSV(c color.NRGBA) (h, s, v float64) {
	r, g, b := float64(c.R)/255, float64(c.G)/255, float64(c.B)/255
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	d := max - min
	v = max
	if max > 0 {
		s = d / max
	}
	if d == 0 {
		return 0, s, v
	}
	switch max {
	case r:
		h = 60 * math.Mod((g-b)/d, 6)
	case g:
		h = 60 * ((b-r)/d + 2)
	default:
		h = 60 * ((r-g)/d + 4)
	}
	if h < 0 {
		h += 360
	}
	return h, s, v
}
