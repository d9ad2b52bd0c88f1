// Package scroller animates a single text label across a fixed-size display.
//
// A Scroller owns the placement of one text element: every Update reads the
// clock, advances the element along the scroll axis at a constant pixel rate
// and wraps it back to the start once it has fully left the display. The host
// application owns the display and calls Update from its frame loop.
//
// A Scroller is not safe for concurrent use. Hosts that tick it from more than
// one goroutine must serialize access themselves.
package scroller

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"math"

	"golang.org/x/image/font"

	"github.com/edward-ap/smoothscroll/label"
)

// DefaultSpeed is the scroll rate in pixels per second used when none is given.
const DefaultSpeed = 120

// Display describes the surface the text scrolls across.
type Display interface {
	Width() int
	Height() int
}

// Surface is a plain Display value.
type Surface struct {
	W, H int
}

// Width returns the surface width in pixels.
func (s Surface) Width() int { return s.W }

// Height returns the surface height in pixels.
func (s Surface) Height() int { return s.H }

// TextElement is the renderable text the scroller drives. The scroller only
// moves it and replaces its content; it does not own its lifetime.
type TextElement interface {
	Text() string
	SetText(string)
	// BoundingBox reports the extent of the current content.
	BoundingBox() image.Rectangle
	AnchoredPosition() image.Point
	SetAnchoredPosition(image.Point)
}

// ElementFactory builds the text element at construction time.
type ElementFactory func(label.Options) TextElement

// DefaultElementFactory creates a *label.Label.
func DefaultElementFactory(opts label.Options) TextElement {
	return label.New(opts)
}

// State is the logical animation state.
type State int

const (
	// Idle means the scroller was built but never ticked.
	Idle State = iota
	// Scrolling means Update has run at least once.
	Scrolling
)

func (s State) String() string {
	if s == Scrolling {
		return "scrolling"
	}
	return "idle"
}

// Scroller moves one text element across a display.
type Scroller struct {
	elem    TextElement
	display Display
	clock   Clock
	logger  *log.Logger

	dir    Direction
	anchor label.AnchorPoint
	speed  float64
	cross  int

	pos   float64
	start float64
	end   float64
	last  float64
	state State
}

// New builds a Scroller showing text on display. The direction defaults to
// "left" and is parsed before anything else: an unknown direction returns an
// error wrapping ErrInvalidArgument and no text element is created.
func New(text string, display Display, opts ...Option) (*Scroller, error) {
	cfg := defaultSettings()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	dir, err := ParseDirection(cfg.direction)
	if err != nil {
		return nil, err
	}
	if display == nil {
		return nil, fmt.Errorf("%w: nil display", ErrInvalidArgument)
	}

	var cross int
	switch {
	case cfg.position != nil:
		cross = *cfg.position
	case dir.Horizontal():
		cross = display.Height() / 2
	default:
		cross = display.Width() / 2
	}
	anchor := dir.DefaultAnchor()
	if cfg.anchor != nil {
		anchor = *cfg.anchor
	}
	face := cfg.font
	if face == nil {
		face = label.DefaultFace
	}
	factory := cfg.factory
	if factory == nil {
		factory = DefaultElementFactory
	}
	clock := cfg.clock
	if clock == nil {
		clock = newMonotonicClock()
	}

	elem := factory(label.Options{
		Face:            face,
		Text:            text,
		Color:           cfg.color,
		BackgroundTight: true,
		AnchorPoint:     anchor,
	})
	if elem == nil {
		return nil, fmt.Errorf("%w: element factory returned nil", ErrInvalidArgument)
	}

	s := &Scroller{
		elem:    elem,
		display: display,
		clock:   clock,
		logger:  cfg.logger,
		dir:     dir,
		anchor:  anchor,
		speed:   cfg.speed,
		cross:   cross,
	}
	s.setupBoundaries()
	s.resetPosition()
	s.last = s.clock.Now()
	s.logf("scroller: %s at %.1f px/s, start=%.0f end=%.0f cross=%d", dir, s.speed, s.start, s.end, cross)
	return s, nil
}

// Update advances the text by the time elapsed since the previous tick and
// writes the new placement into the element. Once the text has travelled past
// the end position it snaps back to the start; the overshoot is discarded.
func (s *Scroller) Update() {
	now := s.clock.Now()
	elapsed := now - s.last
	s.last = now

	s.pos += s.dir.sign() * s.speed * elapsed
	if s.passedEnd() {
		s.pos = s.start
		s.logf("scroller: wrap to %.0f", s.start)
	}
	s.state = Scrolling
	s.place()
}

// SetText replaces the element content and recomputes the wrap boundaries.
// The current position is kept; the new boundaries apply from the next Update.
func (s *Scroller) SetText(text string) {
	s.elem.SetText(text)
	s.setupBoundaries()
}

// SetSpeed changes the scroll rate in pixels per second from the next Update.
func (s *Scroller) SetSpeed(speed float64) {
	s.speed = speed
}

// Reset moves the text back to the start position immediately.
func (s *Scroller) Reset() {
	s.resetPosition()
}

// Label returns the underlying text element for capabilities the scroller
// does not wrap. Changes made through it that alter the element's extent,
// such as scale or padding on a *label.Label, take effect after Remeasure.
func (s *Scroller) Label() TextElement { return s.elem }

// Remeasure recomputes the wrap boundaries from the element's current
// bounding box. Like SetText it leaves the position alone.
func (s *Scroller) Remeasure() {
	s.setupBoundaries()
}

// Text returns the element's current content.
func (s *Scroller) Text() string { return s.elem.Text() }

// Direction returns the direction fixed at construction.
func (s *Scroller) Direction() Direction { return s.dir }

// AnchorPoint returns the anchor point the element was created with.
func (s *Scroller) AnchorPoint() label.AnchorPoint { return s.anchor }

// Speed returns the scroll rate in pixels per second.
func (s *Scroller) Speed() float64 { return s.speed }

// Position returns the unrounded position along the scroll axis.
func (s *Scroller) Position() float64 { return s.pos }

// Bounds returns the start and end positions along the scroll axis.
func (s *Scroller) Bounds() (start, end float64) { return s.start, s.end }

// CrossAxisPosition returns the fixed coordinate on the non-scrolling axis.
func (s *Scroller) CrossAxisPosition() int { return s.cross }

// State reports whether the scroller has been ticked yet.
func (s *Scroller) State() State { return s.state }

// BoundingBox forwards to the element.
func (s *Scroller) BoundingBox() image.Rectangle { return s.elem.BoundingBox() }

// AnchoredPosition forwards to the element.
func (s *Scroller) AnchoredPosition() image.Point { return s.elem.AnchoredPosition() }

type colorer interface {
	Color() color.Color
	SetColor(color.Color)
}

type facer interface {
	Face() font.Face
	SetFace(font.Face)
}

// Color returns the element's text color, or nil when the element has none.
func (s *Scroller) Color() color.Color {
	if c, ok := s.elem.(colorer); ok {
		return c.Color()
	}
	return nil
}

// SetColor changes the element's text color when the element supports it.
func (s *Scroller) SetColor(c color.Color) {
	if e, ok := s.elem.(colorer); ok {
		e.SetColor(c)
	}
}

// Font returns the element's font face, or nil when the element has none.
func (s *Scroller) Font() font.Face {
	if f, ok := s.elem.(facer); ok {
		return f.Face()
	}
	return nil
}

// SetFont swaps the element's face when supported. The extent changes with
// the face, so boundaries are recomputed as for SetText.
func (s *Scroller) SetFont(face font.Face) {
	if f, ok := s.elem.(facer); ok {
		f.SetFace(face)
		s.setupBoundaries()
	}
}

func (s *Scroller) setupBoundaries() {
	b := s.elem.BoundingBox()
	switch s.dir {
	case Left:
		s.start = float64(s.display.Width())
		s.end = -float64(b.Dx())
	case Right:
		s.start = -float64(b.Dx())
		s.end = float64(s.display.Width())
	case Up:
		s.start = float64(s.display.Height())
		s.end = -float64(b.Dy())
	case Down:
		s.start = -float64(b.Dy())
		s.end = float64(s.display.Height())
	}
}

func (s *Scroller) resetPosition() {
	s.pos = s.start
	s.place()
}

func (s *Scroller) passedEnd() bool {
	if s.dir.sign() < 0 {
		return s.pos < s.end
	}
	return s.pos > s.end
}

func (s *Scroller) place() {
	p := int(math.Round(s.pos))
	if s.dir.Horizontal() {
		s.elem.SetAnchoredPosition(image.Pt(p, s.cross))
		return
	}
	s.elem.SetAnchoredPosition(image.Pt(s.cross, p))
}

func (s *Scroller) logf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}
