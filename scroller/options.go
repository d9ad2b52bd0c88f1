package scroller

import (
	"image/color"
	"log"

	"golang.org/x/image/font"

	"github.com/edward-ap/smoothscroll/label"
)

// Option customizes a Scroller at construction.
type Option func(*settings)

type settings struct {
	speed     float64
	position  *int
	font      font.Face
	direction string
	color     color.Color
	anchor    *label.AnchorPoint
	clock     Clock
	factory   ElementFactory
	logger    *log.Logger
}

func defaultSettings() settings {
	return settings{
		speed:     DefaultSpeed,
		direction: "left",
		color:     label.RGB(0xFFFFFF),
	}
}

// WithSpeed sets the scroll rate in pixels per second. Zero and negative
// rates are accepted as given.
func WithSpeed(speed float64) Option {
	return func(s *settings) { s.speed = speed }
}

// WithPosition fixes the cross-axis coordinate: y for horizontal scrolling,
// x for vertical. Without it the text is centred on the display.
func WithPosition(p int) Option {
	return func(s *settings) { s.position = &p }
}

// WithFont sets the face handed to the text element.
func WithFont(face font.Face) Option {
	return func(s *settings) { s.font = face }
}

// WithDirection sets the direction by name; see ParseDirection.
func WithDirection(dir string) Option {
	return func(s *settings) { s.direction = dir }
}

// WithColor sets the text color.
func WithColor(c color.Color) Option {
	return func(s *settings) { s.color = c }
}

// WithAnchorPoint overrides the direction's default anchor point.
func WithAnchorPoint(a label.AnchorPoint) Option {
	return func(s *settings) { s.anchor = &a }
}

// WithClock replaces the monotonic clock.
func WithClock(c Clock) Option {
	return func(s *settings) { s.clock = c }
}

// WithElementFactory replaces the function that creates the text element.
func WithElementFactory(f ElementFactory) Option {
	return func(s *settings) { s.factory = f }
}

// WithLogger enables trace output of boundaries and wraps.
func WithLogger(l *log.Logger) Option {
	return func(s *settings) { s.logger = l }
}
