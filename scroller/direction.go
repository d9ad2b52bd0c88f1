package scroller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/edward-ap/smoothscroll/label"
)

// ErrInvalidArgument reports a construction input the scroller cannot use.
var ErrInvalidArgument = errors.New("invalid argument")

// Direction is the sense of travel of the scrolling text.
type Direction int

const (
	// Left moves the text from the right edge towards the left one.
	Left Direction = iota
	// Right moves the text from the left edge towards the right one.
	Right
	// Up moves the text from the bottom edge towards the top one.
	Up
	// Down moves the text from the top edge towards the bottom one.
	Down
)

// directionNames lists every accepted spelling, already lower-cased.
var directionNames = map[string]Direction{
	"left":   Left,
	"right":  Right,
	"up":     Up,
	"down":   Down,
	"bottom": Down,
}

// ParseDirection maps a case-insensitive direction name to a Direction.
// "bottom" is accepted as an alias of "down".
func ParseDirection(s string) (Direction, error) {
	if d, ok := directionNames[strings.ToLower(s)]; ok {
		return d, nil
	}
	return Left, fmt.Errorf("%w: direction must be 'left', 'right', 'up', or 'down', got %q", ErrInvalidArgument, s)
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Horizontal reports whether d scrolls along the x axis.
func (d Direction) Horizontal() bool { return d == Left || d == Right }

// DefaultAnchor returns the anchor point used when none is supplied.
func (d Direction) DefaultAnchor() label.AnchorPoint {
	switch d {
	case Up:
		return label.AnchorPoint{X: 0.5, Y: 1}
	case Down:
		return label.AnchorPoint{X: 0.5, Y: 0}
	}
	return label.AnchorPoint{X: 0, Y: 0.5}
}

// sign is -1 for travel towards smaller coordinates.
func (d Direction) sign() float64 {
	if d == Left || d == Up {
		return -1
	}
	return 1
}
