package ui

import (
	"image/color"
	"math"
	"testing"
)

func TestHSVRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		c    color.NRGBA
	}{
		{name: "red", c: color.NRGBA{0xFF, 0, 0, 0xFF}},
		{name: "green", c: color.NRGBA{0, 0xFF, 0, 0xFF}},
		{name: "blue", c: color.NRGBA{0, 0, 0xFF, 0xFF}},
		{name: "orange", c: color.NRGBA{0xFF, 0x80, 0x00, 0xFF}},
		{name: "gray", c: color.NRGBA{0x80, 0x80, 0x80, 0xFF}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, s, v := nrgbaToHSV(tt.c)
			if got := hsvToNRGBA(h, s, v); got != tt.c {
				t.Fatalf("round trip = %v, want %v (h=%v s=%v v=%v)", got, tt.c, h, s, v)
			}
		})
	}
}

func TestNRGBAToHSVHue(t *testing.T) {
	h, s, v := nrgbaToHSV(color.NRGBA{0, 0, 0xFF, 0xFF})
	if h != 240 || s != 1 || v != 1 {
		t.Fatalf("blue = (%v, %v, %v), want (240, 1, 1)", h, s, v)
	}
}

func TestBreathValueRange(t *testing.T) {
	for phase := 0.0; phase < 2*math.Pi; phase += 0.1 {
		v := breathValue(phase)
		if v < 0.55-1e-9 || v > 1+1e-9 {
			t.Fatalf("breathValue(%v) = %v out of range", phase, v)
		}
	}
}
