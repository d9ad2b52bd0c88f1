package scroller

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"log"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/edward-ap/smoothscroll/label"
)

// fakeElement measures every rune as 10x8 pixels.
type fakeElement struct {
	opts label.Options
	text string
	pos  image.Point
	sets int
}

func (f *fakeElement) Text() string        { return f.text }
func (f *fakeElement) SetText(text string) { f.text = text }
func (f *fakeElement) BoundingBox() image.Rectangle {
	return image.Rect(0, 0, 10*len(f.text), 8)
}
func (f *fakeElement) AnchoredPosition() image.Point { return f.pos }
func (f *fakeElement) SetAnchoredPosition(p image.Point) {
	f.pos = p
	f.sets++
}

type fakeFactory struct {
	created []*fakeElement
}

func (ff *fakeFactory) build(opts label.Options) TextElement {
	e := &fakeElement{opts: opts, text: opts.Text}
	ff.created = append(ff.created, e)
	return e
}

func newFake(t *testing.T, text string, display Display, opts ...Option) (*Scroller, *fakeElement, *ManualClock) {
	t.Helper()
	ff := &fakeFactory{}
	clk := &ManualClock{}
	all := append([]Option{WithElementFactory(ff.build), WithClock(clk)}, opts...)
	s, err := New(text, display, all...)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if len(ff.created) != 1 {
		t.Fatalf("expected one element, got %d", len(ff.created))
	}
	return s, ff.created[0], clk
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in      string
		want    Direction
		wantErr bool
	}{
		{in: "left", want: Left},
		{in: "LEFT", want: Left},
		{in: "Right", want: Right},
		{in: "up", want: Up},
		{in: "down", want: Down},
		{in: "bottom", want: Down},
		{in: "BoTtOm", want: Down},
		{in: "diagonal", wantErr: true},
		{in: "", wantErr: true},
		{in: " left", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDirection(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidArgument) {
					t.Fatalf("ParseDirection(%q) error = %v, want ErrInvalidArgument", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDirection(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("ParseDirection(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestInvalidDirectionCreatesNoElement(t *testing.T) {
	ff := &fakeFactory{}
	s, err := New("HELLO", Surface{W: 160, H: 128}, WithDirection("diagonal"), WithElementFactory(ff.build))
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("New error = %v, want ErrInvalidArgument", err)
	}
	if s != nil {
		t.Fatal("New should return a nil scroller on error")
	}
	if len(ff.created) != 0 {
		t.Fatalf("factory called %d times, want 0", len(ff.created))
	}
}

func TestBoundariesPerDirection(t *testing.T) {
	display := Surface{W: 200, H: 100}
	// "HELLO" is 50x8 with the fake element.
	tests := []struct {
		dir        string
		start, end float64
		placement  image.Point
	}{
		{dir: "left", start: 200, end: -50, placement: image.Pt(200, 50)},
		{dir: "right", start: -50, end: 200, placement: image.Pt(-50, 50)},
		{dir: "up", start: 100, end: -8, placement: image.Pt(100, 100)},
		{dir: "down", start: -8, end: 100, placement: image.Pt(100, -8)},
	}
	for _, tt := range tests {
		t.Run(tt.dir, func(t *testing.T) {
			s, e, _ := newFake(t, "HELLO", display, WithDirection(tt.dir))
			start, end := s.Bounds()
			if start != tt.start || end != tt.end {
				t.Fatalf("Bounds() = (%v, %v), want (%v, %v)", start, end, tt.start, tt.end)
			}
			if s.Direction().sign() < 0 && !(end < start) {
				t.Fatalf("end %v should be below start %v", end, start)
			}
			if s.Direction().sign() > 0 && !(end > start) {
				t.Fatalf("end %v should be above start %v", end, start)
			}
			if diff := cmp.Diff(tt.placement, e.pos); diff != "" {
				t.Fatalf("initial placement mismatch (-want +got):\n%s", diff)
			}
			if s.State() != Idle {
				t.Fatalf("State() = %v, want idle", s.State())
			}
		})
	}
}

func TestDefaultAnchorPoints(t *testing.T) {
	tests := []struct {
		dir  string
		want label.AnchorPoint
	}{
		{dir: "left", want: label.AnchorPoint{X: 0, Y: 0.5}},
		{dir: "right", want: label.AnchorPoint{X: 0, Y: 0.5}},
		{dir: "up", want: label.AnchorPoint{X: 0.5, Y: 1}},
		{dir: "down", want: label.AnchorPoint{X: 0.5, Y: 0}},
		{dir: "bottom", want: label.AnchorPoint{X: 0.5, Y: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.dir, func(t *testing.T) {
			s, e, _ := newFake(t, "X", Surface{W: 10, H: 10}, WithDirection(tt.dir))
			if diff := cmp.Diff(tt.want, s.AnchorPoint()); diff != "" {
				t.Fatalf("AnchorPoint mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.want, e.opts.AnchorPoint); diff != "" {
				t.Fatalf("element anchor mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestConstructionDefaultsAndOverrides(t *testing.T) {
	_, e, _ := newFake(t, "HI", Surface{W: 160, H: 128})
	if !e.opts.BackgroundTight {
		t.Error("element should be created with a tight background")
	}
	if e.opts.Face != label.DefaultFace {
		t.Error("element should default to the built-in face")
	}
	if e.opts.Color != label.RGB(0xFFFFFF) {
		t.Errorf("default color = %v, want white", e.opts.Color)
	}

	red := color.RGBA{0xFF, 0, 0, 0xFF}
	anchor := label.AnchorPoint{X: 1, Y: 1}
	s, e, _ := newFake(t, "HI", Surface{W: 160, H: 128},
		WithDirection("up"), WithPosition(12), WithColor(red), WithAnchorPoint(anchor), WithSpeed(30))
	if s.CrossAxisPosition() != 12 {
		t.Errorf("CrossAxisPosition() = %d, want 12", s.CrossAxisPosition())
	}
	if e.opts.Color != red {
		t.Errorf("color = %v, want %v", e.opts.Color, red)
	}
	if diff := cmp.Diff(anchor, e.opts.AnchorPoint); diff != "" {
		t.Errorf("anchor mismatch (-want +got):\n%s", diff)
	}
	if s.Speed() != 30 {
		t.Errorf("Speed() = %v, want 30", s.Speed())
	}
	if diff := cmp.Diff(image.Pt(12, 128), e.pos); diff != "" {
		t.Errorf("placement mismatch (-want +got):\n%s", diff)
	}
}

func TestUpdateMovesBySpeedTimesElapsed(t *testing.T) {
	tests := []struct {
		dir     string
		speed   float64
		elapsed float64
		delta   float64
	}{
		{dir: "left", speed: 100, elapsed: 0.5, delta: -50},
		{dir: "right", speed: 100, elapsed: 0.25, delta: 25},
		{dir: "up", speed: 40, elapsed: 0.5, delta: -20},
		{dir: "down", speed: 40, elapsed: 0.5, delta: 20},
		{dir: "left", speed: 100, elapsed: 0, delta: 0},
	}
	for _, tt := range tests {
		t.Run(tt.dir, func(t *testing.T) {
			s, _, clk := newFake(t, "AB", Surface{W: 400, H: 400}, WithDirection(tt.dir), WithSpeed(tt.speed))
			before := s.Position()
			clk.Advance(tt.elapsed)
			s.Update()
			if got := s.Position() - before; got != tt.delta {
				t.Fatalf("moved by %v, want %v", got, tt.delta)
			}
			if s.State() != Scrolling {
				t.Fatalf("State() = %v, want scrolling", s.State())
			}
		})
	}
}

func TestWrapDiscardsOvershoot(t *testing.T) {
	// left, surface 200 wide, element 50 wide: start 200, end -50.
	s, e, clk := newFake(t, "HELLO", Surface{W: 200, H: 64}, WithSpeed(100))
	clk.Advance(2.4) // 200 - 240 = -40, still on the way out
	s.Update()
	if s.Position() != -40 {
		t.Fatalf("Position() = %v, want -40", s.Position())
	}
	clk.Advance(0.5) // -40 - 50 = -90 < -50
	s.Update()
	if s.Position() != 200 {
		t.Fatalf("Position() after wrap = %v, want exactly 200", s.Position())
	}
	if diff := cmp.Diff(image.Pt(200, 32), e.pos); diff != "" {
		t.Fatalf("placement after wrap mismatch (-want +got):\n%s", diff)
	}

	// A single huge step still lands on the start, not start minus overshoot.
	clk.Advance(100)
	s.Update()
	if s.Position() != 200 {
		t.Fatalf("Position() after long step = %v, want 200", s.Position())
	}
}

func TestWrapAtExactEndDoesNotSnap(t *testing.T) {
	s, _, clk := newFake(t, "HELLO", Surface{W: 200, H: 64}, WithSpeed(100), WithDirection("right"))
	// start -50, end 200: exactly reaching the end is not past it.
	clk.Advance(2.5)
	s.Update()
	if s.Position() != 200 {
		t.Fatalf("Position() = %v, want 200", s.Position())
	}
	clk.Advance(0.01)
	s.Update()
	if s.Position() != -50 {
		t.Fatalf("Position() = %v, want wrap to -50", s.Position())
	}
}

func TestPlacementRoundsPosition(t *testing.T) {
	s, e, clk := newFake(t, "A", Surface{W: 100, H: 20}, WithSpeed(1))
	clk.Advance(0.6) // 100 - 0.6 = 99.4
	s.Update()
	if e.pos.X != 99 {
		t.Fatalf("x = %d, want 99", e.pos.X)
	}
	clk.Advance(0.2) // 99.2
	s.Update()
	clk.Advance(0.4) // 98.8
	s.Update()
	if e.pos.X != 99 {
		t.Fatalf("x = %d, want 99 for 98.8", e.pos.X)
	}
}

func TestSetTextRecomputesWithoutMoving(t *testing.T) {
	s, e, clk := newFake(t, "HELLO", Surface{W: 200, H: 64}, WithSpeed(100), WithDirection("right"))
	clk.Advance(1)
	s.Update()
	pos := s.Position()
	sets := e.sets

	s.SetText("HELLO WORLD")
	if s.Position() != pos {
		t.Fatalf("Position() changed to %v, want %v", s.Position(), pos)
	}
	if e.sets != sets {
		t.Fatal("SetText should not re-place the element")
	}
	start, end := s.Bounds()
	if start != -110 || end != 200 {
		t.Fatalf("Bounds() = (%v, %v), want (-110, 200)", start, end)
	}
	if s.Text() != "HELLO WORLD" {
		t.Fatalf("Text() = %q", s.Text())
	}

	// After the next overflow the new start applies.
	clk.Advance(1.6)
	s.Update()
	if s.Position() != -110 {
		t.Fatalf("Position() after wrap = %v, want -110", s.Position())
	}
}

func TestSetSpeedAppliesOnNextUpdate(t *testing.T) {
	s, _, clk := newFake(t, "A", Surface{W: 1000, H: 10}, WithSpeed(100))
	s.SetSpeed(10)
	clk.Advance(1)
	s.Update()
	if s.Position() != 990 {
		t.Fatalf("Position() = %v, want 990", s.Position())
	}
	if s.Direction() != Left {
		t.Fatalf("Direction() = %v, want left", s.Direction())
	}
}

func TestResetIsIdempotent(t *testing.T) {
	s, e, clk := newFake(t, "HELLO", Surface{W: 200, H: 64}, WithSpeed(100))
	clk.Advance(1)
	s.Update()

	s.Reset()
	pos1, place1 := s.Position(), e.pos
	s.Reset()
	if s.Position() != pos1 {
		t.Fatalf("Position() = %v after second reset, want %v", s.Position(), pos1)
	}
	if diff := cmp.Diff(place1, e.pos); diff != "" {
		t.Fatalf("placement mismatch (-want +got):\n%s", diff)
	}
	if pos1 != 200 {
		t.Fatalf("Position() after reset = %v, want 200", pos1)
	}
	if s.State() != Scrolling {
		t.Fatalf("Reset should not leave the scrolling state")
	}
}

func TestDegenerateInputsAreAccepted(t *testing.T) {
	// Empty text on a zero-size display: start equals end.
	s, _, clk := newFake(t, "", Surface{}, WithSpeed(-5))
	start, end := s.Bounds()
	if start != 0 || end != 0 {
		t.Fatalf("Bounds() = (%v, %v), want (0, 0)", start, end)
	}
	clk.Advance(1)
	s.Update() // negative speed moves left-scrolling text to the right
	if s.Position() != 5 {
		t.Fatalf("Position() = %v, want 5", s.Position())
	}
}

func TestScrollRightEndToEnd(t *testing.T) {
	clk := &ManualClock{}
	s, err := New("HELLO", Surface{W: 160, H: 128}, WithSpeed(100), WithDirection("right"), WithClock(clk))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	lbl, ok := s.Label().(*label.Label)
	if !ok {
		t.Fatalf("Label() = %T, want *label.Label", s.Label())
	}
	w := lbl.BoundingBox().Dx()
	if w <= 0 {
		t.Fatalf("label width = %d", w)
	}
	x0 := s.AnchoredPosition().X
	if x0 != -w {
		t.Fatalf("initial x = %d, want %d", x0, -w)
	}
	if y := s.AnchoredPosition().Y; y != 64 {
		t.Fatalf("initial y = %d, want 64", y)
	}
	clk.Advance(1)
	s.Update()
	if got := s.AnchoredPosition().X; got != x0+100 {
		t.Fatalf("x after 1s = %d, want %d", got, x0+100)
	}
	clk.Advance(1)
	s.Update()
	if got := s.AnchoredPosition().X; got != x0 {
		t.Fatalf("x after wrap = %d, want %d", got, x0)
	}
}

func TestNilElementIsRejected(t *testing.T) {
	s, err := New("A", Surface{W: 10, H: 10}, WithElementFactory(func(label.Options) TextElement { return nil }))
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("New error = %v, want ErrInvalidArgument", err)
	}
	if s != nil {
		t.Fatal("New returned a scroller alongside the error")
	}
}

func TestRemeasureAfterScaleChange(t *testing.T) {
	clk := &ManualClock{}
	s, err := New("HELLO", Surface{W: 160, H: 128}, WithSpeed(10), WithDirection("right"), WithClock(clk))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	lbl := s.Label().(*label.Label)
	w1 := lbl.BoundingBox().Dx()
	clk.Advance(1)
	s.Update()
	pos := s.Position()

	lbl.SetScale(2)
	if start, _ := s.Bounds(); start != -float64(w1) {
		t.Fatalf("bounds changed before Remeasure: start = %v", start)
	}
	s.Remeasure()
	w2 := lbl.BoundingBox().Dx()
	if w2 != 2*w1 {
		t.Fatalf("scaled width = %d, want %d", w2, 2*w1)
	}
	start, end := s.Bounds()
	if start != -float64(w2) || end != 160 {
		t.Fatalf("Bounds() = (%v, %v), want (%d, 160)", start, end, -w2)
	}
	if s.Position() != pos {
		t.Fatalf("Remeasure moved the text: %v, want %v", s.Position(), pos)
	}
}

func TestForwardingToLabel(t *testing.T) {
	s, err := New("HELLO", Surface{W: 160, H: 128}, WithClock(&ManualClock{}))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	green := color.RGBA{0, 0xFF, 0, 0xFF}
	s.SetColor(green)
	if s.Color() != green {
		t.Fatalf("Color() = %v, want %v", s.Color(), green)
	}
	if s.Font() != label.DefaultFace {
		t.Fatal("Font() should report the default face")
	}
	s.SetFont(nil) // resets to the default face, boundaries stay valid
	start, end := s.Bounds()
	if start != 160 || end != -float64(s.BoundingBox().Dx()) {
		t.Fatalf("Bounds() = (%v, %v)", start, end)
	}

	// Elements without style support ignore the forwarded calls.
	f, _, _ := newFake(t, "A", Surface{W: 10, H: 10})
	f.SetColor(green)
	if f.Color() != nil || f.Font() != nil {
		t.Fatal("fake element has no style properties")
	}
}

func TestLoggerTracesWraps(t *testing.T) {
	var buf bytes.Buffer
	s, _, clk := newFake(t, "A", Surface{W: 10, H: 10}, WithLogger(log.New(&buf, "", 0)))
	clk.Advance(10)
	s.Update()
	if !strings.Contains(buf.String(), "wrap to 10") {
		t.Fatalf("log output missing wrap line:\n%s", buf.String())
	}
}
