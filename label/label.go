// Package label implements a small bitmap text label for fixed-size displays.
// A Label measures its text with an x/image font face, keeps an anchored
// placement on the display and rasterizes itself into an RGBA bitmap that is
// cached until the content or style changes.
package label

import (
	"image"
	"image/color"
	"math"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// AnchorPoint selects the point of the bounding box that is treated as the
// label's position. X and Y are fractions in [0, 1]; (0, 0) is the top-left
// corner and (1, 1) the bottom-right one.
type AnchorPoint struct {
	X float64
	Y float64
}

// Options configures a new Label. Zero values fall back to the defaults
// documented on each field.
type Options struct {
	Face            font.Face   // nil selects DefaultFace
	Text            string      // may contain '\n' for multi-line labels
	Color           color.Color // nil selects white
	BackgroundColor color.Color // nil leaves the background transparent
	// BackgroundTight measures the glyph ink instead of the full line box.
	BackgroundTight bool
	Padding         int     // pixels added around the box on every side
	Scale           int     // integer pixel scale, values below 1 mean 1
	LineSpacing     float64 // multiple of the face line height, 0 means 1
	AnchorPoint     AnchorPoint
}

// Label is a rasterized text element with an anchored position. It is not
// safe for concurrent use.
type Label struct {
	face        font.Face
	text        string
	col         color.Color
	bg          color.Color
	tight       bool
	padding     int
	scale       int
	lineSpacing float64
	anchor      AnchorPoint
	pos         image.Point

	box   image.Rectangle // unscaled, label-local
	img   *image.RGBA
	dirty bool
}

// New creates a label and measures its initial content.
func New(opts Options) *Label {
	l := &Label{
		face:        opts.Face,
		text:        opts.Text,
		col:         opts.Color,
		bg:          opts.BackgroundColor,
		tight:       opts.BackgroundTight,
		padding:     opts.Padding,
		scale:       opts.Scale,
		lineSpacing: opts.LineSpacing,
		anchor:      opts.AnchorPoint,
	}
	if l.face == nil {
		l.face = DefaultFace
	}
	if l.col == nil {
		l.col = color.White
	}
	if l.scale < 1 {
		l.scale = 1
	}
	if l.lineSpacing <= 0 {
		l.lineSpacing = 1
	}
	if l.padding < 0 {
		l.padding = 0
	}
	l.measure()
	return l
}

// Text returns the current content.
func (l *Label) Text() string { return l.text }

// SetText replaces the content and re-measures the bounding box.
func (l *Label) SetText(text string) {
	if text == l.text {
		return
	}
	l.text = text
	l.measure()
}

// BoundingBox returns the extent of the rendered content in label-local
// coordinates: the pen starts at (0, 0) on the baseline of the first line.
// The box includes padding and scale.
func (l *Label) BoundingBox() image.Rectangle {
	s := l.scale
	return image.Rect(l.box.Min.X*s, l.box.Min.Y*s, l.box.Max.X*s, l.box.Max.Y*s)
}

// AnchoredPosition returns the display coordinate of the anchor point.
func (l *Label) AnchoredPosition() image.Point { return l.pos }

// SetAnchoredPosition moves the label so its anchor point lands on p.
func (l *Label) SetAnchoredPosition(p image.Point) { l.pos = p }

// AnchorPoint returns the anchor fractions.
func (l *Label) AnchorPoint() AnchorPoint { return l.anchor }

// SetAnchorPoint changes which point of the box is pinned to the anchored position.
func (l *Label) SetAnchorPoint(a AnchorPoint) { l.anchor = a }

// Origin returns the top-left corner of the bounding box on the display.
func (l *Label) Origin() image.Point {
	b := l.BoundingBox()
	dx := int(math.Round(l.anchor.X * float64(b.Dx())))
	dy := int(math.Round(l.anchor.Y * float64(b.Dy())))
	return image.Pt(l.pos.X-dx, l.pos.Y-dy)
}

// Color returns the text color.
func (l *Label) Color() color.Color { return l.col }

// SetColor changes the text color.
func (l *Label) SetColor(c color.Color) {
	if c == nil {
		c = color.White
	}
	l.col = c
	l.dirty = true
}

// BackgroundColor returns the fill behind the text or nil when transparent.
func (l *Label) BackgroundColor() color.Color { return l.bg }

// SetBackgroundColor sets the fill behind the text; nil makes it transparent.
func (l *Label) SetBackgroundColor(c color.Color) {
	l.bg = c
	l.dirty = true
}

// Face returns the font face used for measuring and drawing.
func (l *Label) Face() font.Face { return l.face }

// SetFace swaps the font face. The bounding box changes with it.
func (l *Label) SetFace(f font.Face) {
	if f == nil {
		f = DefaultFace
	}
	l.face = f
	l.measure()
}

// Scale returns the integer pixel scale.
func (l *Label) Scale() int { return l.scale }

// SetScale changes the integer pixel scale; values below 1 mean 1.
func (l *Label) SetScale(s int) {
	if s < 1 {
		s = 1
	}
	l.scale = s
	l.dirty = true
}

// Padding returns the padding around the box.
func (l *Label) Padding() int { return l.padding }

// SetPadding changes the padding around the box.
func (l *Label) SetPadding(p int) {
	if p < 0 {
		p = 0
	}
	l.padding = p
	l.measure()
}

// Image returns the rasterized label. The bitmap is cached and rebuilt only
// after a content or style change; callers must not modify it.
func (l *Label) Image() *image.RGBA {
	if l.img == nil || l.dirty {
		l.img = l.rasterize()
		l.dirty = false
	}
	return l.img
}

// Draw composites the label onto dst at its anchored placement.
func (l *Label) Draw(dst draw.Image) {
	img := l.Image()
	if img.Bounds().Empty() {
		return
	}
	r := img.Bounds().Add(l.Origin())
	draw.Draw(dst, r, img, image.Point{}, draw.Over)
}

func (l *Label) lineHeight() int {
	h := l.face.Metrics().Height.Ceil()
	return int(math.Round(float64(h) * l.lineSpacing))
}

func (l *Label) measure() {
	l.dirty = true
	l.box = image.Rectangle{}
	if l.text == "" {
		return
	}
	m := l.face.Metrics()
	ascent, descent := m.Ascent.Ceil(), m.Descent.Ceil()
	lh := l.lineHeight()
	var box image.Rectangle
	for i, line := range strings.Split(l.text, "\n") {
		y := i * lh
		var r image.Rectangle
		if l.tight {
			b, _ := font.BoundString(l.face, line)
			r = image.Rect(b.Min.X.Floor(), b.Min.Y.Floor()+y, b.Max.X.Ceil(), b.Max.Y.Ceil()+y)
		} else {
			adv := font.MeasureString(l.face, line).Ceil()
			r = image.Rect(0, y-ascent, adv, y+descent)
		}
		box = box.Union(r)
	}
	if !box.Empty() && l.padding > 0 {
		box = box.Inset(-l.padding)
	}
	l.box = box
}

func (l *Label) rasterize() *image.RGBA {
	b := l.box
	if b.Empty() {
		return image.NewRGBA(image.Rectangle{})
	}
	src := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	if l.bg != nil {
		draw.Draw(src, src.Bounds(), image.NewUniform(l.bg), image.Point{}, draw.Src)
	}
	d := &font.Drawer{Dst: src, Src: image.NewUniform(l.col), Face: l.face}
	lh := l.lineHeight()
	for i, line := range strings.Split(l.text, "\n") {
		d.Dot = fixed.P(-b.Min.X, -b.Min.Y+i*lh)
		d.DrawString(line)
	}
	if l.scale == 1 {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*l.scale, b.Dy()*l.scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
