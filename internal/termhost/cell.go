package termhost

import (
	"image"
	"math"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/edward-ap/smoothscroll/label"
	"github.com/edward-ap/smoothscroll/scroller"
)

// wideTail marks the second column of a double-width rune in a grid.
const wideTail = rune(0)

// Cell is a text element measured in terminal cells. One display pixel is
// one character cell; double-width runes occupy two cells.
type Cell struct {
	text   string
	lines  []string
	box    image.Rectangle
	pos    image.Point
	anchor label.AnchorPoint
}

// NewCell creates a cell element pinned at its anchor point.
func NewCell(text string, anchor label.AnchorPoint) *Cell {
	c := &Cell{anchor: anchor}
	c.SetText(text)
	return c
}

// CellFactory is a scroller.ElementFactory producing *Cell elements. Face,
// scale and colors are ignored; styling belongs to the terminal.
func CellFactory(opts label.Options) scroller.TextElement {
	return NewCell(opts.Text, opts.AnchorPoint)
}

func (c *Cell) Text() string { return c.text }

func (c *Cell) SetText(text string) {
	c.text = text
	c.lines = strings.Split(text, "\n")
	w := 0
	for _, ln := range c.lines {
		if lw := runewidth.StringWidth(ln); lw > w {
			w = lw
		}
	}
	c.box = image.Rect(0, 0, w, len(c.lines))
}

// BoundingBox spans the widest line by the number of lines.
func (c *Cell) BoundingBox() image.Rectangle { return c.box }

func (c *Cell) AnchoredPosition() image.Point { return c.pos }

func (c *Cell) SetAnchoredPosition(p image.Point) { c.pos = p }

// Origin returns the top-left cell of the box on the grid.
func (c *Cell) Origin() image.Point {
	dx := int(math.Round(c.anchor.X * float64(c.box.Dx())))
	dy := int(math.Round(c.anchor.Y * float64(c.box.Dy())))
	return image.Pt(c.pos.X-dx, c.pos.Y-dy)
}

// Paint writes the text into grid, clipping at the edges.
func (c *Cell) Paint(grid [][]rune) {
	o := c.Origin()
	for i, ln := range c.lines {
		y := o.Y + i
		if y < 0 || y >= len(grid) {
			continue
		}
		row := grid[y]
		x := o.X
		for _, r := range ln {
			w := runewidth.RuneWidth(r)
			if w == 0 {
				continue
			}
			// a wide rune cut by an edge is dropped rather than split
			if x >= 0 && x+w <= len(row) {
				row[x] = r
				if w == 2 {
					row[x+1] = wideTail
				}
			}
			x += w
		}
	}
}
