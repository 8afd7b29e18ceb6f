// Package canvas rasterises line segments onto a grid of braille terminal cells.
package canvas

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/tuiclock/internal/geom"
)

// Each terminal cell holds a 2x4 block of braille dots.
const (
	DotsPerCellX = 2
	DotsPerCellY = 4
)

const brailleBase = 0x2800

type cell struct {
	mask      uint8
	color     string
	text      rune
	textColor string
	// cont marks the right half of a wide text rune.
	cont bool
}

// Canvas is a braille dot raster. Dot coordinates are y-up with the origin at
// the bottom-left dot; rows are rendered top-down.
type Canvas struct {
	cols  int
	rows  int
	cells [][]cell
}

// New returns a canvas of cols x rows terminal cells.
func New(cols, rows int) *Canvas {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	c := &Canvas{cols: cols, rows: rows}
	c.cells = make([][]cell, rows)
	for y := 0; y < rows; y++ {
		c.cells[y] = make([]cell, cols)
	}
	return c
}

// Cols returns the width in cells.
func (c *Canvas) Cols() int {
	return c.cols
}

// Rows returns the height in cells.
func (c *Canvas) Rows() int {
	return c.rows
}

// DotWidth returns the width in dots.
func (c *Canvas) DotWidth() int {
	return c.cols * DotsPerCellX
}

// DotHeight returns the height in dots.
func (c *Canvas) DotHeight() int {
	return c.rows * DotsPerCellY
}

// Bounds returns the dot rect covered by the canvas.
func (c *Canvas) Bounds() geom.Rect {
	return geom.RectOf(c.DotWidth(), c.DotHeight())
}

// Clear removes all dots and text.
func (c *Canvas) Clear() {
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = cell{}
		}
	}
}

// Set turns on the dot at (x, y) in the given color. Out-of-range dots are ignored.
func (c *Canvas) Set(x, y int, color string) {
	if x < 0 || y < 0 || x >= c.DotWidth() || y >= c.DotHeight() {
		return
	}
	row := c.DotHeight() - 1 - y
	ce := &c.cells[row/DotsPerCellY][x/DotsPerCellX]
	ce.mask |= brailleDotMask(x%DotsPerCellX, row%DotsPerCellY)
	ce.color = color
}

// IsSet reports whether the dot at (x, y) is on.
func (c *Canvas) IsSet(x, y int) bool {
	if x < 0 || y < 0 || x >= c.DotWidth() || y >= c.DotHeight() {
		return false
	}
	row := c.DotHeight() - 1 - y
	ce := c.cells[row/DotsPerCellY][x/DotsPerCellX]
	return ce.mask&brailleDotMask(x%DotsPerCellX, row%DotsPerCellY) != 0
}

// DrawLine strokes seg with pen. Wide pens stamp a disc (rounded) or square
// at every point of the line.
func (c *Canvas) DrawLine(seg geom.Segment, pen geom.Pen) {
	r := 0
	if pen.Width > 1 {
		r = pen.Width / 2
	}
	drawLine(seg.From.X, seg.From.Y, seg.To.X, seg.To.Y, func(x, y int) {
		c.stamp(x, y, r, pen)
	})
}

func (c *Canvas) stamp(x, y, r int, pen geom.Pen) {
	if r == 0 {
		c.Set(x, y, pen.Color)
		return
	}
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if pen.Rounded && dx*dx+dy*dy > r*r {
				continue
			}
			c.Set(x+dx, y+dy, pen.Color)
		}
	}
}

// Text writes s starting at cell (col, row), counted from the top-left. Text
// replaces dots in the cells it covers.
func (c *Canvas) Text(col, row int, s, color string) {
	if row < 0 || row >= c.rows {
		return
	}
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col+w > c.cols {
			return
		}
		if col >= 0 {
			c.cells[row][col] = cell{text: r, textColor: color}
			if w == 2 {
				c.cells[row][col+1] = cell{cont: true, textColor: color}
			}
		}
		col += w
	}
}

// CenterText writes s horizontally centered on row.
func (c *Canvas) CenterText(row int, s, color string) {
	w := runewidth.StringWidth(s)
	c.Text((c.cols-w)/2, row, s, color)
}

// PaintFunc colors a run of text. color is empty for uncolored runs.
type PaintFunc func(color, text string) string

// Lines renders the canvas top-down, one string per row. Runs of cells sharing
// a color are passed to paint together; a nil paint leaves text uncolored.
func (c *Canvas) Lines(paint PaintFunc) []string {
	lines := make([]string, 0, c.rows)
	for y := 0; y < c.rows; y++ {
		var line strings.Builder
		var run strings.Builder
		runColor := ""
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if paint != nil && runColor != "" {
				line.WriteString(paint(runColor, run.String()))
			} else {
				line.WriteString(run.String())
			}
			run.Reset()
		}
		for x := 0; x < c.cols; x++ {
			ce := c.cells[y][x]
			if ce.cont {
				continue
			}
			ch, color := ce.glyph()
			if color != runColor {
				flush()
				runColor = color
			}
			run.WriteRune(ch)
		}
		flush()
		lines = append(lines, line.String())
	}
	return lines
}

// String renders the canvas without color.
func (c *Canvas) String() string {
	return strings.Join(c.Lines(nil), "\n")
}

func (ce cell) glyph() (rune, string) {
	if ce.text != 0 {
		return ce.text, ce.textColor
	}
	if ce.mask == 0 {
		return ' ', ""
	}
	return brailleFromMask(ce.mask), ce.color
}

func drawLine(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			if x0 == x1 {
				break
			}
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			if y0 == y1 {
				break
			}
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func brailleDotMask(x, y int) uint8 {
	switch {
	case x == 0 && y == 0:
		return 0x01
	case x == 0 && y == 1:
		return 0x02
	case x == 0 && y == 2:
		return 0x04
	case x == 0 && y == 3:
		return 0x40
	case x == 1 && y == 0:
		return 0x08
	case x == 1 && y == 1:
		return 0x10
	case x == 1 && y == 2:
		return 0x20
	case x == 1 && y == 3:
		return 0x80
	default:
		return 0
	}
}

func brailleFromMask(mask uint8) rune {
	return rune(brailleBase + int(mask))
}
