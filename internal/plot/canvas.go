// SPDX-License-Identifier: EPL-2.0

package plot

import "strings"

// Braille cells are 2 dots wide and 4 dots tall.
const (
	cellW = 2
	cellH = 4

	brailleBase = 0x2800
)

// dotBits maps (x, y) inside a cell to its Unicode braille bit.
var dotBits = [cellW][cellH]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// Canvas is a monochrome dot matrix rendered with braille characters.
type Canvas struct {
	cols, rows int
	cells      []uint8
}

// NewCanvas returns a blank canvas of cols×rows characters, which is
// 2·cols × 4·rows dots.
func NewCanvas(cols, rows int) *Canvas {
	cols, rows = max(cols, 1), max(rows, 1)
	return &Canvas{cols: cols, rows: rows, cells: make([]uint8, cols*rows)}
}

// Width in dots.
func (c *Canvas) Width() int { return c.cols * cellW }

// Height in dots.
func (c *Canvas) Height() int { return c.rows * cellH }

// Set turns on the dot at (x, y), y growing downwards. Out of range dots
// are ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 || x >= c.Width() || y >= c.Height() {
		return
	}
	c.cells[(y/cellH)*c.cols+x/cellW] |= dotBits[x%cellW][y%cellH]
}

// IsSet reports whether the dot at (x, y) is on.
func (c *Canvas) IsSet(x, y int) bool {
	if x < 0 || y < 0 || x >= c.Width() || y >= c.Height() {
		return false
	}
	return c.cells[(y/cellH)*c.cols+x/cellW]&dotBits[x%cellW][y%cellH] != 0
}

// VLine sets every dot between y0 and y1 inclusive in column x.
func (c *Canvas) VLine(x, y0, y1 int) {
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	for y := y0; y <= y1; y++ {
		c.Set(x, y)
	}
}

func (c *Canvas) String() string {
	var sb strings.Builder
	sb.Grow(c.rows * (c.cols*3 + 1))

	for r := range c.rows {
		for _, cell := range c.cells[r*c.cols : (r+1)*c.cols] {
			sb.WriteRune(rune(brailleBase + int(cell)))
		}
		if r < c.rows-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
