package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// continuation marks the cell right of a wide rune.
const continuation rune = 0

// Canvas is a 2D grid of runes.
type Canvas struct {
	cells  []rune
	width  int
	height int
}

// NewCanvas creates a canvas of the given size filled with spaces.
func NewCanvas(width, height int) *Canvas {
	width, height = max(width, 0), max(height, 0)
	cells := make([]rune, width*height)
	for i := range cells {
		cells[i] = ' '
	}
	return &Canvas{cells: cells, width: width, height: height}
}

// Width returns the canvas width in columns.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in rows.
func (c *Canvas) Height() int {
	return c.height
}

// Rect returns the canvas bounds as a Rect starting at (0, 0).
func (c *Canvas) Rect() Rect {
	return NewRect(0, 0, c.width, c.height)
}

// idx converts (x, y) coordinates to a flat index.
// Returns -1 if out of bounds.
func (c *Canvas) idx(x, y int) int {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return -1
	}
	return y*c.width + x
}

// Rune returns the rune at (x, y), or a space out of bounds.
func (c *Canvas) Rune(x, y int) rune {
	i := c.idx(x, y)
	if i < 0 {
		return ' '
	}
	return c.cells[i]
}

// SetRune sets the rune at (x, y). Wide runes take the next cell too and
// are replaced by a space when they do not fit.
func (c *Canvas) SetRune(x, y int, r rune) {
	i := c.idx(x, y)
	if i < 0 {
		return
	}

	// Overwriting either half of a wide rune clears the other half.
	if c.cells[i] == continuation && x > 0 {
		c.cells[i-1] = ' '
	}
	if x+1 < c.width && c.cells[i+1] == continuation {
		c.cells[i+1] = ' '
	}

	if runewidth.RuneWidth(r) == 2 {
		if x+1 >= c.width {
			c.cells[i] = ' '
			return
		}
		c.cells[i+1] = continuation
	}
	c.cells[i] = r
}

// SetString writes s from (x, y) without wrapping and returns the width
// written. Runes outside clip are skipped.
func (c *Canvas) SetString(x, y int, s string, clip Rect) int {
	if y < clip.Y || y >= clip.Bottom() {
		return 0
	}
	written := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if x >= clip.Right() {
			break
		}
		if x >= clip.X && x+w <= clip.Right() {
			c.SetRune(x, y, r)
			written += w
		}
		x += w
	}
	return written
}

// Fill fills rect with r.
func (c *Canvas) Fill(rect Rect, r rune) {
	rect = rect.Intersect(c.Rect())
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); x++ {
			c.SetRune(x, y, r)
		}
	}
}

// Lines returns the canvas rows with trailing spaces trimmed.
func (c *Canvas) Lines() []string {
	lines := make([]string, c.height)
	var sb strings.Builder
	for y := range c.height {
		sb.Reset()
		for x := range c.width {
			if r := c.cells[y*c.width+x]; r != continuation {
				sb.WriteRune(r)
			}
		}
		lines[y] = strings.TrimRight(sb.String(), " ")
	}
	return lines
}

// String returns the canvas rows joined by newlines.
func (c *Canvas) String() string {
	return strings.Join(c.Lines(), "\n")
}
