package render

import "github.com/mattn/go-runewidth"

// BorderStyle represents different styles of box borders.
type BorderStyle int

const (
	// BorderNone draws nothing.
	BorderNone BorderStyle = iota
	// BorderSingle uses single-line box-drawing characters (─, │, ┌, etc.)
	BorderSingle
	// BorderDouble uses double-line box-drawing characters (═, ║, ╔, etc.)
	BorderDouble
	// BorderRounded uses rounded corner characters (─, │, ╭, ╮, ╰, ╯)
	BorderRounded
	// BorderASCII uses plain ASCII characters (+, -, |)
	BorderASCII
)

// ParseBorder resolves a border name: none, single, double, rounded or ascii.
func ParseBorder(name string) (BorderStyle, bool) {
	switch name {
	case "none":
		return BorderNone, true
	case "single", "":
		return BorderSingle, true
	case "double":
		return BorderDouble, true
	case "rounded":
		return BorderRounded, true
	case "ascii":
		return BorderASCII, true
	default:
		return BorderNone, false
	}
}

// BorderChars holds the characters used to draw a box border.
type BorderChars struct {
	TopLeft     rune
	Top         rune
	TopRight    rune
	Left        rune
	Right       rune
	BottomLeft  rune
	Bottom      rune
	BottomRight rune
}

// Chars returns the box-drawing characters for this border style.
func (b BorderStyle) Chars() BorderChars {
	switch b {
	case BorderSingle:
		return BorderChars{'┌', '─', '┐', '│', '│', '└', '─', '┘'}
	case BorderDouble:
		return BorderChars{'╔', '═', '╗', '║', '║', '╚', '═', '╝'}
	case BorderRounded:
		return BorderChars{'╭', '─', '╮', '│', '│', '╰', '─', '╯'}
	case BorderASCII:
		return BorderChars{'+', '-', '+', '|', '|', '+', '-', '+'}
	default:
		return BorderChars{' ', ' ', ' ', ' ', ' ', ' ', ' ', ' '}
	}
}

// DrawBox draws a box border at rect. Positions come from the full rect
// but only cells within clip are drawn, so partly hidden boxes keep their
// visible edges. Boxes smaller than 1x1 are skipped; a single row or column
// is drawn as a line.
func DrawBox(c *Canvas, rect Rect, border BorderStyle, clip Rect) {
	if rect.IsEmpty() || border == BorderNone {
		return
	}
	clip = clip.Intersect(c.Rect())
	chars := border.Chars()

	left, right := rect.X, rect.Right()-1
	top, bottom := rect.Y, rect.Bottom()-1

	set := func(x, y int, r rune) {
		if clip.Contains(x, y) {
			c.SetRune(x, y, r)
		}
	}

	switch {
	case rect.Width == 1 && rect.Height == 1:
		set(left, top, chars.TopLeft)
		return
	case rect.Height == 1:
		for x := left; x <= right; x++ {
			set(x, top, chars.Top)
		}
		return
	case rect.Width == 1:
		for y := top; y <= bottom; y++ {
			set(left, y, chars.Left)
		}
		return
	}

	set(left, top, chars.TopLeft)
	set(right, top, chars.TopRight)
	set(left, bottom, chars.BottomLeft)
	set(right, bottom, chars.BottomRight)

	for x := left + 1; x < right; x++ {
		set(x, top, chars.Top)
		set(x, bottom, chars.Bottom)
	}
	for y := top + 1; y < bottom; y++ {
		set(left, y, chars.Left)
		set(right, y, chars.Right)
	}
}

// DrawBoxWithTitle draws a box and writes title into its top border, after
// the corner. The title is truncated to the border width.
func DrawBoxWithTitle(c *Canvas, rect Rect, border BorderStyle, title string, clip Rect) {
	DrawBox(c, rect, border, clip)

	available := rect.Width - 2
	if available <= 0 || title == "" {
		return
	}
	title = runewidth.Truncate(title, available, "")
	c.SetString(rect.X+1, rect.Y, title, clip.Intersect(c.Rect()))
}
