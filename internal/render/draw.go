package render

import (
	"math"

	"github.com/grindlemire/go-stripe/internal/layout"
)

// Options controls how a frame tree is drawn.
type Options struct {
	// ScaleX and ScaleY convert layout units to cells. Zero means 1.
	ScaleX, ScaleY float64
	// Border is the outline style of every frame.
	Border BorderStyle
	// Labels writes each frame name into its top border.
	Labels bool
}

func (o Options) scale() (float64, float64) {
	sx, sy := o.ScaleX, o.ScaleY
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	return sx, sy
}

// Cells converts a rectangle in root coordinates to canvas cells. Edges are
// rounded independently so that adjacent frames share their border column.
func (o Options) Cells(r layout.Rect) Rect {
	sx, sy := o.scale()
	x := int(math.Round(r.X * sx))
	y := int(math.Round(r.Y * sy))
	right := int(math.Round(r.Right() * sx))
	bottom := int(math.Round(r.Bottom() * sy))
	return NewRect(x, y, right-x, bottom-y)
}

// CanvasFor returns a canvas just large enough for root.
func CanvasFor(root *layout.Frame, opts Options) *Canvas {
	r := opts.Cells(root.AbsoluteRect())
	return NewCanvas(r.Right(), r.Bottom())
}

// Draw outlines root and every visible frame below it. Hidden frames are
// skipped with their subtree. Children of a clipping container are cut
// to its bounds.
func Draw(c *Canvas, root *layout.Frame, opts Options) {
	if root == nil {
		return
	}
	draw(c, root, opts, c.Rect())
}

func draw(c *Canvas, f *layout.Frame, opts Options, clip Rect) {
	if !f.Visible() {
		return
	}
	rect := opts.Cells(f.AbsoluteRect())
	if opts.Labels {
		DrawBoxWithTitle(c, rect, opts.Border, f.Name(), clip)
	} else {
		DrawBox(c, rect, opts.Border, clip)
	}

	s := f.Container()
	if s == nil {
		return
	}
	if f.Style().Clipping == layout.Clip {
		clip = clip.Intersect(rect)
	}
	for _, child := range s.Contents() {
		draw(c, child, opts, clip)
	}
}
