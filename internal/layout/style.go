package layout

// Flow specifies whether a frame takes part in its parent's sequence.
type Flow uint8

const (
	FlowFlow    Flow = iota // Sequenced along the parent's length
	FlowOverlay             // Laid over the parent, sized but not sequenced
	FlowFree                // Positioned by its owner, sized but not sequenced
)

// Clipping specifies whether a container bounds the drawing of its children.
// Hit tests never reach children outside their container.
type Clipping uint8

const (
	Clip   Clipping = iota // Children outside the bounds are cut
	NoClip                 // Children may overflow the bounds
)

// Opacity specifies how a frame answers opaque hit tests.
type Opacity uint8

const (
	Opaque Opacity = iota // Answers hit tests
	Void                  // Skipped with its children by opaque hit tests
	Hollow                // Only its children answer opaque hit tests
)

// Space classifies how a frame consumes the space of its parent.
type Space uint8

const (
	SpaceAuto  Space = iota // Resolved from the frame's position in the tree
	SpaceBoard              // Expands on both axes
	SpaceBlock              // Shrinks to content on both axes
	SpaceSpace              // Expands on both axes inside a horizontal parent
	SpaceDiv                // Shrinks along the parent's length, expands across it
)

func (s Space) String() string {
	switch s {
	case SpaceBoard:
		return "board"
	case SpaceBlock:
		return "block"
	case SpaceSpace:
		return "space"
	case SpaceDiv:
		return "div"
	default:
		return "auto"
	}
}

// Pivot specifies the order in which a sequence is laid out along a dimension.
type Pivot uint8

const (
	Forward Pivot = iota // First child at the leading edge
	Reverse              // First child at the trailing edge
)

// Weight specifies how a container dispatches its weight table.
type Weight uint8

const (
	WeightNone  Weight = iota // Weights are ignored
	WeightList                // Weights override child spans once, by index
	WeightTable               // Weights set column spans of every matching row
)

// Align specifies where content sits along a dimension.
type Align uint8

const (
	AlignLeft   Align = iota // Leading edge
	AlignCenter              // Centered
	AlignRight               // Trailing edge
)

// LayoutStyle is the immutable layout snapshot a frame is laid out with.
type LayoutStyle struct {
	Flow      Flow
	Clipping  Clipping
	Opacity   Opacity
	Space     Space
	LayoutDim Dim // The length dimension when the frame is a Stripe

	Span    DimFloat // Fractional share of distributed free space
	Size    DimFloat // Fixed size per dimension, 0 = unset
	Padding BoxFloat
	Margin  DimFloat // Total margin per dimension, split evenly on both sides
	Spacing DimFloat // Space between sequenced children
	Pivot   [2]Pivot

	Weight  Weight
	Weights []float64 // Negative entries leave the matching span untouched
}

// DefaultLayoutStyle returns a flowing, clipped, opaque, vertical style.
func DefaultLayoutStyle() LayoutStyle {
	return LayoutStyle{
		Flow:      FlowFlow,
		Clipping:  Clip,
		Opacity:   Opaque,
		Space:     SpaceAuto,
		LayoutDim: DimY,
		Span:      DimFloat{1, 1},
	}
}

// InkStyle is the visual snapshot of a frame. Layout only reads alignment.
type InkStyle struct {
	Align [2]Align
}

// DefaultInkStyle aligns left horizontally and centers vertically.
func DefaultInkStyle() InkStyle {
	return InkStyle{Align: [2]Align{AlignLeft, AlignCenter}}
}
