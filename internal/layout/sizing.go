package layout

// Sizing specifies how a frame's size along one dimension is determined.
type Sizing uint8

const (
	SizingShrink Sizing = iota // Derived from content
	SizingExpand               // Imposed by the parent from its free space
	SizingFixed                // Set by style or by the owner
)

func (s Sizing) String() string {
	switch s {
	case SizingExpand:
		return "expand"
	case SizingFixed:
		return "fixed"
	default:
		return "shrink"
	}
}

// resolveSpace turns SpaceAuto into a concrete class for f.
func resolveSpace(f *Frame) Space {
	if f.layout.Space != SpaceAuto {
		return f.layout.Space
	}
	s := f.Container()
	switch {
	case f.parent == nil:
		return SpaceBoard
	case s == nil, !f.Flow():
		return SpaceBlock
	case f.parent.length == DimX:
		return SpaceSpace
	default:
		return SpaceDiv
	}
}

// sizingFor derives the per-dimension sizing of a frame from its space class.
// Dimensions with a fixed style size are always SizingFixed.
func sizingFor(space Space, parentLength Dim, size DimFloat) [2]Sizing {
	var sizing [2]Sizing
	switch space {
	case SpaceBoard, SpaceSpace:
		sizing = [2]Sizing{SizingExpand, SizingExpand}
	case SpaceDiv:
		sizing[parentLength] = SizingShrink
		sizing[parentLength.Other()] = SizingExpand
	default:
		sizing = [2]Sizing{SizingShrink, SizingShrink}
	}
	for _, d := range []Dim{DimX, DimY} {
		if size[d] > 0 {
			sizing[d] = SizingFixed
		}
	}
	return sizing
}
