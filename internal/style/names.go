package style

import (
	"strings"

	"github.com/grindlemire/go-stripe/internal/errors"
	"github.com/grindlemire/go-stripe/internal/layout"
)

var (
	flowNames = map[string]layout.Flow{
		"flow":    layout.FlowFlow,
		"overlay": layout.FlowOverlay,
		"free":    layout.FlowFree,
	}
	clippingNames = map[string]layout.Clipping{
		"clip":   layout.Clip,
		"noclip": layout.NoClip,
	}
	opacityNames = map[string]layout.Opacity{
		"opaque": layout.Opaque,
		"void":   layout.Void,
		"hollow": layout.Hollow,
	}
	spaceNames = map[string]layout.Space{
		"auto":  layout.SpaceAuto,
		"board": layout.SpaceBoard,
		"block": layout.SpaceBlock,
		"space": layout.SpaceSpace,
		"div":   layout.SpaceDiv,
	}
	dimNames = map[string]layout.Dim{
		"x": layout.DimX,
		"y": layout.DimY,
	}
	pivotNames = map[string]layout.Pivot{
		"forward": layout.Forward,
		"reverse": layout.Reverse,
	}
	weightNames = map[string]layout.Weight{
		"none":  layout.WeightNone,
		"list":  layout.WeightList,
		"table": layout.WeightTable,
	}
	alignNames = map[string]layout.Align{
		"left":   layout.AlignLeft,
		"center": layout.AlignCenter,
		"right":  layout.AlignRight,
	}
)

// lookup resolves a case-insensitive enum name for attribute attr.
func lookup[T any](names map[string]T, attr, name string) (T, error) {
	v, ok := names[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		var zero T
		return zero, errors.New(errors.ErrCodeInvalidStyle, "%s: unknown value %q", attr, name)
	}
	return v, nil
}
