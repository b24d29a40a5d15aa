package layout

import "testing"

func pinpointRow(opts ...Option) (*Stripe, []*Frame) {
	root := hstripe("root", 300, 100, append([]Option{WithSpacing(10, 0)}, opts...)...)
	children := []*Frame{leaf("a", 50, 20), leaf("b", 50, 20), leaf("c", 50, 20)}
	appendAll(root, children...)
	NextFrame(&root.Frame)
	return root, children
}

func nameOf(f *Frame) string {
	if f == nil {
		return "<nil>"
	}
	return f.Name()
}

func TestPinpoint(t *testing.T) {
	type tc struct {
		x, y   float64
		opaque bool
		want   string
	}

	tests := map[string]tc{
		"first child":     {x: 10, y: 50, want: "a"},
		"last child edge": {x: 120, y: 40, want: "c"},
		"between":         {x: 55, y: 50, want: "root"},
		"above children":  {x: 10, y: 10, want: "root"},
		"outside":         {x: 400, y: 50, want: "<nil>"},
		"opaque child":    {x: 70, y: 50, opaque: true, want: "b"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			root, _ := pinpointRow()
			if got := nameOf(root.Pinpoint(tt.x, tt.y, tt.opaque)); got != tt.want {
				t.Errorf("Pinpoint(%v, %v) = %s, want %s", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestPinpoint_LaterFramesWin(t *testing.T) {
	root, _ := pinpointRow()
	root.Append(leaf("over", 300, 100, WithFlow(FlowOverlay)))

	if got := nameOf(root.Pinpoint(10, 50, false)); got != "over" {
		t.Errorf("Pinpoint() = %s, want over", got)
	}
}

func TestPinpoint_SkipsLayer3D(t *testing.T) {
	root, _ := pinpointRow()
	root.Append(&NewLayer3D(WithName("scene"), WithFlow(FlowOverlay), WithSize(300, 100)).Frame)

	if got := nameOf(root.Pinpoint(10, 50, false)); got != "a" {
		t.Errorf("Pinpoint() = %s, want a", got)
	}
}

func TestPinpoint_SkipsInvisible(t *testing.T) {
	root, children := pinpointRow()
	children[0].SetVisible(false)

	if got := nameOf(root.Pinpoint(10, 50, false)); got != "root" {
		t.Errorf("Pinpoint() = %s, want root", got)
	}
}

func TestPinpoint_Opacity(t *testing.T) {
	type tc struct {
		opacity Opacity
		opaque  bool
		want    string
	}

	tests := map[string]tc{
		"void ignored by plain test": {opacity: Void, opaque: false, want: "glass"},
		"void skipped":               {opacity: Void, opaque: true, want: "a"},
		"hollow skipped":             {opacity: Hollow, opaque: true, want: "a"},
		"opaque answers":             {opacity: Opaque, opaque: true, want: "glass"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			root, _ := pinpointRow()
			root.Append(leaf("glass", 300, 100, WithFlow(FlowOverlay), WithOpacity(tt.opacity)))
			if got := nameOf(root.Pinpoint(10, 50, tt.opaque)); got != tt.want {
				t.Errorf("Pinpoint() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestPinpoint_SeeThroughContainer(t *testing.T) {
	type tc struct {
		x, y   float64
		opaque bool
		want   string
	}

	tests := map[string]tc{
		"on child":       {x: 10, y: 10, opaque: true, want: "button"},
		"on panel":       {x: 100, y: 10, opaque: true, want: "root"},
		"plain on panel": {x: 100, y: 10, want: "panel"},
	}

	for kind, opacity := range map[string]Opacity{"hollow": Hollow, "void": Void} {
		for name, tt := range tests {
			t.Run(kind+"/"+name, func(t *testing.T) {
				root := vstripe("root", 200, 200, WithAlign(AlignLeft, AlignLeft))
				panel := NewStripe(WithName("panel"), WithLayoutDim(DimX), WithOpacity(opacity))
				panel.Append(leaf("button", 40, 30))
				root.Append(&panel.Frame)
				NextFrame(&root.Frame)

				if got := nameOf(root.Pinpoint(tt.x, tt.y, tt.opaque)); got != tt.want {
					t.Errorf("Pinpoint(%v, %v) = %s, want %s", tt.x, tt.y, got, tt.want)
				}
			})
		}
	}
}

func TestPinpoint_NestedCoordinates(t *testing.T) {
	root := vstripe("root", 200, 200, WithPadding(BoxAll(10)), WithAlign(AlignLeft, AlignLeft))
	row := NewStripe(WithName("row"), WithLayoutDim(DimX))
	appendAll(row, leaf("first", 40, 30), leaf("second", 40, 30))
	root.Append(&row.Frame)
	NextFrame(&root.Frame)

	second := row.Sequence()[1]
	if got := second.Absolute(); got != (Point{X: 50, Y: 10}) {
		t.Fatalf("Absolute() = %+v, want {50 10}", got)
	}
	if got := second.AbsoluteRect(); got != NewRect(50, 10, 40, 30) {
		t.Errorf("AbsoluteRect() = %+v, want {50 10 40 30}", got)
	}
	if got := nameOf(root.Pinpoint(55, 15, false)); got != "second" {
		t.Errorf("Pinpoint() = %s, want second", got)
	}
}

func TestPinpoint_Clipping(t *testing.T) {
	type tc struct {
		clipping Clipping
		want     string
	}

	tests := map[string]tc{
		"clip":    {clipping: Clip, want: "<nil>"},
		"no clip": {clipping: NoClip, want: "<nil>"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			root := hstripe("root", 100, 100, WithClipping(tt.clipping))
			appendAll(root, leaf("a", 50, 20), leaf("b", 50, 20), leaf("c", 50, 20))
			NextFrame(&root.Frame)

			if got := nameOf(root.Pinpoint(120, 50, false)); got != tt.want {
				t.Errorf("Pinpoint() = %s, want %s", got, tt.want)
			}
		})
	}
}
