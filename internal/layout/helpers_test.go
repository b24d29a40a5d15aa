package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// tolerance is used when comparing geometry produced by span divisions.
var approx = cmpopts.EquateApprox(0, 1e-9)

func leaf(name string, w, h float64, opts ...Option) *Frame {
	return NewFrame(append([]Option{WithName(name), WithSize(w, h)}, opts...)...)
}

func hstripe(name string, w, h float64, opts ...Option) *Stripe {
	return NewStripe(append([]Option{WithName(name), WithLayoutDim(DimX), WithSize(w, h)}, opts...)...)
}

func vstripe(name string, w, h float64, opts ...Option) *Stripe {
	return NewStripe(append([]Option{WithName(name), WithLayoutDim(DimY), WithSize(w, h)}, opts...)...)
}

func appendAll(s *Stripe, frames ...*Frame) {
	for _, f := range frames {
		s.Append(f)
	}
}

func positionsAlong(frames []*Frame, d Dim) []float64 {
	out := make([]float64, len(frames))
	for i, f := range frames {
		out[i] = f.Position()[d]
	}
	return out
}

func sizesAlong(frames []*Frame, d Dim) []float64 {
	out := make([]float64, len(frames))
	for i, f := range frames {
		out[i] = f.Size()[d]
	}
	return out
}

func names(frames []*Frame) []string {
	out := make([]string, len(frames))
	for i, f := range frames {
		out[i] = f.Name()
	}
	return out
}

func mustCheck(t *testing.T, root *Frame) {
	t.Helper()
	if err := Check(root); err != nil {
		t.Fatalf("Check() error = %v", err)
	}
}

func assertFloats(t *testing.T, what string, want, got []float64) {
	t.Helper()
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("%s mismatch (-want +got):\n%s", what, diff)
	}
}

// snapshot records the geometry of every frame below root, keyed by name.
func snapshot(root *Frame) map[string]Rect {
	out := map[string]Rect{}
	Walk(root, func(f *Frame, _ int) bool {
		out[f.Name()] = f.Rect()
		return true
	})
	return out
}
