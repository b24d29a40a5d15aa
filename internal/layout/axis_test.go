package layout

import "testing"

func TestDim_Other(t *testing.T) {
	if DimX.Other() != DimY {
		t.Errorf("DimX.Other() = %v, want y", DimX.Other())
	}
	if DimY.Other() != DimX {
		t.Errorf("DimY.Other() = %v, want x", DimY.Other())
	}
}

func TestStripe_ResolvesAxes(t *testing.T) {
	type tc struct {
		layoutDim Dim
		primary   Dim
		cross     Dim
	}

	tests := map[string]tc{
		"row":    {layoutDim: DimX, primary: DimX, cross: DimY},
		"column": {layoutDim: DimY, primary: DimY, cross: DimX},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := NewStripe(WithLayoutDim(tt.layoutDim))
			if got := s.Dim(Primary); got != tt.primary {
				t.Errorf("Dim(Primary) = %v, want %v", got, tt.primary)
			}
			if got := s.Dim(Cross); got != tt.cross {
				t.Errorf("Dim(Cross) = %v, want %v", got, tt.cross)
			}
			if s.Length() != tt.primary || s.Depth() != tt.cross {
				t.Errorf("Length/Depth = %v/%v, want %v/%v", s.Length(), s.Depth(), tt.primary, tt.cross)
			}
		})
	}
}

func TestBoxFloat_Edges(t *testing.T) {
	b := BoxFloat{1, 2, 3, 4}

	if b.Start(DimX) != 1 || b.End(DimX) != 3 || b.Sum(DimX) != 4 {
		t.Errorf("x edges = %v/%v/%v, want 1/3/4", b.Start(DimX), b.End(DimX), b.Sum(DimX))
	}
	if b.Start(DimY) != 2 || b.End(DimY) != 4 || b.Sum(DimY) != 6 {
		t.Errorf("y edges = %v/%v/%v, want 2/4/6", b.Start(DimY), b.End(DimY), b.Sum(DimY))
	}
	if BoxAll(5) != (BoxFloat{5, 5, 5, 5}) {
		t.Errorf("BoxAll(5) = %v", BoxAll(5))
	}
}

func TestPoint_Arithmetic(t *testing.T) {
	p := Point{X: 3, Y: 4}.Add(Point{X: -1, Y: 1})
	if p != (Point{X: 2, Y: 5}) {
		t.Errorf("Add() = %+v, want {2 5}", p)
	}
	if p.Dim(DimX) != 2 || p.Dim(DimY) != 5 {
		t.Errorf("Dim() = %v/%v, want 2/5", p.Dim(DimX), p.Dim(DimY))
	}
}
