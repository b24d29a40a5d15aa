package layout

// Dim identifies a concrete axis of the plane.
type Dim uint8

const (
	DimX Dim = iota // Horizontal
	DimY            // Vertical
)

// Other returns the perpendicular dimension.
func (d Dim) Other() Dim {
	if d == DimX {
		return DimY
	}
	return DimX
}

func (d Dim) String() string {
	if d == DimX {
		return "x"
	}
	return "y"
}

// Axis names a direction relative to a container rather than to the plane.
// A Stripe resolves Primary to its layout dimension (its length) and Cross
// to the other one (its depth).
type Axis uint8

const (
	Primary Axis = iota // Length: the axis flow children are sequenced along
	Cross               // Depth: the perpendicular axis
)

// DimFloat holds one value per dimension, indexed by Dim.
type DimFloat [2]float64

// Dims returns a DimFloat from its x and y components.
func Dims(x, y float64) DimFloat {
	return DimFloat{x, y}
}

// X returns the horizontal component.
func (v DimFloat) X() float64 { return v[DimX] }

// Y returns the vertical component.
func (v DimFloat) Y() float64 { return v[DimY] }

// BoxFloat holds four edge values ordered x0, y0, x1, y1, so that the
// leading edge of dimension d is b[d] and the trailing edge is b[d+2].
type BoxFloat [4]float64

// BoxAll returns a BoxFloat with the same value on every edge.
func BoxAll(v float64) BoxFloat {
	return BoxFloat{v, v, v, v}
}

// Start returns the leading edge value for d (left or top).
func (b BoxFloat) Start(d Dim) float64 { return b[d] }

// End returns the trailing edge value for d (right or bottom).
func (b BoxFloat) End(d Dim) float64 { return b[d+2] }

// Sum returns the leading plus trailing edge values for d.
func (b BoxFloat) Sum(d Dim) float64 { return b[d] + b[d+2] }
