package layout

// Point represents an (X, Y) coordinate.
type Point struct {
	X, Y float64
}

// Add returns a new Point offset by other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Dim returns the coordinate along d.
func (p Point) Dim(d Dim) float64 {
	if d == DimX {
		return p.X
	}
	return p.Y
}
