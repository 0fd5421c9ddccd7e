package pitch

// StatsBomb-style pitch dimensions. All event coordinates in the
// extracts use this frame regardless of the real venue size.
const (
	Length = 120.0
	Width  = 80.0
)

// Point is a position on the pitch, x along the length, y along the width.
type Point struct {
	X float64
	Y float64
}

// Inside reports whether the point lies within the pitch rectangle.
// Out-of-range points are data-quality faults, not schema errors.
func (p Point) Inside() bool {
	return p.X >= 0 && p.X <= Length && p.Y >= 0 && p.Y <= Width
}
