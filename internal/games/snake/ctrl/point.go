package ctrl

import "fmt"

// Point is a cell on the board. Both coordinates lie in [0, dimension).
type Point struct {
	X, Y uint16
}

// P is a convenience constructor for Point.
func P(x, y uint16) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// IsNear reports whether p and o differ by exactly one cell on exactly one axis.
func (p Point) IsNear(o Point) bool {
	if p.X == o.X {
		return absDiff(p.Y, o.Y) == 1
	}
	if p.Y == o.Y {
		return absDiff(p.X, o.X) == 1
	}
	return false
}

// OffsetFromNear returns the direction pointing from o to p.
// The points must share a row or a column; otherwise ok is false.
func (p Point) OffsetFromNear(o Point) (d Direction, ok bool) {
	switch {
	case p.X == o.X:
		if p.Y < o.Y {
			return Bottom, true
		}
		return Top, true
	case p.Y == o.Y:
		if p.X < o.X {
			return Left, true
		}
		return Right, true
	}
	return Top, false
}

// ReverseY mirrors the row coordinate: y' = dimY - y.
// Applying it twice with the same dimY restores the point.
func (p Point) ReverseY(dimY uint16) Point {
	return Point{X: p.X, Y: dimY - p.Y}
}

func absDiff(a, b uint16) uint16 {
	if a > b {
		return a - b
	}
	return b - a
}
