// Package ctrl is the snake simulation core: board, snake body, food placement,
// movement and collision rules, and the per-segment view used for rendering.
// It performs no I/O and has no dependency on the terminal platform.
package ctrl

// Direction is one of the four cardinal directions.
// Top increases Y and Bottom decreases it.
type Direction uint8

const (
	Top Direction = iota
	Right
	Bottom
	Left
)

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Top:
		return Bottom
	case Right:
		return Left
	case Bottom:
		return Top
	default:
		return Right
	}
}

// IsVertical reports whether d moves along the Y axis.
func (d Direction) IsVertical() bool {
	return d == Top || d == Bottom
}

// IsHorizontal reports whether d moves along the X axis.
func (d Direction) IsHorizontal() bool {
	return !d.IsVertical()
}

// delta returns the signed (dx, dy) step for d.
func (d Direction) delta() (dx, dy int) {
	switch d {
	case Top:
		return 0, 1
	case Right:
		return 1, 0
	case Bottom:
		return 0, -1
	default:
		return -1, 0
	}
}

func (d Direction) String() string {
	switch d {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}
