package ctrl

import (
	"github.com/gammazero/deque"
)

// Board owns the snake and the food for one session and applies movement steps.
type Board struct {
	opts Options
	dimX uint16
	dimY uint16

	snake deque.Deque[Point] // head at the front, tail at the back
	food  []Point
}

// NewBoard lays out the initial snake and, when enabled, the first food.
func NewBoard(opts Options) (*Board, error) {
	opts = opts.normalized()
	b := &Board{
		opts: opts,
		dimX: opts.DimensionX,
		dimY: opts.DimensionY,
	}
	if err := b.Restart(); err != nil {
		return nil, err
	}
	return b, nil
}

// Restart rebuilds the deterministic initial layout and clears all food.
func (b *Board) Restart() error {
	if err := b.createSnake(); err != nil {
		return err
	}
	b.food = make([]Point, 0, 1)
	if b.opts.AutoGenFood {
		b.GenerateFood()
	}
	return nil
}

// createSnake places InitialSnakeSize cells on the center row,
// head at the center and the body extending to the left.
func (b *Board) createSnake() error {
	center := centerOf(b.dimX, b.dimY)
	size := b.opts.InitialSnakeSize
	if center.X < size || b.dimY == 0 {
		return ErrInitSnakeSizeIsBig
	}

	b.snake.Clear()
	b.snake.Grow(int(size))
	for i := range size {
		b.snake.PushBack(Point{X: center.X - i, Y: center.Y})
	}
	return nil
}

// MoveSnake advances the snake one cell in direction d and reports whether it ate.
//
// On ErrSnakeHitTheWall the tail has already been dropped and no head was added,
// so the snake is one cell shorter. On ErrSnakeAteItself the fatal head is in place.
// Both states are left as they are for the caller to render.
func (b *Board) MoveSnake(d Direction) (bool, error) {
	if b.snake.Len() == 0 {
		return false, ErrSnakeIsZero
	}
	tail := b.snake.PopBack()
	if b.snake.Len() == 0 {
		return false, ErrSnakeIsZero
	}

	head := b.snake.Front()
	dx, dy := d.delta()
	newHead, err := b.teleportIfNeeded(int(head.X)+dx, int(head.Y)+dy)
	if err != nil {
		return false, err
	}

	b.snake.PushFront(newHead)
	if b.ateItself() {
		return false, ErrSnakeAteItself
	}

	if !containsPoint(b.food, newHead) {
		return false, nil
	}

	b.snake.PushBack(tail)
	b.food = clearEaten(b.food, newHead)
	if b.opts.AutoGenFood {
		b.GenerateFood()
	}
	return true, nil
}

// teleportIfNeeded applies the wall policy to an unnormalized head position.
// Only one axis changes per step, so at most one branch can match.
func (b *Board) teleportIfNeeded(x, y int) (Point, error) {
	maxX := int(b.dimX) - 1
	maxY := int(b.dimY) - 1

	var p Point
	switch {
	case x < 0:
		p = Point{X: uint16(maxX), Y: uint16(y)}
	case y < 0:
		p = Point{X: uint16(x), Y: uint16(maxY)}
	case x > maxX:
		p = Point{X: 0, Y: uint16(y)}
	case y > maxY:
		p = Point{X: uint16(x), Y: 0}
	default:
		return Point{X: uint16(x), Y: uint16(y)}, nil
	}

	if !b.opts.WalkingThroughTheWalls {
		return Point{}, ErrSnakeHitTheWall
	}
	return p, nil
}

// ateItself reports whether the head coincides with any other segment.
func (b *Board) ateItself() bool {
	head := b.snake.Front()
	for i := 1; i < b.snake.Len(); i++ {
		if b.snake.At(i) == head {
			return true
		}
	}
	return false
}

// GenerateFood adds one food point on a free cell.
// It returns false and adds nothing when the board is full.
func (b *Board) GenerateFood() bool {
	p, ok := generateFood(b.opts.Rand, b.dimX, b.dimY, b.Snake(), b.food)
	if !ok {
		return false
	}
	b.food = append(b.food, p)
	return true
}

// Len returns the number of snake segments.
func (b *Board) Len() int {
	return b.snake.Len()
}

// Snake returns a copy of the snake, head first.
func (b *Board) Snake() []Point {
	out := make([]Point, b.snake.Len())
	for i := range out {
		out[i] = b.snake.At(i)
	}
	return out
}

// Food returns a copy of the food points.
func (b *Board) Food() []Point {
	out := make([]Point, len(b.food))
	copy(out, b.food)
	return out
}

// Matrix renders the board into a dense grid.
func (b *Board) Matrix() Matrix {
	m := NewMatrix(b.dimX, b.dimY)
	m.addSnake(b.Snake())
	m.addFood(b.food)
	return m
}

func centerOf(dimX, dimY uint16) Point {
	return Point{X: dimX / 2, Y: dimY / 2}
}
