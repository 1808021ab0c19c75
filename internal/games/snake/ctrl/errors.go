package ctrl

import (
	"errors"
	"fmt"
)

var (
	// ErrSnakeAteItself is returned when the head lands on the body, and when a
	// reversal is requested while Options.FailOnRevert is set.
	ErrSnakeAteItself = errors.New("the snake ate itself")

	// ErrSnakeHitTheWall is returned when the head leaves the board and wrapping is off.
	ErrSnakeHitTheWall = errors.New("the snake hit the wall")

	// ErrInitSnakeSizeIsBig is returned when the initial snake does not fit left of center.
	ErrInitSnakeSizeIsBig = errors.New("initial snake size is more than possible")

	// ErrSnakeIsZero signals a broken invariant: an operation ran on an empty snake.
	// Callers should treat it as a programming error, not as a game outcome.
	ErrSnakeIsZero = errors.New("something is really wrong, snake size is zero")

	// ErrRowIndexOutOfBounds is returned by Matrix.Cell for a y outside the board.
	ErrRowIndexOutOfBounds = errors.New("row index is out of bounds")

	// ErrColumnIndexOutOfBounds is returned by Matrix.Cell for an x outside the board.
	ErrColumnIndexOutOfBounds = errors.New("column index is out of bounds")
)

// Axis names the matrix dimension an IndexError refers to.
type Axis string

const (
	AxisRow    Axis = "row"
	AxisColumn Axis = "column"
)

// IndexError reports an out-of-range row or column index.
type IndexError struct {
	Axis  Axis
	Index int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s index (%d) is out of bounds", e.Axis, e.Index)
}

// Unwrap lets errors.Is match ErrRowIndexOutOfBounds or ErrColumnIndexOutOfBounds.
func (e *IndexError) Unwrap() error {
	if e.Axis == AxisRow {
		return ErrRowIndexOutOfBounds
	}
	return ErrColumnIndexOutOfBounds
}

// IsGameOver reports whether err is a normal end-of-run outcome
// (self collision or wall hit) rather than a configuration or internal error.
func IsGameOver(err error) bool {
	return errors.Is(err, ErrSnakeAteItself) || errors.Is(err, ErrSnakeHitTheWall)
}
