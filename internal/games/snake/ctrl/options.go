package ctrl

import (
	"math/rand"
	"time"
)

// MinSnakeSize is the smallest initial snake. Smaller requests are raised to it.
const MinSnakeSize = 3

// Options configures a session. The value is copied into the controller and the
// board at construction and never changes afterwards.
type Options struct {
	DimensionX             uint16
	DimensionY             uint16
	InitialSnakeSize       uint16
	WalkingThroughTheWalls bool // wrap to the opposite edge instead of dying
	FailOnRevert           bool // reversal is an error instead of being ignored
	AutoGenFood            bool // spawn food at start and after every meal

	// Rand is the source for food placement. Nil means a time-seeded source.
	Rand *rand.Rand
}

// DefaultOptions returns a 7x7 board with a 3-cell snake, wrapping walls,
// silently ignored reversals and automatic food.
func DefaultOptions() Options {
	return Options{
		DimensionX:             7,
		DimensionY:             7,
		InitialSnakeSize:       MinSnakeSize,
		WalkingThroughTheWalls: true,
		FailOnRevert:           false,
		AutoGenFood:            true,
	}
}

func (o Options) normalized() Options {
	if o.InitialSnakeSize < MinSnakeSize {
		o.InitialSnakeSize = MinSnakeSize
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return o
}
