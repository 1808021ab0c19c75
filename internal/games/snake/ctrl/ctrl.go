package ctrl

// initialDirection is the travel direction at start and after every restart.
const initialDirection = Right

// State is a raw snapshot of the board.
type State struct {
	Snake         []Point // head first
	Food          []Point
	HeadDirection Direction
	TailDirection Direction
}

// Ctrl is the public facade of the simulation. It buffers direction changes
// and applies them to the board one tick at a time.
//
// Ctrl is not safe for concurrent use. A renderer on another goroutine must
// work from the copies returned by the query methods.
type Ctrl struct {
	opts Options
	// nextDirection is buffered by DirectionTo; currentDirection is the one
	// the last tick actually moved in and the one the head is drawn with.
	nextDirection    Direction
	currentDirection Direction
	board            *Board
}

// New creates a session. It fails with ErrInitSnakeSizeIsBig when the
// initial snake does not fit on the board.
func New(opts Options) (*Ctrl, error) {
	opts = opts.normalized()
	board, err := NewBoard(opts)
	if err != nil {
		return nil, err
	}
	return &Ctrl{
		opts:             opts,
		nextDirection:    initialDirection,
		currentDirection: initialDirection,
		board:            board,
	}, nil
}

// DirectionTo buffers d for the next tick. The exact reverse of the current
// direction is ignored, or rejected with ErrSnakeAteItself when FailOnRevert
// is set. Rejected requests leave the buffer untouched.
func (c *Ctrl) DirectionTo(d Direction) error {
	if d == c.currentDirection.Opposite() {
		if c.opts.FailOnRevert {
			return ErrSnakeAteItself
		}
		return nil
	}
	c.nextDirection = d
	return nil
}

// NextTick applies the buffered direction and moves the snake one cell.
// It reports whether food was eaten. Board errors are returned unchanged.
func (c *Ctrl) NextTick() (bool, error) {
	c.currentDirection = c.nextDirection
	return c.board.MoveSnake(c.currentDirection)
}

// Restart returns to the initial layout and direction.
func (c *Ctrl) Restart() error {
	c.nextDirection = initialDirection
	c.currentDirection = initialDirection
	return c.board.Restart()
}

// CurrentDirection returns the direction used by the most recent tick.
func (c *Ctrl) CurrentDirection() Direction {
	return c.currentDirection
}

// NextDirection returns the buffered direction for the upcoming tick.
func (c *Ctrl) NextDirection() Direction {
	return c.nextDirection
}

// Options returns the normalized session options.
func (c *Ctrl) Options() Options {
	return c.opts
}

// Len returns the snake length.
func (c *Ctrl) Len() int {
	return c.board.Len()
}

// State returns raw snake and food positions.
func (c *Ctrl) State() State {
	snake := c.board.Snake()
	tail := c.currentDirection
	if n := len(snake); n >= 2 {
		tail = tailDirection(snake[n-1], snake[n-2])
	}
	return State{
		Snake:         snake,
		Food:          c.board.Food(),
		HeadDirection: c.currentDirection,
		TailDirection: tail,
	}
}

// StateReversedY is State with every row mirrored as y' = DimensionY - y.
func (c *Ctrl) StateReversedY() State {
	s := c.State()
	dimY := c.opts.DimensionY
	for i := range s.Snake {
		s.Snake[i] = s.Snake[i].ReverseY(dimY)
	}
	for i := range s.Food {
		s.Food[i] = s.Food[i].ReverseY(dimY)
	}
	return s
}

// FullState returns the classified per-segment view.
func (c *Ctrl) FullState() FullState {
	return calcFullState(c.board.Snake(), c.board.food, c.currentDirection, c.opts.DimensionY, false)
}

// FullStateReversedY is FullState mirrored for renderers whose Y axis grows downward.
func (c *Ctrl) FullStateReversedY() FullState {
	return calcFullState(c.board.Snake(), c.board.food, c.currentDirection, c.opts.DimensionY, true)
}

// Matrix returns a dense DimensionX x DimensionY grid of the board.
func (c *Ctrl) Matrix() Matrix {
	return c.board.Matrix()
}
