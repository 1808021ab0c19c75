package ctrl

// PartKind classifies a snake segment for rendering.
type PartKind uint8

const (
	PartHead PartKind = iota
	PartTail
	PartBody
	PartCorner
)

func (k PartKind) String() string {
	switch k {
	case PartHead:
		return "head"
	case PartTail:
		return "tail"
	case PartBody:
		return "body"
	case PartCorner:
		return "corner"
	default:
		return "unknown"
	}
}

// Corner is the orientation of a turning segment.
type Corner uint8

const (
	TopLeft Corner = iota
	TopRight
	BottomLeft
	BottomRight
)

// ReverseY swaps top and bottom.
func (c Corner) ReverseY() Corner {
	switch c {
	case TopLeft:
		return BottomLeft
	case TopRight:
		return BottomRight
	case BottomLeft:
		return TopLeft
	default:
		return TopRight
	}
}

func (c Corner) String() string {
	switch c {
	case TopLeft:
		return "top-left"
	case TopRight:
		return "top-right"
	case BottomLeft:
		return "bottom-left"
	case BottomRight:
		return "bottom-right"
	default:
		return "unknown"
	}
}

// Part is one classified snake segment.
// Direction is set for heads and tails, Vertical for straight bodies,
// Corner for turns.
type Part struct {
	Point     Point
	Kind      PartKind
	Direction Direction
	Vertical  bool
	Corner    Corner
}

// FullState is the rendering view of the board.
type FullState struct {
	Snake     []Part
	Food      []Point
	Direction Direction
}

// calcFullState classifies every segment of snake (head first). The head takes
// the travel direction dir rather than a geometric one, so it stays correct
// right after a wrap. With reverseY every point is mirrored as y' = dimY - y
// and corner orientations swap top and bottom.
//
// snake must be non-empty.
func calcFullState(snake, food []Point, dir Direction, dimY uint16, reverseY bool) FullState {
	last := len(snake) - 1
	parts := make([]Part, 0, len(snake))

	for i, curr := range snake {
		switch {
		case i == 0:
			parts = append(parts, Part{Point: curr, Kind: PartHead, Direction: dir})
		case i == last:
			parts = append(parts, Part{Point: curr, Kind: PartTail, Direction: tailDirection(curr, snake[i-1])})
		default:
			parts = append(parts, bodyPart(snake[i+1], curr, snake[i-1]))
		}
	}

	f := make([]Point, len(food))
	copy(f, food)

	// Food is mirrored only together with the snake: FullState() keeps food in
	// board coordinates instead of always flipping it.
	if reverseY {
		for i := range parts {
			parts[i].Point = parts[i].Point.ReverseY(dimY)
			if parts[i].Kind == PartCorner {
				parts[i].Corner = parts[i].Corner.ReverseY()
			}
		}
		for i := range f {
			f[i] = f[i].ReverseY(dimY)
		}
	}

	return FullState{Snake: parts, Food: f, Direction: dir}
}

// tailDirection points from the pre-tail segment to the tail. When the two are
// split across a wrap the geometric offset is backwards and gets flipped.
func tailDirection(tail, preTail Point) Direction {
	d, _ := tail.OffsetFromNear(preTail)
	if !preTail.IsNear(tail) {
		d = d.Opposite()
	}
	return d
}

// bodyPart classifies curr given its tail-side neighbour prev and head-side
// neighbour next.
func bodyPart(prev, curr, next Point) Part {
	in, _ := curr.OffsetFromNear(prev)
	out, _ := next.OffsetFromNear(curr)

	if in == out || in == out.Opposite() {
		return Part{Point: curr, Kind: PartBody, Vertical: in.IsVertical()}
	}

	if !next.IsNear(curr) {
		out = out.Opposite()
	}
	if !prev.IsNear(curr) {
		in = in.Opposite()
	}

	return Part{Point: curr, Kind: PartCorner, Corner: cornerFor(in, out)}
}

func cornerFor(in, out Direction) Corner {
	switch in {
	case Top:
		if out == Right {
			return BottomLeft
		}
		return BottomRight
	case Bottom:
		if out == Right {
			return TopLeft
		}
		return TopRight
	case Left:
		if out == Top {
			return TopLeft
		}
		return BottomLeft
	default:
		if out == Top {
			return TopRight
		}
		return BottomRight
	}
}
