package snake

import (
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake/ctrl"
)

const foodGlyph = '*'

// glyph picks the character for a segment of a mirrored full state, where
// Top points up the screen.
func glyph(p ctrl.Part) rune {
	switch p.Kind {
	case ctrl.PartHead:
		switch p.Direction {
		case ctrl.Top:
			return '▲'
		case ctrl.Bottom:
			return '▼'
		case ctrl.Left:
			return '◀'
		default:
			return '▶'
		}
	case ctrl.PartTail:
		// Half line reaching back toward the body.
		switch p.Direction {
		case ctrl.Top:
			return '╷'
		case ctrl.Bottom:
			return '╵'
		case ctrl.Left:
			return '╶'
		default:
			return '╴'
		}
	case ctrl.PartCorner:
		switch p.Corner {
		case ctrl.TopLeft:
			return '┌'
		case ctrl.TopRight:
			return '┐'
		case ctrl.BottomLeft:
			return '└'
		default:
			return '┘'
		}
	default:
		if p.Vertical {
			return '│'
		}
		return '─'
	}
}

func partColor(p ctrl.Part) core.Color {
	if p.Kind == ctrl.PartHead {
		return core.ColorBrightGreen
	}
	return core.ColorGreen
}

// drawState draws a mirrored full state with the board's inner area
// starting at (originX, originY). Mirrored rows run from 1 to the board
// height.
func drawState(dst *core.Screen, fs ctrl.FullState, originX, originY int) {
	for _, f := range fs.Food {
		dst.SetColor(originX+int(f.X), originY+int(f.Y)-1, foodGlyph, core.ColorRed)
	}
	// Tail first so the head wins if a collision left two parts on one cell.
	for i := len(fs.Snake) - 1; i >= 0; i-- {
		p := fs.Snake[i]
		dst.SetColor(originX+int(p.Point.X), originY+int(p.Point.Y)-1, glyph(p), partColor(p))
	}
}
