package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.cfgErr != nil {
		g.renderOverlay(dst, "Configuration error", g.cfgErr.Error())
		return
	}

	g.renderHUD(dst)

	if g.tooSmall {
		need := fmt.Sprintf("Need %dx%d", g.cfg.Board.Width+2, g.cfg.Board.Height+2+hudHeight)
		g.renderOverlay(dst, "Window too small", need)
		return
	}

	frame := g.boardRect(dst)
	dst.DrawBox(frame, core.ColorGreen)
	inner := frame.Inner()
	drawState(dst, g.ctrl.FullStateReversedY(), inner.X, inner.Y)

	switch {
	case g.gameOver:
		g.renderOverlay(dst, g.gameOverTitle(), "Press R to restart")
	case g.pacer.Paused():
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// boardRect returns the board frame, centered horizontally below the HUD.
func (g *Game) boardRect(dst *core.Screen) core.Rect {
	w := g.cfg.Board.Width + 2
	h := g.cfg.Board.Height + 2
	return core.NewRect((dst.Width()-w)/2, hudHeight, w, h)
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s | Score: %d  Best: %d  Speed: %dms",
		g.title, g.score, g.Best(), g.pacer.Interval().Milliseconds())
	dst.DrawText(0, 0, hud)

	if g.rec.IsRecord() {
		dst.DrawTextColor(len([]rune(hud))+2, 0, "Wow! It's a record!", core.ColorYellow)
	}

	dst.DrawHLine(0, 1, dst.Width(), '─')
}

func (g *Game) gameOverTitle() string {
	switch g.endReason {
	case core.EndReasonWall:
		return "Game over: hit the wall"
	case core.EndReasonSelf:
		return "Game over: ate itself"
	case core.EndReasonRevert:
		return "Game over: reversed"
	default:
		return "Game over :("
	}
}

// renderOverlay draws a centered box with two lines of text.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	width := core.Clamp(max(len([]rune(line1)), len([]rune(line2)))+4, 0, dst.Width())
	box := core.CenteredRect(dst.Width(), dst.Height(), width, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)
	drawCentered(dst, box, box.Y+1, line1)
	drawCentered(dst, box, box.Y+3, line2)
}

func drawCentered(dst *core.Screen, box core.Rect, y int, text string) {
	x := core.Clamp(box.X+(box.W-len([]rune(text)))/2, box.X+1, box.Right()-1)
	dst.DrawText(x, y, text)
}
