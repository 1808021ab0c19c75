package snake

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake/ctrl"
)

func TestGlyph(t *testing.T) {
	tests := []struct {
		name     string
		part     ctrl.Part
		expected rune
	}{
		{"head up", ctrl.Part{Kind: ctrl.PartHead, Direction: ctrl.Top}, '▲'},
		{"head down", ctrl.Part{Kind: ctrl.PartHead, Direction: ctrl.Bottom}, '▼'},
		{"head left", ctrl.Part{Kind: ctrl.PartHead, Direction: ctrl.Left}, '◀'},
		{"head right", ctrl.Part{Kind: ctrl.PartHead, Direction: ctrl.Right}, '▶'},
		{"tail below body", ctrl.Part{Kind: ctrl.PartTail, Direction: ctrl.Bottom}, '╵'},
		{"tail above body", ctrl.Part{Kind: ctrl.PartTail, Direction: ctrl.Top}, '╷'},
		{"tail left of body", ctrl.Part{Kind: ctrl.PartTail, Direction: ctrl.Left}, '╶'},
		{"tail right of body", ctrl.Part{Kind: ctrl.PartTail, Direction: ctrl.Right}, '╴'},
		{"vertical body", ctrl.Part{Kind: ctrl.PartBody, Vertical: true}, '│'},
		{"horizontal body", ctrl.Part{Kind: ctrl.PartBody}, '─'},
		{"corner top-left", ctrl.Part{Kind: ctrl.PartCorner, Corner: ctrl.TopLeft}, '┌'},
		{"corner top-right", ctrl.Part{Kind: ctrl.PartCorner, Corner: ctrl.TopRight}, '┐'},
		{"corner bottom-left", ctrl.Part{Kind: ctrl.PartCorner, Corner: ctrl.BottomLeft}, '└'},
		{"corner bottom-right", ctrl.Part{Kind: ctrl.PartCorner, Corner: ctrl.BottomRight}, '┘'},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := glyph(tc.part); got != tc.expected {
				t.Errorf("glyph() = %q, expected %q", got, tc.expected)
			}
		})
	}
}

func TestDrawStateTurn(t *testing.T) {
	// Head moved up after travelling right: on screen the corner joins the
	// body on the left with the head above.
	opts := ctrl.DefaultOptions()
	opts.AutoGenFood = false
	c, err := ctrl.New(opts)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.DirectionTo(ctrl.Top); err != nil {
		t.Fatal(err)
	}
	if _, err := c.NextTick(); err != nil {
		t.Fatal(err)
	}

	screen := core.NewScreen(7, 7)
	drawState(screen, c.FullStateReversedY(), 0, 0)

	// Board (3,4),(3,3),(2,3) mirrors to rows 3 and 4, drawn at rows 2 and 3.
	checks := []struct {
		x, y int
		want rune
	}{
		{3, 2, '▲'},
		{3, 3, '┘'},
		{2, 3, '╶'},
	}
	for _, ck := range checks {
		if got := screen.Get(ck.x, ck.y); got != ck.want {
			t.Errorf("cell (%d,%d) = %q, expected %q\n%s", ck.x, ck.y, got, ck.want, screen.String())
		}
	}
}

func TestDrawStateFood(t *testing.T) {
	fs := ctrl.FullState{Food: []ctrl.Point{ctrl.P(2, 1)}}
	screen := core.NewScreen(5, 5)
	drawState(screen, fs, 1, 1)

	cell := screen.GetCell(3, 1)
	if cell.Rune != foodGlyph || cell.Color != core.ColorRed {
		t.Errorf("food cell = %+v, expected red %q", cell, foodGlyph)
	}
}
