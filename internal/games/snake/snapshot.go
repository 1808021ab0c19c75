package snake

import (
	"github.com/vovakirdan/tui-snake/internal/games/snake/ctrl"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
	StateConfigError GameStateType = "config_error"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick       uint64 // Platform frames stepped
	Moves      int    // Snake moves performed
	Score      int
	Best       uint64
	SnakeLen   int
	Head       ctrl.Point
	Dir        ctrl.Direction
	Food       []ctrl.Point
	IntervalMS int64
	State      GameStateType
	EndReason  string
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:      g.tick,
		Moves:     g.moves,
		Score:     g.score,
		State:     g.stateType(),
		EndReason: g.endReason,
	}
	if g.rec != nil {
		snap.Best = g.rec.Best()
	}
	if g.pacer != nil {
		snap.IntervalMS = g.pacer.Interval().Milliseconds()
	}
	if g.ctrl != nil {
		st := g.ctrl.State()
		snap.SnakeLen = len(st.Snake)
		if len(st.Snake) > 0 {
			snap.Head = st.Snake[0]
		}
		snap.Dir = g.ctrl.CurrentDirection()
		snap.Food = st.Food
	}
	return snap
}

func (g *Game) stateType() GameStateType {
	switch {
	case g.cfgErr != nil:
		return StateConfigError
	case g.tooSmall:
		return StatePausedSmall
	case g.gameOver:
		return StateGameOver
	case g.pacer != nil && g.pacer.Paused():
		return StatePaused
	default:
		return StatePlaying
	}
}
