package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Platform frames per second (default 60)
	Seed     int64 // RNG seed, 0 means use current time in platform layer
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// FrameDuration returns the wall-clock time covered by one platform frame.
func (c RuntimeConfig) FrameDuration() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int    // Current score
	Length    int    // Current snake length
	GameOver  bool   // Whether the run has ended
	Paused    bool   // Whether the game is paused
	EndReason string // Why the run ended, empty while playing
}

// StepResult is returned by Game.Step() after each platform frame.
type StepResult struct {
	State GameState
	Moved bool // The snake advanced during this frame
	Ate   bool // Food was eaten during this frame
}

// Reasons a run can end, reported in GameState.EndReason.
const (
	EndReasonWall   = "hit the wall"
	EndReasonSelf   = "ate itself"
	EndReasonRevert = "reversed"
	EndReasonError  = "error"
	EndReasonQuit   = "quit"
)
