// Package snake adapts the snake simulation in package ctrl to the platform's
// registry.Game interface: pacing, input, outcome handling and rendering.
package snake

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake/ctrl"
	"github.com/vovakirdan/tui-snake/internal/record"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Variant IDs.
const (
	IDWrap  = "snake"
	IDWalls = "snake_walls"
)

// hudHeight is the number of rows above the board: status line and separator.
const hudHeight = 2

// Package-level settings applied on every Reset, set by the CLI.
var (
	configPath       string
	difficultyPreset string
	sharedRecord     *record.Record
	logger           = log.Default()
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset ("" keeps the config file's values).
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetRecord installs the best-score record shared by all games. Without one
// the best score lives in memory only.
func SetRecord(r *record.Record) {
	sharedRecord = r
}

// SetLogger replaces the logger used for invariant violations and
// persistence warnings.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// Game implements the snake game.
type Game struct {
	id         string
	title      string
	fatalWalls bool

	cfg    config.SnakeConfig
	cfgErr error
	dm     *config.DifficultyManager
	ctrl   *ctrl.Ctrl
	pacer  *Pacer
	base   time.Duration // Move interval before difficulty scaling
	floor  time.Duration
	rec    *record.Record
	frame  time.Duration
	tick   uint64
	moves  int
	score  int

	gameOver  bool
	endReason string
	tooSmall  bool

	screenW int
	screenH int
}

// New creates the classic variant where walls wrap around.
func New() *Game {
	return &Game{id: IDWrap, title: "Snake"}
}

// NewWalls creates the variant where hitting a wall ends the run.
func NewWalls() *Game {
	return &Game{id: IDWalls, title: "Snake (Walls)", fatalWalls: true}
}

func init() {
	registry.Register(IDWrap, func() registry.Game {
		return New()
	})
	registry.Register(IDWalls, func() registry.Game {
		return NewWalls()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Reset loads configuration and starts a fresh run.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.tick = 0
	g.frame = rc.FrameDuration()
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.cfgErr = nil
	g.ctrl = nil

	if g.rec == nil {
		g.rec = sharedRecord
		if g.rec == nil {
			g.rec = record.Load("")
		}
	}

	cfg, preset, err := g.loadConfig()
	if err != nil {
		g.fail(err)
		return
	}
	g.cfg = cfg
	g.dm = config.NewDifficultyManager(cfg.Difficulty)
	if preset != "" {
		config.ApplyDifficultyPreset(g.dm, preset)
	}
	g.base = time.Duration(cfg.Pacing.StartIntervalMS) * time.Millisecond
	g.floor = time.Duration(cfg.Pacing.MinIntervalMS) * time.Millisecond

	seed := rc.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	c, err := ctrl.New(ctrl.Options{
		DimensionX:             uint16(cfg.Board.Width),
		DimensionY:             uint16(cfg.Board.Height),
		InitialSnakeSize:       uint16(cfg.Board.InitialSnakeSize),
		WalkingThroughTheWalls: cfg.Rules.WalkThroughWalls,
		FailOnRevert:           cfg.Rules.FailOnRevert,
		AutoGenFood:            cfg.Rules.AutoGenFood,
		Rand:                   rand.New(rand.NewSource(seed)),
	})
	if err != nil {
		g.fail(fmt.Errorf("snake: cannot create board %dx%d: %w", cfg.Board.Width, cfg.Board.Height, err))
		return
	}
	g.ctrl = c
	g.pacer = NewPacer(g.base)
	g.startRun()
	g.checkSize()
}

// loadConfig returns the board config and the preset to apply to the
// difficulty manager, or "" when no preset was requested.
func (g *Game) loadConfig() (config.SnakeConfig, config.DifficultyPreset, error) {
	cfg, err := config.LoadSnake(configPath)
	if err != nil {
		return cfg, "", err
	}
	var preset config.DifficultyPreset
	if difficultyPreset != "" {
		preset, err = config.ParsePreset(difficultyPreset)
		if err != nil {
			return cfg, "", err
		}
		config.ApplySnakePreset(&cfg, preset)
	}
	if g.fatalWalls {
		cfg.Rules.WalkThroughWalls = false
	}
	return cfg, preset, cfg.Validate()
}

func (g *Game) fail(err error) {
	g.cfgErr = err
	logger.Error("cannot start game", "game", g.id, "error", err)
}

// startRun clears per-run counters. The board itself is set up by the caller.
func (g *Game) startRun() {
	g.moves = 0
	g.score = 0
	g.gameOver = false
	g.endReason = ""
	g.rec.SetCurrent(0)
	g.pacer.Reset(g.interval())
}

// restart begins a new run on the same board configuration.
func (g *Game) restart() {
	if err := g.ctrl.Restart(); err != nil {
		g.fail(err)
		return
	}
	g.startRun()
}

func (g *Game) checkSize() {
	needW := g.cfg.Board.Width + 2
	needH := g.cfg.Board.Height + 2 + hudHeight
	g.tooSmall = g.screenW < needW || g.screenH < needH
}

// interval returns the current move interval after difficulty scaling.
func (g *Game) interval() time.Duration {
	return g.dm.Interval(g.base, g.floor, g.score, g.moves)
}

// Resize updates the screen size without restarting the run.
func (g *Game) Resize(w, h int) {
	g.screenW, g.screenH = w, h
	if g.ctrl != nil {
		g.checkSize()
	}
}

// Step advances the game by one platform frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.cfgErr != nil || g.ctrl == nil {
		return core.StepResult{State: g.State()}
	}

	if g.gameOver {
		if in.Has(core.ActionRestart) {
			g.restart()
		}
		return core.StepResult{State: g.State()}
	}

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.pacer.TogglePause()
	}
	if g.pacer.Paused() {
		return core.StepResult{State: g.State()}
	}

	if !g.applyDirections(in) {
		return core.StepResult{State: g.State()}
	}

	var res core.StepResult
	if g.pacer.Advance(g.frame) {
		res.Moved = true
		res.Ate = g.move()
	}
	res.State = g.State()
	return res
}

// applyDirections feeds direction input to the controller. It returns false
// when a reversal ended the run.
func (g *Game) applyDirections(in core.InputFrame) bool {
	for _, m := range directionKeys {
		if !in.Has(m.action) {
			continue
		}
		if err := g.ctrl.DirectionTo(m.dir); err != nil {
			g.endRun(core.EndReasonRevert)
			return false
		}
	}
	return true
}

var directionKeys = []struct {
	action core.Action
	dir    ctrl.Direction
}{
	{core.ActionUp, ctrl.Top},
	{core.ActionDown, ctrl.Bottom},
	{core.ActionLeft, ctrl.Left},
	{core.ActionRight, ctrl.Right},
}

// move performs one snake move and reports whether food was eaten.
func (g *Game) move() bool {
	g.moves++
	ate, err := g.ctrl.NextTick()
	if err != nil {
		g.handleMoveError(err)
		return false
	}
	if ate {
		g.score++
		g.rec.SetCurrent(uint64(g.score))
		g.base = max(decay(g.base, g.cfg.Pacing.SpeedupFactor), g.floor)
	}
	// Time progression speeds up on every move, not only on food.
	g.pacer.SetInterval(g.interval())
	return ate
}

func (g *Game) handleMoveError(err error) {
	switch {
	case errors.Is(err, ctrl.ErrSnakeHitTheWall):
		g.endRun(core.EndReasonWall)
	case errors.Is(err, ctrl.ErrSnakeAteItself):
		g.endRun(core.EndReasonSelf)
	default:
		// Not a game outcome: the board is in a state it should never reach.
		logger.Error("snake tick failed", "game", g.id, "error", err, "moves", g.moves)
		g.endRun(core.EndReasonError)
	}
}

// endRun stops the run and persists the best score.
func (g *Game) endRun(reason string) {
	g.gameOver = true
	g.endReason = reason
	g.pacer.Pause()
	if _, err := g.rec.Write(); err != nil {
		logger.Warn("could not save best score", "path", g.rec.Path(), "error", err)
	}
}

// Quit persists the best score of a run that is abandoned before game over.
func (g *Game) Quit() {
	if g.rec == nil || g.gameOver || g.rec.Current() == 0 {
		return
	}
	if _, err := g.rec.Write(); err != nil {
		logger.Warn("could not save best score", "path", g.rec.Path(), "error", err)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Score:     g.score,
		GameOver:  g.gameOver,
		EndReason: g.endReason,
	}
	if g.ctrl != nil {
		st.Length = g.ctrl.Len()
	}
	if g.pacer != nil {
		st.Paused = g.pacer.Paused() && !g.gameOver
	}
	return st
}

// Best returns the best score known to this game.
func (g *Game) Best() uint64 {
	if g.rec == nil {
		return 0
	}
	return g.rec.Best()
}

// Board returns the configured board size.
func (g *Game) Board() (w, h int) {
	return g.cfg.Board.Width, g.cfg.Board.Height
}

// Ctrl exposes the underlying controller.
func (g *Game) Ctrl() *ctrl.Ctrl {
	return g.ctrl
}
