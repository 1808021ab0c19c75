package snake

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake/ctrl"
	"github.com/vovakirdan/tui-snake/internal/record"
)

// ringConfig is a 6x1 wrapping board: one move per 100ms frame.
const ringConfig = `
board: {width: 6, height: 1, initial_snake_size: 3}
rules: {walk_through_walls: true, fail_on_revert: false, auto_gen_food: true}
pacing: {start_interval_ms: 100, min_interval_ms: 100, speedup_factor: 0.99999}
difficulty: {enabled: false}
`

// corridorConfig is a 10x1 board without food.
const corridorConfig = `
board: {width: 10, height: 1, initial_snake_size: 3}
rules: {walk_through_walls: true, fail_on_revert: false, auto_gen_food: false}
pacing: {start_interval_ms: 100, min_interval_ms: 100, speedup_factor: 0.99999}
difficulty: {enabled: false}
`

func useConfig(t *testing.T, body string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })
}

// fastRuntime steps at 10 fps so each frame is exactly one 100ms move.
func fastRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 10, Seed: seed}
}

func stepN(g *Game, n int, actions ...core.Action) core.StepResult {
	var res core.StepResult
	for range n {
		in := core.NewInputFrame()
		for _, a := range actions {
			in.Set(a)
		}
		res = g.Step(in)
	}
	return res
}

func TestVariants(t *testing.T) {
	tests := []struct {
		game  *Game
		id    string
		walls bool
	}{
		{New(), "snake", false},
		{NewWalls(), "snake_walls", true},
	}

	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			if tc.game.ID() != tc.id {
				t.Errorf("ID() = %q, expected %q", tc.game.ID(), tc.id)
			}
			if tc.game.Title() == "" {
				t.Error("Title() should not be empty")
			}
			useConfig(t, corridorConfig)
			tc.game.Reset(fastRuntime(1))
			wraps := tc.game.Ctrl().Options().WalkingThroughTheWalls
			if wraps == tc.walls {
				t.Errorf("WalkingThroughTheWalls = %v for %s", wraps, tc.id)
			}
		})
	}
}

func TestDeterminism(t *testing.T) {
	useConfig(t, `
board: {width: 15, height: 10, initial_snake_size: 3}
difficulty: {enabled: true, progression: {type: score, max_at: 10}}
`)
	cfg := core.RuntimeConfig{Seed: 12345, ScreenW: 80, ScreenH: 24, TickRate: 60}

	g1 := New()
	g1.Reset(cfg)
	g2 := New()
	g2.Reset(cfg)

	turns := map[int]core.Action{40: core.ActionUp, 90: core.ActionLeft, 200: core.ActionDown, 300: core.ActionRight}
	for i := range 600 {
		in := core.NewInputFrame()
		if a, ok := turns[i]; ok {
			in.Set(a)
		}
		g1.Step(in)
		g2.Step(in)
	}

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if !reflect.DeepEqual(s1, s2) {
		t.Errorf("snapshots differ:\n%+v\n%+v", s1, s2)
	}
	if s1.Moves == 0 {
		t.Error("expected the snake to move")
	}
}

func TestRingFillsUp(t *testing.T) {
	useConfig(t, ringConfig)
	g := New()
	g.Reset(fastRuntime(7))

	res := stepN(g, 3)
	if !res.Moved {
		t.Fatal("expected a move on every frame")
	}
	if g.score == 0 {
		t.Error("food should be reached within three moves on a 6-cell ring")
	}

	res = stepN(g, 30)
	if res.State.GameOver {
		t.Fatalf("ring run ended: %s", res.State.EndReason)
	}
	if res.State.Score != 3 || res.State.Length != 6 {
		t.Errorf("score/length = %d/%d, expected 3/6", res.State.Score, res.State.Length)
	}
	if len(g.Ctrl().State().Food) != 0 {
		t.Error("a full board should have no food")
	}
	if !g.rec.IsRecord() {
		t.Error("scoring over an empty record should count as a record")
	}
}

func TestWallsEndRun(t *testing.T) {
	useConfig(t, corridorConfig)
	g := NewWalls()
	g.Reset(fastRuntime(1))

	// Head starts at x=5 and reaches x=9 after four moves.
	res := stepN(g, 4)
	if res.State.GameOver {
		t.Fatal("run ended before reaching the wall")
	}

	res = stepN(g, 1)
	if !res.State.GameOver || res.State.EndReason != core.EndReasonWall {
		t.Fatalf("state = %+v, expected game over by wall", res.State)
	}
	if res.State.Length != 2 {
		t.Errorf("length after wall hit = %d, expected 2", res.State.Length)
	}

	// Frames after the end change nothing.
	moves := g.moves
	stepN(g, 5)
	if g.moves != moves {
		t.Error("snake moved after game over")
	}

	res = stepN(g, 1, core.ActionRestart)
	if res.State.GameOver || res.State.Length != 3 || res.State.Score != 0 {
		t.Errorf("after restart state = %+v", res.State)
	}
	if head := g.Ctrl().State().Snake[0]; head != ctrl.P(5, 0) {
		t.Errorf("head after restart = %v, expected (5,0)", head)
	}
}

func TestWrapVariantSurvivesWall(t *testing.T) {
	useConfig(t, corridorConfig)
	g := New()
	g.Reset(fastRuntime(1))

	res := stepN(g, 12)
	if res.State.GameOver {
		t.Fatalf("wrapping run ended: %s", res.State.EndReason)
	}
	// 5 + 12 moves on a 10-wide ring.
	if head := g.Ctrl().State().Snake[0]; head != ctrl.P(7, 0) {
		t.Errorf("head = %v, expected (7,0)", head)
	}
}

func TestReversal(t *testing.T) {
	t.Run("ignored", func(t *testing.T) {
		useConfig(t, corridorConfig)
		g := New()
		g.Reset(fastRuntime(1))
		res := stepN(g, 1, core.ActionLeft)
		if res.State.GameOver {
			t.Error("reversal should be ignored by default")
		}
		if g.Ctrl().CurrentDirection() != ctrl.Right {
			t.Errorf("direction = %s, expected right", g.Ctrl().CurrentDirection())
		}
	})

	t.Run("fatal", func(t *testing.T) {
		useConfig(t, strings.Replace(corridorConfig, "fail_on_revert: false", "fail_on_revert: true", 1))
		g := New()
		g.Reset(fastRuntime(1))
		res := stepN(g, 1, core.ActionLeft)
		if !res.State.GameOver || res.State.EndReason != core.EndReasonRevert {
			t.Errorf("state = %+v, expected game over by reversal", res.State)
		}
		if res.Moved {
			t.Error("the snake should not move on the frame it reversed")
		}
	})
}

func TestTurnAppliesOnNextMove(t *testing.T) {
	useConfig(t, `
board: {width: 9, height: 9, initial_snake_size: 3}
rules: {walk_through_walls: true, auto_gen_food: false}
pacing: {start_interval_ms: 100, min_interval_ms: 100, speedup_factor: 0.99999}
difficulty: {enabled: false}
`)
	g := New()
	g.Reset(fastRuntime(1))

	stepN(g, 1, core.ActionUp)
	// Up on screen is Top, which is +Y on the board.
	if head := g.Ctrl().State().Snake[0]; head != ctrl.P(4, 5) {
		t.Errorf("head = %v, expected (4,5)", head)
	}
}

func TestPause(t *testing.T) {
	useConfig(t, corridorConfig)
	g := New()
	g.Reset(fastRuntime(1))

	res := stepN(g, 1, core.ActionPause)
	if !res.State.Paused || res.Moved {
		t.Fatalf("state = %+v moved=%v, expected paused without a move", res.State, res.Moved)
	}
	stepN(g, 5)
	if g.moves != 0 {
		t.Errorf("moves while paused = %d, expected 0", g.moves)
	}
	if g.Snapshot().State != StatePaused {
		t.Errorf("snapshot state = %s, expected %s", g.Snapshot().State, StatePaused)
	}

	res = stepN(g, 1, core.ActionPause)
	if res.State.Paused || !res.Moved {
		t.Errorf("after resume state = %+v moved=%v", res.State, res.Moved)
	}
}

func TestConfigError(t *testing.T) {
	// A 4-wide board cannot hold the initial snake.
	useConfig(t, strings.Replace(corridorConfig, "width: 10", "width: 4", 1))
	g := New()
	g.Reset(fastRuntime(1))

	if g.Snapshot().State != StateConfigError {
		t.Fatalf("state = %s, expected %s", g.Snapshot().State, StateConfigError)
	}
	if res := stepN(g, 3, core.ActionRight); res.Moved || res.State.GameOver {
		t.Errorf("unexpected progress on a broken config: %+v", res)
	}

	screen := core.NewScreen(60, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Configuration error") {
		t.Error("config error overlay not rendered")
	}
}

func TestOverlayFitsNarrowScreen(t *testing.T) {
	useConfig(t, strings.Replace(corridorConfig, "width: 10", "width: 4", 1))
	g := New()
	g.Reset(fastRuntime(1))

	// The error text is wider than the screen; the box must stay on it.
	screen := core.NewScreen(20, 10)
	g.Render(screen)
	if got := screen.Get(0, 2); got != '┌' {
		t.Errorf("Get(0, 2) = %q, expected '┌'", got)
	}
	if got := screen.Get(19, 2); got != '┐' {
		t.Errorf("Get(19, 2) = %q, expected '┐'", got)
	}
	if got := screen.Get(1, 3); got != 'C' {
		t.Errorf("title starts at %q, expected 'C' inside the box", got)
	}
}

func TestUnknownPreset(t *testing.T) {
	useConfig(t, corridorConfig)
	SetDifficultyPreset("insane")
	t.Cleanup(func() { SetDifficultyPreset("") })

	g := New()
	g.Reset(fastRuntime(1))
	if g.Snapshot().State != StateConfigError {
		t.Errorf("state = %s, expected %s", g.Snapshot().State, StateConfigError)
	}
}

func TestTooSmallScreen(t *testing.T) {
	useConfig(t, corridorConfig)
	g := New()
	rc := fastRuntime(1)
	rc.ScreenW = 8
	g.Reset(rc)

	if res := stepN(g, 3); res.Moved {
		t.Error("snake moved on a screen that is too small")
	}
	if g.Snapshot().State != StatePausedSmall {
		t.Errorf("state = %s, expected %s", g.Snapshot().State, StatePausedSmall)
	}

	g.Resize(40, 10)
	if res := stepN(g, 1); !res.Moved {
		t.Error("snake should move again after resize")
	}
}

func TestSpeedUpOnFood(t *testing.T) {
	useConfig(t, strings.Replace(ringConfig, "min_interval_ms: 100", "min_interval_ms: 10", 1))
	g := New()
	g.Reset(fastRuntime(3))

	before := g.pacer.Interval()
	for g.score == 0 {
		stepN(g, 1)
	}
	if after := g.pacer.Interval(); after != before-1e6 {
		t.Errorf("interval after food = %v, expected %v", after, before-1e6)
	}
}

func TestTimeProgressionSpeedsUpWithoutFood(t *testing.T) {
	useConfig(t, `
board: {width: 10, height: 1, initial_snake_size: 3}
rules: {walk_through_walls: true, fail_on_revert: false, auto_gen_food: false}
pacing: {start_interval_ms: 100, min_interval_ms: 10, speedup_factor: 0.99999}
difficulty:
  enabled: true
  initial_level: 0
  progression: {type: time, max_at: 10}
  scaling: {speed_multiplier: 1.0}
`)
	g := New()
	g.Reset(fastRuntime(1))

	if got := g.pacer.Interval(); got != 100*time.Millisecond {
		t.Fatalf("start interval = %v, expected 100ms", got)
	}
	stepN(g, 30)

	if g.score != 0 {
		t.Fatalf("score = %d, expected no food eaten", g.score)
	}
	if g.moves < 10 {
		t.Fatalf("moves = %d, expected at least 10", g.moves)
	}
	if got := g.pacer.Interval(); got != 50*time.Millisecond {
		t.Errorf("interval after %d moves = %v, expected 50ms", g.moves, got)
	}
}

func TestQuitPersistsRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "best_score")
	SetRecord(record.Load(path))
	t.Cleanup(func() { SetRecord(nil) })

	useConfig(t, ringConfig)
	g := New()
	g.Reset(fastRuntime(3))
	for g.score == 0 {
		stepN(g, 1)
	}
	if g.State().GameOver {
		t.Fatal("run should still be in progress")
	}

	g.Quit()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("record file not written: %v", err)
	}
	if got := strings.TrimSpace(string(data)); got != "1" {
		t.Errorf("record file = %q, expected %q", got, "1")
	}
	if record.Load(path).Best() != 1 {
		t.Error("reloaded best score should be 1")
	}
}

func TestQuitWithoutScoreWritesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "best_score")
	SetRecord(record.Load(path))
	t.Cleanup(func() { SetRecord(nil) })

	useConfig(t, corridorConfig)
	g := New()
	g.Reset(fastRuntime(1))
	stepN(g, 2)
	g.Quit()

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("record file should not exist, stat error = %v", err)
	}
}

func TestSharedRecordWrittenOnGameOver(t *testing.T) {
	path := filepath.Join(t.TempDir(), "best_score")
	rec := record.Load(path)
	SetRecord(rec)
	t.Cleanup(func() { SetRecord(nil) })

	useConfig(t, corridorConfig)
	g := NewWalls()
	g.Reset(fastRuntime(1))
	stepN(g, 5)

	if !g.State().GameOver {
		t.Fatal("expected the run to end at the wall")
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("record file not written: %v", err)
	}
}

func TestRender(t *testing.T) {
	useConfig(t, corridorConfig)
	g := New()
	g.Reset(fastRuntime(1))

	screen := core.NewScreen(40, 10)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD row = %q", screen.Row(0))
	}

	// Frame is 12x3, centered: x from 14, y from 2.
	corners := map[[2]int]rune{{14, 2}: '┌', {25, 2}: '┐', {14, 4}: '└', {25, 4}: '┘'}
	for pos, want := range corners {
		if got := screen.Get(pos[0], pos[1]); got != want {
			t.Errorf("frame corner at %v = %q, expected %q", pos, got, want)
		}
	}

	// Snake (5,0),(4,0),(3,0) on the single board row.
	row := screen.Row(3)
	if got := string([]rune(row)[18:21]); got != "╶─▶" {
		t.Errorf("snake row = %q, expected %q", got, "╶─▶")
	}
	if screen.GetCell(20, 3).Color != core.ColorBrightGreen {
		t.Error("head should be drawn bright green")
	}

	stepN(g, 1, core.ActionPause)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Paused") {
		t.Error("pause overlay not rendered")
	}
}
