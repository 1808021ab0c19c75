// Package registry holds the game factories. Snake variants register
// themselves in init() so the CLI and the front end can list and create them
// by ID.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Game is the interface the front end drives. Implementations hold pure
// simulation state; input mapping, timing and terminal output live elsewhere.
type Game interface {
	// ID returns the variant identifier (e.g. "snake", "snake_walls").
	// Used for CLI arguments and run history.
	ID() string

	// Title returns a human-readable name.
	Title() string

	// Reset loads configuration and starts a fresh run.
	Reset(cfg core.RuntimeConfig)

	// Step advances the game by one platform frame.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into a pre-cleared screen.
	Render(dst *core.Screen)

	// State returns score, length and run status.
	State() core.GameState
}

// Resizer is implemented by games that can follow terminal resizes without
// losing the current run.
type Resizer interface {
	Resize(w, h int)
}

// BoardSizer is implemented by games played on a fixed grid.
type BoardSizer interface {
	Board() (w, h int)
}

// Quitter is implemented by games with state to persist when the player
// leaves a run before it ends.
type Quitter interface {
	Quit()
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new game instance.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
