package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// footerHeight is the number of terminal rows used by the help line.
const footerHeight = 1

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running a snake game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keys       *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	runSaved   bool // Whether the current finished run has been stored
}

// NewModel creates a Bubble Tea model for the given game. cfg holds the
// full terminal size; one row is reserved for the help footer.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg.ScreenH = max(cfg.ScreenH-footerHeight, 0)

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keys:       NewKeyMapper(),
		help:       h,
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the game and the frame loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.FrameDuration())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.gameState = m.game.State()
		if !m.gameState.GameOver {
			m.saveRun(core.EndReasonQuit)
		}
		if q, ok := m.game.(registry.Quitter); ok {
			q.Quit()
		}
		return m, tea.Quit
	}
	return m, nil
}

// handleResize follows the terminal size. Games implementing
// registry.Resizer keep their run; others are reset.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = max(msg.Height-footerHeight, 0)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	switch {
	case m.gameState.GameOver && !m.runSaved:
		m.saveRun(m.gameState.EndReason)
	case !m.gameState.GameOver:
		m.runSaved = false
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.FrameDuration())
}

// saveRun stores the finished run once. Runs without food are not stored.
func (m *Model) saveRun(reason string) {
	m.runSaved = true
	if m.store == nil || m.gameState.Score == 0 {
		return
	}

	run := storage.Run{
		GameID:    m.game.ID(),
		Score:     m.gameState.Score,
		Length:    m.gameState.Length,
		EndReason: reason,
	}
	if b, ok := m.game.(registry.BoardSizer); ok {
		run.BoardW, run.BoardH = b.Board()
	}
	if _, err := m.store.SaveRun(run); err != nil {
		log.Warn("could not save run", "game", run.GameID, "score", run.Score, "error", err)
	}
}

// saveScreenshot writes the current screen as text to ~/.tui-snake/screenshots.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		log.Warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".tui-snake", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Warn("could not save screenshot", "dir", dir, "error", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		log.Warn("could not save screenshot", "path", path, "error", err)
		return
	}
	log.Info("screenshot saved", "path", path)
}

// View renders the game and the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + footerStyle.Render(m.help.View(m.keys.Keys()))
}

// Run starts the Bubble Tea program for one game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(game, store, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
