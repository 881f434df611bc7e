package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// MaxFrameDelta caps the time fed to one Step, so a stalled terminal
// does not make the avatar jump through obstacles.
const MaxFrameDelta = 100 * time.Millisecond

// Game is the contract between the platform and a game.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame, dt float64) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// runIdentifier is implemented by games that tag each run.
type runIdentifier interface {
	RunID() uuid.UUID
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model running one game.
type Model struct {
	game       Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	inputFrame core.InputFrame
	gameState  core.GameState
	logger     *log.Logger
	player     audio.Player
	lastTick   time.Time
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil logger discards output and a nil player is silent.
func NewModel(game Game, cfg core.RuntimeConfig, logger *log.Logger, player audio.Player) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if player == nil {
		player = audio.NopPlayer{}
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH)),
		config:     cfg,
		keys:       DefaultKeyMap(),
		inputFrame: core.NewInputFrame(),
		logger:     logger,
		player:     player,
	}
}

// playfieldHeight leaves the last terminal row for the key help.
func playfieldHeight(h int) int {
	if h > 1 {
		return h - 1
	}
	return h
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("game ready", "game", m.game.ID(), "seed", m.config.Seed,
		"width", m.config.ScreenW, "height", m.config.ScreenH)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records the key's action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		m.logger.Info("quit", "score", m.gameState.Score)
		return m, tea.Quit
	}
	m.inputFrame.Set(action)
	return m, nil
}

// handleResize resizes the screen buffer. The world is projected onto
// whatever size the terminal has, so the run continues.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
	return m, nil
}

// frameDelta returns the seconds since the previous tick, capped at MaxFrameDelta.
// The first tick has no predecessor and advances nothing.
func (m Model) frameDelta(now time.Time) float64 {
	if m.lastTick.IsZero() {
		return 0
	}
	d := now.Sub(m.lastTick)
	if d < 0 {
		d = 0
	}
	if d > MaxFrameDelta {
		d = MaxFrameDelta
	}
	return d.Seconds()
}

// handleTick steps the game with the input gathered since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := m.frameDelta(now)
	m.lastTick = now

	result := m.game.Step(m.inputFrame, dt)
	m.gameState = result.State
	m.logEvents(result)
	m.player.Play(result.Events)

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

func (m Model) logEvents(res core.StepResult) {
	ev := res.Events
	if ev == 0 {
		return
	}

	var run uuid.UUID
	if r, ok := m.game.(runIdentifier); ok {
		run = r.RunID()
	}

	switch {
	case ev.Has(core.EventStart), ev.Has(core.EventRestart):
		m.logger.Info("run started", "run", run)
	case ev.Has(core.EventCrash):
		m.logger.Info("game over", "run", run, "score", res.State.Score)
	case ev.Has(core.EventPause):
		m.logger.Debug("paused", "run", run)
	case ev.Has(core.EventResume):
		m.logger.Debug("resumed", "run", run)
	}
	if ev.Has(core.EventScore) {
		m.logger.Debug("scored", "run", run, "score", res.State.Score)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	out := RenderScreen(m.screen)
	if m.screen.Height() < m.config.ScreenH {
		out += "\n" + helpStyle.Render(m.keys.HelpLine())
	}
	return out
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(game Game, cfg core.RuntimeConfig, logger *log.Logger, player audio.Player) error {
	model := NewModel(game, cfg, logger, player)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
