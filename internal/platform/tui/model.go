package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model that drives a tetris session.
type Model struct {
	session  *tetris.Session
	input    *core.ActionQueue
	renderer *BoardRenderer
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	config   core.RuntimeConfig
	quitting bool
}

// NewModel creates a model for a new session. A nil logger discards output.
func NewModel(cfg tetris.Config, rt core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	rt.Seed = cfg.Seed
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false
	h.Width = rt.ScreenW

	return Model{
		session:  tetris.NewSession(cfg),
		input:    core.NewActionQueue(core.DefaultQueueSize),
		renderer: NewBoardRenderer(rt.ScreenW, max(rt.ScreenH-1, 0)),
		keys:     DefaultKeyMap(),
		help:     h,
		logger:   logger,
		config:   rt,
	}
}

// Session returns the session the model drives.
func (m Model) Session() *tetris.Session {
	return m.session
}

// Init logs the session start and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("session started",
		"level", m.session.StartLevel(),
		"easy", m.session.Easy(),
		"seed", m.config.Seed,
		"tick_rate", m.config.TickRate,
	)
	return tickCmd(m.config.TickInterval())
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

// handleKey queues the action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a := m.keys.Action(msg)
	if a == core.ActionNone {
		return m, nil
	}
	if a == core.ActionQuit {
		// nothing queued before a quit matters
		m.input.Clear()
	}
	if !m.input.Push(a) {
		m.logger.Debug("input dropped", "action", a)
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.renderer.Resize(msg.Width, max(msg.Height-1, 0))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick feeds at most one queued action to the session.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	a := m.input.Poll()
	res := m.session.Step(a)
	m.logStep(a, res)
	m.keys.SetGameOver(m.session.GameOver())

	if m.session.Outcome() == tetris.OutcomeExit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickInterval())
}

func (m Model) logStep(a core.Action, res tetris.StepResult) {
	s := m.session
	m.logger.Debug("tick", "tick", s.Tick(), "action", a, "phase", res.Phase)

	switch {
	case res.Quit:
		m.logger.Info("quit", "score", s.Score(), "lines", s.Lines(), "level", s.Level())
		return
	case res.Restarted:
		m.logger.Info("restart", "restarts", s.Restarts(), "level", s.Level())
		return
	}

	if res.LinesCleared > 0 {
		m.logger.Info("lines cleared",
			"rows", res.LinesCleared,
			"points", res.Points,
			"lines", s.Lines(),
			"score", s.Score(),
		)
	}
	if res.LevelUp {
		m.logger.Info("level up", "level", s.Level(), "gravity", s.GravityPeriod())
	}
	if res.GameOver {
		m.logger.Info("game over", "score", s.Score(), "lines", s.Lines(), "level", s.Level())
	}
}

// View renders the current frame with the help bar below it.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.renderer.Render(m.session.Frame()) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(cfg tetris.Config, rt core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(cfg, rt, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok {
		fm.logger.Info("session ended", "score", fm.session.Score(), "restarts", fm.session.Restarts())
	}
	return nil
}
