package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bomber/internal/core"
	"github.com/vovakirdan/tui-bomber/internal/games/bomberman/loop"
	"github.com/vovakirdan/tui-bomber/internal/storage"
)

// Options control how a game is driven.
type Options struct {
	Username   string        // owner of saved scores; empty for anonymous runs
	RenderFPS  int           // terminal redraws per second
	Spin       bool          // busy-wait the simulation loop
	HoldWindow time.Duration // how long a direction key stays held
	Logger     *log.Logger
}

// DefaultOptions returns options for a local terminal.
func DefaultOptions() Options {
	return Options{
		RenderFPS:  30,
		Spin:       true,
		HoldWindow: DefaultHoldWindow,
		Logger:     log.Default(),
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.RenderFPS <= 0 {
		o.RenderFPS = d.RenderFPS
	}
	if o.HoldWindow <= 0 {
		o.HoldWindow = d.HoldWindow
	}
	if o.Logger == nil {
		o.Logger = d.Logger
	}
	return o
}

// stopper is implemented by games holding timers that outlive a session.
type stopper interface {
	Stop()
}

// GameModel runs one game. A loop.Loop steps the simulation at
// cfg.TickRate on its own goroutine; Bubble Tea only feeds input into the
// buffer and redraws at the render rate.
type GameModel struct {
	game       core.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	opts       Options
	input      *InputBuffer
	loop       *loop.Loop
	keyMapper  *KeyMapper
	gameState  core.GameState
	ctx        context.Context
	standalone bool // no menu to return to; back quits
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for the current run
}

// NewGameModel creates a model for the given game. ctx bounds the
// simulation loop; the loop also stops when the model quits.
func NewGameModel(ctx context.Context, game core.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) GameModel {
	opts = opts.withDefaults()
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = loop.DefaultFPS
	}

	input := NewInputBuffer(opts.HoldWindow)
	step := func() {
		game.Step(input.Drain())
	}

	return GameModel{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		config:    cfg,
		opts:      opts,
		input:     input,
		loop:      loop.New(cfg.TickRate, step, loop.WithSpin(opts.Spin), loop.WithLogger(opts.Logger)),
		keyMapper: NewKeyMapper(),
		ctx:       ctx,
	}
}

// Init resets the game, starts the simulation loop and the redraw ticker.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.loop.Start(m.ctx)
	return tickCmd(m.opts.RenderFPS)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.stop()
		return m, tea.Quit
	}

	// Back to menu only once the run ended or while paused
	if action == core.ActionBack {
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			m.stop()
			if m.standalone {
				m.quitting = true
				return m, tea.Quit
			}
		}
		return m, nil
	}

	m.input.Press(action)
	return m, nil
}

// handleTick redraws and records finished runs.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	m.gameState = m.game.State()

	switch {
	case m.gameState.GameOver && !m.scoreSaved:
		m.saveScore()
		m.scoreSaved = true
	case !m.gameState.GameOver:
		m.scoreSaved = false
	}

	if m.quitting || m.backToMenu {
		return m, nil
	}
	select {
	case <-m.loop.Done():
		// Loop ended underneath us (session context cancelled).
		m.quitting = true
		return m, tea.Quit
	default:
	}
	return m, tickCmd(m.opts.RenderFPS)
}

func (m *GameModel) saveScore() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	_, err := m.store.SaveRun(storage.RunResult{
		GameID:       m.game.ID(),
		Username:     m.opts.Username,
		Score:        m.gameState.Score,
		LevelReached: m.gameState.Level,
	})
	if err != nil {
		m.opts.Logger.Warn("cannot save score", "err", err)
	}
}

// stop halts the simulation loop and the game's timers.
func (m *GameModel) stop() {
	m.loop.Stop()
	if s, ok := m.game.(stopper); ok {
		s.Stop()
	}
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".bomber", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("cannot create screenshot directory", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("cannot save screenshot", "err", err)
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays one game in the local terminal until the user quits.
func Run(game core.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	model := NewGameModel(ctx, game, store, cfg, opts)
	model.standalone = true
	defer model.stop()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
