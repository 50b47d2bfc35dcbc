package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bomber/internal/config"
	"github.com/vovakirdan/tui-bomber/internal/core"
	"github.com/vovakirdan/tui-bomber/internal/games/bomberman"
	"github.com/vovakirdan/tui-bomber/internal/profile"
	"github.com/vovakirdan/tui-bomber/internal/storage"
)

// GameFactory builds a fresh game for the chosen difficulty.
type GameFactory func(preset config.DifficultyPreset) core.Game

// NewGameFactory returns a factory that applies preset to base and, when
// user is set, records progress on that profile. store may be nil.
func NewGameFactory(base config.BombermanConfig, user *profile.User, store *storage.Store, logger *log.Logger) GameFactory {
	return func(preset config.DifficultyPreset) core.Game {
		cfg := base
		config.ApplyBombermanPreset(&cfg, preset)

		opts := []bomberman.Option{bomberman.WithLogger(logger)}
		if user != nil {
			var profiles bomberman.ProfileStore
			if store != nil {
				profiles = store
			}
			opts = append(opts, bomberman.WithProfile(user, profiles))
		}
		return bomberman.New(cfg.ToSim(), opts...)
	}
}

// SessionModel manages the full session flow: menu -> game or scoreboard
// -> menu. It is the top-level model for SSH sessions and `bomber menu`.
type SessionModel struct {
	ctx        context.Context
	store      *storage.Store
	config     core.RuntimeConfig
	opts       Options
	user       *profile.User
	factory    GameFactory
	preset     config.DifficultyPreset
	menu       MenuModel
	scoreboard *ScoreboardModel
	gameModel  *GameModel
	quitting   bool
}

// NewSessionModel creates a new session model. user may be nil.
func NewSessionModel(ctx context.Context, store *storage.Store, cfg core.RuntimeConfig, opts Options,
	user *profile.User, preset config.DifficultyPreset, factory GameFactory) SessionModel {
	return SessionModel{
		ctx:     ctx,
		store:   store,
		config:  cfg,
		opts:    opts.withDefaults(),
		user:    user,
		factory: factory,
		preset:  preset,
		menu:    NewMenuModel(cfg, preset, user),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch {
	case m.gameModel != nil:
		return m.updateGame(msg)
	case m.scoreboard != nil:
		return m.updateScoreboard(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		sb := NewScoreboardModel(m.store, m.opts.Username, m.config.ScreenW, m.config.ScreenH)
		m.scoreboard = &sb
		return m, sb.Init()

	case m.menu.Started():
		m.preset = m.menu.Preset()
		game := m.factory(m.preset)
		gm := NewGameModel(m.ctx, game, m.store, m.config, m.opts)
		m.gameModel = &gm
		return m, gm.Init()
	}

	return m, cmd
}

// updateScoreboard handles updates when the scoreboard is shown.
func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scoreboard.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = &sb
	}

	switch {
	case m.scoreboard.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scoreboard.IsGoingBack():
		m.scoreboard = nil
		return m.backToMenu()
	}
	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	switch {
	case m.gameModel.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.gameModel.BackToMenu():
		m.gameModel = nil
		return m.backToMenu()
	}
	return m, cmd
}

func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.menu = NewMenuModel(m.config, m.preset, m.user)
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch {
	case m.gameModel != nil:
		return m.gameModel.View()
	case m.scoreboard != nil:
		return m.scoreboard.View()
	default:
		return m.menu.View()
	}
}

// Close stops a running game, if any.
func (m SessionModel) Close() {
	if m.gameModel != nil {
		m.gameModel.stop()
	}
}

// RunSession runs the menu/game/scoreboard flow in the local terminal.
func RunSession(store *storage.Store, cfg core.RuntimeConfig, opts Options,
	user *profile.User, preset config.DifficultyPreset, factory GameFactory) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p := tea.NewProgram(
		NewSessionModel(ctx, store, cfg, opts, user, preset, factory),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if sm, ok := final.(SessionModel); ok {
		sm.Close()
	}
	return err
}
