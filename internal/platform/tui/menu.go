package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-bomber/internal/config"
	"github.com/vovakirdan/tui-bomber/internal/core"
	"github.com/vovakirdan/tui-bomber/internal/profile"
)

// menuEntry is one line of the main menu.
type menuEntry int

const (
	entryPlay menuEntry = iota
	entryDifficulty
	entryScores
	entryQuit
)

var menuEntries = []menuEntry{entryPlay, entryDifficulty, entryScores, entryQuit}

// MenuModel is the Bubble Tea model for the main menu: start a run, pick a
// difficulty, or open the scoreboard.
type MenuModel struct {
	cursor         int
	presets        []config.DifficultyPreset
	preset         int
	user           *profile.User
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	start          bool
	openScoreboard bool
}

// NewMenuModel creates a new menu model. user may be nil.
func NewMenuModel(cfg core.RuntimeConfig, preset config.DifficultyPreset, user *profile.User) MenuModel {
	m := MenuModel{
		presets:   config.Presets(),
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		user:      user,
		keyMapper: NewKeyMapper(),
	}
	for i, p := range m.presets {
		if p == preset {
			m.preset = i
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(menuEntries)-1 {
			m.cursor++
		}

	case MenuActionLeft:
		if menuEntries[m.cursor] == entryDifficulty {
			m.preset = (m.preset + len(m.presets) - 1) % len(m.presets)
		}

	case MenuActionRight:
		if menuEntries[m.cursor] == entryDifficulty {
			m.preset = (m.preset + 1) % len(m.presets)
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit

	case MenuActionSelect:
		switch menuEntries[m.cursor] {
		case entryPlay:
			m.start = true
			return m, tea.Quit
		case entryDifficulty:
			m.preset = (m.preset + 1) % len(m.presets)
		case entryScores:
			m.openScoreboard = true
			return m, tea.Quit
		case entryQuit:
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("  B O M B E R  "), m.width))
	b.WriteString("\n\n")

	if m.user != nil {
		b.WriteString(centerText(dimStyle.Render(m.user.String()), m.width))
		b.WriteString("\n\n")
	}

	for i, e := range menuEntries {
		label := m.entryLabel(e)
		if i == m.cursor {
			label = selectedStyle.Render("> " + label + " ")
		} else {
			label = "  " + label + " "
		}
		b.WriteString(centerText(label, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Difficulty  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(dimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) entryLabel(e menuEntry) string {
	switch e {
	case entryPlay:
		return "Play"
	case entryDifficulty:
		return fmt.Sprintf("Difficulty: < %s >", m.Preset())
	case entryScores:
		return "High scores"
	case entryQuit:
		return "Quit"
	default:
		return ""
	}
}

// Preset returns the selected difficulty.
func (m MenuModel) Preset() config.DifficultyPreset {
	return m.presets[m.preset]
}

// Started returns true if the user chose to play.
func (m MenuModel) Started() bool {
	return m.start
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}
