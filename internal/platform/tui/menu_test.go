package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-bomber/internal/config"
	"github.com/vovakirdan/tui-bomber/internal/core"
	"github.com/vovakirdan/tui-bomber/internal/profile"
)

// press feeds keys to a menu and returns the resulting model.
func press(t *testing.T, m MenuModel, keys ...tea.KeyMsg) MenuModel {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		mm, ok := next.(MenuModel)
		if !ok {
			t.Fatalf("Update returned %T, want MenuModel", next)
		}
		m = mm
	}
	return m
}

func TestMenuInitialPreset(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), config.DifficultyHard, nil)
	if got := m.Preset(); got != config.DifficultyHard {
		t.Errorf("Preset() = %q, want hard", got)
	}
}

func TestMenuCyclesDifficulty(t *testing.T) {
	down := tea.KeyMsg{Type: tea.KeyDown}
	right := tea.KeyMsg{Type: tea.KeyRight}
	left := tea.KeyMsg{Type: tea.KeyLeft}

	tests := []struct {
		name string
		keys []tea.KeyMsg
		want config.DifficultyPreset
	}{
		{"right", []tea.KeyMsg{down, right}, config.DifficultyHard},
		{"right wraps", []tea.KeyMsg{down, right, right}, config.DifficultyEasy},
		{"left", []tea.KeyMsg{down, left}, config.DifficultyEasy},
		{"enter", []tea.KeyMsg{down, {Type: tea.KeyEnter}}, config.DifficultyHard},
		{"right ignored on play", []tea.KeyMsg{right}, config.DifficultyNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := press(t, NewMenuModel(core.DefaultConfig(), config.DifficultyNormal, nil), tt.keys...)
			if got := m.Preset(); got != tt.want {
				t.Errorf("Preset() = %q, want %q", got, tt.want)
			}
			if m.Started() {
				t.Error("menu started a run")
			}
		})
	}
}

func TestMenuSelections(t *testing.T) {
	down := tea.KeyMsg{Type: tea.KeyDown}
	enter := tea.KeyMsg{Type: tea.KeyEnter}

	tests := []struct {
		name       string
		keys       []tea.KeyMsg
		start      bool
		scoreboard bool
		quit       bool
	}{
		{"play", []tea.KeyMsg{enter}, true, false, false},
		{"scores entry", []tea.KeyMsg{down, down, enter}, false, true, false},
		{"scores shortcut", []tea.KeyMsg{{Type: tea.KeyTab}}, false, true, false},
		{"quit entry", []tea.KeyMsg{down, down, down, enter}, false, false, true},
		{"quit key", []tea.KeyMsg{runeKey("q")}, false, false, true},
		{"cursor clamps", []tea.KeyMsg{down, down, down, down, down, enter}, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := press(t, NewMenuModel(core.DefaultConfig(), config.DifficultyNormal, nil), tt.keys...)
			if m.Started() != tt.start {
				t.Errorf("Started() = %v, want %v", m.Started(), tt.start)
			}
			if m.WantsScoreboard() != tt.scoreboard {
				t.Errorf("WantsScoreboard() = %v, want %v", m.WantsScoreboard(), tt.scoreboard)
			}
			if m.IsQuitting() != tt.quit {
				t.Errorf("IsQuitting() = %v, want %v", m.IsQuitting(), tt.quit)
			}
		})
	}
}

func TestMenuResize(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), config.DifficultyNormal, nil)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	cfg := next.(MenuModel).Config()
	if cfg.ScreenW != 120 || cfg.ScreenH != 40 {
		t.Errorf("Config() size = %dx%d, want 120x40", cfg.ScreenW, cfg.ScreenH)
	}
}

func TestMenuView(t *testing.T) {
	u, err := profile.New("alice", profile.AvatarRed)
	if err != nil {
		t.Fatalf("profile.New: %v", err)
	}
	view := NewMenuModel(core.DefaultConfig(), config.DifficultyEasy, u).View()

	for _, want := range []string{"B O M B E R", "alice", "Play", "Difficulty: < easy >", "High scores", "Quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
