package tui

import (
	"context"
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bomber/internal/config"
	"github.com/vovakirdan/tui-bomber/internal/core"
	"github.com/vovakirdan/tui-bomber/internal/games/bomberman"
)

func newTestSession(t *testing.T) SessionModel {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	logger := log.New(io.Discard)
	logger.SetLevel(log.FatalLevel)

	factory := NewGameFactory(config.DefaultBombermanConfig(), nil, nil, logger)

	cfg := core.DefaultConfig()
	cfg.Seed = 7
	opts := Options{RenderFPS: 10, Logger: logger}
	return NewSessionModel(ctx, nil, cfg, opts, nil, config.DifficultyNormal, factory)
}

func step(t *testing.T, m SessionModel, msgs ...tea.Msg) SessionModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		sm, ok := next.(SessionModel)
		if !ok {
			t.Fatalf("Update returned %T, want SessionModel", next)
		}
		m = sm
	}
	return m
}

func TestSessionStartsGame(t *testing.T) {
	m := newTestSession(t)
	m = step(t, m,
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyRight},
		tea.KeyMsg{Type: tea.KeyUp},
		tea.KeyMsg{Type: tea.KeyEnter},
	)
	t.Cleanup(m.Close)

	if m.gameModel == nil {
		t.Fatal("no game after Play")
	}
	if m.preset != config.DifficultyHard {
		t.Errorf("preset = %q, want hard", m.preset)
	}
	if got := m.gameModel.game.ID(); got != bomberman.ID {
		t.Errorf("game ID = %q, want %q", got, bomberman.ID)
	}
}

func TestSessionScoreboardRoundTrip(t *testing.T) {
	m := newTestSession(t)

	m = step(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.scoreboard == nil {
		t.Fatal("scoreboard not opened")
	}

	m = step(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if m.scoreboard != nil {
		t.Fatal("scoreboard still open after back")
	}
	if m.menu.WantsScoreboard() {
		t.Error("menu not reset after back")
	}
}

func TestSessionQuit(t *testing.T) {
	m := newTestSession(t)
	m = step(t, m, runeKey("q"))
	if !m.quitting {
		t.Error("session not quitting")
	}
	if m.View() != "" {
		t.Error("view not empty after quit")
	}
}

func TestSessionTracksWindowSize(t *testing.T) {
	m := newTestSession(t)
	m = step(t, m, tea.WindowSizeMsg{Width: 132, Height: 50})
	if m.config.ScreenW != 132 || m.config.ScreenH != 50 {
		t.Errorf("config size = %dx%d, want 132x50", m.config.ScreenW, m.config.ScreenH)
	}
}
