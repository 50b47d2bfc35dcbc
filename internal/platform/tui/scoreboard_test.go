package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-bomber/internal/games/bomberman"
	"github.com/vovakirdan/tui-bomber/internal/profile"
	"github.com/vovakirdan/tui-bomber/internal/storage"
)

func openScoreStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func seedScores(t *testing.T, store *storage.Store) {
	t.Helper()
	runs := []storage.RunResult{
		{GameID: bomberman.ID, Username: "alice", Score: 1200, LevelReached: 2},
		{GameID: bomberman.ID, Username: "bob", Score: 800, LevelReached: 1},
		{GameID: bomberman.ID, Username: "alice", Score: 300, LevelReached: 1},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun: %v", err)
		}
	}
	u, err := profile.New("carol", profile.AvatarBlue)
	if err != nil {
		t.Fatalf("profile.New: %v", err)
	}
	if err := store.SaveProfile(u); err != nil {
		t.Fatalf("SaveProfile: %v", err)
	}
}

func TestScoreboardViews(t *testing.T) {
	tests := []struct {
		name     string
		username string
		want     []boardView
	}{
		{"anonymous", "", []boardView{viewTopScores, viewProfiles}},
		{"named", "alice", []boardView{viewTopScores, viewMyScores, viewProfiles}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewScoreboardModel(nil, tt.username, 100, 30)
			if len(m.views) != len(tt.want) {
				t.Fatalf("views = %v, want %v", m.views, tt.want)
			}
			for i := range tt.want {
				if m.views[i] != tt.want[i] {
					t.Errorf("views[%d] = %v, want %v", i, m.views[i], tt.want[i])
				}
			}
		})
	}
}

func TestScoreboardLoadsRows(t *testing.T) {
	store := openScoreStore(t)
	seedScores(t, store)

	m := NewScoreboardModel(store, "alice", 100, 30)
	if len(m.rows) != 3 {
		t.Fatalf("top scores rows = %d, want 3", len(m.rows))
	}
	if m.rows[0][1] != "alice" || m.rows[0][2] != "1200" {
		t.Errorf("first row = %v, want alice with 1200", m.rows[0])
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.current() != viewMyScores {
		t.Fatalf("current = %v, want My scores", m.current())
	}
	if len(m.rows) != 2 {
		t.Errorf("my scores rows = %d, want 2", len(m.rows))
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.current() != viewProfiles {
		t.Fatalf("current = %v, want Players", m.current())
	}
	if len(m.rows) != 1 || m.rows[0][0] != "carol" {
		t.Errorf("profile rows = %v, want carol", m.rows)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if got := next.(ScoreboardModel).current(); got != viewTopScores {
		t.Errorf("tab did not wrap, current = %v", got)
	}
}

func TestScoreboardMessages(t *testing.T) {
	tests := []struct {
		name  string
		store func(t *testing.T) *storage.Store
		want  string
	}{
		{"no store", func(*testing.T) *storage.Store { return nil }, "Scores are unavailable"},
		{"empty", openScoreStore, "No scores recorded yet"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewScoreboardModel(tt.store(t), "", 100, 30)
			if view := m.View(); !strings.Contains(view, tt.want) {
				t.Errorf("view missing %q:\n%s", tt.want, view)
			}
		})
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := NewScoreboardModel(nil, "", 60, 20)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	if sb := next.(ScoreboardModel); !sb.IsGoingBack() || sb.IsQuitting() {
		t.Errorf("esc: back=%v quit=%v, want back only", sb.IsGoingBack(), sb.IsQuitting())
	}

	next, _ = m.Update(runeKey("q"))
	if sb := next.(ScoreboardModel); !sb.IsQuitting() {
		t.Error("q did not quit")
	}
}
