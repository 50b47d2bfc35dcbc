package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-bomber/internal/core"
)

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.DrawTextWithColor(2, 0, "cd", core.ColorRed)
	s.DrawText(0, 1, "ef")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	for _, want := range []string{"ab", "cd"} {
		if !strings.Contains(lines[0], want) {
			t.Errorf("line 0 = %q, missing %q", lines[0], want)
		}
	}
	if !strings.HasPrefix(lines[1], "ef") {
		t.Errorf("line 1 = %q, want prefix ef", lines[1])
	}
}

func TestCenterText(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"ab", 6, "  ab"},
		{"abc", 6, " abc"},
		{"toolong", 4, "toolong"},
	}
	for _, tt := range tests {
		if got := centerText(tt.text, tt.width); got != tt.want {
			t.Errorf("centerText(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
		}
	}
}
