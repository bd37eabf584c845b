package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func press(m DiagramModel, keys ...string) DiagramModel {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		case "end":
			msg = tea.KeyMsg{Type: tea.KeyEnd}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(DiagramModel)
	}
	return m
}

func TestDiagramModelScroll(t *testing.T) {
	m := NewDiagramModel("tree", strings.Repeat("0123456789\n", 10))
	next, _ := m.Update(tea.WindowSizeMsg{Width: 6, Height: 3 + viewChrome})
	m = next.(DiagramModel)

	if m.Height != 3 || m.Width != 6 {
		t.Fatalf("size = %dx%d, want 6x3", m.Width, m.Height)
	}

	m = press(m, "down", "j")
	if m.Offset != 2 {
		t.Errorf("Offset = %d, want 2", m.Offset)
	}

	m = press(m, "end")
	if m.Offset != 7 {
		t.Errorf("Offset after end = %d, want 7", m.Offset)
	}

	m = press(m, "down")
	if m.Offset != 7 {
		t.Errorf("Offset past end = %d, want 7", m.Offset)
	}

	m = press(m, "up", "g", "up")
	if m.Offset != 0 {
		t.Errorf("Offset after home = %d, want 0", m.Offset)
	}

	m = press(m, "right", "right")
	if m.XOffset != 4 {
		t.Errorf("XOffset = %d, want 4 (clamped to width)", m.XOffset)
	}
}

func TestDiagramModelView(t *testing.T) {
	m := NewDiagramModel("tree", "+---+\n| A |\n+---+\n")
	m.Height, m.Width = 2, 3
	m.XOffset = 1

	view := m.View()
	if !strings.Contains(view, "---\n A \n") {
		t.Errorf("View() =\n%s", view)
	}
	if !strings.Contains(view, "[1-2/3]") {
		t.Errorf("View() missing position:\n%s", view)
	}
}

func TestDiagramModelQuit(t *testing.T) {
	m := NewDiagramModel("tree", "x")
	for _, k := range []string{"q", "esc"} {
		var msg tea.KeyMsg
		if k == "esc" {
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		} else {
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		if _, cmd := m.Update(msg); cmd == nil {
			t.Errorf("%s should quit", k)
		}
	}
}

func TestSlice(t *testing.T) {
	tests := []struct {
		s           string
		from, width int
		want        string
	}{
		{"abcdef", 0, 3, "abc"},
		{"abcdef", 4, 3, "ef"},
		{"abc", 5, 3, ""},
		{"→x", 0, 1, "→"},
	}
	for _, tt := range tests {
		if got := slice(tt.s, tt.from, tt.width); got != tt.want {
			t.Errorf("slice(%q, %d, %d) = %q, want %q", tt.s, tt.from, tt.width, got, tt.want)
		}
	}
}
