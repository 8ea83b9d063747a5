package picker

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/termgrid/internal/life"
)

func press(m Model, keys ...string) Model {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "backspace":
			msg = tea.KeyMsg{Type: tea.KeyBackspace}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func testEntries() []Entry {
	return FromRegistry(life.NewRegistry())
}

func TestFromRegistry(t *testing.T) {
	entries := testEntries()
	if len(entries) != len(life.NewRegistry().ListPatterns()) {
		t.Fatalf("expected every pattern, got %d", len(entries))
	}
	for _, e := range entries {
		if e.Pattern == nil {
			t.Errorf("entry %s has no pattern", e.Name)
		}
	}
}

func TestNavigateAndChoose(t *testing.T) {
	m := New(testEntries())
	names := life.NewRegistry().ListPatterns()

	m = press(m, "j", "j", "k", "down")
	if m.cursor != 2 {
		t.Fatalf("expected cursor 2, got %d", m.cursor)
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	if cmd == nil {
		t.Error("enter should quit the program")
	}
	if m.Chosen() != names[2] {
		t.Errorf("expected %s, got %s", names[2], m.Chosen())
	}
}

func TestCursorStaysInRange(t *testing.T) {
	m := New(testEntries())
	m = press(m, "k", "up")
	if m.cursor != 0 {
		t.Errorf("expected cursor 0, got %d", m.cursor)
	}
	for i := 0; i < 50; i++ {
		m = press(m, "j")
	}
	if m.cursor != len(m.entries)-1 {
		t.Errorf("expected cursor at last entry, got %d", m.cursor)
	}
}

func TestCancel(t *testing.T) {
	m := press(New(testEntries()), "q")
	if !m.Cancelled() || m.Chosen() != "" {
		t.Error("q should cancel without a choice")
	}
}

func TestFilter(t *testing.T) {
	m := press(New(testEntries()), "/", "g", "l", "d")
	if !m.filtering {
		t.Fatal("expected filter mode")
	}
	if len(m.visible) == 0 || m.entries[m.visible[0]].Name != "glider" {
		t.Fatalf("expected glider first, got %v", m.visible)
	}

	m = press(m, "enter", "enter")
	if m.Chosen() != "glider" {
		t.Errorf("expected glider, got %q", m.Chosen())
	}
}

func TestFilterEscapeClears(t *testing.T) {
	m := press(New(testEntries()), "/", "z", "z", "z", "z")
	if len(m.visible) != 0 {
		t.Errorf("expected no matches, got %d", len(m.visible))
	}
	if !strings.Contains(m.View(), "no matches") {
		t.Error("view should report no matches")
	}

	m = press(m, "backspace", "esc")
	if m.filtering || m.filter != "" {
		t.Error("esc should leave filter mode and clear the query")
	}
	if len(m.visible) != len(m.entries) {
		t.Error("clearing the filter should show every entry")
	}
}

func TestView(t *testing.T) {
	view := New(testEntries()).View()
	for _, want := range []string{"TERMGRID", "acorn", "navigate"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestPreviewText(t *testing.T) {
	p, err := life.ParseCells(".O.\n..O\nOOO\n")
	if err != nil {
		t.Fatal(err)
	}
	want := "·█·\n··█\n███"
	if got := PreviewText(p, 10, 10); got != want {
		t.Errorf("expected\n%s\ngot\n%s", want, got)
	}
	if got := PreviewText(p, 2, 1); got != "·█" {
		t.Errorf("expected clipped preview, got %q", got)
	}
}
