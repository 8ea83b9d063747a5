// Package picker is a small bubbletea menu for choosing a pattern.
package picker

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/san-kum/termgrid/internal/life"
)

const (
	previewWidth  = 24
	previewHeight = 12
	descWidth     = 32
)

type Entry struct {
	Name        string
	Description string
	Pattern     *life.Pattern
}

type Model struct {
	entries   []Entry
	visible   []int
	cursor    int
	filter    string
	filtering bool
	chosen    string
	cancelled bool
}

func New(entries []Entry) Model {
	m := Model{entries: entries}
	m.applyFilter()
	return m
}

// FromRegistry lists every pattern of reg.
func FromRegistry(reg *life.Registry) []Entry {
	names := reg.ListPatterns()
	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		p, err := reg.Pattern(name)
		if err != nil {
			continue
		}
		entries = append(entries, Entry{Name: name, Description: p.Description, Pattern: p})
	}
	return entries
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if m.filtering {
		return m.filterKey(key)
	}

	switch key.String() {
	case "q", "esc", "ctrl+c":
		m.cancelled = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
	case "/":
		m.filtering = true
	case "enter", " ":
		if len(m.visible) > 0 {
			m.chosen = m.entries[m.visible[m.cursor]].Name
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) filterKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyCtrlC:
		m.cancelled = true
		return m, tea.Quit
	case tea.KeyEsc:
		m.filtering = false
		m.filter = ""
	case tea.KeyEnter:
		m.filtering = false
		return m, nil
	case tea.KeyBackspace:
		if r := []rune(m.filter); len(r) > 0 {
			m.filter = string(r[:len(r)-1])
		}
	case tea.KeyUp:
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case tea.KeyDown:
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
		return m, nil
	case tea.KeyRunes, tea.KeySpace:
		m.filter += string(key.Runes)
	default:
		return m, nil
	}
	m.applyFilter()
	return m, nil
}

func (m *Model) applyFilter() {
	m.visible = m.visible[:0]
	if m.filter == "" {
		for i := range m.entries {
			m.visible = append(m.visible, i)
		}
	} else {
		names := make([]string, len(m.entries))
		for i, e := range m.entries {
			names[i] = e.Name
		}
		for _, match := range fuzzy.Find(m.filter, names) {
			m.visible = append(m.visible, match.Index)
		}
	}
	m.cursor = min(m.cursor, max(len(m.visible)-1, 0))
}

// Chosen returns the selected pattern name, or "" if the picker was
// cancelled.
func (m Model) Chosen() string {
	if m.cancelled {
		return ""
	}
	return m.chosen
}

func (m Model) Cancelled() bool { return m.cancelled }

func (m Model) View() string {
	var b strings.Builder
	b.WriteString("\n  " + Title.Render("TERMGRID") + "\n  " + Subtle.Render("pick a starting pattern") + "\n")
	if m.filtering || m.filter != "" {
		cursor := ""
		if m.filtering {
			cursor = "_"
		}
		b.WriteString("  " + KeyHint.Render("/") + " " + m.filter + cursor + "\n")
	}
	b.WriteString("\n")

	for row, idx := range m.visible {
		e := m.entries[idx]
		desc := e.Description
		if len(desc) > descWidth {
			desc = desc[:descWidth-3] + "..."
		}
		if row == m.cursor {
			b.WriteString(fmt.Sprintf("  %s %s  %s\n", Marker.Render("▸"), Selected.Render(fmt.Sprintf("%-12s", e.Name)), Description.Render(desc)))
		} else {
			b.WriteString(fmt.Sprintf("    %s  %s\n", Dimmed.Render(fmt.Sprintf("%-12s", e.Name)), Dimmed.Render(desc)))
		}
	}
	if len(m.visible) == 0 {
		b.WriteString("  " + Subtle.Render("no matches") + "\n")
	} else if p := m.entries[m.visible[m.cursor]].Pattern; p != nil {
		b.WriteString("\n" + Preview.Render(PreviewText(p, previewWidth, previewHeight)) + "\n")
	}

	b.WriteString("\n  " + Hints("j/k", "navigate", "/", "filter", "enter", "select", "q", "quit") + "\n")
	return b.String()
}

// PreviewText draws the top-left corner of p as text.
func PreviewText(p *life.Pattern, width, height int) string {
	w, h := min(p.Width, width), min(p.Height, height)
	grid := make([][]rune, h)
	for y := range grid {
		grid[y] = []rune(strings.Repeat("·", w))
	}
	for _, c := range p.Cells {
		if c[0] < w && c[1] < h {
			grid[c[1]][c[0]] = '█'
		}
	}
	lines := make([]string, h)
	for y, row := range grid {
		lines[y] = string(row)
	}
	return strings.Join(lines, "\n")
}

// Run shows the picker and returns the chosen name, "" when cancelled.
func Run(entries []Entry) (string, error) {
	final, err := tea.NewProgram(New(entries), tea.WithAltScreen()).Run()
	if err != nil {
		return "", err
	}
	return final.(Model).Chosen(), nil
}
