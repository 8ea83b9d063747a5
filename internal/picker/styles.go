package picker

import "github.com/charmbracelet/lipgloss"

var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00cccc"))

	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688"))

	Selected = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff"))

	Marker = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00ffff"))

	Description = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff88ff"))

	Dimmed = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#555566"))

	KeyHint = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00aaaa"))

	Preview = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444466")).
		Foreground(lipgloss.Color("#00ff88")).
		Padding(0, 1)
)

// Hints renders "key label" pairs the way the footer shows them.
func Hints(pairs ...string) string {
	var out string
	for i := 0; i+1 < len(pairs); i += 2 {
		out += KeyHint.Render(pairs[i]) + Dimmed.Render(" "+pairs[i+1]+"  ")
	}
	return out
}

// Swatch renders a two-cell block in the given hex colour.
func Swatch(hex string) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ")
}
