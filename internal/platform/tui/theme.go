package tui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-astar/internal/grid"
)

// Theme contains all configurable visual styles for the editor.
type Theme struct {
	// Cell styles keyed by grid state
	Cells map[grid.State]lipgloss.Style

	// Cursor marks the cell under the keyboard cursor
	Cursor lipgloss.Style

	// HUD styles
	HUDTitle    lipgloss.Style
	HUDValue    lipgloss.Style
	HUDControls lipgloss.Style
	HUDError    lipgloss.Style
}

// DefaultTheme follows the classic visualizer palette: orange start,
// turquoise end, green frontier, red visited, purple path.
func DefaultTheme() Theme {
	return Theme{
		Cells: map[grid.State]lipgloss.Style{
			grid.Empty:    lipgloss.NewStyle().Foreground(lipgloss.Color("238")), // Dark gray dot
			grid.Start:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // Orange
			grid.End:      lipgloss.NewStyle().Foreground(lipgloss.Color("80")),  // Turquoise
			grid.Barrier:  lipgloss.NewStyle().Foreground(lipgloss.Color("255")), // White block
			grid.Frontier: lipgloss.NewStyle().Foreground(lipgloss.Color("46")),  // Green
			grid.Visited:  lipgloss.NewStyle().Foreground(lipgloss.Color("160")), // Red
			grid.Path:     lipgloss.NewStyle().Foreground(lipgloss.Color("129")), // Purple
		},
		Cursor: lipgloss.NewStyle().Reverse(true),

		HUDTitle:    lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		HUDValue:    lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		HUDControls: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		HUDError:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	}
}

// NeonTheme returns a neon-style theme.
func NeonTheme() Theme {
	theme := DefaultTheme()
	theme.Cells = cloneCells(theme.Cells)
	theme.Cells[grid.Start] = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)
	theme.Cells[grid.End] = lipgloss.NewStyle().Foreground(lipgloss.Color("87")).Bold(true)
	theme.Cells[grid.Frontier] = lipgloss.NewStyle().Foreground(lipgloss.Color("118"))
	theme.Cells[grid.Visited] = lipgloss.NewStyle().Foreground(lipgloss.Color("199"))
	theme.Cells[grid.Path] = lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true)
	return theme
}

// MonochromeTheme returns a grayscale theme. Glyphs alone tell states apart.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.Cells = cloneCells(theme.Cells)
	theme.Cells[grid.Start] = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.Cells[grid.End] = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.Cells[grid.Frontier] = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	theme.Cells[grid.Visited] = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	theme.Cells[grid.Path] = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	return theme
}

var themes = map[string]func() Theme{
	"default": DefaultTheme,
	"neon":    NeonTheme,
	"mono":    MonochromeTheme,
}

// ThemeByName returns the named theme, or the default theme and false.
func ThemeByName(name string) (Theme, bool) {
	if f, ok := themes[name]; ok {
		return f(), true
	}
	return DefaultTheme(), false
}

// ThemeNames returns the available theme names in sorted order.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Style returns the style for s, falling back to the Empty style.
func (t Theme) Style(s grid.State) lipgloss.Style {
	if style, ok := t.Cells[s]; ok {
		return style
	}
	return t.Cells[grid.Empty]
}

func cloneCells(src map[grid.State]lipgloss.Style) map[grid.State]lipgloss.Style {
	dst := make(map[grid.State]lipgloss.Style, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
