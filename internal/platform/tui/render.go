package tui

import (
	"strings"

	"github.com/vovakirdan/tui-astar/internal/grid"
)

// Board layout on screen. The grid starts below the title line and every
// cell is two columns wide so it looks roughly square in a terminal.
const (
	gridTop   = 1
	cellWidth = 2
)

// cellGlyph returns the two-column text for a cell state.
func cellGlyph(s grid.State) string {
	if s == grid.Barrier {
		return "██"
	}
	return string(s.Char()) + " "
}

// CellAt maps a terminal position to the grid cell drawn there.
// Returns false when the position is outside the board.
func CellAt(x, y, size int) (grid.Coord, bool) {
	if x < 0 || y < gridTop {
		return grid.Coord{}, false
	}
	c := grid.C(y-gridTop, x/cellWidth)
	if c.Row >= size || c.Col >= size {
		return grid.Coord{}, false
	}
	return c, true
}

// RenderGrid converts a grid to a styled string for display.
// Groups adjacent cells with the same state to minimize ANSI escape sequences.
// cursor may be nil.
func RenderGrid(g *grid.Grid, theme Theme, cursor *grid.Coord) string {
	n := g.Size()
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(n*n*cellWidth*2 + n)

	for row := 0; row < n; row++ {
		if row > 0 {
			sb.WriteRune('\n')
		}

		col := 0
		for col < n {
			c := grid.C(row, col)
			if cursor != nil && *cursor == c {
				style := theme.Cursor.Inherit(theme.Style(g.StateAt(c)))
				sb.WriteString(style.Render(cellGlyph(g.StateAt(c))))
				col++
				continue
			}

			// Collect consecutive cells with the same state, stopping at the cursor
			state := g.StateAt(c)
			var run strings.Builder
			for col < n {
				c = grid.C(row, col)
				if g.StateAt(c) != state || (cursor != nil && *cursor == c) {
					break
				}
				run.WriteString(cellGlyph(state))
				col++
			}
			sb.WriteString(theme.Style(state).Render(run.String()))
		}
	}
	return sb.String()
}

// legend renders one sample of every state with its name.
func legend(theme Theme) string {
	states := []grid.State{grid.Start, grid.End, grid.Barrier, grid.Frontier, grid.Visited, grid.Path}
	parts := make([]string, len(states))
	for i, s := range states {
		parts[i] = theme.Style(s).Render(cellGlyph(s)) + theme.HUDControls.Render(s.String())
	}
	return strings.Join(parts, "  ")
}
