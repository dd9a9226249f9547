package grid

import (
	"fmt"
	"strings"
)

// RenderASCII renders the grid one row per line using State.Char glyphs.
// Used for the headless solver output, layout maps and golden tests.
func RenderASCII(g *Grid) string {
	var sb strings.Builder
	sb.Grow(g.size*g.size + g.size)
	for row := 0; row < g.size; row++ {
		for col := 0; col < g.size; col++ {
			sb.WriteRune(g.cells[row*g.size+col].State.Char())
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// ParseASCII builds a grid from a RenderASCII-style map. Blank lines and
// surrounding whitespace are ignored; the map must be square.
func ParseASCII(text string) (*Grid, error) {
	var rows []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("parse ascii: %w: empty map", ErrInvalidSize)
	}

	g, err := New(len(rows))
	if err != nil {
		return nil, fmt.Errorf("parse ascii: %w", err)
	}

	for row, line := range rows {
		runes := []rune(line)
		if len(runes) != len(rows) {
			return nil, fmt.Errorf("parse ascii: row %d has %d cells, want %d", row, len(runes), len(rows))
		}
		for col, r := range runes {
			s, ok := stateForChar(r)
			if !ok {
				return nil, fmt.Errorf("parse ascii: unknown glyph %q at (%d,%d)", r, row, col)
			}
			if s == Empty {
				continue
			}
			if s == Start {
				if _, dup := g.Start(); dup {
					return nil, fmt.Errorf("parse ascii: second start at (%d,%d)", row, col)
				}
			}
			if s == End {
				if _, dup := g.End(); dup {
					return nil, fmt.Errorf("parse ascii: second end at (%d,%d)", row, col)
				}
			}
			if err := g.SetState(C(row, col), s); err != nil {
				return nil, fmt.Errorf("parse ascii: %w", err)
			}
		}
	}
	return g, nil
}
