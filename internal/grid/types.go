// Package grid provides the square grid model searched by the pathfinder.
// This package is UI-agnostic: cells carry a semantic State only, and the
// presentation layer owns the mapping from State to color.
package grid

import (
	"errors"
	"strings"
)

var (
	// ErrOutOfBounds is returned when a coordinate lies outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")

	// ErrInvalidSize is returned when a grid is created with fewer than one row.
	ErrInvalidSize = errors.New("grid: size must be at least 1")

	// ErrInvalidState is returned when an unknown State is assigned.
	ErrInvalidState = errors.New("grid: invalid cell state")
)

// State is the semantic content of a single cell.
type State uint8

const (
	Empty State = iota
	Start
	End
	Barrier
	Frontier // discovered, still queued
	Visited  // popped and expanded
	Path
)

// stateCount is the number of valid states.
const stateCount = 7

// String returns the lowercase name of the state.
func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case Start:
		return "start"
	case End:
		return "end"
	case Barrier:
		return "barrier"
	case Frontier:
		return "frontier"
	case Visited:
		return "visited"
	case Path:
		return "path"
	default:
		return "unknown"
	}
}

// Char returns the ASCII glyph used for this state in text renderings.
func (s State) Char() rune {
	switch s {
	case Start:
		return 'S'
	case End:
		return 'E'
	case Barrier:
		return '#'
	case Frontier:
		return 'o'
	case Visited:
		return 'x'
	case Path:
		return '*'
	default:
		return '.'
	}
}

// Valid reports whether s is one of the defined states.
func (s State) Valid() bool {
	return s < stateCount
}

// IsSearchMark reports whether the state is written by a search run
// (Frontier, Visited or Path) rather than by the editor.
func (s State) IsSearchMark() bool {
	return s == Frontier || s == Visited || s == Path
}

// ParseState converts a name (case-insensitive) into a State.
func ParseState(name string) (State, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "empty":
		return Empty, true
	case "start":
		return Start, true
	case "end":
		return End, true
	case "barrier", "wall":
		return Barrier, true
	case "frontier", "open":
		return Frontier, true
	case "visited", "closed":
		return Visited, true
	case "path":
		return Path, true
	default:
		return Empty, false
	}
}

// stateForChar is the inverse of State.Char.
func stateForChar(r rune) (State, bool) {
	switch r {
	case '.', ' ':
		return Empty, true
	case 'S', 's':
		return Start, true
	case 'E', 'e':
		return End, true
	case '#':
		return Barrier, true
	case 'o':
		return Frontier, true
	case 'x':
		return Visited, true
	case '*':
		return Path, true
	default:
		return Empty, false
	}
}

// Cell is one grid position.
type Cell struct {
	Row   int
	Col   int
	State State

	neighbors      []Coord
	neighborsValid bool
}

// Coord returns the cell's position.
func (c *Cell) Coord() Coord {
	return Coord{Row: c.Row, Col: c.Col}
}
