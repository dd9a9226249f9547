// Package registry provides a global registry for barrier pattern factories.
// Patterns register themselves in init() functions, allowing the editor and
// the CLI to discover and apply them without hardcoded dependencies.
package registry

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-astar/internal/grid"
)

// Pattern is the interface that all barrier generators implement.
// Patterns contain pure grid logic with no UI dependencies.
type Pattern interface {
	// ID returns a unique identifier for this pattern (e.g., "maze").
	// Used for CLI flags, config and run history.
	ID() string

	// Title returns a human-readable name for display (e.g., "Maze").
	Title() string

	// Apply replaces the barriers of g. Start and End keep their cells and
	// search marks are cleared. All randomness comes from rng.
	Apply(g *grid.Grid, rng *rand.Rand)
}

// PatternInfo contains metadata about a registered pattern.
type PatternInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a pattern.
type Factory func() Pattern

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a pattern factory to the registry.
// Typically called from a pattern's init() function.
// Panics if a pattern with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: pattern %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	p := f()
	titles[id] = p.Title()
}

// List returns information about all registered patterns, sorted by ID.
func List() []PatternInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PatternInfo, 0, len(factories))
	for id := range factories {
		result = append(result, PatternInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new pattern by its ID.
// Returns an error if the pattern ID is not registered.
func Create(id string) (Pattern, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown pattern %q", id)
	}

	return f(), nil
}

// Exists checks if a pattern with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
