// Package layout loads saved grid layouts from disk.
// This package depends on grid but grid does not depend on layout.
package layout

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-astar/internal/grid"
	"github.com/vovakirdan/tui-astar/internal/layout/formats"
)

// Layout represents a complete layout definition.
type Layout struct {
	formats.Layout
	FilePath string
}

// Loader handles loading layouts from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new layout loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all layout files.
// Returns layouts sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Layout, error) {
	var layouts []Layout

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !isSupportedExtension(ext) {
			return nil
		}

		layout, err := l.LoadFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}

		layouts = append(layouts, layout)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	// Sort by ID for determinism
	sort.Slice(layouts, func(i, j int) bool {
		return layouts[i].ID < layouts[j].ID
	})

	return layouts, nil
}

// LoadFile loads a single layout file.
func (l *Loader) LoadFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	parsed, err := parseByExtension(data, ext)
	if err != nil {
		return Layout{}, fmt.Errorf("parsing file %s: %w", path, err)
	}

	return Layout{Layout: parsed, FilePath: path}, nil
}

// LoadByID loads a specific layout by ID.
func (l *Loader) LoadByID(id string) (Layout, error) {
	layouts, err := l.LoadAll()
	if err != nil {
		return Layout{}, err
	}

	for _, lay := range layouts {
		if lay.ID == id {
			return lay, nil
		}
	}

	return Layout{}, fmt.Errorf("layout not found: %s", id)
}

// ListIDs returns all layout IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	layouts, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(layouts))
	for i, lay := range layouts {
		ids[i] = lay.ID
	}
	return ids, nil
}

// Resolve loads ref as a file path when it names an existing file, and as
// a layout ID under the loader root otherwise.
func (l *Loader) Resolve(ref string) (Layout, error) {
	if info, err := os.Stat(ref); err == nil && !info.IsDir() {
		return l.LoadFile(ref)
	}
	return l.LoadByID(ref)
}

// Save writes g as an ASCII-map layout file under the loader root.
func (l *Loader) Save(id, name string, g *grid.Grid) (string, error) {
	if id == "" {
		return "", fmt.Errorf("layout id is empty")
	}
	if err := os.MkdirAll(l.Root, 0o755); err != nil {
		return "", fmt.Errorf("creating directory %s: %w", l.Root, err)
	}
	data, err := formats.MarshalYAML(id, name, g)
	if err != nil {
		return "", err
	}
	path := filepath.Join(l.Root, id+".yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Layout, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return formats.Layout{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
