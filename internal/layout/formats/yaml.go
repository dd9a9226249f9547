// Package formats provides pluggable layout file format parsers.
package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-astar/internal/grid"
)

// YAMLLayout represents the YAML structure for a layout file.
type YAMLLayout struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Size     int               `yaml:"size,omitempty"`
	Map      string            `yaml:"map,omitempty"`
	Start    *YAMLCell         `yaml:"start,omitempty"`
	End      *YAMLCell         `yaml:"end,omitempty"`
	Barriers []YAMLCell        `yaml:"barriers,omitempty"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// YAMLCell is a single cell in YAML format.
type YAMLCell struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// Layout represents a parsed layout ready for use.
type Layout struct {
	ID       string
	Name     string
	Size     int
	Start    *grid.Coord
	End      *grid.Coord
	Barriers []grid.Coord
	Metadata map[string]string
}

// ParseYAML parses a YAML layout file.
//
// A layout is either an ASCII map (see grid.ParseASCII) or a size plus
// explicit cells. Explicit start/end/barriers are applied on top of a map.
func ParseYAML(data []byte) (Layout, error) {
	var yl YAMLLayout
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Layout{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yl.ID == "" {
		return Layout{}, fmt.Errorf("missing id")
	}

	layout := Layout{
		ID:       yl.ID,
		Name:     yl.Name,
		Size:     yl.Size,
		Metadata: yl.Metadata,
	}
	if layout.Name == "" {
		layout.Name = yl.ID
	}

	if yl.Map != "" {
		g, err := grid.ParseASCII(yl.Map)
		if err != nil {
			return Layout{}, fmt.Errorf("map: %w", err)
		}
		if layout.Size != 0 && layout.Size != g.Size() {
			return Layout{}, fmt.Errorf("size %d does not match %dx%d map", layout.Size, g.Size(), g.Size())
		}
		layout.Size = g.Size()
		if c, ok := g.Start(); ok {
			layout.Start = &c
		}
		if c, ok := g.End(); ok {
			layout.End = &c
		}
		for _, c := range g.Coords() {
			if g.StateAt(c) == grid.Barrier {
				layout.Barriers = append(layout.Barriers, c)
			}
		}
	}

	if layout.Size <= 0 {
		return Layout{}, fmt.Errorf("size must be positive, got %d", layout.Size)
	}

	if yl.Start != nil {
		c := grid.C(yl.Start.Row, yl.Start.Col)
		layout.Start = &c
	}
	if yl.End != nil {
		c := grid.C(yl.End.Row, yl.End.Col)
		layout.End = &c
	}
	for _, b := range yl.Barriers {
		layout.Barriers = append(layout.Barriers, grid.C(b.Row, b.Col))
	}

	return layout, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}

// ToGrid creates a Grid from the layout data.
// Barriers are placed first so an explicit start or end wins over them.
func (l *Layout) ToGrid() (*grid.Grid, error) {
	g, err := grid.New(l.Size)
	if err != nil {
		return nil, err
	}
	for _, b := range l.Barriers {
		if err := g.SetState(b, grid.Barrier); err != nil {
			return nil, fmt.Errorf("barrier %v: %w", b, err)
		}
	}
	if l.Start != nil {
		if err := g.SetState(*l.Start, grid.Start); err != nil {
			return nil, fmt.Errorf("start %v: %w", *l.Start, err)
		}
	}
	if l.End != nil {
		if err := g.SetState(*l.End, grid.End); err != nil {
			return nil, fmt.Errorf("end %v: %w", *l.End, err)
		}
	}
	return g, nil
}

// MarshalYAML encodes g as a map-based layout. Search marks are dropped.
func MarshalYAML(id, name string, g *grid.Grid) ([]byte, error) {
	clean := g.Clone()
	clean.ClearSearch()
	out, err := yaml.Marshal(YAMLLayout{
		ID:   id,
		Name: name,
		Size: clean.Size(),
		Map:  grid.RenderASCII(clean),
	})
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return out, nil
}
