package editor

import (
	"fmt"
	"strings"

	"CurveBoard/internal/state"
)

// Tool is the active editing tool.
type Tool uint8

const (
	ToolDraw Tool = iota
	ToolColor
	ToolDelete
)

func ParseTool(s string) (Tool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "draw":
		return ToolDraw, nil
	case "color":
		return ToolColor, nil
	case "delete":
		return ToolDelete, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTool, s)
}

func (t Tool) String() string {
	switch t {
	case ToolDraw:
		return "draw"
	case ToolColor:
		return "color"
	case ToolDelete:
		return "delete"
	}
	return fmt.Sprintf("Tool(%d)", uint8(t))
}

// Swatch is a named paint color offered by the toolbar.
type Swatch struct {
	Name string
	Hex  string
}

// DefaultPalette is the set of paint colors; the first one is the default.
var DefaultPalette = []Swatch{
	{"dark", "#3f3f3f"},
	{"grey", "#9e9e9e"},
	{"white", "#ffffff"},
	{"blue", "#4DB5F2"},
	{"red", "#F44336"},
	{"pink", "#E91E63"},
	{"lime", "#CDDC39"},
	{"yellow", "#ffeb3b"},
	{"orange", "#ff9800"},
}

// Config is the initial mode of a Session.
type Config struct {
	Degree     state.Degree
	Tool       Tool
	Continuity state.Continuity
	Color      string
	Palette    []Swatch
}

func DefaultConfig() Config {
	return Config{
		Degree:     state.Quadratic,
		Tool:       ToolDraw,
		Continuity: state.C0,
		Color:      DefaultPalette[0].Hex,
		Palette:    DefaultPalette,
	}
}

// Validate checks every field and returns the first problem found.
func (c Config) Validate() error {
	if c.Degree > state.Cubic {
		return fmt.Errorf("config: %w: %d", state.ErrUnknownDegree, c.Degree)
	}
	if c.Tool > ToolDelete {
		return fmt.Errorf("config: %w: %d", ErrUnknownTool, c.Tool)
	}
	if c.Continuity > state.C2 {
		return fmt.Errorf("config: %w: %d", state.ErrUnknownContinuity, c.Continuity)
	}
	if _, err := state.ParseColor(c.Color); err != nil {
		return fmt.Errorf("config: paint color: %w", err)
	}
	for _, s := range c.Palette {
		if _, err := state.ParseColor(s.Hex); err != nil {
			return fmt.Errorf("config: swatch %s: %w", s.Name, err)
		}
	}
	return nil
}
