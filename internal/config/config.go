package config

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/example/sketchpad/internal/sketch"
	"github.com/example/sketchpad/internal/theme"
)

// Notify holds notification settings.
type Notify struct {
	Submit bool
}

// Config holds the application configuration.
type Config struct {
	Theme       string
	Thickness   int
	Mode        sketch.Mode
	StrokeColor color.RGBA
	Notify      Notify
	Themes      map[string]*theme.Theme
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		Theme:       "", // Default to empty to allow fallback to Env/Default
		Thickness:   sketch.DefaultThickness,
		Mode:        sketch.ModePen,
		StrokeColor: color.RGBA{0, 0, 0, 255},
		Notify: Notify{
			Submit: false,
		},
		Themes: make(map[string]*theme.Theme),
	}
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	// Root section
	if c.Theme != "" {
		fmt.Fprintf(&sb, "theme = %s\n", c.Theme)
	}
	fmt.Fprintf(&sb, "thickness = %d\n", c.Thickness)
	fmt.Fprintf(&sb, "mode = %s\n", c.Mode)
	fmt.Fprintf(&sb, "stroke_color = %s\n", theme.Hex(c.StrokeColor))
	sb.WriteString("\n")

	// Notify section
	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "submit = %v\n", c.Notify.Submit)
	sb.WriteString("\n")

	// Sort keys for deterministic output
	var themeNames []string
	for name := range c.Themes {
		themeNames = append(themeNames, name)
	}
	sort.Strings(themeNames)

	for _, name := range themeNames {
		t := c.Themes[name]
		fmt.Fprintf(&sb, "[theme.%s]\n", name)
		fmt.Fprintf(&sb, "Name: %s\n", t.Name)
		for _, f := range t.Fields() {
			fmt.Fprintf(&sb, "%s: %s\n", f.Name, theme.Hex(f.Color))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
