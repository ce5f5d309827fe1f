// Package palette resolves color names and hex codes and provides the
// built-in wave palettes.
package palette

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Material is the default set of wave colors.
var Material = []string{
	"#F44336", "#E91E63", "#9C27B0", "#673AB7", "#3F51B5",
	"#2196F3", "#03A9F4", "#00BCD4", "#009688", "#4CAF50",
	"#8BC34A", "#CDDC39", "#FFEB3B", "#FFC107", "#FF9800",
	"#FF5722", "#795548", "#9E9E9E", "#607D8B",
}

// Parse accepts "#rgb", "#rrggbb", an SVG color name or "transparent".
func Parse(s string) (color.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "":
		return color.RGBA{}, fmt.Errorf("palette: empty color")
	case s == "transparent":
		return color.RGBA{}, nil
	case strings.HasPrefix(s, "#"):
		c, err := colorful.Hex(s)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("palette: bad hex color %q: %w", s, err)
		}
		r, g, b := c.RGB255()
		return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
	}
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	return color.RGBA{}, fmt.Errorf("palette: unknown color %q", s)
}

// ParseAll parses every entry, failing on the first bad one.
func ParseAll(names []string) ([]color.Color, error) {
	out := make([]color.Color, 0, len(names))
	for _, n := range names {
		c, err := Parse(n)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// Lookup resolves a palette name: "material", "rainbow[:N]" or a
// comma-separated list of colors.
func Lookup(name string) ([]color.Color, error) {
	name = strings.TrimSpace(name)
	switch {
	case name == "" || name == "material":
		return ParseAll(Material)
	case name == "rainbow":
		return Rainbow(12), nil
	case strings.HasPrefix(name, "rainbow:"):
		var n int
		if _, err := fmt.Sscanf(name, "rainbow:%d", &n); err != nil || n <= 0 {
			return nil, fmt.Errorf("palette: bad rainbow size in %q", name)
		}
		return Rainbow(n), nil
	}
	return ParseAll(strings.Split(name, ","))
}

// Rainbow returns n colors with evenly spaced hues.
func Rainbow(n int) []color.Color {
	out := make([]color.Color, 0, n)
	for i := 0; i < n; i++ {
		hue := float64(i) * 360 / float64(n)
		r, g, b := colorful.Hsv(hue, 0.8, 0.9).Clamped().RGB255()
		out = append(out, color.RGBA{R: r, G: g, B: b, A: 0xff})
	}
	return out
}
