package main

import (
	"fmt"
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an opaque RGB value. Two colors are the same token when == holds.
type Color struct {
	R, G, B uint8
}

// ParseColor accepts "#rrggbb" or "#rgb", with or without the leading '#'.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(strings.ToLower(s))
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.Clamped().RGB255()
	return Color{R: r, G: g, B: b}, nil
}

func mustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex formats the color as "#rrggbb".
func (c Color) Hex() string {
	return c.colorful().Hex()
}

func (c Color) String() string {
	return c.Hex()
}

func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// contrastColor picks black or white text for a swatch of color c.
func contrastColor(c Color) Color {
	_, _, l := c.colorful().Hcl()
	if l > 0.6 {
		return Color{}
	}
	return Color{R: 0xff, G: 0xff, B: 0xff}
}

var defaultColor = mustParseColor("#e8e8e8")

var paletteColors = func() []Color {
	hexes := []string{
		"#000000", "#333333", "#555555", "#777777", "#aaaaaa", "#ffffff",
		"#e8e8e8", "#d4d4d4", "#b0b0b0", "#808080", "#404040", "#1a1a1a",
		"#ff0000", "#ff4444", "#ff8888", "#cc0000", "#880000", "#440000",
		"#ff8800", "#ffaa44", "#ffcc88", "#cc6600", "#884400", "#442200",
		"#ffff00", "#ffff44", "#ffff88", "#cccc00", "#888800", "#444400",
		"#00ff00", "#44ff44", "#88ff88", "#00cc00", "#008800", "#004400",
		"#00ffff", "#44ffff", "#88ffff", "#00cccc", "#008888", "#004444",
		"#0000ff", "#4444ff", "#8888ff", "#0000cc", "#000088", "#000044",
		"#ff00ff", "#ff44ff", "#ff88ff", "#cc00cc", "#880088", "#440044",
		"#ff0088", "#ff4488", "#ff88aa", "#cc0066", "#880044", "#440022",
	}
	colors := make([]Color, len(hexes))
	for i, h := range hexes {
		colors[i] = mustParseColor(h)
	}
	return colors
}()

// pushRecent moves c to the front of recent, keeping at most maxRecentColors.
func pushRecent(recent []Color, c Color) []Color {
	out := make([]Color, 0, maxRecentColors)
	out = append(out, c)
	for _, r := range recent {
		if r == c {
			continue
		}
		if len(out) == maxRecentColors {
			break
		}
		out = append(out, r)
	}
	return out
}
