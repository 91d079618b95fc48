package render

import (
	"fmt"
	"image/color"
	"math"
)

// Palette selects how balls and bars are coloured.
type Palette int

const (
	Classic Palette = iota // one colour for everything
	Rainbow                // hue by lane
)

func ParsePalette(s string) (Palette, error) {
	switch s {
	case "classic", "":
		return Classic, nil
	case "rainbow":
		return Rainbow, nil
	}
	return Classic, fmt.Errorf("unknown palette %q", s)
}

func (p Palette) String() string {
	if p == Rainbow {
		return "rainbow"
	}
	return "classic"
}

// Style holds every colour the renderer uses.
type Style struct {
	Background color.RGBA
	Peg        color.RGBA
	Divider    color.RGBA
	Ball       color.RGBA
	Bar        color.RGBA
	Expected   color.RGBA
	Palette    Palette
}

var DefaultStyle = Style{
	Background: color.RGBA{R: 237, G: 221, B: 183, A: 255},
	Peg:        color.RGBA{R: 100, G: 100, B: 100, A: 255},
	Divider:    color.RGBA{R: 100, G: 100, B: 100, A: 255},
	Ball:       color.RGBA{B: 255, A: 255},
	Bar:        color.RGBA{B: 255, A: 255},
	Expected:   color.RGBA{R: 200, G: 40, B: 40, A: 160},
}

// LaneColor is the colour for balls and bars in lane out of lanes.
func (s Style) LaneColor(base color.RGBA, lane, lanes int) color.RGBA {
	if s.Palette != Rainbow || lanes <= 0 {
		return base
	}
	hue := 300 * clamp01(float64(lane)/float64(lanes))
	r, g, b := hsvToRgb(hue, 0.8, 0.9)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// hsvToRgb converts HSV to RGB (hue: 0-360, saturation: 0-1, value: 0-1)
func hsvToRgb(h, s, v float64) (uint8, uint8, uint8) {
	h = math.Mod(h, 360)
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return uint8((r + m) * 255), uint8((g + m) * 255), uint8((b + m) * 255)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
