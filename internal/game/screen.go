package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// screen adapts an ebiten image to render.Surface. Board units map 1:1 to
// logical pixels; ebiten scales the result to the window.
type screen struct {
	dst *ebiten.Image
}

func (s screen) Fill(c color.Color) {
	s.dst.Fill(c)
}

func (s screen) Circle(x, y, diameter float64, c color.Color) {
	vector.DrawFilledCircle(s.dst, float32(x), float32(y), float32(diameter/2), c, true)
}

func (s screen) Line(x1, y1, x2, y2, width float64, c color.Color, round bool) {
	vector.StrokeLine(s.dst, float32(x1), float32(y1), float32(x2), float32(y2), float32(width), c, true)
	if round {
		r := float32(width / 2)
		vector.DrawFilledCircle(s.dst, float32(x1), float32(y1), r, c, true)
		vector.DrawFilledCircle(s.dst, float32(x2), float32(y2), r, c, true)
	}
}
