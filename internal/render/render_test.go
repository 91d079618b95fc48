package render

import (
	"fmt"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/galton-board/internal/galton"
)

// recorder keeps every draw call as a string.
type recorder struct {
	calls []string
}

func (r *recorder) Fill(c color.Color) {
	r.calls = append(r.calls, fmt.Sprintf("fill %v", c))
}

func (r *recorder) Circle(x, y, d float64, c color.Color) {
	r.calls = append(r.calls, fmt.Sprintf("circle %v %v %v %v", x, y, d, c))
}

func (r *recorder) Line(x1, y1, x2, y2, w float64, c color.Color, round bool) {
	r.calls = append(r.calls, fmt.Sprintf("line %v %v %v %v %v %v %v", x1, y1, x2, y2, w, c, round))
}

func (r *recorder) count(prefix string) int {
	n := 0
	for _, c := range r.calls {
		if len(c) >= len(prefix) && c[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}

func TestDrawFrameIsIdempotent(t *testing.T) {
	sim := galton.NewSimulation(galton.NewGeometry(200, 400, 10), 200, galton.NewFair(galton.NewRand(5)))
	sim.Run(300)

	var a, b recorder
	DrawFrame(&a, sim, DefaultStyle)
	DrawFrame(&b, sim, DefaultStyle)

	require.NotEmpty(t, a.calls)
	assert.Equal(t, a.calls, b.calls)
}

func TestDrawFrameDoesNotMutate(t *testing.T) {
	sim := galton.NewSimulation(galton.NewGeometry(200, 400, 10), 200, galton.NewFair(galton.NewRand(5)))
	sim.Run(500)
	before := sim.Histogram().Counts()
	active := sim.ActiveCount()

	DrawFrame(&recorder{}, sim, DefaultStyle)

	assert.Equal(t, before, sim.Histogram().Counts())
	assert.Equal(t, active, sim.ActiveCount())
}

func TestDrawBoard(t *testing.T) {
	g := galton.NewGeometry(200, 400, 10)
	var r recorder
	DrawBoard(&r, g, DefaultStyle)

	// 19 peg rows of 21 pegs, 20 lane dividers.
	assert.Equal(t, 19*21, r.count("circle"))
	assert.Equal(t, 20, r.count("line"))
	assert.Contains(t, r.calls, fmt.Sprintf("circle -5 20 2 %v", DefaultStyle.Peg))
	assert.Contains(t, r.calls, fmt.Sprintf("circle 0 10 2 %v", DefaultStyle.Peg))
	assert.Contains(t, r.calls, fmt.Sprintf("line 5 200 5 400 1 %v false", DefaultStyle.Divider))
}

func TestDrawBars(t *testing.T) {
	g := galton.NewGeometry(40, 80, 10)
	sim := galton.NewSimulation(g, 2, galton.Always(false))
	sim.Run(0)

	var r recorder
	DrawBars(&r, g, sim.Histogram(), DefaultStyle)

	require.Len(t, r.calls, 3)
	w := g.GridSize/3 + 1
	assert.Equal(t, fmt.Sprintf("line 10 82.5 10 82 %v %v true", w, DefaultStyle.Bar), r.calls[0])
	assert.Equal(t, fmt.Sprintf("line 20 82.5 20 82.5 %v %v true", w, DefaultStyle.Bar), r.calls[1])
}

func TestRainbowPalette(t *testing.T) {
	st := DefaultStyle
	assert.Equal(t, st.Ball, st.LaneColor(st.Ball, 3, 19))

	st.Palette = Rainbow
	first := st.LaneColor(st.Ball, 0, 19)
	last := st.LaneColor(st.Ball, 18, 19)
	assert.NotEqual(t, first, last)
	assert.Equal(t, color.RGBA{R: 229, G: 45, B: 45, A: 255}, first)
}

func TestParsePalette(t *testing.T) {
	p, err := ParsePalette("rainbow")
	require.NoError(t, err)
	assert.Equal(t, Rainbow, p)
	assert.Equal(t, "rainbow", p.String())

	_, err = ParsePalette("neon")
	assert.Error(t, err)
}
