package term

import (
	"image/color"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tui "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/galton-board/internal/galton"
	"github.com/iburimskiy/galton-board/internal/render"
)

func TestCanvasSize(t *testing.T) {
	c := NewCanvas(200, 405, 5, 10)
	cols, rows := c.Size()
	assert.Equal(t, 41, cols)
	assert.Equal(t, 41, rows)
	assert.Len(t, c.Lines(), 41)
}

func TestCanvasBoard(t *testing.T) {
	g := galton.NewGeometry(200, 400, 10)
	c := NewCanvas(g.Width, g.Height+g.GridSize/2, g.GridSize/2, g.GridSize)
	c.Fill(render.DefaultStyle.Background)
	render.DrawBoard(c, g, render.DefaultStyle)

	lines := c.Lines()
	// Unshifted peg row at y=10: pegs every other column starting at 0.
	assert.True(t, strings.HasPrefix(lines[1], "· · ·"))
	// Lane dividers start at the bottom of the peg field.
	assert.Equal(t, '│', []rune(lines[25])[1])
	assert.Equal(t, ' ', []rune(lines[25])[0])
	assert.NotContains(t, lines[0], "·")
}

func TestCanvasSkipsEmptyBars(t *testing.T) {
	c := NewCanvas(40, 90, 5, 10)
	c.Line(10, 82.5, 10, 82.5, 4, color.Black, true)
	assert.NotContains(t, strings.Join(c.Lines(), ""), "█")

	c.Line(10, 82.5, 10, 60, 4, color.Black, true)
	assert.Contains(t, strings.Join(c.Lines(), ""), "█")
}

func TestCanvasClipsOutside(t *testing.T) {
	c := NewCanvas(40, 80, 5, 10)
	c.Circle(-5, 10, 2, color.Black)
	c.Circle(500, 10, 2, color.Black)
	c.Circle(10, 1000, 4, color.Black)
	assert.NotContains(t, strings.Join(c.Lines(), ""), "·")
	assert.NotContains(t, strings.Join(c.Lines(), ""), "•")
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(40, 80, 5, 10)
	c.Circle(10, 10, 4, color.RGBA{B: 255, A: 255})
	assert.Contains(t, c.String(), "•")
	assert.Equal(t, "#0000ff", string(hex(color.RGBA{B: 255, A: 255})))
}

func testModel(maxBalls int, export string) *model {
	geo := galton.NewGeometry(200, 400, 10)
	return newModel(Options{
		NewSimulation: func() *galton.Simulation {
			return galton.NewSimulation(geo, maxBalls, galton.Always(false))
		},
		Expected:   galton.Expected(geo, galton.NewFair(galton.NewRand(1))),
		Style:      render.DefaultStyle,
		TPS:        60,
		ExportPath: export,
	})
}

func press(m *model, r rune) {
	m.Update(tui.KeyMsg{Type: tui.KeyRunes, Runes: []rune{r}})
}

func TestModelAdvancesOnFrame(t *testing.T) {
	m := testModel(10, "")
	for i := 0; i < 200; i++ {
		_, cmd := m.Update(frameMsg(time.Now()))
		require.NotNil(t, cmd)
	}
	assert.True(t, m.sim.Done())
	assert.Equal(t, 9, m.sim.Histogram().Count(0))
	assert.Equal(t, 9.0, m.series[0][0])
	assert.Contains(t, m.View(), "done")
}

func TestModelPauseAndRestart(t *testing.T) {
	m := testModel(10, "")
	m.Update(frameMsg(time.Now()))
	press(m, 'p')
	frame := m.sim.FrameNumber()
	m.Update(frameMsg(time.Now()))
	assert.Equal(t, frame, m.sim.FrameNumber())
	assert.Contains(t, m.View(), "paused")

	press(m, 'r')
	assert.Zero(t, m.sim.FrameNumber())
}

func TestModelQuit(t *testing.T) {
	m := testModel(10, "")
	_, cmd := m.Update(tui.KeyMsg{Type: tui.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.IsType(t, tui.QuitMsg{}, cmd())
}

func TestModelExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hist.csv")
	m := testModel(10, path)
	for !m.sim.Done() {
		m.advance()
	}
	press(m, 'e')
	assert.NoError(t, m.err)
	assert.Equal(t, "exported "+path, m.status)
}
