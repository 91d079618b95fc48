package game

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/galton-board/internal/galton"
	"github.com/iburimskiy/galton-board/internal/render"
	"github.com/iburimskiy/galton-board/internal/report"
)

func testOptions(maxBalls int) Options {
	geo := galton.NewGeometry(200, 400, 10)
	return Options{
		NewSimulation: func() *galton.Simulation {
			return galton.NewSimulation(geo, maxBalls, galton.Always(true))
		},
		Style: render.DefaultStyle,
		TPS:   60,
		Scale: 2,
	}
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "00:00", formatDuration(0))
	assert.Equal(t, "01:05", formatDuration(65*time.Second))
	assert.Equal(t, "01:00", formatDuration(frameTime(3600, 60)))
	assert.Equal(t, time.Duration(0), frameTime(10, 0))
}

func TestLayoutMatchesBoard(t *testing.T) {
	g := NewGame(testOptions(10))
	w, h := g.Layout(1000, 1000)
	assert.Equal(t, 200, w)
	assert.Equal(t, 400, h)
}

func TestAdvanceRunsToCompletion(t *testing.T) {
	g := NewGame(testOptions(5))
	for i := 0; i < 1000 && !g.finished; i++ {
		g.advance()
	}
	require.True(t, g.finished)
	assert.Equal(t, 4, g.Simulation().Histogram().Total())
	assert.Contains(t, g.status(), "done")
	assert.Contains(t, g.status(), "landed 4/5")

	// Further frames are no-ops once done.
	frame := g.Simulation().FrameNumber()
	g.advance()
	assert.Equal(t, frame, g.Simulation().FrameNumber())
}

func TestRestart(t *testing.T) {
	g := NewGame(testOptions(50))
	for i := 0; i < 200; i++ {
		g.advance()
	}
	require.NotZero(t, g.Simulation().FrameNumber())

	g.restart()
	assert.Zero(t, g.Simulation().FrameNumber())
	assert.Zero(t, g.Simulation().Histogram().Total())
	assert.False(t, g.finished)
}

func TestExportCSV(t *testing.T) {
	g := NewGame(testOptions(5))
	for !g.Simulation().Done() {
		g.advance()
	}
	path := filepath.Join(t.TempDir(), "hist.csv")

	require.NoError(t, report.ExportCSV(path, g.Simulation(), nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Equal(t, "lane,x,count,expected", lines[0])
	assert.Len(t, lines, 20)
	assert.Equal(t, "18,190,4,0.00", lines[19])
}
