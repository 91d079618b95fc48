package term

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type cell struct {
	r  rune
	fg color.Color
}

// Canvas is a render.Surface that rasterises the board onto terminal cells.
// Each cell covers cellW×cellH board units; terminal cells are about twice as
// tall as they are wide, so cellH is usually 2×cellW.
type Canvas struct {
	cellW, cellH float64
	cols, rows   int
	bg           color.Color
	cells        [][]cell
}

func NewCanvas(width, height, cellW, cellH float64) *Canvas {
	c := &Canvas{
		cellW: cellW,
		cellH: cellH,
		cols:  int(math.Floor(width/cellW)) + 1,
		rows:  int(math.Floor(height/cellH)) + 1,
	}
	c.cells = make([][]cell, c.rows)
	for i := range c.cells {
		c.cells[i] = make([]cell, c.cols)
	}
	c.Fill(color.Black)
	return c
}

func (c *Canvas) Size() (cols, rows int) { return c.cols, c.rows }

func (c *Canvas) Fill(col color.Color) {
	c.bg = col
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = cell{r: ' '}
		}
	}
}

func (c *Canvas) set(x, y float64, r rune, fg color.Color) {
	col := int(math.Floor(x / c.cellW))
	row := int(math.Floor(y / c.cellH))
	if col < 0 || col >= c.cols || row < 0 || row >= c.rows {
		return
	}
	c.cells[row][col] = cell{r: r, fg: fg}
}

func (c *Canvas) Circle(x, y, diameter float64, fg color.Color) {
	r := '•'
	if diameter <= 2 {
		r = '·'
	}
	c.set(x, y, r, fg)
}

func (c *Canvas) Line(x1, y1, x2, y2, width float64, fg color.Color, round bool) {
	r := '─'
	switch {
	case round:
		r = '█'
	case x1 == x2:
		r = '│'
	}
	dx, dy := x2-x1, y2-y1
	length := math.Hypot(dx, dy)
	step := math.Min(c.cellW, c.cellH) / 2
	n := int(math.Ceil(length / step))
	if n == 0 {
		if round {
			return
		}
		c.set(x1, y1, r, fg)
		return
	}
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		c.set(x1+dx*t, y1+dy*t, r, fg)
	}
}

// Lines returns the canvas as plain text, one string per row.
func (c *Canvas) Lines() []string {
	out := make([]string, c.rows)
	for y, row := range c.cells {
		var b strings.Builder
		for _, cl := range row {
			b.WriteRune(cl.r)
		}
		out[y] = b.String()
	}
	return out
}

// String renders the canvas with colours. Runs of cells sharing a colour are
// styled together.
func (c *Canvas) String() string {
	base := lipgloss.NewStyle().Background(hex(c.bg))
	var b strings.Builder
	for y, row := range c.cells {
		if y > 0 {
			b.WriteByte('\n')
		}
		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && sameColor(row[x].fg, row[start].fg) {
				continue
			}
			var run strings.Builder
			for _, cl := range row[start:x] {
				run.WriteRune(cl.r)
			}
			st := base
			if fg := row[start].fg; fg != nil {
				st = st.Foreground(hex(fg))
			}
			b.WriteString(st.Render(run.String()))
			start = x
		}
	}
	return b.String()
}

func hex(c color.Color) lipgloss.Color {
	if c == nil {
		return lipgloss.Color("")
	}
	r, g, b, _ := c.RGBA()
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8))
}

func sameColor(a, b color.Color) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}
