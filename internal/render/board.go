package render

import "github.com/iburimskiy/galton-board/internal/galton"

const pegDiameter = 2

// DrawFrame renders the whole board: background, pegs and lanes, balls, then
// the histogram bars on top.
func DrawFrame(s Surface, sim *galton.Simulation, st Style) {
	s.Fill(st.Background)
	DrawBoard(s, sim.Geometry(), st)
	DrawBalls(s, sim.Geometry(), sim.Visible(), st)
	DrawBars(s, sim.Geometry(), sim.Histogram(), st)
}

// DrawBoard draws the peg grid and the lane dividers.
func DrawBoard(s Surface, g galton.Geometry, st Style) {
	for _, p := range g.Pegs() {
		s.Circle(p[0], p[1], pegDiameter, st.Peg)
	}
	for _, x := range g.Dividers() {
		s.Line(x, g.PegFieldHeight(), x, g.Height, 1, st.Divider, false)
	}
}

func ballDiameter(g galton.Geometry) float64 { return g.GridSize/3 + 1 }

func DrawBalls(s Surface, g galton.Geometry, balls []*galton.Ball, st Style) {
	lanes := g.LaneCount()
	for _, b := range balls {
		s.Circle(b.X, b.Y, ballDiameter(g), st.LaneColor(st.Ball, b.Lane, lanes))
	}
}

// DrawBars draws one round-capped bar per lane, half a unit tall per ball,
// rising from just below the floor.
func DrawBars(s Surface, g galton.Geometry, h *galton.Histogram, st Style) {
	base := g.Height + g.GridSize/4
	for i := 0; i < h.Lanes(); i++ {
		x := g.LaneX(i)
		top := base - float64(h.Count(i))/2
		s.Line(x, base, x, top, ballDiameter(g), st.LaneColor(st.Bar, i, h.Lanes()), true)
	}
}

// DrawExpected marks, per lane, the height the bar would have if the
// histogram followed probs exactly.
func DrawExpected(s Surface, g galton.Geometry, h *galton.Histogram, probs []float64, st Style) {
	base := g.Height + g.GridSize/4
	total := float64(h.Total())
	half := g.GridSize / 3
	for i, p := range probs {
		x := g.LaneX(i)
		y := base - p*total/2
		s.Line(x-half, y, x+half, y, 1, st.Expected, false)
	}
}
