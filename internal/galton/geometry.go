package galton

import "math"

// Geometry is the static layout of the board. The peg field is the square
// region at the top of the surface, Width units tall.
type Geometry struct {
	Width    float64
	Height   float64
	GridSize float64
}

func NewGeometry(width, height, gridSize int) Geometry {
	return Geometry{
		Width:    float64(width),
		Height:   float64(height),
		GridSize: float64(gridSize),
	}
}

// LaneCount is the number of histogram lanes that fit across the board.
func (g Geometry) LaneCount() int {
	return int(math.Floor(g.Width/g.GridSize)) - 1
}

// PegFieldHeight is the depth below which balls stop deflecting.
func (g Geometry) PegFieldHeight() float64 { return g.Width }

// PegRows is the number of deflection opportunities a ball gets on its way
// through the peg field.
func (g Geometry) PegRows() int {
	return int(math.Floor(g.PegFieldHeight() / g.GridSize))
}

// Step is how far a ball falls per frame.
func (g Geometry) Step() float64 { return g.GridSize / 2 }

// RawLane maps a horizontal position to a lane index without bounds checks.
func (g Geometry) RawLane(x float64) int {
	return int(math.Floor((x - g.GridSize/2) / g.GridSize))
}

// Lane maps a horizontal position to a lane, clamped into [0, LaneCount).
// Walks that drift past either edge land in the outermost lane.
func (g Geometry) Lane(x float64) int {
	lane := g.RawLane(x)
	if lane < 0 {
		return 0
	}
	if n := g.LaneCount(); lane >= n {
		return n - 1
	}
	return lane
}

// LaneX is the horizontal centre of a lane, where its bar is drawn.
func (g Geometry) LaneX(lane int) float64 {
	return float64(lane+1) * g.GridSize
}

// SpawnX is where every ball enters the board.
func (g Geometry) SpawnX() float64 { return g.Width / 2 }

// Pegs returns the peg centres in row-major order. Every other row is shifted
// left by half a cell, giving the checkerboard pattern.
func (g Geometry) Pegs() [][2]float64 {
	var pegs [][2]float64
	for y := g.GridSize; y < g.Width; y += g.GridSize {
		shifted := math.Mod(y, g.GridSize*2) == 0
		for x := 0.0; x <= g.Width; x += g.GridSize {
			xo := x
			if shifted {
				xo = x - g.GridSize/2
			}
			pegs = append(pegs, [2]float64{xo, y})
		}
	}
	return pegs
}

// Dividers returns the x positions of the lane divider lines.
func (g Geometry) Dividers() []float64 {
	var xs []float64
	for x := g.GridSize / 2; x < g.Width; x += g.GridSize {
		xs = append(xs, x)
	}
	return xs
}
