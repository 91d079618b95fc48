package galton

import "math"

// Phase of a falling ball.
type Phase int

const (
	// Deflecting balls are still inside the peg field.
	Deflecting Phase = iota
	// Settling balls fall straight down onto their lane's stack.
	Settling
)

func (p Phase) String() string {
	switch p {
	case Deflecting:
		return "deflecting"
	case Settling:
		return "settling"
	default:
		return "unknown"
	}
}

type Ball struct {
	ID     int
	X      float64
	Y      float64
	Phase  Phase
	Rows   int // deflections made so far
	Rights int // of which went right
	Lane   int // last computed lane, clamped
}

func newBall(id int, g Geometry) *Ball {
	return &Ball{ID: id, X: g.SpawnX(), Phase: Deflecting}
}

// Deflecting reports whether the ball is still in the peg field.
func (b *Ball) Deflecting() bool { return b.Phase == Deflecting }

// step advances the ball by one frame and reports whether it landed. On
// landing the histogram is incremented before returning, so the counter and
// the ball's removal always agree.
func (b *Ball) step(g Geometry, h *Histogram, c Chooser) bool {
	b.Y += g.Step()

	if b.Phase == Deflecting && math.Mod(b.Y, g.GridSize) == 0 {
		if c.GoRight(b.Rows, b.Rights) {
			b.X += g.GridSize / 2
			b.Rights++
		} else {
			b.X -= g.GridSize / 2
		}
		b.Rows++
	}

	b.Lane = g.Lane(b.X)

	if b.Y > g.PegFieldHeight() {
		b.Phase = Settling
	}
	if b.Phase != Settling {
		return false
	}
	if b.Y >= g.Height-float64(h.Count(b.Lane))/2 {
		h.increment(b.Lane)
		return true
	}
	return false
}
