package galton

import (
	"math/rand"
	"time"
)

// Chooser decides the direction of a single deflection. rows is the number
// of deflections the ball has already made and rights how many of them went
// right. Returning true moves the ball right.
type Chooser interface {
	GoRight(rows, rights int) bool
}

// NewRand returns a generator seeded with seed, or with the clock when seed
// is zero.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Fair is the classic board: every peg is a coin toss.
type Fair struct {
	rng *rand.Rand
}

func NewFair(rng *rand.Rand) *Fair {
	return &Fair{rng: rng}
}

func (f *Fair) GoRight(_, _ int) bool {
	return f.rng.Intn(2) == 1
}

// Polya biases each ball towards the direction it has already taken, like
// drawing from an urn that gains a ball of the drawn colour.
type Polya struct {
	Alpha float64
	Beta  float64
	rng   *rand.Rand
}

func NewPolya(rng *rand.Rand, alpha, beta float64) *Polya {
	return &Polya{Alpha: alpha, Beta: beta, rng: rng}
}

// ProbRight is the chance of a right turn after rows deflections of which
// rights went right.
func (p *Polya) ProbRight(rows, rights int) float64 {
	return (float64(rights) + p.Alpha) / (float64(rows) + p.Alpha + p.Beta)
}

func (p *Polya) GoRight(rows, rights int) bool {
	return p.rng.Float64() < p.ProbRight(rows, rights)
}

// Sequence replays a fixed pattern of directions, wrapping around at the end.
// An empty Sequence always goes left.
type Sequence struct {
	Moves []bool
	next  int
}

func NewSequence(moves ...bool) *Sequence {
	return &Sequence{Moves: moves}
}

func (s *Sequence) GoRight(_, _ int) bool {
	if len(s.Moves) == 0 {
		return false
	}
	right := s.Moves[s.next%len(s.Moves)]
	s.next++
	return right
}

// Always goes the same way at every peg.
type Always bool

func (a Always) GoRight(_, _ int) bool { return bool(a) }
