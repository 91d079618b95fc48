package galton

import "math"

// Model is a deflection rule whose final distribution is known in closed
// form. PMF is the probability of k right turns out of n pegs.
type Model interface {
	PMF(n, k int) float64
}

// PMF is the binomial distribution with p = 1/2.
func (f *Fair) PMF(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	return math.Exp(lchoose(n, k) - float64(n)*math.Ln2)
}

// PMF is the beta-binomial distribution with the urn's α and β.
func (p *Polya) PMF(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	return math.Exp(lchoose(n, k) + lbeta(float64(k)+p.Alpha, float64(n-k)+p.Beta) - lbeta(p.Alpha, p.Beta))
}

// Expected returns, per lane, the probability that a ball ends up there under
// m. Right-turn counts are mapped to lanes exactly as falling balls are,
// including the clamp at the edges, so the result sums to 1.
func Expected(g Geometry, m Model) []float64 {
	out := make([]float64, g.LaneCount())
	if len(out) == 0 {
		return out
	}
	n := g.PegRows()
	half := g.GridSize / 2
	for k := 0; k <= n; k++ {
		x := g.SpawnX() + half*float64(2*k-n)
		out[g.Lane(x)] += m.PMF(n, k)
	}
	return out
}

func lchoose(n, k int) float64 {
	a, _ := math.Lgamma(float64(n + 1))
	b, _ := math.Lgamma(float64(k + 1))
	c, _ := math.Lgamma(float64(n - k + 1))
	return a - b - c
}

func lbeta(a, b float64) float64 {
	x, _ := math.Lgamma(a)
	y, _ := math.Lgamma(b)
	z, _ := math.Lgamma(a + b)
	return x + y - z
}
