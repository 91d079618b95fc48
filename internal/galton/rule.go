package galton

import (
	"fmt"
	"math/rand"
)

// Rule is a deflection model that can both drive balls and predict where
// they end up.
type Rule interface {
	Chooser
	Model
}

// NewRule returns the named deflection model.
func NewRule(mode string, rng *rand.Rand, alpha, beta float64) (Rule, error) {
	switch mode {
	case "fair":
		return NewFair(rng), nil
	case "polya":
		return NewPolya(rng, alpha, beta), nil
	}
	return nil, fmt.Errorf("unknown deflection mode %q", mode)
}
