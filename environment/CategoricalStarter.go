package environment

import (
	"fmt"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// CategoricalStarter returns starting states sampled uniformly from a
// fixed set of candidate states
type CategoricalStarter[S any] struct {
	states []S
	rand   distuv.Categorical
}

// NewCategoricalStarter returns a new CategoricalStarter sampling
// uniformly from states
func NewCategoricalStarter[S any](states []S,
	seed uint64) (*CategoricalStarter[S], error) {
	if len(states) == 0 {
		return nil, fmt.Errorf("newCategoricalStarter: no starting states")
	}

	// Create the weights for the uniform categorical distribution
	weights := make([]float64, len(states))
	for i := range weights {
		weights[i] = 1.0 / float64(len(weights))
	}

	return &CategoricalStarter[S]{
		states: append([]S(nil), states...),
		rand:   distuv.NewCategorical(weights, rand.NewSource(seed)),
	}, nil
}

// Start returns a starting state
func (c *CategoricalStarter[S]) Start() S {
	return c.states[int(c.rand.Rand())]
}
