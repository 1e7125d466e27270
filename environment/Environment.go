// Package environment outlines the interfaces and structs needed to
// implement concrete environments with discrete states and actions
package environment

import (
	"github.com/samuelfneumann/goqlearn/timestep"
)

// Starter implements a distribution of starting states and samples
// starting states for environments
type Starter[S any] interface {
	Start() S
}

// Environment implements a simulated environment with states of type S
// and actions of type A
type Environment[S, A comparable] interface {
	// Reset resets the environment between episodes and returns the
	// first TimeStep of the new episode
	Reset() (timestep.TimeStep[S], error)

	// Step takes action in the environment and returns the next
	// TimeStep and whether the episode has ended
	Step(action A) (timestep.TimeStep[S], bool, error)

	// LegalActions returns the actions available in state, in a fixed
	// order. Terminal states have none.
	LegalActions(state S) []A
}
