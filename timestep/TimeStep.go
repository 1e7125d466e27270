// Package timestep implements timesteps of the agent-environment interaction
package timestep

import (
	"fmt"
)

// StepType denotes the type of step that a TimeStep can be, either  first
// environmental step, a middle step, or a last step
type StepType int

const (
	First StepType = iota
	Mid
	Last
)

func (s StepType) String() string {
	switch s {
	case First:
		return "First"
	case Last:
		return "Last"
	default:
		return "Mid"
	}
}

// TimeStep packages together a single timestep in an environment with
// observations of type S
type TimeStep[S any] struct {
	stepType    StepType
	Reward      float64
	Discount    float64
	Observation S
	Number      int
}

// New returns a new TimeStep
func New[S any](t StepType, r, d float64, o S, n int) TimeStep[S] {
	return TimeStep[S]{t, r, d, o, n}
}

// StepType returns the type of the TimeStep
func (t TimeStep[S]) StepType() StepType {
	return t.stepType
}

// First returns whether a TimeStep is the first in an environment
func (t TimeStep[S]) First() bool {
	return t.stepType == First
}

// Mid returns whether a TimeStep is a middle step in an environment
func (t TimeStep[S]) Mid() bool {
	return t.stepType == Mid
}

// Last returns whether a TimeStep is the last step in an environment
func (t TimeStep[S]) Last() bool {
	return t.stepType == Last
}

func (t TimeStep[S]) String() string {
	str := "TimeStep | Type: %v  |  Reward:  %.2f  |  Discount: %.2f  |  " +
		"Step Number:  %v  |  Observation: %v"

	return fmt.Sprintf(str, t.stepType, t.Reward, t.Discount, t.Number,
		t.Observation)
}

// Transition packages together a single (s, a, r, s') transition
type Transition[S, A any] struct {
	State     S
	Action    A
	Reward    float64
	NextState S
}

// NewTransition returns the Transition from step to next when taking
// action
func NewTransition[S, A any](step TimeStep[S], action A,
	next TimeStep[S]) Transition[S, A] {
	return Transition[S, A]{
		State:     step.Observation,
		Action:    action,
		Reward:    next.Reward,
		NextState: next.Observation,
	}
}
