// Package agent defines the interfaces implemented by tabular agents
package agent

// LegalActions enumerates the actions available in a state, in a fixed
// order. A state with no legal actions is terminal. Implementations
// must be free of side effects: agents call them on every query and
// never cache the result.
type LegalActions[S, A comparable] func(state S) []A

// Agent determines the implementation details of an agent or algorithm
//
// An Agent is composed of a Learner, which learns action values, and a
// Policy which chooses actions in each state. Both share the same
// action values so that any change the Learner makes is reflected in
// the actions the Policy chooses.
type Agent[S, A comparable] interface {
	Learner[S, A]
	Policy[S, A]

	// GetValue returns the value of state under the greedy policy
	GetValue(state S) float64
}

// Learner implements a learning algorithm that defines how action
// values are updated from experience.
type Learner[S, A comparable] interface {
	// Update learns from taking action in state, which lead to
	// nextState with reward
	Update(state S, action A, nextState S, reward float64)
}

// Policy represents a policy that an agent can have.
//
// GetAction returns the action the agent behaves with, GetPolicy the
// greedy (target) action. The boolean result is false when the state
// has no legal actions.
type Policy[S, A comparable] interface {
	GetAction(state S) (A, bool)
	GetPolicy(state S) (A, bool)
}

// Explorer is an agent whose exploration rate can be adjusted between
// calls, for example by a decay schedule
type Explorer interface {
	ExplorationRate() float64
	SetExplorationRate(float64)
}
