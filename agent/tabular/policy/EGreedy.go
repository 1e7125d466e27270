package policy

import (
	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/goqlearn/agent"
	"github.com/samuelfneumann/goqlearn/agent/tabular/qtable"
	"gonum.org/v1/gonum/stat/distuv"
)

// EGreedy implements an ε-greedy policy over a table of action values.
//
// With probability ε an action is chosen uniformly at random from the
// legal actions, which includes the greedy action. Otherwise the greedy
// action is chosen. ε is passed on each call so that callers can decay
// it between calls.
type EGreedy[S, A comparable] struct {
	*Greedy[S, A]
	rng     *rand.Rand
	uniform distuv.Uniform
}

// NewEGreedy returns a new EGreedy policy seeded with seed
func NewEGreedy[S, A comparable](table *qtable.Table[S, A],
	legal agent.LegalActions[S, A], seed uint64) *EGreedy[S, A] {
	return NewEGreedyWithSource(table, legal, rand.NewSource(seed))
}

// NewEGreedyWithSource returns a new EGreedy policy drawing all of its
// random numbers from source
func NewEGreedyWithSource[S, A comparable](table *qtable.Table[S, A],
	legal agent.LegalActions[S, A], source rand.Source) *EGreedy[S, A] {
	return &EGreedy[S, A]{
		Greedy:  NewGreedy(table, legal),
		rng:     rand.New(source),
		uniform: distuv.Uniform{Min: 0, Max: 1, Src: source},
	}
}

// SelectAction selects an action in state from the ε-greedy policy
// with exploration probability epsilon. The boolean result is false if
// state has no legal actions.
func (p *EGreedy[S, A]) SelectAction(state S, epsilon float64) (A, bool) {
	actions := p.legal(state)
	if len(actions) == 0 {
		var none A
		return none, false
	}

	// Inclusive so that ε = 1 always explores
	if p.uniform.Rand() <= epsilon {
		return actions[p.rng.Intn(len(actions))], true
	}
	return p.selectFrom(state, actions)
}
