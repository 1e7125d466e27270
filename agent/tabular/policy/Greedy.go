// Package policy implements tabular policies over a qtable.Table
package policy

import (
	"github.com/samuelfneumann/goqlearn/agent"
	"github.com/samuelfneumann/goqlearn/agent/tabular/qtable"
	"github.com/samuelfneumann/goqlearn/utils/floatutils"
)

// Greedy implements the greedy policy with respect to a table of
// action values. Ties between maximal actions are broken in favour of
// the action returned first by the legal actions oracle.
type Greedy[S, A comparable] struct {
	table *qtable.Table[S, A]
	legal agent.LegalActions[S, A]
}

// NewGreedy returns a new Greedy policy reading action values from
// table and the actions of each state from legal
func NewGreedy[S, A comparable](table *qtable.Table[S, A],
	legal agent.LegalActions[S, A]) *Greedy[S, A] {
	return &Greedy[S, A]{table: table, legal: legal}
}

// Value returns max_a Q(state, a) over the legal actions of state. A
// state without legal actions has value 0.
func (g *Greedy[S, A]) Value(state S) float64 {
	actions := g.legal(state)
	if len(actions) == 0 {
		return 0.0
	}

	values := g.table.Values(state, actions)
	return values[floatutils.ArgMax(values)]
}

// SelectAction returns the greedy action in state. The boolean result
// is false if state has no legal actions.
func (g *Greedy[S, A]) SelectAction(state S) (A, bool) {
	return g.selectFrom(state, g.legal(state))
}

// selectFrom returns the greedy action among actions
func (g *Greedy[S, A]) selectFrom(state S, actions []A) (A, bool) {
	if len(actions) == 0 {
		var none A
		return none, false
	}

	values := g.table.Values(state, actions)
	return actions[floatutils.ArgMax(values)], true
}
