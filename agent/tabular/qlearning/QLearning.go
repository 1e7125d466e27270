// Package qlearning implements the tabular Q-Learning algorithm with an
// ε-greedy behaviour policy.
//
// Action values are stored in a qtable.Table and default to zero. The
// agent acts ε-greedily with respect to them and learns with the
// one-step Q-Learning target
//
//	r + γ max_a' Q(s', a')
//
// where the max is over the legal actions of s' and is zero when s' has
// no legal actions.
//
// Example:
//
//	q, err := qlearning.New(qlearning.Config{Alpha: 0.5, Epsilon: 0.25,
//		Discount: 0.99}, env.LegalActions, seed)
//	action, ok := q.GetAction(state)
//	q.Update(state, action, nextState, reward)
//	q.Epsilon *= 0.99
package qlearning

import (
	"fmt"
	"sync"

	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/goqlearn/agent"
	"github.com/samuelfneumann/goqlearn/agent/tabular/policy"
	"github.com/samuelfneumann/goqlearn/agent/tabular/qtable"
)

// QLearning implements the Q-Learning algorithm over a table of action
// values.
//
// The hyperparameters Alpha, Epsilon and Discount may be changed
// between calls and are read each time they are needed. Queries and
// updates are serialized by an internal lock; the hyperparameter fields
// themselves are not synchronized.
type QLearning[S, A comparable] struct {
	Alpha    float64 // learning rate
	Epsilon  float64 // probability of a uniformly random action
	Discount float64 // γ

	mu        sync.RWMutex
	table     *qtable.Table[S, A]
	behaviour *policy.EGreedy[S, A]
}

// New creates a new QLearning agent which looks up the actions of each
// state with legal. Exploration is seeded with seed.
func New[S, A comparable](c Config, legal agent.LegalActions[S, A],
	seed uint64) (*QLearning[S, A], error) {
	return NewWithSource(c, legal, rand.NewSource(seed))
}

// NewWithSource creates a new QLearning agent drawing random numbers
// from source
func NewWithSource[S, A comparable](c Config, legal agent.LegalActions[S, A],
	source rand.Source) (*QLearning[S, A], error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("new: invalid config: %w", err)
	}
	if legal == nil {
		return nil, fmt.Errorf("new: legal actions cannot be nil")
	}
	if source == nil {
		return nil, fmt.Errorf("new: source cannot be nil")
	}

	table := qtable.New[S, A]()
	return &QLearning[S, A]{
		Alpha:     c.Alpha,
		Epsilon:   c.Epsilon,
		Discount:  c.Discount,
		table:     table,
		behaviour: policy.NewEGreedyWithSource(table, legal, source),
	}, nil
}

// GetQValue returns Q(state, action), which is 0 if never set
func (q *QLearning[S, A]) GetQValue(state S, action A) float64 {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.table.Get(state, action)
}

// SetQValue sets Q(state, action) to value
func (q *QLearning[S, A]) SetQValue(state S, action A, value float64) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.table.Set(state, action, value)
}

// GetValue returns max_a Q(state, a) over the legal actions in state,
// or 0 if there are none
func (q *QLearning[S, A]) GetValue(state S) float64 {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.behaviour.Value(state)
}

// GetPolicy returns the greedy action in state. If several actions are
// maximal, the one listed first by the legal actions oracle is
// returned. The boolean result is false if there are no legal actions.
func (q *QLearning[S, A]) GetPolicy(state S) (A, bool) {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.behaviour.Greedy.SelectAction(state)
}

// GetAction returns the action to take in state: with probability
// Epsilon a uniformly random legal action, otherwise GetPolicy(state).
// The boolean result is false if there are no legal actions.
func (q *QLearning[S, A]) GetAction(state S) (A, bool) {
	// Exclusive: exploration advances the random source
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.behaviour.SelectAction(state, q.Epsilon)
}

// Update performs the Q-Learning update for taking action in state and
// transitioning to nextState with reward:
//
//	Q(s, a) <- (1 - α) Q(s, a) + α (r + γ V(s'))
func (q *QLearning[S, A]) Update(state S, action A, nextState S,
	reward float64) {
	q.mu.Lock()
	defer q.mu.Unlock()

	target := reward + q.Discount*q.behaviour.Value(nextState)
	qValue := q.table.Get(state, action)
	q.table.Set(state, action, (1-q.Alpha)*qValue+q.Alpha*target)
}

// TdError returns the TD error of a transition without updating
func (q *QLearning[S, A]) TdError(state S, action A, nextState S,
	reward float64) float64 {
	q.mu.RLock()
	defer q.mu.RUnlock()

	target := reward + q.Discount*q.behaviour.Value(nextState)
	return target - q.table.Get(state, action)
}

// ExplorationRate returns Epsilon
func (q *QLearning[S, A]) ExplorationRate() float64 {
	return q.Epsilon
}

// SetExplorationRate sets Epsilon
func (q *QLearning[S, A]) SetExplorationRate(e float64) {
	q.Epsilon = e
}

// Table returns a copy of the agent's action values
func (q *QLearning[S, A]) Table() *qtable.Table[S, A] {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.table.Clone()
}

// Save saves the agent's action values to filename
func (q *QLearning[S, A]) Save(filename string) error {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.table.Save(filename)
}

// Load replaces the agent's action values with those saved to filename
func (q *QLearning[S, A]) Load(filename string) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.table.Load(filename)
}
