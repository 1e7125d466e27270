package qlearning_test

import (
	"context"
	"fmt"

	"github.com/samuelfneumann/goqlearn/agent/tabular/qlearning"
	"github.com/samuelfneumann/goqlearn/environment/gridworld"
	"github.com/samuelfneumann/goqlearn/experiment"
)

// Example trains Q-Learning on a corridor with the goal at its right
// end and prints the learned greedy policy
func Example() {
	var seed uint64 = 3

	g, _, err := gridworld.New([]string{"S...G"}, gridworld.DefaultRewards,
		0.9, seed)
	if err != nil {
		panic(err)
	}

	q, err := qlearning.New(qlearning.Config{Alpha: 0.5, Epsilon: 0.2,
		Discount: 0.9}, g.LegalActions, seed)
	if err != nil {
		panic(err)
	}

	e, err := experiment.NewOnline[gridworld.Cell, gridworld.Action](g, q,
		experiment.Config{Episodes: 500, MaxEpisodeSteps: 100})
	if err != nil {
		panic(err)
	}
	if err := e.Run(context.Background()); err != nil {
		panic(err)
	}

	for col := 0; col < 4; col++ {
		a, _ := q.GetPolicy(gridworld.Cell{Row: 0, Col: col})
		fmt.Println(a)
	}
	// Output:
	// Right
	// Right
	// Right
	// Right
}
