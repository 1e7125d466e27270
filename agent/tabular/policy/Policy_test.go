package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samuelfneumann/goqlearn/agent/tabular/qtable"
)

func oracle(table map[string][]string) func(string) []string {
	return func(s string) []string { return table[s] }
}

func TestGreedyNoActions(t *testing.T) {
	table := qtable.New[string, string]()
	g := NewGreedy(table, oracle(nil))

	assert.Equal(t, 0.0, g.Value("end"))
	a, ok := g.SelectAction("end")
	assert.False(t, ok)
	assert.Equal(t, "", a)
}

func TestGreedyValueAndAction(t *testing.T) {
	table := qtable.New[string, string]()
	table.Set("s", "left", -1)
	table.Set("s", "right", 2)
	g := NewGreedy(table, oracle(map[string][]string{
		"s": {"left", "up", "right"},
	}))

	assert.Equal(t, 2.0, g.Value("s"))
	a, ok := g.SelectAction("s")
	require.True(t, ok)
	assert.Equal(t, "right", a)
}

func TestGreedyNegativeValues(t *testing.T) {
	table := qtable.New[string, string]()
	table.Set("s", "a", -5)
	table.Set("s", "b", -2)
	g := NewGreedy(table, oracle(map[string][]string{"s": {"a", "b"}}))

	assert.Equal(t, -2.0, g.Value("s"))
	a, _ := g.SelectAction("s")
	assert.Equal(t, "b", a)
}

func TestGreedyTieBreakFirst(t *testing.T) {
	table := qtable.New[string, string]()
	table.Set("s", "b", 3)
	table.Set("s", "c", 3)
	g := NewGreedy(table, oracle(map[string][]string{"s": {"a", "c", "b"}}))

	for i := 0; i < 50; i++ {
		a, ok := g.SelectAction("s")
		require.True(t, ok)
		assert.Equal(t, "c", a)
	}
}

func TestEGreedyNoActions(t *testing.T) {
	p := NewEGreedy(qtable.New[string, string](), oracle(nil), 1)

	_, ok := p.SelectAction("end", 1.0)
	assert.False(t, ok)
	_, ok = p.SelectAction("end", 0.0)
	assert.False(t, ok)
}

func TestEGreedyZeroEpsilonIsGreedy(t *testing.T) {
	table := qtable.New[string, string]()
	table.Set("s", "b", 1)
	p := NewEGreedy(table, oracle(map[string][]string{"s": {"a", "b", "c"}}), 7)

	for i := 0; i < 500; i++ {
		a, ok := p.SelectAction("s", 0.0)
		require.True(t, ok)
		assert.Equal(t, "b", a)
	}
}

func TestEGreedyReproducible(t *testing.T) {
	actions := oracle(map[string][]string{"s": {"a", "b", "c", "d"}})
	p1 := NewEGreedy(qtable.New[string, string](), actions, 42)
	p2 := NewEGreedy(qtable.New[string, string](), actions, 42)

	for i := 0; i < 200; i++ {
		a1, _ := p1.SelectAction("s", 0.5)
		a2, _ := p2.SelectAction("s", 0.5)
		require.Equal(t, a1, a2, "step %d", i)
	}
}

func TestEGreedyFullEpsilonVisitsAll(t *testing.T) {
	table := qtable.New[string, string]()
	table.Set("s", "a", 100)
	p := NewEGreedy(table, oracle(map[string][]string{"s": {"a", "b", "c"}}), 3)

	seen := make(map[string]int)
	for i := 0; i < 300; i++ {
		a, _ := p.SelectAction("s", 1.0)
		seen[a]++
	}
	assert.Len(t, seen, 3)
}
