package qlearning

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/samuelfneumann/goqlearn/agent"
)

var _ agent.Agent[string, string] = (*QLearning[string, string])(nil)
var _ agent.Explorer = (*QLearning[string, string])(nil)

// lookup returns a legal actions oracle backed by a fixed table
func lookup(actions map[string][]string) agent.LegalActions[string, string] {
	return func(s string) []string { return actions[s] }
}

func newAgent(t *testing.T, c Config, actions map[string][]string) *QLearning[string, string] {
	t.Helper()
	q, err := New(c, lookup(actions), 1923)
	require.NoError(t, err)
	return q
}

func TestNewInvalid(t *testing.T) {
	legal := lookup(nil)

	for _, c := range []Config{
		{Alpha: -0.1, Epsilon: 0.1, Discount: 0.9},
		{Alpha: 1.1, Epsilon: 0.1, Discount: 0.9},
		{Alpha: 0.1, Epsilon: -0.1, Discount: 0.9},
		{Alpha: 0.1, Epsilon: 1.5, Discount: 0.9},
		{Alpha: 0.1, Epsilon: 0.1, Discount: -1},
	} {
		_, err := New(c, legal, 0)
		assert.Error(t, err, "config %+v", c)
	}

	_, err := New[string, string](Config{Alpha: 0.5}, nil, 0)
	assert.Error(t, err)

	_, err = NewWithSource(Config{Alpha: 0.5}, legal, nil)
	assert.Error(t, err)
}

func TestNoLegalActions(t *testing.T) {
	q := newAgent(t, Config{Alpha: 0.5, Epsilon: 0.5, Discount: 0.9}, nil)

	for _, e := range []float64{0, 0.5, 1} {
		q.Epsilon = e
		assert.Equal(t, 0.0, q.GetValue("terminal"))

		a, ok := q.GetPolicy("terminal")
		assert.False(t, ok)
		assert.Equal(t, "", a)

		a, ok = q.GetAction("terminal")
		assert.False(t, ok)
		assert.Equal(t, "", a)
	}
}

func TestSetThenGet(t *testing.T) {
	q := newAgent(t, Config{}, nil)

	assert.Equal(t, 0.0, q.GetQValue("s", "a"))
	for _, v := range []float64{1, -7.5, 0, 1e300, 3.14159} {
		q.SetQValue("s", "a", v)
		assert.Equal(t, v, q.GetQValue("s", "a"))
	}
}

func TestDefaultsTieToFirstAction(t *testing.T) {
	q := newAgent(t, Config{}, map[string][]string{"s": {"x", "y", "z"}})

	assert.Equal(t, 0.0, q.GetValue("s"))
	a, ok := q.GetPolicy("s")
	require.True(t, ok)
	assert.Equal(t, "x", a)
}

func TestUpdate(t *testing.T) {
	q := newAgent(t, Config{Alpha: 0.5, Discount: 0.9}, map[string][]string{
		"s":    {"a"},
		"next": {"b"},
	})
	q.SetQValue("next", "b", 10)

	q.Update("s", "a", "next", 5)
	assert.Equal(t, 7.0, q.GetQValue("s", "a"))

	// Q(s, a) = 0.5 * 7 + 0.5 * 14
	q.Update("s", "a", "next", 5)
	assert.Equal(t, 10.5, q.GetQValue("s", "a"))
}

func TestUpdateTerminal(t *testing.T) {
	q := newAgent(t, Config{Alpha: 0.25, Discount: 1}, map[string][]string{
		"s": {"a"},
	})
	q.SetQValue("end", "a", 100)

	// end has no legal actions, so its stored value is ignored
	q.Update("s", "a", "end", 4)
	assert.Equal(t, 1.0, q.GetQValue("s", "a"))
}

func TestTdError(t *testing.T) {
	q := newAgent(t, Config{Alpha: 0.5, Discount: 0.9}, map[string][]string{
		"next": {"b"},
	})
	q.SetQValue("next", "b", 10)
	q.SetQValue("s", "a", 4)

	assert.InDelta(t, 10.0, q.TdError("s", "a", "next", 5), 1e-12)
	assert.Equal(t, 4.0, q.GetQValue("s", "a"))
}

func TestHyperparametersReadAtCallTime(t *testing.T) {
	q := newAgent(t, Config{Alpha: 0.1, Discount: 0.1}, map[string][]string{
		"s":    {"a", "b"},
		"next": {"b"},
	})
	q.SetQValue("next", "b", 10)

	q.Alpha = 1
	q.Discount = 0.5
	q.Update("s", "a", "next", 1)
	assert.Equal(t, 6.0, q.GetQValue("s", "a"))

	// Greedy is "a"; full exploration must still reach "b"
	q.SetExplorationRate(1)
	assert.Equal(t, 1.0, q.ExplorationRate())
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		a, _ := q.GetAction("s")
		seen[a] = true
	}
	assert.True(t, seen["b"])

	q.Epsilon = 0
	for i := 0; i < 200; i++ {
		a, _ := q.GetAction("s")
		require.Equal(t, "a", a)
	}
}

func TestZeroEpsilonExploits(t *testing.T) {
	actions := map[string][]string{
		"s1": {"a", "b", "c"},
		"s2": {"c", "b"},
		"s3": {"a"},
	}
	q := newAgent(t, Config{Epsilon: 0}, actions)
	q.SetQValue("s1", "b", 2)
	q.SetQValue("s2", "c", -1)

	for i := 0; i < 1000; i++ {
		for s := range actions {
			want, _ := q.GetPolicy(s)
			got, ok := q.GetAction(s)
			require.True(t, ok)
			require.Equal(t, want, got, "state %v", s)
		}
	}
}

func TestFullEpsilonIsUniform(t *testing.T) {
	actions := []string{"x", "y", "z"}
	q := newAgent(t, Config{Epsilon: 1}, map[string][]string{"s": actions})
	q.SetQValue("s", "x", 3)
	q.SetQValue("s", "y", 2)
	q.SetQValue("s", "z", 1)

	const samples = 30000
	index := map[string]int{"x": 0, "y": 1, "z": 2}
	observed := make([]float64, len(actions))
	for i := 0; i < samples; i++ {
		a, ok := q.GetAction("s")
		require.True(t, ok)
		observed[index[a]]++
	}

	expected := make([]float64, len(actions))
	for i := range expected {
		expected[i] = samples / float64(len(actions))
	}

	chi2 := stat.ChiSquare(observed, expected)
	p := distuv.ChiSquared{K: float64(len(actions) - 1)}.Survival(chi2)
	assert.Greater(t, p, 0.001, "observed %v, χ² = %v", observed, chi2)
}

func TestReadsAreIdempotent(t *testing.T) {
	q := newAgent(t, Config{Alpha: 0.5}, map[string][]string{
		"s": {"a", "b"},
		"t": {"a"},
	})
	q.SetQValue("s", "a", 1)
	before := q.Table()

	for i := 0; i < 100; i++ {
		q.GetQValue("s", "b")
		q.GetQValue("u", "a")
		q.GetValue("s")
		q.GetValue("t")
		q.GetValue("u")
		q.GetPolicy("t")
	}

	after := q.Table()
	assert.Equal(t, before.Len(), after.Len())
	assert.Equal(t, 1, after.Len())
	assert.Equal(t, 1.0, after.Get("s", "a"))
}

func TestTieBreakDeterministic(t *testing.T) {
	q := newAgent(t, Config{}, map[string][]string{"s": {"w", "x", "y", "z"}})
	q.SetQValue("s", "w", -1)
	q.SetQValue("s", "x", 5)
	q.SetQValue("s", "z", 5)

	for i := 0; i < 100; i++ {
		a, ok := q.GetPolicy("s")
		require.True(t, ok)
		assert.Equal(t, "x", a)
	}
}

func TestSameSeedSameBehaviour(t *testing.T) {
	actions := map[string][]string{"s": {"a", "b", "c", "d"}}
	c := Config{Epsilon: 0.6}
	q1 := newAgent(t, c, actions)
	q2 := newAgent(t, c, actions)

	for i := 0; i < 500; i++ {
		a1, _ := q1.GetAction("s")
		a2, _ := q2.GetAction("s")
		require.Equal(t, a1, a2)
	}
}

func TestConcurrentUpdates(t *testing.T) {
	q := newAgent(t, Config{Alpha: 1, Discount: 0}, map[string][]string{
		"s": {"a"},
	})

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				q.Update("s", "a", "end", 1)
				q.GetValue("s")
				q.GetAction("s")
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1.0, q.GetQValue("s", "a"))
}

func TestSaveLoad(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "q.bin")
	actions := map[string][]string{"s": {"a", "b"}}

	q := newAgent(t, Config{}, actions)
	q.SetQValue("s", "b", 2.5)
	require.NoError(t, q.Save(filename))

	loaded := newAgent(t, Config{}, actions)
	require.NoError(t, loaded.Load(filename))
	assert.Equal(t, 2.5, loaded.GetQValue("s", "b"))

	a, _ := loaded.GetPolicy("s")
	assert.Equal(t, "b", a)
}

func TestConfigList(t *testing.T) {
	list := ConfigList{
		Alpha:    []float64{0.1, 0.5},
		Epsilon:  []float64{0.05, 0.1, 0.2},
		Discount: []float64{0.9},
	}
	require.Equal(t, 6, list.Len())

	seen := make(map[Config]bool)
	for i := 0; i < list.Len(); i++ {
		c, err := list.At(i)
		require.NoError(t, err)
		require.NoError(t, c.Validate())
		seen[c] = true
	}
	assert.Len(t, seen, 6)

	c, err := list.At(4)
	require.NoError(t, err)
	assert.Equal(t, Config{Alpha: 0.5, Epsilon: 0.1, Discount: 0.9}, c)

	_, err = list.At(6)
	assert.Error(t, err)
	_, err = list.At(-1)
	assert.Error(t, err)
}

func BenchmarkUpdate(b *testing.B) {
	actions := map[string][]string{"s": {"a", "b", "c", "d"},
		"next": {"a", "b", "c", "d"}}
	q, err := New(Config{Alpha: 0.1, Epsilon: 0.1, Discount: 0.99},
		lookup(actions), 1923)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Update("s", "a", "next", 1)
	}
}

func BenchmarkGetAction(b *testing.B) {
	actions := map[string][]string{"s": {"a", "b", "c", "d"}}
	q, err := New(Config{Alpha: 0.1, Epsilon: 0.25, Discount: 0.99},
		lookup(actions), 1923)
	if err != nil {
		b.Fatal(err)
	}
	q.SetQValue("s", "c", 1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.GetAction("s")
	}
}
