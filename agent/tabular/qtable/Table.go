// Package qtable implements a sparse tabular store of action values.
//
// A Table maps (state, action) pairs to estimates of expected discounted
// return. Pairs that have never been written read as zero. Reading never
// creates entries, so traversing a Table with Get does not grow it.
package qtable

import (
	"encoding/gob"
	"fmt"
	"io"
	"os"
)

// Default is the value returned for any pair that has not been written
const Default float64 = 0.0

// Table is a two-level map from state to action to action value.
//
// A Table is not safe for concurrent use.
type Table[S, A comparable] struct {
	values map[S]map[A]float64
	size   int
}

// New returns a new, empty Table
func New[S, A comparable]() *Table[S, A] {
	return &Table[S, A]{values: make(map[S]map[A]float64)}
}

// Get returns the value stored for (state, action), or Default if no
// value has been stored
func (t *Table[S, A]) Get(state S, action A) float64 {
	row, ok := t.values[state]
	if !ok {
		return Default
	}
	if v, ok := row[action]; ok {
		return v
	}
	return Default
}

// Set stores value for (state, action), overwriting any previous value
func (t *Table[S, A]) Set(state S, action A, value float64) {
	row, ok := t.values[state]
	if !ok {
		row = make(map[A]float64)
		t.values[state] = row
	}
	if _, ok := row[action]; !ok {
		t.size++
	}
	row[action] = value
}

// Has returns whether a value has been stored for (state, action)
func (t *Table[S, A]) Has(state S, action A) bool {
	_, ok := t.values[state][action]
	return ok
}

// Len returns the number of stored (state, action) pairs
func (t *Table[S, A]) Len() int {
	return t.size
}

// NumStates returns the number of states with at least one stored pair
func (t *Table[S, A]) NumStates() int {
	return len(t.values)
}

// Values returns the values of actions in state, in the order of
// actions
func (t *Table[S, A]) Values(state S, actions []A) []float64 {
	values := make([]float64, len(actions))
	for i, a := range actions {
		values[i] = t.Get(state, a)
	}
	return values
}

// Range calls fn for each stored pair. Iteration order is unspecified.
// If fn returns false, iteration stops.
func (t *Table[S, A]) Range(fn func(state S, action A, value float64) bool) {
	for s, row := range t.values {
		for a, v := range row {
			if !fn(s, a, v) {
				return
			}
		}
	}
}

// Clone returns a deep copy of the Table
func (t *Table[S, A]) Clone() *Table[S, A] {
	clone := New[S, A]()
	t.Range(func(s S, a A, v float64) bool {
		clone.Set(s, a, v)
		return true
	})
	return clone
}

// entry is the serialized form of a single stored pair
type entry[S, A comparable] struct {
	State  S
	Action A
	Value  float64
}

// Encode writes the Table to w using gob. The concrete state and action
// types must be gob encodable.
func (t *Table[S, A]) Encode(w io.Writer) error {
	entries := make([]entry[S, A], 0, t.size)
	t.Range(func(s S, a A, v float64) bool {
		entries = append(entries, entry[S, A]{s, a, v})
		return true
	})

	if err := gob.NewEncoder(w).Encode(entries); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// Decode replaces the contents of the Table with a Table previously
// written by Encode
func (t *Table[S, A]) Decode(r io.Reader) error {
	var entries []entry[S, A]
	if err := gob.NewDecoder(r).Decode(&entries); err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	t.values = make(map[S]map[A]float64)
	t.size = 0
	for _, e := range entries {
		t.Set(e.State, e.Action, e.Value)
	}
	return nil
}

// Save writes the Table to the file filename
func (t *Table[S, A]) Save(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("save: could not create file: %w", err)
	}

	if err := t.Encode(file); err != nil {
		file.Close()
		return fmt.Errorf("save: %w", err)
	}
	return file.Close()
}

// Load replaces the contents of the Table with those saved in filename
func (t *Table[S, A]) Load(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("load: could not open file: %w", err)
	}
	defer file.Close()

	if err := t.Decode(file); err != nil {
		return fmt.Errorf("load: %w", err)
	}
	return nil
}
