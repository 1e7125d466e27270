package qlearning

import (
	"fmt"

	"github.com/samuelfneumann/goqlearn/utils/floatutils"
)

// Config represents a configuration for the QLearning agent
type Config struct {
	Alpha    float64 `yaml:"alpha" json:"alpha"`       // learning rate
	Epsilon  float64 `yaml:"epsilon" json:"epsilon"`   // behaviour exploration
	Discount float64 `yaml:"discount" json:"discount"` // γ
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	if !floatutils.InUnit(c.Alpha) {
		return fmt.Errorf("alpha must be in [0, 1], got %v", c.Alpha)
	}
	if !floatutils.InUnit(c.Epsilon) {
		return fmt.Errorf("epsilon must be in [0, 1], got %v", c.Epsilon)
	}
	if c.Discount < 0 {
		return fmt.Errorf("discount cannot be lower than 0, got %v",
			c.Discount)
	}
	return nil
}

// ConfigList implements functionality for storing a number of Config's
// in a simple manner. Instead of storing a slice of Configs, the
// ConfigList stores each field's values and constructs the list by
// every combination of field values.
type ConfigList struct {
	Alpha    []float64 `yaml:"alpha" json:"alpha"`
	Epsilon  []float64 `yaml:"epsilon" json:"epsilon"`
	Discount []float64 `yaml:"discount" json:"discount"`
}

// Len returns the number of Configs stored by the list
func (c ConfigList) Len() int {
	return len(c.Alpha) * len(c.Epsilon) * len(c.Discount)
}

// At returns the Config at index i. Discount varies fastest, then
// Epsilon, then Alpha.
func (c ConfigList) At(i int) (Config, error) {
	if i < 0 || i >= c.Len() {
		return Config{}, fmt.Errorf("at: index %d out of range [0, %d)", i,
			c.Len())
	}

	d := i % len(c.Discount)
	i /= len(c.Discount)
	e := i % len(c.Epsilon)
	a := i / len(c.Epsilon)

	return Config{
		Alpha:    c.Alpha[a],
		Epsilon:  c.Epsilon[e],
		Discount: c.Discount[d],
	}, nil
}
