// Package schedule implements schedules for decaying the exploration
// rate of an agent between episodes
package schedule

import (
	"fmt"

	"github.com/samuelfneumann/goqlearn/utils/floatutils"
)

// Schedule computes the exploration rate to use after an episode ends
type Schedule interface {
	// Next returns the exploration rate following epsilon after
	// episode episodes have completed
	Next(epsilon float64, episode int) float64
}

// Type names a Schedule in configuration files
type Type string

const (
	ConstantType    Type = "constant"
	ExponentialType Type = "exponential"
	LinearType      Type = "linear"
)

// Config describes a Schedule
type Config struct {
	Type  Type    `yaml:"type" json:"type"`
	Decay float64 `yaml:"decay" json:"decay"` // factor or step, by Type
	Min   float64 `yaml:"min" json:"min"`
}

// Create returns the Schedule described by the Config
func (c Config) Create() (Schedule, error) {
	if !floatutils.InUnit(c.Min) {
		return nil, fmt.Errorf("create: min must be in [0, 1], got %v",
			c.Min)
	}

	switch c.Type {
	case "", ConstantType:
		return Constant{}, nil

	case ExponentialType:
		if c.Decay <= 0 || c.Decay > 1 {
			return nil, fmt.Errorf("create: exponential decay must be in "+
				"(0, 1], got %v", c.Decay)
		}
		return Exponential{Decay: c.Decay, Min: c.Min}, nil

	case LinearType:
		if c.Decay < 0 {
			return nil, fmt.Errorf("create: linear decay cannot be "+
				"negative, got %v", c.Decay)
		}
		return Linear{Step: c.Decay, Min: c.Min}, nil
	}

	return nil, fmt.Errorf("create: no such schedule type %q", c.Type)
}

// Constant never changes the exploration rate
type Constant struct{}

// Next returns epsilon
func (Constant) Next(epsilon float64, _ int) float64 {
	return epsilon
}

// Exponential multiplies the exploration rate by Decay after each
// episode, never going below Min
type Exponential struct {
	Decay float64
	Min   float64
}

// Next returns max(Min, epsilon * Decay)
func (e Exponential) Next(epsilon float64, _ int) float64 {
	return floatutils.Clip(epsilon*e.Decay, e.Min, 1)
}

// Linear subtracts Step from the exploration rate after each episode,
// never going below Min
type Linear struct {
	Step float64
	Min  float64
}

// Next returns max(Min, epsilon - Step)
func (l Linear) Next(epsilon float64, _ int) float64 {
	return floatutils.Clip(epsilon-l.Step, l.Min, 1)
}
