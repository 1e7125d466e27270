// Package experiment implements functionality for running an experiment
package experiment

import (
	"context"
	"fmt"
)

// Experiment outlines structs that can run experiments.
//
// Experiments send each environment TimeStep to Trackers, which cache
// the data they need in RAM to be saved to disk later by Save. Run runs
// episodes until the configured number of episodes have completed or
// the context is cancelled. RunEpisode runs a single episode.
type Experiment interface {
	Run(ctx context.Context) error
	RunEpisode(ctx context.Context) (Episode, error)

	// Save all tracked data to disk
	Save() error
}

// Config represents a configuration of an experiment
type Config struct {
	// Episodes is the number of episodes Run runs
	Episodes int `yaml:"episodes" json:"episodes"`

	// MaxEpisodeSteps cuts episodes off after this many steps. Zero
	// means episodes run until a terminal state.
	MaxEpisodeSteps int `yaml:"max_episode_steps" json:"max_episode_steps"`
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	if c.Episodes < 1 {
		return fmt.Errorf("episodes must be positive, got %d", c.Episodes)
	}
	if c.MaxEpisodeSteps < 0 {
		return fmt.Errorf("max episode steps cannot be negative, got %d",
			c.MaxEpisodeSteps)
	}
	return nil
}

// Episode summarizes a completed episode
type Episode struct {
	Number   int     // 1-based
	Steps    int     // actions taken
	Return   float64 // undiscounted sum of rewards
	Terminal bool    // whether a terminal state was reached
	Epsilon  float64 // exploration rate after the episode, if known
}
