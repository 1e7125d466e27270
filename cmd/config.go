package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/samuelfneumann/goqlearn/agent/tabular/qlearning"
	"github.com/samuelfneumann/goqlearn/environment/gridworld"
	"github.com/samuelfneumann/goqlearn/experiment"
	"github.com/samuelfneumann/goqlearn/experiment/schedule"
)

// RunConfig is the configuration file read by the train and sweep
// commands
type RunConfig struct {
	Seed        uint64            `yaml:"seed"`
	Agent       qlearning.Config  `yaml:"agent"`
	Schedule    schedule.Config   `yaml:"schedule"`
	Environment EnvConfig         `yaml:"environment"`
	Experiment  experiment.Config `yaml:"experiment"`
	Output      OutputConfig      `yaml:"output"`
	Sweep       SweepConfig       `yaml:"sweep"`
}

// EnvConfig describes the gridworld to train on
type EnvConfig struct {
	Layout   []string          `yaml:"layout"`
	Rewards  gridworld.Rewards `yaml:"rewards"`
	Discount float64           `yaml:"discount"`
}

// OutputConfig determines which files the train command writes. Empty
// file names are skipped; names are relative to Dir.
type OutputConfig struct {
	Dir             string `yaml:"dir"`
	Returns         string `yaml:"returns"`
	Lengths         string `yaml:"lengths"`
	Chart           string `yaml:"chart"`
	Table           string `yaml:"table"`
	CheckpointEvery int    `yaml:"checkpoint_every"`
}

// SweepConfig lists the hyperparameters tried by the sweep command.
// Each configuration is scored by its mean return over the Last
// episodes.
type SweepConfig struct {
	qlearning.ConfigList `yaml:",inline"`
	Last                 int `yaml:"last"`
}

// DefaultRunConfig returns the configuration used when no file is
// given: cliff walking with the usual -1 per step and -100 for falling
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Seed:     1923,
		Agent:    qlearning.Config{Alpha: 0.5, Epsilon: 0.25, Discount: 0.99},
		Schedule: schedule.Config{Type: schedule.ExponentialType, Decay: 0.99, Min: 0.01},
		Environment: EnvConfig{
			Layout:   gridworld.CliffWalking,
			Rewards:  gridworld.Rewards{Step: -1, Goal: -1, Pit: -100},
			Discount: 0.99,
		},
		Experiment: experiment.Config{Episodes: 500, MaxEpisodeSteps: 1000},
		Output: OutputConfig{
			Dir:     ".",
			Returns: "returns.bin",
			Chart:   "returns.html",
			Table:   "qtable.bin",
		},
		Sweep: SweepConfig{
			ConfigList: qlearning.ConfigList{
				Alpha:    []float64{0.1, 0.5, 0.9},
				Epsilon:  []float64{0.05, 0.1, 0.25},
				Discount: []float64{0.99},
			},
			Last: 100,
		},
	}
}

// LoadRunConfig reads a RunConfig from a YAML file. Fields missing from
// the file keep their DefaultRunConfig values.
func LoadRunConfig(filename string) (RunConfig, error) {
	c := DefaultRunConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return c, fmt.Errorf("loadRunConfig: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("loadRunConfig: could not parse %v: %w",
			filename, err)
	}
	return c, c.Validate()
}

// Validate ensures that the RunConfig is valid
func (c RunConfig) Validate() error {
	if err := c.Agent.Validate(); err != nil {
		return fmt.Errorf("agent: %w", err)
	}
	if _, err := c.Schedule.Create(); err != nil {
		return fmt.Errorf("schedule: %w", err)
	}
	if err := c.Experiment.Validate(); err != nil {
		return fmt.Errorf("experiment: %w", err)
	}
	if len(c.Environment.Layout) == 0 {
		return fmt.Errorf("environment: no layout")
	}
	return nil
}
