package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/samuelfneumann/goqlearn/agent/tabular/qlearning"
	"github.com/samuelfneumann/goqlearn/environment/gridworld"
	"github.com/samuelfneumann/goqlearn/experiment"
	"github.com/samuelfneumann/goqlearn/experiment/checkpointer"
	"github.com/samuelfneumann/goqlearn/experiment/trackers"
)

// trained is the outcome of one training run
type trained struct {
	env     *gridworld.GridWorld
	agent   *qlearning.QLearning[gridworld.Cell, gridworld.Action]
	exp     *experiment.Online[gridworld.Cell, gridworld.Action]
	returns *trackers.Return[gridworld.Cell]
	lengths *trackers.EpisodeLength[gridworld.Cell]
	output  OutputConfig
}

// save writes the tracked data to the files named in the output
// configuration
func (t *trained) save() error {
	if t.output.Returns != "" {
		if err := t.returns.Save(); err != nil {
			return err
		}
	}
	if t.lengths != nil {
		return t.lengths.Save()
	}
	return nil
}

// setup builds the gridworld, agent and experiment described by c,
// using agentConfig for the agent's hyperparameters
func setup(c RunConfig, agentConfig qlearning.Config,
	logger *slog.Logger) (*trained, error) {
	env, _, err := gridworld.New(c.Environment.Layout, c.Environment.Rewards,
		c.Environment.Discount, c.Seed)
	if err != nil {
		return nil, fmt.Errorf("setup: could not create environment: %w", err)
	}

	q, err := qlearning.New(agentConfig, env.LegalActions, c.Seed)
	if err != nil {
		return nil, fmt.Errorf("setup: could not create agent: %w", err)
	}

	sched, err := c.Schedule.Create()
	if err != nil {
		return nil, fmt.Errorf("setup: %w", err)
	}

	returns := trackers.NewReturn[gridworld.Cell](
		outputPath(c.Output, c.Output.Returns))

	exp, err := experiment.NewOnline[gridworld.Cell, gridworld.Action](env, q,
		c.Experiment, returns)
	if err != nil {
		return nil, fmt.Errorf("setup: %w", err)
	}
	exp.SetSchedule(sched)
	exp.SetLogger(logger)

	return &trained{env: env, agent: q, exp: exp, returns: returns,
		output: c.Output}, nil
}

// train sets up and runs a full experiment. Checkpoints are written
// during the run; tracked data is written by save.
func train(ctx context.Context, c RunConfig, agentConfig qlearning.Config,
	logger *slog.Logger, onEpisode func(experiment.Episode)) (*trained, error) {
	t, err := setup(c, agentConfig, logger)
	if err != nil {
		return nil, err
	}
	t.exp.OnEpisodeEnd = onEpisode

	if c.Output.Lengths != "" {
		t.lengths = trackers.NewEpisodeLength[gridworld.Cell](
			outputPath(c.Output, c.Output.Lengths))
		t.exp.Register(t.lengths)
	}
	if c.Output.CheckpointEvery > 0 && c.Output.Table != "" {
		ext := filepath.Ext(c.Output.Table)
		name := outputPath(c.Output, c.Output.Table[:len(c.Output.Table)-len(ext)])
		t.exp.AddCheckpointer(checkpointer.NewNStep(c.Output.CheckpointEvery,
			t.agent, checkpointer.FilenameEnumerator(0, name+"-", ext)))
	}

	return t, t.exp.Run(ctx)
}

// outputPath returns the path of an output file, or "" if name is empty
func outputPath(o OutputConfig, name string) string {
	if name == "" {
		return ""
	}
	return filepath.Join(o.Dir, name)
}
