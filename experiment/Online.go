package experiment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/samuelfneumann/goqlearn/agent"
	env "github.com/samuelfneumann/goqlearn/environment"
	"github.com/samuelfneumann/goqlearn/experiment/checkpointer"
	"github.com/samuelfneumann/goqlearn/experiment/schedule"
	"github.com/samuelfneumann/goqlearn/experiment/trackers"
	ts "github.com/samuelfneumann/goqlearn/timestep"
)

// Online is an Experiment that runs an agent online only. No offline
// evaluation is performed.
//
// On each step the agent selects an action with GetAction, the
// environment is stepped and the agent learns from the transition with
// Update. An episode ends when the environment reaches a terminal
// state, when the agent has no legal action, or when the step limit is
// reached.
type Online[S, A comparable] struct {
	environment   env.Environment[S, A]
	agent         agent.Agent[S, A]
	config        Config
	schedule      schedule.Schedule
	trackers      []trackers.Tracker[S]
	checkpointers []checkpointer.Checkpointer
	logger        *slog.Logger

	episodes int

	// OnEpisodeEnd, if not nil, is called after each episode
	OnEpisodeEnd func(Episode)
}

// NewOnline creates and returns a new online experiment on a given
// environment with a given agent. The t parameter is a list of Trackers
// which determine what data is saved.
func NewOnline[S, A comparable](e env.Environment[S, A], a agent.Agent[S, A],
	c Config, t ...trackers.Tracker[S]) (*Online[S, A], error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("newOnline: %w", err)
	}

	return &Online[S, A]{
		environment: e,
		agent:       a,
		config:      c,
		schedule:    schedule.Constant{},
		trackers:    t,
		logger:      slog.Default(),
	}, nil
}

// Register registers a Tracker with the Experiment so that data
// generated during the experiment can be tracked and saved
func (o *Online[S, A]) Register(t trackers.Tracker[S]) {
	o.trackers = append(o.trackers, t)
}

// AddCheckpointer adds a Checkpointer which is called after each
// episode
func (o *Online[S, A]) AddCheckpointer(c checkpointer.Checkpointer) {
	o.checkpointers = append(o.checkpointers, c)
}

// SetSchedule sets the exploration schedule applied after each episode.
// The schedule only has an effect if the agent is an agent.Explorer.
func (o *Online[S, A]) SetSchedule(s schedule.Schedule) {
	o.schedule = s
}

// SetLogger sets the logger used to report progress
func (o *Online[S, A]) SetLogger(l *slog.Logger) {
	o.logger = l
}

// EpisodesCompleted returns the number of episodes run so far
func (o *Online[S, A]) EpisodesCompleted() int {
	return o.episodes
}

// RunEpisode runs a single episode of the experiment
func (o *Online[S, A]) RunEpisode(ctx context.Context) (Episode, error) {
	step, err := o.environment.Reset()
	if err != nil {
		return Episode{}, fmt.Errorf("runEpisode: could not reset: %w", err)
	}
	o.track(step)

	var episode Episode
	for !step.Last() {
		if max := o.config.MaxEpisodeSteps; max > 0 && episode.Steps >= max {
			break
		}
		if err := ctx.Err(); err != nil {
			return episode, err
		}

		action, ok := o.agent.GetAction(step.Observation)
		if !ok {
			// Dead end: no legal actions in a non-terminal state
			break
		}

		next, _, err := o.environment.Step(action)
		if err != nil {
			return episode, fmt.Errorf("runEpisode: step %d: %w",
				step.Number, err)
		}
		o.track(next)

		tr := ts.NewTransition(step, action, next)
		o.agent.Update(tr.State, tr.Action, tr.NextState, tr.Reward)

		episode.Steps++
		episode.Return += tr.Reward
		step = next
	}

	o.episodes++
	episode.Number = o.episodes
	episode.Terminal = step.Last()

	if explorer, ok := o.agent.(agent.Explorer); ok {
		if o.schedule != nil {
			explorer.SetExplorationRate(
				o.schedule.Next(explorer.ExplorationRate(), o.episodes))
		}
		episode.Epsilon = explorer.ExplorationRate()
	}

	var errs []error
	for _, c := range o.checkpointers {
		if err := c.Checkpoint(o.episodes); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return episode, fmt.Errorf("runEpisode: checkpoint: %w", err)
	}

	o.logger.Debug("episode finished",
		"episode", episode.Number,
		"steps", episode.Steps,
		"return", episode.Return,
		"terminal", episode.Terminal,
		"epsilon", episode.Epsilon)

	if o.OnEpisodeEnd != nil {
		o.OnEpisodeEnd(episode)
	}
	return episode, nil
}

// Run runs the remaining episodes of the experiment
func (o *Online[S, A]) Run(ctx context.Context) error {
	var total float64
	var run int

	for o.episodes < o.config.Episodes {
		number := o.episodes + 1
		episode, err := o.RunEpisode(ctx)
		if err != nil {
			return fmt.Errorf("run: episode %d: %w", number, err)
		}
		total += episode.Return
		run++
	}

	mean := 0.0
	if run > 0 {
		mean = total / float64(run)
	}
	o.logger.Info("experiment finished",
		"episodes", o.episodes,
		"mean_return", mean)
	return nil
}

// Save saves all the data cached by the Trackers to disk
func (o *Online[S, A]) Save() error {
	var errs []error
	for _, t := range o.trackers {
		if err := t.Save(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// track tracks the current timestep by caching its data in each Tracker
func (o *Online[S, A]) track(t ts.TimeStep[S]) {
	for _, tracker := range o.trackers {
		tracker.Track(t)
	}
}
