package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/samuelfneumann/goqlearn/experiment"
	"github.com/samuelfneumann/goqlearn/report"
	"github.com/samuelfneumann/goqlearn/utils/progressbar"
)

// smoothing is the moving average window of the plotted returns
const smoothing = 20

type trainOptions struct {
	*options
	episodes int
	seed     uint64
	alpha    float64
	epsilon  float64
	discount float64
	output   string
	color    bool
	quiet    bool
}

func newTrainCmd(opts *options) *cobra.Command {
	o := &trainOptions{options: opts}

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train a Q-Learning agent on a gridworld",
		Long: `Train a single Q-Learning agent, then print its greedy policy and
state values. Returns, a chart of the learning curve and the final
action values are written to the output directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.run(cmd)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&o.episodes, "episodes", "n", 0, "Number of episodes")
	f.Uint64Var(&o.seed, "seed", 0, "Random seed")
	f.Float64Var(&o.alpha, "alpha", 0, "Learning rate")
	f.Float64Var(&o.epsilon, "epsilon", 0, "Initial exploration rate")
	f.Float64Var(&o.discount, "discount", 0, "Agent discount factor")
	f.StringVarP(&o.output, "output", "o", "", "Output directory")
	f.BoolVar(&o.color, "color", false, "Colour the printed policy")
	f.BoolVarP(&o.quiet, "quiet", "q", false, "Hide the progress bar")

	return cmd
}

// config returns the run configuration with flag overrides applied
func (o *trainOptions) config(cmd *cobra.Command) (RunConfig, error) {
	c, err := o.runConfig()
	if err != nil {
		return c, err
	}

	f := cmd.Flags()
	if f.Changed("episodes") {
		c.Experiment.Episodes = o.episodes
	}
	if f.Changed("seed") {
		c.Seed = o.seed
	}
	if f.Changed("alpha") {
		c.Agent.Alpha = o.alpha
	}
	if f.Changed("epsilon") {
		c.Agent.Epsilon = o.epsilon
	}
	if f.Changed("discount") {
		c.Agent.Discount = o.discount
	}
	if f.Changed("output") {
		c.Output.Dir = o.output
	}
	return c, c.Validate()
}

func (o *trainOptions) run(cmd *cobra.Command) error {
	c, err := o.config(cmd)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(c.Output.Dir, 0o755); err != nil {
		return fmt.Errorf("train: %w", err)
	}

	logger := o.logger(cmd.ErrOrStderr())
	logger.Info("training", "alpha", c.Agent.Alpha, "epsilon", c.Agent.Epsilon,
		"discount", c.Agent.Discount, "episodes", c.Experiment.Episodes,
		"seed", c.Seed)

	var onEpisode func(experiment.Episode)
	if !o.quiet && !o.verbose {
		bar := progressbar.NewManualProgressBar(cmd.ErrOrStderr(), 40,
			c.Experiment.Episodes)
		defer bar.Close()
		onEpisode = func(experiment.Episode) {
			bar.Increment()
			bar.Display()
		}
	}

	t, err := train(cmd.Context(), c, c.Agent, logger, onEpisode)
	if err != nil {
		return err
	}
	if err := t.save(); err != nil {
		return fmt.Errorf("train: %w", err)
	}
	if err := writeChart(c.Output, t.returns.Data()); err != nil {
		return fmt.Errorf("train: %w", err)
	}
	if c.Output.Table != "" {
		if err := t.agent.Save(outputPath(c.Output, c.Output.Table)); err != nil {
			return fmt.Errorf("train: %w", err)
		}
	}

	return printResults(cmd.OutOrStdout(), t, o.color)
}

// writeChart plots the raw and smoothed returns if a chart file is
// configured
func writeChart(o OutputConfig, returns []float64) error {
	if o.Chart == "" {
		return nil
	}

	file, err := os.Create(outputPath(o, o.Chart))
	if err != nil {
		return fmt.Errorf("writeChart: %w", err)
	}

	err = report.PlotReturns(file, "Return per episode",
		report.Series{Name: "return", Values: returns},
		report.Series{
			Name:   fmt.Sprintf("%d-episode average", smoothing),
			Values: report.Smooth(returns, smoothing),
		},
	)
	if err != nil {
		file.Close()
		return fmt.Errorf("writeChart: could not plot %v: %w",
			filepath.Base(file.Name()), err)
	}
	return file.Close()
}

// printResults prints the greedy policy and the state values of a
// trained agent
func printResults(w io.Writer, t *trained, color bool) error {
	fmt.Fprintln(w, "Greedy policy:")
	if err := report.PrintPolicy(w, t.env, t.agent.GetPolicy, color); err != nil {
		return err
	}

	values := t.env.ValueGrid(t.agent.GetValue)
	_, err := fmt.Fprintf(w, "\nState values:\n%v\n", report.FormatValues(values))
	return err
}
