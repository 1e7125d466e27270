package cmd

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/samuelfneumann/goqlearn/agent/tabular/qlearning"
	"github.com/samuelfneumann/goqlearn/experiment/trackers"
)

// result is the score of one configuration of a sweep
type result struct {
	config    qlearning.Config
	mean, std float64
}

func newSweepCmd(opts *options) *cobra.Command {
	var last int

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Train one agent per hyperparameter combination",
		Long: `Train one agent for every combination of the alpha, epsilon and
discount values listed under sweep in the configuration file, then
print the configurations ranked by their mean return over the last
episodes of training.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := opts.runConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("last") {
				c.Sweep.Last = last
			}
			if c.Sweep.Len() == 0 {
				return fmt.Errorf("sweep: no configurations to sweep")
			}

			// Sweeps only report; nothing is written to disk
			c.Output = OutputConfig{}
			logger := opts.logger(cmd.ErrOrStderr())

			results := make([]result, 0, c.Sweep.Len())
			for i := 0; i < c.Sweep.Len(); i++ {
				agentConfig, err := c.Sweep.At(i)
				if err != nil {
					return err
				}

				t, err := train(cmd.Context(), c, agentConfig, logger, nil)
				if err != nil {
					return fmt.Errorf("sweep: config %d: %w", i, err)
				}

				mean, std := trackers.Summary(t.returns.Data(), c.Sweep.Last)
				logger.Info("configuration done", "index", i,
					"alpha", agentConfig.Alpha, "epsilon", agentConfig.Epsilon,
					"discount", agentConfig.Discount, "mean", mean)
				results = append(results, result{agentConfig, mean, std})
			}

			sort.SliceStable(results, func(i, j int) bool {
				return results[i].mean > results[j].mean
			})

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "alpha\tepsilon\tdiscount\tmean\tstd")
			for _, r := range results {
				fmt.Fprintf(w, "%v\t%v\t%v\t%.3f\t%.3f\n", r.config.Alpha,
					r.config.Epsilon, r.config.Discount, r.mean, r.std)
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVar(&last, "last", 0,
		"Score each configuration over this many final episodes")
	return cmd
}
