// Package cmd implements the goqlearn command line interface
package cmd

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// options are the flags shared by every command
type options struct {
	configFile string
	verbose    bool
}

// NewRootCmd returns the goqlearn root command
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "goqlearn",
		Short: "Tabular ε-greedy Q-Learning on gridworlds",
		Long: `goqlearn trains tabular Q-Learning agents on gridworld environments.

Commands:
  train   Train one agent and report its returns, policy and values
  sweep   Train one agent per hyperparameter combination and rank them

Without --config the cliff walking gridworld is used.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "",
		"YAML run configuration")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false,
		"Log every episode")

	root.AddCommand(newTrainCmd(opts), newSweepCmd(opts))
	return root
}

// Execute runs the root command and exits on error
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// runConfig returns the configuration selected by the flags
func (o *options) runConfig() (RunConfig, error) {
	if o.configFile == "" {
		c := DefaultRunConfig()
		return c, c.Validate()
	}
	return LoadRunConfig(o.configFile)
}

// logger returns a text logger writing to w
func (o *options) logger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
