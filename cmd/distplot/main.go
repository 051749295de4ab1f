package main

import (
	"os"

	"distplot/internal"
	"distplot/internal/analyzer"
	"distplot/internal/config"
	"distplot/internal/errors"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		err = classify(err)
		internal.DefaultLogger.Error("[%s] %v", errors.GetCode(err), err)
		os.Exit(1)
	}
}

// classify tags errors raised by cobra's argument checks, which carry no code.
func classify(err error) error {
	if err == nil || errors.IsAppError(err) {
		return err
	}
	return errors.WithCode(errors.CodeUsage, err)
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "distplot <data-file>",
		Short: "Summarize a numeric sample and plot its density",
		Long: `Read whitespace-separated numbers from a file, print count, quartiles,
extremes and standard deviation, then write a kernel density plot of the
data (outliers with |z| >= 3 removed) to kde.png.

Example: distplot measurements.txt`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0])
		},
	}
}

func run(cmd *cobra.Command, path string) error {
	// A missing .env is normal; settings then come from the environment or defaults.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := internal.NewLogger(cfg.LogLevel)
	_, err = analyzer.New(cfg, cmd.OutOrStdout(), logger).Run(path)
	return err
}
