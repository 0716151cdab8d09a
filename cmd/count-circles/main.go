// Command count-circles samples n random 5-point sets from the square
// [0, 100) x [0, 100) and writes result_<n>.json and example_points_<n>.json
// to the working directory.
package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/circles/internal/batch"
	"github.com/philipparndt/circles/internal/config"
	"github.com/philipparndt/circles/internal/logging"
	"github.com/philipparndt/circles/pkg/montecarlo"
	"github.com/philipparndt/circles/pkg/store"
	"github.com/philipparndt/circles/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "count-circles <n>",
	Short:         "Count valid circles over n random 5-point sets",
	Args:          cobra.ExactArgs(1),
	Version:       version.GetVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := batch.ParseTrialCount(args[0])
		if err != nil {
			return err
		}

		cfg, err := config.Load(config.DefaultEnvFile)
		if err != nil {
			return err
		}

		opts := montecarlo.Options{Trials: n, Seed: batch.TimeSeed()}
		if cfg.HasSeed {
			opts.Seed = cfg.Seed
		}

		_, _, err = batch.Run(cmd.Context(), opts, store.NewOS("."), logging.NewStderr(cfg.LogLevel))
		return err
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
