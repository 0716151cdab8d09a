package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/philipparndt/circles/internal/config"
	"github.com/philipparndt/circles/internal/logging"
	"github.com/philipparndt/circles/pkg/geometry"
	"github.com/philipparndt/circles/pkg/montecarlo"
	"github.com/philipparndt/circles/version"
	"github.com/spf13/cobra"
)

var (
	envFile    string
	verbose    bool
	methodName string

	cfg          = config.Default()
	logger       = logging.NewStderr(logging.LevelInfo)
	circleMethod = geometry.MethodGeneral
)

var rootCmd = &cobra.Command{
	Use:   "circles",
	Short: "Classify the circumcircles of small 2D point sets",
	Long: `circles builds the circumcircle of every triple in a point set and checks
whether exactly one of the remaining points lies inside it and exactly one
outside. It can analyze a single point set, watch a point set file while it
is edited, and gather Monte-Carlo statistics over random 5-point sets.`,
	Version:       version.GetVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		m, err := geometry.ParseMethod(methodName)
		if err != nil {
			return errors.Mark(err, montecarlo.ErrInvalidArgument)
		}
		circleMethod = m

		loaded, err := config.Load(envFile)
		if err != nil {
			return err
		}
		cfg = loaded
		logger.SetLevel(cfg.LogLevel)
		if verbose {
			logger.SetLevel(logging.LevelDebug)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", config.DefaultEnvFile, "Optional file with CIRCLES_* settings")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&methodName, "method", geometry.MethodGeneral.String(),
		"Circumcircle construction: general, or slope (skips triples with horizontal segments)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
