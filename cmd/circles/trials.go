package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/golang/geo/r2"
	"github.com/philipparndt/circles/internal/batch"
	"github.com/philipparndt/circles/pkg/montecarlo"
	"github.com/philipparndt/circles/pkg/store"
	"github.com/spf13/cobra"
)

var (
	trialsSeed    uint64
	trialsWorkers int
	trialsPoints  int
	trialsSize    float64
	trialsOut     string
)

var trialsCmd = &cobra.Command{
	Use:   "trials [n]",
	Short: "Count valid circles over n random point sets",
	Long: `Draw n random point sets from a square, count the valid circles of each
and write the resulting histogram to result_<n>.json together with one
example point set per count in example_points_<n>.json.`,
	Args: cobra.ExactArgs(1),
	RunE: runTrials,
}

func init() {
	rootCmd.AddCommand(trialsCmd)

	trialsCmd.Flags().Uint64Var(&trialsSeed, "seed", 0, "Random seed (default: CIRCLES_SEED or time based)")
	trialsCmd.Flags().IntVarP(&trialsWorkers, "workers", "w", 0, "Number of parallel workers (default: CIRCLES_WORKERS or 1)")
	trialsCmd.Flags().IntVarP(&trialsPoints, "points", "p", montecarlo.DefaultPoints, "Points per set")
	trialsCmd.Flags().Float64Var(&trialsSize, "size", montecarlo.DefaultSize, "Side length of the sampling square")
	trialsCmd.Flags().StringVarP(&trialsOut, "out", "o", "", "Output directory (default: CIRCLES_OUTPUT_DIR or .)")
}

func runTrials(cmd *cobra.Command, args []string) error {
	n, err := batch.ParseTrialCount(args[0])
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("points") && trialsPoints < 3 {
		// zero would otherwise fall back to the default set size
		return errors.Mark(errors.Newf("point sets need at least 3 points, got %d", trialsPoints), montecarlo.ErrInvalidArgument)
	}

	opts := montecarlo.Options{
		Trials:  n,
		Points:  trialsPoints,
		Domain:  montecarlo.SquareDomain(trialsSize),
		Seed:    batch.TimeSeed(),
		Workers: cfg.Workers,
		Method:  circleMethod,
	}
	if cfg.HasSeed {
		opts.Seed = cfg.Seed
	}
	if cmd.Flags().Changed("seed") {
		opts.Seed = trialsSeed
	}
	if cmd.Flags().Changed("workers") {
		opts.Workers = trialsWorkers
	}
	if opts.Domain == (r2.Rect{}) {
		// --size 0 would otherwise silently fall back to the default square
		opts.Domain = r2.EmptyRect()
	}

	dir := cfg.OutputDir
	if trialsOut != "" {
		dir = trialsOut
	}

	h, _, err := batch.Run(cmd.Context(), opts, store.NewOS(dir), logger)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Seed: %d\n\n", opts.Seed)
	return printHistogram(cmd.OutOrStdout(), h)
}

func printHistogram(w io.Writer, h *montecarlo.Histogram) error {
	fmt.Fprintf(w, "Valid Circles per Point Set (%d trials)\n", h.Trials)
	fmt.Fprintln(w, "=======================================")
	if h.Total() == 0 {
		fmt.Fprintln(w, "No trials were run.")
		return nil
	}

	fmt.Fprintf(w, "%-8s %-10s %-8s\n", "Count", "Frequency", "Share")
	fmt.Fprintln(w, strings.Repeat("-", 28))
	for _, k := range h.Keys() {
		freq := h.Counts[k]
		fmt.Fprintf(w, "%-8d %-10d %6.2f%%\n", k, freq, 100*float64(freq)/float64(h.Total()))
	}

	s, err := h.Summary()
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Mean: %.4f\n", s.Mean)
	fmt.Fprintf(w, "Median: %.4f\n", s.Median)
	fmt.Fprintf(w, "Std dev: %.4f\n", s.StdDev)
	fmt.Fprintf(w, "Range: %.0f - %.0f\n", s.Min, s.Max)
	return nil
}
