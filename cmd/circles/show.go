package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/philipparndt/circles/internal/batch"
	"github.com/philipparndt/circles/pkg/analysis"
	"github.com/philipparndt/circles/pkg/geometry"
	"github.com/philipparndt/circles/pkg/montecarlo"
	"github.com/philipparndt/circles/pkg/store"
	"github.com/spf13/cobra"
)

var (
	showDir string
	showMax int
)

var showCmd = &cobra.Command{
	Use:   "show [n]",
	Short: "Show the stored example point set for every count",
	Long: `Load result_<n>.json and example_points_<n>.json written by "trials" and
list, for every observed count, the first circles of its example point set
with the points inside and outside of each. Valid circles are marked.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().StringVarP(&showDir, "dir", "d", "", "Directory holding the result files (default: CIRCLES_OUTPUT_DIR or .)")
	showCmd.Flags().IntVarP(&showMax, "max", "m", 4, "Maximum number of circles listed per example (0 lists all)")
}

func runShow(cmd *cobra.Command, args []string) error {
	n, err := batch.ParseTrialCount(args[0])
	if err != nil {
		return err
	}

	dir := cfg.OutputDir
	if showDir != "" {
		dir = showDir
	}

	h, err := store.NewOS(dir).LoadHistogram(n)
	if err != nil {
		return err
	}
	printExamples(cmd.OutOrStdout(), h, showMax)
	return nil
}

func printExamples(w io.Writer, h *montecarlo.Histogram, limit int) {
	for _, count := range store.SortedKeys(h.Examples) {
		points := h.Examples[count]
		fmt.Fprintf(w, "Count = %d (frequency %d)\n", count, h.Counts[count])
		fmt.Fprintln(w, "====================")
		for i, p := range points {
			fmt.Fprintf(w, "  P%d: %s\n", i, analysis.FormatPoint(p))
		}

		results := analysis.Analyze(points, analysis.WithMethod(circleMethod))
		if len(results) == 0 {
			fmt.Fprintln(w, "  No circles.")
		}
		for i, r := range results {
			if limit > 0 && i >= limit {
				fmt.Fprintf(w, "  ... %d more\n", len(results)-limit)
				break
			}
			status := "invalid"
			if r.Valid {
				status = "valid"
			}
			fmt.Fprintf(w, "  Circle %d (%s): %s through %s\n", i+1, status, r.Circle, formatTriple(r.Indices))
			fmt.Fprintf(w, "    inside:  %s\n", formatPoints(r.Inside))
			fmt.Fprintf(w, "    outside: %s\n", formatPoints(r.Outside))
		}
		fmt.Fprintln(w)
	}
}

func formatPoints(points []geometry.Point) string {
	if len(points) == 0 {
		return "-"
	}
	parts := make([]string, len(points))
	for i, p := range points {
		parts[i] = analysis.FormatPoint(p)
	}
	return strings.Join(parts, " ")
}
