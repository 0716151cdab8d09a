package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/philipparndt/circles/pkg/analysis"
	"github.com/philipparndt/circles/pkg/geometry"
	"github.com/philipparndt/circles/pkg/store"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var analyzeValidOnly bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze [points.json]",
	Short: "Classify every circumcircle of one point set",
	Long: `Read a point set (a JSON list of [x, y] pairs), build the circumcircle of
every 3-point combination and report how many of the remaining points lie
inside and outside each circle. Combinations without a circle are omitted.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().BoolVar(&analyzeValidOnly, "valid-only", false, "Only list circles with a 1-1 split")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	points, err := store.LoadPointSet(afero.NewOsFs(), args[0])
	if err != nil {
		return err
	}
	logger.Debug("loaded %d points from %s", len(points), args[0])

	results := analysis.Analyze(points, analysis.WithMethod(circleMethod))
	printResults(cmd.OutOrStdout(), points, results, analyzeValidOnly)
	return nil
}

func printResults(w io.Writer, points []geometry.Point, results []analysis.Result, validOnly bool) {
	fmt.Fprintln(w, "Point Set")
	fmt.Fprintln(w, "=========")
	for i, p := range points {
		fmt.Fprintf(w, "  P%d: %s\n", i, analysis.FormatPoint(p))
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Combinations: %d\n", analysis.Binomial(len(points), 3))
	fmt.Fprintf(w, "Circles: %d\n", len(results))
	fmt.Fprintf(w, "Valid circles: %d\n\n", analysis.CountValid(results))

	shown := results
	if validOnly {
		shown = analysis.Valid(results)
	}
	if len(shown) == 0 {
		fmt.Fprintln(w, "No circles to show.")
		return
	}

	fmt.Fprintf(w, "%-12s %-28s %-12s %-7s %-8s %s\n", "Triple", "Center", "Radius", "Inside", "Outside", "Status")
	fmt.Fprintln(w, strings.Repeat("-", 80))
	for _, r := range shown {
		status := "invalid"
		if r.Valid {
			status = "valid"
		}
		fmt.Fprintf(w, "%-12s %-28s %-12.6f %-7d %-8d %s\n",
			formatTriple(r.Indices),
			analysis.FormatPoint(r.Circle.Center),
			r.Circle.Radius,
			r.InsideCount(),
			r.OutsideCount(),
			status)
	}
}

func formatTriple(idx [3]int) string {
	return fmt.Sprintf("P%d P%d P%d", idx[0], idx[1], idx[2])
}
