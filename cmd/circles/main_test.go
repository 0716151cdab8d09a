package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/philipparndt/circles/pkg/analysis"
	"github.com/philipparndt/circles/pkg/geometry"
	"github.com/philipparndt/circles/pkg/montecarlo"
	"github.com/philipparndt/circles/pkg/store"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square() []geometry.Point {
	return []geometry.Point{
		geometry.NewPoint(0, 0),
		geometry.NewPoint(10, 0),
		geometry.NewPoint(10, 10),
		geometry.NewPoint(0, 10),
		geometry.NewPoint(5, 5),
	}
}

// resetFlags restores every flag to its default, since rootCmd is shared
// between tests.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args, "--env-file", ""))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestPrintResults(t *testing.T) {
	points := square()
	var buf bytes.Buffer
	printResults(&buf, points, analysis.Analyze(points), false)

	out := buf.String()
	assert.Contains(t, out, "P4: (5.000000, 5.000000)")
	assert.Contains(t, out, "Combinations: 10")
	assert.Contains(t, out, "Circles: 8")
	assert.Contains(t, out, "P0 P1 P3")

	buf.Reset()
	printResults(&buf, points, analysis.Analyze(points), true)
	assert.Contains(t, buf.String(), "No circles to show.")
}

func TestPrintHistogram(t *testing.T) {
	h := montecarlo.NewHistogram()
	h.Record(0, 2, square())
	h.Record(1, 2, square())
	h.Record(2, 4, square())
	h.Record(3, 0, square())

	var buf bytes.Buffer
	require.NoError(t, printHistogram(&buf, h))
	out := buf.String()
	assert.Contains(t, out, "(4 trials)")
	assert.Contains(t, out, " 50.00%")
	assert.Contains(t, out, "Mean: 2.0000")
	assert.Contains(t, out, "Range: 0 - 4")

	buf.Reset()
	require.NoError(t, printHistogram(&buf, montecarlo.NewHistogram()))
	assert.Contains(t, buf.String(), "No trials were run.")
}

func TestPrintExamples(t *testing.T) {
	valid := []geometry.Point{
		geometry.NewPoint(0, 0),
		geometry.NewPoint(4, 0),
		geometry.NewPoint(0, 4),
		geometry.NewPoint(1, 1),
		geometry.NewPoint(20, 20),
	}
	h := montecarlo.NewHistogram()
	h.Record(0, analysis.CountValid(analysis.Analyze(valid)), valid)
	h.Record(1, 0, square())

	var buf bytes.Buffer
	printExamples(&buf, h, 1)
	out := buf.String()
	assert.Contains(t, out, "Count = 0 (frequency 1)")
	// the square example has no valid circle but its first circle is listed
	assert.Contains(t, out, "Circle 1 (invalid): center=(5.000000, 5.000000)")
	assert.Contains(t, out, "inside:  (5.000000, 5.000000)\n    outside: -\n")
	assert.Contains(t, out, "... 7 more")
	assert.Contains(t, out, "Circle 1 (valid): center=(2.000000, 2.000000)")
	assert.Contains(t, out, "inside:  (1.000000, 1.000000)\n    outside: (20.000000, 20.000000)\n")

	buf.Reset()
	h = montecarlo.NewHistogram()
	h.Record(0, 0, []geometry.Point{
		geometry.NewPoint(0, 0),
		geometry.NewPoint(1, 1),
		geometry.NewPoint(2, 2),
	})
	printExamples(&buf, h, 4)
	assert.Contains(t, buf.String(), "No circles.")
}

func TestChangedLocked(t *testing.T) {
	prev := square()
	next := square()
	next[4] = geometry.NewPoint(6, 6)

	assert.False(t, changedLocked(prev, next, []int{0, 1}))
	assert.True(t, changedLocked(prev, next, []int{4}))
	assert.False(t, changedLocked(prev, next, []int{7, -1}))
}

func TestAnalyzeCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "square.json")
	require.NoError(t, os.WriteFile(path, []byte("[[0,0],[10,0],[10,10],[0,10],[5,5]]"), 0o644))

	out, err := execute(t, "analyze", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Circles: 8")
	assert.Contains(t, out, "Valid circles: 0")
}

func TestAnalyzeCommandMissingFile(t *testing.T) {
	_, err := execute(t, "analyze", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestTrialsAndShowCommands(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, "trials", "200", "--seed", "7", "--out", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Seed: 7")
	assert.Contains(t, out, "(200 trials)")
	assert.FileExists(t, filepath.Join(dir, "result_200.json"))
	assert.FileExists(t, filepath.Join(dir, "example_points_200.json"))

	out, err = execute(t, "show", "200", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Count = ")
}

func TestTrialsCommandRejectsBadCount(t *testing.T) {
	_, err := execute(t, "trials", "many", "--out", t.TempDir())
	assert.Error(t, err)
}

func TestAnalyzeCommandMethod(t *testing.T) {
	path := filepath.Join(t.TempDir(), "square.json")
	require.NoError(t, os.WriteFile(path, []byte("[[0,0],[10,0],[10,10],[0,10],[5,5]]"), 0o644))

	out, err := execute(t, "analyze", path, "--method", "slope")
	require.NoError(t, err)
	assert.Contains(t, out, "Circles: 2")
	assert.Contains(t, out, "P0 P3 P4")

	out, err = execute(t, "analyze", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Circles: 8")

	_, err = execute(t, "analyze", path, "--method", "spline")
	require.Error(t, err)
	assert.True(t, errors.Is(err, montecarlo.ErrInvalidArgument))
}

func TestTrialsCommandRejectsSmallPointSets(t *testing.T) {
	for _, points := range []string{"0", "2", "-1"} {
		dir := t.TempDir()
		_, err := execute(t, "trials", "20", "--seed", "1", "--points", points, "--out", dir)
		require.Error(t, err, "--points %s", points)
		assert.True(t, errors.Is(err, montecarlo.ErrInvalidArgument))
		assert.NoFileExists(t, filepath.Join(dir, "result_20.json"))
	}
}

func TestTrialsCommandPoints(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "trials", "20", "--seed", "1", "--points", "4", "--out", dir)
	require.NoError(t, err)

	examples, err := store.NewOS(dir).LoadExamples(20)
	require.NoError(t, err)
	require.NotEmpty(t, examples)
	for count, pts := range examples {
		assert.Len(t, pts, 4, "example for count %d", count)
	}
}
