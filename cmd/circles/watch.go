package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/philipparndt/circles/pkg/editor"
	"github.com/philipparndt/circles/pkg/geometry"
	"github.com/philipparndt/circles/pkg/store"
	"github.com/philipparndt/circles/pkg/watcher"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var watchLocked []int

var watchCmd = &cobra.Command{
	Use:   "watch [points.json]",
	Short: "Re-analyze a point set file every time it is saved",
	Long: `Watch a point set file and print a fresh analysis after every change.
Each save replaces the whole point set; the analysis always runs on a
complete snapshot of the file.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().IntSliceVar(&watchLocked, "locked", nil, "Indices of points that are reported as locked")
}

func runWatch(cmd *cobra.Command, args []string) error {
	path := args[0]
	fs := afero.NewOsFs()
	out := cmd.OutOrStdout()

	points, err := store.LoadPointSet(fs, path)
	if err != nil {
		return err
	}

	ed := editor.New(points,
		editor.WithMethod(circleMethod),
		editor.WithLocked(watchLocked...),
		editor.OnUpdate(func(u editor.Update) {
			fmt.Fprintf(out, "\nRevision %d\n", u.Revision)
			printResults(out, u.Points, u.Results, false)
		}),
	)

	fw, err := watcher.NewFileWatcher(cfg.Debounce, logger)
	if err != nil {
		return err
	}
	defer fw.Close()

	err = fw.Watch([]string{path}, func(changed string) {
		next, err := store.LoadPointSet(fs, changed)
		if err != nil {
			// Editors often write files in several steps; wait for the next event.
			logger.Warn("ignoring %s: %v", changed, err)
			return
		}
		if changedLocked(ed.Snapshot(), next, watchLocked) {
			logger.Warn("locked points in %s were moved", changed)
		}
		ed.Replace(next)
	})
	if err != nil {
		return err
	}
	fw.Start()
	logger.Info("watching %s (press Ctrl+C to stop)", path)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()
	return nil
}

// changedLocked reports whether any locked point differs between two sets
func changedLocked(prev, next []geometry.Point, locked []int) bool {
	for _, i := range locked {
		if i < 0 || i >= len(prev) || i >= len(next) {
			continue
		}
		if prev[i] != next[i] {
			return true
		}
	}
	return false
}
