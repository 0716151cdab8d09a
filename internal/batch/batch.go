package batch

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/philipparndt/circles/internal/logging"
	"github.com/philipparndt/circles/pkg/montecarlo"
	"github.com/philipparndt/circles/pkg/store"
)

// ParseTrialCount parses the positional trial count argument
func ParseTrialCount(arg string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, errors.Mark(errors.Wrapf(err, "trial count %q is not a number", arg), montecarlo.ErrInvalidArgument)
	}
	if n < 0 {
		return 0, errors.Mark(errors.Newf("trial count must not be negative, got %d", n), montecarlo.ErrInvalidArgument)
	}
	return n, nil
}

// TimeSeed returns a seed derived from the current time
func TimeSeed() uint64 {
	return uint64(time.Now().UnixNano())
}

// Run executes the Monte-Carlo aggregation and stores both result files.
// It returns the histogram and the paths written.
func Run(ctx context.Context, opts montecarlo.Options, s *store.Store, logger *logging.Logger) (*montecarlo.Histogram, []string, error) {
	start := time.Now()
	logger.Debug("running %d trials (seed=%d workers=%d method=%s)", opts.Trials, opts.Seed, opts.Workers, opts.Method)

	h, err := montecarlo.Run(ctx, opts)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("completed %d trials in %s", h.Trials, time.Since(start).Round(time.Millisecond))

	paths, err := s.SaveHistogram(h)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to save results")
	}
	for _, p := range paths {
		logger.Info("wrote %s", p)
	}
	return h, paths, nil
}
