package montecarlo

import (
	"context"
	"math"
	"math/rand/v2"

	"github.com/cockroachdb/errors"
	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
	"github.com/philipparndt/circles/pkg/analysis"
	"github.com/philipparndt/circles/pkg/geometry"
	"golang.org/x/sync/errgroup"
)

// ErrInvalidArgument marks errors caused by bad user input
var ErrInvalidArgument = errors.New("invalid argument")

const (
	// DefaultPoints is the size of every sampled point set
	DefaultPoints = 5
	// DefaultSize is the side length of the default sampling square
	DefaultSize = 100.0

	// how often the sequential loop checks for cancellation
	cancelCheckInterval = 1024
)

// DefaultDomain is the square [0, 100) x [0, 100)
var DefaultDomain = SquareDomain(DefaultSize)

// SquareDomain returns the square [0, size) x [0, size)
func SquareDomain(size float64) r2.Rect {
	return r2.Rect{
		X: r1.Interval{Lo: 0, Hi: size},
		Y: r1.Interval{Lo: 0, Hi: size},
	}
}

// Options configures a Monte-Carlo run
type Options struct {
	Trials  int
	Points  int     // points per set, DefaultPoints when zero
	Domain  r2.Rect // sampling rectangle, DefaultDomain when zero
	Seed    uint64
	Workers int // parallel workers, 1 when zero
	Method  geometry.Method
}

func (o Options) withDefaults() Options {
	if o.Points == 0 {
		o.Points = DefaultPoints
	}
	if o.Domain == (r2.Rect{}) {
		o.Domain = DefaultDomain
	}
	if o.Workers == 0 {
		o.Workers = 1
	}
	return o
}

func (o Options) validate() error {
	if o.Trials < 0 {
		return errors.Mark(errors.Newf("trial count must not be negative, got %d", o.Trials), ErrInvalidArgument)
	}
	if o.Points < 3 {
		return errors.Mark(errors.Newf("point sets need at least 3 points, got %d", o.Points), ErrInvalidArgument)
	}
	if !(o.Domain.X.Length() > 0) || !(o.Domain.Y.Length() > 0) {
		return errors.Mark(errors.Newf("sampling domain %v is empty", o.Domain), ErrInvalidArgument)
	}
	if o.Workers < 1 {
		return errors.Mark(errors.Newf("worker count must be positive, got %d", o.Workers), ErrInvalidArgument)
	}
	return nil
}

// Run samples opts.Trials random point sets, analyzes each and tallies
// the number of valid circles per set. Every trial draws from its own
// stream derived from the seed and the trial index, so the result does not
// depend on the number of workers. A cancelled context abandons the run.
func Run(ctx context.Context, opts Options) (*Histogram, error) {
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}

	if opts.Workers == 1 || opts.Trials < opts.Workers {
		return runRange(ctx, opts, 0, opts.Trials)
	}

	parts := make([]*Histogram, opts.Workers)
	chunk := (opts.Trials + opts.Workers - 1) / opts.Workers

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < opts.Workers; w++ {
		from := w * chunk
		to := min(from+chunk, opts.Trials)
		if from >= to {
			continue
		}
		g.Go(func() error {
			h, err := runRange(ctx, opts, from, to)
			if err != nil {
				return err
			}
			parts[w] = h
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := NewHistogram()
	for _, part := range parts {
		result.Merge(part)
	}
	return result, nil
}

// runRange runs the trials with indices in [from, to)
func runRange(ctx context.Context, opts Options, from, to int) (*Histogram, error) {
	h := NewHistogram()
	points := make([]geometry.Point, opts.Points)

	for trial := from; trial < to; trial++ {
		if (trial-from)%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, errors.Wrapf(err, "monte-carlo run abandoned at trial %d", trial)
			}
		}

		Sample(TrialRand(opts.Seed, trial), opts.Domain, points)
		count := analysis.CountValid(analysis.Analyze(points, analysis.WithMethod(opts.Method)))
		h.Record(trial, count, points)
	}
	return h, nil
}

// TrialRand returns the random stream used by the given trial
func TrialRand(seed uint64, trial int) *rand.Rand {
	return rand.New(rand.NewPCG(seed, uint64(trial)))
}

// Sample fills points with coordinates drawn independently and uniformly
// from domain, half-open on the upper bounds.
func Sample(rng *rand.Rand, domain r2.Rect, points []geometry.Point) {
	for i := range points {
		points[i] = geometry.Point{
			X: uniform(rng, domain.X),
			Y: uniform(rng, domain.Y),
		}
	}
}

func uniform(rng *rand.Rand, in r1.Interval) float64 {
	v := in.Lo + rng.Float64()*in.Length()
	if v >= in.Hi {
		// rounding can land on the open bound
		v = math.Nextafter(in.Hi, in.Lo)
	}
	return v
}
