package montecarlo

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
	"github.com/philipparndt/circles/pkg/analysis"
	"github.com/philipparndt/circles/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunThousandTrials(t *testing.T) {
	h, err := Run(context.Background(), Options{Trials: 1000, Seed: 42})
	require.NoError(t, err)

	assert.Equal(t, 1000, h.Total())
	assert.Equal(t, 1000, h.Trials)
	maxKey := analysis.Binomial(DefaultPoints, 3)
	for _, k := range h.Keys() {
		assert.GreaterOrEqual(t, k, 0)
		assert.LessOrEqual(t, k, maxKey)
		require.Contains(t, h.Examples, k)
		assert.Len(t, h.Examples[k], DefaultPoints)
	}
	assert.Len(t, h.Examples, len(h.Counts))
}

func TestRunExamplesReproduceTheirCount(t *testing.T) {
	h, err := Run(context.Background(), Options{Trials: 300, Seed: 9})
	require.NoError(t, err)

	for count, points := range h.Examples {
		assert.Equal(t, count, analysis.CountValid(analysis.Analyze(points)))
		for _, p := range points {
			assert.True(t, DefaultDomain.ContainsPoint(p.Vec()), "%v outside the domain", p)
		}
	}
}

func TestRunDeterministicAcrossWorkers(t *testing.T) {
	ctx := context.Background()
	sequential, err := Run(ctx, Options{Trials: 500, Seed: 1234})
	require.NoError(t, err)

	for _, workers := range []int{2, 3, 8} {
		parallel, err := Run(ctx, Options{Trials: 500, Seed: 1234, Workers: workers})
		require.NoError(t, err)

		assert.Equal(t, sequential.Trials, parallel.Trials, "workers=%d", workers)
		assert.Equal(t, sequential.Counts, parallel.Counts, "workers=%d", workers)
		assert.Equal(t, sequential.Examples, parallel.Examples, "workers=%d", workers)
	}
}

func TestRunSameSeedSameHistogram(t *testing.T) {
	ctx := context.Background()
	a, err := Run(ctx, Options{Trials: 200, Seed: 5})
	require.NoError(t, err)
	b, err := Run(ctx, Options{Trials: 200, Seed: 5})
	require.NoError(t, err)

	assert.Equal(t, a.Counts, b.Counts)
	assert.Equal(t, a.Examples, b.Examples)
}

func TestRunZeroTrials(t *testing.T) {
	h, err := Run(context.Background(), Options{})
	require.NoError(t, err)
	assert.Equal(t, 0, h.Total())
	assert.Empty(t, h.Keys())
}

func TestRunCustomDomainAndSize(t *testing.T) {
	domain := r2.Rect{X: r1.Interval{Lo: -5, Hi: 5}, Y: r1.Interval{Lo: 10, Hi: 11}}
	h, err := Run(context.Background(), Options{Trials: 50, Points: 6, Domain: domain, Seed: 3})
	require.NoError(t, err)

	assert.Equal(t, 50, h.Total())
	for k, points := range h.Examples {
		assert.LessOrEqual(t, k, analysis.Binomial(6, 3))
		assert.Len(t, points, 6)
		for _, p := range points {
			assert.True(t, domain.ContainsPoint(p.Vec()))
		}
	}
}

func TestRunInvalidOptions(t *testing.T) {
	ctx := context.Background()
	tests := []Options{
		{Trials: -1},
		{Trials: 10, Points: 2},
		{Trials: 10, Domain: r2.Rect{X: r1.Interval{Lo: 0, Hi: 0}, Y: r1.Interval{Lo: 0, Hi: 1}}},
		{Trials: 10, Domain: r2.Rect{X: r1.Interval{Lo: 0, Hi: 1}, Y: r1.Interval{Lo: 3, Hi: 1}}},
		{Trials: 10, Workers: -2},
	}

	for _, opts := range tests {
		h, err := Run(ctx, opts)
		assert.Nil(t, h)
		assert.True(t, errors.Is(err, ErrInvalidArgument), "options %+v: %v", opts, err)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, workers := range []int{1, 4} {
		h, err := Run(ctx, Options{Trials: 100, Workers: workers})
		assert.Nil(t, h)
		assert.True(t, errors.Is(err, context.Canceled), "workers=%d: %v", workers, err)
	}
}

func TestSampleStaysInDomain(t *testing.T) {
	rng := TrialRand(77, 0)
	points := make([]geometry.Point, 1000)
	Sample(rng, DefaultDomain, points)

	for _, p := range points {
		assert.GreaterOrEqual(t, p.X, 0.0)
		assert.Less(t, p.X, 100.0)
		assert.GreaterOrEqual(t, p.Y, 0.0)
		assert.Less(t, p.Y, 100.0)
	}
}
