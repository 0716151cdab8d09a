package editor

import (
	"slices"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/philipparndt/circles/pkg/analysis"
	"github.com/philipparndt/circles/pkg/geometry"
)

// ErrLocked is returned when moving a point that cannot be edited
var ErrLocked = errors.New("point is locked")

// Update is delivered to subscribers after every edit
type Update struct {
	Revision int
	Points   []geometry.Point
	Results  []analysis.Result
}

// Option configures an Editor
type Option func(*Editor)

// WithLocked prevents the points at the given indices from being moved
func WithLocked(indices ...int) Option {
	return func(e *Editor) {
		for _, i := range indices {
			e.locked[i] = true
		}
	}
}

// WithMethod selects the circumcircle construction used for analysis
func WithMethod(m geometry.Method) Option {
	return func(e *Editor) {
		e.method = m
	}
}

// OnUpdate registers a callback that receives every update in edit order.
// It runs while the editor is locked and must not call back into it.
func OnUpdate(fn func(Update)) Option {
	return func(e *Editor) {
		e.subscribers = append(e.subscribers, fn)
	}
}

// Editor owns a live point set. Every edit replaces the current snapshot
// and runs one analysis over it before the edit returns.
type Editor struct {
	mu          sync.Mutex
	points      []geometry.Point
	results     []analysis.Result
	revision    int
	locked      map[int]bool
	method      geometry.Method
	subscribers []func(Update)
}

// New creates an editor over a copy of points and analyzes it
func New(points []geometry.Point, opts ...Option) *Editor {
	e := &Editor{locked: make(map[int]bool)}
	for _, opt := range opts {
		opt(e)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.apply(geometry.ClonePoints(points))
	return e
}

// Move places the point at index i at p
func (e *Editor) Move(i int, p geometry.Point) ([]analysis.Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if i < 0 || i >= len(e.points) {
		return nil, errors.Newf("point index %d out of range [0, %d)", i, len(e.points))
	}
	if e.locked[i] {
		return nil, errors.Wrapf(ErrLocked, "point %d", i)
	}

	next := geometry.ClonePoints(e.points)
	next[i] = p
	return e.apply(next), nil
}

// Replace swaps in a whole new point set
func (e *Editor) Replace(points []geometry.Point) []analysis.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.apply(geometry.ClonePoints(points))
}

// Snapshot returns a copy of the current point set
func (e *Editor) Snapshot() []geometry.Point {
	e.mu.Lock()
	defer e.mu.Unlock()
	return geometry.ClonePoints(e.points)
}

// Results returns the analysis of the current point set
func (e *Editor) Results() []analysis.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Clone(e.results)
}

// Revision returns the number of snapshots taken so far
func (e *Editor) Revision() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.revision
}

// Nearest returns the index of the point closest to p within maxDist, or
// -1 if there is none.
func (e *Editor) Nearest(p geometry.Point, maxDist float64) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	best, bestDist := -1, maxDist
	for i, q := range e.points {
		if d := q.Distance(p); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// apply installs points as the new snapshot; e.mu must be held
func (e *Editor) apply(points []geometry.Point) []analysis.Result {
	e.points = points
	e.results = analysis.Analyze(points, analysis.WithMethod(e.method))
	e.revision++

	if len(e.subscribers) > 0 {
		u := Update{
			Revision: e.revision,
			Points:   geometry.ClonePoints(points),
			Results:  slices.Clone(e.results),
		}
		for _, fn := range e.subscribers {
			fn(u)
		}
	}
	return slices.Clone(e.results)
}
