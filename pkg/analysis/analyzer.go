package analysis

import (
	"fmt"

	"github.com/philipparndt/circles/pkg/geometry"
)

// Result is the classification of one 3-point combination
type Result struct {
	Circle  geometry.Circle
	Triple  [3]geometry.Point // points forming the circle, in combination order
	Indices [3]int            // positions of Triple in the analyzed point set
	Inside  []geometry.Point  // remaining points strictly inside the circle
	Outside []geometry.Point  // remaining points strictly outside the circle
	Valid   bool              // exactly one point inside and one outside
}

// InsideCount returns the number of remaining points inside the circle
func (r Result) InsideCount() int {
	return len(r.Inside)
}

// OutsideCount returns the number of remaining points outside the circle
func (r Result) OutsideCount() int {
	return len(r.Outside)
}

type options struct {
	method geometry.Method
}

// Option configures Analyze
type Option func(*options)

// WithMethod selects the circumcircle construction
func WithMethod(m geometry.Method) Option {
	return func(o *options) {
		o.method = m
	}
}

// Analyze builds the circumcircle of every 3-point combination of points
// and classifies the remaining points against it. Combinations without a
// circle are skipped. Remaining points are selected by position, so
// coordinates repeated elsewhere in the set are still classified.
func Analyze(points []geometry.Point, opts ...Option) []Result {
	o := options{method: geometry.MethodGeneral}
	for _, opt := range opts {
		opt(&o)
	}

	var results []Result
	remaining := make([]geometry.Point, 0, len(points))

	for idx := range Combinations(len(points), 3) {
		i, j, k := idx[0], idx[1], idx[2]
		circle, ok := geometry.CircumcircleWith(o.method, points[i], points[j], points[k])
		if !ok {
			continue
		}

		remaining = remaining[:0]
		for n, p := range points {
			if n != i && n != j && n != k {
				remaining = append(remaining, p)
			}
		}

		inside, outside := geometry.Classify(circle, remaining)
		results = append(results, Result{
			Circle:  circle,
			Triple:  [3]geometry.Point{points[i], points[j], points[k]},
			Indices: [3]int{i, j, k},
			Inside:  inside,
			Outside: outside,
			Valid:   len(inside) == 1 && len(outside) == 1,
		})
	}

	return results
}

// CountValid returns the number of valid results
func CountValid(results []Result) int {
	count := 0
	for _, r := range results {
		if r.Valid {
			count++
		}
	}
	return count
}

// Valid returns the valid results, preserving order
func Valid(results []Result) []Result {
	var valid []Result
	for _, r := range results {
		if r.Valid {
			valid = append(valid, r)
		}
	}
	return valid
}

// FormatPoint formats a 2D point
func FormatPoint(p geometry.Point) string {
	return fmt.Sprintf("(%.6f, %.6f)", p.X, p.Y)
}
