package geometry

import (
	"fmt"
	"math"
	"strings"

	"github.com/cockroachdb/errors"
)

// Tolerance is the fixed absolute tolerance used to reject degenerate
// triples during circumcircle construction.
const Tolerance = 1e-9

// Method selects how the circumcircle of three points is constructed
type Method int

const (
	// MethodGeneral solves the perpendicular bisectors in general form
	// (determinant formula). Axis-aligned segments are handled.
	MethodGeneral Method = iota
	// MethodSlope intersects the bisectors using their slopes. A segment
	// whose endpoints differ in y by at most Tolerance has a vertical
	// bisector and yields no circle. Kept for parity with earlier
	// statistical runs.
	MethodSlope
)

// String returns the method name
func (m Method) String() string {
	switch m {
	case MethodGeneral:
		return "general"
	case MethodSlope:
		return "slope"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod parses a method name as produced by String
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "general":
		return MethodGeneral, nil
	case "slope":
		return MethodSlope, nil
	}
	return 0, errors.Newf("unknown circumcircle method %q", s)
}

// Circle is a circle in the plane
type Circle struct {
	Center Point
	Radius float64
}

// String formats the circle for display
func (c Circle) String() string {
	return fmt.Sprintf("center=%s r=%.6f", c.Center, c.Radius)
}

// Circumcircle returns the unique circle passing through a, b and c using
// MethodGeneral. ok is false when the points are collinear or duplicated.
func Circumcircle(a, b, c Point) (circle Circle, ok bool) {
	return CircumcircleWith(MethodGeneral, a, b, c)
}

// CircumcircleWith returns the circle through a, b and c built with the
// given method. ok is false when no unique circle can be determined.
func CircumcircleWith(m Method, a, b, c Point) (Circle, bool) {
	var center Point
	var ok bool
	switch m {
	case MethodSlope:
		center, ok = slopeCenter(a, b, c)
	default:
		center, ok = determinantCenter(a, b, c)
	}
	if !ok || !center.IsFinite() {
		return Circle{}, false
	}

	radius := center.Distance(a)
	if math.IsNaN(radius) || math.IsInf(radius, 0) {
		return Circle{}, false
	}
	return Circle{Center: center, Radius: radius}, true
}

// determinantCenter uses the 3-point determinant formula:
//
//	D  = 2(x₁(y₂-y₃) + x₂(y₃-y₁) + x₃(y₁-y₂))
//	cx = ((x₁²+y₁²)(y₂-y₃) + (x₂²+y₂²)(y₃-y₁) + (x₃²+y₃²)(y₁-y₂)) / D
//	cy = ((x₁²+y₁²)(x₃-x₂) + (x₂²+y₂²)(x₁-x₃) + (x₃²+y₃²)(x₂-x₁)) / D
func determinantCenter(a, b, c Point) (Point, bool) {
	d := 2.0 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	if math.Abs(d) < Tolerance {
		return Point{}, false
	}

	aSq := a.X*a.X + a.Y*a.Y
	bSq := b.X*b.X + b.Y*b.Y
	cSq := c.X*c.X + c.Y*c.Y

	return Point{
		X: (aSq*(b.Y-c.Y) + bSq*(c.Y-a.Y) + cSq*(a.Y-b.Y)) / d,
		Y: (aSq*(c.X-b.X) + bSq*(a.X-c.X) + cSq*(b.X-a.X)) / d,
	}, true
}

// slopeCenter intersects the perpendicular bisectors of a-b and b-c
// written as y = slope*x + intercept.
func slopeCenter(a, b, c Point) (Point, bool) {
	slopeAB, ok := bisectorSlope(a, b)
	if !ok {
		return Point{}, false
	}
	slopeBC, ok := bisectorSlope(b, c)
	if !ok {
		return Point{}, false
	}

	midAB := a.Midpoint(b)
	midBC := b.Midpoint(c)
	interceptAB := midAB.Y - slopeAB*midAB.X
	interceptBC := midBC.Y - slopeBC*midBC.X

	// Parallel bisectors: collinear or coincident points.
	if math.Abs(slopeAB-slopeBC) < Tolerance {
		return Point{}, false
	}

	x := (interceptBC - interceptAB) / (slopeAB - slopeBC)
	return Point{X: x, Y: slopeAB*x + interceptAB}, true
}

// bisectorSlope is the negative reciprocal of the slope of p-q. The
// tolerance is added to the denominator as well, so results match the
// historical runs bit for bit.
func bisectorSlope(p, q Point) (float64, bool) {
	dy := p.Y - q.Y
	if math.Abs(dy) <= Tolerance {
		return 0, false
	}
	return -(p.X - q.X) / (dy + Tolerance), true
}
