package geometry

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
)

// Point represents a 2D point
type Point struct {
	X, Y float64
}

// NewPoint creates a new 2D point
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// PointFromVec converts an r2 vector into a Point
func PointFromVec(v r2.Point) Point {
	return Point{X: v.X, Y: v.Y}
}

// Vec returns the point as an r2 vector
func (p Point) Vec() r2.Point {
	return r2.Point{X: p.X, Y: p.Y}
}

// Add returns the component-wise sum of two points
func (p Point) Add(other Point) Point {
	return PointFromVec(p.Vec().Add(other.Vec()))
}

// Sub returns the difference between two points
func (p Point) Sub(other Point) Point {
	return PointFromVec(p.Vec().Sub(other.Vec()))
}

// Mul multiplies the point by a scalar
func (p Point) Mul(scalar float64) Point {
	return PointFromVec(p.Vec().Mul(scalar))
}

// Midpoint returns the point halfway between p and other
func (p Point) Midpoint(other Point) Point {
	return p.Add(other).Mul(0.5)
}

// Distance returns the Euclidean distance between two points
func (p Point) Distance(other Point) float64 {
	return p.Vec().Sub(other.Vec()).Norm()
}

// IsFinite reports whether both coordinates are finite numbers
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// String formats the point for display
func (p Point) String() string {
	return fmt.Sprintf("(%.6f, %.6f)", p.X, p.Y)
}

// ClonePoints returns a copy of a point slice
func ClonePoints(points []Point) []Point {
	if points == nil {
		return nil
	}
	out := make([]Point, len(points))
	copy(out, points)
	return out
}
