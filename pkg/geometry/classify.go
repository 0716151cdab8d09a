package geometry

// Side describes where a point lies relative to a circle
type Side int

const (
	Boundary Side = iota
	Inside
	Outside
)

func (s Side) String() string {
	switch s {
	case Inside:
		return "inside"
	case Outside:
		return "outside"
	default:
		return "boundary"
	}
}

// Side compares the distance of p from the center with the radius. The
// comparison is exact: no tolerance is applied.
func (c Circle) Side(p Point) Side {
	d := c.Center.Distance(p)
	switch {
	case d < c.Radius:
		return Inside
	case d > c.Radius:
		return Outside
	default:
		return Boundary
	}
}

// Contains reports whether p lies strictly inside the circle
func (c Circle) Contains(p Point) bool {
	return c.Side(p) == Inside
}

// Classify partitions points into those strictly inside and strictly
// outside the circle. Points exactly on the boundary are in neither slice.
func Classify(c Circle, points []Point) (inside, outside []Point) {
	for _, p := range points {
		switch c.Side(p) {
		case Inside:
			inside = append(inside, p)
		case Outside:
			outside = append(outside, p)
		}
	}
	return inside, outside
}
