package geom

import (
	"fmt"
	"math"
)

// Point is a 2D point resulting from slicing a facet with a horizontal plane.
type Point struct {
	X, Y float64
}

// ApproxEqual reports whether p and q coincide within Epsilon, componentwise.
func (p Point) ApproxEqual(q Point) bool {
	return ApproxEqual(p.X, q.X) && ApproxEqual(p.Y, q.Y)
}

func (p Point) String() string {
	return fmt.Sprintf("(%.8f, %.8f)", p.X, p.Y)
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Length returns the Euclidean norm of p treated as a vector.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Collinear reports whether p, q, r are collinear within Epsilon: the unit
// vectors (q-p) and (r-p) are parallel (dot product magnitude ~1). Per
// spec, a degenerate (zero-length) leg is treated as collinear so that
// duplicate points collapse rather than block a collapse.
func Collinear(p, q, r Point) bool {
	u := q.Sub(p)
	v := r.Sub(p)

	ulen, vlen := u.Length(), v.Length()
	if ApproxZero(ulen) || ApproxZero(vlen) {
		return true
	}

	u1 := Point{u.X / ulen, u.Y / ulen}
	v1 := Point{v.X / vlen, v.Y / vlen}

	dot := u1.X*v1.X + u1.Y*v1.Y
	return ApproxEqual(math.Abs(dot), 1)
}
