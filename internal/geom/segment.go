package geom

// Segment2D is an ordered pair of 2D points produced by slicing one facet
// with a horizontal plane.
type Segment2D struct {
	P0, P1 Point
}

// Degenerate reports whether the segment's endpoints coincide within
// Epsilon; such segments are dropped after facet/plane intersection.
func (s Segment2D) Degenerate() bool {
	return s.P0.ApproxEqual(s.P1)
}

// Intercept2D applies the intercept theorem: given two points of a line at
// y0 and y1, returns the x coordinate of the line at height y.
func Intercept2D(x0, y0, x1, y1, y float64) float64 {
	return x0 + (x1-x0)*(y-y0)/(y1-y0)
}
