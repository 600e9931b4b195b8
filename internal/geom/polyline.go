package geom

// Polyline is an ordered sequence of 2D points with at least two entries.
// No three consecutive points are collinear within Epsilon (enforced by
// the path reconstructor as it builds the polyline, not here).
type Polyline struct {
	Points []Point
}

// Closed reports whether the first and last point coincide within Epsilon.
func (pl Polyline) Closed() bool {
	if len(pl.Points) < 2 {
		return false
	}
	return pl.Points[0].ApproxEqual(pl.Points[len(pl.Points)-1])
}

// BBox returns the axis-aligned bounding box of the polyline's points.
func (pl Polyline) BBox() (min, max Point) {
	if len(pl.Points) == 0 {
		return Point{}, Point{}
	}
	min, max = pl.Points[0], pl.Points[0]
	for _, p := range pl.Points[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	return min, max
}
