package tilegrid

import "github.com/paulmach/orb"

// Rect is an axis-aligned rectangle in the coordinate space of the mission
// grid (longitude/latitude for both supported grids).
//
// X and Y are the origin corner, W and H the extents. Extents are stored
// exactly as given by the source data and are not normalized: the read/write
// path is symmetric, not geometrically validated, so negative extents are
// representable. Geometric operations account for that via the Min/Max
// accessors.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// IsEmpty reports whether the rectangle has no area (zero or negative
// extents). An empty rectangle intersects nothing.
func (r Rect) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

// MinX returns the smaller of the two X edges.
func (r Rect) MinX() float64 {
	if r.W < 0 {
		return r.X + r.W
	}
	return r.X
}

// MaxX returns the larger of the two X edges.
func (r Rect) MaxX() float64 {
	if r.W < 0 {
		return r.X
	}
	return r.X + r.W
}

// MinY returns the smaller of the two Y edges.
func (r Rect) MinY() float64 {
	if r.H < 0 {
		return r.Y + r.H
	}
	return r.Y
}

// MaxY returns the larger of the two Y edges.
func (r Rect) MaxY() float64 {
	if r.H < 0 {
		return r.Y
	}
	return r.Y + r.H
}

// Intersects reports whether the two rectangles share a region of non-zero
// area. Rectangles that only touch at an edge or corner do not intersect,
// and an empty rectangle never intersects anything.
func (r Rect) Intersects(other Rect) bool {
	if r.IsEmpty() || other.IsEmpty() {
		return false
	}
	return r.MinX() < other.MaxX() && r.MaxX() > other.MinX() &&
		r.MinY() < other.MaxY() && r.MaxY() > other.MinY()
}

// Union returns the smallest rectangle containing both rectangles.
func (r Rect) Union(other Rect) Rect {
	minX := min(r.MinX(), other.MinX())
	minY := min(r.MinY(), other.MinY())
	maxX := max(r.MaxX(), other.MaxX())
	maxY := max(r.MaxY(), other.MaxY())
	return Rect{
		X: minX,
		Y: minY,
		W: maxX - minX,
		H: maxY - minY,
	}
}

// Bound converts the rectangle to an orb.Bound for interoperability with
// GeoJSON encoding and other orb-based geometry tooling.
func (r Rect) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{r.MinX(), r.MinY()},
		Max: orb.Point{r.MaxX(), r.MaxY()},
	}
}
