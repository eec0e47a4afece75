package geo

import (
	"math"
	"sort"
)

// Segment is a directed line segment from A to B.
type Segment struct {
	A, B Point
}

// NewSegment creates a segment from two points.
func NewSegment(a, b Point) Segment {
	return Segment{A: a, B: b}
}

// Length returns the segment length.
func (s Segment) Length() float64 {
	return s.A.Distance(s.B)
}

// Direction returns the unit vector from A to B.
func (s Segment) Direction() Point {
	return s.B.Sub(s.A).Normalize()
}

// PointAt returns the point at parameter t along the segment,
// with t=0 at A and t=1 at B.
func (s Segment) PointAt(t float64) Point {
	return s.A.Lerp(s.B, t)
}

// DistanceToPoint returns the distance from the segment to the point.
func (s Segment) DistanceToPoint(pt Point) float64 {
	d := s.B.Sub(s.A)
	lenSq := d.Dot(d)
	if lenSq < 1e-12 {
		return s.A.Distance(pt)
	}
	t := pt.Sub(s.A).Dot(d) / lenSq
	t = math.Max(0, math.Min(1, t))
	return s.PointAt(t).Distance(pt)
}

// Intersect returns the intersection point of two segments, along with the
// parameter t of the intersection along s, if the segments cross.
func (s Segment) Intersect(o Segment) (Point, float64, bool) {
	r := s.B.Sub(s.A)
	q := o.B.Sub(o.A)
	denom := r.Cross(q)
	if math.Abs(denom) < 1e-12 {
		return Point{}, 0, false
	}
	diff := o.A.Sub(s.A)
	t := diff.Cross(q) / denom
	u := diff.Cross(r) / denom
	if t < -1e-9 || t > 1+1e-9 || u < -1e-9 || u > 1+1e-9 {
		return Point{}, 0, false
	}
	t = math.Max(0, math.Min(1, t))
	return s.PointAt(t), t, true
}

// Intersections returns the intersection points of the segment with the
// polygon's boundary, ordered by the segment's parametrization (nearest to
// A first). Duplicate hits at shared vertices are collapsed.
func (s Segment) Intersections(p Polygon) []Point {
	n := len(p.Vertices)
	if n < 3 {
		return nil
	}
	type hit struct {
		pt Point
		t  float64
	}
	var hits []hit
	for i := 0; i < n; i++ {
		a, b := p.Edge(i)
		if pt, t, ok := s.Intersect(Segment{A: a, B: b}); ok {
			hits = append(hits, hit{pt, t})
		}
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].t < hits[j].t })
	var pts []Point
	for _, h := range hits {
		if len(pts) > 0 && pts[len(pts)-1].Distance(h.pt) < 1e-9 {
			continue
		}
		pts = append(pts, h.pt)
	}
	return pts
}

// lineIntersection returns the intersection point of the infinite lines
// through (p1,p2) and (p3,p4).
func lineIntersection(p1, p2, p3, p4 Point) (Point, bool) {
	d := (p1.X-p2.X)*(p3.Y-p4.Y) - (p1.Y-p2.Y)*(p3.X-p4.X)
	if math.Abs(d) < 1e-12 {
		return Point{}, false
	}
	t := ((p1.X-p3.X)*(p3.Y-p4.Y) - (p1.Y-p3.Y)*(p3.X-p4.X)) / d
	return Point{
		X: p1.X + t*(p2.X-p1.X),
		Y: p1.Y + t*(p2.Y-p1.Y),
	}, true
}

// isLeftOf returns true if the point is on the left side of (or on) the
// directed line from a to b.
func isLeftOf(p, a, b Point) bool {
	return (b.X-a.X)*(p.Y-a.Y)-(b.Y-a.Y)*(p.X-a.X) >= 0
}
