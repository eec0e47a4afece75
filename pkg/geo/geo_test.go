package geo

import (
	"math"
	"testing"
)

const tolerance = 0.01

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

// --- Point tests ---

func TestPointDistance(t *testing.T) {
	a := Pt(0, 0)
	b := Pt(3, 4)
	if !approxEqual(a.Distance(b), 5.0, tolerance) {
		t.Errorf("expected distance 5.0, got %f", a.Distance(b))
	}
}

func TestPointAngle(t *testing.T) {
	p := Pt(1, 0)
	if !approxEqual(p.Angle(), 0, tolerance) {
		t.Errorf("expected angle 0, got %f", p.Angle())
	}
	p2 := Pt(0, 1)
	if !approxEqual(p2.Angle(), math.Pi/2, tolerance) {
		t.Errorf("expected angle pi/2, got %f", p2.Angle())
	}
}

func TestPointPerp(t *testing.T) {
	p := Pt(1, 0)
	q := p.Perp()
	if !approxEqual(q.X, 0, tolerance) || !approxEqual(q.Y, 1, tolerance) {
		t.Errorf("expected (0,1), got (%f,%f)", q.X, q.Y)
	}
	if !approxEqual(p.Dot(q), 0, tolerance) {
		t.Errorf("expected perpendicular, dot product %f", p.Dot(q))
	}
}

func TestPointNormalize(t *testing.T) {
	p := Pt(3, 4)
	n := p.Normalize()
	if !approxEqual(n.Length(), 1.0, tolerance) {
		t.Errorf("expected unit length, got %f", n.Length())
	}
}

func TestPointLerp(t *testing.T) {
	a := Pt(0, 0)
	b := Pt(10, 10)
	mid := a.Lerp(b, 0.5)
	if !approxEqual(mid.X, 5, tolerance) || !approxEqual(mid.Y, 5, tolerance) {
		t.Errorf("expected (5,5), got (%f,%f)", mid.X, mid.Y)
	}
}

// --- Polygon tests ---

func TestPolygonAreaSquare(t *testing.T) {
	sq := NewPolygon(Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10))
	if !approxEqual(sq.Area(), 100, tolerance) {
		t.Errorf("expected area 100, got %f", sq.Area())
	}
}

func TestPolygonAreaTriangle(t *testing.T) {
	tri := NewPolygon(Pt(0, 0), Pt(10, 0), Pt(0, 10))
	if !approxEqual(tri.Area(), 50, tolerance) {
		t.Errorf("expected area 50, got %f", tri.Area())
	}
}

func TestPolygonWinding(t *testing.T) {
	ccw := NewPolygon(Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10))
	if !ccw.IsCounterClockwise() {
		t.Error("expected CCW polygon")
	}
	cw := ccw.Reverse()
	if cw.IsCounterClockwise() {
		t.Error("expected CW polygon after reverse")
	}
	fixed := cw.EnsureCCW()
	if !fixed.IsCounterClockwise() {
		t.Error("expected EnsureCCW to restore CCW winding")
	}
	if !approxEqual(fixed.Area(), ccw.Area(), tolerance) {
		t.Errorf("EnsureCCW changed area: %f vs %f", fixed.Area(), ccw.Area())
	}
}

func TestPolygonCentroid(t *testing.T) {
	sq := NewPolygon(Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10))
	c := sq.Centroid()
	if !approxEqual(c.X, 5, tolerance) || !approxEqual(c.Y, 5, tolerance) {
		t.Errorf("expected centroid (5,5), got (%f,%f)", c.X, c.Y)
	}
}

func TestPolygonContains(t *testing.T) {
	sq := NewPolygon(Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10))
	if !sq.Contains(Pt(5, 5)) {
		t.Error("expected (5,5) inside square")
	}
	if sq.Contains(Pt(15, 5)) {
		t.Error("expected (15,5) outside square")
	}
	if sq.Contains(Pt(-1, 5)) {
		t.Error("expected (-1,5) outside square")
	}
}

func TestPolygonBoundingBox(t *testing.T) {
	tri := NewPolygon(Pt(-5, -3), Pt(10, 0), Pt(7, 12))
	mn, mx := tri.BoundingBox()
	if !approxEqual(mn.X, -5, tolerance) || !approxEqual(mn.Y, -3, tolerance) {
		t.Errorf("expected min (-5,-3), got (%f,%f)", mn.X, mn.Y)
	}
	if !approxEqual(mx.X, 10, tolerance) || !approxEqual(mx.Y, 12, tolerance) {
		t.Errorf("expected max (10,12), got (%f,%f)", mx.X, mx.Y)
	}
}

func TestPolygonPerimeter(t *testing.T) {
	sq := NewPolygon(Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10))
	if !approxEqual(sq.Perimeter(), 40, tolerance) {
		t.Errorf("expected perimeter 40, got %f", sq.Perimeter())
	}
}

func TestPolygonDistanceTo(t *testing.T) {
	sq := NewPolygon(Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10))
	if d := sq.DistanceTo(Pt(5, 5)); !approxEqual(d, 0, tolerance) {
		t.Errorf("expected 0 inside, got %f", d)
	}
	if d := sq.DistanceTo(Pt(13, 5)); !approxEqual(d, 3, tolerance) {
		t.Errorf("expected 3, got %f", d)
	}
	if d := sq.DistanceTo(Pt(13, 14)); !approxEqual(d, 5, tolerance) {
		t.Errorf("expected 5 to corner, got %f", d)
	}
}

// --- Minimum rotated rectangle tests ---

func TestMinimumRotatedRectangleAxisAligned(t *testing.T) {
	sq := NewPolygon(Pt(0, 0), Pt(20, 0), Pt(20, 40), Pt(0, 40))
	rect := sq.MinimumRotatedRectangle()
	area := NewPolygon(rect[:]...).Area()
	if !approxEqual(area, 800, 1) {
		t.Errorf("expected rect area 800, got %f", area)
	}
	if !approxEqual(sq.Diameter(), math.Sqrt(20*20+40*40), tolerance) {
		t.Errorf("expected diagonal %f, got %f", math.Sqrt(20*20+40*40), sq.Diameter())
	}
}

func TestMinimumRotatedRectangleRotated(t *testing.T) {
	// A 10x4 rectangle rotated 30 degrees: the minimum rotated rectangle
	// recovers its area while the axis-aligned box is larger.
	base := NewPolygon(Pt(0, 0), Pt(10, 0), Pt(10, 4), Pt(0, 4))
	rot := Polygon{Vertices: make([]Point, base.Len())}
	for i, v := range base.Vertices {
		rot.Vertices[i] = v.Rotate(math.Pi / 6)
	}
	rect := rot.MinimumRotatedRectangle()
	area := NewPolygon(rect[:]...).Area()
	if !approxEqual(area, 40, 0.1) {
		t.Errorf("expected rect area 40, got %f", area)
	}
	mn, mx := rot.BoundingBox()
	aabbArea := (mx.X - mn.X) * (mx.Y - mn.Y)
	if aabbArea <= area {
		t.Errorf("axis-aligned box (%f) should exceed min rotated rect (%f)", aabbArea, area)
	}
}

func TestConvexHull(t *testing.T) {
	pts := []Point{
		Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10),
		Pt(5, 5), Pt(3, 7), // interior points
	}
	hull := ConvexHull(pts)
	if len(hull) != 4 {
		t.Fatalf("expected 4 hull points, got %d", len(hull))
	}
	if !approxEqual(NewPolygon(hull...).Area(), 100, tolerance) {
		t.Errorf("expected hull area 100, got %f", NewPolygon(hull...).Area())
	}
}

// --- Segment tests ---

func TestSegmentDistanceToPoint(t *testing.T) {
	s := NewSegment(Pt(0, 0), Pt(10, 0))
	if d := s.DistanceToPoint(Pt(5, 3)); !approxEqual(d, 3, tolerance) {
		t.Errorf("expected 3, got %f", d)
	}
	if d := s.DistanceToPoint(Pt(-4, 3)); !approxEqual(d, 5, tolerance) {
		t.Errorf("expected 5 past endpoint, got %f", d)
	}
}

func TestSegmentIntersect(t *testing.T) {
	a := NewSegment(Pt(0, 0), Pt(10, 10))
	b := NewSegment(Pt(0, 10), Pt(10, 0))
	pt, tParam, ok := a.Intersect(b)
	if !ok {
		t.Fatal("expected intersection")
	}
	if !approxEqual(pt.X, 5, tolerance) || !approxEqual(pt.Y, 5, tolerance) {
		t.Errorf("expected (5,5), got (%f,%f)", pt.X, pt.Y)
	}
	if !approxEqual(tParam, 0.5, tolerance) {
		t.Errorf("expected t=0.5, got %f", tParam)
	}

	c := NewSegment(Pt(0, 20), Pt(10, 20))
	if _, _, ok := a.Intersect(c); ok {
		t.Error("expected no intersection")
	}
}

func TestSegmentIntersectionsOrdered(t *testing.T) {
	// A horizontal cut through a square crosses the boundary twice; hits
	// come back ordered along the segment.
	sq := NewPolygon(Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10))
	s := NewSegment(Pt(-5, 5), Pt(15, 5))
	hits := s.Intersections(sq)
	if len(hits) != 2 {
		t.Fatalf("expected 2 hits, got %d", len(hits))
	}
	if !approxEqual(hits[0].X, 0, tolerance) || !approxEqual(hits[1].X, 10, tolerance) {
		t.Errorf("expected hits at x=0 then x=10, got %f then %f", hits[0].X, hits[1].X)
	}
}

func TestSegmentIntersectionsConcave(t *testing.T) {
	// U-shaped polygon: a ray across the opening crosses the boundary
	// four times.
	u := NewPolygon(
		Pt(0, 0), Pt(30, 0), Pt(30, 20), Pt(20, 20),
		Pt(20, 10), Pt(10, 10), Pt(10, 20), Pt(0, 20),
	)
	s := NewSegment(Pt(-5, 15), Pt(35, 15))
	hits := s.Intersections(u)
	if len(hits) != 4 {
		t.Fatalf("expected 4 hits, got %d", len(hits))
	}
	for i := 1; i < len(hits); i++ {
		if hits[i].X <= hits[i-1].X {
			t.Errorf("hits not ordered along segment: %v", hits)
		}
	}
}

// --- Voronoi tests ---

func TestVoronoiTwoPoints(t *testing.T) {
	seeds := []Point{Pt(-5, 0), Pt(5, 0)}
	bounds := NewPolygon(Pt(-20, -20), Pt(20, -20), Pt(20, 20), Pt(-20, 20))
	cells := Voronoi(seeds, bounds)

	if len(cells) != 2 {
		t.Fatalf("expected 2 cells, got %d", len(cells))
	}
	totalArea := bounds.Area()
	for i, c := range cells {
		if c.Polygon.IsEmpty() {
			t.Errorf("cell %d is empty", i)
			continue
		}
		if !approxEqual(c.Polygon.Area(), totalArea/2, totalArea*0.05) {
			t.Errorf("cell %d area %f, expected ~%f", i, c.Polygon.Area(), totalArea/2)
		}
	}
}

func TestVoronoiSinglePoint(t *testing.T) {
	seeds := []Point{Pt(0, 0)}
	bounds := NewPolygon(Pt(-20, -20), Pt(20, -20), Pt(20, 20), Pt(-20, 20))
	cells := Voronoi(seeds, bounds)

	if len(cells) != 1 {
		t.Fatalf("expected 1 cell, got %d", len(cells))
	}
	if !approxEqual(cells[0].Polygon.Area(), bounds.Area(), tolerance) {
		t.Errorf("single cell area %f, expected %f", cells[0].Polygon.Area(), bounds.Area())
	}
}
