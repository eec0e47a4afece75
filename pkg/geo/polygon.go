package geo

import "math"

// Polygon is a closed polygon defined by its vertices in order.
// The closing edge from the last vertex back to the first is implicit.
type Polygon struct {
	Vertices []Point
}

// NewPolygon creates a polygon from a list of vertices.
func NewPolygon(pts ...Point) Polygon {
	return Polygon{Vertices: pts}
}

// Len returns the number of vertices.
func (p Polygon) Len() int {
	return len(p.Vertices)
}

// IsEmpty returns true if the polygon has fewer than 3 vertices.
func (p Polygon) IsEmpty() bool {
	return len(p.Vertices) < 3
}

// Edge returns the i-th edge as (start, end). Wraps around.
func (p Polygon) Edge(i int) (Point, Point) {
	n := len(p.Vertices)
	return p.Vertices[i%n], p.Vertices[(i+1)%n]
}

// SignedArea returns the signed area using the shoelace formula.
// Positive for counterclockwise winding, negative for clockwise.
func (p Polygon) SignedArea() float64 {
	n := len(p.Vertices)
	if n < 3 {
		return 0
	}
	area := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += p.Vertices[i].X * p.Vertices[j].Y
		area -= p.Vertices[j].X * p.Vertices[i].Y
	}
	return area / 2
}

// Area returns the unsigned area of the polygon.
func (p Polygon) Area() float64 {
	return math.Abs(p.SignedArea())
}

// IsCounterClockwise returns true if vertices are in CCW order.
func (p Polygon) IsCounterClockwise() bool {
	return p.SignedArea() > 0
}

// EnsureCCW returns the polygon with vertices in counterclockwise order.
func (p Polygon) EnsureCCW() Polygon {
	if p.SignedArea() < 0 {
		return p.Reverse()
	}
	return p
}

// Reverse returns the polygon with reversed vertex order.
func (p Polygon) Reverse() Polygon {
	n := len(p.Vertices)
	rev := make([]Point, n)
	for i, v := range p.Vertices {
		rev[n-1-i] = v
	}
	return Polygon{Vertices: rev}
}

// Clone returns a deep copy of the polygon.
func (p Polygon) Clone() Polygon {
	cp := make([]Point, len(p.Vertices))
	copy(cp, p.Vertices)
	return Polygon{Vertices: cp}
}

// Centroid returns the centroid of the polygon.
func (p Polygon) Centroid() Point {
	n := len(p.Vertices)
	if n == 0 {
		return Point{}
	}
	a := p.SignedArea()
	if n < 3 || math.Abs(a) < 1e-12 {
		// Degenerate: return vertex average.
		sum := Point{}
		for _, v := range p.Vertices {
			sum = sum.Add(v)
		}
		return sum.Scale(1.0 / float64(n))
	}
	cx, cy := 0.0, 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := p.Vertices[i].X*p.Vertices[j].Y - p.Vertices[j].X*p.Vertices[i].Y
		cx += (p.Vertices[i].X + p.Vertices[j].X) * cross
		cy += (p.Vertices[i].Y + p.Vertices[j].Y) * cross
	}
	f := 1.0 / (6.0 * a)
	return Point{cx * f, cy * f}
}

// BoundingBox returns the axis-aligned bounding box as (min, max).
func (p Polygon) BoundingBox() (Point, Point) {
	if len(p.Vertices) == 0 {
		return Point{}, Point{}
	}
	minP := p.Vertices[0]
	maxP := p.Vertices[0]
	for _, v := range p.Vertices[1:] {
		if v.X < minP.X {
			minP.X = v.X
		}
		if v.Y < minP.Y {
			minP.Y = v.Y
		}
		if v.X > maxP.X {
			maxP.X = v.X
		}
		if v.Y > maxP.Y {
			maxP.Y = v.Y
		}
	}
	return minP, maxP
}

// Contains returns true if the point is inside the polygon using ray casting.
func (p Polygon) Contains(pt Point) bool {
	n := len(p.Vertices)
	if n < 3 {
		return false
	}
	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		vi := p.Vertices[i]
		vj := p.Vertices[j]
		if (vi.Y > pt.Y) != (vj.Y > pt.Y) &&
			pt.X < (vj.X-vi.X)*(pt.Y-vi.Y)/(vj.Y-vi.Y)+vi.X {
			inside = !inside
		}
		j = i
	}
	return inside
}

// Perimeter returns the total perimeter length.
func (p Polygon) Perimeter() float64 {
	n := len(p.Vertices)
	if n < 2 {
		return 0
	}
	total := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		total += p.Vertices[i].Distance(p.Vertices[j])
	}
	return total
}

// DistanceTo returns the distance from the polygon to the point.
// Zero if the point is inside or on the boundary.
func (p Polygon) DistanceTo(pt Point) float64 {
	if p.Contains(pt) {
		return 0
	}
	n := len(p.Vertices)
	best := math.Inf(1)
	for i := 0; i < n; i++ {
		a, b := p.Edge(i)
		d := Segment{A: a, B: b}.DistanceToPoint(pt)
		if d < best {
			best = d
		}
	}
	if math.IsInf(best, 1) {
		return 0
	}
	return best
}
