package geo

// sliverArea is the area below which a split piece is discarded as a
// degenerate sliver.
const sliverArea = 1e-9

// SplitByLine splits the polygon with the infinite line through a and b,
// returning the resulting pieces: both half-polygons when the line crosses
// the interior, one polygon when it misses or only grazes the boundary, and
// none when the input itself is degenerate.
//
// The left piece (relative to the a→b direction) is returned first. For
// concave polygons a half-plane clip can chain disjoint lobes into a single
// ring; callers that need exact topology on such inputs must pre-cut them.
func SplitByLine(p Polygon, a, b Point) []Polygon {
	if p.IsEmpty() {
		return nil
	}
	left := clipToHalfPlane(p, a, b)
	right := clipToHalfPlane(p, b, a)

	var out []Polygon
	if !left.IsEmpty() && left.Area() > sliverArea {
		out = append(out, left)
	}
	if !right.IsEmpty() && right.Area() > sliverArea {
		out = append(out, right)
	}
	return out
}

// clipToHalfPlane clips a polygon to the left side of the directed line
// from a to b (Sutherland-Hodgman against a single half-plane).
func clipToHalfPlane(poly Polygon, a, b Point) Polygon {
	if poly.IsEmpty() {
		return Polygon{}
	}
	n := len(poly.Vertices)
	output := make([]Point, 0, n+2)
	for i := 0; i < n; i++ {
		curr := poly.Vertices[i]
		next := poly.Vertices[(i+1)%n]
		currInside := isLeftOf(curr, a, b)
		nextInside := isLeftOf(next, a, b)

		if currInside && nextInside {
			output = append(output, next)
		} else if currInside && !nextInside {
			if ix, ok := lineIntersection(curr, next, a, b); ok {
				output = append(output, ix)
			}
		} else if !currInside && nextInside {
			if ix, ok := lineIntersection(curr, next, a, b); ok {
				output = append(output, ix)
			}
			output = append(output, next)
		}
	}
	if len(output) < 3 {
		return Polygon{}
	}
	return Polygon{Vertices: output}
}
