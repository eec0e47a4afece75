package geo

import (
	"math"
	"sort"
)

// ConvexHull returns the convex hull of the polygon's vertices in CCW order
// using the Andrew monotone chain algorithm.
func ConvexHull(pts []Point) []Point {
	n := len(pts)
	if n < 3 {
		out := make([]Point, n)
		copy(out, pts)
		return out
	}
	sorted := make([]Point, n)
	copy(sorted, pts)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].X != sorted[j].X {
			return sorted[i].X < sorted[j].X
		}
		return sorted[i].Y < sorted[j].Y
	})

	var hull []Point
	// Lower chain.
	for _, p := range sorted {
		for len(hull) >= 2 && hull[len(hull)-1].Sub(hull[len(hull)-2]).Cross(p.Sub(hull[len(hull)-2])) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	// Upper chain.
	lower := len(hull) + 1
	for i := n - 2; i >= 0; i-- {
		p := sorted[i]
		for len(hull) >= lower && hull[len(hull)-1].Sub(hull[len(hull)-2]).Cross(p.Sub(hull[len(hull)-2])) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	return hull[:len(hull)-1]
}

// MinimumRotatedRectangle returns the minimum-area bounding rectangle of the
// polygon as 4 corners in order. One side of the rectangle is always
// collinear with a convex hull edge (rotating calipers).
func (p Polygon) MinimumRotatedRectangle() [4]Point {
	hull := ConvexHull(p.Vertices)
	n := len(hull)
	if n == 0 {
		return [4]Point{}
	}
	if n < 3 {
		mn, mx := p.BoundingBox()
		return [4]Point{mn, {mx.X, mn.Y}, mx, {mn.X, mx.Y}}
	}

	bestArea := math.Inf(1)
	var best [4]Point
	for i := 0; i < n; i++ {
		dir := hull[(i+1)%n].Sub(hull[i]).Normalize()
		if dir.Length() < 1e-12 {
			continue
		}
		perp := dir.Perp()

		minU, maxU := math.Inf(1), math.Inf(-1)
		minV, maxV := math.Inf(1), math.Inf(-1)
		for _, h := range hull {
			u := h.Dot(dir)
			v := h.Dot(perp)
			minU = math.Min(minU, u)
			maxU = math.Max(maxU, u)
			minV = math.Min(minV, v)
			maxV = math.Max(maxV, v)
		}

		area := (maxU - minU) * (maxV - minV)
		if area < bestArea {
			bestArea = area
			best = [4]Point{
				dir.Scale(minU).Add(perp.Scale(minV)),
				dir.Scale(maxU).Add(perp.Scale(minV)),
				dir.Scale(maxU).Add(perp.Scale(maxV)),
				dir.Scale(minU).Add(perp.Scale(maxV)),
			}
		}
	}
	return best
}

// Diameter returns the diagonal length of the polygon's minimum rotated
// rectangle. It is an upper bound on the length of any chord of the polygon.
func (p Polygon) Diameter() float64 {
	rect := p.MinimumRotatedRectangle()
	return rect[0].Distance(rect[2])
}
