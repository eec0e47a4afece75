package town

import (
	"fmt"
	"math"

	"github.com/Adrien-LUDWIG/Medieval-town-map-generator/pkg/geo"
)

// Defaults for SplitOptions. The tolerance is one square meter, which suits
// town maps in meter coordinates; pass an explicit tolerance for other units.
const (
	DefaultTolerance     = 1.0
	DefaultMaxIterations = 128
)

// edgeEpsilon is the distance under which the boundary hit point is
// considered to lie on an edge.
const edgeEpsilon = 1e-6

// SplitOptions tunes a directional split.
type SplitOptions struct {
	// InPlace installs the two fragments as the area's sub-areas.
	InPlace bool
	// NewCategory is the category of the second fragment. Garden if unset.
	NewCategory Category
	// Tolerance is the accepted absolute error, in area units, between the
	// first fragment's area and the requested share. DefaultTolerance if
	// zero or negative.
	Tolerance float64
	// MaxIterations bounds the bisection search. DefaultMaxIterations if
	// zero or negative.
	MaxIterations int
}

func (o *SplitOptions) withDefaults() SplitOptions {
	out := SplitOptions{}
	if o != nil {
		out = *o
	}
	if out.NewCategory == Undefined {
		out.NewCategory = Garden
	}
	if out.Tolerance <= 0 {
		out.Tolerance = DefaultTolerance
	}
	if out.MaxIterations <= 0 {
		out.MaxIterations = DefaultMaxIterations
	}
	return out
}

// Split divides the area in two fragments whose surface areas satisfy the
// requested ratio: the first fragment takes percentage of the total and
// lies on the side the compass direction points at, the second keeps the
// rest. Direction is a bearing in degrees, 0 = north, increasing clockwise.
//
// The cut is found by casting a ray from the centroid along the bearing,
// taking the farthest boundary crossing, and binary-searching the offset of
// a cut line parallel to the boundary edge under that crossing until the
// first fragment's area matches the target within the tolerance. The first
// fragment keeps the area's category; the second gets opts.NewCategory.
//
// With InPlace set, the fragments also become the area's sub-areas. The
// only mutation Split performs on the area besides that is normalizing its
// polygon to counterclockwise winding; on error the area is left untouched
// apart from that normalization.
func (a *Area) Split(percentage, direction float64, opts *SplitOptions) (first, second *Area, err error) {
	if percentage <= 0 || percentage >= 1 {
		return nil, nil, fmt.Errorf("%w: percentage %v outside (0, 1)", ErrInvalidArgument, percentage)
	}
	opt := opts.withDefaults()

	// Downstream edge-direction and tie-break computations assume CCW
	// winding so the left perpendicular points into the interior side.
	a.polygon = a.polygon.EnsureCCW()

	// Bearing to math angle: degrees are clockwise from north, radians are
	// counterclockwise from the positive x axis.
	angle := (90 - direction) * math.Pi / 180

	// The minimum rotated rectangle's diagonal exceeds any chord of the
	// polygon, so a ray of that length cannot stop short of the boundary.
	diameter := a.polygon.Diameter()
	if diameter <= 0 {
		return nil, nil, fmt.Errorf("%w: degenerate polygon", ErrInvalidGeometry)
	}
	centroid := a.polygon.Centroid()
	ray := geo.NewSegment(centroid, centroid.Add(geo.Pt(math.Cos(angle), math.Sin(angle)).Scale(diameter)))

	// The ray may cross the boundary several times on concave polygons;
	// the farthest crossing is the canonical hit point.
	hits := ray.Intersections(a.polygon)
	if len(hits) == 0 {
		return nil, nil, fmt.Errorf("%w: direction ray does not reach the boundary", ErrInvalidGeometry)
	}
	hit := hits[len(hits)-1]

	edgeStart, edgeEnd := a.edgeUnder(hit)
	edgeDir := edgeEnd.Sub(edgeStart).Normalize()
	orth := edgeDir.Perp() // left perpendicular, consistent with CCW winding

	target := a.polygon.Area() * percentage
	width := diameter / 2 // cut offsets from 0 to diameter are reachable
	step := width

	var firstPoly, secondPoly geo.Polygon
	converged := false
	for i := 0; i < opt.MaxIterations; i++ {
		cut := geo.NewSegment(
			edgeStart.Add(orth.Scale(width)).Sub(edgeDir.Scale(diameter)),
			edgeEnd.Add(orth.Scale(width)).Add(edgeDir.Scale(diameter)),
		)
		pieces := geo.SplitByLine(a.polygon, cut.A, cut.B)
		step /= 2
		if len(pieces) < 2 {
			// The cut missed the polygon; pull it back toward the edge.
			width -= step
			continue
		}
		firstPoly, secondPoly = pieces[0], pieces[1]
		if firstPoly.DistanceTo(hit) > secondPoly.DistanceTo(hit) {
			firstPoly, secondPoly = secondPoly, firstPoly
		}
		if math.Abs(firstPoly.Area()-target) <= opt.Tolerance {
			converged = true
			break
		}
		if firstPoly.Area() > target {
			width -= step
		} else {
			width += step
		}
	}
	if !converged {
		return nil, nil, fmt.Errorf("%w: after %d iterations, target %.3f", ErrDidNotConverge, opt.MaxIterations, target)
	}

	first, err = a.reg.NewArea(firstPoly, a.category)
	if err != nil {
		return nil, nil, err
	}
	second, err = a.reg.NewArea(secondPoly, opt.NewCategory)
	if err != nil {
		a.reg.Release(first)
		return nil, nil, err
	}
	if opt.InPlace {
		a.subAreas = []*Area{first, second}
	}
	return first, second, nil
}

// edgeUnder returns the boundary edge the point lies on: the first edge
// whose distance to the point is under edgeEpsilon, or the nearest edge
// when floating point leaves none under it.
func (a *Area) edgeUnder(pt geo.Point) (geo.Point, geo.Point) {
	n := a.polygon.Len()
	bestDist := math.Inf(1)
	var bestStart, bestEnd geo.Point
	for i := 0; i < n; i++ {
		start, end := a.polygon.Edge(i)
		d := geo.NewSegment(start, end).DistanceToPoint(pt)
		if d < edgeEpsilon {
			return start, end
		}
		if d < bestDist {
			bestDist = d
			bestStart, bestEnd = start, end
		}
	}
	return bestStart, bestEnd
}
