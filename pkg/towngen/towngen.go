// Package towngen generates a demo settlement: a noisy town outline carved
// into Voronoi wards, each ward subdivided into house-and-garden parcels
// with the directional bisection split.
package towngen

import (
	"fmt"
	"math"
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/Adrien-LUDWIG/Medieval-town-map-generator/pkg/geo"
	"github.com/Adrien-LUDWIG/Medieval-town-map-generator/pkg/spec"
	"github.com/Adrien-LUDWIG/Medieval-town-map-generator/pkg/town"
)

// outlineSegments is the resolution of the town outline polygon.
const outlineSegments = 48

// coreRadiusFrac and rimRadiusFrac delimit the civic core and the farm rim
// as fractions of the town radius, measured at the ward centroid.
const (
	coreRadiusFrac = 0.35
	rimRadiusFrac  = 0.8
)

// coreCategories cycle through the wards of the civic core.
var coreCategories = []town.Category{town.Market, town.Townhall, town.Church}

// rimCategories cycle through the wards of the outer rim.
var rimCategories = []town.Category{town.Farm, town.Field}

// Plan is a generated settlement: the area tree plus the registry that owns
// its areas.
type Plan struct {
	Spec     *spec.TownSpec
	Registry *town.Registry
	Root     *town.Area
}

// Generate builds a settlement plan from the spec. Generation is
// deterministic for a given spec.
func Generate(ts *spec.TownSpec) (*Plan, error) {
	if report := ts.Validate(); !report.Valid {
		return nil, fmt.Errorf("%w: %s", town.ErrInvalidArgument, report.Errors[0].Message)
	}

	rng := rand.New(rand.NewSource(ts.Seed))
	reg := town.NewRegistry()

	outline := outlinePolygon(ts.Seed, ts.Radius)
	root, err := reg.NewArea(outline, town.Composite)
	if err != nil {
		return nil, fmt.Errorf("town outline: %w", err)
	}

	center := outline.Centroid()
	seeds := wardSeeds(rng, center, ts.Radius, ts.Wards)
	cells := geo.Voronoi(seeds, outline)

	var wards []*town.Area
	coreIdx, rimIdx := 0, 0
	for _, cell := range cells {
		if cell.Polygon.IsEmpty() || cell.Polygon.Area() < ts.ParcelArea/4 {
			continue
		}
		dist := cell.Polygon.Centroid().Distance(center)
		var category town.Category
		switch {
		case dist < coreRadiusFrac*ts.Radius:
			category = coreCategories[coreIdx%len(coreCategories)]
			coreIdx++
		case dist > rimRadiusFrac*ts.Radius:
			category = rimCategories[rimIdx%len(rimCategories)]
			rimIdx++
		default:
			category = town.House
		}

		ward, err := reg.NewArea(cell.Polygon, category)
		if err != nil {
			continue
		}
		if category == town.House {
			subdivide(rng, ward, ts.ParcelArea, ts.HouseRatio)
		}
		wards = append(wards, ward)
	}
	root.SetSubAreas(wards)

	return &Plan{Spec: ts, Registry: reg, Root: root}, nil
}

// outlinePolygon returns the town boundary: a circle with noise-perturbed
// radius, counterclockwise.
func outlinePolygon(seed int64, radius float64) geo.Polygon {
	noise := opensimplex.NewNormalized(seed)
	pts := make([]geo.Point, outlineSegments)
	for i := 0; i < outlineSegments; i++ {
		angle := 2 * math.Pi * float64(i) / float64(outlineSegments)
		c, s := math.Cos(angle), math.Sin(angle)
		r := radius * (0.7 + 0.5*noise.Eval2(c, s))
		pts[i] = geo.Pt(r*c, r*s)
	}
	return geo.Polygon{Vertices: pts}
}

// wardSeeds places Voronoi seeds: one at the center, the rest on jittered
// rings around it.
func wardSeeds(rng *rand.Rand, center geo.Point, radius float64, wards int) []geo.Point {
	seeds := make([]geo.Point, 0, wards)
	seeds = append(seeds, center)
	for i := 1; i < wards; i++ {
		angle := 2*math.Pi*float64(i)/float64(wards-1) + rng.Float64()*0.5
		dist := radius * (0.3 + 0.45*rng.Float64())
		seeds = append(seeds, center.Add(geo.Pt(math.Cos(angle), math.Sin(angle)).Scale(dist)))
	}
	return seeds
}

// splitAttempts is how many directions are tried before a parcel is left
// whole.
const splitAttempts = 4

// subdivide recursively halves a housing ward until parcels reach the
// target area, then splits each parcel into a house and its garden. A
// parcel whose splits all fail to converge is left whole.
func subdivide(rng *rand.Rand, a *town.Area, parcelArea, houseRatio float64) {
	if a.Polygon().Area() > 2*parcelArea {
		ratio := 0.45 + 0.1*rng.Float64()
		first, second, err := trySplit(rng, a, ratio, town.House)
		if err != nil {
			return
		}
		subdivide(rng, first, parcelArea, houseRatio)
		subdivide(rng, second, parcelArea, houseRatio)
		return
	}
	trySplit(rng, a, houseRatio, town.Garden)
}

// trySplit splits the area in place, retrying with fresh directions when
// the bisection does not converge.
func trySplit(rng *rand.Rand, a *town.Area, ratio float64, second town.Category) (*town.Area, *town.Area, error) {
	var err error
	for attempt := 0; attempt < splitAttempts; attempt++ {
		direction := rng.Float64() * 360
		var first, rest *town.Area
		first, rest, err = a.Split(ratio, direction, &town.SplitOptions{
			InPlace:     true,
			NewCategory: second,
		})
		if err == nil {
			return first, rest, nil
		}
	}
	return nil, nil, err
}
