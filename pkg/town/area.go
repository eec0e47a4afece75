// Package town models labeled land parcels and the directional,
// ratio-targeted split used to carve them into sub-parcels.
package town

import (
	"fmt"

	"github.com/Adrien-LUDWIG/Medieval-town-map-generator/pkg/geo"
)

// Area is a labeled land parcel: a polygon with a land-use category,
// optionally decomposed into sub-areas. The parent polygon is retained
// unchanged as the authoritative contour even after a split; sub-areas are
// owned by their parent (tree ownership, not shared).
type Area struct {
	id       int64
	polygon  geo.Polygon
	category Category
	subAreas []*Area
	reg      *Registry
}

// ID returns the process-unique, monotonically assigned id.
func (a *Area) ID() int64 {
	return a.id
}

// Polygon returns the area's contour. The vertices must not be mutated by
// the caller.
func (a *Area) Polygon() geo.Polygon {
	return a.polygon
}

// Category returns the area's land-use category.
func (a *Area) Category() Category {
	return a.category
}

// SubAreas returns the area's decomposition, empty unless the area has
// been split.
func (a *Area) SubAreas() []*Area {
	return a.subAreas
}

// SetSubAreas replaces the area's decomposition.
func (a *Area) SetSubAreas(subs []*Area) {
	a.subAreas = subs
}

// Components returns the sub-areas if the area is decomposed, otherwise a
// single-element slice containing the area itself.
func (a *Area) Components() []*Area {
	if len(a.subAreas) > 0 {
		return a.subAreas
	}
	return []*Area{a}
}

// Leaves returns the leaves of the decomposition tree in depth-first order.
// An undecomposed area is its own single leaf.
func (a *Area) Leaves() []*Area {
	if len(a.subAreas) == 0 {
		return []*Area{a}
	}
	var out []*Area
	for _, sub := range a.subAreas {
		out = append(out, sub.Leaves()...)
	}
	return out
}

func (a *Area) String() string {
	return fmt.Sprintf("area %d (%s, %.1f m², %d sub-areas)",
		a.id, a.category, a.polygon.Area(), len(a.subAreas))
}
