package geo

// VoronoiCell represents one cell in a Voronoi diagram.
type VoronoiCell struct {
	SeedIndex int   // index into the original seed array
	Seed      Point // the seed point
	Polygon   Polygon
}

// Voronoi computes the Voronoi diagram of the given seed points, clipped to
// the given bounding polygon. Cell geometry is computed by half-plane
// intersection, which is robust for the small seed counts used in ward
// layout.
func Voronoi(seeds []Point, bounds Polygon) []VoronoiCell {
	n := len(seeds)
	if n == 0 {
		return nil
	}
	cells := make([]VoronoiCell, n)
	for i := 0; i < n; i++ {
		cells[i] = VoronoiCell{
			SeedIndex: i,
			Seed:      seeds[i],
			Polygon:   voronoiCellByHalfPlanes(i, seeds, bounds),
		}
	}
	return cells
}

// voronoiCellByHalfPlanes computes a Voronoi cell by intersecting half-planes.
// For each other seed, clip the bounds to the half-plane closer to seed[i].
func voronoiCellByHalfPlanes(seedIdx int, seeds []Point, bounds Polygon) Polygon {
	cell := bounds
	seed := seeds[seedIdx]
	for j, other := range seeds {
		if j == seedIdx {
			continue
		}
		mid := MidPoint(seed, other)
		dir := other.Sub(seed).Perp()
		cell = clipToHalfPlane(cell, mid, mid.Add(dir))
		if cell.IsEmpty() {
			break
		}
	}
	return cell
}
