// Package mapfile writes a completed area tree to a map representation.
package mapfile

import (
	"encoding/json"
	"io"

	"github.com/Adrien-LUDWIG/Medieval-town-map-generator/pkg/town"
)

// Feature is a GeoJSON feature holding one parcel.
type Feature struct {
	Type       string         `json:"type"`
	Properties map[string]any `json:"properties"`
	Geometry   Geometry       `json:"geometry"`
}

// Geometry is a GeoJSON polygon geometry.
type Geometry struct {
	Type        string         `json:"type"`
	Coordinates [][][2]float64 `json:"coordinates"`
}

// FeatureCollection is the top-level GeoJSON document.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Name     string    `json:"name,omitempty"`
	Features []Feature `json:"features"`
}

// Collect builds a feature collection from the leaves of the area's
// decomposition tree.
func Collect(name string, root *town.Area) FeatureCollection {
	leaves := root.Leaves()
	features := make([]Feature, 0, len(leaves))
	for _, leaf := range leaves {
		features = append(features, Feature{
			Type: "Feature",
			Properties: map[string]any{
				"id":       leaf.ID(),
				"category": leaf.Category().String(),
				"area_m2":  leaf.Polygon().Area(),
			},
			Geometry: polygonGeometry(leaf),
		})
	}
	return FeatureCollection{
		Type:     "FeatureCollection",
		Name:     name,
		Features: features,
	}
}

// WriteGeoJSON writes the area tree's leaves as a GeoJSON feature
// collection.
func WriteGeoJSON(w io.Writer, name string, root *town.Area) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Collect(name, root))
}

func polygonGeometry(a *town.Area) Geometry {
	verts := a.Polygon().Vertices
	ring := make([][2]float64, 0, len(verts)+1)
	for _, v := range verts {
		ring = append(ring, [2]float64{v.X, v.Y})
	}
	if len(verts) > 0 {
		// GeoJSON rings are explicitly closed.
		ring = append(ring, ring[0])
	}
	return Geometry{
		Type:        "Polygon",
		Coordinates: [][][2]float64{ring},
	}
}
