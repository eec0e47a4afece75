package mapfile

import (
	"sort"

	"github.com/Adrien-LUDWIG/Medieval-town-map-generator/pkg/town"
)

// CategorySummary aggregates the parcels of one land-use category.
type CategorySummary struct {
	Category town.Category `json:"-"`
	Name     string        `json:"category"`
	Count    int           `json:"count"`
	AreaM2   float64       `json:"area_m2"`
}

// Summarize aggregates the decomposition leaves per category, largest total
// area first.
func Summarize(root *town.Area) []CategorySummary {
	byCat := make(map[town.Category]*CategorySummary)
	for _, leaf := range root.Leaves() {
		s, ok := byCat[leaf.Category()]
		if !ok {
			s = &CategorySummary{
				Category: leaf.Category(),
				Name:     leaf.Category().String(),
			}
			byCat[leaf.Category()] = s
		}
		s.Count++
		s.AreaM2 += leaf.Polygon().Area()
	}

	out := make([]CategorySummary, 0, len(byCat))
	for _, s := range byCat {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AreaM2 != out[j].AreaM2 {
			return out[i].AreaM2 > out[j].AreaM2
		}
		return out[i].Category < out[j].Category
	})
	return out
}
