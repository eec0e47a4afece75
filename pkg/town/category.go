package town

import "fmt"

// Category labels the land use of an area. Values are stable and mirror the
// map file format; the numeric grouping (10-15 buildings, 20-22 religious,
// 31-34 fortifications, 50-52 circulation) carries no algorithmic meaning.
type Category int

const (
	Undefined  Category = 0
	Land       Category = 1
	Field      Category = 2
	Forest     Category = 3
	River      Category = 4
	Lake       Category = 5
	Sea        Category = 6
	Park       Category = 7
	Garden     Category = 8
	House      Category = 10
	Mansion    Category = 11
	Market     Category = 12
	Townhall   Category = 13
	University Category = 14
	Farm       Category = 15
	Church     Category = 20
	Cathedral  Category = 21
	Monastry   Category = 22
	Fort       Category = 31
	Castle     Category = 32
	Wall       Category = 33
	Door       Category = 34
	Street     Category = 50
	Bridge     Category = 51
	Road       Category = 52

	// Composite marks an area that is purely a union of its sub-areas and
	// has no independent land use.
	Composite Category = 90
)

var categoryNames = map[Category]string{
	Undefined:  "undefined",
	Land:       "land",
	Field:      "field",
	Forest:     "forest",
	River:      "river",
	Lake:       "lake",
	Sea:        "sea",
	Park:       "park",
	Garden:     "garden",
	House:      "house",
	Mansion:    "mansion",
	Market:     "market",
	Townhall:   "townhall",
	University: "university",
	Farm:       "farm",
	Church:     "church",
	Cathedral:  "cathedral",
	Monastry:   "monastry",
	Fort:       "fort",
	Castle:     "castle",
	Wall:       "wall",
	Door:       "door",
	Street:     "street",
	Bridge:     "bridge",
	Road:       "road",
	Composite:  "composite",
}

// String returns the lowercase name of the category.
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// Valid returns true if c is one of the defined categories.
func (c Category) Valid() bool {
	_, ok := categoryNames[c]
	return ok
}
