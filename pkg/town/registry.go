package town

import (
	"fmt"
	"sync"

	"github.com/Adrien-LUDWIG/Medieval-town-map-generator/pkg/geo"
)

// Registry tracks all live areas and assigns their ids. It is the explicit
// owner of area lifecycle bookkeeping: construction goes through NewArea,
// teardown through Release. Ids are monotonic and never reused within a
// registry. Add/remove are serialized so registry membership mirrors the
// set of live areas even under concurrent construction.
type Registry struct {
	mu      sync.Mutex
	lastID  int64
	members map[int64]*Area
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{members: make(map[int64]*Area)}
}

// NewArea constructs an area with the given polygon and category, registers
// it, and returns it. Sub-areas are optional. The polygon must have
// positive area.
func (r *Registry) NewArea(polygon geo.Polygon, category Category, subAreas ...*Area) (*Area, error) {
	if polygon.Area() <= 0 {
		return nil, fmt.Errorf("%w: polygon has non-positive area", ErrInvalidGeometry)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastID++
	a := &Area{
		id:       r.lastID,
		polygon:  polygon,
		category: category,
		subAreas: subAreas,
		reg:      r,
	}
	r.members[a.id] = a
	return a, nil
}

// Release removes the area and its sub-area tree from the registry.
// Releasing an area that is already absent is a no-op.
func (r *Registry) Release(a *Area) {
	if a == nil {
		return
	}
	r.mu.Lock()
	delete(r.members, a.id)
	r.mu.Unlock()
	for _, sub := range a.subAreas {
		r.Release(sub)
	}
}

// Len returns the number of live areas.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.members)
}

// Contains reports whether an area with the given id is live.
func (r *Registry) Contains(id int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.members[id]
	return ok
}
