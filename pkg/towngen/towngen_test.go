package towngen

import (
	"math"
	"testing"

	"github.com/Adrien-LUDWIG/Medieval-town-map-generator/pkg/spec"
	"github.com/Adrien-LUDWIG/Medieval-town-map-generator/pkg/town"
)

func TestGenerateDefaultSpec(t *testing.T) {
	plan, err := Generate(spec.Default())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if plan.Root.Category() != town.Composite {
		t.Errorf("root category %s, expected composite", plan.Root.Category())
	}
	if len(plan.Root.SubAreas()) == 0 {
		t.Fatal("expected at least one ward")
	}

	outlineArea := plan.Root.Polygon().Area()
	var leafArea float64
	for _, leaf := range plan.Root.Leaves() {
		if leaf == plan.Root {
			t.Fatal("root must not be its own leaf once decomposed")
		}
		leafArea += leaf.Polygon().Area()
	}
	// Wards partition the outline up to clipping slivers; leaves must not
	// exceed it and must cover most of it.
	if leafArea > outlineArea*1.01 {
		t.Errorf("leaf area %f exceeds outline area %f", leafArea, outlineArea)
	}
	if leafArea < outlineArea*0.8 {
		t.Errorf("leaf area %f covers too little of outline %f", leafArea, outlineArea)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a, err := Generate(spec.Default())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, err := Generate(spec.Default())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if a.Registry.Len() != b.Registry.Len() {
		t.Errorf("area count differs between runs: %d vs %d", a.Registry.Len(), b.Registry.Len())
	}
	av, bv := a.Root.Polygon().Vertices, b.Root.Polygon().Vertices
	if len(av) != len(bv) {
		t.Fatalf("outline vertex count differs: %d vs %d", len(av), len(bv))
	}
	for i := range av {
		if math.Abs(av[i].X-bv[i].X) > 1e-9 || math.Abs(av[i].Y-bv[i].Y) > 1e-9 {
			t.Fatalf("outline differs at vertex %d: %v vs %v", i, av[i], bv[i])
		}
	}
}

func TestGenerateSeedsDiffer(t *testing.T) {
	s1 := spec.Default()
	s2 := spec.Default()
	s2.Seed = s1.Seed + 1

	a, err := Generate(s1)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, err := Generate(s2)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if math.Abs(a.Root.Polygon().Area()-b.Root.Polygon().Area()) < 1e-9 {
		t.Error("different seeds produced an identical outline area")
	}
}

func TestGenerateParcelSizes(t *testing.T) {
	ts := spec.Default()
	plan, err := Generate(ts)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	houses, oversized, parcels := 0, 0, 0
	for _, leaf := range plan.Root.Leaves() {
		if leaf.Category() == town.House {
			houses++
		}
		if leaf.Category() == town.House || leaf.Category() == town.Garden {
			parcels++
			if leaf.Polygon().Area() > ts.ParcelArea*4 {
				oversized++
			}
		}
	}
	if houses == 0 {
		t.Fatal("expected house parcels in the generated town")
	}
	// Unsplittable parcels stay whole; they must be the rare exception.
	if oversized*10 > parcels {
		t.Errorf("%d of %d parcels are oversized", oversized, parcels)
	}
}

func TestGenerateInvalidSpec(t *testing.T) {
	ts := spec.Default()
	ts.HouseRatio = 2
	if _, err := Generate(ts); err == nil {
		t.Error("expected error for invalid spec")
	}
}
