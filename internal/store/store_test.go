package store

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/Adrien-LUDWIG/Medieval-town-map-generator/pkg/geo"
	"github.com/Adrien-LUDWIG/Medieval-town-map-generator/pkg/town"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "maps.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func buildTree(t *testing.T) *town.Area {
	t.Helper()
	reg := town.NewRegistry()
	root, err := reg.NewArea(
		geo.NewPolygon(geo.Pt(0, 0), geo.Pt(40, 0), geo.Pt(40, 40), geo.Pt(0, 40)),
		town.Composite)
	if err != nil {
		t.Fatalf("NewArea: %v", err)
	}
	first, _, err := root.Split(0.5, 0, &town.SplitOptions{InPlace: true, NewCategory: town.House})
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if _, _, err := first.Split(0.4, 90, &town.SplitOptions{InPlace: true}); err != nil {
		t.Fatalf("nested split: %v", err)
	}
	return root
}

func TestSaveAndListMaps(t *testing.T) {
	db := openTestDB(t)
	root := buildTree(t)

	id, err := db.SaveMap("testville", 7, root)
	if err != nil {
		t.Fatalf("SaveMap: %v", err)
	}
	if id == "" {
		t.Fatal("expected a map id")
	}

	maps, err := db.ListMaps()
	if err != nil {
		t.Fatalf("ListMaps: %v", err)
	}
	if len(maps) != 1 {
		t.Fatalf("expected 1 map, got %d", len(maps))
	}
	if maps[0].ID != id || maps[0].Name != "testville" || maps[0].Seed != 7 {
		t.Errorf("unexpected map info: %+v", maps[0])
	}
}

func TestLoadMapRoundTrip(t *testing.T) {
	db := openTestDB(t)
	root := buildTree(t)

	id, err := db.SaveMap("testville", 7, root)
	if err != nil {
		t.Fatalf("SaveMap: %v", err)
	}

	reg := town.NewRegistry()
	loaded, err := db.LoadMap(reg, id)
	if err != nil {
		t.Fatalf("LoadMap: %v", err)
	}

	if loaded.Category() != root.Category() {
		t.Errorf("root category %s, expected %s", loaded.Category(), root.Category())
	}
	if math.Abs(loaded.Polygon().Area()-root.Polygon().Area()) > 1e-9 {
		t.Errorf("root area %f, expected %f", loaded.Polygon().Area(), root.Polygon().Area())
	}

	origLeaves := root.Leaves()
	loadedLeaves := loaded.Leaves()
	if len(loadedLeaves) != len(origLeaves) {
		t.Fatalf("expected %d leaves, got %d", len(origLeaves), len(loadedLeaves))
	}
	for i := range origLeaves {
		if loadedLeaves[i].Category() != origLeaves[i].Category() {
			t.Errorf("leaf %d category %s, expected %s",
				i, loadedLeaves[i].Category(), origLeaves[i].Category())
		}
		if math.Abs(loadedLeaves[i].Polygon().Area()-origLeaves[i].Polygon().Area()) > 1e-9 {
			t.Errorf("leaf %d area differs", i)
		}
	}
	if reg.Len() != 5 {
		t.Errorf("expected 5 areas rebuilt, got %d", reg.Len())
	}
}

func TestLoadMapUnknownID(t *testing.T) {
	db := openTestDB(t)
	if _, err := db.LoadMap(town.NewRegistry(), "no-such-map"); err == nil {
		t.Error("expected error for unknown map id")
	}
}
