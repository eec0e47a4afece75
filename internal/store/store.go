// Package store persists generated town maps to SQLite.
package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/Adrien-LUDWIG/Medieval-town-map-generator/pkg/geo"
	"github.com/Adrien-LUDWIG/Medieval-town-map-generator/pkg/town"
)

// DB wraps a SQLite connection for map persistence.
type DB struct {
	conn *sqlx.DB
}

// MapInfo describes one stored map.
type MapInfo struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Seed      int64     `db:"seed"`
	CreatedAt time.Time `db:"created_at"`
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS maps (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		seed INTEGER NOT NULL,
		created_at TIMESTAMP NOT NULL
	);

	CREATE TABLE IF NOT EXISTS areas (
		map_id TEXT NOT NULL REFERENCES maps(id),
		id INTEGER NOT NULL,
		parent_id INTEGER,
		category INTEGER NOT NULL,
		polygon TEXT NOT NULL,
		PRIMARY KEY (map_id, id)
	);

	CREATE INDEX IF NOT EXISTS idx_areas_map ON areas(map_id);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SaveMap stores the area tree under a fresh map id and returns it.
func (db *DB) SaveMap(name string, seed int64, root *town.Area) (string, error) {
	mapID := uuid.NewString()

	tx, err := db.conn.Beginx()
	if err != nil {
		return "", fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO maps (id, name, seed, created_at) VALUES (?, ?, ?, ?)`,
		mapID, name, seed, time.Now().UTC(),
	)
	if err != nil {
		return "", fmt.Errorf("insert map: %w", err)
	}

	if err := insertTree(tx, mapID, root, nil); err != nil {
		return "", err
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}
	slog.Info("map saved", "id", mapID, "name", name)
	return mapID, nil
}

func insertTree(tx *sqlx.Tx, mapID string, a *town.Area, parentID *int64) error {
	polyJSON, err := json.Marshal(a.Polygon().Vertices)
	if err != nil {
		return fmt.Errorf("marshal polygon: %w", err)
	}
	_, err = tx.Exec(
		`INSERT INTO areas (map_id, id, parent_id, category, polygon) VALUES (?, ?, ?, ?, ?)`,
		mapID, a.ID(), parentID, int(a.Category()), string(polyJSON),
	)
	if err != nil {
		return fmt.Errorf("insert area %d: %w", a.ID(), err)
	}
	id := a.ID()
	for _, sub := range a.SubAreas() {
		if err := insertTree(tx, mapID, sub, &id); err != nil {
			return err
		}
	}
	return nil
}

type areaRow struct {
	ID       int64  `db:"id"`
	ParentID *int64 `db:"parent_id"`
	Category int    `db:"category"`
	Polygon  string `db:"polygon"`
}

// LoadMap rebuilds a stored area tree into the given registry and returns
// its root. Area ids are reassigned by the registry; the stored ids only
// encode the tree structure.
func (db *DB) LoadMap(reg *town.Registry, mapID string) (*town.Area, error) {
	var rows []areaRow
	err := db.conn.Select(&rows,
		`SELECT id, parent_id, category, polygon FROM areas WHERE map_id = ? ORDER BY id`, mapID)
	if err != nil {
		return nil, fmt.Errorf("select areas: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("map %s: no areas stored", mapID)
	}

	children := make(map[int64][]areaRow)
	var rootRow *areaRow
	for i, row := range rows {
		if row.ParentID == nil {
			rootRow = &rows[i]
		} else {
			children[*row.ParentID] = append(children[*row.ParentID], row)
		}
	}
	if rootRow == nil {
		return nil, fmt.Errorf("map %s: no root area", mapID)
	}

	return buildArea(reg, *rootRow, children)
}

func buildArea(reg *town.Registry, row areaRow, children map[int64][]areaRow) (*town.Area, error) {
	var verts []geo.Point
	if err := json.Unmarshal([]byte(row.Polygon), &verts); err != nil {
		return nil, fmt.Errorf("unmarshal polygon of area %d: %w", row.ID, err)
	}
	a, err := reg.NewArea(geo.Polygon{Vertices: verts}, town.Category(row.Category))
	if err != nil {
		return nil, fmt.Errorf("rebuild area %d: %w", row.ID, err)
	}
	var subs []*town.Area
	for _, childRow := range children[row.ID] {
		sub, err := buildArea(reg, childRow, children)
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	a.SetSubAreas(subs)
	return a, nil
}

// ListMaps returns stored maps, newest first.
func (db *DB) ListMaps() ([]MapInfo, error) {
	var maps []MapInfo
	err := db.conn.Select(&maps,
		`SELECT id, name, seed, created_at FROM maps ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("select maps: %w", err)
	}
	return maps, nil
}
