// Package store persists computed charts to a local SQLite database so
// earlier computations can be listed and re-rendered without recomputing.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver.
)

// ErrNotFound is returned when no stored chart has the requested id.
var ErrNotFound = errors.New("chart not found")

// schema contains the DDL executed on first open. Using IF NOT EXISTS makes
// it safe to run on every startup.
const schema = `
CREATE TABLE IF NOT EXISTS charts (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    birth_date  TEXT NOT NULL,
    birth_time  TEXT NOT NULL,
    utc_offset  REAL NOT NULL,
    type        TEXT NOT NULL,
    authority   TEXT NOT NULL,
    profile     TEXT NOT NULL,
    cross_gates TEXT NOT NULL,
    payload     TEXT NOT NULL
);
`

// Summary is one row of the chart history listing.
type Summary struct {
	ID        int64
	CreatedAt time.Time
	BirthDate string
	BirthTime string
	UTCOffset float64
	Type      string
	Authority string
	Profile   string
	Cross     string
}

// Store wraps a local SQLite database in WAL mode.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path, enables WAL mode and busy
// timeout, and creates the schema if it does not exist.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open database: %w", err)
	}

	// SQLite supports a single writer; one connection avoids SQLITE_BUSY
	// contention between pooled connections that each need PRAGMA setup.
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
	} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("store: %s: %w", pragma, err)
		}
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// record is the subset of chart fields the store needs; using a local
// interface keeps the store decoupled from the chart package.
type record interface {
	HistoryRow() (birthDate, birthTime string, utcOffset float64, typ, authority, profile, cross string)
}

// Save inserts a chart and returns its row id. The full chart is stored as a
// JSON payload alongside the indexed summary columns.
func (s *Store) Save(ctx context.Context, c record) (int64, error) {
	payload, err := json.Marshal(c)
	if err != nil {
		return 0, fmt.Errorf("store: encode chart: %w", err)
	}

	date, tm, offset, typ, auth, prof, cross := c.HistoryRow()

	const q = `
		INSERT INTO charts (birth_date, birth_time, utc_offset, type, authority, profile, cross_gates, payload)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := s.db.ExecContext(ctx, q, date, tm, offset, typ, auth, prof, cross, string(payload))
	if err != nil {
		return 0, fmt.Errorf("store: insert chart: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("store: last insert id: %w", err)
	}
	return id, nil
}

// List returns the most recent charts, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]Summary, error) {
	if limit < 1 {
		limit = 20
	}
	const q = `
		SELECT id, created_at, birth_date, birth_time, utc_offset, type, authority, profile, cross_gates
		FROM charts ORDER BY id DESC LIMIT ?`
	rows, err := s.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("store: list charts: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var sm Summary
		if err := rows.Scan(&sm.ID, &sm.CreatedAt, &sm.BirthDate, &sm.BirthTime,
			&sm.UTCOffset, &sm.Type, &sm.Authority, &sm.Profile, &sm.Cross); err != nil {
			return nil, fmt.Errorf("store: scan chart row: %w", err)
		}
		out = append(out, sm)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: iterate charts: %w", err)
	}
	return out, nil
}

// Payload returns the stored JSON payload of one chart.
func (s *Store) Payload(ctx context.Context, id int64) ([]byte, error) {
	const q = `SELECT payload FROM charts WHERE id = ?`
	var payload string
	err := s.db.QueryRowContext(ctx, q, id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("store: chart %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("store: fetch chart %d: %w", id, err)
	}
	return []byte(payload), nil
}
