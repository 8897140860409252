// Package persistence provides the SQLite save-file store. Snapshots are
// written whole — the engine's serialized form is the unit of persistence —
// alongside an append-only narrative event log for later inspection.
package persistence

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/politburo/internal/engine"
)

// DB wraps a SQLite connection for save-file storage.
type DB struct {
	conn *sqlx.DB
}

// ErrNoSave indicates the database holds no saved game yet.
var ErrNoSave = errors.New("persistence: no saved game")

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
	CREATE TABLE IF NOT EXISTS saves (
		id TEXT PRIMARY KEY,
		created_at TEXT NOT NULL,
		year INTEGER NOT NULL,
		month INTEGER NOT NULL,
		label TEXT NOT NULL,
		snapshot TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		event_id TEXT NOT NULL,
		year INTEGER NOT NULL,
		month INTEGER NOT NULL,
		type TEXT NOT NULL,
		category TEXT NOT NULL,
		severity TEXT NOT NULL,
		title TEXT NOT NULL,
		description TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_events_period ON events(year, month);
	CREATE INDEX IF NOT EXISTS idx_saves_created ON saves(created_at);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SaveState writes a full snapshot as a new save slot and marks it latest.
// Returns the slot ID.
func (db *DB) SaveState(snap *engine.Snapshot, label string) (string, error) {
	body, err := json.Marshal(snap)
	if err != nil {
		return "", fmt.Errorf("marshal snapshot: %w", err)
	}

	id := uuid.NewString()
	tx, err := db.conn.Beginx()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO saves (id, created_at, year, month, label, snapshot) VALUES (?, ?, ?, ?, ?, ?)`,
		id, time.Now().UTC().Format(time.RFC3339), snap.Year, snap.Month, label, string(body),
	)
	if err != nil {
		return "", fmt.Errorf("insert save: %w", err)
	}
	if _, err := tx.Exec(
		`INSERT OR REPLACE INTO meta (key, value) VALUES ('latest_save', ?)`, id,
	); err != nil {
		return "", fmt.Errorf("mark latest: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}

	slog.Info("game saved", "save_id", id, "year", snap.Year, "month", snap.Month, "label", label)
	return id, nil
}

// LoadSave reads one save slot.
func (db *DB) LoadSave(id string) (*engine.Snapshot, error) {
	var body string
	err := db.conn.Get(&body, `SELECT snapshot FROM saves WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoSave
	}
	if err != nil {
		return nil, fmt.Errorf("load save %s: %w", id, err)
	}

	var snap engine.Snapshot
	if err := json.Unmarshal([]byte(body), &snap); err != nil {
		return nil, fmt.Errorf("decode save %s: %w", id, err)
	}
	return &snap, nil
}

// LoadLatest reads the most recently written save slot.
func (db *DB) LoadLatest() (*engine.Snapshot, error) {
	var id string
	err := db.conn.Get(&id, `SELECT value FROM meta WHERE key = 'latest_save'`)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoSave
	}
	if err != nil {
		return nil, fmt.Errorf("latest save id: %w", err)
	}
	return db.LoadSave(id)
}

// StoredEvent is an event row as recorded in the log.
type StoredEvent struct {
	EventID     string `db:"event_id" json:"event_id"`
	Year        int    `db:"year" json:"year"`
	Month       int    `db:"month" json:"month"`
	Type        string `db:"type" json:"type"`
	Category    string `db:"category" json:"category"`
	Severity    string `db:"severity" json:"severity"`
	Title       string `db:"title" json:"title"`
	Description string `db:"description" json:"description"`
}

// AppendEvents records narrative events for the given period.
func (db *DB) AppendEvents(events []engine.Event, year, month int) error {
	if len(events) == 0 {
		return nil
	}

	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, e := range events {
		_, err := tx.Exec(
			`INSERT INTO events (event_id, year, month, type, category, severity, title, description)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			e.ID, year, month, e.Type, e.Category, e.Severity, e.Title, e.Description,
		)
		if err != nil {
			return fmt.Errorf("insert event %s: %w", e.ID, err)
		}
	}

	return tx.Commit()
}

// RecentEvents returns the most recent N events, newest first.
func (db *DB) RecentEvents(limit int) ([]StoredEvent, error) {
	var events []StoredEvent
	err := db.conn.Select(&events,
		`SELECT event_id, year, month, type, category, severity, title, description
		 FROM events ORDER BY id DESC LIMIT ?`, limit)
	return events, err
}

// SetMeta stores a key-value pair.
func (db *DB) SetMeta(key, value string) error {
	_, err := db.conn.Exec(
		`INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)`, key, value)
	return err
}

// GetMeta retrieves a metadata value.
func (db *DB) GetMeta(key string) (string, error) {
	var value string
	err := db.conn.Get(&value, `SELECT value FROM meta WHERE key = ?`, key)
	return value, err
}
