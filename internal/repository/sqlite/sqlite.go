// Package sqlite implements the repository interfaces on SQLite.
//
// The memory store is the default backend; this one is selected by setting
// DB_PATH. It exists for deployments that want submissions to survive a
// restart, and it doubles as the repository used in tests that want real
// SQL (":memory:" gives a throwaway database per test).
//
// WHY modernc.org/sqlite INSTEAD OF github.com/mattn/go-sqlite3?
// mattn/go-sqlite3 uses CGo, which needs a C compiler and makes
// cross-compilation painful. modernc.org/sqlite is a pure Go translation
// of SQLite — works everywhere Go works.
//
// ID ALLOCATION:
// Every table uses INTEGER PRIMARY KEY AUTOINCREMENT. Plain INTEGER
// PRIMARY KEY would let SQLite reuse a rowid after a delete; AUTOINCREMENT
// guarantees ids only ever go up, which is the same contract the memory
// store's counters give (reject story 3, the next story is still 4+).
package sqlite

import (
	"database/sql"
	"fmt"

	// Blank import: the driver registers itself with database/sql under
	// the name "sqlite" at init time.
	_ "modernc.org/sqlite"
)

// DB wraps a sql.DB connection pool and provides the repository methods.
type DB struct {
	conn *sql.DB
}

// New opens (or creates) the database at path and runs migrations.
// Use ":memory:" for a database that lives only as long as the pool.
func New(path string) (*DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: opening database: %w", err)
	}

	// Ping forces a real connection so a bad path fails here, not on the
	// first query.
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: pinging database: %w", err)
	}

	// WAL lets reads proceed while a write is in flight — the usual
	// setting for a web server in front of SQLite.
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: setting WAL mode: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: running migrations: %w", err)
	}

	return db, nil
}

// Close closes the connection pool. Always defer this next to New.
func (db *DB) Close() error {
	return db.conn.Close()
}

// migrate creates the four entity tables. CREATE TABLE IF NOT EXISTS keeps
// this safe to run on every start.
func (db *DB) migrate() error {
	_, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			id       INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS resources (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			title       TEXT NOT NULL,
			description TEXT NOT NULL,
			category    TEXT NOT NULL,
			icon        TEXT NOT NULL,
			url         TEXT,
			rating      INTEGER NOT NULL DEFAULT 0,
			likes       INTEGER NOT NULL DEFAULT 0
		);
		CREATE INDEX IF NOT EXISTS idx_resources_category ON resources(category);

		CREATE TABLE IF NOT EXISTS stories (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			first_name   TEXT NOT NULL,
			last_name    TEXT NOT NULL,
			sport        TEXT NOT NULL,
			injury_type  TEXT NOT NULL,
			email        TEXT NOT NULL,
			title        TEXT NOT NULL,
			content      TEXT NOT NULL,
			approved     INTEGER NOT NULL DEFAULT 0,
			submitted_at DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_stories_approved ON stories(approved);

		CREATE TABLE IF NOT EXISTS contacts (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			name         TEXT NOT NULL,
			email        TEXT NOT NULL,
			inquiry_type TEXT NOT NULL,
			message      TEXT NOT NULL,
			submitted_at DATETIME NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}
	return nil
}
