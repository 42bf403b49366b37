// Package nav stores named shortcuts to project directories in SQLite.
package nav

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/aidanlsb/tutel/internal/project"
)

var (
	// ErrNotFound indicates no entry with the requested name.
	ErrNotFound = errors.New("no nav entry with that name")
	// ErrExists indicates an entry with the requested name already exists.
	ErrExists = errors.New("nav entry already exists")
	// ErrStale indicates the entry pointed to a directory that no longer
	// holds a project file. The entry has been removed.
	ErrStale = errors.New("nav entry no longer points to a project")
)

// Entry is one named project directory.
type Entry struct {
	Name    string
	Path    string
	AddedAt time.Time
}

// DB is the nav database handle.
type DB struct {
	db *sql.DB
}

// Open opens or creates the database at path.
func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create nav directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open nav database: %w", err)
	}
	return initialize(db)
}

// OpenInMemory opens an in-memory database (for testing).
func OpenInMemory() (*DB, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, err
	}
	// Each connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)
	return initialize(db)
}

func initialize(db *sql.DB) (*DB, error) {
	schema := `
		PRAGMA journal_mode = WAL;
		PRAGMA busy_timeout = 2000;

		CREATE TABLE IF NOT EXISTS entries (
			name TEXT PRIMARY KEY,
			path TEXT NOT NULL,
			added_at INTEGER NOT NULL
		);
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize nav database: %w", err)
	}
	return &DB{db: db}, nil
}

// Close closes the database.
func (d *DB) Close() error {
	return d.db.Close()
}

// Add records dir under name. Names may not contain whitespace.
func (d *DB) Add(name, dir string) error {
	name = strings.TrimSpace(name)
	if name == "" || strings.ContainsAny(name, " \t\n") {
		return fmt.Errorf("invalid nav name %q", name)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("unable to resolve %s: %w", dir, err)
	}

	_, err = d.db.Exec(
		`INSERT INTO entries (name, path, added_at) VALUES (?, ?, ?) ON CONFLICT(name) DO NOTHING`,
		name, abs, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to add nav entry: %w", err)
	}

	var stored string
	if err := d.db.QueryRow(`SELECT path FROM entries WHERE name = ?`, name).Scan(&stored); err != nil {
		return fmt.Errorf("failed to add nav entry: %w", err)
	}
	if stored != abs {
		return fmt.Errorf("%w: %s (%s)", ErrExists, name, stored)
	}
	return nil
}

// Lookup returns the directory stored under name. An entry whose directory
// no longer holds a project file is deleted and ErrStale returned.
func (d *DB) Lookup(name string) (string, error) {
	var path string
	err := d.db.QueryRow(`SELECT path FROM entries WHERE name = ?`, name).Scan(&path)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return "", fmt.Errorf("failed to query nav entry: %w", err)
	}

	if _, ok := project.HasProject(path); !ok {
		if err := d.Remove(name); err != nil {
			return "", err
		}
		return "", fmt.Errorf("%w: %s (%s)", ErrStale, name, path)
	}
	return path, nil
}

// List returns every entry ordered by name.
func (d *DB) List() ([]Entry, error) {
	rows, err := d.db.Query(`SELECT name, path, added_at FROM entries ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list nav entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var added int64
		if err := rows.Scan(&e.Name, &e.Path, &added); err != nil {
			return nil, err
		}
		e.AddedAt = time.Unix(added, 0)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Remove deletes the entry stored under name.
func (d *DB) Remove(name string) error {
	res, err := d.db.Exec(`DELETE FROM entries WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("failed to remove nav entry: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return nil
}
