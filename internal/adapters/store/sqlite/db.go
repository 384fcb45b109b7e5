// Package sqlite implements the reference task API's storage ports on
// SQLite. Every query is scoped to the owning user.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"

	"github.com/jsamuelsen11/tasksync/internal/platform/config"
	"github.com/jsamuelsen11/tasksync/internal/ports"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	username      TEXT    NOT NULL UNIQUE,
	password_hash BLOB    NOT NULL,
	created_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS tasks (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	owner_id    INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	title       TEXT    NOT NULL,
	description TEXT    NOT NULL DEFAULT '',
	category    TEXT    NOT NULL DEFAULT '',
	status      TEXT    NOT NULL,
	created_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_tasks_owner ON tasks(owner_id, id DESC);
`

// Compile-time interface check.
var _ ports.HealthChecker = (*DB)(nil)

// DB owns the SQLite connection pool.
type DB struct {
	db *sql.DB
}

// Open opens the database at cfg.Path and creates the schema. An in-memory
// database is limited to a single connection so every query sees the same
// data.
func Open(ctx context.Context, cfg config.StoreConfig) (*DB, error) {
	path := cfg.Path
	if path == "" {
		path = MemoryPath
	}

	db, err := sql.Open("sqlite3", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	switch {
	case path == MemoryPath:
		db.SetMaxOpenConns(1)
	case cfg.MaxOpenConns > 0:
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{db: db}, nil
}

func dsn(path string) string {
	if path == MemoryPath {
		return "file::memory:?_foreign_keys=on"
	}
	return "file:" + path + "?_foreign_keys=on&_busy_timeout=5000"
}

// Close closes the connection pool.
func (d *DB) Close() error {
	return d.db.Close()
}

// Name implements ports.HealthChecker.
func (d *DB) Name() string {
	return "sqlite"
}

// HealthCheck pings the database.
func (d *DB) HealthCheck(ctx context.Context) error {
	if err := d.db.PingContext(ctx); err != nil {
		return fmt.Errorf("sqlite ping: %w", err)
	}
	return nil
}

// Tasks returns the task repository backed by this database.
func (d *DB) Tasks() *TaskRepository {
	return &TaskRepository{db: d.db}
}

// Users returns the user repository backed by this database.
func (d *DB) Users() *UserRepository {
	return &UserRepository{db: d.db}
}

func isUniqueViolation(err error) bool {
	var serr sqlite3.Error
	return errors.As(err, &serr) && serr.ExtendedCode == sqlite3.ErrConstraintUnique
}
