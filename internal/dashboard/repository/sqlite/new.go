package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"fms-dashboard/internal/dashboard/repository"
	"fms-dashboard/internal/model"
	"fms-dashboard/pkg/log"
)

const (
	taskTable   = `"FMS"`
	memberTable = `"dropdown"`
	memoryPath  = ":memory:"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// Store is the SQLite repository plus bulk import, used to seed a local
// database.
type Store interface {
	repository.Repository
	ImportTasks(ctx context.Context, records []model.TaskRecord) (int, error)
	ImportMembers(ctx context.Context, entries []model.DropdownEntry) (int, error)
}

// Open opens (and creates if needed) the database at path and ensures the
// schema exists. ":memory:" gives a private in-memory database.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	if path != memoryPath {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create database directory: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if path == memoryPath {
		// every pooled connection would otherwise see its own empty database
		db.SetMaxOpenConns(1)
	}

	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout = 5000"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}
	if err := initSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return db, nil
}

// initSchema creates the task and dropdown tables if they don't exist.
func initSchema(ctx context.Context, db *sql.DB) error {
	cols := make([]string, 0, len(model.TaskColumns))
	for _, c := range model.TaskColumns {
		if c == "id" {
			cols = append(cols, `"id" INTEGER PRIMARY KEY AUTOINCREMENT`)
			continue
		}
		cols = append(cols, fmt.Sprintf("%q TEXT", c))
	}

	schema := fmt.Sprintf(`
	CREATE TABLE IF NOT EXISTS %s (
		%s
	);
	CREATE INDEX IF NOT EXISTS idx_fms_task_no ON %s ("task_no");
	CREATE INDEX IF NOT EXISTS idx_fms_party_name ON %s ("party_name");

	CREATE TABLE IF NOT EXISTS %s (
		"member_name" TEXT,
		"team_name" TEXT
	);`, taskTable, strings.Join(cols, ",\n\t\t"), taskTable, taskTable, memberTable)

	_, err := db.ExecContext(ctx, schema)
	return err
}

// New creates a SQLite-backed Repository for the dashboard domain.
func New(db *sql.DB, l log.Logger) Store {
	if db == nil {
		panic("dashboard/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("dashboard/repository/sqlite.%s", method)
}
