package database

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"
)

// SQLiteDialect implements Dialect for SQLite through either the cgo
// driver (mattn/go-sqlite3) or the pure Go one (modernc.org/sqlite)
type SQLiteDialect struct {
	driver string
}

// NewSQLiteDialect creates a SQLite dialect on the cgo driver
func NewSQLiteDialect() *SQLiteDialect {
	return &SQLiteDialect{driver: "sqlite3"}
}

// NewPureSQLiteDialect creates a SQLite dialect on the pure Go driver, for CGO_ENABLED=0 builds
func NewPureSQLiteDialect() *SQLiteDialect {
	return &SQLiteDialect{driver: "sqlite"}
}

func (d *SQLiteDialect) DriverName() string {
	return d.driver
}

func (d *SQLiteDialect) DSN(config DialectConfig) string {
	return config.Path
}

func (d *SQLiteDialect) RewriteQuery(query string) string {
	// SQLite uses ? placeholders, no rewrite needed
	return query
}

func (d *SQLiteDialect) ConfigureConnection(db *sql.DB) error {
	// Single local writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(5 * time.Minute)

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		return err
	}

	if _, err := db.Exec("PRAGMA busy_timeout=5000;"); err != nil {
		return err
	}

	return nil
}

func (d *SQLiteDialect) MigrationsSubdir() string {
	return "sqlite"
}

func (d *SQLiteDialect) CreateMigrationsTableQuery() string {
	return `
		CREATE TABLE IF NOT EXISTS migrations (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			filename TEXT UNIQUE NOT NULL,
			executed_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`
}

func (d *SQLiteDialect) UpsertBlob() string {
	return `INSERT INTO kv_store (blob_key, blob_value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(blob_key) DO UPDATE SET blob_value = excluded.blob_value, updated_at = CURRENT_TIMESTAMP`
}
