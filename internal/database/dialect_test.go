package database

import (
	"strings"
	"testing"

	"hifztrack/internal/config"
)

func TestDialectSQLite(t *testing.T) {
	tests := []struct {
		name    string
		dialect *SQLiteDialect
		driver  string
	}{
		{"cgo driver", NewSQLiteDialect(), "sqlite3"},
		{"pure go driver", NewPureSQLiteDialect(), "sqlite"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.dialect.DriverName(); got != tt.driver {
				t.Errorf("DriverName() = %v, want %v", got, tt.driver)
			}
			if got := tt.dialect.MigrationsSubdir(); got != "sqlite" {
				t.Errorf("MigrationsSubdir() = %v, want sqlite", got)
			}
			if got := tt.dialect.DSN(DialectConfig{Path: "/tmp/hifz.db"}); got != "/tmp/hifz.db" {
				t.Errorf("DSN() = %v, want /tmp/hifz.db", got)
			}
		})
	}
}

func TestDialectPostgreSQL(t *testing.T) {
	dialect := NewPostgresDialect()

	t.Run("DriverName", func(t *testing.T) {
		if got := dialect.DriverName(); got != "postgres" {
			t.Errorf("DriverName() = %v, want postgres", got)
		}
	})

	t.Run("MigrationsSubdir", func(t *testing.T) {
		if got := dialect.MigrationsSubdir(); got != "postgres" {
			t.Errorf("MigrationsSubdir() = %v, want postgres", got)
		}
	})

	t.Run("UpsertBlob placeholders", func(t *testing.T) {
		got := dialect.RewriteQuery(dialect.UpsertBlob())
		if !strings.Contains(got, "VALUES ($1, $2,") {
			t.Errorf("rewritten upsert = %q, want numbered placeholders", got)
		}
	})
}

func TestDialectMySQL(t *testing.T) {
	dialect := NewMySQLDialect()

	t.Run("DriverName", func(t *testing.T) {
		if got := dialect.DriverName(); got != "mysql" {
			t.Errorf("DriverName() = %v, want mysql", got)
		}
	})

	t.Run("UpsertBlob", func(t *testing.T) {
		if !strings.Contains(dialect.UpsertBlob(), "ON DUPLICATE KEY UPDATE") {
			t.Errorf("UpsertBlob() = %q, want MySQL upsert syntax", dialect.UpsertBlob())
		}
	})
}

func TestRewriteQuery(t *testing.T) {
	tests := []struct {
		name     string
		dialect  Dialect
		query    string
		expected string
	}{
		{
			name:     "SQLite no change",
			dialect:  NewSQLiteDialect(),
			query:    "SELECT blob_value FROM kv_store WHERE blob_key = ?",
			expected: "SELECT blob_value FROM kv_store WHERE blob_key = ?",
		},
		{
			name:     "PostgreSQL single placeholder",
			dialect:  NewPostgresDialect(),
			query:    "SELECT blob_value FROM kv_store WHERE blob_key = ?",
			expected: "SELECT blob_value FROM kv_store WHERE blob_key = $1",
		},
		{
			name:     "PostgreSQL multiple placeholders",
			dialect:  NewPostgresDialect(),
			query:    "INSERT INTO kv_store (blob_key, blob_value) VALUES (?, ?)",
			expected: "INSERT INTO kv_store (blob_key, blob_value) VALUES ($1, $2)",
		},
		{
			name:     "MySQL no change",
			dialect:  NewMySQLDialect(),
			query:    "DELETE FROM kv_store WHERE blob_key = ?",
			expected: "DELETE FROM kv_store WHERE blob_key = ?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.dialect.RewriteQuery(tt.query)
			if result != tt.expected {
				t.Errorf("RewriteQuery() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestDialectFor(t *testing.T) {
	tests := []struct {
		dbType  string
		driver  string
		wantErr bool
	}{
		{"", "sqlite3", false},
		{"SQLite", "sqlite3", false},
		{"sqlite-pure", "sqlite", false},
		{"postgresql", "postgres", false},
		{"mysql", "mysql", false},
		{"oracle", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.dbType, func(t *testing.T) {
			dialect, _, err := dialectFor(&config.Config{DatabaseType: tt.dbType})
			if (err != nil) != tt.wantErr {
				t.Fatalf("dialectFor(%q) error = %v, wantErr %v", tt.dbType, err, tt.wantErr)
			}
			if !tt.wantErr && dialect.DriverName() != tt.driver {
				t.Errorf("dialectFor(%q) driver = %v, want %v", tt.dbType, dialect.DriverName(), tt.driver)
			}
		})
	}
}
