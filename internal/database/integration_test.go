package database

import (
	"path/filepath"
	"testing"

	"hifztrack/internal/config"
)

const migrationsPath = "../../migrations"

func openTestDB(t *testing.T) *DB {
	t.Helper()
	cfg := &config.Config{
		DatabaseType: "sqlite-pure",
		DatabasePath: filepath.Join(t.TempDir(), "hifz_test.db"),
	}
	db, err := InitializeWithConfig(cfg)
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// TestDatabaseIntegration tests the complete database lifecycle
func TestDatabaseIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := openTestDB(t)

	if err := db.RunMigrations(migrationsPath); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}
	// Running twice must be a no-op
	if err := db.RunMigrations(migrationsPath); err != nil {
		t.Fatalf("Failed to re-run migrations: %v", err)
	}

	var name string
	err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", "kv_store").Scan(&name)
	if err != nil {
		t.Fatalf("Table kv_store not found: %v", err)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM migrations").Scan(&count); err != nil {
		t.Fatalf("Failed to count migrations: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 recorded migration, got %d", count)
	}
}

// TestUpsertBlob checks the dialect upsert against a real SQLite database
func TestUpsertBlob(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := openTestDB(t)
	if err := db.RunMigrations(migrationsPath); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	for _, v := range []string{"first", "second"} {
		if _, err := db.Exec(db.Dialect.UpsertBlob(), "error_log", v); err != nil {
			t.Fatalf("Upsert failed: %v", err)
		}
	}

	var value string
	if err := db.QueryRow("SELECT blob_value FROM kv_store WHERE blob_key = ?", "error_log").Scan(&value); err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if value != "second" {
		t.Errorf("Expected value 'second', got %q", value)
	}
}

// TestDatabaseTransactions tests transaction support
func TestDatabaseTransactions(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := openTestDB(t)
	if err := db.RunMigrations(migrationsPath); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	tx, err := db.Begin()
	if err != nil {
		t.Fatalf("Failed to begin transaction: %v", err)
	}
	if _, err := tx.Exec(tx.GetDialect().UpsertBlob(), "kept", "1"); err != nil {
		tx.Rollback()
		t.Fatalf("Failed to insert in transaction: %v", err)
	}
	if err := tx.Commit(); err != nil {
		t.Fatalf("Failed to commit transaction: %v", err)
	}

	tx2, err := db.Begin()
	if err != nil {
		t.Fatalf("Failed to begin second transaction: %v", err)
	}
	if _, err := tx2.Exec(tx2.GetDialect().UpsertBlob(), "discarded", "1"); err != nil {
		tx2.Rollback()
		t.Fatalf("Failed to insert in second transaction: %v", err)
	}
	if err := tx2.Rollback(); err != nil {
		t.Fatalf("Failed to rollback transaction: %v", err)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM kv_store").Scan(&count); err != nil {
		t.Fatalf("Failed to count rows: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 row after commit and rollback, got %d", count)
	}
}
