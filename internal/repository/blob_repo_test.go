package repository

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"hifztrack/internal/config"
	"hifztrack/internal/database"
	"hifztrack/internal/storage"
)

func openBlobRepo(t *testing.T) *BlobRepository {
	t.Helper()
	db, err := database.InitializeWithConfig(&config.Config{
		DatabaseType: "sqlite-pure",
		DatabasePath: filepath.Join(t.TempDir(), "blobs.db"),
	})
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}
	return NewBlobRepository(db)
}

func TestBlobRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	repo := openBlobRepo(t)

	if _, err := repo.Get(storage.ErrorLogKey); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Get on empty store error = %v, want ErrNotFound", err)
	}

	if err := repo.Set(storage.ErrorLogKey, []byte(`[]`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := repo.Set(storage.ErrorLogKey, []byte(`[{"id":"x"}]`)); err != nil {
		t.Fatalf("Set overwrite failed: %v", err)
	}
	got, err := repo.Get(storage.ErrorLogKey)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != `[{"id":"x"}]` {
		t.Errorf("Get() = %s", got)
	}

	err = repo.SetMany(map[string][]byte{
		storage.MasteryKey:   []byte(`{"ayahs":{}}`),
		storage.FarReviewKey: []byte(`[]`),
	})
	if err != nil {
		t.Fatalf("SetMany failed: %v", err)
	}

	keys, err := repo.Keys()
	if err != nil {
		t.Fatalf("Keys failed: %v", err)
	}
	want := []string{storage.ErrorLogKey, storage.FarReviewKey, storage.MasteryKey}
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("Keys() = %v, want %v", keys, want)
	}

	if err := repo.Delete(storage.FarReviewKey); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := repo.Get(storage.FarReviewKey); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Get after Delete error = %v, want ErrNotFound", err)
	}
}

func TestErrorLogRepositoryOnSQL(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	repo := NewErrorLogRepository(openBlobRepo(t))
	if err := repo.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	entries, err := repo.All()
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty log, got %d", len(entries))
	}
}
