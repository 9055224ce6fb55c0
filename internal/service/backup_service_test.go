package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"hifztrack/internal/models"
	"hifztrack/internal/repository"
	"hifztrack/internal/storage"
)

func TestBackupRoundTrip(t *testing.T) {
	source := storage.NewMemoryStore()
	errorsSvc := NewErrorService(repository.NewErrorLogRepository(source))
	if err := errorsSvc.Append([]models.ErrorLogEntry{entry(2, 255, 1, baseTime, models.KindDeletion)}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if err := source.Set("settings", []byte(`{"theme":"dark"}`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	backup := NewBackupService(source)
	backup.SetClock(func() time.Time { return baseTime })

	var buf bytes.Buffer
	if err := backup.ExportToWriter(&buf); err != nil {
		t.Fatalf("ExportToWriter failed: %v", err)
	}

	var decoded BackupData
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if decoded.Version != BackupVersion || !decoded.ExportedAt.Equal(baseTime) {
		t.Errorf("unexpected header: version=%d exported_at=%v", decoded.Version, decoded.ExportedAt)
	}
	if len(decoded.Data) != 2 {
		t.Errorf("expected 2 keys, got %d", len(decoded.Data))
	}

	target := storage.NewMemoryStore()
	if err := NewBackupService(target).ImportFromReader(&buf); err != nil {
		t.Fatalf("ImportFromReader failed: %v", err)
	}

	restored, err := NewErrorService(repository.NewErrorLogRepository(target)).Entries()
	if err != nil {
		t.Fatalf("Entries failed: %v", err)
	}
	if len(restored) != 1 || restored[0].VerseNumber != 255 {
		t.Errorf("restored log = %+v", restored)
	}
	settings, err := target.Get("settings")
	if err != nil || string(settings) != `{"theme":"dark"}` {
		t.Errorf("settings = %s, %v", settings, err)
	}
}

func TestBackupFile(t *testing.T) {
	store := storage.NewMemoryStore()
	if err := store.Set(storage.FarReviewKey, []byte(`[]`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	path := filepath.Join(t.TempDir(), BackupFileName(baseTime))
	if !strings.HasSuffix(path, "hifz-backup-2026-03-20.json") {
		t.Errorf("unexpected backup file name %s", path)
	}

	if err := NewBackupService(store).Export(path); err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	target := storage.NewMemoryStore()
	if err := NewBackupService(target).Import(path); err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if _, err := target.Get(storage.FarReviewKey); err != nil {
		t.Errorf("expected far review log to be restored: %v", err)
	}
}

func TestImportRejectsInvalidBackup(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "not json", input: "hello"},
		{name: "missing version", input: `{"data":{}}`},
		{name: "missing data", input: `{"version":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := storage.NewMemoryStore()
			err := NewBackupService(store).ImportFromReader(strings.NewReader(tt.input))
			if !errors.Is(err, ErrInvalidBackup) {
				t.Errorf("ImportFromReader error = %v, want ErrInvalidBackup", err)
			}
			keys, _ := store.Keys()
			if len(keys) != 0 {
				t.Errorf("invalid import wrote keys %v", keys)
			}
		})
	}
}
